package domain

// Guest represents a guest record kept by the front desk.
type Guest struct {
	GuestID string `json:"guestID"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	IDProof string `json:"idProof"` // identity document reference
	AuditFields
}
