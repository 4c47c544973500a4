package models

// Guest represents a row in the guests table.
type Guest struct {
	GuestID string `json:"guestID" db:"guest_id"`
	Name    string `json:"name" db:"name"`
	Email   string `json:"email" db:"email"`
	Phone   string `json:"phone" db:"phone"`
	Address string `json:"address" db:"address"`
	IDProof string `json:"idProof" db:"id_proof"`
	AuditFields
}
