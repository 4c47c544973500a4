package domain

// Admin represents a front-desk operator account.
type Admin struct {
	AdminID      string `json:"adminID"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	AuditFields
}
