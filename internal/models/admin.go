package models

// Admin represents a row in the admins table.
type Admin struct {
	AdminID      string `json:"adminID" db:"admin_id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
	Role         string `json:"role" db:"role"`
	AuditFields
}
