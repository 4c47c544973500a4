package dto

// LoginRequest carries operator credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	AdminID     string `json:"admin_id"`
}

// CreateAdminRequest defines the data needed to register an operator account.
type CreateAdminRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// AdminResponse defines the data returned for an operator account.
type AdminResponse struct {
	AdminID  string `json:"adminID"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
