package model

// RegisterRequest is the payload for email/password registration
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

// LoginRequest is the payload for email/password login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest is the payload for refreshing an access token
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// UpdateRoleRequest is the admin payload for changing a user's role.
// CompanyName is required when promoting to the client role; it links the
// account to the client record whose invoices it may read.
type UpdateRoleRequest struct {
	Role        string `json:"role" binding:"required"`
	CompanyName string `json:"companyName"`
}
