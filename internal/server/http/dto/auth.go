package dto

// RegisterRequest describes the member registration payload.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

// LoginRequest describes the member login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
