package dto

// RegisterRequest registration input (password in plaintext, hashed in the
// use case). Role defaults to customer when omitted.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
	Name     string `json:"name" validate:"omitempty,max=200"`
	Role     string `json:"role" validate:"omitempty,oneof=customer employee corporate"`
}

// LoginRequest login input.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserSummary is the user shape returned alongside a token. Register replies
// with id/email/role only; login adds the phone.
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Phone string `json:"phone,omitempty"`
}

// AuthResult token plus user summary, produced by register and login.
type AuthResult struct {
	Token string
	User  UserSummary
}

// AuthResponse success envelope for register/login.
type AuthResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}
