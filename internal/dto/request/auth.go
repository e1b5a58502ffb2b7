package request

import "strings"

type SignupRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Password string  `json:"password" validate:"required,min=6,max=72"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
}

// LoginRequest identifies the user by username or email.
type LoginRequest struct {
	Username string `json:"username" validate:"required_without=Email"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required"`
}

// Identifier returns the username when given, otherwise the email.
func (r LoginRequest) Identifier() string {
	if id := strings.TrimSpace(r.Username); id != "" {
		return id
	}
	return strings.TrimSpace(r.Email)
}
