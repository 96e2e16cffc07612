package dto

import "github.com/spec-kit/gym-portal/internal/domain"

// LoginRequest payload for the portal login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse reports the authenticated user. The bearer token stays
// server-side, in the session and the identity cookie.
type LoginResponse struct {
	User               *domain.User `json:"user"`
	MustChangePassword bool         `json:"must_change_password"`
}

// TestTokenResponse carries a diagnostic token.
type TestTokenResponse struct {
	Token string `json:"token"`
}
