package domain

// LoginRequest is the credentials payload posted to the auth endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the auth endpoint's success payload: an opaque
// bearer token plus the authenticated user.
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
