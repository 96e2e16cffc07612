package upstream

import "context"

// CredentialSource yields the bearer credential attached to outbound
// calls. Implementations are request-scoped; a source must never be
// shared across two users' concurrent requests.
type CredentialSource interface {
	Get() (token string, ok bool)
}

// CredentialStore is a CredentialSource that can also accept a freshly
// issued credential (login) and drop it again (logout).
type CredentialStore interface {
	CredentialSource

	// Set installs the credential for subsequent calls. When persist
	// is true the token is also written into session storage.
	Set(ctx context.Context, token string, persist bool) error

	// Clear drops the held credential and its session entry.
	Clear(ctx context.Context) error
}
