package session

import "context"

// Bridge holds the bearer credential for the lifetime of one request.
// It is allocated per request and owned by that request's goroutine;
// nothing here is safe for sharing across requests, and nothing needs
// to be.
type Bridge struct {
	store     *Store
	sessionID string
	token     string
	held      bool
}

// NewBridge builds a bridge bound to one browser session.
func NewBridge(store *Store, sessionID string) *Bridge {
	return &Bridge{store: store, sessionID: sessionID}
}

// Get returns the currently held credential, if any.
func (b *Bridge) Get() (string, bool) {
	if !b.held || b.token == "" {
		return "", false
	}
	return b.token, true
}

// Set installs the credential for all subsequent calls through this
// bridge. When persist is true it is also written to session storage.
func (b *Bridge) Set(ctx context.Context, token string, persist bool) error {
	b.token = token
	b.held = token != ""
	if persist {
		return b.PersistToSession(ctx, token)
	}
	return nil
}

// Clear drops the held credential and removes the session entry.
func (b *Bridge) Clear(ctx context.Context) error {
	b.token = ""
	b.held = false
	if b.store == nil {
		return nil
	}
	return b.store.Delete(ctx, b.sessionID, TokenKey)
}

// PersistToSession writes the token into session storage.
func (b *Bridge) PersistToSession(ctx context.Context, token string) error {
	if b.store == nil {
		return nil
	}
	return b.store.Set(ctx, b.sessionID, TokenKey, token)
}

// ReadFromSession looks the token up in session storage. Absence is a
// normal outcome and never an error.
func (b *Bridge) ReadFromSession(ctx context.Context) (string, bool) {
	if b.store == nil {
		return "", false
	}
	return b.store.Get(ctx, b.sessionID, TokenKey)
}
