package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spec-kit/gym-portal/internal/domain"
)

const (
	usersPath     = "/api/users"
	loginPath     = "/api/Auth/login"
	logoutPath    = "/api/Auth/logout"
	testTokenPath = "/api/Auth/test-token"
)

// UsersClient talks to the users/auth microservice. Every protected
// call carries the current bearer credential; login and test-token are
// anonymous. The credential store is request-scoped, so one UsersClient
// must not be shared across requests.
type UsersClient struct {
	caller *caller
	creds  CredentialStore
}

// NewUsersClient builds a client bound to the given credential store.
func NewUsersClient(base string, httpClient *http.Client, creds CredentialStore) *UsersClient {
	return &UsersClient{
		caller: newCaller(base, httpClient, creds),
		creds:  creds,
	}
}

// List fetches every user. Failures are raised, not wrapped.
func (c *UsersClient) List(ctx context.Context) ([]domain.User, error) {
	return list[domain.User](ctx, c.caller, usersPath)
}

// GetByID fetches one user. Failures are raised, not wrapped.
func (c *UsersClient) GetByID(ctx context.Context, id int) (*domain.User, error) {
	return getByID[domain.User](ctx, c.caller, usersPath, id)
}

// Create stamps creation bookkeeping and posts the user.
func (c *UsersClient) Create(ctx context.Context, user *domain.User) (Result[*domain.User], error) {
	return create[domain.User](ctx, c.caller, usersPath, user)
}

// Update stamps modification bookkeeping and puts the user.
func (c *UsersClient) Update(ctx context.Context, id int, user *domain.User) (Result[*domain.User], error) {
	return update[domain.User](ctx, c.caller, usersPath, id, user)
}

// Delete removes a user, collapsing any failure into false.
func (c *UsersClient) Delete(ctx context.Context, id int) bool {
	return remove(ctx, c.caller, usersPath, id)
}

// Login posts credentials to the auth endpoint. On a non-empty token
// the credential is installed into the store and persisted to session
// storage before the response is returned.
func (c *UsersClient) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	resp, err := c.caller.do(ctx, http.MethodPost, loginPath, req, false)
	if err != nil {
		return nil, err
	}
	if err := CheckResponse(resp); err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result domain.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}

	if result.Token != "" {
		if err := c.creds.Set(ctx, result.Token, true); err != nil {
			return nil, fmt.Errorf("persist credential: %w", err)
		}
	}
	return &result, nil
}

// Logout posts to the auth logout endpoint with the current bearer
// credential, then drops the locally held credential. An upstream
// failure is surfaced and leaves the credential in place.
func (c *UsersClient) Logout(ctx context.Context) error {
	resp, err := c.caller.do(ctx, http.MethodPost, logoutPath, nil, true)
	if err != nil {
		return err
	}
	if err := CheckResponse(resp); err != nil {
		return err
	}
	resp.Body.Close()

	return c.creds.Clear(ctx)
}

// TestToken asks the auth service for a diagnostic token for the given
// email.
func (c *UsersClient) TestToken(ctx context.Context, email string) (string, error) {
	resp, err := c.caller.do(ctx, http.MethodGet, testTokenPath+"/"+url.PathEscape(email), nil, false)
	if err != nil {
		return "", err
	}
	if err := CheckResponse(resp); err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode test-token response: %w", err)
	}
	if payload.Token == "" {
		return "", errors.New("test-token response carried no token")
	}
	return payload.Token, nil
}
