package auth

import (
	"errors"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/gym-portal/internal/config"
	"github.com/spec-kit/gym-portal/internal/domain"
)

// CookieManager issues and validates the persisted identity cookie.
// The cookie is a signed JWT carrying the user's identity claims plus
// the bearer token as an access_token claim, which lets the auth gate
// recover a credential after the server-side session has expired.
type CookieManager struct {
	name   string
	secret []byte
	ttl    time.Duration
}

// NewCookieManager builds a manager from the auth configuration.
func NewCookieManager(cfg config.AuthConfig) *CookieManager {
	return &CookieManager{
		name:   cfg.CookieName,
		secret: []byte(cfg.CookieSecret),
		ttl:    cfg.CookieTTL(),
	}
}

// IdentityClaims describes the identity cookie payload.
type IdentityClaims struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	MustChangePassword bool   `json:"must_change_password"`
	AccessToken        string `json:"access_token"`
	jwt.RegisteredClaims
}

// Name returns the cookie name.
func (m *CookieManager) Name() string {
	return m.name
}

// TTL returns the cookie lifetime.
func (m *CookieManager) TTL() time.Duration {
	return m.ttl
}

// Issue signs an identity cookie value for the given user and bearer
// token.
func (m *CookieManager) Issue(user *domain.User, token string) (string, time.Time, error) {
	expiresAt := time.Now().Add(m.ttl)
	claims := &IdentityClaims{
		Name:               user.Name,
		Email:              user.Email,
		Role:               user.Role,
		MustChangePassword: user.MustChangePassword,
		AccessToken:        token,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse validates a cookie value and returns its claims.
func (m *CookieManager) Parse(value string) (*IdentityClaims, error) {
	parsed, err := jwt.ParseWithClaims(value, &IdentityClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*IdentityClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid cookie claims")
	}
	return claims, nil
}

// TokenFromCookie extracts the bearer token claim from a cookie value.
// An unreadable or tampered cookie simply yields no token.
func (m *CookieManager) TokenFromCookie(value string) (string, bool) {
	claims, err := m.Parse(value)
	if err != nil || claims.AccessToken == "" {
		return "", false
	}
	return claims.AccessToken, true
}
