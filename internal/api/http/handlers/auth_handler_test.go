package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httpapi "github.com/spec-kit/gym-portal/internal/api/http"
	"github.com/spec-kit/gym-portal/internal/api/http/handlers"
	"github.com/spec-kit/gym-portal/internal/auth"
	"github.com/spec-kit/gym-portal/internal/config"
	"github.com/spec-kit/gym-portal/internal/domain"
	"github.com/spec-kit/gym-portal/internal/facade"
	"github.com/spec-kit/gym-portal/internal/session"
)

const (
	testSessionCookie  = "gym_session"
	testIdentityCookie = "gym_identity"
)

type authFixture struct {
	app      *fiber.App
	store    *session.Store
	cookies  *auth.CookieManager
	upstream *httptest.Server

	logoutHits int
	logoutAuth string
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	fx := &authFixture{}
	fx.upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/Auth/login":
			var req domain.LoginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			if req.Password != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"invalid credentials"}`))
				return
			}
			_ = json.NewEncoder(w).Encode(domain.LoginResponse{
				Token: "abc123",
				User: &domain.User{
					ID:                 1,
					Name:               "Ana",
					Email:              req.Email,
					Role:               "admin",
					MustChangePassword: true,
				},
			})
		case "/api/Auth/logout":
			fx.logoutHits++
			fx.logoutAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(fx.upstream.Close)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	fx.store = session.NewStore(client, time.Minute, zap.NewNop())

	sessionCfg := config.SessionConfig{CookieName: testSessionCookie, IdleTimeoutMinutes: 1}
	fx.cookies = auth.NewCookieManager(config.AuthConfig{
		CookieName:       testIdentityCookie,
		CookieSecret:     "test-secret",
		CookieTTLMinutes: 30,
	})

	factory := facade.NewFactory(config.UpstreamConfig{
		ClientsBaseURL:     fx.upstream.URL,
		MembershipsBaseURL: fx.upstream.URL,
		UsersBaseURL:       fx.upstream.URL,
		CallTimeoutSeconds: 5,
	}, nil)
	handler := handlers.NewAuthHandler(factory, fx.cookies, sessionCfg)

	app := fiber.New()
	httpapi.RegisterMiddlewares(app, zap.NewNop(), nil, 0)
	app.Use(session.Middleware(sessionCfg, fx.store))
	app.Post("/login", handler.Login)
	app.Post("/logout", handler.Logout)

	fx.app = app
	return fx
}

func postJSON(t *testing.T, app *fiber.App, path, body string, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, 3000)
	require.NoError(t, err)
	return resp
}

// responseCookie returns the last Set-Cookie entry for name, the one a
// browser would keep.
func responseCookie(t *testing.T, resp *http.Response, name string) *http.Cookie {
	t.Helper()
	var found *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == name {
			found = cookie
		}
	}
	require.NotNil(t, found, "response carries no %q cookie", name)
	return found
}

func decodeErrorEnvelope(t *testing.T, resp *http.Response) (code, message string) {
	t.Helper()
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Error.Code, body.Error.Message
}

func TestLoginIssuesIdentityCookieAndPersistsToken(t *testing.T) {
	fx := newAuthFixture(t)

	resp := postJSON(t, fx.app, "/login", `{"email":"ana@gym.test","password":"secret"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "abc123", "the bearer token must never reach the browser payload")

	var body struct {
		Data struct {
			User               *domain.User `json:"user"`
			MustChangePassword bool         `json:"must_change_password"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	require.NotNil(t, body.Data.User)
	require.Equal(t, "Ana", body.Data.User.Name)
	require.True(t, body.Data.MustChangePassword)

	identity := responseCookie(t, resp, testIdentityCookie)
	claims, err := fx.cookies.Parse(identity.Value)
	require.NoError(t, err)
	require.Equal(t, "1", claims.Subject)
	require.Equal(t, "abc123", claims.AccessToken)
	require.True(t, claims.MustChangePassword)

	// the token landed in session storage under the issued session id
	sid := responseCookie(t, resp, testSessionCookie).Value
	token, found := fx.store.Get(context.Background(), sid, session.TokenKey)
	require.True(t, found)
	require.Equal(t, "abc123", token)
}

func TestLoginRejectionKeepsUpstreamStatus(t *testing.T) {
	fx := newAuthFixture(t)

	resp := postJSON(t, fx.app, "/login", `{"email":"ana@gym.test","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	code, message := decodeErrorEnvelope(t, resp)
	require.Equal(t, "UPSTREAM_REJECTED", code)
	require.Equal(t, "invalid credentials", message)

	for _, cookie := range resp.Cookies() {
		require.NotEqual(t, testIdentityCookie, cookie.Name, "no identity cookie on a failed login")
	}
}

func TestLoginUpstreamDownMapsToBadGateway(t *testing.T) {
	fx := newAuthFixture(t)
	fx.upstream.Close()

	resp := postJSON(t, fx.app, "/login", `{"email":"ana@gym.test","password":"secret"}`)
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)

	code, _ := decodeErrorEnvelope(t, resp)
	require.Equal(t, "UPSTREAM_UNAVAILABLE", code)
}

func TestLogoutTerminatesUpstreamSessionAndClearsCookies(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, fx.store.Set(ctx, "sid-1", session.TokenKey, "abc123"))

	resp := postJSON(t, fx.app, "/logout", "",
		&http.Cookie{Name: testSessionCookie, Value: "sid-1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Equal(t, 1, fx.logoutHits)
	require.Equal(t, "Bearer abc123", fx.logoutAuth)

	_, found := fx.store.Get(ctx, "sid-1", session.TokenKey)
	require.False(t, found, "the session credential must be gone")

	for _, name := range []string{testSessionCookie, testIdentityCookie} {
		cookie := responseCookie(t, resp, name)
		require.True(t, cookie.Expires.Before(time.Now()), "%s must expire", name)
	}
}

func TestLogoutFallsBackToIdentityCookie(t *testing.T) {
	fx := newAuthFixture(t)

	value, _, err := fx.cookies.Issue(&domain.User{ID: 1, Name: "Ana"}, "cookie-token")
	require.NoError(t, err)

	resp := postJSON(t, fx.app, "/logout", "",
		&http.Cookie{Name: testIdentityCookie, Value: value})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Equal(t, 1, fx.logoutHits)
	require.Equal(t, "Bearer cookie-token", fx.logoutAuth)

	cookie := responseCookie(t, resp, testIdentityCookie)
	require.True(t, cookie.Expires.Before(time.Now()))
}

func TestLogoutWithoutCredentialOnlyClearsCookies(t *testing.T) {
	fx := newAuthFixture(t)

	resp := postJSON(t, fx.app, "/logout", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Zero(t, fx.logoutHits, "no upstream call without a credential")
}
