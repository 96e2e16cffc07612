package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-portal/internal/api/dto"
	"github.com/spec-kit/gym-portal/internal/auth"
	"github.com/spec-kit/gym-portal/internal/config"
	"github.com/spec-kit/gym-portal/internal/domain"
	"github.com/spec-kit/gym-portal/internal/facade"
	"github.com/spec-kit/gym-portal/internal/session"
	apperrors "github.com/spec-kit/gym-portal/pkg/util"
)

// AuthHandler exposes the portal's login, logout and diagnostic
// endpoints.
type AuthHandler struct {
	facades    *facade.Factory
	cookies    *auth.CookieManager
	sessionCfg config.SessionConfig
}

// NewAuthHandler constructs handler.
func NewAuthHandler(facades *facade.Factory, cookies *auth.CookieManager, sessionCfg config.SessionConfig) *AuthHandler {
	return &AuthHandler{facades: facades, cookies: cookies, sessionCfg: sessionCfg}
}

// Login handles POST /login. A successful login leaves the bearer
// token in session storage and issues the persisted identity cookie;
// the token itself never reaches the browser payload.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	fac, err := requestFacade(c, h.facades)
	if err != nil {
		return err
	}

	result, err := fac.Login(c.UserContext(), domain.LoginRequest(req))
	if err != nil {
		return apperrors.MapError(err)
	}
	if result.User == nil || result.Token == "" {
		return apperrors.NewUnauthorized("invalid email or password")
	}

	cookieValue, expiresAt, err := h.cookies.Issue(result.User, result.Token)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookies.Name(),
		Value:    cookieValue,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  expiresAt,
	})

	return c.JSON(fiber.Map{"data": dto.LoginResponse{
		User:               result.User,
		MustChangePassword: result.User.MustChangePassword,
	}})
}

// Logout handles POST /logout. The credential is resolved the same way
// the gate resolves it, session first and identity cookie second; when
// one is found the upstream session is terminated before the cookies
// are cleared.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	bridge, ok := session.BridgeFromContext(c)
	if !ok {
		return apperrors.NewInternalError(nil)
	}

	ctx := c.UserContext()
	token, found := bridge.ReadFromSession(ctx)
	if !found {
		if raw := c.Cookies(h.cookies.Name()); raw != "" {
			token, found = h.cookies.TokenFromCookie(raw)
		}
	}
	if found {
		if err := bridge.Set(ctx, token, false); err != nil {
			return apperrors.MapError(err)
		}
		fac := h.facades.ForRequest(bridge)
		if err := fac.Logout(ctx); err != nil {
			return apperrors.MapError(err)
		}
	}

	h.expireCookie(c, h.sessionCfg.CookieName)
	h.expireCookie(c, h.cookies.Name())
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "logged_out"}})
}

// TestToken handles GET /api/diagnostics/test-token/:email.
func (h *AuthHandler) TestToken(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return apperrors.NewValidationError("email required", nil)
	}

	fac, err := requestFacade(c, h.facades)
	if err != nil {
		return err
	}

	token, err := fac.TestToken(c.UserContext(), email)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.TestTokenResponse{Token: token}})
}

func (h *AuthHandler) expireCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-time.Hour),
	})
}
