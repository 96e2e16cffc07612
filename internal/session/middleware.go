package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/gym-portal/internal/config"
)

const bridgeKey = "session_bridge"

// Middleware ensures every request carries a session identifier cookie
// and a fresh credential bridge. The bridge lives in the request's
// locals; it must run before the auth gate and any handler that needs
// a credential.
func Middleware(cfg config.SessionConfig, store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(cfg.CookieName)
		if sid == "" {
			sid = uuid.NewString()
		}
		// re-issued on every request so the cookie expiry slides with
		// activity, matching the storage-side idle timeout
		c.Cookie(&fiber.Cookie{
			Name:     cfg.CookieName,
			Value:    sid,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Expires:  time.Now().Add(cfg.IdleTimeout()),
		})
		c.Locals(bridgeKey, NewBridge(store, sid))
		return c.Next()
	}
}

// BridgeFromContext retrieves the request's credential bridge.
func BridgeFromContext(c *fiber.Ctx) (*Bridge, bool) {
	bridge, ok := c.Locals(bridgeKey).(*Bridge)
	return bridge, ok
}
