package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/gym-portal/internal/session"
)

// LoginPath is where denied browser requests are redirected.
const LoginPath = "/login"

// DefaultPublicRoutes returns the path prefixes exempt from credential
// resolution. The root entry is matched exactly; everything else is a
// case-insensitive prefix match.
func DefaultPublicRoutes() []string {
	return []string{
		"/",
		"/home",
		"/home/index",
		"/privacy",
		"/login",
		"/login/login",
		"/logout",
		"/error",
	}
}

// Gate decides, once per request, whether the caller may proceed and
// where its bearer credential comes from: the session store first, the
// persisted identity cookie second. Requests with no resolvable
// credential are redirected to the login entry point and never reach a
// downstream handler.
type Gate struct {
	store   *session.Store
	cookies *CookieManager
	public  []string
	logger  *zap.Logger
}

// NewGate constructs the middleware. A nil public list falls back to
// DefaultPublicRoutes.
func NewGate(store *session.Store, cookies *CookieManager, public []string, logger *zap.Logger) *Gate {
	if public == nil {
		public = DefaultPublicRoutes()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gate{store: store, cookies: cookies, public: public, logger: logger}
}

// Handle evaluates the gate for one request. It must run after the
// session middleware and before any handler that reads the credential.
func (g *Gate) Handle(c *fiber.Ctx) error {
	path := strings.ToLower(c.Path())
	if g.isPublic(path) {
		return c.Next()
	}

	bridge, ok := session.BridgeFromContext(c)
	if !ok {
		g.logger.Error("auth gate ran without a session bridge", zap.String("path", c.Path()))
		return c.Redirect(LoginPath, fiber.StatusFound)
	}

	token, found := bridge.ReadFromSession(c.UserContext())
	if !found {
		if raw := c.Cookies(g.cookies.Name()); raw != "" {
			token, found = g.cookies.TokenFromCookie(raw)
			if found {
				g.logger.Debug("credential recovered from identity cookie")
			}
		}
	}

	if !found || token == "" {
		g.logger.Warn("access denied: no token in session or cookie", zap.String("path", c.Path()))
		return c.Redirect(LoginPath, fiber.StatusFound)
	}

	if err := bridge.Set(c.UserContext(), token, false); err != nil {
		return err
	}
	return c.Next()
}

func (g *Gate) isPublic(path string) bool {
	for _, route := range g.public {
		if route == "/" {
			if path == "/" {
				return true
			}
			continue
		}
		if strings.HasPrefix(path, route) {
			return true
		}
	}
	return false
}
