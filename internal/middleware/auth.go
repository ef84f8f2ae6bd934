package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/db"
)

// AuthMiddleware handles user authentication via sessions. When no OIDC
// issuer is configured the middleware runs in open mode and every request
// passes through anonymously.
type AuthMiddleware struct {
	db      *db.DB
	enabled bool
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(database *db.DB, enabled bool) *AuthMiddleware {
	return &AuthMiddleware{db: database, enabled: enabled}
}

// RequireAuth ensures the user is authenticated. API requests get a JSON 401,
// page requests are redirected to /login.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	if !m.enabled {
		return c.Next()
	}

	sess := session.FromContext(c)
	if sess == nil {
		return m.reject(c)
	}

	userSub, _ := sess.Get("user_sub").(string)
	if userSub == "" {
		return m.reject(c)
	}

	user, err := m.db.GetUserBySub(c.Context(), userSub)
	if err != nil {
		sess.Destroy()
		return m.reject(c)
	}

	c.Locals("user", user)
	return c.Next()
}

// OptionalAuth loads the user if authenticated, but doesn't require authentication.
func (m *AuthMiddleware) OptionalAuth(c fiber.Ctx) error {
	if !m.enabled {
		return c.Next()
	}

	sess := session.FromContext(c)
	if sess == nil {
		return c.Next()
	}

	userSub, _ := sess.Get("user_sub").(string)
	if userSub == "" {
		return c.Next()
	}

	user, err := m.db.GetUserBySub(c.Context(), userSub)
	if err == nil {
		c.Locals("user", user)
	}

	return c.Next()
}

func (m *AuthMiddleware) reject(c fiber.Ctx) error {
	if isAPIPath(c.Path()) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status": "error",
			"error":  "unauthorized",
		})
	}
	return c.Redirect().To("/login")
}

// isAPIPath reports whether a request path belongs to the JSON API, which
// gets status-code errors instead of login redirects.
func isAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}
