package middleware

import (
	"crypto/subtle"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/contentops/configs"
	"github.com/maheshrc27/contentops/internal/api/handlers"
	"github.com/maheshrc27/contentops/internal/models"
	"github.com/maheshrc27/contentops/pkg/utils"
)

// SecretHeader carries the shared secret of the automation system.
const SecretHeader = "X-Webhook-Secret"

// AutomationEmail identifies the automation system in activity logs.
const AutomationEmail = "automation"

type AuthMiddleware struct {
	cfg *config.Config
}

func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// AuthMiddleware accepts a session cookie, a bearer token or, when a secret
// is configured, the automation secret header.
func (m *AuthMiddleware) AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(m.cfg.CookieName)
		if tokenString == "" {
			tokenString = strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
		}
		secret := c.Get(SecretHeader)

		if tokenString == "" && secret == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing token or cookie",
			})
		}

		if tokenString == "" {
			if m.cfg.Webhook.Secret == "" ||
				subtle.ConstantTimeCompare([]byte(secret), []byte(m.cfg.Webhook.Secret)) != 1 {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid secret",
				})
			}
			c.Locals(handlers.LocalAutomation, true)
			c.Locals(handlers.LocalEmail, AutomationEmail)
			c.Locals(handlers.LocalRole, models.RoleEditor)
			return c.Next()
		}

		claims, err := utils.ValidateToken(m.cfg.SecretKey, tokenString)
		if err != nil {
			c.Cookie(&fiber.Cookie{
				Name:   m.cfg.CookieName,
				Value:  "",
				Path:   "/",
				MaxAge: -1,
			})

			slog.Info("token validation failed", "error", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals(handlers.LocalUserID, claims.UserID)
		c.Locals(handlers.LocalEmail, claims.Email)
		c.Locals(handlers.LocalRole, claims.Role)
		return c.Next()
	}
}

// RequireRole rejects callers whose role is not listed.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(handlers.LocalRole).(string)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "forbidden",
		})
	}
}

// ReadOnlyViewers lets viewers through on safe methods only.
func ReadOnlyViewers() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(handlers.LocalRole).(string)
		if role != models.RoleViewer {
			return c.Next()
		}
		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return c.Next()
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "viewers cannot modify data",
		})
	}
}

// AutomationOnly admits only callers authenticated with the automation secret.
func AutomationOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !handlers.IsAutomation(c) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "forbidden",
			})
		}
		return c.Next()
	}
}
