package middleware

import (
	"strings"

	"github.com/campaign-studio/backend/internal/auth"
	"github.com/campaign-studio/backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	CtxSessionID   = "session_id"
	CtxAdAccountID = "ad_account_id"
)

// AuthMiddleware validates the workflow session token and puts its claims
// into the request locals.
func AuthMiddleware(cfg *config.Config, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
		}

		claims, err := auth.ParseJWT(cfg.JWTSecret, tokenStr)
		if err != nil {
			log.Debug("jwt parse error", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		c.Locals(CtxSessionID, claims.SessionID)
		c.Locals(CtxAdAccountID, claims.AdAccountID)

		return c.Next()
	}
}

func GetSessionID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(CtxSessionID).(uuid.UUID)
	return id
}

func GetAdAccountID(c *fiber.Ctx) string {
	id, _ := c.Locals(CtxAdAccountID).(string)
	return id
}
