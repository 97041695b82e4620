package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/akwaabafreight/tracking-api/internal/application/dto"
	"github.com/akwaabafreight/tracking-api/internal/domain/entity"
	"github.com/akwaabafreight/tracking-api/pkg/jwt"
)

// Locals keys for the identity resolved by AuthMiddleware.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// AuthMiddleware validates the Bearer token and puts the resolved user id
// and role into c.Locals for the rest of the request.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("No token provided"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("No token provided"))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("No token provided"))
		}
		userID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("Invalid token"))
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireEmployee restricts an operation to the employee role. Must run
// after AuthMiddleware.
func RequireEmployee() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) != entity.RoleEmployee {
			return c.Status(fiber.StatusForbidden).JSON(dto.Error("Access denied. Employee only."))
		}
		return c.Next()
	}
}

// GetUserID returns the authenticated user's id from the request context.
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole returns the authenticated user's role from the request context.
func GetRole(c *fiber.Ctx) entity.Role {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return entity.Role(s)
}
