package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"academia_backend/internals/constants"
)

// Locals keys filled by the auth middleware. Keep these uniform across
// middleware and controllers.
const (
	LocUserID   = "user_id"
	LocUserRole = "userRole"
)

// GetUserID returns the authenticated user's id from Locals.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	switch t := v.(type) {
	case uuid.UUID:
		return t, nil
	case string:
		id, err := uuid.Parse(strings.TrimSpace(t))
		if err == nil {
			return id, nil
		}
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing user id")
}

// GetRole returns the caller's role from Locals ("" when absent).
func GetRole(c *fiber.Ctx) string {
	if role, ok := c.Locals(LocUserRole).(string); ok {
		return role
	}
	return ""
}

func IsAdmin(c *fiber.Ctx) bool {
	return GetRole(c) == constants.RoleAdmin
}

func IsTeacher(c *fiber.Ctx) bool {
	return GetRole(c) == constants.RoleTeacher
}

// EnsureRole fails with 403 unless the caller holds one of the roles.
func EnsureRole(c *fiber.Ctx, message string, roles ...string) error {
	role := GetRole(c)
	if role == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing role information")
	}
	for _, r := range roles {
		if role == r {
			return nil
		}
	}
	if message == "" {
		message = "Forbidden: you are not authorized to access this resource"
	}
	return fiber.NewError(fiber.StatusForbidden, message)
}
