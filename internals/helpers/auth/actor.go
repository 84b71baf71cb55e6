package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys hydrated by the JWT middleware.
const (
	LocAdminUserID = "admin_user_id"
	LocAdminEmail  = "admin_email"
)

// GetAdminIDFromToken returns the acting admin's id. Core operations take the
// actor explicitly; nothing downstream reads ambient locals.
func GetAdminIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocAdminUserID)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid admin id in token")
	}
	return id, nil
}
