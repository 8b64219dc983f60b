package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals que llena el middleware de auth
const (
	LocUserID    = "user_id"
	LocRole      = "role"
	LocDocenteID = "docente_id"
)

// GetUserIDFromToken toma user_id de c.Locals("user_id").
// 401 si no hay sesión, 400 si el formato no es válido.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocUserID, "Usuario no autenticado")
}

// GetDocenteIDFromToken toma docente_id de c.Locals; solo está presente
// cuando el rol del token es docente.
func GetDocenteIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocDocenteID, "La sesión no pertenece a un docente")
}

func GetRoleFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRole).(string); ok {
		return v
	}
	return ""
}

func localUUID(c *fiber.Ctx, key, missingMsg string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, missingMsg)
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, missingMsg)
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, missingMsg)
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID inválido en el token")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID inválido en el token")
	}
}
