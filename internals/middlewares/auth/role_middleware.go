// internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "mateatletas_backend/internals/helpers"
)

// OnlyRolesSlice restringe el acceso a los roles dados.
// Se monta después de AuthMiddleware.
func OnlyRolesSlice(message string, roles []string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := helper.GetRoleFromToken(c)
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, message)
		}
		return c.Next()
	}
}
