// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"mateatletas_backend/internals/configs"
	helper "mateatletas_backend/internals/helpers"
)

// AuthMiddleware verifica el JWT y deja la identidad en Locals:
// user_id siempre; role; docente_id solo cuando el rol es docente.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET vacío")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		c.Locals(helper.LocUserID, userID.String())

		role := extractRole(claims)
		if role != "" {
			c.Locals(helper.LocRole, role)
		}

		// docente_id viaja como claim propio para los checks de ownership
		if docenteID, ok := extractDocenteID(claims); ok {
			c.Locals(helper.LocDocenteID, docenteID.String())
		}

		return c.Next()
	}
}
