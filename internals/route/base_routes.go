// file: internals/route/base_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "mateatletas_backend/internals/helpers"
)

// BaseRoutes: raíz y healthcheck (incluye ping a la base).
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return helper.Success(c, "Mateatletas API", fiber.Map{
			"service": "mateatletas_backend",
			"status":  "ok",
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err != nil {
			return helper.Error(c, fiber.StatusServiceUnavailable, "Base de datos no disponible")
		}
		if err := sqlDB.Ping(); err != nil {
			return helper.Error(c, fiber.StatusServiceUnavailable, "Base de datos no disponible")
		}
		return helper.Success(c, "Servicio saludable", fiber.Map{"database": "up"})
	})
}
