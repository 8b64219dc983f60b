package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"mateatletas_backend/internals/middlewares/logger"
)

// SetupMiddlewares cuelga la cadena base en orden: recovery primero,
// después CORS, límite de tasa global y logging.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(logger.LoggerMiddleware())
}
