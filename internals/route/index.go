// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mateatletas_backend/internals/constants"
	asistenciaRoute "mateatletas_backend/internals/features/academia/asistencia/route"
	clasesRoute "mateatletas_backend/internals/features/academia/clases/route"
	inscripcionesRoute "mateatletas_backend/internals/features/academia/inscripciones/route"
	personasRoute "mateatletas_backend/internals/features/academia/personas/route"
	"mateatletas_backend/internals/middlewares/auth"
)

// SetupRoutes cuelga todo el árbol de rutas:
//   /api/a  -> panel admin (rol admin)
//   /api/d  -> panel docente (roles admin y docente)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api")

	admin := api.Group("/a",
		auth.AuthMiddleware(),
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("el panel de administración"), constants.AdminOnly),
	)
	personasRoute.PersonasAdminRoutes(admin, db)
	clasesRoute.ClasesAdminRoutes(admin, db)
	inscripcionesRoute.InscripcionesAdminRoutes(admin, db)
	asistenciaRoute.AsistenciaAdminRoutes(admin, db)

	docente := api.Group("/d",
		auth.AuthMiddleware(),
		auth.OnlyRolesSlice(constants.RoleErrorDocente("el panel del docente"), constants.StaffRoles),
	)
	clasesRoute.ClasesDocenteRoutes(docente, db)
	inscripcionesRoute.InscripcionesDocenteRoutes(docente, db)
	asistenciaRoute.AsistenciaDocenteRoutes(docente, db)
}
