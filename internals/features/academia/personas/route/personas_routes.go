// file: internals/features/academia/personas/route/personas_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mateatletas_backend/internals/features/academia/personas/controller"
)

// PersonasAdminRoutes monta el ABM de personas bajo el grupo admin.
func PersonasAdminRoutes(admin fiber.Router, db *gorm.DB) {
	personaCtrl := controller.NewPersonaController(db)
	docenteCtrl := controller.NewDocenteController(db)

	tutores := admin.Group("/tutores")
	tutores.Post("/", personaCtrl.CrearTutor)
	tutores.Get("/", personaCtrl.ListarTutores)

	estudiantes := admin.Group("/estudiantes")
	estudiantes.Post("/", personaCtrl.CrearEstudiante)
	estudiantes.Get("/", personaCtrl.ListarEstudiantes)
	estudiantes.Get("/:estudiante_id", personaCtrl.ObtenerEstudiante)

	docentes := admin.Group("/docentes")
	docentes.Post("/", docenteCtrl.CrearDocente)
	docentes.Get("/", docenteCtrl.ListarDocentes)

	rutas := admin.Group("/rutas-curriculares")
	rutas.Post("/", docenteCtrl.CrearRuta)
	rutas.Get("/", docenteCtrl.ListarRutas)
}
