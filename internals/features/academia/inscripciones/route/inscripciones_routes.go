// file: internals/features/academia/inscripciones/route/inscripciones_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mateatletas_backend/internals/features/academia/inscripciones/controller"
)

// InscripcionesAdminRoutes: membresías de clases y grupos, solo admin.
func InscripcionesAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewInscripcionController(db)

	admin.Post("/clases/:clase_id/inscripciones", ctrl.Inscribir)
	admin.Get("/clases/:clase_id/inscripciones", ctrl.Roster)
	admin.Delete("/clases/:clase_id/inscripciones/:estudiante_id", ctrl.Desinscribir)

	admin.Put("/grupos/:grupo_id/roster", ctrl.ReemplazarRoster)
	admin.Get("/grupos/:grupo_id/estudiantes", ctrl.RosterGrupo)
	admin.Post("/grupos/:grupo_id/estudiantes", ctrl.AgregarEstudiantes)
	admin.Delete("/grupos/:grupo_id/estudiantes/:estudiante_id", ctrl.RemoverEstudiante)
}

// InscripcionesDocenteRoutes: el docente solo consulta rosters.
func InscripcionesDocenteRoutes(docente fiber.Router, db *gorm.DB) {
	ctrl := controller.NewInscripcionController(db)

	docente.Get("/clases/:clase_id/inscripciones", ctrl.Roster)
	docente.Get("/grupos/:grupo_id/estudiantes", ctrl.RosterGrupo)
}
