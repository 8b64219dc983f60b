// file: internals/features/academia/clases/route/clases_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mateatletas_backend/internals/features/academia/clases/controller"
)

// ClasesAdminRoutes: programación y grupos, solo admin.
func ClasesAdminRoutes(admin fiber.Router, db *gorm.DB) {
	claseCtrl := controller.NewClaseController(db)
	grupoCtrl := controller.NewGrupoController(db)

	clases := admin.Group("/clases")
	clases.Post("/", claseCtrl.Programar)
	clases.Get("/", claseCtrl.Listar)
	clases.Get("/:clase_id", claseCtrl.Obtener)
	clases.Patch("/:clase_id/cancelar", claseCtrl.Cancelar)

	grupos := admin.Group("/grupos")
	grupos.Post("/", grupoCtrl.Crear)
	grupos.Get("/", grupoCtrl.Listar)
	grupos.Get("/:grupo_id", grupoCtrl.Obtener)
}

// ClasesDocenteRoutes: lo que el docente puede hacer con sus clases.
func ClasesDocenteRoutes(docente fiber.Router, db *gorm.DB) {
	claseCtrl := controller.NewClaseController(db)

	docente.Get("/clases", claseCtrl.MisClases)
	docente.Get("/clases/:clase_id", claseCtrl.Obtener)
	docente.Patch("/clases/:clase_id/cancelar", claseCtrl.Cancelar)
}
