// file: internals/features/academia/asistencia/route/asistencia_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mateatletas_backend/internals/features/academia/asistencia/controller"
)

// AsistenciaDocenteRoutes: marcar y consultar asistencia de las clases
// propias, más los reportes del panel docente.
func AsistenciaDocenteRoutes(docente fiber.Router, db *gorm.DB) {
	asistenciaCtrl := controller.NewAsistenciaController(db)
	reportesCtrl := controller.NewReportesController(db)

	docente.Post("/clases/:clase_id/asistencia/:estudiante_id", asistenciaCtrl.Marcar)
	docente.Post("/clases/:clase_id/asistencia", asistenciaCtrl.MarcarLote)
	docente.Post("/grupos/:grupo_id/asistencia", asistenciaCtrl.MarcarLoteGrupo)

	docente.Get("/clases/:clase_id/estadisticas", reportesCtrl.EstadisticasClase)
	docente.Get("/estudiantes/:estudiante_id/historial", reportesCtrl.HistorialEstudiante)

	me := docente.Group("/me")
	me.Get("/resumen", reportesCtrl.MiResumen)
	me.Get("/reportes", reportesCtrl.MisReportes)
	me.Get("/observaciones", reportesCtrl.MisObservaciones)
}

// AsistenciaAdminRoutes: un admin opera sobre cualquier clase.
func AsistenciaAdminRoutes(admin fiber.Router, db *gorm.DB) {
	asistenciaCtrl := controller.NewAsistenciaController(db)
	reportesCtrl := controller.NewReportesController(db)

	admin.Post("/clases/:clase_id/asistencia/:estudiante_id", asistenciaCtrl.Marcar)
	admin.Post("/clases/:clase_id/asistencia", asistenciaCtrl.MarcarLote)
	admin.Post("/grupos/:grupo_id/asistencia", asistenciaCtrl.MarcarLoteGrupo)

	admin.Get("/clases/:clase_id/estadisticas", reportesCtrl.EstadisticasClase)
	admin.Get("/estudiantes/:estudiante_id/historial", reportesCtrl.HistorialEstudiante)
	admin.Get("/docentes/:docente_id/resumen", reportesCtrl.ResumenDocente)
}
