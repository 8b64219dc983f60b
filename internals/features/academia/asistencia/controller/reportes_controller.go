// file: internals/features/academia/asistencia/controller/reportes_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mateatletas_backend/internals/constants"
	"mateatletas_backend/internals/features/academia/asistencia/dto"
	"mateatletas_backend/internals/features/academia/asistencia/service"
	helper "mateatletas_backend/internals/helpers"
)

type ReportesController struct {
	DB       *gorm.DB
	Reportes *service.ReportesService
}

func NewReportesController(db *gorm.DB) *ReportesController {
	return &ReportesController{
		DB:       db,
		Reportes: service.NewReportesService(db),
	}
}

// GET /clases/:clase_id/estadisticas
func (ctrl *ReportesController) EstadisticasClase(c *fiber.Ctx) error {
	claseID, err := uuid.Parse(c.Params("clase_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de clase inválido")
	}

	var docenteID *uuid.UUID
	if helper.GetRoleFromToken(c) == constants.RoleDocente {
		id, err := helper.GetDocenteIDFromToken(c)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		docenteID = &id
	}

	stats, err := ctrl.Reportes.EstadisticasClase(claseID, docenteID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Estadísticas de la clase", stats)
}

// GET /estudiantes/:estudiante_id/historial?clase_id=
func (ctrl *ReportesController) HistorialEstudiante(c *fiber.Ctx) error {
	estudianteID, err := uuid.Parse(c.Params("estudiante_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de estudiante inválido")
	}

	var filtros dto.FiltrarHistorialRequest
	if err := c.QueryParser(&filtros); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Filtros inválidos")
	}

	historial, err := ctrl.Reportes.HistorialEstudiante(estudianteID, &filtros)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Historial de asistencia", historial)
}

// GET /docentes/me/resumen  (docente autenticado)
func (ctrl *ReportesController) MiResumen(c *fiber.Ctx) error {
	docenteID, err := helper.GetDocenteIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return ctrl.resumen(c, docenteID)
}

// GET /docentes/:docente_id/resumen  (admin)
func (ctrl *ReportesController) ResumenDocente(c *fiber.Ctx) error {
	docenteID, err := uuid.Parse(c.Params("docente_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de docente inválido")
	}
	return ctrl.resumen(c, docenteID)
}

func (ctrl *ReportesController) resumen(c *fiber.Ctx, docenteID uuid.UUID) error {
	resumen, err := ctrl.Reportes.ResumenDocente(docenteID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Resumen de asistencia del docente", resumen)
}

// GET /docentes/me/reportes
func (ctrl *ReportesController) MisReportes(c *fiber.Ctx) error {
	docenteID, err := helper.GetDocenteIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	reportes, err := ctrl.Reportes.ReportesDocente(docenteID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Reportes de asistencia", reportes)
}

// GET /docentes/me/observaciones?estudiante_id=&fecha_desde=&fecha_hasta=&limit=
func (ctrl *ReportesController) MisObservaciones(c *fiber.Ctx) error {
	docenteID, err := helper.GetDocenteIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var filtros dto.FiltrarObservacionesRequest
	if err := c.QueryParser(&filtros); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Filtros inválidos")
	}
	if err := validate.Struct(filtros); err != nil {
		return helper.ValidationError(c, err)
	}

	observaciones, err := ctrl.Reportes.ObservacionesDocente(docenteID, &filtros)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Observaciones registradas", fiber.Map{
		"total":         len(observaciones),
		"observaciones": observaciones,
	})
}
