// file: internals/features/academia/asistencia/controller/asistencia_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mateatletas_backend/internals/constants"
	"mateatletas_backend/internals/features/academia/asistencia/dto"
	"mateatletas_backend/internals/features/academia/asistencia/service"
	clasesService "mateatletas_backend/internals/features/academia/clases/service"
	helper "mateatletas_backend/internals/helpers"
)

var validate = validator.New()

type AsistenciaController struct {
	DB       *gorm.DB
	Recorder *service.RecorderService
	Grupos   *clasesService.GrupoService
}

func NewAsistenciaController(db *gorm.DB) *AsistenciaController {
	return &AsistenciaController{
		DB:       db,
		Recorder: service.NewRecorderService(db),
		Grupos:   clasesService.NewGrupoService(db),
	}
}

// POST /clases/:clase_id/asistencia/:estudiante_id
func (ctrl *AsistenciaController) Marcar(c *fiber.Ctx) error {
	claseID, err := uuid.Parse(c.Params("clase_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de clase inválido")
	}
	estudianteID, err := uuid.Parse(c.Params("estudiante_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de estudiante inválido")
	}

	var req dto.MarcarAsistenciaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	docenteID, err := ctrl.docenteActuante(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	registro, err := ctrl.Recorder.Marcar(claseID, estudianteID, &req, docenteID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Asistencia registrada", registro)
}

// POST /clases/:clase_id/asistencia
func (ctrl *AsistenciaController) MarcarLote(c *fiber.Ctx) error {
	claseID, err := uuid.Parse(c.Params("clase_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de clase inválido")
	}

	var req dto.MarcarAsistenciaLoteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	docenteID, err := ctrl.docenteActuante(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	resultados, err := ctrl.Recorder.MarcarLote(claseID, req.Asistencias, docenteID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Lote de asistencia procesado", fiber.Map{
		"total":      len(resultados),
		"resultados": resultados,
	})
}

// POST /grupos/:grupo_id/asistencia
// La fecha del body resuelve la clase concreta del grupo para ese día; si
// no existe todavía, se crea con el roster vigente del grupo.
func (ctrl *AsistenciaController) MarcarLoteGrupo(c *fiber.Ctx) error {
	grupoID, err := uuid.Parse(c.Params("grupo_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de grupo inválido")
	}

	var req dto.MarcarAsistenciaLoteGrupoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Fecha inválida, formato esperado AAAA-MM-DD")
	}

	docenteID, err := ctrl.docenteActuante(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	clase, err := ctrl.Grupos.ResolverClaseDeFecha(grupoID, fecha)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	resultados, err := ctrl.Recorder.MarcarLote(clase.ClaseID, req.Asistencias, docenteID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Lote de asistencia procesado", fiber.Map{
		"clase_id":   clase.ClaseID,
		"fecha":      req.Fecha,
		"total":      len(resultados),
		"resultados": resultados,
	})
}

// docenteActuante devuelve el docente del token cuando el rol es docente;
// un admin opera sin restricción de titularidad.
func (ctrl *AsistenciaController) docenteActuante(c *fiber.Ctx) (*uuid.UUID, error) {
	if helper.GetRoleFromToken(c) != constants.RoleDocente {
		return nil, nil
	}
	id, err := helper.GetDocenteIDFromToken(c)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
