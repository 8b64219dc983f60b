// file: internals/features/academia/inscripciones/controller/inscripcion_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mateatletas_backend/internals/features/academia/inscripciones/dto"
	m "mateatletas_backend/internals/features/academia/inscripciones/model"
	"mateatletas_backend/internals/features/academia/inscripciones/service"
	helper "mateatletas_backend/internals/helpers"
)

var validate = validator.New()

type InscripcionController struct {
	DB       *gorm.DB
	Registry *service.RegistryService
}

func NewInscripcionController(db *gorm.DB) *InscripcionController {
	return &InscripcionController{
		DB:       db,
		Registry: service.NewRegistryService(db),
	}
}

/* ===================== clases ===================== */

// POST /clases/:clase_id/inscripciones
func (ctrl *InscripcionController) Inscribir(c *fiber.Ctx) error {
	claseID, err := uuid.Parse(c.Params("clase_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de clase inválido")
	}

	var req dto.InscribirEstudiantesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	inscripciones, err := ctrl.Registry.Inscribir(claseID, req.EstudianteIDs)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Estudiantes inscritos exitosamente", rosterItems(inscripciones))
}

// DELETE /clases/:clase_id/inscripciones/:estudiante_id
func (ctrl *InscripcionController) Desinscribir(c *fiber.Ctx) error {
	claseID, err := uuid.Parse(c.Params("clase_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de clase inválido")
	}
	estudianteID, err := uuid.Parse(c.Params("estudiante_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de estudiante inválido")
	}

	if err := ctrl.Registry.Desinscribir(claseID, estudianteID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Inscripción eliminada", nil)
}

// GET /clases/:clase_id/inscripciones
func (ctrl *InscripcionController) Roster(c *fiber.Ctx) error {
	claseID, err := uuid.Parse(c.Params("clase_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de clase inválido")
	}

	roster, err := ctrl.Registry.ListarRoster(claseID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Roster de la clase", fiber.Map{
		"total":  len(roster),
		"roster": rosterItems(roster),
	})
}

/* ===================== grupos ===================== */

// PUT /grupos/:grupo_id/roster
func (ctrl *InscripcionController) ReemplazarRoster(c *fiber.Ctx) error {
	grupoID, err := uuid.Parse(c.Params("grupo_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de grupo inválido")
	}

	var req dto.ReemplazarRosterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	roster, err := ctrl.Registry.ReemplazarRoster(grupoID, req.EstudianteIDs)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Roster del grupo reemplazado", rosterItemsGrupo(roster))
}

// POST /grupos/:grupo_id/estudiantes
func (ctrl *InscripcionController) AgregarEstudiantes(c *fiber.Ctx) error {
	grupoID, err := uuid.Parse(c.Params("grupo_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de grupo inválido")
	}

	var req dto.InscribirEstudiantesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	inscripciones, err := ctrl.Registry.AgregarEstudiantes(grupoID, req.EstudianteIDs)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Estudiantes agregados al grupo", rosterItemsGrupo(inscripciones))
}

// DELETE /grupos/:grupo_id/estudiantes/:estudiante_id
func (ctrl *InscripcionController) RemoverEstudiante(c *fiber.Ctx) error {
	grupoID, err := uuid.Parse(c.Params("grupo_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de grupo inválido")
	}
	estudianteID, err := uuid.Parse(c.Params("estudiante_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de estudiante inválido")
	}

	if err := ctrl.Registry.RemoverEstudiante(grupoID, estudianteID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Estudiante removido del grupo", nil)
}

// GET /grupos/:grupo_id/estudiantes
func (ctrl *InscripcionController) RosterGrupo(c *fiber.Ctx) error {
	grupoID, err := uuid.Parse(c.Params("grupo_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de grupo inválido")
	}

	roster, err := ctrl.Registry.ListarRosterGrupo(grupoID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Roster del grupo", fiber.Map{
		"total":  len(roster),
		"roster": rosterItemsGrupo(roster),
	})
}

/* ===================== internos ===================== */

func rosterItems(inscripciones []m.InscripcionClaseModel) []dto.RosterItem {
	out := make([]dto.RosterItem, 0, len(inscripciones))
	for i := range inscripciones {
		out = append(out, dto.NuevoRosterItem(&inscripciones[i]))
	}
	return out
}

func rosterItemsGrupo(inscripciones []m.InscripcionClaseGrupoModel) []dto.RosterItem {
	out := make([]dto.RosterItem, 0, len(inscripciones))
	for i := range inscripciones {
		out = append(out, dto.NuevoRosterItemDeGrupo(&inscripciones[i]))
	}
	return out
}
