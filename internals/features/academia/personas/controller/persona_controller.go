// file: internals/features/academia/personas/controller/persona_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mateatletas_backend/internals/features/academia/personas/dto"
	m "mateatletas_backend/internals/features/academia/personas/model"
	helper "mateatletas_backend/internals/helpers"
)

var validate = validator.New()

// PersonaController administra tutores y estudiantes. CRUD directo sobre
// GORM, sin capa de servicio: acá no hay reglas de negocio.
type PersonaController struct {
	DB *gorm.DB
}

func NewPersonaController(db *gorm.DB) *PersonaController {
	return &PersonaController{DB: db}
}

/* ===================== tutores ===================== */

// POST /tutores
func (ctrl *PersonaController) CrearTutor(c *fiber.Ctx) error {
	var req dto.CrearTutorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var repetidos int64
	if err := ctrl.DB.Model(&m.TutorModel{}).
		Where("tutor_email = ?", req.Email).
		Count(&repetidos).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el tutor")
	}
	if repetidos > 0 {
		return helper.Error(c, fiber.StatusConflict, "Ya existe un tutor con ese email")
	}

	tutor := req.ToModel()
	if err := ctrl.DB.Create(tutor).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el tutor")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tutor creado exitosamente", tutor)
}

// GET /tutores?page=&per_page=
func (ctrl *PersonaController) ListarTutores(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&m.TutorModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar tutores")
	}

	var tutores []m.TutorModel
	if err := ctrl.DB.
		Order("tutor_apellido ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&tutores).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar tutores")
	}

	return helper.Success(c, "Listado de tutores", fiber.Map{
		"tutores":    tutores,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

/* ===================== estudiantes ===================== */

// POST /estudiantes
func (ctrl *PersonaController) CrearEstudiante(c *fiber.Ctx) error {
	var req dto.CrearEstudianteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existeTutor int64
	if err := ctrl.DB.Model(&m.TutorModel{}).
		Where("tutor_id = ?", req.TutorID).
		Count(&existeTutor).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el estudiante")
	}
	if existeTutor == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Tutor no encontrado")
	}

	estudiante := req.ToModel()
	if err := ctrl.DB.Create(estudiante).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el estudiante")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Estudiante creado exitosamente", estudiante)
}

// GET /estudiantes?page=&per_page=&tutor_id=
func (ctrl *PersonaController) ListarEstudiantes(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&m.EstudianteModel{})
	if raw := c.Query("tutor_id"); raw != "" {
		tutorID, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "ID de tutor inválido")
		}
		q = q.Where("estudiante_tutor_id = ?", tutorID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar estudiantes")
	}

	var estudiantes []m.EstudianteModel
	if err := q.
		Preload("Tutor").
		Order("estudiante_apellido ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&estudiantes).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar estudiantes")
	}

	return helper.Success(c, "Listado de estudiantes", fiber.Map{
		"estudiantes": estudiantes,
		"pagination":  helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// GET /estudiantes/:estudiante_id
func (ctrl *PersonaController) ObtenerEstudiante(c *fiber.Ctx) error {
	estudianteID, err := uuid.Parse(c.Params("estudiante_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de estudiante inválido")
	}

	var estudiante m.EstudianteModel
	if err := ctrl.DB.
		Preload("Tutor").
		Where("estudiante_id = ?", estudianteID).
		First(&estudiante).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Estudiante no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo obtener el estudiante")
	}
	return helper.Success(c, "Detalle del estudiante", estudiante)
}
