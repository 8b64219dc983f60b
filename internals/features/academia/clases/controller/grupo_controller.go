// file: internals/features/academia/clases/controller/grupo_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mateatletas_backend/internals/features/academia/clases/dto"
	"mateatletas_backend/internals/features/academia/clases/service"
	helper "mateatletas_backend/internals/helpers"
)

type GrupoController struct {
	DB      *gorm.DB
	Service *service.GrupoService
}

func NewGrupoController(db *gorm.DB) *GrupoController {
	return &GrupoController{
		DB:      db,
		Service: service.NewGrupoService(db),
	}
}

// POST /grupos
func (ctrl *GrupoController) Crear(c *fiber.Ctx) error {
	var req dto.CrearClaseGrupoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	grupo, err := ctrl.Service.Crear(&req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Grupo creado exitosamente", grupo)
}

// GET /grupos
func (ctrl *GrupoController) Listar(c *fiber.Ctx) error {
	grupos, err := ctrl.Service.Listar()
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Listado de grupos", fiber.Map{
		"total":  len(grupos),
		"grupos": grupos,
	})
}

// GET /grupos/:grupo_id
func (ctrl *GrupoController) Obtener(c *fiber.Ctx) error {
	grupoID, err := uuid.Parse(c.Params("grupo_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de grupo inválido")
	}

	grupo, err := ctrl.Service.Obtener(grupoID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Detalle del grupo", grupo)
}
