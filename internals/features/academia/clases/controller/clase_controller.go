// file: internals/features/academia/clases/controller/clase_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mateatletas_backend/internals/constants"
	"mateatletas_backend/internals/features/academia/clases/dto"
	"mateatletas_backend/internals/features/academia/clases/service"
	helper "mateatletas_backend/internals/helpers"
)

var validate = validator.New()

type ClaseController struct {
	DB      *gorm.DB
	Service *service.ClaseService
}

func NewClaseController(db *gorm.DB) *ClaseController {
	return &ClaseController{
		DB:      db,
		Service: service.NewClaseService(db),
	}
}

// POST /clases
func (ctrl *ClaseController) Programar(c *fiber.Ctx) error {
	var req dto.ProgramarClaseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	clase, err := ctrl.Service.Programar(&req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Clase programada exitosamente", clase)
}

// PATCH /clases/:clase_id/cancelar
func (ctrl *ClaseController) Cancelar(c *fiber.Ctx) error {
	claseID, err := uuid.Parse(c.Params("clase_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de clase inválido")
	}

	// Un admin cancela cualquier clase; un docente solo las propias.
	var docenteID *uuid.UUID
	if helper.GetRoleFromToken(c) == constants.RoleDocente {
		id, err := helper.GetDocenteIDFromToken(c)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		docenteID = &id
	}

	clase, err := ctrl.Service.Cancelar(claseID, docenteID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Clase cancelada", clase)
}

// GET /clases?fecha_desde=&fecha_hasta=&estado=&docente_id=&ruta_curricular_id=
func (ctrl *ClaseController) Listar(c *fiber.Ctx) error {
	var filtros dto.FiltrarClasesRequest
	if err := c.QueryParser(&filtros); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Filtros inválidos")
	}
	if err := validate.Struct(filtros); err != nil {
		return helper.ValidationError(c, err)
	}

	clases, err := ctrl.Service.Listar(&filtros)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Listado de clases", fiber.Map{
		"total":  len(clases),
		"clases": clases,
	})
}

// GET /clases/:clase_id
func (ctrl *ClaseController) Obtener(c *fiber.Ctx) error {
	claseID, err := uuid.Parse(c.Params("clase_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de clase inválido")
	}

	detalle, err := ctrl.Service.ObtenerDetalle(claseID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Detalle de la clase", detalle)
}

// GET /docentes/me/clases
func (ctrl *ClaseController) MisClases(c *fiber.Ctx) error {
	docenteID, err := helper.GetDocenteIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	clases, err := ctrl.Service.ListarDelDocente(docenteID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Clases del docente", fiber.Map{
		"total":  len(clases),
		"clases": clases,
	})
}
