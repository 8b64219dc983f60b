// file: internals/features/academia/personas/controller/docente_controller.go
package controller

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mateatletas_backend/internals/features/academia/personas/dto"
	m "mateatletas_backend/internals/features/academia/personas/model"
	helper "mateatletas_backend/internals/helpers"
)

type DocenteController struct {
	DB *gorm.DB
}

func NewDocenteController(db *gorm.DB) *DocenteController {
	return &DocenteController{DB: db}
}

// POST /docentes
// Genera una credencial temporal y la devuelve UNA sola vez; en la base
// queda solo el hash.
func (ctrl *DocenteController) CrearDocente(c *fiber.Ctx) error {
	var req dto.CrearDocenteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var repetidos int64
	if err := ctrl.DB.Model(&m.DocenteModel{}).
		Where("docente_email = ?", req.Email).
		Count(&repetidos).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el docente")
	}
	if repetidos > 0 {
		return helper.Error(c, fiber.StatusConflict, "Ya existe un docente con ese email")
	}

	passwordTemporal, err := generarPasswordTemporal()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo generar la credencial")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(passwordTemporal), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo generar la credencial")
	}

	docente := &m.DocenteModel{
		DocenteNombre:         req.Nombre,
		DocenteApellido:       req.Apellido,
		DocenteEmail:          req.Email,
		DocenteTitulo:         req.Titulo,
		DocentePasswordHash:   string(hash),
		DocenteEspecialidades: req.Especialidades,
	}
	if err := ctrl.DB.Create(docente).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el docente")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Docente creado exitosamente", dto.DocenteCreadoResponse{
		Docente:          docente,
		PasswordTemporal: passwordTemporal,
	})
}

// GET /docentes
func (ctrl *DocenteController) ListarDocentes(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&m.DocenteModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar docentes")
	}

	var docentes []m.DocenteModel
	if err := ctrl.DB.
		Order("docente_apellido ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&docentes).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar docentes")
	}

	return helper.Success(c, "Listado de docentes", fiber.Map{
		"docentes":   docentes,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

/* ===================== rutas curriculares ===================== */

// POST /rutas-curriculares
func (ctrl *DocenteController) CrearRuta(c *fiber.Ctx) error {
	var req dto.CrearRutaCurricularRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var repetidos int64
	if err := ctrl.DB.Model(&m.RutaCurricularModel{}).
		Where("ruta_curricular_nombre = ?", req.Nombre).
		Count(&repetidos).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear la ruta curricular")
	}
	if repetidos > 0 {
		return helper.Error(c, fiber.StatusConflict, "Ya existe una ruta curricular con ese nombre")
	}

	ruta := &m.RutaCurricularModel{
		RutaCurricularNombre:    req.Nombre,
		RutaCurricularColor:     req.Color,
		RutaCurricularEtiquetas: req.Etiquetas,
	}
	if err := ctrl.DB.Create(ruta).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear la ruta curricular")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Ruta curricular creada exitosamente", ruta)
}

// GET /rutas-curriculares
func (ctrl *DocenteController) ListarRutas(c *fiber.Ctx) error {
	var rutas []m.RutaCurricularModel
	if err := ctrl.DB.Order("ruta_curricular_nombre ASC").Find(&rutas).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo listar rutas curriculares")
	}
	return helper.Success(c, "Listado de rutas curriculares", fiber.Map{
		"total": len(rutas),
		"rutas": rutas,
	})
}

func generarPasswordTemporal() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
