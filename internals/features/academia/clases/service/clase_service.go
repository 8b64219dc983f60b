// file: internals/features/academia/clases/service/clase_service.go
package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	asistenciaModel "mateatletas_backend/internals/features/academia/asistencia/model"
	"mateatletas_backend/internals/features/academia/clases/dto"
	m "mateatletas_backend/internals/features/academia/clases/model"
	inscModel "mateatletas_backend/internals/features/academia/inscripciones/model"
	personasModel "mateatletas_backend/internals/features/academia/personas/model"
)

// ClaseService programa, cancela y lista clases concretas.
type ClaseService struct {
	DB *gorm.DB
}

func NewClaseService(db *gorm.DB) *ClaseService {
	return &ClaseService{DB: db}
}

// Programar crea una clase futura validando docente y ruta.
func (s *ClaseService) Programar(req *dto.ProgramarClaseRequest) (*m.ClaseModel, error) {
	var docente personasModel.DocenteModel
	if err := s.DB.Where("docente_id = ?", req.DocenteID).First(&docente).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Docente no encontrado")
		}
		return nil, err
	}

	if req.RutaCurricularID != nil {
		var n int64
		if err := s.DB.Model(&personasModel.RutaCurricularModel{}).
			Where("ruta_curricular_id = ?", *req.RutaCurricularID).
			Count(&n).Error; err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, fiber.NewError(fiber.StatusNotFound, "Ruta curricular no encontrada")
		}
	}

	if !req.FechaHoraInicio.After(time.Now()) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "La fecha de inicio debe ser en el futuro")
	}

	clase := req.ToModel()
	if err := s.DB.Create(clase).Error; err != nil {
		return nil, err
	}
	return s.Obtener(clase.ClaseID)
}

// Cancelar marca la clase como cancelada y libera todos los cupos. La fila
// no se borra: el historial de asistencia la sigue referenciando.
// docenteID no nil restringe la operación al titular de la clase.
func (s *ClaseService) Cancelar(claseID uuid.UUID, docenteID *uuid.UUID) (*m.ClaseModel, error) {
	var clase m.ClaseModel
	if err := s.DB.Where("clase_id = ?", claseID).First(&clase).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Clase no encontrada")
		}
		return nil, err
	}
	if clase.ClaseEstado == m.ClaseEstadoCancelada {
		return nil, fiber.NewError(fiber.StatusBadRequest, "La clase ya está cancelada")
	}
	if docenteID != nil && clase.ClaseDocenteID != *docenteID {
		return nil, fiber.NewError(fiber.StatusForbidden, "No tienes permiso para cancelar esta clase")
	}

	if err := s.DB.Model(&clase).Updates(map[string]interface{}{
		"clase_estado":         m.ClaseEstadoCancelada,
		"clase_cupos_ocupados": 0,
	}).Error; err != nil {
		return nil, err
	}
	return s.Obtener(claseID)
}

// Listar aplica los filtros presentes, cada uno como predicado aparte,
// y ordena por fecha de inicio ascendente.
func (s *ClaseService) Listar(f *dto.FiltrarClasesRequest) ([]m.ClaseModel, error) {
	q := s.DB.Model(&m.ClaseModel{})
	if f != nil {
		if f.FechaDesde != nil {
			q = q.Where("clase_fecha_hora_inicio >= ?", *f.FechaDesde)
		}
		if f.FechaHasta != nil {
			q = q.Where("clase_fecha_hora_inicio <= ?", *f.FechaHasta)
		}
		if f.Estado != nil {
			q = q.Where("clase_estado = ?", *f.Estado)
		}
		if f.DocenteID != nil {
			q = q.Where("clase_docente_id = ?", *f.DocenteID)
		}
		if f.RutaCurricularID != nil {
			q = q.Where("clase_ruta_curricular_id = ?", *f.RutaCurricularID)
		}
	}

	var clases []m.ClaseModel
	if err := q.
		Preload("Docente").
		Preload("RutaCurricular").
		Order("clase_fecha_hora_inicio ASC").
		Find(&clases).Error; err != nil {
		return nil, err
	}
	return clases, nil
}

// Obtener trae una clase con docente y ruta precargados.
func (s *ClaseService) Obtener(claseID uuid.UUID) (*m.ClaseModel, error) {
	var clase m.ClaseModel
	if err := s.DB.
		Preload("Docente").
		Preload("RutaCurricular").
		Where("clase_id = ?", claseID).
		First(&clase).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Clase no encontrada")
		}
		return nil, err
	}
	return &clase, nil
}

// DetalleClase es la vista completa de una clase: la clase, su roster y los
// registros de asistencia ya marcados.
type DetalleClase struct {
	Clase       *m.ClaseModel                     `json:"clase"`
	Roster      []inscModel.InscripcionClaseModel `json:"roster"`
	Asistencias []asistenciaModel.AsistenciaModel `json:"asistencias"`
}

// ObtenerDetalle arma la vista completa de una clase en tres lecturas.
func (s *ClaseService) ObtenerDetalle(claseID uuid.UUID) (*DetalleClase, error) {
	clase, err := s.Obtener(claseID)
	if err != nil {
		return nil, err
	}

	var roster []inscModel.InscripcionClaseModel
	if err := s.DB.
		Joins("JOIN estudiantes ON estudiantes.estudiante_id = inscripcion_clases.inscripcion_clase_estudiante_id").
		Where("inscripcion_clase_clase_id = ?", claseID).
		Order("estudiantes.estudiante_apellido ASC").
		Preload("Estudiante").
		Find(&roster).Error; err != nil {
		return nil, err
	}

	var asistencias []asistenciaModel.AsistenciaModel
	if err := s.DB.
		Preload("Estudiante").
		Where("asistencia_clase_id = ?", claseID).
		Find(&asistencias).Error; err != nil {
		return nil, err
	}

	return &DetalleClase{Clase: clase, Roster: roster, Asistencias: asistencias}, nil
}

// ListarDelDocente devuelve las clases de un docente, próximas primero.
func (s *ClaseService) ListarDelDocente(docenteID uuid.UUID) ([]m.ClaseModel, error) {
	var clases []m.ClaseModel
	if err := s.DB.
		Preload("RutaCurricular").
		Where("clase_docente_id = ?", docenteID).
		Order("clase_fecha_hora_inicio DESC").
		Find(&clases).Error; err != nil {
		return nil, err
	}
	return clases, nil
}
