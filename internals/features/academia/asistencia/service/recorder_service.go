// file: internals/features/academia/asistencia/service/recorder_service.go
package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mateatletas_backend/internals/features/academia/asistencia/dto"
	m "mateatletas_backend/internals/features/academia/asistencia/model"
	clasesModel "mateatletas_backend/internals/features/academia/clases/model"
	inscModel "mateatletas_backend/internals/features/academia/inscripciones/model"
	personasModel "mateatletas_backend/internals/features/academia/personas/model"
)

// RecorderService registra asistencia. Idempotente por par (clase,
// estudiante): marcar de nuevo actualiza la fila existente.
type RecorderService struct {
	DB *gorm.DB
}

func NewRecorderService(db *gorm.DB) *RecorderService {
	return &RecorderService{DB: db}
}

// Marcar registra (o corrige) la asistencia de un estudiante en una clase.
// docenteID nil saltea el control de titularidad (flujo admin).
func (s *RecorderService) Marcar(claseID, estudianteID uuid.UUID, req *dto.MarcarAsistenciaRequest, docenteID *uuid.UUID) (*dto.AsistenciaConEstudiante, error) {
	if _, err := s.cargarClaseDelDocente(claseID, docenteID); err != nil {
		return nil, err
	}
	if err := s.verificarInscripcion(claseID, estudianteID); err != nil {
		return nil, err
	}

	puntos := 0
	if req.PuntosOtorgados != nil {
		puntos = *req.PuntosOtorgados
	}

	var registro m.AsistenciaModel
	err := s.DB.
		Where("asistencia_clase_id = ? AND asistencia_estudiante_id = ?", claseID, estudianteID).
		First(&registro).Error
	switch {
	case err == nil:
		// Update de los campos de negocio; created_at queda como hora
		// canónica del registro original.
		cambios := map[string]interface{}{
			"asistencia_estado":           req.Estado,
			"asistencia_observaciones":    req.Observaciones,
			"asistencia_puntos_otorgados": puntos,
		}
		if err := s.DB.Model(&registro).Updates(cambios).Error; err != nil {
			return nil, err
		}
	case err == gorm.ErrRecordNotFound:
		registro = m.AsistenciaModel{
			AsistenciaClaseID:         claseID,
			AsistenciaEstudianteID:    estudianteID,
			AsistenciaEstado:          req.Estado,
			AsistenciaObservaciones:   req.Observaciones,
			AsistenciaPuntosOtorgados: puntos,
		}
		if err := s.DB.Create(&registro).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := s.DB.
		Preload("Estudiante").
		Where("asistencia_id = ?", registro.AsistenciaID).
		First(&registro).Error; err != nil {
		return nil, err
	}
	out := dto.NuevaAsistenciaConEstudiante(&registro)
	return &out, nil
}

// MarcarLote procesa un lote sobre una clase. Cada entrada se resuelve por
// separado: un fallo no aborta el resto y el resultado reporta entrada por
// entrada qué pasó. Deliberadamente NO transaccional.
func (s *RecorderService) MarcarLote(claseID uuid.UUID, entradas []dto.EntradaLoteAsistencia, docenteID *uuid.UUID) ([]dto.ResultadoLoteItem, error) {
	if _, err := s.cargarClaseDelDocente(claseID, docenteID); err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(entradas))
	for _, e := range entradas {
		ids = append(ids, e.EstudianteID)
	}

	// Una sola ronda de lecturas para todo el lote.
	var inscripciones []inscModel.InscripcionClaseModel
	if err := s.DB.
		Where("inscripcion_clase_clase_id = ?", claseID).
		Find(&inscripciones).Error; err != nil {
		return nil, err
	}
	inscritos := make(map[uuid.UUID]struct{}, len(inscripciones))
	for _, i := range inscripciones {
		inscritos[i.InscripcionClaseEstudianteID] = struct{}{}
	}

	var previos []m.AsistenciaModel
	if err := s.DB.
		Where("asistencia_clase_id = ? AND asistencia_estudiante_id IN ?", claseID, ids).
		Find(&previos).Error; err != nil {
		return nil, err
	}
	existentes := IndexarPorEstudiante(previos)

	var estudiantes []personasModel.EstudianteModel
	if err := s.DB.Where("estudiante_id IN ?", ids).Find(&estudiantes).Error; err != nil {
		return nil, err
	}
	porEstudiante := make(map[uuid.UUID]*personasModel.EstudianteModel, len(estudiantes))
	for i := range estudiantes {
		porEstudiante[estudiantes[i].EstudianteID] = &estudiantes[i]
	}

	resultados := make([]dto.ResultadoLoteItem, 0, len(entradas))
	for _, entrada := range entradas {
		paso := PlanificarEntrada(inscritos, existentes, entrada)
		item := s.ejecutarPaso(claseID, paso, porEstudiante)
		if item.Ok && item.Registro != nil {
			// una entrada repetida en el mismo lote pasa a ser update
			existentes[entrada.EstudianteID] = &m.AsistenciaModel{
				AsistenciaID:           item.Registro.AsistenciaID,
				AsistenciaClaseID:      claseID,
				AsistenciaEstudianteID: entrada.EstudianteID,
			}
		}
		resultados = append(resultados, item)
	}
	return resultados, nil
}

func (s *RecorderService) ejecutarPaso(claseID uuid.UUID, paso PasoLote, porEstudiante map[uuid.UUID]*personasModel.EstudianteModel) dto.ResultadoLoteItem {
	entrada := paso.Entrada
	item := dto.ResultadoLoteItem{EstudianteID: entrada.EstudianteID}

	if paso.Accion == AccionRechazar {
		motivo := paso.Motivo
		item.Error = &motivo
		return item
	}

	puntos := 0
	if entrada.PuntosOtorgados != nil {
		puntos = *entrada.PuntosOtorgados
	}

	var registro m.AsistenciaModel
	var err error
	switch paso.Accion {
	case AccionActualizar:
		registro = *paso.Existente
		err = s.DB.Model(&registro).Updates(map[string]interface{}{
			"asistencia_estado":           entrada.Estado,
			"asistencia_observaciones":    entrada.Observaciones,
			"asistencia_puntos_otorgados": puntos,
		}).Error
	case AccionCrear:
		registro = m.AsistenciaModel{
			AsistenciaClaseID:         claseID,
			AsistenciaEstudianteID:    entrada.EstudianteID,
			AsistenciaEstado:          entrada.Estado,
			AsistenciaObservaciones:   entrada.Observaciones,
			AsistenciaPuntosOtorgados: puntos,
		}
		err = s.DB.Create(&registro).Error
	}
	if err != nil {
		msg := "No se pudo registrar la asistencia"
		item.Error = &msg
		return item
	}

	registro.AsistenciaEstado = entrada.Estado
	registro.AsistenciaObservaciones = entrada.Observaciones
	registro.AsistenciaPuntosOtorgados = puntos
	registro.Estudiante = porEstudiante[entrada.EstudianteID]
	reg := dto.NuevaAsistenciaConEstudiante(&registro)
	item.Ok = true
	item.Registro = &reg
	return item
}

/* ===================== internos ===================== */

func (s *RecorderService) cargarClaseDelDocente(claseID uuid.UUID, docenteID *uuid.UUID) (*clasesModel.ClaseModel, error) {
	var clase clasesModel.ClaseModel
	if err := s.DB.Where("clase_id = ?", claseID).First(&clase).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Clase no encontrada")
		}
		return nil, err
	}
	if docenteID != nil && clase.ClaseDocenteID != *docenteID {
		return nil, fiber.NewError(fiber.StatusForbidden, "No tienes permiso para registrar asistencia en esta clase")
	}
	return &clase, nil
}

func (s *RecorderService) verificarInscripcion(claseID, estudianteID uuid.UUID) error {
	var n int64
	if err := s.DB.Model(&inscModel.InscripcionClaseModel{}).
		Where("inscripcion_clase_clase_id = ? AND inscripcion_clase_estudiante_id = ?", claseID, estudianteID).
		Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "El estudiante no está inscrito en esta clase")
	}
	return nil
}
