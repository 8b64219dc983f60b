// file: internals/features/academia/inscripciones/service/registry_service.go
package service

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	clasesModel "mateatletas_backend/internals/features/academia/clases/model"
	m "mateatletas_backend/internals/features/academia/inscripciones/model"
	personasModel "mateatletas_backend/internals/features/academia/personas/model"
)

// RegistryService es la autoridad de membresía: quién está inscrito en qué
// clase o grupo, y cuántos cupos quedan.
type RegistryService struct {
	DB *gorm.DB
}

func NewRegistryService(db *gorm.DB) *RegistryService {
	return &RegistryService{DB: db}
}

/* ===================== CLASES ===================== */

// Inscribir agrega estudiantes a una clase. Todo o nada: o se crean todas
// las inscripciones (con el tutor desnormalizado) o ninguna.
func (s *RegistryService) Inscribir(claseID uuid.UUID, estudianteIDs []uuid.UUID) ([]m.InscripcionClaseModel, error) {
	var clase clasesModel.ClaseModel
	if err := s.DB.Where("clase_id = ?", claseID).First(&clase).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Clase no encontrada")
		}
		return nil, err
	}
	if clase.ClaseEstado == clasesModel.ClaseEstadoCancelada {
		return nil, fiber.NewError(fiber.StatusBadRequest, "La clase está cancelada")
	}

	var ocupados int64
	if err := s.DB.Model(&m.InscripcionClaseModel{}).
		Where("inscripcion_clase_clase_id = ?", claseID).
		Count(&ocupados).Error; err != nil {
		return nil, err
	}

	disponibles := CuposDisponibles(clase.ClaseCuposMaximo, int(ocupados))
	if len(estudianteIDs) > disponibles {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("No hay suficientes cupos disponibles. Disponibles: %d, Solicitados: %d", disponibles, len(estudianteIDs)))
	}

	estudiantes, err := s.cargarEstudiantes(estudianteIDs)
	if err != nil {
		return nil, err
	}

	// Conflicto: alguno ya inscrito en esta clase
	var existentes []m.InscripcionClaseModel
	if err := s.DB.
		Where("inscripcion_clase_clase_id = ? AND inscripcion_clase_estudiante_id IN ?", claseID, estudianteIDs).
		Find(&existentes).Error; err != nil {
		return nil, err
	}
	if len(existentes) > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "Uno o más estudiantes ya están inscritos en esta clase")
	}

	inscripciones := make([]m.InscripcionClaseModel, 0, len(estudiantes))
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for _, est := range estudiantes {
			insc := m.InscripcionClaseModel{
				InscripcionClaseClaseID:      claseID,
				InscripcionClaseEstudianteID: est.EstudianteID,
				InscripcionClaseTutorID:      est.EstudianteTutorID,
			}
			if err := tx.Create(&insc).Error; err != nil {
				return err
			}
			insc.Estudiante = est
			inscripciones = append(inscripciones, insc)
		}
		return tx.Model(&clasesModel.ClaseModel{}).
			Where("clase_id = ?", claseID).
			UpdateColumn("clase_cupos_ocupados", gorm.Expr("clase_cupos_ocupados + ?", len(estudiantes))).Error
	})
	if err != nil {
		return nil, err
	}
	return inscripciones, nil
}

// Desinscribir borra exactamente una inscripción. No toca los registros de
// asistencia del par: quedan huérfanos pero inertes.
func (s *RegistryService) Desinscribir(claseID, estudianteID uuid.UUID) error {
	var insc m.InscripcionClaseModel
	if err := s.DB.
		Where("inscripcion_clase_clase_id = ? AND inscripcion_clase_estudiante_id = ?", claseID, estudianteID).
		First(&insc).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "El estudiante no está inscrito en esta clase")
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&insc).Error; err != nil {
			return err
		}
		return tx.Model(&clasesModel.ClaseModel{}).
			Where("clase_id = ? AND clase_cupos_ocupados > 0", claseID).
			UpdateColumn("clase_cupos_ocupados", gorm.Expr("clase_cupos_ocupados - 1")).Error
	})
}

// ListarRoster devuelve las inscripciones de una clase con los datos del
// estudiante, ordenadas por apellido ascendente.
func (s *RegistryService) ListarRoster(claseID uuid.UUID) ([]m.InscripcionClaseModel, error) {
	var total int64
	if err := s.DB.Model(&clasesModel.ClaseModel{}).Where("clase_id = ?", claseID).Count(&total).Error; err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Clase no encontrada")
	}

	var roster []m.InscripcionClaseModel
	if err := s.DB.
		Joins("JOIN estudiantes ON estudiantes.estudiante_id = inscripcion_clases.inscripcion_clase_estudiante_id").
		Where("inscripcion_clase_clase_id = ?", claseID).
		Order("estudiantes.estudiante_apellido ASC").
		Preload("Estudiante").
		Find(&roster).Error; err != nil {
		return nil, err
	}
	return roster, nil
}

/* ===================== GRUPOS ===================== */

// ReemplazarRoster redefine el roster completo de un grupo en una sola
// transacción: borra todas las inscripciones y crea las nuevas,
// re-desnormalizando el tutor. No es un diff.
func (s *RegistryService) ReemplazarRoster(grupoID uuid.UUID, estudianteIDs []uuid.UUID) ([]m.InscripcionClaseGrupoModel, error) {
	grupo, err := s.cargarGrupo(grupoID)
	if err != nil {
		return nil, err
	}
	if len(estudianteIDs) > grupo.ClaseGrupoCupoMaximo {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("El roster excede el cupo máximo del grupo. Cupo: %d, Solicitados: %d", grupo.ClaseGrupoCupoMaximo, len(estudianteIDs)))
	}

	estudiantes, err := s.cargarEstudiantes(estudianteIDs)
	if err != nil {
		return nil, err
	}

	inscripciones := make([]m.InscripcionClaseGrupoModel, 0, len(estudiantes))
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("inscripcion_clase_grupo_grupo_id = ?", grupoID).
			Delete(&m.InscripcionClaseGrupoModel{}).Error; err != nil {
			return err
		}
		for _, est := range estudiantes {
			insc := m.InscripcionClaseGrupoModel{
				InscripcionClaseGrupoGrupoID:      grupoID,
				InscripcionClaseGrupoEstudianteID: est.EstudianteID,
				InscripcionClaseGrupoTutorID:      est.EstudianteTutorID,
			}
			if err := tx.Create(&insc).Error; err != nil {
				return err
			}
			insc.Estudiante = est
			inscripciones = append(inscripciones, insc)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inscripciones, nil
}

// AgregarEstudiantes suma estudiantes a un grupo respetando el cupo.
func (s *RegistryService) AgregarEstudiantes(grupoID uuid.UUID, estudianteIDs []uuid.UUID) ([]m.InscripcionClaseGrupoModel, error) {
	grupo, err := s.cargarGrupo(grupoID)
	if err != nil {
		return nil, err
	}

	var ocupados int64
	if err := s.DB.Model(&m.InscripcionClaseGrupoModel{}).
		Where("inscripcion_clase_grupo_grupo_id = ?", grupoID).
		Count(&ocupados).Error; err != nil {
		return nil, err
	}

	disponibles := CuposDisponibles(grupo.ClaseGrupoCupoMaximo, int(ocupados))
	if len(estudianteIDs) > disponibles {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("No hay suficientes cupos disponibles. Disponibles: %d, Solicitados: %d", disponibles, len(estudianteIDs)))
	}

	estudiantes, err := s.cargarEstudiantes(estudianteIDs)
	if err != nil {
		return nil, err
	}

	var existentes []m.InscripcionClaseGrupoModel
	if err := s.DB.
		Where("inscripcion_clase_grupo_grupo_id = ? AND inscripcion_clase_grupo_estudiante_id IN ?", grupoID, estudianteIDs).
		Find(&existentes).Error; err != nil {
		return nil, err
	}
	if len(existentes) > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "Uno o más estudiantes ya están inscritos en este grupo")
	}

	inscripciones := make([]m.InscripcionClaseGrupoModel, 0, len(estudiantes))
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for _, est := range estudiantes {
			insc := m.InscripcionClaseGrupoModel{
				InscripcionClaseGrupoGrupoID:      grupoID,
				InscripcionClaseGrupoEstudianteID: est.EstudianteID,
				InscripcionClaseGrupoTutorID:      est.EstudianteTutorID,
			}
			if err := tx.Create(&insc).Error; err != nil {
				return err
			}
			insc.Estudiante = est
			inscripciones = append(inscripciones, insc)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inscripciones, nil
}

// RemoverEstudiante saca a un estudiante de un grupo.
func (s *RegistryService) RemoverEstudiante(grupoID, estudianteID uuid.UUID) error {
	if _, err := s.cargarGrupo(grupoID); err != nil {
		return err
	}

	var insc m.InscripcionClaseGrupoModel
	if err := s.DB.
		Where("inscripcion_clase_grupo_grupo_id = ? AND inscripcion_clase_grupo_estudiante_id = ?", grupoID, estudianteID).
		First(&insc).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "El estudiante no está inscrito en este grupo")
		}
		return err
	}
	return s.DB.Delete(&insc).Error
}

// ListarRosterGrupo devuelve el roster del grupo ordenado por apellido.
func (s *RegistryService) ListarRosterGrupo(grupoID uuid.UUID) ([]m.InscripcionClaseGrupoModel, error) {
	if _, err := s.cargarGrupo(grupoID); err != nil {
		return nil, err
	}

	var roster []m.InscripcionClaseGrupoModel
	if err := s.DB.
		Joins("JOIN estudiantes ON estudiantes.estudiante_id = inscripcion_clase_grupos.inscripcion_clase_grupo_estudiante_id").
		Where("inscripcion_clase_grupo_grupo_id = ?", grupoID).
		Order("estudiantes.estudiante_apellido ASC").
		Preload("Estudiante").
		Find(&roster).Error; err != nil {
		return nil, err
	}
	return roster, nil
}

/* ===================== internos ===================== */

func (s *RegistryService) cargarGrupo(grupoID uuid.UUID) (*clasesModel.ClaseGrupoModel, error) {
	var grupo clasesModel.ClaseGrupoModel
	if err := s.DB.Where("clase_grupo_id = ?", grupoID).First(&grupo).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Grupo no encontrado")
		}
		return nil, err
	}
	return &grupo, nil
}

func (s *RegistryService) cargarEstudiantes(ids []uuid.UUID) ([]*personasModel.EstudianteModel, error) {
	var rows []personasModel.EstudianteModel
	if err := s.DB.Where("estudiante_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	porID := make(map[uuid.UUID]*personasModel.EstudianteModel, len(rows))
	for i := range rows {
		porID[rows[i].EstudianteID] = &rows[i]
	}
	if faltan := IDsFaltantes(ids, porID); len(faltan) > 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Uno o más estudiantes no fueron encontrados")
	}
	// preservar el orden pedido
	out := make([]*personasModel.EstudianteModel, 0, len(ids))
	for _, id := range ids {
		out = append(out, porID[id])
	}
	return out, nil
}
