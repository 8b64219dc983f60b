// file: internals/features/academia/clases/service/grupo_service.go
package service

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mateatletas_backend/internals/features/academia/clases/dto"
	m "mateatletas_backend/internals/features/academia/clases/model"
	inscModel "mateatletas_backend/internals/features/academia/inscripciones/model"
	personasModel "mateatletas_backend/internals/features/academia/personas/model"
)

// GrupoService administra los grupos recurrentes y la materialización de
// sus clases concretas por fecha.
type GrupoService struct {
	DB *gorm.DB
}

func NewGrupoService(db *gorm.DB) *GrupoService {
	return &GrupoService{DB: db}
}

// Crear da de alta un grupo y, si viene roster inicial, lo inscribe en la
// misma transacción: no queda nunca un grupo a medio armar.
func (s *GrupoService) Crear(req *dto.CrearClaseGrupoRequest) (*m.ClaseGrupoModel, error) {
	var repetidos int64
	if err := s.DB.Model(&m.ClaseGrupoModel{}).
		Where("clase_grupo_codigo = ?", req.Codigo).
		Count(&repetidos).Error; err != nil {
		return nil, err
	}
	if repetidos > 0 {
		return nil, fiber.NewError(fiber.StatusConflict,
			fmt.Sprintf("Ya existe un grupo con el código %q", req.Codigo))
	}

	var docente personasModel.DocenteModel
	if err := s.DB.Where("docente_id = ?", req.DocenteID).First(&docente).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Docente no encontrado")
		}
		return nil, err
	}

	var estudiantes []personasModel.EstudianteModel
	if len(req.EstudianteIDs) > 0 {
		if len(req.EstudianteIDs) > req.CupoMaximo {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("El roster inicial excede el cupo máximo. Cupo: %d, Solicitados: %d", req.CupoMaximo, len(req.EstudianteIDs)))
		}
		if err := s.DB.Where("estudiante_id IN ?", req.EstudianteIDs).Find(&estudiantes).Error; err != nil {
			return nil, err
		}
		if len(estudiantes) != len(req.EstudianteIDs) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Uno o más estudiantes no fueron encontrados")
		}
	}

	// Sin fecha de fin explícita, el grupo corre hasta el 15 de diciembre
	// del año lectivo.
	fechaFin := time.Date(req.AnioLectivo, time.December, 15, 0, 0, 0, 0, time.UTC)
	if req.FechaFin != nil {
		fechaFin = *req.FechaFin
	}
	if !fechaFin.After(req.FechaInicio) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "La fecha de fin debe ser posterior a la fecha de inicio")
	}

	grupo := &m.ClaseGrupoModel{
		ClaseGrupoCodigo:           req.Codigo,
		ClaseGrupoNombre:           req.Nombre,
		ClaseGrupoDiaSemana:        req.DiaSemana,
		ClaseGrupoHoraInicio:       req.HoraInicio,
		ClaseGrupoHoraFin:          req.HoraFin,
		ClaseGrupoFechaInicio:      req.FechaInicio,
		ClaseGrupoFechaFin:         fechaFin,
		ClaseGrupoAnioLectivo:      req.AnioLectivo,
		ClaseGrupoCupoMaximo:       req.CupoMaximo,
		ClaseGrupoDocenteID:        req.DocenteID,
		ClaseGrupoRutaCurricularID: req.RutaCurricularID,
		ClaseGrupoHorario:          req.Horario,
		ClaseGrupoActivo:           true,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(grupo).Error; err != nil {
			return err
		}
		for _, est := range estudiantes {
			insc := inscModel.InscripcionClaseGrupoModel{
				InscripcionClaseGrupoGrupoID:      grupo.ClaseGrupoID,
				InscripcionClaseGrupoEstudianteID: est.EstudianteID,
				InscripcionClaseGrupoTutorID:      est.EstudianteTutorID,
			}
			if err := tx.Create(&insc).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return grupo, nil
}

// Listar devuelve los grupos activos con su ocupación actual.
func (s *GrupoService) Listar() ([]dto.ClaseGrupoResumen, error) {
	var grupos []m.ClaseGrupoModel
	if err := s.DB.
		Preload("Docente").
		Where("clase_grupo_activo = ?", true).
		Order("clase_grupo_codigo ASC").
		Find(&grupos).Error; err != nil {
		return nil, err
	}

	type conteo struct {
		GrupoID uuid.UUID `gorm:"column:grupo_id"`
		Total   int       `gorm:"column:total"`
	}
	var conteos []conteo
	if err := s.DB.Model(&inscModel.InscripcionClaseGrupoModel{}).
		Select("inscripcion_clase_grupo_grupo_id AS grupo_id, COUNT(*) AS total").
		Group("inscripcion_clase_grupo_grupo_id").
		Scan(&conteos).Error; err != nil {
		return nil, err
	}
	porGrupo := make(map[uuid.UUID]int, len(conteos))
	for _, c := range conteos {
		porGrupo[c.GrupoID] = c.Total
	}

	out := make([]dto.ClaseGrupoResumen, 0, len(grupos))
	for i := range grupos {
		total := porGrupo[grupos[i].ClaseGrupoID]
		disponibles := grupos[i].ClaseGrupoCupoMaximo - total
		if disponibles < 0 {
			disponibles = 0
		}
		out = append(out, dto.ClaseGrupoResumen{
			Grupo:            &grupos[i],
			TotalInscriptos:  total,
			CuposDisponibles: disponibles,
		})
	}
	return out, nil
}

// Obtener trae un grupo por id.
func (s *GrupoService) Obtener(grupoID uuid.UUID) (*m.ClaseGrupoModel, error) {
	var grupo m.ClaseGrupoModel
	if err := s.DB.
		Preload("Docente").
		Where("clase_grupo_id = ?", grupoID).
		First(&grupo).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Grupo no encontrado")
		}
		return nil, err
	}
	return &grupo, nil
}

// ResolverClaseDeFecha devuelve la clase concreta del grupo para una fecha,
// creándola si todavía no existe. La creación copia el roster vigente del
// grupo a inscripciones de clase dentro de una transacción, así la clase
// nace completa y la asistencia se marca contra ella como contra cualquier
// otra.
func (s *GrupoService) ResolverClaseDeFecha(grupoID uuid.UUID, fecha time.Time) (*m.ClaseModel, error) {
	grupo, err := s.Obtener(grupoID)
	if err != nil {
		return nil, err
	}

	dia := time.Date(fecha.Year(), fecha.Month(), fecha.Day(), 0, 0, 0, 0, time.UTC)
	var existente m.ClaseModel
	err = s.DB.
		Where("clase_grupo_id = ? AND clase_fecha_hora_inicio >= ? AND clase_fecha_hora_inicio < ?",
			grupoID, dia, dia.Add(24*time.Hour)).
		First(&existente).Error
	if err == nil {
		return &existente, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	inicio, err := combinarFechaHora(dia, grupo.ClaseGrupoHoraInicio)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "El grupo tiene una hora de inicio inválida")
	}
	fin, err := combinarFechaHora(dia, grupo.ClaseGrupoHoraFin)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "El grupo tiene una hora de fin inválida")
	}
	duracion := int(fin.Sub(inicio).Minutes())
	if duracion <= 0 {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "El horario del grupo es inválido")
	}

	var roster []inscModel.InscripcionClaseGrupoModel
	if err := s.DB.
		Where("inscripcion_clase_grupo_grupo_id = ?", grupoID).
		Find(&roster).Error; err != nil {
		return nil, err
	}

	grupoRef := grupo.ClaseGrupoID
	clase := &m.ClaseModel{
		ClaseDocenteID:        grupo.ClaseGrupoDocenteID,
		ClaseRutaCurricularID: grupo.ClaseGrupoRutaCurricularID,
		ClaseGrupoID:          &grupoRef,
		ClaseFechaHoraInicio:  inicio,
		ClaseDuracionMinutos:  duracion,
		ClaseCuposMaximo:      grupo.ClaseGrupoCupoMaximo,
		ClaseCuposOcupados:    len(roster),
		ClaseEstado:           m.ClaseEstadoProgramada,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(clase).Error; err != nil {
			return err
		}
		for _, miembro := range roster {
			insc := inscModel.InscripcionClaseModel{
				InscripcionClaseClaseID:      clase.ClaseID,
				InscripcionClaseEstudianteID: miembro.InscripcionClaseGrupoEstudianteID,
				InscripcionClaseTutorID:      miembro.InscripcionClaseGrupoTutorID,
			}
			if err := tx.Create(&insc).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return clase, nil
}

// combinarFechaHora junta un día (a medianoche) con un "HH:MM".
func combinarFechaHora(dia time.Time, hhmm string) (time.Time, error) {
	hora, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return dia.Add(time.Duration(hora.Hour())*time.Hour + time.Duration(hora.Minute())*time.Minute), nil
}
