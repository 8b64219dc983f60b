// file: internals/features/academia/clases/dto/clase_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "mateatletas_backend/internals/features/academia/clases/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type ProgramarClaseRequest struct {
	DocenteID        uuid.UUID  `json:"docente_id" validate:"required"`
	RutaCurricularID *uuid.UUID `json:"ruta_curricular_id" validate:"omitempty"`
	FechaHoraInicio  time.Time  `json:"fecha_hora_inicio" validate:"required"`
	DuracionMinutos  int        `json:"duracion_minutos" validate:"required,min=15,max=480"`
	CuposMaximo      int        `json:"cupos_maximo" validate:"required,min=1"`
}

func (r *ProgramarClaseRequest) ToModel() *m.ClaseModel {
	return &m.ClaseModel{
		ClaseDocenteID:        r.DocenteID,
		ClaseRutaCurricularID: r.RutaCurricularID,
		ClaseFechaHoraInicio:  r.FechaHoraInicio,
		ClaseDuracionMinutos:  r.DuracionMinutos,
		ClaseCuposMaximo:      r.CuposMaximo,
		ClaseEstado:           m.ClaseEstadoProgramada,
	}
}

// Filtros opcionales de listado; cada campo presente agrega un predicado
// (nada de armar "where" dinámicos con strings sueltos).
type FiltrarClasesRequest struct {
	FechaDesde       *time.Time `query:"fecha_desde" validate:"omitempty"`
	FechaHasta       *time.Time `query:"fecha_hasta" validate:"omitempty"`
	Estado           *string    `query:"estado" validate:"omitempty,oneof=Programada Cancelada"`
	DocenteID        *uuid.UUID `query:"docente_id" validate:"omitempty"`
	RutaCurricularID *uuid.UUID `query:"ruta_curricular_id" validate:"omitempty"`
}

type CrearClaseGrupoRequest struct {
	Codigo           string     `json:"codigo" validate:"required,max=30"`
	Nombre           string     `json:"nombre" validate:"required,max=120"`
	DiaSemana        string     `json:"dia_semana" validate:"required,oneof=Lunes Martes Miercoles Jueves Viernes Sabado Domingo"`
	HoraInicio       string     `json:"hora_inicio" validate:"required,datetime=15:04"`
	HoraFin          string     `json:"hora_fin" validate:"required,datetime=15:04"`
	FechaInicio      time.Time  `json:"fecha_inicio" validate:"required"`
	FechaFin         *time.Time `json:"fecha_fin" validate:"omitempty"`
	AnioLectivo      int        `json:"anio_lectivo" validate:"required,min=2020,max=2100"`
	CupoMaximo       int        `json:"cupo_maximo" validate:"required,min=1"`
	DocenteID        uuid.UUID  `json:"docente_id" validate:"required"`
	RutaCurricularID *uuid.UUID `json:"ruta_curricular_id" validate:"omitempty"`
	Horario          datatypes.JSON `json:"horario" validate:"omitempty"`

	// Roster inicial, opcional: se inscribe dentro de la misma transacción.
	EstudianteIDs []uuid.UUID `json:"estudiante_ids" validate:"omitempty,dive,required"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type ClaseGrupoResumen struct {
	Grupo            *m.ClaseGrupoModel `json:"grupo"`
	TotalInscriptos  int                `json:"total_inscriptos"`
	CuposDisponibles int                `json:"cupos_disponibles"`
}
