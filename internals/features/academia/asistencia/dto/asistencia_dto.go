// file: internals/features/academia/asistencia/dto/asistencia_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "mateatletas_backend/internals/features/academia/asistencia/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Marca individual: un estudiante en una clase.
type MarcarAsistenciaRequest struct {
	Estado          string  `json:"estado" validate:"required,oneof=Presente Ausente Justificado Tardanza"`
	Observaciones   *string `json:"observaciones" validate:"omitempty,max=500"`
	PuntosOtorgados *int    `json:"puntos_otorgados" validate:"omitempty,min=0"`
}

// Una entrada del lote.
type EntradaLoteAsistencia struct {
	EstudianteID    uuid.UUID `json:"estudiante_id" validate:"required"`
	Estado          string    `json:"estado" validate:"required,oneof=Presente Ausente Justificado Tardanza"`
	Observaciones   *string   `json:"observaciones" validate:"omitempty,max=500"`
	PuntosOtorgados *int      `json:"puntos_otorgados" validate:"omitempty,min=0"`
}

// Lote sobre una clase concreta, o sobre un grupo + fecha (la clase de esa
// fecha se resuelve o se crea con su roster copiado del grupo).
type MarcarAsistenciaLoteRequest struct {
	Asistencias []EntradaLoteAsistencia `json:"asistencias" validate:"required,min=1,dive"`
}

// Lote por grupo recurrente: la fecha elige (o crea) la clase concreta
// de ese día y el lote se aplica sobre ella.
type MarcarAsistenciaLoteGrupoRequest struct {
	Fecha       string                  `json:"fecha" validate:"required,datetime=2006-01-02"`
	Asistencias []EntradaLoteAsistencia `json:"asistencias" validate:"required,min=1,dive"`
}

type FiltrarHistorialRequest struct {
	ClaseID *uuid.UUID `query:"clase_id" validate:"omitempty"`
}

type FiltrarObservacionesRequest struct {
	EstudianteID *uuid.UUID `query:"estudiante_id" validate:"omitempty"`
	FechaDesde   *string    `query:"fecha_desde" validate:"omitempty,datetime=2006-01-02"`
	FechaHasta   *string    `query:"fecha_hasta" validate:"omitempty,datetime=2006-01-02"`
	Limit        *int       `query:"limit" validate:"omitempty,min=1,max=100"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

// Registro devuelto tras marcar: asistencia + datos mínimos del estudiante.
type AsistenciaConEstudiante struct {
	AsistenciaID       uuid.UUID `json:"asistencia_id"`
	ClaseID            uuid.UUID `json:"clase_id"`
	EstudianteID       uuid.UUID `json:"estudiante_id"`
	EstudianteNombre   string    `json:"estudiante_nombre"`
	EstudianteApellido string    `json:"estudiante_apellido"`
	Estado             string    `json:"estado"`
	Observaciones      *string   `json:"observaciones,omitempty"`
	PuntosOtorgados    int       `json:"puntos_otorgados"`
	FechaRegistro      time.Time `json:"fecha_registro"`
}

// Resultado por entrada del lote: el fallo parcial es observable, no se
// traga en silencio.
type ResultadoLoteItem struct {
	EstudianteID uuid.UUID                `json:"estudiante_id"`
	Ok           bool                     `json:"ok"`
	Error        *string                  `json:"error,omitempty"`
	Registro     *AsistenciaConEstudiante `json:"registro,omitempty"`
}

type EstadisticasClaseResponse struct {
	ClaseID              uuid.UUID `json:"clase_id"`
	TotalInscritos       int       `json:"total_inscritos"`
	Presentes            int       `json:"presentes"`
	Ausentes             int       `json:"ausentes"`
	Justificados         int       `json:"justificados"`
	Tardanzas            int       `json:"tardanzas"`
	Pendientes           int       `json:"pendientes"`
	PorcentajeAsistencia float64   `json:"porcentaje_asistencia"`
}

type HistorialItem struct {
	ClaseID          uuid.UUID  `json:"clase_id"`
	FechaClase       time.Time  `json:"fecha_clase"`
	DuracionMinutos  int        `json:"duracion_minutos"`
	EstadoClase      string     `json:"estado_clase"`
	EstadoAsistencia string     `json:"estado_asistencia"`
	Observaciones    *string    `json:"observaciones"`
	PuntosOtorgados  int        `json:"puntos_otorgados"`
	FechaRegistro    *time.Time `json:"fecha_registro"`
}

type HistorialEstudianteResponse struct {
	Estudiante struct {
		ID       uuid.UUID `json:"id"`
		Nombre   string    `json:"nombre"`
		Apellido string    `json:"apellido"`
	} `json:"estudiante"`
	Estadisticas struct {
		TotalClases          int     `json:"total_clases"`
		Presentes            int     `json:"presentes"`
		Ausentes             int     `json:"ausentes"`
		Justificados         int     `json:"justificados"`
		PorcentajeAsistencia float64 `json:"porcentaje_asistencia"`
	} `json:"estadisticas"`
	Historial []HistorialItem `json:"historial"`
}

type ResumenClaseItem struct {
	ClaseID              uuid.UUID `json:"clase_id"`
	FechaHoraInicio      time.Time `json:"fecha_hora_inicio"`
	DuracionMinutos      int       `json:"duracion_minutos"`
	Estado               string    `json:"estado"`
	TotalInscritos       int       `json:"total_inscritos"`
	Presentes            int       `json:"presentes"`
	Ausentes             int       `json:"ausentes"`
	Justificados         int       `json:"justificados"`
	Pendientes           int       `json:"pendientes"`
	PorcentajeAsistencia float64   `json:"porcentaje_asistencia"`
}

type ResumenDocenteResponse struct {
	DocenteID            uuid.UUID `json:"docente_id"`
	TotalClases          int       `json:"total_clases"`
	EstadisticasGlobales struct {
		TotalEstudiantes           int     `json:"total_estudiantes"`
		TotalPresentes             int     `json:"total_presentes"`
		TotalAusentes              int     `json:"total_ausentes"`
		TotalJustificados          int     `json:"total_justificados"`
		PorcentajeAsistenciaGlobal float64 `json:"porcentaje_asistencia_global"`
	} `json:"estadisticas_globales"`
	Clases []ResumenClaseItem `json:"clases"`
}

type SemanaTrend struct {
	Presentes int `json:"presentes"`
	Ausentes  int `json:"ausentes"`
	Total     int `json:"total"`
}

type TopEstudiante struct {
	EstudianteID uuid.UUID `json:"estudiante_id"`
	Nombre       string    `json:"nombre"`
	FotoURL      *string   `json:"foto_url"`
	Asistencias  int       `json:"asistencias"`
}

type RutaBreakdown struct {
	Ruta       string  `json:"ruta"`
	Color      string  `json:"color"`
	Presentes  int     `json:"presentes"`
	Total      int     `json:"total"`
	Porcentaje float64 `json:"porcentaje"`
}

type ReportesDocenteResponse struct {
	EstadisticasGlobales struct {
		TotalRegistros       int     `json:"total_registros"`
		TotalPresentes       int     `json:"total_presentes"`
		TotalAusentes        int     `json:"total_ausentes"`
		TotalJustificados    int     `json:"total_justificados"`
		PorcentajeAsistencia float64 `json:"porcentaje_asistencia"`
	} `json:"estadisticas_globales"`
	AsistenciaSemanal map[string]*SemanaTrend `json:"asistencia_semanal"`
	TopEstudiantes    []TopEstudiante         `json:"top_estudiantes"`
	PorRutaCurricular []RutaBreakdown         `json:"por_ruta_curricular"`
}

// Observación registrada, con el contexto de estudiante y clase que la
// pantalla del docente necesita para mostrarla.
type ObservacionItem struct {
	AsistenciaID  uuid.UUID `json:"asistencia_id"`
	Estado        string    `json:"estado"`
	Observaciones string    `json:"observaciones"`
	FechaRegistro time.Time `json:"fecha_registro"`
	Estudiante    struct {
		ID       uuid.UUID `json:"id"`
		Nombre   string    `json:"nombre"`
		Apellido string    `json:"apellido"`
		FotoURL  *string   `json:"foto_url,omitempty"`
	} `json:"estudiante"`
	Clase struct {
		ID              uuid.UUID `json:"id"`
		FechaHoraInicio time.Time `json:"fecha_hora_inicio"`
		Ruta            *string   `json:"ruta,omitempty"`
		Color           *string   `json:"color,omitempty"`
	} `json:"clase"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func NuevaAsistenciaConEstudiante(a *m.AsistenciaModel) AsistenciaConEstudiante {
	out := AsistenciaConEstudiante{
		AsistenciaID:    a.AsistenciaID,
		ClaseID:         a.AsistenciaClaseID,
		EstudianteID:    a.AsistenciaEstudianteID,
		Estado:          a.AsistenciaEstado,
		Observaciones:   a.AsistenciaObservaciones,
		PuntosOtorgados: a.AsistenciaPuntosOtorgados,
		FechaRegistro:   a.AsistenciaCreatedAt,
	}
	if a.Estudiante != nil {
		out.EstudianteNombre = a.Estudiante.EstudianteNombre
		out.EstudianteApellido = a.Estudiante.EstudianteApellido
	}
	return out
}
