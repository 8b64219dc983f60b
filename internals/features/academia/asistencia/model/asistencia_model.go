package model

import (
	"time"

	"github.com/google/uuid"

	personas "mateatletas_backend/internals/features/academia/personas/model"
)

// Estados posibles de una asistencia. Un inscrito sin registro está
// "Pendiente": ese estado existe solo por ausencia de fila y nunca se
// materializa en la tabla.
const (
	EstadoPresente    = "Presente"
	EstadoAusente     = "Ausente"
	EstadoJustificado = "Justificado"
	EstadoTardanza    = "Tardanza"
	EstadoPendiente   = "Pendiente"
)

// AsistenciaModel guarda a lo sumo una fila por par (clase, estudiante).
// Marcar de nuevo el mismo par actualiza la fila en lugar de duplicarla;
// created_at no se refresca en updates (es la hora canónica del registro).
type AsistenciaModel struct {
	AsistenciaID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:asistencia_id" json:"asistencia_id"`

	AsistenciaClaseID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_asistencia_clase_estudiante,priority:1;column:asistencia_clase_id" json:"asistencia_clase_id"`
	AsistenciaEstudianteID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_asistencia_clase_estudiante,priority:2;column:asistencia_estudiante_id" json:"asistencia_estudiante_id"`

	AsistenciaEstado         string  `gorm:"not null;column:asistencia_estado"                    json:"asistencia_estado"`
	AsistenciaObservaciones  *string `gorm:"column:asistencia_observaciones"                      json:"asistencia_observaciones,omitempty"`
	AsistenciaPuntosOtorgados int    `gorm:"not null;default:0;column:asistencia_puntos_otorgados" json:"asistencia_puntos_otorgados"`

	Estudiante *personas.EstudianteModel `gorm:"foreignKey:AsistenciaEstudianteID;references:EstudianteID" json:"estudiante,omitempty"`

	AsistenciaCreatedAt time.Time  `gorm:"column:asistencia_created_at;autoCreateTime" json:"asistencia_created_at"`
	AsistenciaUpdatedAt *time.Time `gorm:"column:asistencia_updated_at;autoUpdateTime" json:"asistencia_updated_at,omitempty"`
}

func (AsistenciaModel) TableName() string { return "asistencias" }

// EsEstadoValido valida el enum de estados persistibles (Pendiente no cuenta).
func EsEstadoValido(estado string) bool {
	switch estado {
	case EstadoPresente, EstadoAusente, EstadoJustificado, EstadoTardanza:
		return true
	}
	return false
}
