package model

import (
	"time"

	"github.com/google/uuid"

	personas "mateatletas_backend/internals/features/academia/personas/model"
)

// Estados de una clase. Una clase nunca se borra físicamente:
// cancelar es un cambio de estado.
const (
	ClaseEstadoProgramada = "Programada"
	ClaseEstadoCancelada  = "Cancelada"
)

type ClaseModel struct {
	ClaseID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:clase_id" json:"clase_id"`

	ClaseDocenteID        uuid.UUID  `gorm:"type:uuid;not null;index;column:clase_docente_id" json:"clase_docente_id"`
	ClaseRutaCurricularID *uuid.UUID `gorm:"type:uuid;column:clase_ruta_curricular_id"        json:"clase_ruta_curricular_id,omitempty"`

	// Presente cuando la clase es una ocurrencia de un grupo recurrente.
	ClaseGrupoID *uuid.UUID `gorm:"type:uuid;index;column:clase_grupo_id" json:"clase_grupo_id,omitempty"`

	ClaseFechaHoraInicio time.Time `gorm:"not null;index;column:clase_fecha_hora_inicio" json:"clase_fecha_hora_inicio"`
	ClaseDuracionMinutos int       `gorm:"not null;column:clase_duracion_minutos"        json:"clase_duracion_minutos"`

	ClaseCuposMaximo   int `gorm:"not null;column:clase_cupos_maximo"   json:"clase_cupos_maximo"`
	ClaseCuposOcupados int `gorm:"not null;default:0;column:clase_cupos_ocupados" json:"clase_cupos_ocupados"`

	ClaseEstado string `gorm:"not null;default:'Programada';column:clase_estado" json:"clase_estado"`

	Docente        *personas.DocenteModel        `gorm:"foreignKey:ClaseDocenteID;references:DocenteID"               json:"docente,omitempty"`
	RutaCurricular *personas.RutaCurricularModel `gorm:"foreignKey:ClaseRutaCurricularID;references:RutaCurricularID" json:"ruta_curricular,omitempty"`

	ClaseCreatedAt time.Time  `gorm:"column:clase_created_at;autoCreateTime" json:"clase_created_at"`
	ClaseUpdatedAt *time.Time `gorm:"column:clase_updated_at;autoUpdateTime" json:"clase_updated_at,omitempty"`
}

func (ClaseModel) TableName() string { return "clases" }
