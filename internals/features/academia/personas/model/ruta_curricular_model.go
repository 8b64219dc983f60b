package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type RutaCurricularModel struct {
	RutaCurricularID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:ruta_curricular_id" json:"ruta_curricular_id"`

	RutaCurricularNombre string `gorm:"uniqueIndex;not null;column:ruta_curricular_nombre" json:"ruta_curricular_nombre"`
	RutaCurricularColor  string `gorm:"not null;default:'#6B7280';column:ruta_curricular_color" json:"ruta_curricular_color"`

	RutaCurricularEtiquetas pq.StringArray `gorm:"type:text[];column:ruta_curricular_etiquetas" json:"ruta_curricular_etiquetas,omitempty"`

	RutaCurricularCreatedAt time.Time `gorm:"column:ruta_curricular_created_at;autoCreateTime" json:"ruta_curricular_created_at"`
}

func (RutaCurricularModel) TableName() string { return "rutas_curriculares" }
