package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EstudianteModel struct {
	EstudianteID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:estudiante_id" json:"estudiante_id"`

	EstudianteNombre      string  `gorm:"not null;column:estudiante_nombre"              json:"estudiante_nombre"`
	EstudianteApellido    string  `gorm:"not null;column:estudiante_apellido"            json:"estudiante_apellido"`
	EstudianteEdad        *int    `gorm:"column:estudiante_edad"                         json:"estudiante_edad,omitempty"`
	EstudianteNivelEscolar *string `gorm:"column:estudiante_nivel_escolar"               json:"estudiante_nivel_escolar,omitempty"`
	EstudianteFotoURL     *string `gorm:"column:estudiante_foto_url"                     json:"estudiante_foto_url,omitempty"`

	// Tutor (adulto responsable). Se desnormaliza en cada inscripción.
	EstudianteTutorID uuid.UUID `gorm:"type:uuid;not null;column:estudiante_tutor_id" json:"estudiante_tutor_id"`
	Tutor             *TutorModel `gorm:"foreignKey:EstudianteTutorID;references:TutorID" json:"tutor,omitempty"`

	EstudianteCreatedAt time.Time      `gorm:"column:estudiante_created_at;autoCreateTime" json:"estudiante_created_at"`
	EstudianteUpdatedAt *time.Time     `gorm:"column:estudiante_updated_at;autoUpdateTime" json:"estudiante_updated_at,omitempty"`
	EstudianteDeletedAt gorm.DeletedAt `gorm:"column:estudiante_deleted_at;index"          json:"estudiante_deleted_at,omitempty"`
}

func (EstudianteModel) TableName() string { return "estudiantes" }
