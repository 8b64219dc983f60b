package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TutorModel struct {
	TutorID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:tutor_id" json:"tutor_id"`

	TutorNombre   string `gorm:"not null;column:tutor_nombre"        json:"tutor_nombre"`
	TutorApellido string `gorm:"not null;column:tutor_apellido"      json:"tutor_apellido"`
	TutorEmail    string `gorm:"uniqueIndex;not null;column:tutor_email" json:"tutor_email"`
	TutorTelefono *string `gorm:"column:tutor_telefono"              json:"tutor_telefono,omitempty"`

	TutorCreatedAt time.Time      `gorm:"column:tutor_created_at;autoCreateTime" json:"tutor_created_at"`
	TutorUpdatedAt *time.Time     `gorm:"column:tutor_updated_at;autoUpdateTime" json:"tutor_updated_at,omitempty"`
	TutorDeletedAt gorm.DeletedAt `gorm:"column:tutor_deleted_at;index"          json:"tutor_deleted_at,omitempty"`
}

func (TutorModel) TableName() string { return "tutores" }
