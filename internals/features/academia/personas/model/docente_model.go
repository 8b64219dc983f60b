package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type DocenteModel struct {
	DocenteID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:docente_id" json:"docente_id"`

	DocenteNombre   string  `gorm:"not null;column:docente_nombre"          json:"docente_nombre"`
	DocenteApellido string  `gorm:"not null;column:docente_apellido"        json:"docente_apellido"`
	DocenteEmail    string  `gorm:"uniqueIndex;not null;column:docente_email" json:"docente_email"`
	DocenteTitulo   *string `gorm:"column:docente_titulo"                   json:"docente_titulo,omitempty"`

	// hash bcrypt; nunca sale en JSON
	DocentePasswordHash string `gorm:"not null;column:docente_password_hash" json:"-"`

	DocenteEspecialidades pq.StringArray `gorm:"type:text[];column:docente_especialidades" json:"docente_especialidades,omitempty"`

	DocenteCreatedAt time.Time      `gorm:"column:docente_created_at;autoCreateTime" json:"docente_created_at"`
	DocenteUpdatedAt *time.Time     `gorm:"column:docente_updated_at;autoUpdateTime" json:"docente_updated_at,omitempty"`
	DocenteDeletedAt gorm.DeletedAt `gorm:"column:docente_deleted_at;index"          json:"docente_deleted_at,omitempty"`
}

func (DocenteModel) TableName() string { return "docentes" }
