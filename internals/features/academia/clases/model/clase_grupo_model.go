package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	personas "mateatletas_backend/internals/features/academia/personas/model"
)

// ClaseGrupoModel es la plantilla recurrente (horario semanal) de la que
// se generan clases concretas por fecha.
type ClaseGrupoModel struct {
	ClaseGrupoID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:clase_grupo_id" json:"clase_grupo_id"`

	ClaseGrupoCodigo string `gorm:"uniqueIndex;not null;column:clase_grupo_codigo" json:"clase_grupo_codigo"`
	ClaseGrupoNombre string `gorm:"not null;column:clase_grupo_nombre"             json:"clase_grupo_nombre"`

	ClaseGrupoDiaSemana  string `gorm:"not null;column:clase_grupo_dia_semana"  json:"clase_grupo_dia_semana"`
	ClaseGrupoHoraInicio string `gorm:"not null;column:clase_grupo_hora_inicio" json:"clase_grupo_hora_inicio"`
	ClaseGrupoHoraFin    string `gorm:"not null;column:clase_grupo_hora_fin"    json:"clase_grupo_hora_fin"`

	ClaseGrupoFechaInicio time.Time `gorm:"type:date;not null;column:clase_grupo_fecha_inicio" json:"clase_grupo_fecha_inicio"`
	ClaseGrupoFechaFin    time.Time `gorm:"type:date;not null;column:clase_grupo_fecha_fin"    json:"clase_grupo_fecha_fin"`
	ClaseGrupoAnioLectivo int       `gorm:"not null;column:clase_grupo_anio_lectivo"           json:"clase_grupo_anio_lectivo"`

	ClaseGrupoCupoMaximo int `gorm:"not null;column:clase_grupo_cupo_maximo" json:"clase_grupo_cupo_maximo"`

	ClaseGrupoDocenteID        uuid.UUID  `gorm:"type:uuid;not null;index;column:clase_grupo_docente_id" json:"clase_grupo_docente_id"`
	ClaseGrupoRutaCurricularID *uuid.UUID `gorm:"type:uuid;column:clase_grupo_ruta_curricular_id"        json:"clase_grupo_ruta_curricular_id,omitempty"`

	// Horario extendido por día (duración, aula, modalidad) en JSON libre.
	ClaseGrupoHorario datatypes.JSON `gorm:"column:clase_grupo_horario" json:"clase_grupo_horario,omitempty"`

	ClaseGrupoActivo bool `gorm:"not null;default:true;column:clase_grupo_activo" json:"clase_grupo_activo"`

	Docente *personas.DocenteModel `gorm:"foreignKey:ClaseGrupoDocenteID;references:DocenteID" json:"docente,omitempty"`

	ClaseGrupoCreatedAt time.Time      `gorm:"column:clase_grupo_created_at;autoCreateTime" json:"clase_grupo_created_at"`
	ClaseGrupoUpdatedAt *time.Time     `gorm:"column:clase_grupo_updated_at;autoUpdateTime" json:"clase_grupo_updated_at,omitempty"`
	ClaseGrupoDeletedAt gorm.DeletedAt `gorm:"column:clase_grupo_deleted_at;index"          json:"clase_grupo_deleted_at,omitempty"`
}

func (ClaseGrupoModel) TableName() string { return "clase_grupos" }
