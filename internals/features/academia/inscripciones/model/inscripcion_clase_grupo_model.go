package model

import (
	"time"

	"github.com/google/uuid"

	personas "mateatletas_backend/internals/features/academia/personas/model"
)

// InscripcionClaseGrupoModel es la membresía de un estudiante en un grupo
// recurrente. El roster de un grupo se reemplaza completo (delete + insert),
// nunca por diff.
type InscripcionClaseGrupoModel struct {
	InscripcionClaseGrupoID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:inscripcion_clase_grupo_id" json:"inscripcion_clase_grupo_id"`

	InscripcionClaseGrupoGrupoID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_inscripcion_grupo_estudiante,priority:1;column:inscripcion_clase_grupo_grupo_id" json:"inscripcion_clase_grupo_grupo_id"`
	InscripcionClaseGrupoEstudianteID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_inscripcion_grupo_estudiante,priority:2;column:inscripcion_clase_grupo_estudiante_id" json:"inscripcion_clase_grupo_estudiante_id"`
	InscripcionClaseGrupoTutorID      uuid.UUID `gorm:"type:uuid;not null;column:inscripcion_clase_grupo_tutor_id" json:"inscripcion_clase_grupo_tutor_id"`

	Estudiante *personas.EstudianteModel `gorm:"foreignKey:InscripcionClaseGrupoEstudianteID;references:EstudianteID" json:"estudiante,omitempty"`
	Tutor      *personas.TutorModel      `gorm:"foreignKey:InscripcionClaseGrupoTutorID;references:TutorID"           json:"tutor,omitempty"`

	InscripcionClaseGrupoFechaInscripcion time.Time `gorm:"column:inscripcion_clase_grupo_fecha_inscripcion;autoCreateTime" json:"inscripcion_clase_grupo_fecha_inscripcion"`
}

func (InscripcionClaseGrupoModel) TableName() string { return "inscripcion_clase_grupos" }
