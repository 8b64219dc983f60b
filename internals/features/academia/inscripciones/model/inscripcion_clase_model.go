package model

import (
	"time"

	"github.com/google/uuid"

	personas "mateatletas_backend/internals/features/academia/personas/model"
)

// InscripcionClaseModel vincula un estudiante con una clase concreta.
// El par (clase, estudiante) es único; el tutor se desnormaliza al
// momento de inscribir y no se vuelve a sincronizar.
type InscripcionClaseModel struct {
	InscripcionClaseID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:inscripcion_clase_id" json:"inscripcion_clase_id"`

	InscripcionClaseClaseID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_inscripcion_clase_estudiante,priority:1;column:inscripcion_clase_clase_id" json:"inscripcion_clase_clase_id"`
	InscripcionClaseEstudianteID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_inscripcion_clase_estudiante,priority:2;column:inscripcion_clase_estudiante_id" json:"inscripcion_clase_estudiante_id"`
	InscripcionClaseTutorID      uuid.UUID `gorm:"type:uuid;not null;column:inscripcion_clase_tutor_id" json:"inscripcion_clase_tutor_id"`

	Estudiante *personas.EstudianteModel `gorm:"foreignKey:InscripcionClaseEstudianteID;references:EstudianteID" json:"estudiante,omitempty"`
	Tutor      *personas.TutorModel      `gorm:"foreignKey:InscripcionClaseTutorID;references:TutorID"           json:"tutor,omitempty"`

	InscripcionClaseCreatedAt time.Time `gorm:"column:inscripcion_clase_created_at;autoCreateTime" json:"inscripcion_clase_created_at"`
}

func (InscripcionClaseModel) TableName() string { return "inscripcion_clases" }
