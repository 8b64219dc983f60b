// file: internals/features/academia/inscripciones/dto/inscripcion_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "mateatletas_backend/internals/features/academia/inscripciones/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type InscribirEstudiantesRequest struct {
	EstudianteIDs []uuid.UUID `json:"estudiante_ids" validate:"required,min=1,dive,required"`
}

// Reemplazo completo del roster de un grupo: borra todo e inserta de nuevo.
// Quitar y volver a agregar al mismo estudiante refresca su fecha de
// inscripción; no es un diff.
type ReemplazarRosterRequest struct {
	EstudianteIDs []uuid.UUID `json:"estudiante_ids" validate:"required,dive,required"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type RosterItem struct {
	InscripcionID      uuid.UUID `json:"inscripcion_id"`
	EstudianteID       uuid.UUID `json:"estudiante_id"`
	EstudianteNombre   string    `json:"estudiante_nombre"`
	EstudianteApellido string    `json:"estudiante_apellido"`
	NivelEscolar       *string   `json:"nivel_escolar,omitempty"`
	TutorID            uuid.UUID `json:"tutor_id"`
	FechaInscripcion   time.Time `json:"fecha_inscripcion"`
}

func NuevoRosterItem(i *m.InscripcionClaseModel) RosterItem {
	out := RosterItem{
		InscripcionID:    i.InscripcionClaseID,
		EstudianteID:     i.InscripcionClaseEstudianteID,
		TutorID:          i.InscripcionClaseTutorID,
		FechaInscripcion: i.InscripcionClaseCreatedAt,
	}
	if i.Estudiante != nil {
		out.EstudianteNombre = i.Estudiante.EstudianteNombre
		out.EstudianteApellido = i.Estudiante.EstudianteApellido
		out.NivelEscolar = i.Estudiante.EstudianteNivelEscolar
	}
	return out
}

func NuevoRosterItemDeGrupo(i *m.InscripcionClaseGrupoModel) RosterItem {
	out := RosterItem{
		InscripcionID:    i.InscripcionClaseGrupoID,
		EstudianteID:     i.InscripcionClaseGrupoEstudianteID,
		TutorID:          i.InscripcionClaseGrupoTutorID,
		FechaInscripcion: i.InscripcionClaseGrupoFechaInscripcion,
	}
	if i.Estudiante != nil {
		out.EstudianteNombre = i.Estudiante.EstudianteNombre
		out.EstudianteApellido = i.Estudiante.EstudianteApellido
		out.NivelEscolar = i.Estudiante.EstudianteNivelEscolar
	}
	return out
}
