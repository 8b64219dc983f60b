// file: internals/features/academia/personas/dto/personas_dto.go
package dto

import (
	"github.com/google/uuid"

	m "mateatletas_backend/internals/features/academia/personas/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CrearTutorRequest struct {
	Nombre   string  `json:"nombre" validate:"required,max=80"`
	Apellido string  `json:"apellido" validate:"required,max=80"`
	Email    string  `json:"email" validate:"required,email"`
	Telefono *string `json:"telefono" validate:"omitempty,max=30"`
}

func (r *CrearTutorRequest) ToModel() *m.TutorModel {
	return &m.TutorModel{
		TutorNombre:   r.Nombre,
		TutorApellido: r.Apellido,
		TutorEmail:    r.Email,
		TutorTelefono: r.Telefono,
	}
}

type CrearEstudianteRequest struct {
	Nombre       string    `json:"nombre" validate:"required,max=80"`
	Apellido     string    `json:"apellido" validate:"required,max=80"`
	Edad         *int      `json:"edad" validate:"omitempty,min=3,max=25"`
	NivelEscolar *string   `json:"nivel_escolar" validate:"omitempty,max=60"`
	FotoURL      *string   `json:"foto_url" validate:"omitempty,url"`
	TutorID      uuid.UUID `json:"tutor_id" validate:"required"`
}

func (r *CrearEstudianteRequest) ToModel() *m.EstudianteModel {
	return &m.EstudianteModel{
		EstudianteNombre:       r.Nombre,
		EstudianteApellido:     r.Apellido,
		EstudianteEdad:         r.Edad,
		EstudianteNivelEscolar: r.NivelEscolar,
		EstudianteFotoURL:      r.FotoURL,
		EstudianteTutorID:      r.TutorID,
	}
}

type CrearDocenteRequest struct {
	Nombre         string   `json:"nombre" validate:"required,max=80"`
	Apellido       string   `json:"apellido" validate:"required,max=80"`
	Email          string   `json:"email" validate:"required,email"`
	Titulo         *string  `json:"titulo" validate:"omitempty,max=120"`
	Especialidades []string `json:"especialidades" validate:"omitempty,dive,max=60"`
}

type CrearRutaCurricularRequest struct {
	Nombre    string   `json:"nombre" validate:"required,max=80"`
	Color     string   `json:"color" validate:"required,hexcolor"`
	Etiquetas []string `json:"etiquetas" validate:"omitempty,dive,max=40"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

// Al crear un docente se genera una credencial temporal; se devuelve una
// sola vez y no se vuelve a mostrar.
type DocenteCreadoResponse struct {
	Docente          *m.DocenteModel `json:"docente"`
	PasswordTemporal string          `json:"password_temporal"`
}
