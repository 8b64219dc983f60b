package constants

import "fmt"

const (
	RoleAdmin      = "admin"
	RoleDocente    = "docente"
	RoleTutor      = "tutor"
	RoleEstudiante = "estudiante"
)

// Plantillas de error por rol
const (
	ErrOnlyDocentesCanAccess = "Solo un docente o admin puede acceder a %s."
	ErrOnlyAdminsCanAccess   = "Solo un admin puede acceder a %s."
	ErrOnlyTutoresCanAccess  = "Solo un tutor puede acceder a %s."
)

func RoleErrorDocente(feature string) string {
	return fmt.Sprintf(ErrOnlyDocentesCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorTutor(feature string) string {
	return fmt.Sprintf(ErrOnlyTutoresCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleDocente,
		RoleTutor,
		RoleEstudiante,
	}

	StaffRoles = []string{
		RoleAdmin,
		RoleDocente,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
