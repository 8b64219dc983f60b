package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "mateatletas_backend/internals/features/academia/asistencia/model"
)

var validate = validator.New()

func TestMarcarAsistenciaRequest_Validacion(t *testing.T) {
	valida := MarcarAsistenciaRequest{Estado: "Presente"}
	assert.NoError(t, validate.Struct(valida))

	// Pendiente no es un estado persistible
	invalida := MarcarAsistenciaRequest{Estado: "Pendiente"}
	assert.Error(t, validate.Struct(invalida))

	sinEstado := MarcarAsistenciaRequest{}
	assert.Error(t, validate.Struct(sinEstado))

	negativos := -5
	conPuntosNegativos := MarcarAsistenciaRequest{Estado: "Presente", PuntosOtorgados: &negativos}
	assert.Error(t, validate.Struct(conPuntosNegativos))
}

func TestMarcarAsistenciaLoteRequest_Validacion(t *testing.T) {
	vacio := MarcarAsistenciaLoteRequest{}
	assert.Error(t, validate.Struct(vacio))

	ok := MarcarAsistenciaLoteRequest{Asistencias: []EntradaLoteAsistencia{
		{EstudianteID: uuid.New(), Estado: "Ausente"},
	}}
	assert.NoError(t, validate.Struct(ok))

	// dive valida cada entrada
	conEntradaRota := MarcarAsistenciaLoteRequest{Asistencias: []EntradaLoteAsistencia{
		{EstudianteID: uuid.New(), Estado: "Quizas"},
	}}
	assert.Error(t, validate.Struct(conEntradaRota))
}

func TestMarcarAsistenciaLoteGrupoRequest_Validacion(t *testing.T) {
	ok := MarcarAsistenciaLoteGrupoRequest{
		Fecha: "2026-03-09",
		Asistencias: []EntradaLoteAsistencia{
			{EstudianteID: uuid.New(), Estado: "Presente"},
		},
	}
	assert.NoError(t, validate.Struct(ok))

	malFecha := ok
	malFecha.Fecha = "09/03/2026"
	assert.Error(t, validate.Struct(malFecha))
}

func TestNuevaAsistenciaConEstudiante(t *testing.T) {
	obs := "llegó con la tarea hecha"
	registro := &m.AsistenciaModel{
		AsistenciaID:              uuid.New(),
		AsistenciaClaseID:         uuid.New(),
		AsistenciaEstudianteID:    uuid.New(),
		AsistenciaEstado:          m.EstadoPresente,
		AsistenciaObservaciones:   &obs,
		AsistenciaPuntosOtorgados: 10,
	}

	out := NuevaAsistenciaConEstudiante(registro)

	assert.Equal(t, registro.AsistenciaID, out.AsistenciaID)
	assert.Equal(t, registro.AsistenciaClaseID, out.ClaseID)
	assert.Equal(t, registro.AsistenciaEstudianteID, out.EstudianteID)
	assert.Equal(t, m.EstadoPresente, out.Estado)
	require.NotNil(t, out.Observaciones)
	assert.Equal(t, obs, *out.Observaciones)
	assert.Equal(t, 10, out.PuntosOtorgados)
	assert.Empty(t, out.EstudianteNombre)
}
