package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mateatletas_backend/internals/features/academia/asistencia/dto"
	m "mateatletas_backend/internals/features/academia/asistencia/model"
)

func TestPlanificarEntrada_NoInscrito(t *testing.T) {
	entrada := dto.EntradaLoteAsistencia{EstudianteID: uuid.New(), Estado: m.EstadoPresente}

	paso := PlanificarEntrada(map[uuid.UUID]struct{}{}, nil, entrada)

	assert.Equal(t, AccionRechazar, paso.Accion)
	assert.Equal(t, "El estudiante no está inscrito en esta clase", paso.Motivo)
}

func TestPlanificarEntrada_EstadoInvalido(t *testing.T) {
	estudianteID := uuid.New()
	inscritos := map[uuid.UUID]struct{}{estudianteID: {}}
	entrada := dto.EntradaLoteAsistencia{EstudianteID: estudianteID, Estado: "Desconocido"}

	paso := PlanificarEntrada(inscritos, nil, entrada)

	assert.Equal(t, AccionRechazar, paso.Accion)
	assert.Contains(t, paso.Motivo, "Desconocido")
}

func TestPlanificarEntrada_Crear(t *testing.T) {
	estudianteID := uuid.New()
	inscritos := map[uuid.UUID]struct{}{estudianteID: {}}
	entrada := dto.EntradaLoteAsistencia{EstudianteID: estudianteID, Estado: m.EstadoAusente}

	paso := PlanificarEntrada(inscritos, map[uuid.UUID]*m.AsistenciaModel{}, entrada)

	assert.Equal(t, AccionCrear, paso.Accion)
	assert.Nil(t, paso.Existente)
}

func TestPlanificarEntrada_Actualizar(t *testing.T) {
	estudianteID := uuid.New()
	inscritos := map[uuid.UUID]struct{}{estudianteID: {}}
	previo := &m.AsistenciaModel{
		AsistenciaID:           uuid.New(),
		AsistenciaEstudianteID: estudianteID,
		AsistenciaEstado:       m.EstadoAusente,
	}
	existentes := map[uuid.UUID]*m.AsistenciaModel{estudianteID: previo}

	entrada := dto.EntradaLoteAsistencia{EstudianteID: estudianteID, Estado: m.EstadoPresente}
	paso := PlanificarEntrada(inscritos, existentes, entrada)

	require.Equal(t, AccionActualizar, paso.Accion)
	assert.Same(t, previo, paso.Existente)
}

func TestEsEstadoValido(t *testing.T) {
	assert.True(t, m.EsEstadoValido(m.EstadoPresente))
	assert.True(t, m.EsEstadoValido(m.EstadoAusente))
	assert.True(t, m.EsEstadoValido(m.EstadoJustificado))
	assert.True(t, m.EsEstadoValido(m.EstadoTardanza))

	// Pendiente existe solo como ausencia de fila, no se persiste
	assert.False(t, m.EsEstadoValido(m.EstadoPendiente))
	assert.False(t, m.EsEstadoValido("presente"))
	assert.False(t, m.EsEstadoValido(""))
}
