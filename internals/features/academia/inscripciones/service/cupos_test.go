package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCuposDisponibles(t *testing.T) {
	assert.Equal(t, 10, CuposDisponibles(10, 0))
	assert.Equal(t, 3, CuposDisponibles(10, 7))
	assert.Equal(t, 0, CuposDisponibles(10, 10))

	// sobre-ocupación no da negativos
	assert.Equal(t, 0, CuposDisponibles(10, 12))
}

func TestIDsFaltantes(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	cargados := map[uuid.UUID]bool{a: true, b: true}

	faltan := IDsFaltantes([]uuid.UUID{a, b, c}, cargados)
	require.Len(t, faltan, 1)
	assert.Equal(t, c, faltan[0])

	assert.Empty(t, IDsFaltantes([]uuid.UUID{a, b}, cargados))
	assert.Empty(t, IDsFaltantes(nil, cargados))
}
