package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombinarFechaHora(t *testing.T) {
	dia := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	inicio, err := combinarFechaHora(dia, "18:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 9, 18, 30, 0, 0, time.UTC), inicio)

	fin, err := combinarFechaHora(dia, "20:00")
	require.NoError(t, err)
	assert.Equal(t, 90, int(fin.Sub(inicio).Minutes()))
}

func TestCombinarFechaHora_Invalida(t *testing.T) {
	dia := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	_, err := combinarFechaHora(dia, "25:00")
	assert.Error(t, err)

	_, err = combinarFechaHora(dia, "siete y media")
	assert.Error(t, err)
}
