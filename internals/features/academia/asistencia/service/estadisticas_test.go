package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "mateatletas_backend/internals/features/academia/asistencia/model"
	personasModel "mateatletas_backend/internals/features/academia/personas/model"
)

func registro(claseID, estudianteID uuid.UUID, estado string) m.AsistenciaModel {
	return m.AsistenciaModel{
		AsistenciaID:           uuid.New(),
		AsistenciaClaseID:      claseID,
		AsistenciaEstudianteID: estudianteID,
		AsistenciaEstado:       estado,
		AsistenciaCreatedAt:    time.Now(),
	}
}

func TestContarEstados(t *testing.T) {
	claseID := uuid.New()
	registros := []m.AsistenciaModel{
		registro(claseID, uuid.New(), m.EstadoPresente),
		registro(claseID, uuid.New(), m.EstadoPresente),
		registro(claseID, uuid.New(), m.EstadoAusente),
		registro(claseID, uuid.New(), m.EstadoJustificado),
		registro(claseID, uuid.New(), m.EstadoTardanza),
	}

	c := ContarEstados(registros)

	assert.Equal(t, 2, c.Presentes)
	assert.Equal(t, 1, c.Ausentes)
	assert.Equal(t, 1, c.Justificados)
	assert.Equal(t, 1, c.Tardanzas)
}

func TestContarEstados_Vacio(t *testing.T) {
	c := ContarEstados(nil)
	assert.Equal(t, ConteoEstados{}, c)
}

func TestPendientes(t *testing.T) {
	c := ConteoEstados{Presentes: 3, Ausentes: 1, Justificados: 1, Tardanzas: 1}

	// 10 inscritos, 6 con registro -> 4 sin marcar
	assert.Equal(t, 4, Pendientes(10, c))

	// todos marcados
	assert.Equal(t, 0, Pendientes(6, c))
}

func TestPendientes_RegistrosHuerfanos(t *testing.T) {
	// más registros que inscritos (alguien se desinscribió después de
	// marcado): nunca negativo
	c := ConteoEstados{Presentes: 5}
	assert.Equal(t, 0, Pendientes(3, c))
}

func TestPorcentaje2(t *testing.T) {
	assert.Equal(t, 0.0, Porcentaje2(0, 0))
	assert.Equal(t, 0.0, Porcentaje2(5, 0))
	assert.Equal(t, 100.0, Porcentaje2(4, 4))
	assert.Equal(t, 66.67, Porcentaje2(2, 3))
	assert.Equal(t, 33.33, Porcentaje2(1, 3))
	assert.Equal(t, 50.0, Porcentaje2(1, 2))
}

func TestPorcentaje1(t *testing.T) {
	assert.Equal(t, 0.0, Porcentaje1(0, 0))
	assert.Equal(t, 66.7, Porcentaje1(2, 3))
	assert.Equal(t, 100.0, Porcentaje1(7, 7))
}

func TestIndexarPorPar(t *testing.T) {
	claseA := uuid.New()
	claseB := uuid.New()
	est := uuid.New()

	registros := []m.AsistenciaModel{
		registro(claseA, est, m.EstadoPresente),
		registro(claseB, est, m.EstadoAusente),
	}

	idx := IndexarPorPar(registros)
	require.Len(t, idx, 2)

	r, ok := idx[ParAsistencia{ClaseID: claseA, EstudianteID: est}]
	require.True(t, ok)
	assert.Equal(t, m.EstadoPresente, r.AsistenciaEstado)

	r, ok = idx[ParAsistencia{ClaseID: claseB, EstudianteID: est}]
	require.True(t, ok)
	assert.Equal(t, m.EstadoAusente, r.AsistenciaEstado)

	_, ok = idx[ParAsistencia{ClaseID: uuid.New(), EstudianteID: est}]
	assert.False(t, ok)
}

func TestEtiquetaSemana(t *testing.T) {
	ahora := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Sem 0", EtiquetaSemana(ahora, ahora))
	assert.Equal(t, "Sem 0", EtiquetaSemana(ahora, ahora.AddDate(0, 0, -3)))
	assert.Equal(t, "Sem 1", EtiquetaSemana(ahora, ahora.AddDate(0, 0, -7)))
	assert.Equal(t, "Sem 2", EtiquetaSemana(ahora, ahora.AddDate(0, 0, -15)))
}

func TestAgruparPorSemana(t *testing.T) {
	ahora := time.Now()
	claseID := uuid.New()

	enSemana := func(dias int, estado string) m.AsistenciaModel {
		r := registro(claseID, uuid.New(), estado)
		r.AsistenciaCreatedAt = ahora.AddDate(0, 0, -dias)
		return r
	}

	registros := []m.AsistenciaModel{
		enSemana(1, m.EstadoPresente),
		enSemana(2, m.EstadoAusente),
		enSemana(8, m.EstadoPresente),
		enSemana(70, m.EstadoPresente), // fuera de la ventana de 8 semanas
	}

	porSemana := AgruparPorSemana(ahora, registros)
	require.Len(t, porSemana, 2)

	sem0 := porSemana["Sem 0"]
	require.NotNil(t, sem0)
	assert.Equal(t, 2, sem0.Total)
	assert.Equal(t, 1, sem0.Presentes)
	assert.Equal(t, 1, sem0.Ausentes)

	sem1 := porSemana["Sem 1"]
	require.NotNil(t, sem1)
	assert.Equal(t, 1, sem1.Total)
	assert.Equal(t, 1, sem1.Presentes)
}

func TestTopPresentes(t *testing.T) {
	claseID := uuid.New()

	conEstudiante := func(est *personasModel.EstudianteModel, estado string) m.AsistenciaModel {
		r := registro(claseID, est.EstudianteID, estado)
		r.Estudiante = est
		return r
	}

	ana := &personasModel.EstudianteModel{EstudianteID: uuid.New(), EstudianteNombre: "Ana", EstudianteApellido: "García"}
	beto := &personasModel.EstudianteModel{EstudianteID: uuid.New(), EstudianteNombre: "Beto", EstudianteApellido: "López"}

	registros := []m.AsistenciaModel{
		conEstudiante(ana, m.EstadoPresente),
		conEstudiante(ana, m.EstadoPresente),
		conEstudiante(ana, m.EstadoAusente), // no cuenta
		conEstudiante(beto, m.EstadoPresente),
	}

	top := TopPresentes(registros, 10)
	require.Len(t, top, 2)
	assert.Equal(t, ana.EstudianteID, top[0].EstudianteID)
	assert.Equal(t, "Ana García", top[0].Nombre)
	assert.Equal(t, 2, top[0].Asistencias)
	assert.Equal(t, beto.EstudianteID, top[1].EstudianteID)
	assert.Equal(t, 1, top[1].Asistencias)
}

func TestTopPresentes_EmpateYLimite(t *testing.T) {
	claseID := uuid.New()

	var registros []m.AsistenciaModel
	for i := 0; i < 12; i++ {
		est := &personasModel.EstudianteModel{
			EstudianteID:       uuid.New(),
			EstudianteNombre:   fmt.Sprintf("Estudiante%02d", i),
			EstudianteApellido: "Test",
		}
		r := registro(claseID, est.EstudianteID, m.EstadoPresente)
		r.Estudiante = est
		registros = append(registros, r)
	}

	top := TopPresentes(registros, 10)
	require.Len(t, top, 10)

	// Todos empatados en 1: el desempate es por id ascendente
	for i := 1; i < len(top); i++ {
		assert.True(t, top[i-1].EstudianteID.String() < top[i].EstudianteID.String())
	}
}

func TestAgruparPorRuta(t *testing.T) {
	claseConRuta := uuid.New()
	claseSinRuta := uuid.New()

	rutas := map[uuid.UUID]*RutaInfo{
		claseConRuta: {Nombre: "Álgebra", Color: "#FF0000"},
	}

	registros := []m.AsistenciaModel{
		registro(claseConRuta, uuid.New(), m.EstadoPresente),
		registro(claseConRuta, uuid.New(), m.EstadoAusente),
		registro(claseSinRuta, uuid.New(), m.EstadoPresente),
	}

	desglose := AgruparPorRuta(registros, rutas)
	require.Len(t, desglose, 2)

	// orden de primera aparición
	assert.Equal(t, "Álgebra", desglose[0].Ruta)
	assert.Equal(t, "#FF0000", desglose[0].Color)
	assert.Equal(t, 1, desglose[0].Presentes)
	assert.Equal(t, 2, desglose[0].Total)
	assert.Equal(t, 50.0, desglose[0].Porcentaje)

	assert.Equal(t, RutaSinAsignar, desglose[1].Ruta)
	assert.Equal(t, ColorRutaPorDefecto, desglose[1].Color)
	assert.Equal(t, 1, desglose[1].Presentes)
	assert.Equal(t, 1, desglose[1].Total)
	assert.Equal(t, 100.0, desglose[1].Porcentaje)
}

func TestAgruparPorRuta_Vacio(t *testing.T) {
	assert.Empty(t, AgruparPorRuta(nil, nil))
}
