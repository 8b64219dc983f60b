// file: internals/features/academia/asistencia/service/estadisticas.go
//
// Plegados puros de estadísticas. Reciben filas ya cargadas y no tocan la
// base: los servicios consultan, estas funciones cuentan.
package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"mateatletas_backend/internals/features/academia/asistencia/dto"
	m "mateatletas_backend/internals/features/academia/asistencia/model"
)

// ParAsistencia es la clave compuesta (clase, estudiante) con igualdad
// estructural. Evita mapas anidados mutables.
type ParAsistencia struct {
	ClaseID      uuid.UUID
	EstudianteID uuid.UUID
}

type ConteoEstados struct {
	Presentes    int
	Ausentes     int
	Justificados int
	Tardanzas    int
}

// IndexarPorPar arma el índice de dos niveles en una sola pasada.
func IndexarPorPar(registros []m.AsistenciaModel) map[ParAsistencia]*m.AsistenciaModel {
	idx := make(map[ParAsistencia]*m.AsistenciaModel, len(registros))
	for i := range registros {
		r := &registros[i]
		idx[ParAsistencia{ClaseID: r.AsistenciaClaseID, EstudianteID: r.AsistenciaEstudianteID}] = r
	}
	return idx
}

// IndexarPorEstudiante indexa los registros de una sola clase.
func IndexarPorEstudiante(registros []m.AsistenciaModel) map[uuid.UUID]*m.AsistenciaModel {
	idx := make(map[uuid.UUID]*m.AsistenciaModel, len(registros))
	for i := range registros {
		idx[registros[i].AsistenciaEstudianteID] = &registros[i]
	}
	return idx
}

// AgruparPorClase parte los registros por clase preservando el orden.
func AgruparPorClase(registros []m.AsistenciaModel) map[uuid.UUID][]m.AsistenciaModel {
	porClase := make(map[uuid.UUID][]m.AsistenciaModel)
	for _, r := range registros {
		porClase[r.AsistenciaClaseID] = append(porClase[r.AsistenciaClaseID], r)
	}
	return porClase
}

func ContarEstados(registros []m.AsistenciaModel) ConteoEstados {
	var c ConteoEstados
	for _, r := range registros {
		switch r.AsistenciaEstado {
		case m.EstadoPresente:
			c.Presentes++
		case m.EstadoAusente:
			c.Ausentes++
		case m.EstadoJustificado:
			c.Justificados++
		case m.EstadoTardanza:
			c.Tardanzas++
		}
	}
	return c
}

// Pendientes deriva los inscritos sin registro. Nunca negativo: un registro
// huérfano (estudiante desinscripto después de marcar) no descuenta.
func Pendientes(totalInscritos int, c ConteoEstados) int {
	p := totalInscritos - (c.Presentes + c.Ausentes + c.Justificados + c.Tardanzas)
	if p < 0 {
		return 0
	}
	return p
}

// Porcentaje2 calcula presentes/total*100 redondeado a 2 decimales.
// Con total cero devuelve 0.00, no divide.
func Porcentaje2(presentes, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(presentes)/float64(total)*100*100) / 100
}

// Porcentaje1 ídem con 1 decimal (lo usan los reportes de gráficos).
func Porcentaje1(presentes, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(presentes)/float64(total)*100*10) / 10
}

/* ===================== reportes del docente ===================== */

// SemanasVentanaReportes limita la tendencia semanal a las últimas 8 semanas.
const SemanasVentanaReportes = 8

// EtiquetaSemana rotula un registro por semanas hacia atrás desde ahora:
// "Sem 0" es la semana corriente. Se calcula sobre la fecha de creación
// del registro, que no se refresca en updates.
func EtiquetaSemana(ahora, fechaRegistro time.Time) string {
	semanas := int(math.Floor(ahora.Sub(fechaRegistro).Hours() / (7 * 24)))
	return fmt.Sprintf("Sem %d", semanas)
}

// AgruparPorSemana arma la tendencia semanal de la ventana de reportes.
func AgruparPorSemana(ahora time.Time, registros []m.AsistenciaModel) map[string]*dto.SemanaTrend {
	corte := ahora.Add(-SemanasVentanaReportes * 7 * 24 * time.Hour)

	porSemana := make(map[string]*dto.SemanaTrend)
	for _, r := range registros {
		if r.AsistenciaCreatedAt.Before(corte) {
			continue
		}
		etiqueta := EtiquetaSemana(ahora, r.AsistenciaCreatedAt)
		t, ok := porSemana[etiqueta]
		if !ok {
			t = &dto.SemanaTrend{}
			porSemana[etiqueta] = t
		}
		t.Total++
		switch r.AsistenciaEstado {
		case m.EstadoPresente:
			t.Presentes++
		case m.EstadoAusente:
			t.Ausentes++
		}
	}
	return porSemana
}

// TopPresentes rankea estudiantes por cantidad de "Presente" descendente.
// Empates se desempatan por id de estudiante ascendente para que el orden
// sea estable entre corridas.
func TopPresentes(registros []m.AsistenciaModel, limite int) []dto.TopEstudiante {
	porEstudiante := make(map[uuid.UUID]*dto.TopEstudiante)
	for i := range registros {
		r := &registros[i]
		if r.AsistenciaEstado != m.EstadoPresente {
			continue
		}
		top, ok := porEstudiante[r.AsistenciaEstudianteID]
		if !ok {
			top = &dto.TopEstudiante{EstudianteID: r.AsistenciaEstudianteID}
			if r.Estudiante != nil {
				top.Nombre = r.Estudiante.EstudianteNombre + " " + r.Estudiante.EstudianteApellido
				top.FotoURL = r.Estudiante.EstudianteFotoURL
			}
			porEstudiante[r.AsistenciaEstudianteID] = top
		}
		top.Asistencias++
	}

	ranking := make([]dto.TopEstudiante, 0, len(porEstudiante))
	for _, t := range porEstudiante {
		ranking = append(ranking, *t)
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Asistencias != ranking[j].Asistencias {
			return ranking[i].Asistencias > ranking[j].Asistencias
		}
		return ranking[i].EstudianteID.String() < ranking[j].EstudianteID.String()
	})
	if len(ranking) > limite {
		ranking = ranking[:limite]
	}
	return ranking
}

// RutaInfo es lo mínimo que el desglose necesita de una ruta curricular.
type RutaInfo struct {
	Nombre string
	Color  string
}

// Clases sin ruta curricular caen en un bucket centinela.
const (
	RutaSinAsignar      = "Sin ruta"
	ColorRutaPorDefecto = "#6B7280"
)

// AgruparPorRuta desglosa presentes/total por ruta curricular de la clase.
// rutas mapea clase -> ruta; una clase ausente del mapa (o con ruta nula)
// cuenta bajo "Sin ruta". El orden de salida es el de primera aparición.
func AgruparPorRuta(registros []m.AsistenciaModel, rutas map[uuid.UUID]*RutaInfo) []dto.RutaBreakdown {
	porRuta := make(map[string]*dto.RutaBreakdown)
	var orden []string

	for _, r := range registros {
		nombre := RutaSinAsignar
		color := ColorRutaPorDefecto
		if info := rutas[r.AsistenciaClaseID]; info != nil {
			nombre = info.Nombre
			if info.Color != "" {
				color = info.Color
			}
		}

		b, ok := porRuta[nombre]
		if !ok {
			b = &dto.RutaBreakdown{Ruta: nombre, Color: color}
			porRuta[nombre] = b
			orden = append(orden, nombre)
		}
		b.Total++
		if r.AsistenciaEstado == m.EstadoPresente {
			b.Presentes++
		}
	}

	out := make([]dto.RutaBreakdown, 0, len(orden))
	for _, nombre := range orden {
		b := porRuta[nombre]
		b.Porcentaje = Porcentaje1(b.Presentes, b.Total)
		out = append(out, *b)
	}
	return out
}
