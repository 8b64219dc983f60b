// file: internals/features/academia/asistencia/service/lote.go
package service

import (
	"github.com/google/uuid"

	"mateatletas_backend/internals/features/academia/asistencia/dto"
	m "mateatletas_backend/internals/features/academia/asistencia/model"
)

// Acción decidida para una entrada del lote.
type AccionLote int

const (
	AccionRechazar AccionLote = iota
	AccionCrear
	AccionActualizar
)

type PasoLote struct {
	Entrada   dto.EntradaLoteAsistencia
	Accion    AccionLote
	Motivo    string             // solo con AccionRechazar
	Existente *m.AsistenciaModel // solo con AccionActualizar
}

// PlanificarEntrada decide qué hacer con una entrada del lote contra el
// estado precargado: rechazar si el estudiante no está inscrito, actualizar
// si ya hay registro del par, crear si no. Puro: no escribe nada.
func PlanificarEntrada(
	inscritos map[uuid.UUID]struct{},
	existentes map[uuid.UUID]*m.AsistenciaModel,
	entrada dto.EntradaLoteAsistencia,
) PasoLote {
	if _, ok := inscritos[entrada.EstudianteID]; !ok {
		return PasoLote{
			Entrada: entrada,
			Accion:  AccionRechazar,
			Motivo:  "El estudiante no está inscrito en esta clase",
		}
	}
	if !m.EsEstadoValido(entrada.Estado) {
		return PasoLote{
			Entrada: entrada,
			Accion:  AccionRechazar,
			Motivo:  "Estado de asistencia inválido: " + entrada.Estado,
		}
	}
	if previo, ok := existentes[entrada.EstudianteID]; ok {
		return PasoLote{Entrada: entrada, Accion: AccionActualizar, Existente: previo}
	}
	return PasoLote{Entrada: entrada, Accion: AccionCrear}
}
