package service

import "github.com/google/uuid"

// CuposDisponibles calcula los cupos restantes, nunca negativo.
func CuposDisponibles(cupoMaximo, ocupados int) int {
	if d := cupoMaximo - ocupados; d > 0 {
		return d
	}
	return 0
}

// IDsFaltantes devuelve los ids pedidos que no aparecen en el mapa cargado.
func IDsFaltantes[V any](pedidos []uuid.UUID, cargados map[uuid.UUID]V) []uuid.UUID {
	var faltan []uuid.UUID
	for _, id := range pedidos {
		if _, ok := cargados[id]; !ok {
			faltan = append(faltan, id)
		}
	}
	return faltan
}
