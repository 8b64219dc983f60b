// file: internals/features/academia/asistencia/service/reportes_service.go
package service

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mateatletas_backend/internals/features/academia/asistencia/dto"
	m "mateatletas_backend/internals/features/academia/asistencia/model"
	clasesModel "mateatletas_backend/internals/features/academia/clases/model"
	inscModel "mateatletas_backend/internals/features/academia/inscripciones/model"
	personasModel "mateatletas_backend/internals/features/academia/personas/model"
)

// ReportesService es la cara de solo lectura de la asistencia: trae las
// filas que hagan falta en pocas consultas y pliega en memoria con las
// funciones de estadisticas.go. Nunca escribe.
type ReportesService struct {
	DB *gorm.DB
}

func NewReportesService(db *gorm.DB) *ReportesService {
	return &ReportesService{DB: db}
}

// EstadisticasClase arma la foto de una clase: conteos por estado, los
// pendientes derivados por resta y el porcentaje sobre inscritos.
func (s *ReportesService) EstadisticasClase(claseID uuid.UUID, docenteID *uuid.UUID) (*dto.EstadisticasClaseResponse, error) {
	var clase clasesModel.ClaseModel
	if err := s.DB.Where("clase_id = ?", claseID).First(&clase).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Clase no encontrada")
		}
		return nil, err
	}
	if docenteID != nil && clase.ClaseDocenteID != *docenteID {
		return nil, fiber.NewError(fiber.StatusForbidden, "No tienes permiso para ver esta clase")
	}

	var totalInscritos int64
	if err := s.DB.Model(&inscModel.InscripcionClaseModel{}).
		Where("inscripcion_clase_clase_id = ?", claseID).
		Count(&totalInscritos).Error; err != nil {
		return nil, err
	}

	var registros []m.AsistenciaModel
	if err := s.DB.Where("asistencia_clase_id = ?", claseID).Find(&registros).Error; err != nil {
		return nil, err
	}

	c := ContarEstados(registros)
	return &dto.EstadisticasClaseResponse{
		ClaseID:              claseID,
		TotalInscritos:       int(totalInscritos),
		Presentes:            c.Presentes,
		Ausentes:             c.Ausentes,
		Justificados:         c.Justificados,
		Tardanzas:            c.Tardanzas,
		Pendientes:           Pendientes(int(totalInscritos), c),
		PorcentajeAsistencia: Porcentaje2(c.Presentes, int(totalInscritos)),
	}, nil
}

// HistorialEstudiante lista una fila por inscripción del estudiante, con o
// sin registro de asistencia, más el agregado sobre todas las filas.
func (s *ReportesService) HistorialEstudiante(estudianteID uuid.UUID, f *dto.FiltrarHistorialRequest) (*dto.HistorialEstudianteResponse, error) {
	var estudiante personasModel.EstudianteModel
	if err := s.DB.Where("estudiante_id = ?", estudianteID).First(&estudiante).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Estudiante no encontrado")
		}
		return nil, err
	}

	q := s.DB.Where("inscripcion_clase_estudiante_id = ?", estudianteID)
	if f != nil && f.ClaseID != nil {
		q = q.Where("inscripcion_clase_clase_id = ?", *f.ClaseID)
	}
	var inscripciones []inscModel.InscripcionClaseModel
	if err := q.Find(&inscripciones).Error; err != nil {
		return nil, err
	}

	claseIDs := make([]uuid.UUID, 0, len(inscripciones))
	for _, i := range inscripciones {
		claseIDs = append(claseIDs, i.InscripcionClaseClaseID)
	}

	porClase := make(map[uuid.UUID]*clasesModel.ClaseModel)
	var registros []m.AsistenciaModel
	if len(claseIDs) > 0 {
		var clases []clasesModel.ClaseModel
		if err := s.DB.
			Where("clase_id IN ?", claseIDs).
			Order("clase_fecha_hora_inicio DESC").
			Find(&clases).Error; err != nil {
			return nil, err
		}
		for i := range clases {
			porClase[clases[i].ClaseID] = &clases[i]
		}

		if err := s.DB.
			Where("asistencia_estudiante_id = ? AND asistencia_clase_id IN ?", estudianteID, claseIDs).
			Find(&registros).Error; err != nil {
			return nil, err
		}
	}
	registroPorPar := IndexarPorPar(registros)

	resp := &dto.HistorialEstudianteResponse{Historial: make([]dto.HistorialItem, 0, len(inscripciones))}
	resp.Estudiante.ID = estudiante.EstudianteID
	resp.Estudiante.Nombre = estudiante.EstudianteNombre
	resp.Estudiante.Apellido = estudiante.EstudianteApellido

	for _, insc := range inscripciones {
		clase := porClase[insc.InscripcionClaseClaseID]
		if clase == nil {
			continue
		}
		item := dto.HistorialItem{
			ClaseID:          clase.ClaseID,
			FechaClase:       clase.ClaseFechaHoraInicio,
			DuracionMinutos:  clase.ClaseDuracionMinutos,
			EstadoClase:      clase.ClaseEstado,
			EstadoAsistencia: m.EstadoPendiente,
		}
		par := ParAsistencia{ClaseID: clase.ClaseID, EstudianteID: estudianteID}
		if r, ok := registroPorPar[par]; ok {
			item.EstadoAsistencia = r.AsistenciaEstado
			item.Observaciones = r.AsistenciaObservaciones
			item.PuntosOtorgados = r.AsistenciaPuntosOtorgados
			fecha := r.AsistenciaCreatedAt
			item.FechaRegistro = &fecha
		}
		resp.Historial = append(resp.Historial, item)
	}

	// más reciente primero
	ordenarHistorial(resp.Historial)

	c := ContarEstados(registros)
	resp.Estadisticas.TotalClases = len(inscripciones)
	resp.Estadisticas.Presentes = c.Presentes
	resp.Estadisticas.Ausentes = c.Ausentes
	resp.Estadisticas.Justificados = c.Justificados
	resp.Estadisticas.PorcentajeAsistencia = Porcentaje2(c.Presentes, len(inscripciones))
	return resp, nil
}

// ResumenDocente devuelve una foto por clase dictada más el total global.
// El global se arma SUMANDO los parciales por clase, no con una consulta
// aparte: detalle y total no pueden divergir.
func (s *ReportesService) ResumenDocente(docenteID uuid.UUID) (*dto.ResumenDocenteResponse, error) {
	var docente personasModel.DocenteModel
	if err := s.DB.Where("docente_id = ?", docenteID).First(&docente).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Docente no encontrado")
		}
		return nil, err
	}

	var clases []clasesModel.ClaseModel
	if err := s.DB.
		Where("clase_docente_id = ?", docenteID).
		Order("clase_fecha_hora_inicio DESC").
		Find(&clases).Error; err != nil {
		return nil, err
	}

	resp := &dto.ResumenDocenteResponse{
		DocenteID:   docenteID,
		TotalClases: len(clases),
		Clases:      make([]dto.ResumenClaseItem, 0, len(clases)),
	}
	if len(clases) == 0 {
		return resp, nil
	}

	claseIDs := make([]uuid.UUID, 0, len(clases))
	for _, c := range clases {
		claseIDs = append(claseIDs, c.ClaseID)
	}

	var inscripciones []inscModel.InscripcionClaseModel
	if err := s.DB.Where("inscripcion_clase_clase_id IN ?", claseIDs).Find(&inscripciones).Error; err != nil {
		return nil, err
	}
	inscritosPorClase := make(map[uuid.UUID]int)
	for _, i := range inscripciones {
		inscritosPorClase[i.InscripcionClaseClaseID]++
	}

	var registros []m.AsistenciaModel
	if err := s.DB.Where("asistencia_clase_id IN ?", claseIDs).Find(&registros).Error; err != nil {
		return nil, err
	}
	registrosPorClase := AgruparPorClase(registros)

	g := &resp.EstadisticasGlobales
	for _, clase := range clases {
		inscritos := inscritosPorClase[clase.ClaseID]
		c := ContarEstados(registrosPorClase[clase.ClaseID])

		resp.Clases = append(resp.Clases, dto.ResumenClaseItem{
			ClaseID:              clase.ClaseID,
			FechaHoraInicio:      clase.ClaseFechaHoraInicio,
			DuracionMinutos:      clase.ClaseDuracionMinutos,
			Estado:               clase.ClaseEstado,
			TotalInscritos:       inscritos,
			Presentes:            c.Presentes,
			Ausentes:             c.Ausentes,
			Justificados:         c.Justificados,
			Pendientes:           Pendientes(inscritos, c),
			PorcentajeAsistencia: Porcentaje2(c.Presentes, inscritos),
		})

		g.TotalEstudiantes += inscritos
		g.TotalPresentes += c.Presentes
		g.TotalAusentes += c.Ausentes
		g.TotalJustificados += c.Justificados
	}
	g.PorcentajeAsistenciaGlobal = Porcentaje2(g.TotalPresentes, g.TotalEstudiantes)
	return resp, nil
}

// ReportesDocente arma la analítica para gráficos: tendencia semanal de la
// ventana de 8 semanas, top 10 de presentes y desglose por ruta curricular.
// Escanea el historial completo del docente una sola vez.
func (s *ReportesService) ReportesDocente(docenteID uuid.UUID) (*dto.ReportesDocenteResponse, error) {
	registros, err := s.registrosDelDocente(docenteID, nil)
	if err != nil {
		return nil, err
	}

	rutas, err := s.rutasPorClase(docenteID)
	if err != nil {
		return nil, err
	}

	ahora := time.Now()
	resp := &dto.ReportesDocenteResponse{
		AsistenciaSemanal: AgruparPorSemana(ahora, registros),
		TopEstudiantes:    TopPresentes(registros, 10),
		PorRutaCurricular: AgruparPorRuta(registros, rutas),
	}

	c := ContarEstados(registros)
	g := &resp.EstadisticasGlobales
	g.TotalRegistros = len(registros)
	g.TotalPresentes = c.Presentes
	g.TotalAusentes = c.Ausentes
	g.TotalJustificados = c.Justificados
	g.PorcentajeAsistencia = Porcentaje1(c.Presentes, len(registros))
	return resp, nil
}

// ObservacionesDocente lista los registros con observación no vacía de las
// clases del docente, más reciente primero.
func (s *ReportesService) ObservacionesDocente(docenteID uuid.UUID, f *dto.FiltrarObservacionesRequest) ([]dto.ObservacionItem, error) {
	filtro := func(q *gorm.DB) *gorm.DB {
		q = q.Where("asistencias.asistencia_observaciones IS NOT NULL AND asistencias.asistencia_observaciones <> ''")
		if f == nil {
			return q
		}
		if f.EstudianteID != nil {
			q = q.Where("asistencias.asistencia_estudiante_id = ?", *f.EstudianteID)
		}
		if f.FechaDesde != nil {
			q = q.Where("asistencias.asistencia_created_at >= ?", *f.FechaDesde)
		}
		if f.FechaHasta != nil {
			q = q.Where("asistencias.asistencia_created_at <= ?", *f.FechaHasta+" 23:59:59")
		}
		return q
	}

	limite := 20
	if f != nil && f.Limit != nil {
		limite = *f.Limit
	}

	registros, err := s.registrosDelDocente(docenteID, func(q *gorm.DB) *gorm.DB {
		return filtro(q).Limit(limite)
	})
	if err != nil {
		return nil, err
	}

	claseIDs := make([]uuid.UUID, 0, len(registros))
	for _, r := range registros {
		claseIDs = append(claseIDs, r.AsistenciaClaseID)
	}
	porClase := make(map[uuid.UUID]*clasesModel.ClaseModel)
	if len(claseIDs) > 0 {
		var clases []clasesModel.ClaseModel
		if err := s.DB.
			Preload("RutaCurricular").
			Where("clase_id IN ?", claseIDs).
			Find(&clases).Error; err != nil {
			return nil, err
		}
		for i := range clases {
			porClase[clases[i].ClaseID] = &clases[i]
		}
	}

	out := make([]dto.ObservacionItem, 0, len(registros))
	for _, r := range registros {
		item := dto.ObservacionItem{
			AsistenciaID:  r.AsistenciaID,
			Estado:        r.AsistenciaEstado,
			FechaRegistro: r.AsistenciaCreatedAt,
		}
		if r.AsistenciaObservaciones != nil {
			item.Observaciones = *r.AsistenciaObservaciones
		}
		if r.Estudiante != nil {
			item.Estudiante.ID = r.Estudiante.EstudianteID
			item.Estudiante.Nombre = r.Estudiante.EstudianteNombre
			item.Estudiante.Apellido = r.Estudiante.EstudianteApellido
			item.Estudiante.FotoURL = r.Estudiante.EstudianteFotoURL
		}
		if clase := porClase[r.AsistenciaClaseID]; clase != nil {
			item.Clase.ID = clase.ClaseID
			item.Clase.FechaHoraInicio = clase.ClaseFechaHoraInicio
			if clase.RutaCurricular != nil {
				item.Clase.Ruta = &clase.RutaCurricular.RutaCurricularNombre
				item.Clase.Color = &clase.RutaCurricular.RutaCurricularColor
			}
		}
		out = append(out, item)
	}
	return out, nil
}

/* ===================== internos ===================== */

// registrosDelDocente trae la asistencia de todas las clases del docente,
// con el estudiante precargado, más reciente primero.
func (s *ReportesService) registrosDelDocente(docenteID uuid.UUID, extra func(*gorm.DB) *gorm.DB) ([]m.AsistenciaModel, error) {
	q := s.DB.Model(&m.AsistenciaModel{}).
		Joins("JOIN clases ON clases.clase_id = asistencias.asistencia_clase_id").
		Where("clases.clase_docente_id = ?", docenteID).
		Order("asistencias.asistencia_created_at DESC").
		Preload("Estudiante")
	if extra != nil {
		q = extra(q)
	}
	var registros []m.AsistenciaModel
	if err := q.Find(&registros).Error; err != nil {
		return nil, err
	}
	return registros, nil
}

// rutasPorClase mapea cada clase del docente a su ruta curricular, si tiene.
func (s *ReportesService) rutasPorClase(docenteID uuid.UUID) (map[uuid.UUID]*RutaInfo, error) {
	var clases []clasesModel.ClaseModel
	if err := s.DB.
		Preload("RutaCurricular").
		Where("clase_docente_id = ?", docenteID).
		Find(&clases).Error; err != nil {
		return nil, err
	}
	rutas := make(map[uuid.UUID]*RutaInfo, len(clases))
	for _, c := range clases {
		if c.RutaCurricular != nil {
			rutas[c.ClaseID] = &RutaInfo{
				Nombre: c.RutaCurricular.RutaCurricularNombre,
				Color:  c.RutaCurricular.RutaCurricularColor,
			}
		}
	}
	return rutas, nil
}

func ordenarHistorial(items []dto.HistorialItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].FechaClase.After(items[j].FechaClase)
	})
}
