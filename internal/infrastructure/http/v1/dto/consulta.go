package dto

import (
	"juridicol/internal/domain/consulta"
)

// CreateConsultaRequest is the request body for filing a consultation.
type CreateConsultaRequest struct {
	Area          consulta.Area `json:"area" binding:"required"`
	Tipo          consulta.Tipo `json:"tipo" binding:"required"`
	Hechos        string        `json:"hechos" binding:"required"`
	SolicitanteID int64         `json:"solicitanteId" binding:"required"`
}

// ToEntity converts the request into a domain entity. Radicado and state are
// assigned by the service.
func (r *CreateConsultaRequest) ToEntity() *consulta.Consulta {
	return &consulta.Consulta{
		Area:          r.Area,
		Tipo:          r.Tipo,
		Hechos:        r.Hechos,
		SolicitanteID: r.SolicitanteID,
	}
}

// UpdateConsultaRequest is the request body for editing a consultation.
type UpdateConsultaRequest = CreateConsultaRequest

// AsignarConsultaRequest assigns a consultation to a student.
type AsignarConsultaRequest struct {
	EstudianteID int64 `json:"estudianteId" binding:"required"`
}

// ConsultaFilterQuery holds the consultation list filters. Fields prefixed
// "solicitante" filter through the applicant join.
type ConsultaFilterQuery struct {
	Area                string `form:"area"`
	Tipo                string `form:"tipo"`
	Estado              string `form:"estado"`
	SolicitanteTipoIdent string `form:"solicitanteTipoIdentificacion"`

	// OrderBy selects the ordering key: "id" (default) or "fecha".
	OrderBy string `form:"orderBy"`
}

// ToFilter converts the query into a sparse filter map keyed by the aliased
// storage columns of the consultation scan.
func (q *ConsultaFilterQuery) ToFilter() map[string]any {
	return map[string]any{
		"c": map[string]any{
			"area":   q.Area,
			"tipo":   q.Tipo,
			"estado": q.Estado,
		},
		"s": map[string]any{
			"tipo_identificacion": q.SolicitanteTipoIdent,
		},
	}
}
