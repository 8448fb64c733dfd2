package dto

import (
	"time"

	"juridicol/internal/domain/solicitante"
)

// CreateSolicitanteRequest is the request body for registering an applicant.
type CreateSolicitanteRequest struct {
	Nombre    string `json:"nombre" binding:"required"`
	Apellidos string `json:"apellidos" binding:"required"`

	Genero          *string    `json:"genero"`
	FechaNacimiento *time.Time `json:"fechaNacimiento"`
	LugarNacimiento *string    `json:"lugarNacimiento"`

	TipoIdentificacion   solicitante.TipoIdentificacion `json:"tipoIdentificacion" binding:"required"`
	NumeroIdentificacion string                         `json:"numeroIdentificacion" binding:"required"`

	NumeroContacto    *string `json:"numeroContacto"`
	CorreoElectronico *string `json:"correoElectronico"`
	Ciudad            *string `json:"ciudad"`
	Direccion         *string `json:"direccion"`

	Discapacidad         *string `json:"discapacidad"`
	VulnerabilidadEtnica *string `json:"vulnerabilidadEtnica"`
	NivelEstudio         *string `json:"nivelEstudio"`
	Estrato              *int    `json:"estrato"`
	Sisben               *string `json:"sisben"`
	ActividadEconomica   *string `json:"actividadEconomica"`
}

// ToEntity converts the request into a domain entity.
func (r *CreateSolicitanteRequest) ToEntity() *solicitante.Solicitante {
	return &solicitante.Solicitante{
		Nombre:               r.Nombre,
		Apellidos:            r.Apellidos,
		Genero:               r.Genero,
		FechaNacimiento:      r.FechaNacimiento,
		LugarNacimiento:      r.LugarNacimiento,
		TipoIdentificacion:   r.TipoIdentificacion,
		NumeroIdentificacion: r.NumeroIdentificacion,
		NumeroContacto:       r.NumeroContacto,
		CorreoElectronico:    r.CorreoElectronico,
		Ciudad:               r.Ciudad,
		Direccion:            r.Direccion,
		Discapacidad:         r.Discapacidad,
		VulnerabilidadEtnica: r.VulnerabilidadEtnica,
		NivelEstudio:         r.NivelEstudio,
		Estrato:              r.Estrato,
		Sisben:               r.Sisben,
		ActividadEconomica:   r.ActividadEconomica,
	}
}

// UpdateSolicitanteRequest is the request body for updating an applicant.
// Same shape as creation; the id comes from the path.
type UpdateSolicitanteRequest = CreateSolicitanteRequest

// SolicitanteFilterQuery holds the applicant list filters. Empty fields are
// dropped by the condition builder.
type SolicitanteFilterQuery struct {
	TipoIdentificacion string `form:"tipoIdentificacion"`
	Ciudad             string `form:"ciudad"`
	Discapacidad       string `form:"discapacidad"`
	NivelEstudio       string `form:"nivelEstudio"`
}

// ToFilter converts the query into a sparse filter map with storage column
// names. Request values never become column names.
func (q *SolicitanteFilterQuery) ToFilter() map[string]any {
	return map[string]any{
		"tipo_identificacion": q.TipoIdentificacion,
		"ciudad":              q.Ciudad,
		"discapacidad":        q.Discapacidad,
		"nivel_estudio":       q.NivelEstudio,
	}
}
