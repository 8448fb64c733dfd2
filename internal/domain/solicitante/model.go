// Package solicitante provides the applicant registry: the people on whose
// behalf consultations are filed.
package solicitante

import (
	"context"
	"regexp"
	"time"

	"juridicol/internal/core/apperror"
)

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// TipoIdentificacion is the identity document type.
type TipoIdentificacion string

const (
	IdentificacionCC  TipoIdentificacion = "CC"  // Cédula de ciudadanía
	IdentificacionCE  TipoIdentificacion = "CE"  // Cédula de extranjería
	IdentificacionTI  TipoIdentificacion = "TI"  // Tarjeta de identidad
	IdentificacionPAS TipoIdentificacion = "PAS" // Pasaporte
	IdentificacionNIT TipoIdentificacion = "NIT"
)

// Solicitante represents an applicant. The (tipo, numero) identification
// pair is unique across the registry.
type Solicitante struct {
	ID int64 `db:"id" json:"id"`

	Nombre    string `db:"nombre" json:"nombre"`
	Apellidos string `db:"apellidos" json:"apellidos"`

	Genero          *string    `db:"genero" json:"genero,omitempty"`
	FechaNacimiento *time.Time `db:"fecha_nacimiento" json:"fechaNacimiento,omitempty"`
	LugarNacimiento *string    `db:"lugar_nacimiento" json:"lugarNacimiento,omitempty"`

	TipoIdentificacion   TipoIdentificacion `db:"tipo_identificacion" json:"tipoIdentificacion"`
	NumeroIdentificacion string             `db:"numero_identificacion" json:"numeroIdentificacion"`

	// Contact data
	NumeroContacto    *string `db:"numero_contacto" json:"numeroContacto,omitempty"`
	CorreoElectronico *string `db:"correo_electronico" json:"correoElectronico,omitempty"`
	Ciudad            *string `db:"ciudad" json:"ciudad,omitempty"`
	Direccion         *string `db:"direccion" json:"direccion,omitempty"`

	// Socioeconomic profile
	Discapacidad        *string `db:"discapacidad" json:"discapacidad,omitempty"`
	VulnerabilidadEtnica *string `db:"vulnerabilidad_etnica" json:"vulnerabilidadEtnica,omitempty"`
	NivelEstudio        *string `db:"nivel_estudio" json:"nivelEstudio,omitempty"`
	Estrato             *int    `db:"estrato" json:"estrato,omitempty"`
	Sisben              *string `db:"sisben" json:"sisben,omitempty"`
	ActividadEconomica  *string `db:"actividad_economica" json:"actividadEconomica,omitempty"`

	FechaRegistro time.Time `db:"fecha_registro" json:"fechaRegistro"`
}

// Validate checks the applicant invariants.
func (s *Solicitante) Validate(_ context.Context) error {
	if s.Nombre == "" {
		return apperror.NewValidation("nombre is required").WithDetail("field", "nombre")
	}
	if s.Apellidos == "" {
		return apperror.NewValidation("apellidos is required").WithDetail("field", "apellidos")
	}
	if !isValidTipoIdentificacion(s.TipoIdentificacion) {
		return apperror.NewValidation("invalid identification type").
			WithDetail("field", "tipoIdentificacion").
			WithDetail("value", string(s.TipoIdentificacion))
	}
	if s.NumeroIdentificacion == "" {
		return apperror.NewValidation("numero de identificacion is required").
			WithDetail("field", "numeroIdentificacion")
	}
	if s.CorreoElectronico != nil && *s.CorreoElectronico != "" && !emailRE.MatchString(*s.CorreoElectronico) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "correoElectronico")
	}
	if s.Estrato != nil && (*s.Estrato < 0 || *s.Estrato > 6) {
		return apperror.NewValidation("estrato must be between 0 and 6").
			WithDetail("field", "estrato")
	}
	return nil
}

func isValidTipoIdentificacion(t TipoIdentificacion) bool {
	switch t {
	case IdentificacionCC, IdentificacionCE, IdentificacionTI, IdentificacionPAS, IdentificacionNIT:
		return true
	}
	return false
}
