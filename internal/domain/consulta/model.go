// Package consulta provides consultation records: the legal cases filed by
// applicants and worked by clinic users. Every consultation carries a
// radicado, a unique human-readable filing number minted at creation.
package consulta

import (
	"context"
	"time"

	"juridicol/internal/core/apperror"
	"juridicol/internal/core/numerator"
)

// Area is the legal area a consultation belongs to. The area determines the
// radicado prefix.
type Area string

const (
	AreaPenal          Area = "penal"
	AreaLaboral        Area = "laboral"
	AreaCivil          Area = "civil"
	AreaFamilia        Area = "familia"
	AreaPublico        Area = "publico"
	AreaAdministrativo Area = "administrativo"
)

var areaCodes = map[Area]string{
	AreaPenal:          "PE",
	AreaLaboral:        "LA",
	AreaCivil:          "CI",
	AreaFamilia:        "FA",
	AreaPublico:        "PU",
	AreaAdministrativo: "AD",
}

// NumeratorConfig returns the radicado formatting for the area.
func (a Area) NumeratorConfig() numerator.Config {
	return numerator.DefaultConfig(areaCodes[a])
}

// Valid reports whether the area is one of the supported values.
func (a Area) Valid() bool {
	_, ok := areaCodes[a]
	return ok
}

// Tipo is the kind of attention requested.
type Tipo string

const (
	TipoConsulta       Tipo = "consulta"
	TipoAsesoriaVerbal Tipo = "asesoria_verbal"
)

// Estado is the consultation lifecycle state.
type Estado string

const (
	EstadoPendiente  Estado = "pendiente"
	EstadoAsignada   Estado = "asignada"
	EstadoFinalizada Estado = "finalizada"
)

// transitions is the only legal state machine: pendiente → asignada → finalizada.
var transitions = map[Estado]Estado{
	EstadoPendiente: EstadoAsignada,
	EstadoAsignada:  EstadoFinalizada,
}

// CanTransition reports whether from → to is a legal state change.
func CanTransition(from, to Estado) bool {
	return transitions[from] == to
}

// Consulta represents one consultation record.
type Consulta struct {
	ID       int64  `db:"id" json:"id"`
	Radicado string `db:"radicado" json:"radicado"`

	Area   Area   `db:"area" json:"area"`
	Tipo   Tipo   `db:"tipo" json:"tipo"`
	Estado Estado `db:"estado" json:"estado"`

	Hechos string `db:"hechos" json:"hechos"`

	SolicitanteID int64  `db:"solicitante_id" json:"solicitanteId"`
	EstudianteID  *int64 `db:"estudiante_id" json:"estudianteId,omitempty"`

	FechaRegistro     time.Time  `db:"fecha_registro" json:"fechaRegistro"`
	FechaAsignacion   *time.Time `db:"fecha_asignacion" json:"fechaAsignacion,omitempty"`
	FechaFinalizacion *time.Time `db:"fecha_finalizacion" json:"fechaFinalizacion,omitempty"`
}

// Validate checks the consultation invariants. The radicado is minted by the
// service and is not part of caller-supplied validation.
func (c *Consulta) Validate(_ context.Context) error {
	if !c.Area.Valid() {
		return apperror.NewValidation("invalid legal area").
			WithDetail("field", "area").
			WithDetail("value", string(c.Area))
	}
	if c.Tipo != TipoConsulta && c.Tipo != TipoAsesoriaVerbal {
		return apperror.NewValidation("invalid consultation type").
			WithDetail("field", "tipo").
			WithDetail("value", string(c.Tipo))
	}
	if c.Hechos == "" {
		return apperror.NewValidation("hechos is required").WithDetail("field", "hechos")
	}
	if c.SolicitanteID == 0 {
		return apperror.NewValidation("solicitante is required").WithDetail("field", "solicitanteId")
	}
	return nil
}
