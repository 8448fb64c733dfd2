// Package archivo provides attachment metadata for consultations. File
// bytes live in an external object store; this package owns only the
// metadata rows and the store keys.
package archivo

import (
	"context"
	"time"

	"juridicol/internal/core/apperror"
)

// MaxSize caps a single attachment at 20 MiB.
const MaxSize = 20 << 20

// Archivo represents one attachment's metadata.
type Archivo struct {
	ID         int64  `db:"id" json:"id"`
	ConsultaID int64  `db:"consulta_id" json:"consultaId"`

	Nombre      string `db:"nombre" json:"nombre"`
	ContentType string `db:"content_type" json:"contentType"`
	Tamano      int64  `db:"tamano" json:"tamano"`

	// ObjectKey locates the bytes in the object store. Generated, never
	// caller-supplied.
	ObjectKey string `db:"object_key" json:"-"`

	FechaCarga time.Time `db:"fecha_carga" json:"fechaCarga"`
}

// Validate checks the metadata invariants.
func (a *Archivo) Validate(_ context.Context) error {
	if a.ConsultaID == 0 {
		return apperror.NewValidation("consulta is required").WithDetail("field", "consultaId")
	}
	if a.Nombre == "" {
		return apperror.NewValidation("nombre is required").WithDetail("field", "nombre")
	}
	if a.Tamano <= 0 {
		return apperror.NewValidation("file is empty").WithDetail("field", "tamano")
	}
	if a.Tamano > MaxSize {
		return apperror.NewValidation("file exceeds maximum size").
			WithDetail("field", "tamano").
			WithDetail("maxBytes", int64(MaxSize))
	}
	return nil
}
