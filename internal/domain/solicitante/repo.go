package solicitante

import (
	"context"

	"juridicol/internal/domain/listing"
)

// Repository defines applicant persistence.
type Repository interface {
	Create(ctx context.Context, s *Solicitante) error
	GetByID(ctx context.Context, id int64) (*Solicitante, error)

	// GetByIdentificacion retrieves an applicant by its unique document pair.
	GetByIdentificacion(ctx context.Context, tipo TipoIdentificacion, numero string) (*Solicitante, error)

	Update(ctx context.Context, s *Solicitante) error
	Delete(ctx context.Context, id int64) error

	// List pages applicants matching a sparse filter, ordered by id.
	List(ctx context.Context, filter map[string]any, page listing.PageRequest) (listing.Page[Solicitante], error)
}
