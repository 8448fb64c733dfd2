package consulta

import (
	"context"

	"juridicol/internal/domain/listing"
)

// Repository defines consultation persistence.
type Repository interface {
	Create(ctx context.Context, c *Consulta) error
	GetByID(ctx context.Context, id int64) (*Consulta, error)
	GetByRadicado(ctx context.Context, radicado string) (*Consulta, error)
	Update(ctx context.Context, c *Consulta) error
	Delete(ctx context.Context, id int64) error

	// List pages consultations matching a sparse filter, ordered by id.
	List(ctx context.Context, filter map[string]any, page listing.PageRequest) (listing.Page[Consulta], error)

	// ListByFecha pages consultations ordered by registration timestamp.
	// Timestamps are unique per row (microsecond clock plus insertion order),
	// which the pager requires of its ordering key.
	ListByFecha(ctx context.Context, filter map[string]any, page listing.PageRequest) (listing.Page[Consulta], error)
}
