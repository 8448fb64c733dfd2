package usuario

import (
	"context"

	"juridicol/internal/domain/listing"
)

// Repository defines user account persistence.
type Repository interface {
	Create(ctx context.Context, u *Usuario) error
	GetByID(ctx context.Context, id int64) (*Usuario, error)
	GetByCodigo(ctx context.Context, codigo string) (*Usuario, error)
	GetByEmail(ctx context.Context, email string) (*Usuario, error)
	Update(ctx context.Context, u *Usuario) error

	// List pages accounts matching a sparse filter, ordered by id.
	List(ctx context.Context, filter map[string]any, page listing.PageRequest) (listing.Page[Usuario], error)

	// Search pages accounts matching a ranked full-text query over names,
	// code and email. Cursors carry the anchor row id, not the ordering-key
	// value.
	Search(ctx context.Context, query string, page listing.PageRequest) (listing.Page[Usuario], error)
}
