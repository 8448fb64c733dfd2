package archivo

import (
	"context"
	"io"

	"juridicol/internal/domain/listing"
)

// Repository defines attachment metadata persistence.
type Repository interface {
	Create(ctx context.Context, a *Archivo) error
	GetByID(ctx context.Context, id int64) (*Archivo, error)
	Delete(ctx context.Context, id int64) error

	// ListByConsulta pages a consultation's attachments, ordered by id.
	ListByConsulta(ctx context.Context, consultaID int64, page listing.PageRequest) (listing.Page[Archivo], error)
}

// ObjectStore abstracts the byte storage backend. Implementations live in
// infrastructure; a filesystem-backed one is provided for local use.
type ObjectStore interface {
	// Put stores the object under key, reading exactly size bytes.
	Put(ctx context.Context, key string, r io.Reader, size int64) error

	// Get opens the object for reading. The caller closes the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	Delete(ctx context.Context, key string) error
}
