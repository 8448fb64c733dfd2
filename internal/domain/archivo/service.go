package archivo

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"juridicol/internal/core/tx"
	"juridicol/internal/domain/listing"
	"juridicol/pkg/logger"
)

// Service provides business logic for consultation attachments.
type Service struct {
	repo      Repository
	store     ObjectStore
	txManager tx.Manager
}

// NewService creates an attachment service.
func NewService(repo Repository, store ObjectStore, txManager tx.Manager) *Service {
	return &Service{repo: repo, store: store, txManager: txManager}
}

// Upload stores the bytes first and the metadata row second, inside one
// transaction. If the insert fails the object is removed again; a crash
// between the two leaves at worst an orphaned object, never a dangling row.
func (s *Service) Upload(ctx context.Context, a *Archivo, r io.Reader) error {
	if err := a.Validate(ctx); err != nil {
		return err
	}

	a.ObjectKey = fmt.Sprintf("consultas/%d/%s", a.ConsultaID, uuid.NewString())
	a.FechaCarga = time.Now().UTC()

	if err := s.store.Put(ctx, a.ObjectKey, r, a.Tamano); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, a)
	})
	if err != nil {
		if delErr := s.store.Delete(ctx, a.ObjectKey); delErr != nil {
			logger.Warn(ctx, "orphaned object after failed upload", "key", a.ObjectKey, "error", delErr)
		}
		return err
	}

	logger.Info(ctx, "archivo uploaded", "id", a.ID, "consultaId", a.ConsultaID, "bytes", a.Tamano)
	return nil
}

// Get retrieves attachment metadata.
func (s *Service) Get(ctx context.Context, id int64) (*Archivo, error) {
	return s.repo.GetByID(ctx, id)
}

// Open returns the metadata and a reader over the stored bytes.
func (s *Service) Open(ctx context.Context, id int64) (*Archivo, io.ReadCloser, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.store.Get(ctx, a.ObjectKey)
	if err != nil {
		return nil, nil, err
	}
	return a, rc, nil
}

// Delete removes the metadata row and then the object. A failed object
// deletion is logged, not surfaced: the row is gone and the object is
// unreachable garbage.
func (s *Service) Delete(ctx context.Context, id int64) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, a.ID)
	})
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, a.ObjectKey); err != nil {
		logger.Warn(ctx, "orphaned object after delete", "key", a.ObjectKey, "error", err)
	}
	return nil
}

// ListByConsulta pages a consultation's attachments.
func (s *Service) ListByConsulta(ctx context.Context, consultaID int64, page listing.PageRequest) (listing.Page[Archivo], error) {
	return s.repo.ListByConsulta(ctx, consultaID, page.Normalize())
}
