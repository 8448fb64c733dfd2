package solicitante

import (
	"context"
	"time"

	"juridicol/internal/core/apperror"
	"juridicol/internal/core/tx"
	"juridicol/internal/domain/listing"
	"juridicol/pkg/logger"
)

// Service provides business logic for the applicant registry.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates an applicant service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// Create registers a new applicant after checking document uniqueness.
func (s *Service) Create(ctx context.Context, sol *Solicitante) error {
	if err := sol.Validate(ctx); err != nil {
		return err
	}
	if sol.FechaRegistro.IsZero() {
		sol.FechaRegistro = time.Now().UTC()
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.identificacionTaken(ctx, sol.TipoIdentificacion, sol.NumeroIdentificacion, 0)
		if err != nil {
			return err
		}
		if exists {
			return apperror.NewDuplicate("solicitante", "numeroIdentificacion", sol.NumeroIdentificacion)
		}
		if err := s.repo.Create(ctx, sol); err != nil {
			return err
		}
		logger.Info(ctx, "solicitante created", "id", sol.ID)
		return nil
	})
}

// Get retrieves an applicant by id.
func (s *Service) Get(ctx context.Context, id int64) (*Solicitante, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByIdentificacion retrieves an applicant by document type and number.
func (s *Service) GetByIdentificacion(ctx context.Context, tipo TipoIdentificacion, numero string) (*Solicitante, error) {
	return s.repo.GetByIdentificacion(ctx, tipo, numero)
}

// Update replaces an applicant's data, keeping the document pair unique.
func (s *Service) Update(ctx context.Context, sol *Solicitante) error {
	if err := sol.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.identificacionTaken(ctx, sol.TipoIdentificacion, sol.NumeroIdentificacion, sol.ID)
		if err != nil {
			return err
		}
		if exists {
			return apperror.NewDuplicate("solicitante", "numeroIdentificacion", sol.NumeroIdentificacion)
		}
		return s.repo.Update(ctx, sol)
	})
}

// Delete removes an applicant.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// List pages applicants matching a sparse filter.
func (s *Service) List(ctx context.Context, filter map[string]any, page listing.PageRequest) (listing.Page[Solicitante], error) {
	return s.repo.List(ctx, filter, page.Normalize())
}

func (s *Service) identificacionTaken(ctx context.Context, tipo TipoIdentificacion, numero string, excludeID int64) (bool, error) {
	existing, err := s.repo.GetByIdentificacion(ctx, tipo, numero)
	if err != nil {
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != excludeID, nil
}
