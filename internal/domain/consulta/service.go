package consulta

import (
	"context"
	"time"

	"juridicol/internal/core/apperror"
	"juridicol/internal/core/numerator"
	"juridicol/internal/core/tx"
	"juridicol/internal/domain/listing"
	"juridicol/pkg/logger"
)

// Service provides business logic for consultation records.
type Service struct {
	repo      Repository
	txManager tx.Manager
	numerator numerator.Generator
	now       func() time.Time
}

// NewService creates a consultation service.
func NewService(repo Repository, txManager tx.Manager, gen numerator.Generator) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		numerator: gen,
		now:       time.Now,
	}
}

// Create files a new consultation. The radicado is minted inside the creation
// transaction, so a failed insert never consumes a sequence value visible to
// other transactions.
func (s *Service) Create(ctx context.Context, c *Consulta) error {
	if err := c.Validate(ctx); err != nil {
		return err
	}

	c.Estado = EstadoPendiente
	c.FechaRegistro = s.now().UTC()

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		radicado, err := s.numerator.NextRadicado(ctx, c.Area.NumeratorConfig(), c.FechaRegistro)
		if err != nil {
			return err
		}
		c.Radicado = radicado

		if err := s.repo.Create(ctx, c); err != nil {
			return err
		}
		logger.Info(ctx, "consulta created", "id", c.ID, "radicado", c.Radicado)
		return nil
	})
}

// Get retrieves a consultation by id.
func (s *Service) Get(ctx context.Context, id int64) (*Consulta, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByRadicado retrieves a consultation by its filing number.
func (s *Service) GetByRadicado(ctx context.Context, radicado string) (*Consulta, error) {
	return s.repo.GetByRadicado(ctx, radicado)
}

// Asignar assigns a pending consultation to a student.
func (s *Service) Asignar(ctx context.Context, id, estudianteID int64) (*Consulta, error) {
	if estudianteID == 0 {
		return nil, apperror.NewValidation("estudiante is required").WithDetail("field", "estudianteId")
	}

	var out *Consulta
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		c, err := s.transition(ctx, id, EstadoAsignada)
		if err != nil {
			return err
		}
		now := s.now().UTC()
		c.EstudianteID = &estudianteID
		c.FechaAsignacion = &now
		if err := s.repo.Update(ctx, c); err != nil {
			return err
		}
		out = c
		return nil
	})
	return out, err
}

// Finalizar closes an assigned consultation.
func (s *Service) Finalizar(ctx context.Context, id int64) (*Consulta, error) {
	var out *Consulta
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		c, err := s.transition(ctx, id, EstadoFinalizada)
		if err != nil {
			return err
		}
		now := s.now().UTC()
		c.FechaFinalizacion = &now
		if err := s.repo.Update(ctx, c); err != nil {
			return err
		}
		out = c
		return nil
	})
	return out, err
}

// Update replaces the mutable fields of a consultation. The radicado, state,
// assignment and timestamps are managed by the service and never overwritten
// here.
func (s *Service) Update(ctx context.Context, c *Consulta) error {
	if err := c.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetByID(ctx, c.ID)
		if err != nil {
			return err
		}
		c.Radicado = current.Radicado
		c.Estado = current.Estado
		c.EstudianteID = current.EstudianteID
		c.FechaRegistro = current.FechaRegistro
		c.FechaAsignacion = current.FechaAsignacion
		c.FechaFinalizacion = current.FechaFinalizacion
		return s.repo.Update(ctx, c)
	})
}

// Delete removes a consultation record.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// List pages consultations by id order.
func (s *Service) List(ctx context.Context, filter map[string]any, page listing.PageRequest) (listing.Page[Consulta], error) {
	return s.repo.List(ctx, filter, page.Normalize())
}

// ListByFecha pages consultations by registration timestamp order.
func (s *Service) ListByFecha(ctx context.Context, filter map[string]any, page listing.PageRequest) (listing.Page[Consulta], error) {
	return s.repo.ListByFecha(ctx, filter, page.Normalize())
}

func (s *Service) transition(ctx context.Context, id int64, to Estado) (*Consulta, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(c.Estado, to) {
		return nil, apperror.NewBusinessRule(apperror.CodeInvalidStateTransition, "illegal state transition").
			WithDetail("from", string(c.Estado)).
			WithDetail("to", string(to))
	}
	c.Estado = to
	return c, nil
}
