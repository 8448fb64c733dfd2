package usuario

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"juridicol/internal/core/apperror"
	"juridicol/internal/core/tx"
	"juridicol/internal/domain/listing"
	"juridicol/internal/domain/mailer"
	"juridicol/pkg/logger"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// Service provides business logic for user accounts.
type Service struct {
	repo      Repository
	txManager tx.Manager
	mail      mailer.Mailer
}

// NewService creates a user account service. mail may be nil; delivery is
// best-effort and never fails an operation.
func NewService(repo Repository, txManager tx.Manager, mail mailer.Mailer) *Service {
	return &Service{repo: repo, txManager: txManager, mail: mail}
}

// Create registers a new account with a bcrypt password hash. Codigo and
// email uniqueness are checked inside the transaction.
func (s *Service) Create(ctx context.Context, u *Usuario, password string) error {
	if err := u.Validate(ctx); err != nil {
		return err
	}
	if len(password) < MinPasswordLength {
		return apperror.NewValidation("password too short").
			WithDetail("field", "password").
			WithDetail("minLength", MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperror.NewInternal(err)
	}
	u.PasswordHash = string(hash)
	u.Activo = true
	u.FechaRegistro = time.Now().UTC()

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.checkUnique(ctx, u); err != nil {
			return err
		}
		if err := s.repo.Create(ctx, u); err != nil {
			return err
		}
		logger.Info(ctx, "usuario created", "id", u.ID, "rol", string(u.Rol))
		return nil
	})
	if err != nil {
		return err
	}

	s.notifyWelcome(ctx, u)
	return nil
}

func (s *Service) notifyWelcome(ctx context.Context, u *Usuario) {
	if s.mail == nil {
		return
	}
	msg := mailer.Message{
		To:      []string{u.CorreoElectronico},
		Subject: "Cuenta creada en el consultorio jurídico",
		Body:    "Su cuenta con código " + u.Codigo + " ha sido creada.",
	}
	if err := s.mail.Send(ctx, msg); err != nil {
		logger.Warn(ctx, "welcome mail delivery failed", "usuario_id", u.ID, "error", err)
	}
}

// Get retrieves an account by id.
func (s *Service) Get(ctx context.Context, id int64) (*Usuario, error) {
	return s.repo.GetByID(ctx, id)
}

// Update replaces an account's profile fields. The password hash and
// registration timestamp are preserved.
func (s *Service) Update(ctx context.Context, u *Usuario) error {
	if err := u.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetByID(ctx, u.ID)
		if err != nil {
			return err
		}
		if err := s.checkUnique(ctx, u); err != nil {
			return err
		}
		u.PasswordHash = current.PasswordHash
		u.FechaRegistro = current.FechaRegistro
		return s.repo.Update(ctx, u)
	})
}

// ChangePassword verifies the current password and stores a new hash.
func (s *Service) ChangePassword(ctx context.Context, id int64, current, next string) error {
	if len(next) < MinPasswordLength {
		return apperror.NewValidation("password too short").
			WithDetail("field", "password").
			WithDetail("minLength", MinPasswordLength)
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		u, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(current)) != nil {
			return apperror.NewUnauthorized("current password does not match")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
		if err != nil {
			return apperror.NewInternal(err)
		}
		u.PasswordHash = string(hash)
		return s.repo.Update(ctx, u)
	})
}

// Deactivate disables an account without deleting it. Historical case
// assignments keep pointing at the row.
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		u, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		u.Activo = false
		return s.repo.Update(ctx, u)
	})
}

// List pages accounts matching a sparse filter.
func (s *Service) List(ctx context.Context, filter map[string]any, page listing.PageRequest) (listing.Page[Usuario], error) {
	return s.repo.List(ctx, filter, page.Normalize())
}

// Search pages accounts by ranked full-text match over names, code and email.
func (s *Service) Search(ctx context.Context, query string, page listing.PageRequest) (listing.Page[Usuario], error) {
	if query == "" {
		return listing.Page[Usuario]{}, apperror.NewValidation("search query is required").
			WithDetail("field", "q")
	}
	return s.repo.Search(ctx, query, page.Normalize())
}

func (s *Service) checkUnique(ctx context.Context, u *Usuario) error {
	if existing, err := s.repo.GetByCodigo(ctx, u.Codigo); err == nil {
		if existing.ID != u.ID {
			return apperror.NewDuplicate("usuario", "codigo", u.Codigo)
		}
	} else if !apperror.IsNotFound(err) {
		return err
	}

	if existing, err := s.repo.GetByEmail(ctx, u.CorreoElectronico); err == nil {
		if existing.ID != u.ID {
			return apperror.NewDuplicate("usuario", "correoElectronico", u.CorreoElectronico)
		}
	} else if !apperror.IsNotFound(err) {
		return err
	}

	return nil
}
