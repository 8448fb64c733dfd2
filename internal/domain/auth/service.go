package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"juridicol/internal/core/apperror"
	"juridicol/internal/domain/usuario"
	"juridicol/pkg/logger"
)

// LoginResult carries a freshly issued access token.
type LoginResult struct {
	AccessToken string          `json:"accessToken"`
	ExpiresAt   time.Time       `json:"expiresAt"`
	Usuario     *usuario.Usuario `json:"usuario"`
}

// Service authenticates users and issues tokens.
type Service struct {
	repo usuario.Repository
	jwt  *JWTService
}

// NewService creates an auth service.
func NewService(repo usuario.Repository, jwtService *JWTService) *Service {
	return &Service{repo: repo, jwt: jwtService}
}

// Login verifies credentials and returns an access token. Failures are
// reported uniformly so callers cannot probe which accounts exist.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorized("invalid credentials")
		}
		return nil, err
	}

	if !u.Activo {
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		logger.Warn(ctx, "failed login attempt", "usuarioId", u.ID)
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(u.ID, u.CorreoElectronico, string(u.Rol), u.Area)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	logger.Info(ctx, "login", "usuarioId", u.ID, "rol", string(u.Rol))
	return &LoginResult{AccessToken: token, ExpiresAt: expiresAt, Usuario: u}, nil
}
