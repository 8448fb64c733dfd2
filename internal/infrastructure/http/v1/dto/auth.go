package dto

import (
	"time"

	"juridicol/internal/domain/auth"
)

// LoginRequest is the request body for credential login.
type LoginRequest struct {
	CorreoElectronico string `json:"correoElectronico" binding:"required"`
	Password          string `json:"password" binding:"required"`
}

// LoginResponse carries a freshly issued token and its owner.
type LoginResponse struct {
	AccessToken string          `json:"accessToken"`
	ExpiresAt   time.Time       `json:"expiresAt"`
	Usuario     UsuarioResponse `json:"usuario"`
}

// FromLoginResult maps a domain login result to the wire response.
func FromLoginResult(res *auth.LoginResult) LoginResponse {
	return LoginResponse{
		AccessToken: res.AccessToken,
		ExpiresAt:   res.ExpiresAt,
		Usuario:     FromUsuario(*res.Usuario),
	}
}
