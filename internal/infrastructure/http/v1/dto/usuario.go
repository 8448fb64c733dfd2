package dto

import (
	"time"

	"juridicol/internal/domain/usuario"
)

// CreateUsuarioRequest is the request body for registering an account.
type CreateUsuarioRequest struct {
	Nombres           string      `json:"nombres" binding:"required"`
	Apellidos         string      `json:"apellidos" binding:"required"`
	Codigo            string      `json:"codigo" binding:"required"`
	CorreoElectronico string      `json:"correoElectronico" binding:"required"`
	Rol               usuario.Rol `json:"rol" binding:"required"`
	Area              string      `json:"area"`
	Password          string      `json:"password" binding:"required"`
}

// ToEntity converts the request into a domain entity. The password travels
// separately so it never lands on the entity.
func (r *CreateUsuarioRequest) ToEntity() *usuario.Usuario {
	return &usuario.Usuario{
		Nombres:           r.Nombres,
		Apellidos:         r.Apellidos,
		Codigo:            r.Codigo,
		CorreoElectronico: r.CorreoElectronico,
		Rol:               r.Rol,
		Area:              r.Area,
	}
}

// UpdateUsuarioRequest is the request body for editing an account profile.
type UpdateUsuarioRequest struct {
	Nombres           string      `json:"nombres" binding:"required"`
	Apellidos         string      `json:"apellidos" binding:"required"`
	Codigo            string      `json:"codigo" binding:"required"`
	CorreoElectronico string      `json:"correoElectronico" binding:"required"`
	Rol               usuario.Rol `json:"rol" binding:"required"`
	Area              string      `json:"area"`
	Activo            bool        `json:"activo"`
}

// ApplyTo applies the update onto an entity shell.
func (r *UpdateUsuarioRequest) ApplyTo(u *usuario.Usuario) {
	u.Nombres = r.Nombres
	u.Apellidos = r.Apellidos
	u.Codigo = r.Codigo
	u.CorreoElectronico = r.CorreoElectronico
	u.Rol = r.Rol
	u.Area = r.Area
	u.Activo = r.Activo
}

// ChangePasswordRequest rotates an account password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// UsuarioFilterQuery holds the account list filters.
type UsuarioFilterQuery struct {
	Rol  string `form:"rol"`
	Area string `form:"area"`

	// Q switches the listing to the ranked full-text search variant.
	Q string `form:"q"`
}

// ToFilter converts the query into a sparse filter map.
func (q *UsuarioFilterQuery) ToFilter() map[string]any {
	return map[string]any{
		"rol":  q.Rol,
		"area": q.Area,
	}
}

// UsuarioResponse is the account representation returned by the API.
type UsuarioResponse struct {
	ID                int64       `json:"id"`
	Nombres           string      `json:"nombres"`
	Apellidos         string      `json:"apellidos"`
	Codigo            string      `json:"codigo"`
	CorreoElectronico string      `json:"correoElectronico"`
	Rol               usuario.Rol `json:"rol"`
	Area              string      `json:"area,omitempty"`
	Activo            bool        `json:"activo"`
	FechaRegistro     time.Time   `json:"fechaRegistro"`
}

// FromUsuario maps a domain account to its response, dropping the hash.
func FromUsuario(u usuario.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:                u.ID,
		Nombres:           u.Nombres,
		Apellidos:         u.Apellidos,
		Codigo:            u.Codigo,
		CorreoElectronico: u.CorreoElectronico,
		Rol:               u.Rol,
		Area:              u.Area,
		Activo:            u.Activo,
		FechaRegistro:     u.FechaRegistro,
	}
}
