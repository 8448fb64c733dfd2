// Package usuario provides clinic user accounts: students working cases,
// professors supervising them, and administrators.
package usuario

import (
	"context"
	"regexp"
	"time"

	"juridicol/internal/core/apperror"
)

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Rol is the account role.
type Rol string

const (
	RolEstudiante    Rol = "estudiante"
	RolProfesor      Rol = "profesor"
	RolAdministrador Rol = "administrador"
)

// Valid reports whether the role is one of the supported values.
func (r Rol) Valid() bool {
	return r == RolEstudiante || r == RolProfesor || r == RolAdministrador
}

// Usuario represents a clinic user account. Codigo and CorreoElectronico
// are unique.
type Usuario struct {
	ID int64 `db:"id" json:"id"`

	Nombres   string `db:"nombres" json:"nombres"`
	Apellidos string `db:"apellidos" json:"apellidos"`

	// Codigo is the institutional code.
	Codigo            string `db:"codigo" json:"codigo"`
	CorreoElectronico string `db:"correo_electronico" json:"correoElectronico"`

	Rol  Rol    `db:"rol" json:"rol"`
	Area string `db:"area" json:"area,omitempty"`

	Activo bool `db:"activo" json:"activo"`

	PasswordHash string `db:"password_hash" json:"-"`

	FechaRegistro time.Time `db:"fecha_registro" json:"fechaRegistro"`
}

// NombreCompleto returns the display name.
func (u *Usuario) NombreCompleto() string {
	return u.Nombres + " " + u.Apellidos
}

// Validate checks the account invariants. Password handling is the
// service's concern.
func (u *Usuario) Validate(_ context.Context) error {
	if u.Nombres == "" {
		return apperror.NewValidation("nombres is required").WithDetail("field", "nombres")
	}
	if u.Apellidos == "" {
		return apperror.NewValidation("apellidos is required").WithDetail("field", "apellidos")
	}
	if u.Codigo == "" {
		return apperror.NewValidation("codigo is required").WithDetail("field", "codigo")
	}
	if !emailRE.MatchString(u.CorreoElectronico) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "correoElectronico")
	}
	if !u.Rol.Valid() {
		return apperror.NewValidation("invalid role").
			WithDetail("field", "rol").
			WithDetail("value", string(u.Rol))
	}
	return nil
}
