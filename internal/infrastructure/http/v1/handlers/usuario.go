package handlers

import (
	"github.com/gin-gonic/gin"

	"juridicol/internal/domain/listing"
	"juridicol/internal/domain/usuario"
	"juridicol/internal/infrastructure/http/v1/dto"
)

// UsuarioHandler serves user accounts.
type UsuarioHandler struct {
	BaseHandler
	service *usuario.Service
}

// NewUsuarioHandler creates the account handler.
func NewUsuarioHandler(service *usuario.Service) *UsuarioHandler {
	return &UsuarioHandler{service: service}
}

// Create registers an account.
// POST /api/v1/usuarios
func (h *UsuarioHandler) Create(c *gin.Context) {
	var req dto.CreateUsuarioRequest
	if !h.BindJSON(c, &req) {
		return
	}

	u := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), u, req.Password); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromUsuario(*u))
}

// Get retrieves an account.
// GET /api/v1/usuarios/:id
func (h *UsuarioHandler) Get(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	u, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromUsuario(*u))
}

// Update edits an account profile.
// PUT /api/v1/usuarios/:id
func (h *UsuarioHandler) Update(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	var req dto.UpdateUsuarioRequest
	if !h.BindJSON(c, &req) {
		return
	}

	u := &usuario.Usuario{ID: id}
	req.ApplyTo(u)
	if err := h.service.Update(c.Request.Context(), u); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromUsuario(*u))
}

// ChangePassword rotates an account password.
// POST /api/v1/usuarios/:id/password
func (h *UsuarioHandler) ChangePassword(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// Deactivate disables an account.
// POST /api/v1/usuarios/:id/deactivate
func (h *UsuarioHandler) Deactivate(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// List pages accounts. With the q parameter the listing switches to the
// ranked full-text search variant.
// GET /api/v1/usuarios
func (h *UsuarioHandler) List(c *gin.Context) {
	var filter dto.UsuarioFilterQuery
	var page dto.PageQuery
	if !h.BindQuery(c, &filter) || !h.BindQuery(c, &page) {
		return
	}

	ctx := c.Request.Context()
	var (
		result listing.Page[usuario.Usuario]
		err    error
	)
	if filter.Q != "" {
		result, err = h.service.Search(ctx, filter.Q, page.ToPageRequest())
	} else {
		result, err = h.service.List(ctx, filter.ToFilter(), page.ToPageRequest())
	}
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewPageResponse(result, dto.FromUsuario))
}
