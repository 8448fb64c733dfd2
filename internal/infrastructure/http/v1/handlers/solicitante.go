package handlers

import (
	"github.com/gin-gonic/gin"

	"juridicol/internal/domain/solicitante"
	"juridicol/internal/infrastructure/http/v1/dto"
)

// SolicitanteHandler serves the applicant registry.
type SolicitanteHandler struct {
	BaseHandler
	service *solicitante.Service
}

// NewSolicitanteHandler creates the applicant handler.
func NewSolicitanteHandler(service *solicitante.Service) *SolicitanteHandler {
	return &SolicitanteHandler{service: service}
}

// Create registers an applicant.
// POST /api/v1/solicitantes
func (h *SolicitanteHandler) Create(c *gin.Context) {
	var req dto.CreateSolicitanteRequest
	if !h.BindJSON(c, &req) {
		return
	}

	sol := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), sol); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, sol)
}

// Get retrieves an applicant.
// GET /api/v1/solicitantes/:id
func (h *SolicitanteHandler) Get(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	sol, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, sol)
}

// Update replaces an applicant's data.
// PUT /api/v1/solicitantes/:id
func (h *SolicitanteHandler) Update(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	var req dto.UpdateSolicitanteRequest
	if !h.BindJSON(c, &req) {
		return
	}

	sol := req.ToEntity()
	sol.ID = id
	if err := h.service.Update(c.Request.Context(), sol); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, sol)
}

// Delete removes an applicant.
// DELETE /api/v1/solicitantes/:id
func (h *SolicitanteHandler) Delete(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// List pages applicants.
// GET /api/v1/solicitantes
func (h *SolicitanteHandler) List(c *gin.Context) {
	var filter dto.SolicitanteFilterQuery
	var page dto.PageQuery
	if !h.BindQuery(c, &filter) || !h.BindQuery(c, &page) {
		return
	}

	result, err := h.service.List(c.Request.Context(), filter.ToFilter(), page.ToPageRequest())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewPageResponse(result, func(s solicitante.Solicitante) solicitante.Solicitante { return s }))
}
