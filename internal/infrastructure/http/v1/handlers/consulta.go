package handlers

import (
	"github.com/gin-gonic/gin"

	"juridicol/internal/domain/consulta"
	"juridicol/internal/infrastructure/http/v1/dto"
)

// ConsultaHandler serves consultation records.
type ConsultaHandler struct {
	BaseHandler
	service *consulta.Service
}

// NewConsultaHandler creates the consultation handler.
func NewConsultaHandler(service *consulta.Service) *ConsultaHandler {
	return &ConsultaHandler{service: service}
}

// Create files a consultation and mints its radicado.
// POST /api/v1/consultas
func (h *ConsultaHandler) Create(c *gin.Context) {
	var req dto.CreateConsultaRequest
	if !h.BindJSON(c, &req) {
		return
	}

	con := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), con); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, con)
}

// Get retrieves a consultation.
// GET /api/v1/consultas/:id
func (h *ConsultaHandler) Get(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	con, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, con)
}

// GetByRadicado retrieves a consultation by filing number.
// GET /api/v1/consultas/radicado/:radicado
func (h *ConsultaHandler) GetByRadicado(c *gin.Context) {
	con, err := h.service.GetByRadicado(c.Request.Context(), c.Param("radicado"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, con)
}

// Update edits a consultation's mutable fields.
// PUT /api/v1/consultas/:id
func (h *ConsultaHandler) Update(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	var req dto.UpdateConsultaRequest
	if !h.BindJSON(c, &req) {
		return
	}

	con := req.ToEntity()
	con.ID = id
	if err := h.service.Update(c.Request.Context(), con); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, con)
}

// Asignar assigns a consultation to a student.
// POST /api/v1/consultas/:id/asignar
func (h *ConsultaHandler) Asignar(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	var req dto.AsignarConsultaRequest
	if !h.BindJSON(c, &req) {
		return
	}

	con, err := h.service.Asignar(c.Request.Context(), id, req.EstudianteID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, con)
}

// Finalizar closes a consultation.
// POST /api/v1/consultas/:id/finalizar
func (h *ConsultaHandler) Finalizar(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	con, err := h.service.Finalizar(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, con)
}

// Delete removes a consultation.
// DELETE /api/v1/consultas/:id
func (h *ConsultaHandler) Delete(c *gin.Context) {
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

// List pages consultations, ordered by id or by registration timestamp.
// GET /api/v1/consultas
func (h *ConsultaHandler) List(c *gin.Context) {
	var filter dto.ConsultaFilterQuery
	var page dto.PageQuery
	if !h.BindQuery(c, &filter) || !h.BindQuery(c, &page) {
		return
	}

	ctx := c.Request.Context()
	list := h.service.List
	if filter.OrderBy == "fecha" {
		list = h.service.ListByFecha
	}

	result, err := list(ctx, filter.ToFilter(), page.ToPageRequest())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewPageResponse(result, func(con consulta.Consulta) consulta.Consulta { return con }))
}
