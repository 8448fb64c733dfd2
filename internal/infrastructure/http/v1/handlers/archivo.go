package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"juridicol/internal/core/apperror"
	"juridicol/internal/domain/archivo"
	"juridicol/internal/infrastructure/http/v1/dto"
)

// ArchivoHandler serves consultation attachments.
type ArchivoHandler struct {
	BaseHandler
	service *archivo.Service
}

// NewArchivoHandler creates the attachment handler.
func NewArchivoHandler(service *archivo.Service) *ArchivoHandler {
	return &ArchivoHandler{service: service}
}

// Upload stores a multipart file for a consultation.
// POST /api/v1/consultas/:id/archivos
func (h *ArchivoHandler) Upload(c *gin.Context) {
	consultaID, ok := h.PathID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		h.Error(c, apperror.NewValidation("file is required").WithDetail("error", err.Error()))
		return
	}

	src, err := file.Open()
	if err != nil {
		h.Error(c, apperror.NewInternal(err))
		return
	}
	defer src.Close()

	a := &archivo.Archivo{
		ConsultaID:  consultaID,
		Nombre:      file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Tamano:      file.Size,
	}
	if err := h.service.Upload(c.Request.Context(), a, src); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromArchivo(*a))
}

// Download streams an attachment's bytes.
// GET /api/v1/archivos/:id/download
func (h *ArchivoHandler) Download(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	a, rc, err := h.service.Open(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", `attachment; filename="`+a.Nombre+`"`)
	c.DataFromReader(http.StatusOK, a.Tamano, a.ContentType, rc, nil)
}

// Get retrieves attachment metadata.
// GET /api/v1/archivos/:id
func (h *ArchivoHandler) Get(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	a, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromArchivo(*a))
}

// Delete removes an attachment.
// DELETE /api/v1/archivos/:id
func (h *ArchivoHandler) Delete(c *gin.Context) {
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

// ListByConsulta pages a consultation's attachments.
// GET /api/v1/consultas/:id/archivos
func (h *ArchivoHandler) ListByConsulta(c *gin.Context) {
	consultaID, ok := h.PathID(c)
	if !ok {
		return
	}

	var page dto.PageQuery
	if !h.BindQuery(c, &page) {
		return
	}

	result, err := h.service.ListByConsulta(c.Request.Context(), consultaID, page.ToPageRequest())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewPageResponse(result, dto.FromArchivo))
}
