package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"noticias-service/pkg/models"
	"noticias-service/pkg/storage"
)

const (
	defaultPage  = 1
	defaultLimit = 5
)

// ListNoticias handles GET /noticias with optional page, limit and
// query parameters. Results come back newest first inside the
// pagination envelope; total_items counts every row matching the same
// filter, not just the returned page.
func (h *Handlers) ListNoticias(c *gin.Context) {
	page := positiveQueryInt(c, "page", defaultPage)
	limit := positiveQueryInt(c, "limit", defaultLimit)
	query := c.Query("query")

	items, total, err := h.noticias.List(c.Request.Context(), page, limit, query)
	if err != nil {
		h.storeError(c, "obtener noticias", err)
		return
	}
	if items == nil {
		items = []models.Noticia{}
	}

	c.JSON(http.StatusOK, models.NoticiaPage{
		Items:      items,
		TotalItems: total,
		Page:       page,
		Limit:      limit,
	})
}

// GetNoticia handles GET /noticias/:id
func (h *Handlers) GetNoticia(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	noticia, err := h.noticias.ByID(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"mensaje": "Noticia no encontrada"})
		return
	}
	if err != nil {
		h.storeError(c, "obtener noticia", err)
		return
	}

	c.JSON(http.StatusOK, noticia)
}

// CreateNoticia handles POST /noticias. The response carries only a
// message; the generated id is not returned and callers re-list to
// learn it.
func (h *Handlers) CreateNoticia(c *gin.Context) {
	var req models.NoticiaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "se requieren todos los campos"})
		return
	}

	if err := h.noticias.Create(c.Request.Context(), req); err != nil {
		h.storeError(c, "crear noticia", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"mensaje": "Noticia creada exitosamente"})
}

// UpdateNoticia handles PUT /noticias/:id. Updating a row that no
// longer exists is a not-found condition, not a store error.
func (h *Handlers) UpdateNoticia(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.NoticiaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "se requieren todos los campos"})
		return
	}

	err := h.noticias.Update(c.Request.Context(), id, req)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"mensaje": "Noticia no encontrada"})
		return
	}
	if err != nil {
		h.storeError(c, "actualizar noticia", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Noticia actualizada exitosamente"})
}

// DeleteNoticia handles DELETE /noticias/:id. Deleting twice yields
// 404 the second time; the effect is idempotent, the status is not.
func (h *Handlers) DeleteNoticia(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	err := h.noticias.Delete(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"mensaje": "Noticia no encontrada"})
		return
	}
	if err != nil {
		h.storeError(c, "eliminar noticia", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Noticia eliminada exitosamente"})
}

// positiveQueryInt reads an integer query parameter, falling back to
// the default when the value is missing, malformed or below 1.
func positiveQueryInt(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
