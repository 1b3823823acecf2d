package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"noticias-service/pkg/models"
	"noticias-service/pkg/storage"
)

// ListPersonajes handles GET /personajes. A bare array, no envelope;
// this resource never grew pagination.
func (h *Handlers) ListPersonajes(c *gin.Context) {
	personajes, err := h.personajes.List(c.Request.Context())
	if err != nil {
		h.storeError(c, "obtener personajes", err)
		return
	}
	if personajes == nil {
		personajes = []models.Personaje{}
	}

	c.JSON(http.StatusOK, personajes)
}

// GetPersonaje handles GET /personajes/:id
func (h *Handlers) GetPersonaje(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	personaje, err := h.personajes.ByID(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"mensaje": "Personaje no encontrado"})
		return
	}
	if err != nil {
		h.storeError(c, "obtener personaje", err)
		return
	}

	c.JSON(http.StatusOK, personaje)
}

// CreatePersonaje handles POST /personajes. The id travels in the body
// and is chosen by the client; a duplicate id surfaces as a store error.
func (h *Handlers) CreatePersonaje(c *gin.Context) {
	var req models.CreatePersonajeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "se requieren todos los campos"})
		return
	}

	personaje := models.Personaje{
		ID:     req.ID,
		Nombre: req.Nombre,
		Email:  req.Email,
	}
	if err := h.personajes.Create(c.Request.Context(), personaje); err != nil {
		h.storeError(c, "crear personaje", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"mensaje": "Personaje creado exitosamente"})
}

// UpdatePersonaje handles PUT /personajes/:id
func (h *Handlers) UpdatePersonaje(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdatePersonajeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "se requieren todos los campos"})
		return
	}

	err := h.personajes.Update(c.Request.Context(), id, req)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"mensaje": "Personaje no encontrado"})
		return
	}
	if err != nil {
		h.storeError(c, "actualizar personaje", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Personaje actualizado exitosamente"})
}

// DeletePersonaje handles DELETE /personajes/:id
func (h *Handlers) DeletePersonaje(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	err := h.personajes.Delete(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"mensaje": "Personaje no encontrado"})
		return
	}
	if err != nil {
		h.storeError(c, "eliminar personaje", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Personaje eliminado exitosamente"})
}
