// Package handlers contains the HTTP handlers for the noticias API.
package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"noticias-service/pkg/auth"
	"noticias-service/pkg/models"
)

// NoticiaStore is the persistence surface the noticia handlers need
type NoticiaStore interface {
	List(ctx context.Context, page, limit int, query string) ([]models.Noticia, int, error)
	ByID(ctx context.Context, id int64) (*models.Noticia, error)
	Create(ctx context.Context, req models.NoticiaRequest) error
	Update(ctx context.Context, id int64, req models.NoticiaRequest) error
	Delete(ctx context.Context, id int64) error
}

// PersonajeStore is the persistence surface the personaje handlers need
type PersonajeStore interface {
	List(ctx context.Context) ([]models.Personaje, error)
	ByID(ctx context.Context, id int64) (*models.Personaje, error)
	Create(ctx context.Context, p models.Personaje) error
	Update(ctx context.Context, id int64, req models.UpdatePersonajeRequest) error
	Delete(ctx context.Context, id int64) error
}

// Handlers contains all HTTP handlers
type Handlers struct {
	log        *logrus.Logger
	noticias   NoticiaStore
	personajes PersonajeStore
	auth       *auth.Auth
}

// New creates a new Handlers instance
func New(log *logrus.Logger, noticias NoticiaStore, personajes PersonajeStore, auth *auth.Auth) *Handlers {
	return &Handlers{
		log:        log,
		noticias:   noticias,
		personajes: personajes,
		auth:       auth,
	}
}

// Health reports liveness without a store round trip
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "noticias-api",
	})
}

// pathID parses the {id} path parameter. Identifiers are positive
// integers; anything else is a 400 before the store is touched.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "identificador inválido"})
		return 0, false
	}
	return id, true
}

// storeError logs the underlying failure and answers 500 with a short
// operation message; the raw store error never leaks to the client.
func (h *Handlers) storeError(c *gin.Context, op string, err error) {
	h.log.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"op":         op,
	}).WithError(err).Error("store operation failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "error al " + op})
}
