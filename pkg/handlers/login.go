package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"noticias-service/pkg/auth"
	"noticias-service/pkg/models"
)

// Login handles POST /login. Unknown username and wrong password both
// answer the same 401 so the caller cannot probe which usernames exist.
func (h *Handlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "se requieren usuario y contraseña"})
		return
	}

	err := h.auth.ValidateCredentials(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "credenciales inválidas"})
		return
	}
	if err != nil {
		h.storeError(c, "verificar credenciales", err)
		return
	}

	token, err := h.auth.GenerateToken(req.Username)
	if err != nil {
		h.log.WithError(err).Error("token generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error al generar el token"})
		return
	}

	// Session cookie for the admin client; API callers can use the
	// token from the body as a bearer header instead.
	c.SetCookie("token", token, 86400, "/", "", false, true)

	c.JSON(http.StatusOK, models.LoginResponse{
		Token:   token,
		Mensaje: "inicio de sesión exitoso",
	})
}

// Logout handles POST /logout by expiring the session cookie
func (h *Handlers) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"mensaje": "sesión cerrada"})
}

// Session handles GET /session. It sits behind the auth middleware and
// reports who the current token belongs to.
func (h *Handlers) Session(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"username": c.GetString("username")})
}
