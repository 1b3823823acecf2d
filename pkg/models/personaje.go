package models

// Personaje is the secondary user-like resource. Unlike noticias, the
// identifier is supplied by the client at creation time.
type Personaje struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

// CreatePersonajeRequest carries the client-chosen id plus all fields
type CreatePersonajeRequest struct {
	ID     int64  `json:"id" binding:"required"`
	Nombre string `json:"nombre" binding:"required"`
	Email  string `json:"email" binding:"required"`
}

// UpdatePersonajeRequest updates a personaje in place; the id comes
// from the path, never the body
type UpdatePersonajeRequest struct {
	Nombre string `json:"nombre" binding:"required"`
	Email  string `json:"email" binding:"required"`
}
