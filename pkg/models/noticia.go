package models

// Noticia represents a news item as served by the API. Dates travel as
// YYYY-MM-DD strings; the admin client normalizes other layouts before
// sending.
type Noticia struct {
	ID               int64  `json:"id"`
	Titulo           string `json:"titulo"`
	Resumen          string `json:"resumen"`
	Contenido        string `json:"contenido"`
	FechaPublicacion string `json:"fecha_publicacion"`
	Fuente           string `json:"fuente"`
	Departamento     string `json:"departamento"`
}

// NoticiaRequest is the create/update payload. Every field is required;
// a missing or empty field fails binding and surfaces as a 400.
type NoticiaRequest struct {
	Titulo           string `json:"titulo" binding:"required"`
	Resumen          string `json:"resumen" binding:"required"`
	Contenido        string `json:"contenido" binding:"required"`
	FechaPublicacion string `json:"fecha_publicacion" binding:"required"`
	Fuente           string `json:"fuente" binding:"required"`
	Departamento     string `json:"departamento" binding:"required"`
}

// NoticiaPage is the paginated list envelope
type NoticiaPage struct {
	Items      []Noticia `json:"items"`
	TotalItems int       `json:"total_items"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
}
