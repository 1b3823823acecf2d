package storage

import (
	"testing"
	"time"
)

func TestDBNoticiaToModel(t *testing.T) {
	row := dbNoticia{
		ID:               3,
		Titulo:           "A",
		Resumen:          "B",
		Contenido:        "C",
		FechaPublicacion: time.Date(2024, 1, 1, 13, 45, 0, 0, time.UTC),
		Fuente:           "D",
		Departamento:     "E",
	}

	n := row.toModel()
	if n.FechaPublicacion != "2024-01-01" {
		t.Errorf("fecha must serialize as YYYY-MM-DD, got %q", n.FechaPublicacion)
	}
	if n.ID != 3 || n.Titulo != "A" || n.Departamento != "E" {
		t.Errorf("unexpected model: %+v", n)
	}
}
