package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"noticias-service/pkg/models"
)

// NoticiaStorage persists noticias in Postgres
type NoticiaStorage struct {
	db *sqlx.DB
}

func NewNoticiaStorage(db *sqlx.DB) *NoticiaStorage {
	return &NoticiaStorage{db: db}
}

// List returns one page of noticias ordered by publication date
// descending, plus the total row count for the same filter. An empty
// query matches everything; otherwise it is matched case-insensitively
// against titulo, resumen and contenido.
func (s *NoticiaStorage) List(ctx context.Context, page, limit int, query string) ([]models.Noticia, int, error) {
	conn, err := s.db.Connx(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer conn.Close()

	where := ``
	args := []interface{}{}
	if query != "" {
		where = `WHERE titulo ILIKE $1 OR resumen ILIKE $1 OR contenido ILIKE $1`
		args = append(args, "%"+query+"%")
	}

	var total int
	if err := conn.GetContext(ctx, &total, `SELECT COUNT(*) FROM noticias `+where, args...); err != nil {
		return nil, 0, err
	}

	n := len(args)
	listArgs := append(args, limit, (page-1)*limit)
	var rows []dbNoticia
	err = conn.SelectContext(ctx, &rows,
		fmt.Sprintf(`SELECT id, titulo, resumen, contenido, fecha_publicacion, fuente, departamento
		 FROM noticias %s
		 ORDER BY fecha_publicacion DESC
		 LIMIT $%d OFFSET $%d`, where, n+1, n+2),
		listArgs...)
	if err != nil {
		return nil, 0, err
	}

	return lo.Map(rows, func(row dbNoticia, _ int) models.Noticia {
		return row.toModel()
	}), total, nil
}

// ByID returns a single noticia or ErrNotFound
func (s *NoticiaStorage) ByID(ctx context.Context, id int64) (*models.Noticia, error) {
	conn, err := s.db.Connx(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	var row dbNoticia
	err = conn.GetContext(ctx, &row,
		`SELECT id, titulo, resumen, contenido, fecha_publicacion, fuente, departamento
		 FROM noticias WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	noticia := row.toModel()
	return &noticia, nil
}

// Create inserts a noticia inside a transaction. The generated id is
// deliberately not returned; callers re-list to find it.
func (s *NoticiaStorage) Create(ctx context.Context, req models.NoticiaRequest) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op once Commit succeeds

	_, err = tx.ExecContext(ctx,
		`INSERT INTO noticias (titulo, resumen, contenido, fecha_publicacion, fuente, departamento)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		req.Titulo, req.Resumen, req.Contenido, req.FechaPublicacion, req.Fuente, req.Departamento)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Update rewrites every field of one noticia. Zero affected rows is a
// not-found condition, not a statement error.
func (s *NoticiaStorage) Update(ctx context.Context, id int64, req models.NoticiaRequest) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx,
		`UPDATE noticias
		 SET titulo = $1, resumen = $2, contenido = $3, fecha_publicacion = $4, fuente = $5, departamento = $6
		 WHERE id = $7`,
		req.Titulo, req.Resumen, req.Contenido, req.FechaPublicacion, req.Fuente, req.Departamento, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

// Delete removes one noticia; ErrNotFound when the id matched nothing
func (s *NoticiaStorage) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx, `DELETE FROM noticias WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

// Internal row struct so column mapping stays out of the API model
type dbNoticia struct {
	ID               int64     `db:"id"`
	Titulo           string    `db:"titulo"`
	Resumen          string    `db:"resumen"`
	Contenido        string    `db:"contenido"`
	FechaPublicacion time.Time `db:"fecha_publicacion"`
	Fuente           string    `db:"fuente"`
	Departamento     string    `db:"departamento"`
}

func (r dbNoticia) toModel() models.Noticia {
	return models.Noticia{
		ID:               r.ID,
		Titulo:           r.Titulo,
		Resumen:          r.Resumen,
		Contenido:        r.Contenido,
		FechaPublicacion: r.FechaPublicacion.Format("2006-01-02"),
		Fuente:           r.Fuente,
		Departamento:     r.Departamento,
	}
}
