package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"noticias-service/pkg/models"
)

// PersonajeStorage persists personajes in Postgres
type PersonajeStorage struct {
	db *sqlx.DB
}

func NewPersonajeStorage(db *sqlx.DB) *PersonajeStorage {
	return &PersonajeStorage{db: db}
}

// List returns every personaje. No pagination and no explicit order;
// this resource never grew an envelope.
func (s *PersonajeStorage) List(ctx context.Context) ([]models.Personaje, error) {
	conn, err := s.db.Connx(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	var rows []dbPersonaje
	if err := conn.SelectContext(ctx, &rows, `SELECT id, nombre, email FROM personajes`); err != nil {
		return nil, err
	}

	return lo.Map(rows, func(row dbPersonaje, _ int) models.Personaje {
		return models.Personaje(row)
	}), nil
}

// ByID returns a single personaje or ErrNotFound
func (s *PersonajeStorage) ByID(ctx context.Context, id int64) (*models.Personaje, error) {
	conn, err := s.db.Connx(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	var row dbPersonaje
	err = conn.GetContext(ctx, &row, `SELECT id, nombre, email FROM personajes WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return (*models.Personaje)(&row), nil
}

// Create inserts a personaje with its client-supplied id
func (s *PersonajeStorage) Create(ctx context.Context, p models.Personaje) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx,
		`INSERT INTO personajes (id, nombre, email) VALUES ($1, $2, $3)`,
		p.ID, p.Nombre, p.Email)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Update rewrites nombre and email; ErrNotFound when id matched nothing
func (s *PersonajeStorage) Update(ctx context.Context, id int64, req models.UpdatePersonajeRequest) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx,
		`UPDATE personajes SET nombre = $1, email = $2 WHERE id = $3`,
		req.Nombre, req.Email, id)
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

// Delete removes one personaje; ErrNotFound when the id matched nothing
func (s *PersonajeStorage) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx, `DELETE FROM personajes WHERE id = $1`, id)
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

type dbPersonaje struct {
	ID     int64  `db:"id"`
	Nombre string `db:"nombre"`
	Email  string `db:"email"`
}
