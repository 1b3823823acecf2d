package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"noticias-service/pkg/models"
)

// UsuarioStorage reads credential records. The service exposes no CRUD
// surface for usuarios; rows are provisioned out of band or seeded.
type UsuarioStorage struct {
	db *sqlx.DB
}

func NewUsuarioStorage(db *sqlx.DB) *UsuarioStorage {
	return &UsuarioStorage{db: db}
}

// ByUsername returns the stored credential record or ErrNotFound
func (s *UsuarioStorage) ByUsername(ctx context.Context, username string) (*models.Usuario, error) {
	conn, err := s.db.Connx(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	var row dbUsuario
	err = conn.GetContext(ctx, &row,
		`SELECT username, password_hash FROM usuarios WHERE username = $1`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &models.Usuario{Username: row.Username, PasswordHash: row.PasswordHash}, nil
}

// Seed upserts a credential record. Bootstrap and test use only.
func (s *UsuarioStorage) Seed(ctx context.Context, username, passwordHash string) error {
	conn, err := s.db.Connx(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = conn.ExecContext(ctx,
		`INSERT INTO usuarios (username, password_hash) VALUES ($1, $2)
		 ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash`,
		username, passwordHash)
	return err
}

type dbUsuario struct {
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
}
