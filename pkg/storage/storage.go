// Package storage is the Postgres gateway for the service. Each storage
// type checks a connection out of the bounded pool per call and releases
// it on every exit path, so a slow request can never pin more than one
// store connection.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"noticias-service/pkg/config"
)

// ErrNotFound is returned when a statement matches zero rows. Handlers
// translate it to a 404; every other storage error is a 500.
var ErrNotFound = errors.New("registro no encontrado")

// Open connects to the store described by cfg, bounds the pool and
// verifies the connection with a ping before returning.
func Open(cfg *config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping store: %w", err)
	}

	return db, nil
}

// Init creates the tables if they do not exist. Statements run one by
// one so a failure names the statement that broke.
func Init(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w\nstatement: %s", err, stmt)
		}
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS noticias (
    id                SERIAL PRIMARY KEY,
    titulo            TEXT NOT NULL,
    resumen           TEXT NOT NULL,
    contenido         TEXT NOT NULL,
    fecha_publicacion DATE NOT NULL,
    fuente            TEXT NOT NULL,
    departamento      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS personajes (
    id     BIGINT PRIMARY KEY,
    nombre TEXT NOT NULL,
    email  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS usuarios (
    username      TEXT PRIMARY KEY,
    password_hash TEXT NOT NULL
);
`
