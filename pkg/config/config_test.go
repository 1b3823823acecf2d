package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("default port: got %d", cfg.Server.Port)
	}
	if cfg.Database.Name != "noticias_financieras" {
		t.Errorf("default db name: got %q", cfg.Database.Name)
	}
	if cfg.Database.MaxOpenConns != 10 {
		t.Errorf("default pool size: got %d", cfg.Database.MaxOpenConns)
	}
}

func TestLoad_FileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  host: 127.0.0.1
  port: 9000
database:
  host: db.internal
  port: 5433
  name: noticias_test
log_level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr() != "127.0.0.1:9000" {
		t.Errorf("addr: got %q", cfg.Server.Addr())
	}
	if cfg.Database.Host != "db.internal" || cfg.Database.Port != 5433 {
		t.Errorf("db settings: %+v", cfg.Database)
	}
	// Untouched sections keep their defaults
	if cfg.Database.User != "postgres" {
		t.Errorf("default user: got %q", cfg.Database.User)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level: got %q", cfg.LogLevel)
	}
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("database:\n  host: from-file\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DB_HOST", "from-env")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("AUTH_JWT_SECRET", "env-secret")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Host != "from-env" {
		t.Errorf("env override lost: got %q", cfg.Database.Host)
	}
	if cfg.Database.Port != 6543 {
		t.Errorf("env port: got %d", cfg.Database.Port)
	}
	if cfg.Auth.JWTSecret != "env-secret" {
		t.Errorf("jwt secret: got %q", cfg.Auth.JWTSecret)
	}
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{
		Host: "localhost", Port: 5432, User: "sa",
		Password: "Noticia123", Name: "noticias_financieras", SSLMode: "disable",
	}
	want := "host=localhost port=5432 user=sa password=Noticia123 dbname=noticias_financieras sslmode=disable"
	if got := db.DSN(); got != want {
		t.Errorf("DSN: got %q", got)
	}
}
