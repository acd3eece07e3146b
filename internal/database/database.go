package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store wraps the single connection used for one command invocation.
type Store struct {
	DB     *sql.DB
	Path   string
	Logger *zerolog.Logger
}

// InitStore removes any existing store file and creates a fresh schema.
func InitStore(ctx context.Context, path string, logger *zerolog.Logger) (*Store, error) {
	if err := DeleteStore(path); err != nil {
		return nil, err
	}

	store, err := open(ctx, path, path, logger)
	if err != nil {
		return nil, err
	}

	if err := store.runMigrations(); err != nil {
		_ = store.Close()
		return nil, err
	}

	logger.Debug().Str("path", path).Msg("Initialized store")

	return store, nil
}

// OpenStore opens an existing store. It never creates the file, so querying
// before setup surfaces as a storage error.
func OpenStore(ctx context.Context, path string, logger *zerolog.Logger) (*Store, error) {
	return open(ctx, path, fmt.Sprintf("file:%s?mode=rw", path), logger)
}

func open(ctx context.Context, path, dsn string, logger *zerolog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open store %s: %w", path, err)
	}

	// SQLite allows a single writer; one connection per invocation.
	db.SetMaxOpenConns(1)

	return &Store{DB: db, Path: path, Logger: logger}, nil
}

func (s *Store) runMigrations() error {
	driver, err := sqlite3.WithInstance(s.DB, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("could not create database driver: %w", err)
	}

	d, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("could not create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", d, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run up migrations: %w", err)
	}

	return nil
}

// DeleteStore removes the store file if it exists.
func DeleteStore(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to stat store %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("store path %s is a directory", path)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete store %s: %w", path, err)
	}

	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}
