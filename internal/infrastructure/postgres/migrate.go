package postgres

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate aplica todas las migraciones "up" embebidas. Devuelve la versión final y si hubo cambios.
func Migrate(pool *pgxpool.Pool) (version uint, changed bool, err error) {
	return runMigration(pool, func(m *migrate.Migrate) error { return m.Up() })
}

// MigrateDown revierte la última migración aplicada.
func MigrateDown(pool *pgxpool.Pool) (version uint, changed bool, err error) {
	return runMigration(pool, func(m *migrate.Migrate) error { return m.Steps(-1) })
}

func runMigration(pool *pgxpool.Pool, step func(*migrate.Migrate) error) (uint, bool, error) {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	m, err := newMigrator(db)
	if err != nil {
		return 0, false, err
	}

	stepErr := step(m)
	if stepErr != nil && !errors.Is(stepErr, migrate.ErrNoChange) {
		return 0, false, fmt.Errorf("migrate: %w", stepErr)
	}
	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, fmt.Errorf("migrate: versión: %w", err)
	}
	if dirty {
		return version, false, fmt.Errorf("migrate: la versión %d quedó sucia", version)
	}
	return version, stepErr == nil, nil
}

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		return nil, fmt.Errorf("migrate: driver: %w", err)
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("migrate: fuente: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		return nil, fmt.Errorf("migrate: instancia: %w", err)
	}
	return m, nil
}
