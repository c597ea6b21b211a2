// migrate aplica o revierte las migraciones embebidas del esquema.
//
// Uso: go run ./cmd/migrate [up|down]
// Por defecto aplica todas las migraciones pendientes.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/Tienda-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Tienda-api/pkg/config"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

func main() {
	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}
	if direction != "up" && direction != "down" {
		fmt.Fprintf(os.Stderr, "dirección inválida %q: use up o down\n", direction)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("migrate")

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("dsn", postgres.RedactDSN(cfg.DB.ConnectionString())).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	run := postgres.Migrate
	if direction == "down" {
		run = postgres.MigrateDown
	}
	version, changed, err := run(pool)
	if err != nil {
		log.Error().Err(err).Str("direction", direction).Msg("migración fallida")
		pool.Close()
		os.Exit(1)
	}
	log.Info().Str("direction", direction).Uint("version", version).Bool("changed", changed).Msg("migración completada")
}
