// seed_admin crea el usuario administrador inicial. Si el usuario ya existe no hace nada.
//
// Uso: go run ./cmd/seed_admin -username admin -password '...' [-nombre "Administrador"]
// También lee SEED_ADMIN_USERNAME y SEED_ADMIN_PASSWORD.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Tienda-api/pkg/config"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

func main() {
	username := flag.String("username", os.Getenv("SEED_ADMIN_USERNAME"), "usuario administrador")
	password := flag.String("password", os.Getenv("SEED_ADMIN_PASSWORD"), "contraseña (mínimo 8 caracteres)")
	name := flag.String("nombre", "Administrador", "nombre para mostrar")
	email := flag.String("email", "", "correo opcional")
	flag.Parse()

	if *username == "" || len(*password) < 8 {
		fmt.Fprintln(os.Stderr, "username y password (mínimo 8 caracteres) son requeridos")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("seed_admin")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	user, err := authUC.RegisterUser(ctx, dto.RegisterUserRequest{
		Username: *username,
		Password: *password,
		Email:    *email,
		Name:     *name,
		Role:     entity.RoleAdmin,
	})
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		log.Info().Str("username", *username).Msg("el usuario ya existe, nada que hacer")
	case err != nil:
		log.Error().Err(err).Msg("crear administrador")
		pool.Close()
		os.Exit(1)
	default:
		log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("administrador creado")
	}
}
