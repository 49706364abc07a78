// Aplica as migrações do schema no PostgreSQL configurado.
//
//	go run ./cmd/migrate         # aplica tudo (up)
//	go run ./cmd/migrate -down 1 # desfaz N passos
package main

import (
	"database/sql"
	"flag"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/raizvet/backoffice-api/migrations"
	"github.com/raizvet/backoffice-api/pkg/config"
	"github.com/raizvet/backoffice-api/pkg/logger"
)

func main() {
	downSteps := flag.Int("down", 0, "desfaz N migrações em vez de aplicar")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if err := run(cfg, *downSteps); err != nil {
		log.Fatal().Err(err).Msg("migração")
	}
	log.Info().Msg("migrações aplicadas")
}

func run(cfg *config.Config, downSteps int) error {
	// Conexão separada só para as migrações.
	db, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		return fmt.Errorf("create pgx driver: %w", err)
	}

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "pgx", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if downSteps > 0 {
		if err := m.Steps(-downSteps); err != nil && err != migrate.ErrNoChange {
			return fmt.Errorf("rollback migrations: %w", err)
		}
		return nil
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
