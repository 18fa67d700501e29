package main

import (
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/solasiya/spazamanager/pkg/config"
	"github.com/solasiya/spazamanager/pkg/logger"
)

// Aplica las migraciones SQL de db/migrations con goose sobre el driver
// database/sql de pgx. Uso: migrate [up|down|status] (default: up).
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	db, err := goose.OpenDBWithDriver("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir conexión para migraciones")
	}
	defer func() { _ = db.Close() }()

	const dir = "db/migrations"
	switch cmd {
	case "up":
		err = goose.Up(db, dir)
	case "down":
		err = goose.Down(db, dir)
	case "status":
		err = goose.Status(db, dir)
	default:
		log.Fatal().Str("cmd", cmd).Msg("comando desconocido (up|down|status)")
	}
	if err != nil {
		log.Fatal().Err(err).Str("cmd", cmd).Msg("migraciones fallidas")
	}
	log.Info().Str("cmd", cmd).Msg("migraciones aplicadas")
}
