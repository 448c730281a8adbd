// Importador por línea de comandos: corre las dos etapas del ciclo de
// importación (categorías y después productos) contra la configuración de
// transferencia activa. Pensado para cron o para correr a mano en el servidor.
package main

import (
	"context"
	"os"

	"github.com/jhoicas/Tienda-api/internal/application/exchange"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/ftp"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/sftp"
	"github.com/jhoicas/Tienda-api/pkg/config"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	configRepo := postgres.NewTransferConfigRepository(pool)

	var dialer exchange.Dialer
	if cfg.Exchange.Protocol == "sftp" {
		dialer = sftp.NewDialer()
	} else {
		dialer = ftp.NewDialer()
	}
	session := exchange.NewImportSession(dialer, categoryRepo, productRepo, cfg.Exchange.Timeout(), log)

	active, err := configRepo.GetActive(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("leer configuración activa")
	}

	catOut, err := session.RunCategoryImport(ctx, active)
	if err != nil {
		log.Error().Err(err).Msg("importación de categorías abortada")
		os.Exit(1)
	}
	logOutcome(log, "categorias", catOut)

	prodOut, err := session.RunProductImport(ctx, active)
	if err != nil {
		log.Error().Err(err).Msg("importación de productos abortada")
		os.Exit(1)
	}
	logOutcome(log, "productos", prodOut)
}

func logOutcome(log *logger.Logger, stage string, out exchange.Outcome) {
	for _, lineErr := range out.Errors {
		log.Warn().Str("etapa", stage).Msg(lineErr.String())
	}
	log.Info().
		Str("etapa", stage).
		Int("creados", out.Created).
		Int("actualizados", out.Updated).
		Int("errores", len(out.Errors)).
		Msg("etapa terminada")
}
