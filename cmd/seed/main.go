// Comando seed: inicializa el store con los datos de ejemplo (o lo reinicia con -reset)
// y muestra el resumen resultante leído a través de la fachada de la API.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/jhoicas/intellicollect-api/internal/application/dto"
	"github.com/jhoicas/intellicollect-api/internal/application/mockapi"
	"github.com/jhoicas/intellicollect-api/internal/application/usecase"
	"github.com/jhoicas/intellicollect-api/internal/infrastructure/kvstore"
	infrapdf "github.com/jhoicas/intellicollect-api/internal/infrastructure/pdf"
	"github.com/jhoicas/intellicollect-api/internal/infrastructure/seed"
	"github.com/jhoicas/intellicollect-api/internal/infrastructure/storage"
	"github.com/jhoicas/intellicollect-api/pkg/config"
	"github.com/jhoicas/intellicollect-api/pkg/logger"
)

func main() {
	reset := flag.Bool("reset", false, "borra todas las colecciones y vuelve a sembrar")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, err := storage.Open(ctx, cfg, log.Zerolog())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir store")
	}

	if code := run(ctx, store, cfg, log, *reset); code != 0 {
		_ = store.Close()
		os.Exit(code)
	}
	if err := store.Close(); err != nil {
		log.Error().Err(err).Msg("cerrar store")
	}
}

func run(ctx context.Context, store *kvstore.Store, cfg *config.Config, log *logger.Logger, reset bool) int {
	if reset {
		if err := seed.Reset(ctx, store, log.Component("seed")); err != nil {
			log.Error().Err(err).Msg("reiniciar store")
			return 1
		}
	} else {
		seeded, err := seed.Initialize(ctx, store, log.Component("seed"))
		if err != nil {
			log.Error().Err(err).Msg("inicializar store")
			return 1
		}
		if !seeded {
			log.Info().Msg("el store ya estaba inicializado; use -reset para volver a sembrar")
		}
	}

	api := mockapi.New(
		usecase.NewServices(kvstore.Repositories(store), infrapdf.NewMarotoPDFGenerator(cfg.App.Name)),
		cfg.Mock.Latency,
		dto.HealthResponse{App: cfg.App.Name, Version: cfg.App.Version, Environment: cfg.App.Env},
	)
	summary, err := api.AnalyticsSummary(ctx)
	if err != nil {
		log.Error().Err(err).Msg("leer resumen")
		return 1
	}
	log.Info().
		Int("customers", summary.TotalCustomers).
		Int("invoices", summary.TotalInvoices).
		Int("payments", summary.TotalPayments).
		Int("pending_invoices", summary.PendingInvoices).
		Str("total_revenue", summary.TotalRevenue.StringFixed(2)).
		Msg("store listo")
	return 0
}
