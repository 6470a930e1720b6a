package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/intellicollect-api/internal/application/dto"
	"github.com/jhoicas/intellicollect-api/internal/application/usecase"
	"github.com/jhoicas/intellicollect-api/internal/infrastructure/kvstore"
	infrapdf "github.com/jhoicas/intellicollect-api/internal/infrastructure/pdf"
	"github.com/jhoicas/intellicollect-api/internal/infrastructure/seed"
	"github.com/jhoicas/intellicollect-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/intellicollect-api/internal/interfaces/http"
	"github.com/jhoicas/intellicollect-api/pkg/config"
	"github.com/jhoicas/intellicollect-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("version", cfg.App.Version).
		Msg("iniciando aplicación")

	// importes como números JSON, no strings
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg, log.Zerolog())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar store")
		}
	}()

	if cfg.Store.SeedOnStart {
		seeded, err := seed.Initialize(ctx, store, log.Component("seed"))
		if err != nil {
			log.Fatal().Err(err).Msg("inicializar datos de ejemplo")
		}
		log.Info().Bool("seeded", seeded).Msg("store inicializado")
	}

	services := usecase.NewServices(kvstore.Repositories(store), infrapdf.NewMarotoPDFGenerator(cfg.App.Name))

	app := httpRouter.NewApp(httpRouter.RouterDeps{
		Services: services,
		Health: dto.HealthResponse{
			Status:      "healthy",
			App:         cfg.App.Name,
			Version:     cfg.App.Version,
			Environment: cfg.App.Env,
		},
		Log:         log.Component("http"),
		SwaggerFile: "./docs/swagger.json",
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
