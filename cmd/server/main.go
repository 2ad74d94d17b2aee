package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yourplaces/places-api/internal/api"
	"github.com/yourplaces/places-api/internal/core/service"
	mongodb "github.com/yourplaces/places-api/internal/infrastructure/db/mongo"
	"github.com/yourplaces/places-api/internal/infrastructure/geocode"
	"github.com/yourplaces/places-api/internal/infrastructure/storage"
	"github.com/yourplaces/places-api/internal/pkg/config"
	"github.com/yourplaces/places-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	userRepo := mongodb.NewUserRepository(db)
	placeRepo := mongodb.NewPlaceRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := placeRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create place indexes")
	}

	// --- Uploads ---
	fileStore, err := storage.NewLocalStore(cfg.Uploads.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise upload store")
	}
	cleanup := storage.NewCleanup(fileStore, log)
	cleanup.Start(ctx)

	// --- Services ---
	geocoder := geocode.NewGoogleGeocoder(geocode.Config{
		BaseURL: cfg.Geocode.BaseURL,
		APIKey:  cfg.Geocode.APIKey,
		Timeout: cfg.Geocode.Timeout,
	})
	uow := mongodb.NewUnitOfWork(client)
	placeService := service.NewPlaceService(placeRepo, userRepo, uow, geocoder, cleanup, log)
	userService := service.NewUserService(userRepo, cfg.JWTSecret, time.Hour, log)

	e := api.NewRouter(api.Deps{
		DB:        db,
		Places:    placeService,
		Users:     userService,
		Files:     fileStore,
		JWTSecret: cfg.JWTSecret,
		UploadDir: cfg.Uploads.Dir,
		Logger:    log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
