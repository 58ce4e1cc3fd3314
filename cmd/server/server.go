package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"

	"reel-server/reel-api/internal/config"
	userdomain "reel-server/reel-api/internal/domain/user"
	videodomain "reel-server/reel-api/internal/domain/video"
	"reel-server/reel-api/internal/infrastructure/database"
	"reel-server/reel-api/internal/infrastructure/docstore"
	"reel-server/reel-api/internal/infrastructure/logger"
	"reel-server/reel-api/internal/infrastructure/observability"
	userrepo "reel-server/reel-api/internal/infrastructure/repository/user"
	videorepo "reel-server/reel-api/internal/infrastructure/repository/video"
	"reel-server/reel-api/internal/infrastructure/storage"
	"reel-server/reel-api/internal/interfaces/httpserver"
)

// @title Reel API
// @version 1.0
// @description Short-video sharing backend: user profiles, uploads and presigned playback URLs
// @BasePath /
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseDSN,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := database.Migrate(db, log); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	docs, err := docstore.Connect(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("connect docstore")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := docs.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("close docstore")
		}
	}()

	storageClient, err := storage.NewS3Storage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize storage")
	}

	userService := userdomain.NewService(userrepo.NewRepository(db), log)
	videoService := videodomain.NewService(cfg, videorepo.NewRepository(docs.Database()), storageClient, log)

	httpServer := httpserver.New(cfg, log, userService, videoService)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
