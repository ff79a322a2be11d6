package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"crowdcube/internal/adapter/memstore"
	"crowdcube/internal/adapter/mongostore"
	"crowdcube/internal/domain"
	"crowdcube/internal/http/handlers"
	"crowdcube/internal/http/httpapi"
	"crowdcube/internal/infra"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	store, closeStore, err := openStore(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer closeStore()

	app := handlers.NewApp(store, logger)
	router := httpapi.NewRouter(app, cfg.AllowedOrigins)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("CrowdCube server running on port: %s", cfg.Port)
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

func openStore(ctx context.Context, cfg *infra.Config, logger infra.Logger) (domain.Store, func(), error) {
	if cfg.MemoryStore {
		logger.Warn().Msg("MEMORY_STORE enabled, data is kept in process memory only")
		return memstore.New(), func() {}, nil
	}

	client, err := infra.NewMongoClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Info().Str("db", cfg.DBName).Msg("pinged your deployment, connected to MongoDB")

	closeFn := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect database")
		}
	}
	return mongostore.New(client.Database(cfg.DBName), logger), closeFn, nil
}
