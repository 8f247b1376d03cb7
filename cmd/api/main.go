// Command api runs the athletics results HTTP API.
//
// Startup order matters: config, observability, schema migrations,
// then the server container and its HTTP stack. Shutdown drains
// in-flight requests before closing the pools.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/athleticsdata/athletics-api/internal/config"
	"github.com/athleticsdata/athletics-api/internal/database"
	"github.com/athleticsdata/athletics-api/internal/handler"
	"github.com/athleticsdata/athletics-api/internal/logger"
	"github.com/athleticsdata/athletics-api/internal/middleware"
	"github.com/athleticsdata/athletics-api/internal/repository"
	"github.com/athleticsdata/athletics-api/internal/router"
	"github.com/athleticsdata/athletics-api/internal/server"
	"github.com/athleticsdata/athletics-api/internal/service"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	bootstrapLogger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	loggerService, err := logger.NewLoggerService(cfg, &bootstrapLogger)
	if err != nil {
		bootstrapLogger.Fatal().Err(err).Msg("failed to initialize logger service")
	}

	appLogger := logger.New(cfg, loggerService)

	ctx := context.Background()
	if err := database.Migrate(ctx, appLogger, cfg); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to run database migrations")
	}

	srv, err := server.New(cfg, appLogger, loggerService)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv.DB.Pool)

	services, err := service.NewService(srv, repos)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to initialize services")
	}

	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	e := router.New(handlers, middlewares)
	srv.SetupHTTPServer(e)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
	}

	loggerService.Shutdown(10 * time.Second)

	appLogger.Info().Msg("server stopped")
}
