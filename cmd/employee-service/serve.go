package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/employee-service/internal/config"
	"github.com/deppfellow/employee-service/internal/database"
	"github.com/deppfellow/employee-service/internal/handler"
	"github.com/deppfellow/employee-service/internal/repository"
	"github.com/deppfellow/employee-service/internal/router"
	"github.com/deppfellow/employee-service/internal/server"
	"github.com/deppfellow/employee-service/internal/service"
	"github.com/spf13/cobra"
)

// DefaultContextTimeout bounds the graceful shutdown.
const DefaultContextTimeout = 30

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, loggerService, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer loggerService.Shutdown()

		// Local postgres databases are migrated by hand with the migrate command.
		if cfg.Database.Driver == config.DriverPostgres && !cfg.IsLocal() {
			if err := database.Migrate(cmd.Context(), &log, cfg); err != nil {
				log.Error().Err(err).Msg("failed to migrate database")
				return err
			}
		}

		srv, err := server.New(cfg, &log, loggerService)
		if err != nil {
			log.Error().Err(err).Msg("failed to initialize server")
			return err
		}

		repos := repository.NewRepositories(srv)
		services, err := service.NewServices(srv, repos)
		if err != nil {
			log.Error().Err(err).Msg("could not create services")
			return err
		}

		handlers := handler.NewHandlers(srv, services)
		r := router.NewRouter(srv, handlers)

		srv.SetupHTTPServer(r)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		serveErr := make(chan error, 1)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- err
			}
			close(serveErr)
		}()

		startErr := awaitShutdown(ctx, serveErr)
		if startErr != nil {
			log.Error().Err(startErr).Msg("server stopped unexpectedly")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultContextTimeout*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server forced to shutdown")
			return errors.Join(startErr, err)
		}

		if startErr != nil {
			return startErr
		}

		log.Info().Msg("server exited properly")
		return nil
	},
}

// awaitShutdown blocks until ctx is done or the server goroutine reports.
// It returns the server's error, or nil for a signal or a clean close.
func awaitShutdown(ctx context.Context, serveErr <-chan error) error {
	select {
	case <-ctx.Done():
		return nil
	case err := <-serveErr:
		return err
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
