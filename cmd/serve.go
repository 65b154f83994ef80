package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ZacxDev/storefront/cache"
	"github.com/ZacxDev/storefront/handlers"
	"github.com/ZacxDev/storefront/logger"
	"github.com/ZacxDev/storefront/metrics"
	"github.com/ZacxDev/storefront/store"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the preview and API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			appConfig.Server.Port = port
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s, err := store.Open(ctx, appConfig.Store, appConfig.Server.BaseDomain, log)
		if err != nil {
			return err
		}
		defer s.Close()

		c, closeCache, err := cache.Open(ctx, appConfig.Cache)
		if err != nil {
			return err
		}
		defer closeCache()

		router, err := handlers.SetupRouter(handlers.Deps{
			Store:    s,
			Renderer: newRenderer(appConfig.Render),
			Cache:    c,
			Metrics:  metrics.New(),
			Logger:   log,
			Server:   appConfig.Server,
		})
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:         ":" + appConfig.Server.Port,
			Handler:      router,
			ReadTimeout:  appConfig.Server.ReadTimeout,
			WriteTimeout: appConfig.Server.WriteTimeout,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("starting server",
				logger.String("addr", srv.Addr),
				logger.String("store", appConfig.Store.Driver),
				logger.Bool("cache", appConfig.Cache.RedisAddress != ""))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return errors.Wrap(err, "listen")
		case <-ctx.Done():
		}

		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
		defer cancel()

		return errors.Wrap(srv.Shutdown(shutdownCtx), "shutdown")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "", "Port to run the server on (overrides config)")
}
