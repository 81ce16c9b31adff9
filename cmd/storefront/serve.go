// cmd/storefront/serve.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"storefront/internal/books"
	"storefront/internal/dealers"
	"storefront/internal/products"
	"storefront/internal/telemetry"
	"storefront/internal/view"
	"storefront/internal/web"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web UI",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default :8080)")
	_ = v.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry.OTLPEndpoint, cfg.Telemetry.ServiceName, logger)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Warn("Failed to flush traces", zap.Error(err))
		}
	}()

	pages, err := view.NewHTML(view.WithCompactThreshold(cfg.UI.CompactThreshold))
	if err != nil {
		return err
	}
	dealerService, err := newDealerService()
	if err != nil {
		return err
	}
	productService, err := newProductService()
	if err != nil {
		return err
	}

	srv := web.NewServer(
		books.NewHandler(newBooksAdmin(), pages, logger),
		dealers.NewHandler(dealerService, pages, logger),
		products.NewHandler(productService, pages, logger),
		pages,
		web.AdminAuth{Username: cfg.Admin.Username, PasswordHash: cfg.Admin.PasswordHash},
		logger,
	)

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting storefront",
			zap.String("addr", cfg.Server.Addr),
			zap.String("books_api", cfg.Books.APIURL),
			zap.Bool("admin_auth", cfg.Admin.PasswordHash != ""),
		)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "listen")
		}
		return nil
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(sctx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return nil
}
