package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/krislite/lightfinder/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var addr string

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog browser over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: http.addr)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog, err := loadCatalog(ctx, false)
	if err != nil {
		return err
	}

	listen := addr
	if listen == "" {
		listen = cfg.HTTP.Addr
	}

	router := server.NewRouter(log)
	router.RegisterRoutes(server.NewHandler(catalog, server.HandlerConfig{
		Title:    cfg.HTTP.Title,
		ImageDir: cfg.Paths.Images,
		LogoPath: cfg.Paths.Logo,
	}, log))
	srv := server.NewServer(listen, router, log)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
		return err
	}
	return <-errCh
}
