// Package main provides the CLI entry point for lightfinder.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/krislite/lightfinder/internal/config"
	"github.com/krislite/lightfinder/internal/logger"
	"github.com/krislite/lightfinder/pkg/lightfinder"
	"github.com/krislite/lightfinder/pkg/lightfinder/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	pretty     bool

	cfg *config.Config
	log *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lightfinder",
		Short: "Search a lighting fixture catalog",
		Long: `lightfinder loads a spreadsheet catalog of lighting fixtures, matches them
against power, lumen, CRI and feature criteria, and exports the results
as a spreadsheet or a printable document.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if log != nil {
				_ = log.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	config.Default().BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newSearchCmd(),
		newExportCmd(),
		newImagesCmd(),
		newOptionsCmd(),
		newServeCmd(),
	)
	return rootCmd
}

// setup resolves the configuration (defaults, file, environment, flags) and
// builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := loaded.ApplyFlags(cmd.Flags()); err != nil {
		return err
	}
	cfg = loaded

	log, err = logger.New(cfg.Log.Level, cfg.Log.Format, "lightfinder")
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	return nil
}

// loadCatalog opens the configured catalog.
func loadCatalog(ctx context.Context, skipImages bool) (*models.Catalog, error) {
	opts := cfg.LoadOptions(log)
	opts.SkipImages = opts.SkipImages || skipImages

	catalog, err := lightfinder.Open(ctx, cfg.Catalog.Path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Info("catalog loaded",
		zap.String("book", catalog.BookName),
		zap.String("sheet", catalog.SheetName),
		zap.Int("fixtures", len(catalog.Fixtures)),
		zap.Int("images", len(catalog.Images)))
	return catalog, nil
}
