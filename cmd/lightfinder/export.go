package main

import (
	"fmt"
	"strings"

	"github.com/krislite/lightfinder/pkg/lightfinder"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportFormat string
	exportDir    string
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the matching fixtures to xlsx and/or pdf",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}
	addCriteriaFlags(cmd)
	cmd.Flags().StringVarP(&exportFormat, "format", "f", "xlsx", "Export format: xlsx, pdf, both")
	cmd.Flags().StringVarP(&exportDir, "output", "o", "", "Output directory (default: paths.exports)")
	return cmd
}

func exportFormats(s string) ([]lightfinder.Format, error) {
	if strings.EqualFold(strings.TrimSpace(s), "both") {
		return []lightfinder.Format{lightfinder.FormatXLSX, lightfinder.FormatPDF}, nil
	}
	f, err := lightfinder.ParseFormat(s)
	if err != nil {
		return nil, err
	}
	return []lightfinder.Format{f}, nil
}

func runExport(cmd *cobra.Command, args []string) error {
	formats, err := exportFormats(exportFormat)
	if err != nil {
		return err
	}
	dir := exportDir
	if dir == "" {
		dir = cfg.Paths.Exports
	}

	catalog, err := loadCatalog(cmd.Context(), false)
	if err != nil {
		return err
	}
	results, err := lightfinder.Search(catalog, criteria)
	if err != nil {
		return err
	}

	for _, format := range formats {
		path, err := lightfinder.Export(format, catalog, results, cfg.Paths.Images, dir, "")
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		log.Info("export written", zap.String("path", path), zap.Int("fixtures", len(results)))
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}
