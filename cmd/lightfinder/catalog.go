package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/krislite/lightfinder/pkg/lightfinder/output"
	"github.com/spf13/cobra"
)

func newImagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "images",
		Short: "Extract the catalog's embedded images",
		Args:  cobra.NoArgs,
		RunE:  runImages,
	}
}

func runImages(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog(cmd.Context(), false)
	if err != nil {
		return err
	}

	cells := make([]string, 0, len(catalog.Images))
	for cell := range catalog.Images {
		cells = append(cells, cell)
	}
	sort.Strings(cells)

	out := cmd.OutOrStdout()
	for _, cell := range cells {
		fmt.Fprintf(out, "%s\t%s\n", cell, catalog.Images[cell])
	}
	fmt.Fprintf(out, "%d images written to %s\n", len(cells), cfg.Paths.Images)
	return nil
}

var optionsFormat string

func newOptionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the mounting, type and CCT choices of the catalog",
		Args:  cobra.NoArgs,
		RunE:  runOptions,
	}
	cmd.Flags().StringVarP(&optionsFormat, "format", "f", "text", "Output format: text, json")
	return cmd
}

func runOptions(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog(cmd.Context(), true)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if optionsFormat == "json" {
		data, err := output.OptionsToJSON(catalog, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	opts := output.OptionsOf(catalog)
	fmt.Fprintf(out, "Mountings: %s\n", strings.Join(opts.Mountings, ", "))
	fmt.Fprintf(out, "Types: %s\n", strings.Join(opts.Types, ", "))
	fmt.Fprintf(out, "CCTs: %s\n", strings.Join(opts.CCTs, ", "))
	return nil
}
