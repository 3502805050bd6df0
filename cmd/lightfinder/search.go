package main

import (
	"fmt"

	"github.com/krislite/lightfinder/pkg/lightfinder"
	"github.com/krislite/lightfinder/pkg/lightfinder/models"
	"github.com/krislite/lightfinder/pkg/lightfinder/output"
	"github.com/spf13/cobra"
)

var (
	criteria     = models.DefaultCriteria()
	view         string
	searchFormat string
)

// addCriteriaFlags registers the search filters on cmd.
func addCriteriaFlags(cmd *cobra.Command) {
	d := models.DefaultCriteria()
	cmd.Flags().Float64Var(&criteria.Power, "power", d.Power, "Target power in watts (0-200)")
	cmd.Flags().Float64Var(&criteria.Lumen, "lumen", d.Lumen, "Target lumen (0-10000)")
	cmd.Flags().Float64Var(&criteria.MinCRI, "cri", d.MinCRI, "Minimum CRI (0-100)")
	cmd.Flags().StringVar(&criteria.Mounting, "mounting", models.Any, "Mounting")
	cmd.Flags().StringVar(&criteria.Type, "type", models.Any, "Fixture type")
	cmd.Flags().StringVar(&criteria.CCT, "cct", models.Any, "Preferred CCT, e.g. 3000K")
	cmd.Flags().BoolVar(&criteria.RGB, "rgb", false, "RGB required")
	cmd.Flags().BoolVar(&criteria.RGBW, "rgbw", false, "RGBW required")
}

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find fixtures matching the criteria",
		Args:  cobra.NoArgs,
		RunE:  runSearch,
	}
	addCriteriaFlags(cmd)
	cmd.Flags().StringVar(&view, "view", string(output.ViewList), "Result layout: list, grid")
	cmd.Flags().StringVarP(&searchFormat, "format", "f", "text", "Output format: text, json")
	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	viewMode, err := output.ParseViewMode(view)
	if err != nil {
		return err
	}
	if searchFormat != "text" && searchFormat != "json" {
		return fmt.Errorf("invalid format: %s (must be text or json)", searchFormat)
	}

	catalog, err := loadCatalog(cmd.Context(), false)
	if err != nil {
		return err
	}
	results, err := lightfinder.Search(catalog, criteria)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if searchFormat == "json" {
		data, err := output.ResultsToJSON(results, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}
	return output.Render(out, results, viewMode)
}
