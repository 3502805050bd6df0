package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/krislite/lightfinder/pkg/lightfinder/models"
)

// RenderSummary writes the result count line.
func RenderSummary(w io.Writer, results []models.Result) error {
	_, err := fmt.Fprintf(w, "Found %d fixtures\n", len(results))
	return err
}

// RenderList writes one detailed block per result.
func RenderList(w io.Writer, results []models.Result) error {
	for i, r := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		image := r.ImageFile
		if image == "" {
			image = "(No image)"
		}
		lines := []string{
			fmt.Sprintf("### %s — %s", r.ModelName, r.ModelNo),
			"Image: " + image,
			"Brand: " + r.Brand,
			"Type: " + r.Type,
			"Mounting: " + r.Mounting,
			"Description: " + r.Description,
			"Power: " + withUnit(r.Power, "W"),
			"Lumen: " + formatNumber(r.Lumen),
			"CRI: " + formatNumber(r.CRI),
			"Input Voltage: " + r.InputVoltage,
			"IP Rating: " + r.IPRating,
			"CCT: " + strings.Join(r.AvailableCCTs(), ", "),
			"RGB: " + yesNo(r.RGB),
			"RGBW: " + yesNo(r.RGBW),
			"Beam: " + r.Beam,
			"Comment: " + r.Comment,
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// RenderGrid writes compact cards, columns per row (GridColumns when <= 0).
func RenderGrid(w io.Writer, results []models.Result, columns int) error {
	if columns <= 0 {
		columns = GridColumns
	}
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	for start := 0; start < len(results); start += columns {
		end := start + columns
		if end > len(results) {
			end = len(results)
		}
		cards := make([][]string, 0, end-start)
		for _, r := range results[start:end] {
			cards = append(cards, gridCard(r))
		}
		for line := 0; line < len(cards[0]); line++ {
			cells := make([]string, len(cards))
			for i, card := range cards {
				cells[i] = card[line]
			}
			if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t"); err != nil {
				return err
			}
		}
		if end < len(results) {
			if _, err := fmt.Fprintln(tw); err != nil {
				return err
			}
		}
	}
	return tw.Flush()
}

func gridCard(r models.Result) []string {
	return []string{
		r.ModelName,
		r.ModelNo,
		withUnit(r.Power, "W") + " | " + withUnit(r.Lumen, "lm"),
		fmt.Sprintf("CRI %s | IP%s", formatNumber(r.CRI), r.IPRating),
	}
}

// Render writes the summary line followed by the results in the given view.
func Render(w io.Writer, results []models.Result, view ViewMode) error {
	if err := RenderSummary(w, results); err != nil {
		return err
	}
	if len(results) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if view == ViewGrid {
		return RenderGrid(w, results, GridColumns)
	}
	return RenderList(w, results)
}
