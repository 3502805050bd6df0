package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/krislite/lightfinder/pkg/lightfinder/models"
)

// PDF layout in points. Letter page with one-inch margins, 10pt Helvetica
// on a 12pt leading.
const (
	pdfMargin      = 72.0
	pdfFontSize    = 10.0
	pdfLeading     = 12.0
	pdfImageWidth  = 160.0
	pdfImageHeight = 60.0
	pdfSpacer      = 15.0
)

// WritePDF writes the results as a printable document: per fixture a bold
// title line, its key attributes, the image when one was extracted to
// imageDir, then a spacer.
func WritePDF(w io.Writer, results []models.Result, imageDir string) error {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle("Fixture search results", true)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	line := func(style, text string) {
		pdf.SetFont("Helvetica", style, pdfFontSize)
		pdf.MultiCell(0, pdfLeading, tr(text), "", "L", false)
	}

	for _, r := range results {
		line("B", fmt.Sprintf("%s - %s", r.ModelName, r.ModelNo))
		line("", "Brand: "+r.Brand)
		line("", "Type: "+r.Type)
		line("", "Mounting: "+r.Mounting)
		line("", "Power: "+withUnit(r.Power, "W"))
		line("", "Lumen: "+formatNumber(r.Lumen))
		line("", "CRI: "+formatNumber(r.CRI))
		line("", "Input Voltage: "+r.InputVoltage)
		line("", "IP Rating: "+r.IPRating)

		if r.ImageFile != "" {
			if err := addImage(pdf, filepath.Join(imageDir, r.ImageFile)); err != nil {
				return err
			}
		}
		pdf.Ln(pdfSpacer)

		if err := pdf.Error(); err != nil {
			return fmt.Errorf("failed to build pdf: %w", err)
		}
	}

	return pdf.Output(w)
}

func addImage(pdf *fpdf.Fpdf, path string) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(path, opts, f)
	if pdf.Err() {
		return fmt.Errorf("failed to register image %s: %w", path, pdf.Error())
	}
	left, _, _, _ := pdf.GetMargins()
	pdf.ImageOptions(path, left, -1, pdfImageWidth, pdfImageHeight, true, opts, 0, "")
	return nil
}
