package lightfinder

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/krislite/lightfinder/pkg/lightfinder/models"
	"github.com/krislite/lightfinder/pkg/lightfinder/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Load reads a fixture catalog from an xlsx file on disk.
func Load(path string, opts Options) (*models.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	return LoadBytes(filepath.Base(path), data, opts)
}

// LoadBytes reads a fixture catalog from xlsx content. name is reported as
// the catalog's book name.
func LoadBytes(name string, data []byte, opts Options) (*models.Catalog, error) {
	log := opts.logger().With(zap.String("book", name))

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, name, err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, name, err)
	}
	defer f.Close()

	sheet, err := selectSheet(f, opts.Sheet)
	if err != nil {
		return nil, NewLoadError(opts.Sheet, "open", err)
	}
	log = log.With(zap.String("sheet", sheet))

	imageCol, err := excelize.ColumnNameToNumber(opts.imageColumn())
	if err != nil {
		return nil, NewLoadError(sheet, "images", fmt.Errorf("image column: %w", err))
	}
	imageColName, _ := excelize.ColumnNumberToName(imageCol)

	area, err := tableRange(f, sheet, opts.Range)
	if err != nil {
		return nil, NewLoadError(sheet, "range", err)
	}
	if area == nil {
		return nil, NewLoadError(sheet, "range", ErrNoHeader)
	}

	rows, err := parser.ExtractCells(f, sheet, area, opts.IncludeLinks)
	if err != nil {
		return nil, NewLoadError(sheet, "cells", err)
	}
	if len(rows) == 0 {
		return nil, NewLoadError(sheet, "cells", ErrNoHeader)
	}

	header := rows[0]
	columns, byCol := headerColumns(header, *area, log)
	warnMissingColumns(columns, log)

	catalog := &models.Catalog{
		BookName:  name,
		SheetName: sheet,
		Columns:   columns,
		HeaderRow: header.R,
		Range:     *area,
	}
	for _, row := range rows[1:] {
		catalog.Fixtures = append(catalog.Fixtures, buildFixture(row, byCol))
	}

	if opts.SkipImages {
		return catalog, nil
	}

	images, err := extractImages(zr, sheet, opts, log)
	if err != nil {
		return nil, NewLoadError(sheet, "images", err)
	}
	catalog.Images = images
	for i := range catalog.Fixtures {
		cell := imageColName + strconv.Itoa(catalog.Fixtures[i].Row)
		if file, ok := images[cell]; ok {
			catalog.Fixtures[i].ImageFile = file
		}
	}

	log.Debug("catalog loaded",
		zap.Int("fixtures", len(catalog.Fixtures)),
		zap.Int("images", len(images)),
		zap.String("range", area.String()))
	return catalog, nil
}

func selectSheet(f *excelize.File, name string) (string, error) {
	if name == "" {
		return f.GetSheetName(f.GetActiveSheetIndex()), nil
	}
	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return "", err
	}
	if idx < 0 {
		return "", fmt.Errorf("%w: %s", ErrSheetNotFound, name)
	}
	return name, nil
}

// tableRange resolves the table bounds: explicit range, print area, then
// detected data bounds.
func tableRange(f *excelize.File, sheet, explicit string) (*models.CellRange, error) {
	if explicit != "" {
		return parser.ParseRange(explicit)
	}
	if area := parser.ExtractPrintArea(f, sheet); area != nil {
		return area, nil
	}
	return parser.DetectTable(f, sheet, parser.DefaultTableParams())
}

// headerColumns returns the header names in column order and a lookup from
// column index to header name. Known headers keep their canonical spelling.
func headerColumns(header models.CellRow, area models.CellRange, log *zap.Logger) ([]string, map[string]string) {
	canonical := make(map[string]string)
	for _, name := range models.KnownColumns() {
		canonical[strings.ToLower(name)] = name
	}

	var columns []string
	byCol := make(map[string]string)
	seen := make(map[string]bool)
	for col := area.C1; col <= area.C2; col++ {
		key := strconv.Itoa(col)
		v, ok := header.C[key]
		if !ok {
			continue
		}
		name := strings.TrimSpace(cellText(v))
		if name == "" {
			continue
		}
		if known, ok := canonical[strings.ToLower(name)]; ok {
			name = known
		}
		if seen[name] {
			log.Warn("duplicate column ignored", zap.String("column", name), zap.Int("col", col))
			continue
		}
		seen[name] = true
		columns = append(columns, name)
		byCol[key] = name
	}
	return columns, byCol
}

func warnMissingColumns(columns []string, log *zap.Logger) {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}
	var missing []string
	for _, c := range models.KnownColumns() {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		log.Warn("catalog is missing columns", zap.Strings("columns", missing))
	}
}

func buildFixture(row models.CellRow, byCol map[string]string) models.Fixture {
	fx := models.Fixture{
		Row:    row.R,
		CCT:    make(map[string]bool, len(models.CCTs)),
		Values: make(map[string]interface{}, len(row.C)),
	}
	for key, v := range row.C {
		name, ok := byCol[key]
		if !ok {
			continue
		}
		fx.Values[name] = v
		if link, ok := row.Links[key]; ok {
			if fx.Links == nil {
				fx.Links = make(map[string]string)
			}
			fx.Links[name] = link
		}

		text := strings.TrimSpace(cellText(v))
		switch name {
		case models.ColModelName:
			fx.ModelName = text
		case models.ColModelNo:
			fx.ModelNo = text
		case models.ColBrand:
			fx.Brand = text
		case models.ColType:
			fx.Type = text
		case models.ColMounting:
			fx.Mounting = text
		case models.ColDescription:
			fx.Description = text
		case models.ColInputVoltage:
			fx.InputVoltage = text
		case models.ColIPRating:
			fx.IPRating = text
		case models.ColBeam:
			fx.Beam = text
		case models.ColComment:
			fx.Comment = text
		case models.ColPower:
			fx.Power = models.ParseNumber(v)
		case models.ColLumen:
			fx.Lumen = models.ParseNumber(v)
		case models.ColCRI:
			fx.CRI = models.ParseNumber(v)
		case models.ColRGB:
			fx.RGB = models.ParseFlag(v)
		case models.ColRGBW:
			fx.RGBW = models.ParseFlag(v)
		default:
			if models.IsCCT(name) {
				fx.CCT[name] = models.ParseFlag(v)
			}
		}
	}
	return fx
}

// extractImages saves every picture anchored on the sheet and maps its
// anchor cell to the saved file name. Pictures that cannot be converted are
// logged and skipped.
func extractImages(zr *zip.Reader, sheet string, opts Options, log *zap.Logger) (map[string]string, error) {
	pics, err := parser.ExtractPictures(zr, sheet)
	if err != nil {
		return nil, err
	}

	dir := opts.ImageDir
	if dir == "" {
		dir = DefaultOptions().ImageDir
	}

	images := make(map[string]string, len(pics))
	for _, pic := range pics {
		if _, ok := images[pic.Cell]; ok {
			log.Warn("second picture on cell ignored", zap.String("cell", pic.Cell), zap.String("media", pic.Media))
			continue
		}
		name, err := parser.SaveImage(pic, dir, opts.MaxImageSize)
		if err != nil {
			log.Warn("skipping picture", zap.String("cell", pic.Cell), zap.Error(err))
			continue
		}
		images[pic.Cell] = name
	}
	return images, nil
}

func cellText(v interface{}) string {
	switch n := v.(type) {
	case string:
		return n
	case int64:
		return strconv.FormatInt(n, 10)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(n)
	}
}
