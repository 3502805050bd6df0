package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/krislite/lightfinder/pkg/lightfinder/models"
	"github.com/xuri/excelize/v2"
)

// emuPerPixel is the DrawingML EMU count of one pixel at 96 DPI.
const emuPerPixel = 9525

// EMUToPixels converts a DrawingML offset to pixels at 96 DPI.
func EMUToPixels(emu int64) int {
	return int(emu / emuPerPixel)
}

// cellMarker is the xdr:from position of an anchor (0-based column/row).
type cellMarker struct {
	col, row       int
	colOff, rowOff int64
}

// pictureRef is an xdr:pic element inside an anchor.
type pictureRef struct {
	name  string
	embed string
}

// drawingAnchor holds the pictures sharing one anchor.
type drawingAnchor struct {
	from *cellMarker
	pics []pictureRef
}

// ExtractPictures returns the pictures anchored to cells of sheetName,
// ordered by row then column. Pictures with an absolute anchor or a
// missing media part are skipped.
func ExtractPictures(r *zip.Reader, sheetName string) ([]models.Picture, error) {
	sheetPaths, err := sheetPartPaths(r)
	if err != nil {
		return nil, err
	}
	sheetPath, ok := sheetPaths[sheetName]
	if !ok {
		return nil, nil
	}

	sheetRelsXML, err := readZipFile(r, relsPathFor(sheetPath))
	if err != nil || sheetRelsXML == nil {
		return nil, err
	}

	var pictures []models.Picture
	for _, rel := range parseRelationships(sheetRelsXML) {
		if !strings.HasSuffix(rel.Type, relTypeDrawing) {
			continue
		}
		drawingPath := resolvePartPath(path.Dir(sheetPath), rel.Target)
		pics, err := parseDrawingPart(r, drawingPath)
		if err != nil {
			return nil, fmt.Errorf("drawing %s: %w", drawingPath, err)
		}
		pictures = append(pictures, pics...)
	}

	sort.SliceStable(pictures, func(i, j int) bool {
		if pictures[i].Row != pictures[j].Row {
			return pictures[i].Row < pictures[j].Row
		}
		return pictures[i].Col < pictures[j].Col
	})
	return pictures, nil
}

// parseDrawingPart resolves the pictures of one drawing part to media bytes.
func parseDrawingPart(r *zip.Reader, drawingPath string) ([]models.Picture, error) {
	drawingXML, err := readZipFile(r, drawingPath)
	if err != nil {
		return nil, err
	}
	if drawingXML == nil {
		return nil, nil
	}

	media := make(map[string]string)
	relsXML, err := readZipFile(r, relsPathFor(drawingPath))
	if err != nil {
		return nil, err
	}
	for _, rel := range parseRelationships(relsXML) {
		if strings.HasSuffix(rel.Type, relTypeImage) && !strings.EqualFold(rel.TargetMode, "External") {
			media[rel.ID] = resolvePartPath(path.Dir(drawingPath), rel.Target)
		}
	}

	var pictures []models.Picture
	for _, anchor := range parseDrawingXML(drawingXML) {
		if anchor.from == nil {
			continue
		}
		col, row := anchor.from.col+1, anchor.from.row+1
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			continue
		}
		for _, pic := range anchor.pics {
			mediaPath, ok := media[pic.embed]
			if !ok {
				continue
			}
			data, err := readZipFile(r, mediaPath)
			if err != nil {
				return nil, err
			}
			if data == nil {
				continue
			}
			pictures = append(pictures, models.Picture{
				Cell:    cell,
				Col:     col,
				Row:     row,
				OffsetX: EMUToPixels(anchor.from.colOff),
				OffsetY: EMUToPixels(anchor.from.rowOff),
				Name:    pic.name,
				Media:   mediaPath,
				Data:    data,
			})
		}
	}
	return pictures, nil
}

// parseDrawingXML parses drawing XML content and returns its anchors.
func parseDrawingXML(data []byte) []drawingAnchor {
	var anchors []drawingAnchor

	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok {
			switch se.Name.Local {
			case "twoCellAnchor", "oneCellAnchor", "absoluteAnchor":
				anchors = append(anchors, parseAnchor(decoder))
			}
		}
	}

	return anchors
}

// parseAnchor parses an anchor element, its from marker and every picture
// nested in it, group shapes included.
func parseAnchor(decoder *xml.Decoder) drawingAnchor {
	var anchor drawingAnchor
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "from":
				anchor.from = parseMarker(decoder)
				depth--
			case "pic":
				if pic := parsePicture(decoder); pic.embed != "" {
					anchor.pics = append(anchor.pics, pic)
				}
				depth--
			case "Fallback":
				// mc:Fallback repeats the mc:Choice content.
				if err := decoder.Skip(); err != nil {
					return anchor
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return anchor
}

// parseMarker parses the col/colOff/row/rowOff children of xdr:from.
func parseMarker(decoder *xml.Decoder) *cellMarker {
	m := &cellMarker{}
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			var text string
			if err := decoder.DecodeElement(&text, &t); err != nil {
				return m
			}
			text = strings.TrimSpace(text)
			switch t.Name.Local {
			case "col":
				m.col, _ = strconv.Atoi(text)
			case "row":
				m.row, _ = strconv.Atoi(text)
			case "colOff":
				m.colOff, _ = strconv.ParseInt(text, 10, 64)
			case "rowOff":
				m.rowOff, _ = strconv.ParseInt(text, 10, 64)
			}
		case xml.EndElement:
			depth--
		}
	}
	return m
}

// parsePicture parses an xdr:pic element for its name and blip embed id.
func parsePicture(decoder *xml.Decoder) pictureRef {
	var pic pictureRef
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "cNvPr":
				for _, attr := range t.Attr {
					if attr.Name.Local == "name" {
						pic.name = attr.Value
					}
				}
			case "blip":
				for _, attr := range t.Attr {
					if attr.Name.Local == "embed" {
						pic.embed = attr.Value
					}
				}
			}
		case xml.EndElement:
			depth--
		}
	}
	return pic
}
