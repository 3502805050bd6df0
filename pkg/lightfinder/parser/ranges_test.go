package parser

import (
	"testing"

	"github.com/krislite/lightfinder/pkg/lightfinder/models"
	"github.com/xuri/excelize/v2"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		ref      string
		expected models.CellRange
		wantErr  bool
	}{
		{"A1:W200", models.CellRange{R1: 1, C1: 1, R2: 200, C2: 23}, false},
		{"$B$2:$D$10", models.CellRange{R1: 2, C1: 2, R2: 10, C2: 4}, false},
		{"'Fixtures 2024'!A1:C3", models.CellRange{R1: 1, C1: 1, R2: 3, C2: 3}, false},
		{"D10:B2", models.CellRange{R1: 2, C1: 2, R2: 10, C2: 4}, false},
		{"A1", models.CellRange{}, true},
		{"A1:??", models.CellRange{}, true},
	}

	for _, tt := range tests {
		got, err := ParseRange(tt.ref)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseRange(%q) expected error", tt.ref)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRange(%q) unexpected error: %v", tt.ref, err)
			continue
		}
		if *got != tt.expected {
			t.Errorf("ParseRange(%q) = %+v, expected %+v", tt.ref, *got, tt.expected)
		}
	}
}

func TestExtractPrintArea(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet1!$A$1:$W$40",
		Scope:    "Sheet1",
	}); err != nil {
		t.Fatalf("SetDefinedName failed: %v", err)
	}

	area := ExtractPrintArea(f, "Sheet1")
	if area == nil {
		t.Fatal("Expected print area")
	}
	if area.String() != "A1:W40" {
		t.Errorf("Expected A1:W40, got %s", area.String())
	}
	if ExtractPrintArea(f, "Other") != nil {
		t.Error("Expected no print area for Other")
	}
}
