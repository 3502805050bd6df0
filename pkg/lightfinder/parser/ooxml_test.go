package parser

import "testing"

func TestResolvePartPath(t *testing.T) {
	tests := []struct {
		baseDir  string
		target   string
		expected string
	}{
		{"xl/drawings", "../media/image1.png", "xl/media/image1.png"},
		{"xl/worksheets", "../drawings/drawing1.xml", "xl/drawings/drawing1.xml"},
		{"xl", "worksheets/sheet1.xml", "xl/worksheets/sheet1.xml"},
		{"xl", "/xl/worksheets/sheet2.xml", "xl/worksheets/sheet2.xml"},
	}

	for _, tt := range tests {
		result := resolvePartPath(tt.baseDir, tt.target)
		if result != tt.expected {
			t.Errorf("resolvePartPath(%q, %q) = %q, expected %q",
				tt.baseDir, tt.target, result, tt.expected)
		}
	}
}

func TestRelsPathFor(t *testing.T) {
	tests := []struct {
		part     string
		expected string
	}{
		{"xl/worksheets/sheet1.xml", "xl/worksheets/_rels/sheet1.xml.rels"},
		{"xl/drawings/drawing2.xml", "xl/drawings/_rels/drawing2.xml.rels"},
	}

	for _, tt := range tests {
		if result := relsPathFor(tt.part); result != tt.expected {
			t.Errorf("relsPathFor(%q) = %q, expected %q", tt.part, result, tt.expected)
		}
	}
}

func TestParseRelationships(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="../media/image1.png"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="https://example.com/a.png" TargetMode="External"/>
</Relationships>`)

	rels := parseRelationships(data)
	if len(rels) != 2 {
		t.Fatalf("Expected 2 relationships, got %d", len(rels))
	}
	if rels[0].ID != "rId1" || rels[0].Target != "../media/image1.png" {
		t.Errorf("Unexpected first relationship: %+v", rels[0])
	}
	if rels[1].TargetMode != "External" {
		t.Errorf("Expected External target mode, got %q", rels[1].TargetMode)
	}
}
