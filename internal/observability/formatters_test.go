package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/resume-layout/internal/layout"
	"github.com/jonathan/resume-layout/internal/templates"
	"github.com/jonathan/resume-layout/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintTemplate(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTemplate(templates.Get("modern"))

	out := buf.String()
	assert.Contains(t, out, "RESOLVED TEMPLATE")
	assert.Contains(t, out, "modern")
	assert.Contains(t, out, "sidebar")
	assert.Contains(t, out, "30%")
}

func TestPrintTemplate_NilConfigPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintTemplate(nil)
	assert.Empty(t, buf.String())
}

func TestPrintSections_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	sections := make([]types.Section, 8)
	for i := range sections {
		sections[i] = types.Section{Type: types.TypeCustom, Title: "Section", IsVisible: true}
	}
	p.PrintSections(sections)

	out := buf.String()
	assert.Contains(t, out, "MATERIALIZED SECTIONS")
	assert.Contains(t, out, "8 visible sections")
	assert.Contains(t, out, "and 3 more sections")
}

func TestPrintRegionOrder(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	orders := map[string][]types.SectionKey{
		"main":    {types.KeyHeader, types.SectionKey(types.TypeExperience)},
		"sidebar": nil,
	}
	p.PrintRegionOrder(orders, []string{"sidebar", "main"})

	out := buf.String()
	assert.Contains(t, out, "REGION SECTION ORDER")
	assert.Contains(t, out, "sidebar: (empty)")
	assert.Contains(t, out, "header")
}

func TestPrintRegionOrder_EmptyMapPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRegionOrder(nil, nil)
	assert.Empty(t, buf.String())
}

func TestPrintPageTree(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := &types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{FullName: "Jane Doe"},
	}
	tree := layout.Render(doc, "professional")
	require.NotNil(t, tree)

	p.PrintPageTree(tree)

	out := buf.String()
	assert.Contains(t, out, "ASSEMBLED PAGE TREE")
	assert.Contains(t, out, "professional")
	assert.Contains(t, out, "595")
}

func TestPrintViolations_CleanTemplate(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintViolations(&templates.Violations{TemplateID: "classic"})

	assert.Contains(t, buf.String(), "NO VIOLATIONS FOUND")
}

func TestPrintViolations_WithFindings(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintViolations(&templates.Violations{
		TemplateID: "broken",
		Violations: []templates.Violation{
			{Type: templates.ViolationUnknownRegion, Severity: templates.SeverityWarning, Details: "content mapping references region \"ghost\""},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "TEMPLATE LINT FINDINGS")
	assert.Contains(t, out, "unknown_region")
	assert.Contains(t, out, "warning")
}
