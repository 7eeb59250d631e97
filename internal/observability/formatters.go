// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-layout/internal/pagetree"
	"github.com/jonathan/resume-layout/internal/templates"
	"github.com/jonathan/resume-layout/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintTemplate outputs a summary of the template the render resolved to.
func (p *Printer) PrintTemplate(cfg *templates.Config) {
	if cfg == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Template:  %s (%s)\n", cfg.ID, cfg.Label))
	sb.WriteString(fmt.Sprintf("Layout:    %s\n", cfg.Layout))
	sb.WriteString("\nRegions:\n")
	for _, region := range cfg.Regions.Structure {
		line := fmt.Sprintf("  • %s [%s]", region.ID, region.Slot)
		if region.WidthFraction > 0 {
			line += fmt.Sprintf(" %.0f%%", region.WidthFraction*100)
		}
		sb.WriteString(line + "\n")
	}

	p.printBox("RESOLVED TEMPLATE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSections outputs the materialized section list in render order.
func (p *Printer) PrintSections(sections []types.Section) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Materialized %d visible sections:\n\n", len(sections)))

	count := min(len(sections), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := sections[i]
		title := s.Title
		if len(title) > 30 {
			title = title[:27] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s (%s, %d items)\n", title, s.Type, len(s.Items)))
	}
	if len(sections) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more sections\n", len(sections)-maxItemsToShow))
	}

	p.printBox("MATERIALIZED SECTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRegionOrder outputs the resolved key order for each region.
func (p *Printer) PrintRegionOrder(orders map[string][]types.SectionKey, regionIDs []string) {
	if len(orders) == 0 {
		return
	}

	var sb strings.Builder
	for _, regionID := range regionIDs {
		keys := orders[regionID]
		if len(keys) == 0 {
			sb.WriteString(fmt.Sprintf("%s: (empty)\n", regionID))
			continue
		}
		labels := make([]string, len(keys))
		for i, key := range keys {
			labels[i] = string(key)
		}
		sb.WriteString(fmt.Sprintf("%s: %s\n", regionID, strings.Join(labels, " → ")))
	}

	p.printBox("REGION SECTION ORDER", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPageTree outputs summary statistics for the assembled page tree.
func (p *Printer) PrintPageTree(tree *pagetree.Tree) {
	if tree == nil {
		return
	}

	regions := len(tree.Header) + len(tree.Footer)
	blocks := 0
	for _, r := range tree.Header {
		blocks += len(r.Blocks)
	}
	if tree.Body != nil {
		regions += len(tree.Body.Regions)
		for _, r := range tree.Body.Regions {
			blocks += len(r.Blocks)
		}
	}
	for _, r := range tree.Footer {
		blocks += len(r.Blocks)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Template:  %s\n", tree.TemplateID))
	sb.WriteString(fmt.Sprintf("Canvas:    %.0f × %.0f pt\n", tree.Size.Width, tree.Size.Height))
	sb.WriteString(fmt.Sprintf("Regions:   %d\n", regions))
	sb.WriteString(fmt.Sprintf("Blocks:    %d\n", blocks))
	sb.WriteString(fmt.Sprintf("Font:      %s %.4gpt\n", tree.Style.FontFamily, tree.Style.FontSize))
	sb.WriteString(fmt.Sprintf("Accent:    %s", tree.Style.Accent))

	p.printBox("ASSEMBLED PAGE TREE", sb.String())
}

// PrintViolations outputs template lint findings.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations *templates.Violations) {
	if violations == nil || len(violations.Violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO VIOLATIONS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Template %s: %d findings:\n\n", violations.TemplateID, len(violations.Violations)))

	for i, v := range violations.Violations {
		details := v.Details
		if len(details) > 45 {
			details = details[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s [%s]\n", v.Type, v.Severity))
		sb.WriteString(fmt.Sprintf("  %s\n", details))
		if i < len(violations.Violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("TEMPLATE LINT FINDINGS", sb.String())
}
