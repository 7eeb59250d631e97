package layout

import (
	"github.com/jonathan/resume-layout/internal/pagetree"
	"github.com/jonathan/resume-layout/internal/sections"
	"github.com/jonathan/resume-layout/internal/styles"
	"github.com/jonathan/resume-layout/internal/templates"
	"github.com/jonathan/resume-layout/internal/types"
)

// bodyGutter is the fixed spacing between body columns, in points.
const bodyGutter = 12

// Assemble combines the template's regions into the final page tree for one
// A4 canvas. Header and footer regions stack full width in declaration
// order; body regions flow per the archetype. The tree is one continuous
// content stream; pagination is the renderer's responsibility.
func Assemble(cfg *templates.Config, resolved styles.ResolvedStyleSet, doc *types.ResumeDocument, materialized []types.Section) *pagetree.Tree {
	tree := &pagetree.Tree{
		TemplateID: cfg.ID,
		Layout:     cfg.Layout,
		Size:       pagetree.A4,
		Style:      resolved,
	}

	compose := func(region templates.RegionDefinition) pagetree.Region {
		keys := sections.OrderForRegion(cfg, region.ID, materialized)
		return ComposeRegion(region, keys, doc, materialized, cfg)
	}

	for _, region := range cfg.RegionsInSlot(templates.SlotHeader) {
		tree.Header = append(tree.Header, compose(region))
	}

	bodyRegions := cfg.RegionsInSlot(templates.SlotBody)
	if len(bodyRegions) > 0 {
		body := &pagetree.Body{Direction: templates.FlowColumn}
		if cfg.BodyFlowsAsRow() {
			body.Direction = templates.FlowRow
			body.Gutter = bodyGutter
		}
		for _, region := range bodyRegions {
			body.Regions = append(body.Regions, compose(region))
		}
		tree.Body = body
	}

	for _, region := range cfg.RegionsInSlot(templates.SlotFooter) {
		tree.Footer = append(tree.Footer, compose(region))
	}

	return tree
}

// Render is the full engine pipeline: template lookup, token resolution,
// section materialization, per-region ordering and page assembly. It is a
// pure transformation with no shared mutable state, safe to call
// concurrently on different documents. Degraded input never faults: unknown
// template ids fall back to the default template and missing fields are
// simply omitted from output.
func Render(doc *types.ResumeDocument, templateID string) *pagetree.Tree {
	if doc == nil {
		doc = &types.ResumeDocument{}
	}
	if templateID == "" {
		templateID = doc.Settings.TemplateID
	}
	cfg := templates.Get(templateID)
	materialized := sections.Materialize(doc)
	resolved := styles.Resolve(cfg, doc.Settings)
	return Assemble(cfg, resolved, doc, materialized)
}
