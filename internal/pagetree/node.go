// Package pagetree defines the renderable output of the layout engine: an
// ordered tree of regions and content blocks with all style attributes
// resolved, ready for a paginating renderer to walk and draw without any
// template knowledge.
package pagetree

import (
	"github.com/jonathan/resume-layout/internal/styles"
	"github.com/jonathan/resume-layout/internal/templates"
)

// PageSize is a page canvas size in PDF points.
type PageSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// A4 is the page canvas used for every render.
var A4 = PageSize{Width: 595.28, Height: 841.89}

// Tree is the assembled layout for one page-sized canvas. Content is a
// single continuous stream; splitting it across physical pages is the
// renderer's job, guided by the Atomic flag on item blocks.
type Tree struct {
	TemplateID string                    `json:"templateId"`
	Layout     templates.LayoutArchetype `json:"layout"`
	Size       PageSize                  `json:"size"`
	Style      styles.ResolvedStyleSet   `json:"style"`

	Header []Region `json:"header,omitempty"`
	Body   *Body    `json:"body,omitempty"`
	Footer []Region `json:"footer,omitempty"`
}

// Body is the main flow of the page: a row of fraction-sized columns for
// sidebar and two-column archetypes, a full-width stack otherwise.
type Body struct {
	Direction templates.FlowDirection `json:"direction"`
	// Gutter is inserted between all but the last column when the body
	// flows as a row.
	Gutter  float64  `json:"gutter,omitempty"`
	Regions []Region `json:"regions"`
}

// Region is one laid-out structural region with its resolved content
// blocks. A region with no blocks still occupies its width so page geometry
// stays stable regardless of content.
type Region struct {
	ID            string                  `json:"id"`
	Slot          templates.Slot          `json:"slot"`
	Direction     templates.FlowDirection `json:"direction"`
	WidthFraction float64                 `json:"widthFraction,omitempty"`
	Background    string                  `json:"background,omitempty"`
	Padding       templates.Spacing       `json:"padding"`
	// Gap is the spacing between consecutive blocks.
	Gap    float64 `json:"gap,omitempty"`
	Blocks []Block `json:"blocks"`
}

// Block is one stacked content node inside a region, a tagged union over
// the closed set of variants. Exactly the field matching Kind is non-nil;
// renderers switch over Kind and can rely on exhaustiveness.
type Block struct {
	Kind    BlockKind     `json:"kind"`
	Header  *HeaderBlock  `json:"header,omitempty"`
	Summary *SummaryBlock `json:"summary,omitempty"`
	Contact *ContactBlock `json:"contact,omitempty"`
	Photo   *PhotoBlock   `json:"photo,omitempty"`
	Section *SectionBlock `json:"section,omitempty"`
}

// BlockKind discriminates the closed set of block variants.
type BlockKind string

// Block variants.
const (
	KindHeader  BlockKind = "header"
	KindSummary BlockKind = "summary"
	KindContact BlockKind = "contact"
	KindPhoto   BlockKind = "photo"
	KindSection BlockKind = "section"
)

// HeaderBlock is the synthesized name/title banner. Photo is set only when
// the template does not place the photo key explicitly in any region.
type HeaderBlock struct {
	Name     string       `json:"name,omitempty"`
	JobTitle string       `json:"jobTitle,omitempty"`
	Photo    *PhotoBlock  `json:"photo,omitempty"`
	Contact  *ContactLine `json:"contact,omitempty"`
}

// SummaryBlock is the synthesized professional-summary block.
type SummaryBlock struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// ContactPart is one present contact field. Href is set for linkable parts.
type ContactPart struct {
	Label string `json:"label"`
	Href  string `json:"href,omitempty"`
}

// ContactLine is a separator-joined row of present-only contact parts.
type ContactLine struct {
	Parts []ContactPart `json:"parts"`
}

// ContactBlock is the titled contact section rendered in sidebars.
type ContactBlock struct {
	Title string      `json:"title"`
	Line  ContactLine `json:"line"`
}

// PhotoBlock is the profile image, drawn as a circle of the given diameter.
type PhotoBlock struct {
	Source   string  `json:"source"`
	Diameter float64 `json:"diameter"`
}

// SectionVariant selects the render strategy for a section block. The
// variant is decided by an explicit switch over the section type so adding
// a type is a compile-visible change, not a stringly branch buried in a
// renderer.
type SectionVariant string

// Section render strategies.
const (
	// VariantDetailed renders full title/date header, subtitle and
	// description per item (experience-like and custom sections).
	VariantDetailed SectionVariant = "detailed"
	// VariantTags renders items as an inline chip flow (skills).
	VariantTags SectionVariant = "tags"
	// VariantCondensed renders a two-line block per item with no
	// description (languages, certifications).
	VariantCondensed SectionVariant = "condensed"
)

// Item is one rendered entry of a section block. Atomic items must not be
// split mid-block when the renderer paginates.
type Item struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	Subtitle    string `json:"subtitle,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
	Atomic      bool   `json:"atomic"`
}

// Tag is one chip of a tag-flow section.
type Tag struct {
	Label string `json:"label"`
}

// SectionBlock is a titled section with its items rendered per Variant.
// Exactly one of Items or Tags is populated, depending on the variant.
type SectionBlock struct {
	SectionID string         `json:"sectionId,omitempty"`
	Title     string         `json:"title,omitempty"`
	Variant   SectionVariant `json:"variant"`
	Items     []Item         `json:"items,omitempty"`
	Tags      []Tag          `json:"tags,omitempty"`
}

