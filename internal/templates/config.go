// Package templates provides the static template catalog: the declarative
// layout configuration (archetype, regions, content mapping, design tokens)
// that drives the document layout engine.
package templates

import "github.com/jonathan/resume-layout/internal/types"

// LayoutArchetype is the high-level column shape of a template.
type LayoutArchetype string

// Layout archetypes understood by the assembler.
const (
	LayoutSingleColumn LayoutArchetype = "single-column"
	LayoutSidebarLeft  LayoutArchetype = "sidebar-left"
	LayoutSidebarRight LayoutArchetype = "sidebar-right"
	LayoutTwoColumn    LayoutArchetype = "two-column"
)

// Slot is the structural page slot a region occupies. Header and footer
// regions span the full page width; body regions participate in the main
// row or column flow.
type Slot string

// Region slots.
const (
	SlotHeader Slot = "header"
	SlotBody   Slot = "body"
	SlotFooter Slot = "footer"
)

// FlowDirection controls how content stacks inside a region.
type FlowDirection string

// Flow directions.
const (
	FlowRow    FlowDirection = "row"
	FlowColumn FlowDirection = "column"
)

// Spacing is a 4-side shorthand in PDF points.
type Spacing struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// RegionDefinition is the structural definition of a single region on the
// page. It controls layout behavior only; which content renders there is
// decided by the template's ContentMap.
type RegionDefinition struct {
	ID        string        `json:"id" validate:"required"`
	Slot      Slot          `json:"slot" validate:"required,oneof=header body footer"`
	Direction FlowDirection `json:"direction" validate:"required,oneof=row column"`

	// WidthFraction sizes body regions when the archetype flows the body as
	// a row. Sibling fractions are relative weights and need not sum to 1.
	WidthFraction   float64  `json:"widthFraction,omitempty" validate:"gte=0,lte=1"`
	BackgroundColor string   `json:"backgroundColor,omitempty"`
	Padding         *Spacing `json:"padding,omitempty"`

	// Gap is the spacing between stacked section blocks inside the region.
	Gap float64 `json:"gap,omitempty" validate:"gte=0"`
}

// ContentMap maps a region id to the ordered list of section keys allowed
// to render there.
type ContentMap map[string][]types.SectionKey

// Regions bundles the structural region list with the content mapping.
type Regions struct {
	Structure []RegionDefinition `json:"structure" validate:"required,min=1,dive"`
	Content   ContentMap         `json:"content"`
}

// FontTokens are the template's typography defaults.
type FontTokens struct {
	BaseFamily string `json:"baseFamily" validate:"required"`
	// HeadingFamily falls back to BaseFamily when empty.
	HeadingFamily string  `json:"headingFamily,omitempty"`
	BaseSize      float64 `json:"baseSize" validate:"gt=0"`
	LineHeight    float64 `json:"lineHeight" validate:"gt=0"`
}

// ColorTokens are the template's color defaults.
type ColorTokens struct {
	Accent        string `json:"accent" validate:"required"`
	TextPrimary   string `json:"textPrimary" validate:"required"`
	TextSecondary string `json:"textSecondary" validate:"required"`
	Background    string `json:"background" validate:"required"`
	// Optional dedicated region backgrounds.
	SidebarBackground string `json:"sidebarBackground,omitempty"`
	HeaderBackground  string `json:"headerBackground,omitempty"`
}

// SpacingTokens are the template's structural spacing defaults. These are
// never user-overridable.
type SpacingTokens struct {
	PageMargin     Spacing `json:"pageMargin"`
	SectionSpacing float64 `json:"sectionSpacing" validate:"gte=0"`
	BlockSpacing   float64 `json:"blockSpacing" validate:"gte=0"`
}

// Tokens are the template's design tokens before document-level overrides
// are merged.
type Tokens struct {
	Fonts   FontTokens    `json:"fonts"`
	Colors  ColorTokens   `json:"colors"`
	Spacing SpacingTokens `json:"spacing"`
}

// Config is the master configuration for one template. Instances are
// registered once and treated as read-only for the process lifetime.
type Config struct {
	ID     string          `json:"id" validate:"required"`
	Label  string          `json:"label" validate:"required"`
	Layout LayoutArchetype `json:"layout" validate:"required,oneof=single-column sidebar-left sidebar-right two-column"`

	Regions Regions `json:"regions"`
	Tokens  Tokens  `json:"tokens"`
}

// RegionsInSlot returns the structural regions occupying the given slot, in
// declaration order.
func (c *Config) RegionsInSlot(slot Slot) []RegionDefinition {
	var out []RegionDefinition
	for _, r := range c.Regions.Structure {
		if r.Slot == slot {
			out = append(out, r)
		}
	}
	return out
}

// AllowedKeys returns the ordered allow-list for a region, or nil when the
// region has no content mapping (it renders nothing).
func (c *Config) AllowedKeys(regionID string) []types.SectionKey {
	return c.Regions.Content[regionID]
}

// PlacesKey reports whether any region of the template allow-lists the key.
func (c *Config) PlacesKey(key types.SectionKey) bool {
	for _, keys := range c.Regions.Content {
		for _, k := range keys {
			if k == key {
				return true
			}
		}
	}
	return false
}

// BodyFlowsAsRow reports whether the archetype lays body regions out side by
// side. Width fractions are only meaningful in that case.
func (c *Config) BodyFlowsAsRow() bool {
	return c.Layout != LayoutSingleColumn
}
