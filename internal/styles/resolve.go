// Package styles merges template design tokens with per-document formatting
// overrides into one concrete style set for a render pass.
package styles

import (
	"github.com/jonathan/resume-layout/internal/templates"
	"github.com/jonathan/resume-layout/internal/types"
)

// Engine-level fallback defaults, applied when neither the document override
// nor the template token provides a value. Only the user-overridable fields
// carry engine defaults; structural tokens always come from the template.
const (
	DefaultFontFamily = "Helvetica"
	DefaultFontSize   = 11.0
	DefaultLineHeight = 1.5
	DefaultAccent     = "#374151"
)

// ResolvedStyleSet is the concrete style set for one render pass: template
// tokens with document overrides merged on top. It is computed fresh per
// render and never mutates the template config.
type ResolvedStyleSet struct {
	FontFamily    string  `json:"fontFamily"`
	HeadingFamily string  `json:"headingFamily"`
	FontSize      float64 `json:"fontSize"`
	LineHeight    float64 `json:"lineHeight"`

	Accent        string `json:"accent"`
	TextPrimary   string `json:"textPrimary"`
	TextSecondary string `json:"textSecondary"`
	Background    string `json:"background"`

	PageMargin     templates.Spacing `json:"pageMargin"`
	SectionSpacing float64           `json:"sectionSpacing"`
	BlockSpacing   float64           `json:"blockSpacing"`
}

// Resolve merges document-level formatting overrides over the template's
// design tokens. Precedence per field, independently: non-empty override,
// then template token, then engine default. Pure function of its inputs.
func Resolve(cfg *templates.Config, settings types.FormattingSettings) ResolvedStyleSet {
	fonts := cfg.Tokens.Fonts
	colors := cfg.Tokens.Colors
	spacing := cfg.Tokens.Spacing

	family := firstNonEmpty(settings.FontFamily, fonts.BaseFamily, DefaultFontFamily)

	size := settings.FontSize
	if size <= 0 {
		size = fonts.BaseSize
	}
	if size <= 0 {
		size = DefaultFontSize
	}

	lineHeight := settings.LineHeight
	if lineHeight <= 0 {
		lineHeight = fonts.LineHeight
	}
	if lineHeight <= 0 {
		lineHeight = DefaultLineHeight
	}

	// Legacy documents persisted the accent override under three different
	// names; resolution order matches the original settings migration.
	accent := firstNonEmpty(settings.ThemeColor, settings.Color, settings.AccentColor, colors.Accent, DefaultAccent)

	// A document font override applies to headings too; the template's
	// dedicated heading family only wins over the template base family.
	heading := firstNonEmpty(settings.FontFamily, fonts.HeadingFamily, family)

	return ResolvedStyleSet{
		FontFamily:     family,
		HeadingFamily:  heading,
		FontSize:       size,
		LineHeight:     lineHeight,
		Accent:         accent,
		TextPrimary:    colors.TextPrimary,
		TextSecondary:  colors.TextSecondary,
		Background:     colors.Background,
		PageMargin:     spacing.PageMargin,
		SectionSpacing: spacing.SectionSpacing,
		BlockSpacing:   spacing.BlockSpacing,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
