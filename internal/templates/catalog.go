package templates

import "github.com/jonathan/resume-layout/internal/types"

// defaultPageMargin is shared by every built-in template.
var defaultPageMargin = Spacing{Top: 24, Right: 32, Bottom: 24, Left: 32}

// builtinConfigs returns the catalog of first-class templates in
// registration order. The first entry is the fallback for unknown ids.
func builtinConfigs() []*Config {
	return []*Config{
		classicConfig(),
		modernConfig(),
		minimalConfig(),
		professionalConfig(),
		photoConfig(),
	}
}

func classicConfig() *Config {
	return &Config{
		ID:     "classic",
		Label:  "Classic",
		Layout: LayoutSingleColumn,
		Regions: Regions{
			Structure: []RegionDefinition{
				{ID: "main", Slot: SlotBody, Direction: FlowColumn, Gap: 16},
			},
			Content: ContentMap{
				"main": {types.KeyHeader, types.KeySummary, types.TypeExperience, types.TypeEducation, types.TypeSkills},
			},
		},
		Tokens: Tokens{
			Fonts: FontTokens{BaseFamily: "Georgia", HeadingFamily: "Georgia-Bold", BaseSize: 11, LineHeight: 1.5},
			Colors: ColorTokens{
				Accent:        "#374151",
				TextPrimary:   "#111827",
				TextSecondary: "#4B5563",
				Background:    "#ffffff",
			},
			Spacing: SpacingTokens{PageMargin: defaultPageMargin, SectionSpacing: 16, BlockSpacing: 10},
		},
	}
}

func modernConfig() *Config {
	return &Config{
		ID:     "modern",
		Label:  "Modern Sidebar",
		Layout: LayoutSidebarLeft,
		Regions: Regions{
			Structure: []RegionDefinition{
				{
					ID:              "sidebar",
					Slot:            SlotBody,
					Direction:       FlowColumn,
					WidthFraction:   0.3,
					BackgroundColor: "#f3f4f6",
					Padding:         &Spacing{Right: 12, Left: 12},
					Gap:             12,
				},
				{
					ID:            "main",
					Slot:          SlotBody,
					Direction:     FlowColumn,
					WidthFraction: 0.7,
					Padding:       &Spacing{Left: 16},
					Gap:           16,
				},
			},
			Content: ContentMap{
				"sidebar": {types.KeyContact, types.TypeSkills, types.TypeLanguages},
				"main":    {types.KeyHeader, types.KeySummary, types.TypeExperience, types.TypeProjects},
			},
		},
		Tokens: Tokens{
			Fonts: FontTokens{BaseFamily: "Inter", HeadingFamily: "Inter", BaseSize: 11, LineHeight: 1.5},
			Colors: ColorTokens{
				Accent:            "#3B82F6",
				TextPrimary:       "#334155",
				TextSecondary:     "#64748b",
				Background:        "#ffffff",
				SidebarBackground: "#f3f4f6",
			},
			Spacing: SpacingTokens{PageMargin: defaultPageMargin, SectionSpacing: 16, BlockSpacing: 10},
		},
	}
}

func minimalConfig() *Config {
	return &Config{
		ID:     "minimal",
		Label:  "Minimal",
		Layout: LayoutSingleColumn,
		Regions: Regions{
			Structure: []RegionDefinition{
				{ID: "main", Slot: SlotBody, Direction: FlowColumn, Gap: 14},
			},
			Content: ContentMap{
				"main": {types.KeyHeader, types.KeySummary, types.TypeSkills, types.TypeExperience, types.TypeEducation},
			},
		},
		Tokens: Tokens{
			Fonts: FontTokens{BaseFamily: "Inter", HeadingFamily: "Inter", BaseSize: 10, LineHeight: 1.5},
			Colors: ColorTokens{
				Accent:        "#6B7280",
				TextPrimary:   "#374151",
				TextSecondary: "#9CA3AF",
				Background:    "#ffffff",
			},
			Spacing: SpacingTokens{PageMargin: defaultPageMargin, SectionSpacing: 14, BlockSpacing: 8},
		},
	}
}

func professionalConfig() *Config {
	return &Config{
		ID:     "professional",
		Label:  "Professional",
		Layout: LayoutTwoColumn,
		Regions: Regions{
			Structure: []RegionDefinition{
				{
					ID:              "header",
					Slot:            SlotHeader,
					Direction:       FlowColumn,
					BackgroundColor: "#111827",
					Padding:         &Spacing{Top: 16, Right: 24, Bottom: 12, Left: 24},
					Gap:             8,
				},
				{
					ID:              "sidebar",
					Slot:            SlotBody,
					Direction:       FlowColumn,
					WidthFraction:   0.4,
					BackgroundColor: "#F9FAFB",
					Padding:         &Spacing{Top: 12, Right: 12, Bottom: 12, Left: 12},
					Gap:             10,
				},
				{
					ID:            "main",
					Slot:          SlotBody,
					Direction:     FlowColumn,
					WidthFraction: 0.6,
					Padding:       &Spacing{Top: 12, Left: 16},
					Gap:           14,
				},
			},
			Content: ContentMap{
				"header":  {types.KeyHeader},
				"sidebar": {types.KeyContact, types.TypeSkills, types.TypeLanguages, types.TypeCertifications},
				"main":    {types.KeySummary, types.TypeExperience, types.TypeEducation, types.TypeProjects},
			},
		},
		Tokens: Tokens{
			Fonts: FontTokens{BaseFamily: "Inter", HeadingFamily: "Inter", BaseSize: 11, LineHeight: 1.5},
			Colors: ColorTokens{
				Accent:            "#F9FAFB",
				TextPrimary:       "#111827",
				TextSecondary:     "#6B7280",
				Background:        "#ffffff",
				HeaderBackground:  "#111827",
				SidebarBackground: "#F9FAFB",
			},
			Spacing: SpacingTokens{PageMargin: defaultPageMargin, SectionSpacing: 16, BlockSpacing: 10},
		},
	}
}

func photoConfig() *Config {
	return &Config{
		ID:     "photo",
		Label:  "Photo Sidebar",
		Layout: LayoutSidebarLeft,
		Regions: Regions{
			Structure: []RegionDefinition{
				{
					ID:              "sidebar",
					Slot:            SlotBody,
					Direction:       FlowColumn,
					WidthFraction:   0.35,
					BackgroundColor: "#EFF6FF",
					Padding:         &Spacing{Top: 12, Right: 12, Bottom: 12, Left: 12},
					Gap:             10,
				},
				{
					ID:            "main",
					Slot:          SlotBody,
					Direction:     FlowColumn,
					WidthFraction: 0.65,
					Padding:       &Spacing{Top: 12, Left: 16},
					Gap:           14,
				},
			},
			Content: ContentMap{
				// Photo always leads the sidebar.
				"sidebar": {types.KeyPhoto, types.KeyContact, types.TypeSkills, types.TypeLanguages},
				"main":    {types.KeyHeader, types.KeySummary, types.TypeExperience, types.TypeEducation, types.TypeProjects},
			},
		},
		Tokens: Tokens{
			Fonts: FontTokens{BaseFamily: "Inter", HeadingFamily: "Inter", BaseSize: 10, LineHeight: 1.5},
			Colors: ColorTokens{
				Accent:            "#2563EB",
				TextPrimary:       "#1F2937",
				TextSecondary:     "#6B7280",
				Background:        "#ffffff",
				SidebarBackground: "#EFF6FF",
			},
			Spacing: SpacingTokens{PageMargin: defaultPageMargin, SectionSpacing: 16, BlockSpacing: 9},
		},
	}
}
