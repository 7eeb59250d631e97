// Package layout composes template regions and assembles them into the
// final page tree for one render pass.
package layout

import (
	"github.com/jonathan/resume-layout/internal/pagetree"
	"github.com/jonathan/resume-layout/internal/templates"
	"github.com/jonathan/resume-layout/internal/types"
)

// Titles for the synthesized pseudo-sections.
const (
	summaryTitle = "Professional Summary"
	contactTitle = "Contact"
)

// Photo diameters in points: small when inlined next to the name, larger
// when the template places the photo as its own block.
const (
	inlinePhotoDiameter     = 54
	standalonePhotoDiameter = 88
)

// ComposeRegion lays out one structural region: for each resolved key it
// produces zero or more content blocks, stacked in resolved-key order. A
// region yielding no blocks still carries its width fraction so sibling
// geometry is independent of content.
func ComposeRegion(region templates.RegionDefinition, keys []types.SectionKey, doc *types.ResumeDocument, materialized []types.Section, cfg *templates.Config) pagetree.Region {
	node := pagetree.Region{
		ID:            region.ID,
		Slot:          region.Slot,
		Direction:     region.Direction,
		WidthFraction: region.WidthFraction,
		Background:    region.BackgroundColor,
		Gap:           region.Gap,
		Blocks:        []pagetree.Block{},
	}
	if region.Padding != nil {
		node.Padding = *region.Padding
	}

	for _, key := range keys {
		node.Blocks = append(node.Blocks, blocksForKey(key, doc, materialized, cfg)...)
	}
	return node
}

// blocksForKey resolves one section key to its content blocks. Pseudo-keys
// synthesize from personal info and are gated on their own fields; real keys
// select every materialized section of that type (the materializer already
// dropped invisible and empty ones).
func blocksForKey(key types.SectionKey, doc *types.ResumeDocument, materialized []types.Section, cfg *templates.Config) []pagetree.Block {
	switch key {
	case types.KeyHeader:
		return headerBlocks(doc, cfg)
	case types.KeySummary:
		return summaryBlocks(doc)
	case types.KeyContact:
		return contactBlocks(doc)
	case types.KeyPhoto:
		return photoBlocks(doc)
	}

	var out []pagetree.Block
	for _, s := range materialized {
		if types.SectionKey(s.Type) != key {
			continue
		}
		block := sectionBlock(s)
		out = append(out, pagetree.Block{Kind: pagetree.KindSection, Section: &block})
	}
	return out
}

func headerBlocks(doc *types.ResumeDocument, cfg *templates.Config) []pagetree.Block {
	info := doc.PersonalInfo
	header := pagetree.HeaderBlock{
		Name:     info.FullName,
		JobTitle: info.JobTitle,
	}

	// Inline the photo next to the name only when the template does not
	// place the photo key somewhere explicitly; otherwise the dedicated
	// photo block owns it.
	if info.ProfilePicture != "" && !cfg.PlacesKey(types.KeyPhoto) {
		header.Photo = &pagetree.PhotoBlock{Source: info.ProfilePicture, Diameter: inlinePhotoDiameter}
	}

	if line := contactLine(info); len(line.Parts) > 0 {
		header.Contact = &line
	}

	return []pagetree.Block{{Kind: pagetree.KindHeader, Header: &header}}
}

func summaryBlocks(doc *types.ResumeDocument) []pagetree.Block {
	if doc.PersonalInfo.Summary == "" {
		return nil
	}
	return []pagetree.Block{{
		Kind:    pagetree.KindSummary,
		Summary: &pagetree.SummaryBlock{Title: summaryTitle, Text: doc.PersonalInfo.Summary},
	}}
}

func contactBlocks(doc *types.ResumeDocument) []pagetree.Block {
	line := contactLine(doc.PersonalInfo)
	if len(line.Parts) == 0 {
		return nil
	}
	return []pagetree.Block{{
		Kind:    pagetree.KindContact,
		Contact: &pagetree.ContactBlock{Title: contactTitle, Line: line},
	}}
}

func photoBlocks(doc *types.ResumeDocument) []pagetree.Block {
	if doc.PersonalInfo.ProfilePicture == "" {
		return nil
	}
	return []pagetree.Block{{
		Kind:  pagetree.KindPhoto,
		Photo: &pagetree.PhotoBlock{Source: doc.PersonalInfo.ProfilePicture, Diameter: standalonePhotoDiameter},
	}}
}

// contactLine collects the present contact fields in fixed order. Links
// carry a short label and an href; plain fields render as-is.
func contactLine(info types.PersonalInfo) pagetree.ContactLine {
	var parts []pagetree.ContactPart
	if info.Email != "" {
		parts = append(parts, pagetree.ContactPart{Label: info.Email})
	}
	if info.Phone != "" {
		parts = append(parts, pagetree.ContactPart{Label: info.Phone})
	}
	if info.LinkedIn != "" {
		parts = append(parts, pagetree.ContactPart{Label: "LinkedIn", Href: info.LinkedIn})
	}
	if info.Website != "" {
		parts = append(parts, pagetree.ContactPart{Label: "Website", Href: info.Website})
	}
	if info.Location != "" {
		parts = append(parts, pagetree.ContactPart{Label: info.Location})
	}
	return pagetree.ContactLine{Parts: parts}
}

// sectionBlock converts one materialized section into its render variant.
func sectionBlock(s types.Section) pagetree.SectionBlock {
	block := pagetree.SectionBlock{
		SectionID: s.ID,
		Title:     s.Title,
		Variant:   variantForType(s.Type),
	}

	switch block.Variant {
	case pagetree.VariantTags:
		block.Tags = make([]pagetree.Tag, 0, len(s.Items))
		for _, item := range s.Items {
			label := item.Title
			if item.Subtitle != "" {
				label += " (" + item.Subtitle + ")"
			}
			block.Tags = append(block.Tags, pagetree.Tag{Label: label})
		}
	case pagetree.VariantCondensed:
		block.Items = make([]pagetree.Item, 0, len(s.Items))
		for _, item := range s.Items {
			block.Items = append(block.Items, pagetree.Item{
				ID:       item.ID,
				Title:    item.Title,
				Subtitle: item.Subtitle,
				Date:     item.Date,
				Atomic:   true,
			})
		}
	default:
		block.Items = make([]pagetree.Item, 0, len(s.Items))
		for _, item := range s.Items {
			block.Items = append(block.Items, pagetree.Item{
				ID:          item.ID,
				Title:       item.Title,
				Subtitle:    item.Subtitle,
				Date:        item.Date,
				Description: item.Description,
				Atomic:      true,
			})
		}
	}
	return block
}

// variantForType is the single place mapping section types to render
// strategies. Unknown types get the detailed layout.
func variantForType(sectionType string) pagetree.SectionVariant {
	switch sectionType {
	case types.TypeSkills:
		return pagetree.VariantTags
	case types.TypeLanguages, types.TypeCertifications:
		return pagetree.VariantCondensed
	case types.TypeExperience, types.TypeEducation, types.TypeProjects, types.TypeVolunteer, types.TypeCustom:
		return pagetree.VariantDetailed
	default:
		return pagetree.VariantDetailed
	}
}
