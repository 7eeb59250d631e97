package layout

import (
	"testing"

	"github.com/jonathan/resume-layout/internal/pagetree"
	"github.com/jonathan/resume-layout/internal/templates"
	"github.com/jonathan/resume-layout/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docWithInfo(info types.PersonalInfo) *types.ResumeDocument {
	return &types.ResumeDocument{PersonalInfo: info}
}

func TestHeaderBlocks_InlinePhotoWhenTemplateDoesNotPlaceIt(t *testing.T) {
	doc := docWithInfo(types.PersonalInfo{
		FullName:       "Jane Doe",
		JobTitle:       "Engineer",
		ProfilePicture: "data:image/png;base64,abc",
	})

	blocks := blocksForKey(types.KeyHeader, doc, nil, templates.Get("classic"))
	require.Len(t, blocks, 1)
	require.Equal(t, pagetree.KindHeader, blocks[0].Kind)

	header := blocks[0].Header
	require.NotNil(t, header)
	assert.Equal(t, "Jane Doe", header.Name)
	require.NotNil(t, header.Photo)
	assert.InDelta(t, float64(inlinePhotoDiameter), header.Photo.Diameter, 0.001)
}

func TestHeaderBlocks_NoInlinePhotoWhenTemplatePlacesPhotoKey(t *testing.T) {
	doc := docWithInfo(types.PersonalInfo{
		FullName:       "Jane Doe",
		ProfilePicture: "data:image/png;base64,abc",
	})

	blocks := blocksForKey(types.KeyHeader, doc, nil, templates.Get("photo"))
	require.Len(t, blocks, 1)
	assert.Nil(t, blocks[0].Header.Photo)
}

func TestHeaderBlocks_AlwaysEmittedEvenWhenEmpty(t *testing.T) {
	blocks := blocksForKey(types.KeyHeader, &types.ResumeDocument{}, nil, templates.Get("classic"))
	require.Len(t, blocks, 1)
	assert.Equal(t, pagetree.KindHeader, blocks[0].Kind)
	assert.Nil(t, blocks[0].Header.Contact)
}

func TestSummaryBlocks_GatedOnContent(t *testing.T) {
	empty := blocksForKey(types.KeySummary, &types.ResumeDocument{}, nil, templates.Get("classic"))
	assert.Empty(t, empty)

	doc := docWithInfo(types.PersonalInfo{Summary: "Ten years of Go."})
	blocks := blocksForKey(types.KeySummary, doc, nil, templates.Get("classic"))
	require.Len(t, blocks, 1)
	assert.Equal(t, pagetree.KindSummary, blocks[0].Kind)
	assert.Equal(t, "Professional Summary", blocks[0].Summary.Title)
	assert.Equal(t, "Ten years of Go.", blocks[0].Summary.Text)
}

func TestContactBlocks_GatedOnContent(t *testing.T) {
	empty := blocksForKey(types.KeyContact, &types.ResumeDocument{}, nil, templates.Get("modern"))
	assert.Empty(t, empty)

	doc := docWithInfo(types.PersonalInfo{Email: "jane@example.com"})
	blocks := blocksForKey(types.KeyContact, doc, nil, templates.Get("modern"))
	require.Len(t, blocks, 1)
	assert.Equal(t, "Contact", blocks[0].Contact.Title)
}

func TestPhotoBlocks_GatedOnContent(t *testing.T) {
	empty := blocksForKey(types.KeyPhoto, &types.ResumeDocument{}, nil, templates.Get("photo"))
	assert.Empty(t, empty)

	doc := docWithInfo(types.PersonalInfo{ProfilePicture: "photo.png"})
	blocks := blocksForKey(types.KeyPhoto, doc, nil, templates.Get("photo"))
	require.Len(t, blocks, 1)
	assert.InDelta(t, float64(standalonePhotoDiameter), blocks[0].Photo.Diameter, 0.001)
}

func TestContactLine_FixedOrderAndLinks(t *testing.T) {
	line := contactLine(types.PersonalInfo{
		Location: "Berlin",
		Website:  "https://jane.dev",
		LinkedIn: "https://linkedin.com/in/jane",
		Phone:    "+49 123",
		Email:    "jane@example.com",
	})

	require.Len(t, line.Parts, 5)
	assert.Equal(t, "jane@example.com", line.Parts[0].Label)
	assert.Equal(t, "+49 123", line.Parts[1].Label)
	assert.Equal(t, "LinkedIn", line.Parts[2].Label)
	assert.Equal(t, "https://linkedin.com/in/jane", line.Parts[2].Href)
	assert.Equal(t, "Website", line.Parts[3].Label)
	assert.Equal(t, "https://jane.dev", line.Parts[3].Href)
	assert.Equal(t, "Berlin", line.Parts[4].Label)
}

func TestSectionBlock_SkillsRenderAsTags(t *testing.T) {
	s := types.Section{
		ID: "s1", Type: types.TypeSkills, Title: "Skills", IsVisible: true,
		Items: []types.SectionItem{
			{ID: "i1", Title: "Go"},
			{ID: "i2", Title: "Kubernetes", Subtitle: "Expert"},
		},
	}

	block := sectionBlock(s)
	assert.Equal(t, pagetree.VariantTags, block.Variant)
	require.Len(t, block.Tags, 2)
	assert.Equal(t, "Go", block.Tags[0].Label)
	assert.Equal(t, "Kubernetes (Expert)", block.Tags[1].Label)
	assert.Empty(t, block.Items)
}

func TestSectionBlock_LanguagesRenderCondensed(t *testing.T) {
	s := types.Section{
		ID: "s1", Type: types.TypeLanguages, Title: "Languages", IsVisible: true,
		Items: []types.SectionItem{
			{ID: "i1", Title: "French", Subtitle: "B2", Description: "should be dropped"},
		},
	}

	block := sectionBlock(s)
	assert.Equal(t, pagetree.VariantCondensed, block.Variant)
	require.Len(t, block.Items, 1)
	assert.Empty(t, block.Items[0].Description)
	assert.True(t, block.Items[0].Atomic)
}

func TestSectionBlock_ExperienceRendersDetailed(t *testing.T) {
	s := types.Section{
		ID: "s1", Type: types.TypeExperience, Title: "Experience", IsVisible: true,
		Items: []types.SectionItem{
			{ID: "i1", Title: "Engineer", Subtitle: "Acme", Date: "2020 - 2022", Description: "Built things."},
		},
	}

	block := sectionBlock(s)
	assert.Equal(t, pagetree.VariantDetailed, block.Variant)
	require.Len(t, block.Items, 1)
	assert.Equal(t, "Built things.", block.Items[0].Description)
	assert.True(t, block.Items[0].Atomic)
}

func TestVariantForType_UnknownTypeDefaultsToDetailed(t *testing.T) {
	assert.Equal(t, pagetree.VariantDetailed, variantForType("awards"))
	assert.Equal(t, pagetree.VariantDetailed, variantForType(types.TypeCustom))
	assert.Equal(t, pagetree.VariantTags, variantForType(types.TypeSkills))
	assert.Equal(t, pagetree.VariantCondensed, variantForType(types.TypeCertifications))
}

func TestComposeRegion_EmptyRegionKeepsGeometry(t *testing.T) {
	region := templates.RegionDefinition{
		ID: "sidebar", Slot: templates.SlotBody, Direction: templates.FlowColumn, WidthFraction: 0.3,
	}

	node := ComposeRegion(region, nil, &types.ResumeDocument{}, nil, templates.Get("modern"))

	assert.Equal(t, "sidebar", node.ID)
	assert.InDelta(t, 0.3, node.WidthFraction, 0.001)
	assert.Empty(t, node.Blocks)
	assert.NotNil(t, node.Blocks)
}

func TestBlocksForKey_SelectsEveryMatchingSection(t *testing.T) {
	materialized := []types.Section{
		{ID: "c1", Type: types.TypeCustom, Title: "Awards", IsVisible: true, Items: []types.SectionItem{{ID: "1", Title: "A"}}},
		{ID: "e1", Type: types.TypeExperience, Title: "Experience", IsVisible: true, Items: []types.SectionItem{{ID: "2", Title: "B"}}},
		{ID: "c2", Type: types.TypeCustom, Title: "Publications", IsVisible: true, Items: []types.SectionItem{{ID: "3", Title: "C"}}},
	}

	blocks := blocksForKey(types.SectionKey(types.TypeCustom), &types.ResumeDocument{}, materialized, templates.Get("classic"))

	require.Len(t, blocks, 2)
	assert.Equal(t, "Awards", blocks[0].Section.Title)
	assert.Equal(t, "Publications", blocks[1].Section.Title)
}
