package templates

import (
	"testing"

	"github.com/jonathan/resume-layout/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownTemplates(t *testing.T) {
	for _, id := range []string{"classic", "modern", "minimal", "professional", "photo"} {
		cfg := Get(id)
		require.NotNil(t, cfg, id)
		assert.Equal(t, id, cfg.ID)
	}
}

func TestGet_UnknownIDFallsBackToDefault(t *testing.T) {
	cfg := Get("does-not-exist")
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultTemplateID, cfg.ID)
}

func TestGet_EmptyIDFallsBackToDefault(t *testing.T) {
	cfg := Get("")
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultTemplateID, cfg.ID)
}

func TestIDs_RegistrationOrder(t *testing.T) {
	assert.Equal(t, []string{"classic", "modern", "minimal", "professional", "photo"}, IDs())
}

func TestAll_MatchesIDs(t *testing.T) {
	all := All()
	ids := IDs()
	require.Len(t, all, len(ids))
	for i, cfg := range all {
		assert.Equal(t, ids[i], cfg.ID)
	}
}

func TestCatalog_ClassicTokens(t *testing.T) {
	cfg := Get("classic")
	assert.Equal(t, LayoutSingleColumn, cfg.Layout)
	assert.Equal(t, "Georgia", cfg.Tokens.Fonts.BaseFamily)
	assert.Equal(t, "#374151", cfg.Tokens.Colors.Accent)
	assert.InDelta(t, 11.0, cfg.Tokens.Fonts.BaseSize, 0.001)
}

func TestCatalog_ModernSidebarWidths(t *testing.T) {
	cfg := Get("modern")
	require.Len(t, cfg.Regions.Structure, 2)
	assert.Equal(t, "sidebar", cfg.Regions.Structure[0].ID)
	assert.InDelta(t, 0.3, cfg.Regions.Structure[0].WidthFraction, 0.001)
	assert.InDelta(t, 0.7, cfg.Regions.Structure[1].WidthFraction, 0.001)
	assert.Equal(t, "#3B82F6", cfg.Tokens.Colors.Accent)
}

func TestCatalog_ProfessionalHasHeaderSlot(t *testing.T) {
	cfg := Get("professional")
	header := cfg.RegionsInSlot(SlotHeader)
	require.Len(t, header, 1)
	assert.Equal(t, "#111827", header[0].BackgroundColor)
	assert.Equal(t, []types.SectionKey{types.KeyHeader}, cfg.AllowedKeys("header"))
}

func TestCatalog_PhotoTemplatePlacesPhotoKey(t *testing.T) {
	assert.True(t, Get("photo").PlacesKey(types.KeyPhoto))
	assert.False(t, Get("classic").PlacesKey(types.KeyPhoto))
	assert.False(t, Get("modern").PlacesKey(types.KeyPhoto))
}

func TestBodyFlowsAsRow(t *testing.T) {
	assert.False(t, Get("classic").BodyFlowsAsRow())
	assert.False(t, Get("minimal").BodyFlowsAsRow())
	assert.True(t, Get("modern").BodyFlowsAsRow())
	assert.True(t, Get("professional").BodyFlowsAsRow())
	assert.True(t, Get("photo").BodyFlowsAsRow())
}

func TestAllowedKeys_UnknownRegionIsNil(t *testing.T) {
	assert.Nil(t, Get("classic").AllowedKeys("nope"))
}
