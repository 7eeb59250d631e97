package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionUnmarshal_MissingVisibilityDefaultsToVisible(t *testing.T) {
	data := `{"id":"exp-1","type":"experience","title":"Experience","items":[{"id":"i1","title":"Engineer"}]}`

	var s Section
	err := json.Unmarshal([]byte(data), &s)
	require.NoError(t, err)

	assert.True(t, s.IsVisible)
	assert.Equal(t, "exp-1", s.ID)
	assert.Equal(t, "experience", s.Type)
	require.Len(t, s.Items, 1)
	assert.Equal(t, "Engineer", s.Items[0].Title)
}

func TestSectionUnmarshal_ExplicitlyHidden(t *testing.T) {
	data := `{"id":"exp-1","type":"experience","isVisible":false}`

	var s Section
	err := json.Unmarshal([]byte(data), &s)
	require.NoError(t, err)

	assert.False(t, s.IsVisible)
}

func TestSectionUnmarshal_ExplicitlyVisible(t *testing.T) {
	data := `{"id":"exp-1","type":"experience","isVisible":true}`

	var s Section
	err := json.Unmarshal([]byte(data), &s)
	require.NoError(t, err)

	assert.True(t, s.IsVisible)
}

func TestSectionKey_IsPseudo(t *testing.T) {
	assert.True(t, KeyHeader.IsPseudo())
	assert.True(t, KeySummary.IsPseudo())
	assert.True(t, KeyContact.IsPseudo())
	assert.True(t, KeyPhoto.IsPseudo())
	assert.False(t, SectionKey(TypeExperience).IsPseudo())
	assert.False(t, SectionKey("").IsPseudo())
}

func TestPseudoKeyOrder(t *testing.T) {
	assert.Equal(t, []SectionKey{KeyHeader, KeySummary, KeyContact, KeyPhoto}, PseudoKeyOrder())
}

func TestEnsureItemIDs_BackfillsMissingIDs(t *testing.T) {
	doc := ResumeDocument{
		Sections: []Section{
			{ID: "s1", Type: TypeExperience, IsVisible: true, Items: []SectionItem{
				{Title: "No ID"},
				{ID: "keep-me", Title: "Has ID"},
			}},
		},
		Projects:       []Project{{Title: "Side Project"}},
		Certifications: []Certification{{Name: "Cert"}},
		Languages:      []Language{{Language: "Spanish"}},
		Volunteer:      []Volunteer{{Organization: "Org"}},
		CustomSections: []CustomSection{{Title: "Custom", Items: []SectionItem{{Title: "Entry"}}}},
	}

	doc.EnsureItemIDs()

	assert.NotEmpty(t, doc.Sections[0].Items[0].ID)
	assert.Equal(t, "keep-me", doc.Sections[0].Items[1].ID)
	assert.NotEmpty(t, doc.Projects[0].ID)
	assert.NotEmpty(t, doc.Certifications[0].ID)
	assert.NotEmpty(t, doc.Languages[0].ID)
	assert.NotEmpty(t, doc.Volunteer[0].ID)
	assert.NotEmpty(t, doc.CustomSections[0].ID)
	assert.NotEmpty(t, doc.CustomSections[0].Items[0].ID)
}

func TestResumeDocumentUnmarshal_FullDocument(t *testing.T) {
	data := `{
		"id": "doc-1",
		"title": "My Resume",
		"personalInfo": {"fullName": "Jane Doe", "email": "jane@example.com"},
		"sections": [
			{"id": "s1", "type": "skills", "title": "Skills", "items": [{"id": "i1", "title": "Go"}]}
		],
		"settings": {"templateId": "modern", "themeColor": "#FF0000"}
	}`

	var doc ResumeDocument
	err := json.Unmarshal([]byte(data), &doc)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", doc.PersonalInfo.FullName)
	assert.Equal(t, "modern", doc.Settings.TemplateID)
	assert.Equal(t, "#FF0000", doc.Settings.ThemeColor)
	require.Len(t, doc.Sections, 1)
	assert.True(t, doc.Sections[0].IsVisible)
}
