package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-layout/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeResumeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const testResume = `{
	"title": "Jane Doe Resume",
	"personalInfo": {"fullName": "Jane Doe", "email": "jane@example.com"},
	"sections": [
		{"id": "s1", "type": "experience", "title": "Experience", "items": [{"title": "Engineer"}]}
	]
}`

func TestLoadDocument_ValidFile(t *testing.T) {
	path := writeResumeFile(t, testResume)

	doc, err := loadDocument(path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", doc.PersonalInfo.FullName)
	// Missing item ids are backfilled on load.
	assert.NotEmpty(t, doc.Sections[0].Items[0].ID)
}

func TestLoadDocument_MissingFile(t *testing.T) {
	_, err := loadDocument(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadDocument_SchemaViolation(t *testing.T) {
	path := writeResumeFile(t, `{"sections": "not-an-array"}`)

	_, err := loadDocument(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func TestRenderDocument_TreeFormat(t *testing.T) {
	doc, err := loadDocument(writeResumeFile(t, testResume))
	require.NoError(t, err)

	out, err := renderDocument(context.Background(), doc, config.Config{Template: "classic", Format: config.FormatTree})
	require.NoError(t, err)

	var tree struct {
		TemplateID string `json:"templateId"`
	}
	require.NoError(t, json.Unmarshal(out, &tree))
	assert.Equal(t, "classic", tree.TemplateID)
}

func TestRenderDocument_HTMLFormat(t *testing.T) {
	doc, err := loadDocument(writeResumeFile(t, testResume))
	require.NoError(t, err)

	out, err := renderDocument(context.Background(), doc, config.Config{Template: "modern", Format: config.FormatHTML})
	require.NoError(t, err)

	assert.Contains(t, string(out), "<!doctype html>")
	assert.Contains(t, string(out), "Jane Doe")
}

func TestRenderDocument_UnknownFormat(t *testing.T) {
	doc, err := loadDocument(writeResumeFile(t, testResume))
	require.NoError(t, err)

	_, err = renderDocument(context.Background(), doc, config.Config{Format: "docx"})
	assert.Error(t, err)
}

func TestFormatExtension(t *testing.T) {
	assert.Equal(t, ".html", formatExtension(config.FormatHTML))
	assert.Equal(t, ".pdf", formatExtension(config.FormatPDF))
	assert.Equal(t, ".tree.json", formatExtension(config.FormatTree))
	assert.Equal(t, ".tree.json", formatExtension(""))
}
