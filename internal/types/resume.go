// Package types provides type definitions for resume documents and the
// materialized sections shared across the layout engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// PersonalInfo holds the identity and contact fields of a resume document.
// Any field may be empty; the engine omits empty fields from output rather
// than rendering placeholders.
type PersonalInfo struct {
	FullName       string `json:"fullName,omitempty"`
	JobTitle       string `json:"jobTitle,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	LinkedIn       string `json:"linkedin,omitempty"`
	Website        string `json:"website,omitempty"`
	Location       string `json:"location,omitempty"`
	Summary        string `json:"summary,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// Project is an entry in the document's projects collection.
type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	Role        string `json:"role,omitempty"`
	Company     string `json:"company,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Certification is an entry in the document's certifications collection.
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
	URL    string `json:"url,omitempty"`
}

// Language is an entry in the document's languages collection.
type Language struct {
	ID          string `json:"id"`
	Language    string `json:"language,omitempty"`
	Proficiency string `json:"proficiency,omitempty"`
}

// Volunteer is an entry in the document's volunteer collection.
type Volunteer struct {
	ID           string `json:"id"`
	Organization string `json:"organization,omitempty"`
	Role         string `json:"role,omitempty"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
	Description  string `json:"description,omitempty"`
}

// CustomSection is a free-form, user-titled section whose items are carried
// verbatim into the materialized output.
type CustomSection struct {
	ID    string        `json:"id"`
	Title string        `json:"title,omitempty"`
	Items []SectionItem `json:"items,omitempty"`
}

// FormattingSettings holds per-document formatting overrides applied on top
// of the template's design tokens. ThemeColor, Color and AccentColor are
// legacy aliases for the accent override; earlier document versions persisted
// different field names and all three must keep resolving.
type FormattingSettings struct {
	FontFamily  string  `json:"fontFamily,omitempty"`
	FontSize    float64 `json:"fontSize,omitempty"`
	LineHeight  float64 `json:"lineHeight,omitempty"`
	ThemeColor  string  `json:"themeColor,omitempty"`
	Color       string  `json:"color,omitempty"`
	AccentColor string  `json:"accentColor,omitempty"`
	Layout      string  `json:"layout,omitempty"`
	TemplateID  string  `json:"templateId,omitempty"`
}

// ResumeDocument is the external input owned by the host application: a
// personal-info record, the explicitly ordered section list, the typed array
// collections, free-form custom sections and per-document formatting
// overrides. Array order is meaningful; it reflects drag-reordering in the
// host editor.
type ResumeDocument struct {
	ID             string             `json:"id,omitempty"`
	Title          string             `json:"title,omitempty"`
	PersonalInfo   PersonalInfo       `json:"personalInfo"`
	Sections       []Section          `json:"sections,omitempty"`
	Projects       []Project          `json:"projects,omitempty"`
	Certifications []Certification    `json:"certifications,omitempty"`
	Languages      []Language         `json:"languages,omitempty"`
	Volunteer      []Volunteer        `json:"volunteer,omitempty"`
	CustomSections []CustomSection    `json:"customSections,omitempty"`
	Settings       FormattingSettings `json:"settings"`
}

// EnsureItemIDs backfills missing item and entry identifiers with fresh
// UUIDs. Stable ids are a caller responsibility, but documents imported from
// older exports occasionally lack them; rendering tolerates that, downstream
// consumers of the page tree should not have to.
func (d *ResumeDocument) EnsureItemIDs() {
	for si := range d.Sections {
		for ii := range d.Sections[si].Items {
			if d.Sections[si].Items[ii].ID == "" {
				d.Sections[si].Items[ii].ID = uuid.NewString()
			}
		}
	}
	for i := range d.Projects {
		if d.Projects[i].ID == "" {
			d.Projects[i].ID = uuid.NewString()
		}
	}
	for i := range d.Certifications {
		if d.Certifications[i].ID == "" {
			d.Certifications[i].ID = uuid.NewString()
		}
	}
	for i := range d.Languages {
		if d.Languages[i].ID == "" {
			d.Languages[i].ID = uuid.NewString()
		}
	}
	for i := range d.Volunteer {
		if d.Volunteer[i].ID == "" {
			d.Volunteer[i].ID = uuid.NewString()
		}
	}
	for ci := range d.CustomSections {
		if d.CustomSections[ci].ID == "" {
			d.CustomSections[ci].ID = uuid.NewString()
		}
		for ii := range d.CustomSections[ci].Items {
			if d.CustomSections[ci].Items[ii].ID == "" {
				d.CustomSections[ci].Items[ii].ID = uuid.NewString()
			}
		}
	}
}
