//nolint:revive // types is a standard Go package name pattern
package types

import "encoding/json"

// SectionKey identifies a semantic content block a template region can
// render. Keys are either pseudo-keys synthesized from personal info
// (header, summary, contact, photo) or the Type of a materialized Section.
type SectionKey string

// Pseudo-keys derived from personal info rather than from an explicit
// section. Their relative order is fixed.
const (
	KeyHeader  SectionKey = "header"
	KeySummary SectionKey = "summary"
	KeyContact SectionKey = "contact"
	KeyPhoto   SectionKey = "photo"
)

// PseudoKeyOrder is the fixed logical ordering of pseudo-keys relative to
// each other when resolving a region's section order.
func PseudoKeyOrder() []SectionKey {
	return []SectionKey{KeyHeader, KeySummary, KeyContact, KeyPhoto}
}

// IsPseudo reports whether k is synthesized from personal info.
func (k SectionKey) IsPseudo() bool {
	switch k {
	case KeyHeader, KeySummary, KeyContact, KeyPhoto:
		return true
	default:
		return false
	}
}

// Semantic section types understood by the engine. Custom sections carry
// TypeCustom; unknown types still render with the default block layout.
const (
	TypeExperience     = "experience"
	TypeEducation      = "education"
	TypeSkills         = "skills"
	TypeProjects       = "projects"
	TypeCertifications = "certifications"
	TypeLanguages      = "languages"
	TypeVolunteer      = "volunteer"
	TypeCustom         = "custom"
)

// SectionItem is one entry inside a section. The date label is free text
// and never parsed.
type SectionItem struct {
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	Subtitle    string `json:"subtitle,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

// Section is one uniform, ordered content block of a resume document.
// Explicit sections come from the host editor; derived sections are
// projected from the typed array collections at materialization time.
type Section struct {
	ID        string        `json:"id"`
	Type      string        `json:"type"`
	Title     string        `json:"title,omitempty"`
	IsVisible bool          `json:"isVisible"`
	Items     []SectionItem `json:"items,omitempty"`
}

// sectionWire mirrors Section with a nullable visibility flag so decoding
// can distinguish "explicitly hidden" from "flag absent".
type sectionWire struct {
	ID        string        `json:"id"`
	Type      string        `json:"type"`
	Title     string        `json:"title,omitempty"`
	IsVisible *bool         `json:"isVisible"`
	Items     []SectionItem `json:"items,omitempty"`
}

// UnmarshalJSON treats a missing isVisible flag as visible. Documents saved
// before the visibility toggle existed carry no flag at all and must keep
// rendering.
func (s *Section) UnmarshalJSON(data []byte) error {
	var w sectionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	s.ID = w.ID
	s.Type = w.Type
	s.Title = w.Title
	s.Items = w.Items
	s.IsVisible = w.IsVisible == nil || *w.IsVisible
	return nil
}
