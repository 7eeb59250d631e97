// Package sections normalizes a resume document's heterogeneous content
// sources into one uniform ordered section list, and resolves the final
// section-key order for each template region.
package sections

import (
	"strings"

	"github.com/jonathan/resume-layout/internal/types"
)

// Titles assigned to sections derived from the typed array collections.
const (
	titleProjects       = "Projects"
	titleCertifications = "Certifications"
	titleLanguages      = "Languages"
	titleVolunteer      = "Volunteer Work"
	untitledProject     = "Untitled Project"
)

// Materialize normalizes every content source of the document into one
// ordered list of visible, non-empty sections:
//
//  1. the explicit section list, in host order (drag-reordering preserved),
//  2. sections derived from non-empty array collections whose type is not
//     already represented, appended in fixed order (projects,
//     certifications, languages, volunteer),
//  3. one section per custom-section entry, in user order.
//
// Sections toggled invisible and sections with no items are dropped here;
// pseudo-sections are content-gated separately at composition time. Missing
// source fields map to empty strings, never to a fault.
func Materialize(doc *types.ResumeDocument) []types.Section {
	if doc == nil {
		return nil
	}

	all := make([]types.Section, 0, len(doc.Sections)+4+len(doc.CustomSections))
	all = append(all, doc.Sections...)

	explicit := make(map[string]bool, len(doc.Sections))
	for _, s := range doc.Sections {
		explicit[s.Type] = true
	}

	if len(doc.Projects) > 0 && !explicit[types.TypeProjects] {
		all = append(all, projectsSection(doc.Projects))
	}
	if len(doc.Certifications) > 0 && !explicit[types.TypeCertifications] {
		all = append(all, certificationsSection(doc.Certifications))
	}
	if len(doc.Languages) > 0 && !explicit[types.TypeLanguages] {
		all = append(all, languagesSection(doc.Languages))
	}
	if len(doc.Volunteer) > 0 && !explicit[types.TypeVolunteer] {
		all = append(all, volunteerSection(doc.Volunteer))
	}

	for _, cs := range doc.CustomSections {
		all = append(all, types.Section{
			ID:        cs.ID,
			Type:      types.TypeCustom,
			Title:     cs.Title,
			IsVisible: true,
			Items:     cs.Items,
		})
	}

	out := make([]types.Section, 0, len(all))
	for _, s := range all {
		if !s.IsVisible || len(s.Items) == 0 {
			continue
		}
		out = append(out, s)
	}
	return out
}

func projectsSection(projects []types.Project) types.Section {
	items := make([]types.SectionItem, 0, len(projects))
	for _, p := range projects {
		title := p.Title
		if title == "" {
			title = untitledProject
		}
		subtitle := p.Role
		if subtitle == "" {
			subtitle = p.Company
		}
		items = append(items, types.SectionItem{
			ID:          p.ID,
			Title:       title,
			Subtitle:    subtitle,
			Date:        joinDates(p.StartDate, p.EndDate),
			Description: p.Description,
		})
	}
	return types.Section{ID: "projects", Type: types.TypeProjects, Title: titleProjects, IsVisible: true, Items: items}
}

func certificationsSection(certs []types.Certification) types.Section {
	items := make([]types.SectionItem, 0, len(certs))
	for _, c := range certs {
		items = append(items, types.SectionItem{
			ID:          c.ID,
			Title:       c.Name,
			Subtitle:    c.Issuer,
			Date:        c.Date,
			Description: c.URL,
		})
	}
	return types.Section{ID: "certifications", Type: types.TypeCertifications, Title: titleCertifications, IsVisible: true, Items: items}
}

func languagesSection(langs []types.Language) types.Section {
	items := make([]types.SectionItem, 0, len(langs))
	for _, l := range langs {
		items = append(items, types.SectionItem{
			ID:       l.ID,
			Title:    l.Language,
			Subtitle: l.Proficiency,
		})
	}
	return types.Section{ID: "languages", Type: types.TypeLanguages, Title: titleLanguages, IsVisible: true, Items: items}
}

func volunteerSection(entries []types.Volunteer) types.Section {
	items := make([]types.SectionItem, 0, len(entries))
	for _, v := range entries {
		items = append(items, types.SectionItem{
			ID:          v.ID,
			Title:       v.Organization,
			Subtitle:    v.Role,
			Date:        joinDates(v.StartDate, v.EndDate),
			Description: v.Description,
		})
	}
	return types.Section{ID: "volunteer", Type: types.TypeVolunteer, Title: titleVolunteer, IsVisible: true, Items: items}
}

// joinDates joins the present date parts with " - ". Dates are free-text
// labels; no parsing happens anywhere in the engine.
func joinDates(start, end string) string {
	parts := make([]string, 0, 2)
	if start != "" {
		parts = append(parts, start)
	}
	if end != "" {
		parts = append(parts, end)
	}
	return strings.Join(parts, " - ")
}
