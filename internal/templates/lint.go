package templates

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-layout/internal/types"
)

// Lint violation types.
const (
	ViolationSchema        = "schema"
	ViolationUnknownRegion = "unknown_region"
	ViolationDuplicateKey  = "duplicate_key"
	ViolationWidthFraction = "width_fraction"
	ViolationEmptyRegion   = "empty_region"
)

// Lint severities. The engine treats every finding as advisory; templates
// with warnings still render.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Violation is a single template-authoring finding.
type Violation struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Details  string `json:"details"`
	Region   string `json:"region,omitempty"`
	Key      string `json:"key,omitempty"`
}

// Violations is the result of linting one template config.
type Violations struct {
	TemplateID string      `json:"template_id"`
	Violations []Violation `json:"violations"`
}

// HasErrors reports whether any finding has error severity.
func (v *Violations) HasErrors() bool {
	for _, violation := range v.Violations {
		if violation.Severity == SeverityError {
			return true
		}
	}
	return false
}

var lintValidator = validator.New()

// Lint checks a template config for authoring mistakes. Structural problems
// (missing ids, bad enum values, fractions outside [0,1]) are errors;
// questionable-but-renderable configurations are warnings. Notably, the same
// section key allow-listed in more than one region is permitted at runtime,
// since repeating contact info in a header and a sidebar is a legitimate
// design; it surfaces here as a warning rather than anywhere as a runtime
// error.
func Lint(cfg *Config) *Violations {
	out := &Violations{TemplateID: cfg.ID}

	if err := lintValidator.Struct(cfg); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				out.Violations = append(out.Violations, Violation{
					Type:     ViolationSchema,
					Severity: SeverityError,
					Details:  fmt.Sprintf("%s failed %q validation", trimNamespace(fe.Namespace()), fe.Tag()),
				})
			}
		} else {
			out.Violations = append(out.Violations, Violation{
				Type:     ViolationSchema,
				Severity: SeverityError,
				Details:  err.Error(),
			})
		}
	}

	structureIDs := make(map[string]bool)
	for _, region := range cfg.Regions.Structure {
		structureIDs[region.ID] = true

		if region.WidthFraction > 0 && (region.Slot != SlotBody || !cfg.BodyFlowsAsRow()) {
			out.Violations = append(out.Violations, Violation{
				Type:     ViolationWidthFraction,
				Severity: SeverityWarning,
				Region:   region.ID,
				Details:  fmt.Sprintf("region %q declares a width fraction but only body regions of row-flowed archetypes are fraction-sized", region.ID),
			})
		}

		if len(cfg.Regions.Content[region.ID]) == 0 {
			out.Violations = append(out.Violations, Violation{
				Type:     ViolationEmptyRegion,
				Severity: SeverityWarning,
				Region:   region.ID,
				Details:  fmt.Sprintf("region %q has no content mapping and will render empty", region.ID),
			})
		}
	}

	seenKeys := make(map[types.SectionKey]string)
	for _, region := range cfg.Regions.Structure {
		for _, key := range cfg.Regions.Content[region.ID] {
			if firstRegion, seen := seenKeys[key]; seen && firstRegion != region.ID {
				out.Violations = append(out.Violations, Violation{
					Type:     ViolationDuplicateKey,
					Severity: SeverityWarning,
					Region:   region.ID,
					Key:      string(key),
					Details:  fmt.Sprintf("key %q is allow-listed in both %q and %q and will render in each", key, firstRegion, region.ID),
				})
			} else if !seen {
				seenKeys[key] = region.ID
			}
		}
	}

	for regionID := range cfg.Regions.Content {
		if !structureIDs[regionID] {
			out.Violations = append(out.Violations, Violation{
				Type:     ViolationUnknownRegion,
				Severity: SeverityWarning,
				Region:   regionID,
				Details:  fmt.Sprintf("content mapping references region %q which is not declared in the structure", regionID),
			})
		}
	}

	return out
}

// LintAll lints every registered template.
func LintAll() []*Violations {
	out := make([]*Violations, 0, len(IDs()))
	for _, cfg := range All() {
		out = append(out, Lint(cfg))
	}
	return out
}

// trimNamespace drops the root struct name from a validator namespace so
// details read "Regions.Structure[0].ID" rather than "Config.Regions...".
func trimNamespace(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
