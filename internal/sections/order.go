package sections

import (
	"github.com/jonathan/resume-layout/internal/templates"
	"github.com/jonathan/resume-layout/internal/types"
)

// OrderForRegion computes the final ordered list of section keys a region
// renders, reconciling the template's allow-list with the user's actual
// section order:
//
//  1. no allow-list means the region renders nothing;
//  2. the candidate order is the fixed pseudo-key order followed by the
//     distinct section types in first-seen materialized order, so editor
//     drag-reordering carries through to output;
//  3. the candidate order is intersected with the allow-list;
//  4. allow-listed keys still missing are appended in the allow-list's own
//     declared order, so a template-declared key renders even when the user
//     never touched that section type.
//
// A key allow-listed in several regions resolves in each; cross-region
// deduplication is a template-authoring concern, surfaced by lint.
func OrderForRegion(cfg *templates.Config, regionID string, userSections []types.Section) []types.SectionKey {
	allowList := cfg.AllowedKeys(regionID)
	if len(allowList) == 0 {
		return nil
	}

	allowed := make(map[types.SectionKey]bool, len(allowList))
	for _, key := range allowList {
		allowed[key] = true
	}

	candidates := types.PseudoKeyOrder()
	seenTypes := make(map[types.SectionKey]bool, len(userSections))
	for _, s := range userSections {
		key := types.SectionKey(s.Type)
		if !seenTypes[key] {
			seenTypes[key] = true
			candidates = append(candidates, key)
		}
	}

	ordered := make([]types.SectionKey, 0, len(allowList))
	included := make(map[types.SectionKey]bool, len(allowList))
	for _, key := range candidates {
		if allowed[key] && !included[key] {
			included[key] = true
			ordered = append(ordered, key)
		}
	}

	for _, key := range allowList {
		if !included[key] {
			included[key] = true
			ordered = append(ordered, key)
		}
	}

	return ordered
}
