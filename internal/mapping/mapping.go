// Package mapping is the deterministic lookup from IR component kinds to
// Angular Material code fragments and their required imports. The table is
// populated once at process start and read-only afterward.
package mapping

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"uiforge/internal/ir"
)

// ErrUnmappedComponentKind reports an IR kind with no table entry. The
// converter's fallback guarantees it only emits mapped kinds, so hitting
// this means the converter and table are out of step.
var ErrUnmappedComponentKind = errors.New("mapping: unmapped component kind")

// Entry describes how one IR kind renders in the target framework.
type Entry struct {
	TargetTag          string            `json:"target_tag"`
	AttributeTemplates map[string]string `json:"attribute_templates,omitempty"`
	ContentTemplate    string            `json:"content_template,omitempty"`
	RequiredImports    []string          `json:"required_imports,omitempty"`
}

var table = map[string]Entry{
	ir.KindHeading: {
		TargetTag:       "h1",
		ContentTemplate: "text",
	},
	ir.KindText: {
		TargetTag:       "p",
		ContentTemplate: "text",
	},
	ir.KindInput: {
		TargetTag: "mat-form-field",
		AttributeTemplates: map[string]string{
			"appearance": "outline",
		},
		ContentTemplate: "label",
		RequiredImports: []string{"MatFormFieldModule", "MatInputModule"},
	},
	ir.KindButton: {
		TargetTag: "button",
		AttributeTemplates: map[string]string{
			"primary":   "mat-raised-button color=\"primary\"",
			"secondary": "mat-stroked-button",
		},
		ContentTemplate: "text",
		RequiredImports: []string{"MatButtonModule"},
	},
	ir.KindContainer: {
		TargetTag:       "mat-card",
		ContentTemplate: "text",
		RequiredImports: []string{"MatCardModule", "MatDividerModule"},
	},
}

// Table returns the full mapping table for prompt embedding. Callers must
// treat the result as read-only.
func Table() map[string]Entry { return table }

// MappingFor resolves one IR kind to its entry.
func MappingFor(kind string) (Entry, error) {
	entry, ok := table[kind]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnmappedComponentKind, kind)
	}
	return entry, nil
}

// RequiredImports unions the import sets of all components' entries,
// de-duplicated and sorted. Unmapped kinds contribute nothing here;
// ValidateAllMappable reports them.
func RequiredImports(components []ir.Component) []string {
	seen := map[string]bool{}
	for _, c := range components {
		entry, ok := table[c.Kind]
		if !ok {
			continue
		}
		for _, imp := range entry.RequiredImports {
			seen[imp] = true
		}
	}
	out := make([]string, 0, len(seen))
	for imp := range seen {
		out = append(out, imp)
	}
	sort.Strings(out)
	return out
}

// ValidateAllMappable aggregates every unmapped kind into one error
// naming all offending indices, rather than failing on the first.
func ValidateAllMappable(components []ir.Component) error {
	var offending []string
	for i, c := range components {
		if _, ok := table[c.Kind]; !ok {
			offending = append(offending, fmt.Sprintf("index %d: %q", i, c.Kind))
		}
	}
	if len(offending) > 0 {
		return fmt.Errorf("%w: %s", ErrUnmappedComponentKind, strings.Join(offending, "; "))
	}
	return nil
}
