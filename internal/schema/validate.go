package schema

import "fmt"

// ValidationResult reports structural errors and stylistic warnings for a
// layout document. Errors block downstream stages; warnings do not.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Validate checks a layout document against the fixed schema. It is total:
// any input, including the zero value, yields a result rather than a panic.
func Validate(doc *LayoutDocument) ValidationResult {
	var res ValidationResult
	if doc == nil {
		res.Errors = append(res.Errors, "layout document is nil")
		return res
	}

	switch doc.ScreenType {
	case ScreenTypeWeb, ScreenTypeMobile:
	case "":
		res.Errors = append(res.Errors, "missing required field: screen_type")
	default:
		res.Errors = append(res.Errors, fmt.Sprintf("unknown screen_type %q (want web or mobile)", doc.ScreenType))
	}
	if doc.ApplicationType == "" {
		res.Errors = append(res.Errors, "missing required field: application_type")
	}
	if doc.LayoutArchetype == "" {
		res.Errors = append(res.Errors, "missing required field: layout_archetype")
	}
	if doc.Sections == nil {
		res.Errors = append(res.Errors, "missing required field: sections")
	}
	if doc.CanvasSize == nil {
		res.Warnings = append(res.Warnings, "canvas_size missing; archetype default will be used")
	} else if doc.CanvasSize.Width <= 0 || doc.CanvasSize.Height <= 0 {
		res.Warnings = append(res.Warnings, "canvas_size has non-positive dimensions; archetype default will be used")
	}

	for i, sec := range doc.Sections {
		if sec.Components == nil {
			res.Errors = append(res.Errors, fmt.Sprintf("section %d (%s): components is not a list", i, sec.Name))
			continue
		}
		switch sec.LayoutDirection {
		case DirectionVertical, DirectionHorizontal, DirectionGrid, "":
		default:
			res.Warnings = append(res.Warnings, fmt.Sprintf("section %d (%s): unknown layout_direction %q", i, sec.Name, sec.LayoutDirection))
		}
		for j, c := range sec.Components {
			if !AllowedComponentKeys[c.ComponentKey] {
				res.Errors = append(res.Errors, fmt.Sprintf("section %d component %d: component_key %q is not in the allow-list", i, j, c.ComponentKey))
				continue
			}
			// Structural compatibility: keys that render no text content
			// must not declare any.
			if c.Text != "" && (c.ComponentKey == KeyDivider || c.ComponentKey == KeyImagePlaceholder) {
				res.Errors = append(res.Errors, fmt.Sprintf("section %d component %d: %s does not accept text content", i, j, c.ComponentKey))
			}
		}
	}

	res.Valid = len(res.Errors) == 0
	return res
}
