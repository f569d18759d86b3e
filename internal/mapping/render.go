package mapping

import (
	"fmt"
	"html"

	"uiforge/internal/ir"
)

// RenderComponent resolves one IR component into a finished markup
// fragment. One function per structural shape, no placeholder syntax: the
// component and its entry are combined directly into the final string.
func RenderComponent(c ir.Component) (string, error) {
	entry, err := MappingFor(c.Kind)
	if err != nil {
		return "", err
	}
	switch c.Kind {
	case ir.KindHeading:
		return renderHeading(c), nil
	case ir.KindText:
		return fmt.Sprintf("<p>%s</p>", html.EscapeString(c.Text)), nil
	case ir.KindInput:
		return renderInput(c, entry), nil
	case ir.KindButton:
		return renderButton(c, entry), nil
	case ir.KindContainer:
		return renderContainer(c), nil
	default:
		// Unreachable while MappingFor and the switch cover the same set.
		return "", fmt.Errorf("%w: %q", ErrUnmappedComponentKind, c.Kind)
	}
}

func renderHeading(c ir.Component) string {
	level := c.Level
	if level < 1 || level > 6 {
		level = 1
	}
	return fmt.Sprintf("<h%d>%s</h%d>", level, html.EscapeString(c.Text), level)
}

func renderInput(c ir.Component, entry Entry) string {
	inputType := c.InputType
	if inputType == "" {
		inputType = "text"
	}
	return fmt.Sprintf(
		"<%s appearance=\"%s\">\n  <mat-label>%s</mat-label>\n  <input matInput type=\"%s\">\n</%s>",
		entry.TargetTag, entry.AttributeTemplates["appearance"],
		html.EscapeString(c.Label), inputType, entry.TargetTag,
	)
}

func renderButton(c ir.Component, entry Entry) string {
	attrs, ok := entry.AttributeTemplates[c.Variant]
	if !ok {
		attrs = entry.AttributeTemplates["secondary"]
	}
	return fmt.Sprintf("<button %s>%s</button>", attrs, html.EscapeString(c.Text))
}

func renderContainer(c ir.Component) string {
	switch c.Variant {
	case "divider":
		return "<mat-divider></mat-divider>"
	case "image":
		return "<mat-card class=\"image-placeholder\"></mat-card>"
	default:
		return fmt.Sprintf("<mat-card>%s</mat-card>", html.EscapeString(c.Text))
	}
}
