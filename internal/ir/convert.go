package ir

import (
	"errors"
	"fmt"

	"uiforge/internal/schema"
)

var (
	// ErrInvalidInput reports a layout document with no sections to convert.
	ErrInvalidInput = errors.New("ir: layout document has no sections")
	// ErrMissingField reports a structurally incomplete IR.
	ErrMissingField = errors.New("ir: missing required field")
	// ErrMissingComponentType reports an IR component without a kind tag.
	ErrMissingComponentType = errors.New("ir: component missing kind")
)

// Mobile and desktop design-token tiers.
var (
	mobileTokens  = Tokens{PrimaryColor: "#3f51b5", Spacing: 8, BorderRadius: 8, FontScale: "compact"}
	desktopTokens = Tokens{PrimaryColor: "#3f51b5", Spacing: 16, BorderRadius: 4, FontScale: "comfortable"}
)

// ToIR normalizes a layout document into the Design IR. Conversion is
// total per component: any allow-listed key maps to exactly one kind and
// anything else degrades to a placeholder text component, never an error.
func ToIR(doc schema.LayoutDocument, screenName string) (DesignIR, error) {
	if doc.Sections == nil {
		return DesignIR{}, ErrInvalidInput
	}
	out := DesignIR{
		ScreenName: screenName,
		Layout:     layoutFor(doc),
		Tokens:     TokensFor(doc.ScreenType),
		Components: []Component{},
	}
	for _, sec := range doc.Sections {
		for _, c := range sec.Components {
			out.Components = append(out.Components, convertComponent(c))
		}
	}
	return out, nil
}

func convertComponent(c schema.Component) Component {
	switch c.ComponentKey {
	case schema.KeyHeading:
		return Component{Kind: KindHeading, Text: c.Text, Level: 1}
	case schema.KeySubheading:
		return Component{Kind: KindHeading, Text: c.Text, Level: 2}
	case schema.KeyParagraph:
		return Component{Kind: KindText, Text: c.Text}
	case schema.KeyTextInput:
		return Component{Kind: KindInput, Label: c.Text, InputType: "text"}
	case schema.KeyPrimaryButton:
		return Component{Kind: KindButton, Text: c.Text, Variant: "primary"}
	case schema.KeySecondaryButton:
		return Component{Kind: KindButton, Text: c.Text, Variant: "secondary"}
	case schema.KeyCardContainer:
		return Component{Kind: KindContainer, Text: c.Text, Variant: "card"}
	case schema.KeyImagePlaceholder:
		return Component{Kind: KindContainer, Variant: "image"}
	case schema.KeyDivider:
		return Component{Kind: KindContainer, Variant: "divider"}
	default:
		// Fallback keeps the pipeline total; an unexpected key becomes
		// visible placeholder text instead of an error.
		return Component{Kind: KindText, Text: fmt.Sprintf("[unsupported component: %s]", c.ComponentKey)}
	}
}

func layoutFor(doc schema.LayoutDocument) string {
	for _, sec := range doc.Sections {
		if sec.LayoutDirection == schema.DirectionHorizontal {
			return "horizontal"
		}
	}
	return "vertical"
}

// TokensFor returns the design-token tier for a screen type. Mobile gets
// the denser tier; anything else gets desktop.
func TokensFor(screenType string) Tokens {
	if screenType == schema.ScreenTypeMobile {
		return mobileTokens
	}
	return desktopTokens
}

// ValidateIR is a structural sanity check, independent of the mapping
// table.
func ValidateIR(d DesignIR) error {
	if d.ScreenName == "" {
		return fmt.Errorf("%w: screen_name", ErrMissingField)
	}
	if d.Layout == "" {
		return fmt.Errorf("%w: layout", ErrMissingField)
	}
	if d.Components == nil {
		return fmt.Errorf("%w: components", ErrMissingField)
	}
	if d.Tokens == (Tokens{}) {
		return fmt.Errorf("%w: tokens", ErrMissingField)
	}
	for i, c := range d.Components {
		if c.Kind == "" {
			return fmt.Errorf("%w (index %d)", ErrMissingComponentType, i)
		}
	}
	return nil
}
