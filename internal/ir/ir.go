// Package ir defines the framework-agnostic intermediate representation
// that bridges layout documents and generated source code.
package ir

// Component kinds the converter emits. The mapping table covers exactly
// this set.
const (
	KindHeading   = "heading"
	KindText      = "text"
	KindInput     = "input"
	KindButton    = "button"
	KindContainer = "container"
)

// DesignIR is built once from a layout document and immutable afterward.
type DesignIR struct {
	ScreenName string      `json:"screen_name"`
	Layout     string      `json:"layout"`
	Components []Component `json:"components"`
	Tokens     Tokens      `json:"tokens"`
}

// Component is a tagged variant: Kind selects which of the remaining
// fields are meaningful.
type Component struct {
	Kind string `json:"kind"`

	// heading, text
	Text  string `json:"text,omitempty"`
	Level int    `json:"level,omitempty"`

	// input
	Label     string `json:"label,omitempty"`
	InputType string `json:"input_type,omitempty"`

	// button, container
	Variant string `json:"variant,omitempty"`
}

// Tokens is the small fixed design-token record derived from screen type.
type Tokens struct {
	PrimaryColor string `json:"primary_color"`
	Spacing      int    `json:"spacing"`
	BorderRadius int    `json:"border_radius"`
	FontScale    string `json:"font_scale"`
}
