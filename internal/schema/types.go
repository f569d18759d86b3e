package schema

// LayoutDocument is the structured description of a single screen as
// produced by the layout model (or supplied directly by the plugin host).
type LayoutDocument struct {
	ScreenType      string      `json:"screen_type"`
	ApplicationType string      `json:"application_type"`
	LayoutArchetype string      `json:"layout_archetype"`
	CanvasSize      *CanvasSize `json:"canvas_size,omitempty"`
	Sections        []Section   `json:"sections"`
}

type CanvasSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Section is a leaf grouping of components; sections never nest.
type Section struct {
	Name            string      `json:"name"`
	LayoutDirection string      `json:"layout_direction"`
	Components      []Component `json:"components"`
}

type Component struct {
	ComponentKey string `json:"component_key"`
	Text         string `json:"text,omitempty"`
}

// EnhancedLayoutDocument is a validated LayoutDocument plus derived
// metadata. Built once by Enhance and never mutated afterward.
type EnhancedLayoutDocument struct {
	LayoutDocument
	LayoutMetadata LayoutMetadata    `json:"layout_metadata"`
	Enhanced       []EnhancedSection `json:"enhanced_sections"`
}

type LayoutMetadata struct {
	ComplexityScore int    `json:"complexity_score"`
	PrimaryUserFlow string `json:"primary_user_flow"`
	ContentDensity  string `json:"content_density"`
}

type EnhancedSection struct {
	Name       string              `json:"name"`
	Components []EnhancedComponent `json:"components"`
}

type EnhancedComponent struct {
	Component
	ComponentRole  string `json:"component_role"`
	LayoutPriority int    `json:"layout_priority"`
}

// Screen types accepted by the pipeline.
const (
	ScreenTypeWeb    = "web"
	ScreenTypeMobile = "mobile"
)

// Layout directions accepted inside a section.
const (
	DirectionVertical   = "vertical"
	DirectionHorizontal = "horizontal"
	DirectionGrid       = "grid"
)

// Derived user flows.
const (
	FlowInput  = "input"
	FlowRead   = "read"
	FlowBrowse = "browse"
)

// Derived content densities.
const (
	DensityLow    = "low"
	DensityMedium = "medium"
	DensityHigh   = "high"
)

// Component keys the validator accepts and the converter understands.
// The enumeration is fixed; the validator rejects anything else.
const (
	KeyHeading          = "heading"
	KeySubheading       = "subheading"
	KeyParagraph        = "paragraph"
	KeyTextInput        = "text_input"
	KeyPrimaryButton    = "primary_button"
	KeySecondaryButton  = "secondary_button"
	KeyCardContainer    = "card_container"
	KeyImagePlaceholder = "image_placeholder"
	KeyDivider          = "divider"
)

// AllowedComponentKeys is the shared allow-list. Populated once at process
// start and read-only afterward; safe for concurrent reads.
var AllowedComponentKeys = map[string]bool{
	KeyHeading:          true,
	KeySubheading:       true,
	KeyParagraph:        true,
	KeyTextInput:        true,
	KeyPrimaryButton:    true,
	KeySecondaryButton:  true,
	KeyCardContainer:    true,
	KeyImagePlaceholder: true,
	KeyDivider:          true,
}

// FlattenComponents returns the document's components in section order.
func (d *LayoutDocument) FlattenComponents() []Component {
	var out []Component
	for _, sec := range d.Sections {
		out = append(out, sec.Components...)
	}
	return out
}
