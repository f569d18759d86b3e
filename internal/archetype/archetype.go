// Package archetype holds the canonical structural patterns a screen can
// follow and the static tables that resolve an application/screen type to
// one of them. All tables are populated at process start and never written
// afterward, so concurrent reads need no synchronization.
package archetype

import "uiforge/internal/schema"

// Config is the canonical record for one archetype.
type Config struct {
	CanvasType         string
	Sections           []SectionSpec
	ResponsiveBehavior string
}

// SectionSpec constrains one section of an archetype.
type SectionSpec struct {
	Name                  string
	Direction             string
	AllowedComponentKinds []string
}

// Canvas types.
const (
	CanvasDesktop = "desktop"
	CanvasMobile  = "mobile"
	CanvasTablet  = "tablet"
)

// Archetype keys.
const (
	KeySingleColumn  = "single_column"
	KeySidebarMain   = "sidebar_main"
	KeyHeroSections  = "hero_sections"
	KeyCardGrid      = "card_grid"
	KeyStackedMobile = "stacked_mobile"
)

const defaultApplicationType = "default"

// expected maps application type -> screen type -> archetype key.
var expected = map[string]map[string]string{
	"saas": {
		schema.ScreenTypeWeb:    KeySidebarMain,
		schema.ScreenTypeMobile: KeyStackedMobile,
	},
	"dashboard": {
		schema.ScreenTypeWeb:    KeySidebarMain,
		schema.ScreenTypeMobile: KeyStackedMobile,
	},
	"landing": {
		schema.ScreenTypeWeb:    KeyHeroSections,
		schema.ScreenTypeMobile: KeyStackedMobile,
	},
	"ecommerce": {
		schema.ScreenTypeWeb:    KeyCardGrid,
		schema.ScreenTypeMobile: KeyStackedMobile,
	},
	defaultApplicationType: {
		schema.ScreenTypeWeb:    KeySingleColumn,
		schema.ScreenTypeMobile: KeyStackedMobile,
	},
}

var textKinds = []string{schema.KeyHeading, schema.KeySubheading, schema.KeyParagraph}
var allKinds = []string{
	schema.KeyHeading, schema.KeySubheading, schema.KeyParagraph,
	schema.KeyTextInput, schema.KeyPrimaryButton, schema.KeySecondaryButton,
	schema.KeyCardContainer, schema.KeyImagePlaceholder, schema.KeyDivider,
}

var configs = map[string]Config{
	KeySingleColumn: {
		CanvasType: CanvasDesktop,
		Sections: []SectionSpec{
			{Name: "header", Direction: schema.DirectionHorizontal, AllowedComponentKinds: textKinds},
			{Name: "main", Direction: schema.DirectionVertical, AllowedComponentKinds: allKinds},
			{Name: "footer", Direction: schema.DirectionHorizontal, AllowedComponentKinds: textKinds},
		},
		ResponsiveBehavior: "reflow",
	},
	KeySidebarMain: {
		CanvasType: CanvasDesktop,
		Sections: []SectionSpec{
			{Name: "sidebar", Direction: schema.DirectionVertical, AllowedComponentKinds: append(append([]string{}, textKinds...), schema.KeySecondaryButton, schema.KeyDivider)},
			{Name: "main", Direction: schema.DirectionVertical, AllowedComponentKinds: allKinds},
		},
		ResponsiveBehavior: "collapse_sidebar",
	},
	KeyHeroSections: {
		CanvasType: CanvasDesktop,
		Sections: []SectionSpec{
			{Name: "hero", Direction: schema.DirectionVertical, AllowedComponentKinds: append(append([]string{}, textKinds...), schema.KeyPrimaryButton, schema.KeyImagePlaceholder)},
			{Name: "features", Direction: schema.DirectionGrid, AllowedComponentKinds: allKinds},
			{Name: "footer", Direction: schema.DirectionHorizontal, AllowedComponentKinds: textKinds},
		},
		ResponsiveBehavior: "stack",
	},
	KeyCardGrid: {
		CanvasType: CanvasDesktop,
		Sections: []SectionSpec{
			{Name: "header", Direction: schema.DirectionHorizontal, AllowedComponentKinds: textKinds},
			{Name: "grid", Direction: schema.DirectionGrid, AllowedComponentKinds: allKinds},
		},
		ResponsiveBehavior: "reflow",
	},
	KeyStackedMobile: {
		CanvasType: CanvasMobile,
		Sections: []SectionSpec{
			{Name: "main", Direction: schema.DirectionVertical, AllowedComponentKinds: allKinds},
		},
		ResponsiveBehavior: "stack",
	},
}

var canvasSizes = map[string]schema.CanvasSize{
	CanvasDesktop: {Width: 1440, Height: 1024},
	CanvasMobile:  {Width: 390, Height: 844},
	CanvasTablet:  {Width: 834, Height: 1194},
}

// ExpectedArchetype resolves an application/screen type pair to the
// canonical archetype key. Unrecognized application types use the default
// row; unrecognized screen types resolve as web.
func ExpectedArchetype(applicationType, screenType string) string {
	row, ok := expected[applicationType]
	if !ok {
		row = expected[defaultApplicationType]
	}
	if key, ok := row[screenType]; ok {
		return key
	}
	return row[schema.ScreenTypeWeb]
}

// ConfigFor looks up the canonical config for an archetype key. A missing
// key is reported truthfully; defaulting is the caller's policy.
func ConfigFor(key string) (Config, bool) {
	cfg, ok := configs[key]
	return cfg, ok
}

// CanvasSizeFor returns the canvas dimensions for a canvas type,
// defaulting to desktop for unknown types.
func CanvasSizeFor(canvasType string) schema.CanvasSize {
	if size, ok := canvasSizes[canvasType]; ok {
		return size
	}
	return canvasSizes[CanvasDesktop]
}
