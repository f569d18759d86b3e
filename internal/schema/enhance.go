package schema

// Enhance derives layout metadata and per-component roles from a validated
// layout document. It is pure and total: every heuristic falls back to a
// documented default instead of failing, so Enhance never returns an error.
func Enhance(doc LayoutDocument) EnhancedLayoutDocument {
	out := EnhancedLayoutDocument{LayoutDocument: doc}
	out.LayoutMetadata = LayoutMetadata{
		ComplexityScore: complexityScore(doc),
		PrimaryUserFlow: primaryUserFlow(doc),
		ContentDensity:  contentDensity(doc),
	}

	priority := 0
	for _, sec := range doc.Sections {
		es := EnhancedSection{Name: sec.Name}
		for _, c := range sec.Components {
			priority++
			es.Components = append(es.Components, EnhancedComponent{
				Component:      c,
				ComponentRole:  roleFor(c.ComponentKey),
				LayoutPriority: priority,
			})
		}
		out.Enhanced = append(out.Enhanced, es)
	}
	return out
}

// complexityScore is sections x average components per section, clipped to
// the 1..10 scale. Zero sections score the minimum.
func complexityScore(doc LayoutDocument) int {
	sections := len(doc.Sections)
	if sections == 0 {
		return 1
	}
	total := 0
	for _, sec := range doc.Sections {
		total += len(sec.Components)
	}
	avg := float64(total) / float64(sections)
	score := int(float64(sections) * avg)
	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}
	return score
}

// primaryUserFlow: two or more text inputs mark an input-driven screen;
// otherwise two or more reading components with no inputs mark a read
// screen; everything else defaults to browse.
func primaryUserFlow(doc LayoutDocument) string {
	inputs, readers := 0, 0
	for _, sec := range doc.Sections {
		for _, c := range sec.Components {
			switch c.ComponentKey {
			case KeyTextInput:
				inputs++
			case KeyHeading, KeySubheading, KeyParagraph:
				readers++
			}
		}
	}
	switch {
	case inputs >= 2:
		return FlowInput
	case inputs == 0 && readers >= 2:
		return FlowRead
	default:
		return FlowBrowse
	}
}

// contentDensity relates total component count to the canvas area.
// Unknown or missing canvas sizes fall back to medium.
func contentDensity(doc LayoutDocument) string {
	if doc.CanvasSize == nil || doc.CanvasSize.Width <= 0 || doc.CanvasSize.Height <= 0 {
		return DensityMedium
	}
	total := 0
	for _, sec := range doc.Sections {
		total += len(sec.Components)
	}
	// Components per megapixel of canvas.
	area := float64(doc.CanvasSize.Width*doc.CanvasSize.Height) / 1_000_000
	if area <= 0 {
		return DensityMedium
	}
	perArea := float64(total) / area
	switch {
	case perArea < 5:
		return DensityLow
	case perArea > 15:
		return DensityHigh
	default:
		return DensityMedium
	}
}

func roleFor(key string) string {
	switch key {
	case KeyHeading:
		return "title"
	case KeySubheading:
		return "subtitle"
	case KeyParagraph:
		return "body"
	case KeyTextInput:
		return "field"
	case KeyPrimaryButton, KeySecondaryButton:
		return "action"
	case KeyCardContainer:
		return "grouping"
	case KeyImagePlaceholder:
		return "media"
	case KeyDivider:
		return "separator"
	default:
		return "content"
	}
}
