package promptc

import (
	"bytes"
	"sort"
	"strings"

	"uiforge/internal/schema"
)

const layoutInstruction = `You are a UI layout planner. From the user's description, produce a single screen layout.

Return STRICT JSON ONLY, no prose and no markdown fences, with this shape:
{
  "screen_type": "web" | "mobile",
  "application_type": "string",
  "layout_archetype": "string",
  "canvas_size": {"width": 0, "height": 0},
  "sections": [
    {
      "name": "string",
      "layout_direction": "vertical" | "horizontal" | "grid",
      "components": [{"component_key": "string", "text": "string"}]
    }
  ]
}

Rules:
- component_key must come from the allowed list below; nothing else.
- Sections never nest.
- Keep the layout minimal: only sections the description calls for.`

// LayoutPrompt builds the natural-language-to-layout instruction with the
// allow-list embedded. Deterministic for a given user prompt.
func LayoutPrompt(userPromptText string) string {
	keys := make([]string, 0, len(schema.AllowedComponentKeys))
	for k := range schema.AllowedComponentKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteString(layoutInstruction)
	buf.WriteString("\n\n[ALLOWED_COMPONENT_KEYS]\n")
	buf.WriteString(formatList(keys))
	buf.WriteString("\n[USER_REQUEST]\n")
	buf.WriteString(strings.TrimSpace(userPromptText))
	buf.WriteString("\n")
	return buf.String()
}
