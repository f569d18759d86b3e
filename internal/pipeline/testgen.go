package pipeline

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"uiforge/internal/ir"
	"uiforge/internal/mapping"
)

// StaticResponse is the deterministic local stand-in for the generative
// backend, used in test mode. It renders a fixed-shape three-block reply
// straight from the IR via the mapping table, so pipeline tests never
// depend on the external oracle.
func StaticResponse(d ir.DesignIR) (string, error) {
	className := componentClassName(d.ScreenName)
	selector := "app-" + strings.ToLower(strings.ReplaceAll(strings.TrimSpace(d.ScreenName), " ", "-"))
	base := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(d.ScreenName), " ", "-"))

	var markup bytes.Buffer
	for _, c := range d.Components {
		fragment, err := mapping.RenderComponent(c)
		if err != nil {
			return "", err
		}
		markup.WriteString(fragment)
		markup.WriteString("\n")
	}

	imports := mapping.RequiredImports(d.Components)
	ts := fmt.Sprintf(`import { Component } from '@angular/core';

@Component({
  selector: '%s',
  standalone: true,
  imports: [%s],
  templateUrl: './%s.component.html',
  styleUrls: ['./%s.component.css'],
})
export class %s {}`, selector, strings.Join(imports, ", "), base, base, className)

	css := fmt.Sprintf(`:host {
  display: block;
  padding: %dpx;
}

.primary {
  color: %s;
}`, d.Tokens.Spacing, d.Tokens.PrimaryColor)

	var buf bytes.Buffer
	buf.WriteString("```typescript\n")
	buf.WriteString(ts)
	buf.WriteString("\n```\n\n```html\n")
	buf.WriteString(markup.String())
	buf.WriteString("```\n\n```css\n")
	buf.WriteString(css)
	buf.WriteString("\n```\n")
	return buf.String(), nil
}

// componentClassName turns "login screen" into "LoginScreenComponent".
func componentClassName(screenName string) string {
	var b strings.Builder
	for _, word := range strings.Fields(strings.TrimSpace(screenName)) {
		r, size := utf8.DecodeRuneInString(word)
		b.WriteString(strings.ToUpper(string(r)))
		b.WriteString(word[size:])
	}
	if b.Len() == 0 {
		b.WriteString("Screen")
	}
	return b.String() + "Component"
}
