// Package promptc compiles the instruction document sent to the
// generative backend. Compilation is purely textual and deterministic:
// identical inputs always produce byte-identical prompts.
package promptc

import (
	"bytes"
	"fmt"
	"strings"

	"uiforge/internal/infer"
	"uiforge/internal/ir"
	"uiforge/internal/mapping"
	"uiforge/internal/util/jsonutil"
)

var generationConstraints = []string{
	"Generate an Angular 17 standalone component using Angular Material.",
	"Do not use React, Vue, JSX, or any non-Angular idiom.",
	"Use the plural styleUrls array syntax, never the singular styleUrl field.",
	"Use only the component mappings provided; do not invent other Material components.",
	"Return exactly three fenced code blocks labeled typescript, html, and css.",
	"Name the exported class after the screen name with a Component suffix.",
}

// Compile serializes the IR and mapping table, appends the fixed
// generation constraints, and, when inferred inputs are supplied, appends
// the mandatory inputs block. It never calls the backend.
func Compile(d ir.DesignIR, table map[string]mapping.Entry, inferred *infer.Result) (string, error) {
	if strings.TrimSpace(d.ScreenName) == "" {
		return "", fmt.Errorf("promptc: screen name is empty")
	}
	if len(table) == 0 {
		return "", fmt.Errorf("promptc: mapping table is empty")
	}

	irJSON, err := jsonutil.MarshalNoEscapeIndent(d, "", "  ")
	if err != nil {
		return "", fmt.Errorf("promptc: encode IR: %w", err)
	}
	// encoding/json emits map keys in sorted order, which keeps the
	// embedded table byte-stable across runs.
	tableJSON, err := jsonutil.MarshalNoEscapeIndent(table, "", "  ")
	if err != nil {
		return "", fmt.Errorf("promptc: encode mapping table: %w", err)
	}

	var buf bytes.Buffer
	writeSection(&buf, "PURPOSE", "Generate production-quality Angular component source files from the design IR below.")
	writeSection(&buf, "SCREEN", d.ScreenName)
	writeSection(&buf, "DESIGN_IR", string(irJSON))
	writeSection(&buf, "COMPONENT_MAPPINGS", string(tableJSON))
	writeSection(&buf, "REQUIRED_IMPORTS", formatList(mapping.RequiredImports(d.Components)))
	writeSection(&buf, "CONSTRAINTS", formatList(generationConstraints))
	if inferred != nil {
		block, err := inferredInputsBlock(inferred)
		if err != nil {
			return "", err
		}
		writeSection(&buf, "INFERRED_INPUTS", block)
	}
	return strings.TrimSpace(buf.String()) + "\n", nil
}

func inferredInputsBlock(inferred *infer.Result) (string, error) {
	data, err := jsonutil.MarshalNoEscapeIndent(inferred, "", "  ")
	if err != nil {
		return "", fmt.Errorf("promptc: encode inferred inputs: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString("The component MUST declare exactly these @Input() properties, with these exact names, types, and defaults, and wire the listed template bindings:\n")
	buf.Write(data)
	return buf.String(), nil
}

func writeSection(buf *bytes.Buffer, name, body string) {
	body = strings.TrimSpace(body)
	if body == "" {
		return
	}
	fmt.Fprintf(buf, "[%s]\n%s\n\n", name, body)
}

func formatList(items []string) string {
	var buf bytes.Buffer
	for _, it := range items {
		buf.WriteString("- ")
		buf.WriteString(it)
		buf.WriteString("\n")
	}
	return buf.String()
}
