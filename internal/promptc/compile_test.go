package promptc

import (
	"strings"
	"testing"

	"uiforge/internal/infer"
	"uiforge/internal/ir"
	"uiforge/internal/mapping"
	"uiforge/internal/schema"
)

func sampleIR() ir.DesignIR {
	return ir.DesignIR{
		ScreenName: "Login",
		Layout:     "vertical",
		Components: []ir.Component{
			{Kind: ir.KindHeading, Text: "Login", Level: 1},
			{Kind: ir.KindInput, Label: "Email", InputType: "text"},
			{Kind: ir.KindButton, Text: "Sign In", Variant: "primary"},
		},
		Tokens: ir.TokensFor(schema.ScreenTypeMobile),
	}
}

func TestCompile_RendersSections(t *testing.T) {
	out, err := Compile(sampleIR(), mapping.Table(), nil)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	for _, sec := range []string{"[PURPOSE]", "[SCREEN]", "[DESIGN_IR]", "[COMPONENT_MAPPINGS]", "[REQUIRED_IMPORTS]", "[CONSTRAINTS]"} {
		if !strings.Contains(out, sec) {
			t.Fatalf("missing section %s", sec)
		}
	}
	if strings.Contains(out, "[INFERRED_INPUTS]") {
		t.Fatal("inferred inputs section must be absent without inferred data")
	}
	if !strings.Contains(out, "styleUrls") {
		t.Fatal("constraints must pin the styleUrls syntax")
	}
	if strings.Contains(out, `<`) {
		t.Fatal("prompt must not HTML-escape embedded markup")
	}
}

func TestCompile_InferredInputsBlock(t *testing.T) {
	inferred := &infer.Result{
		Inputs:           []infer.Input{{Name: "title", Type: "string", DefaultValue: "Login"}},
		TemplateBindings: []infer.Binding{{Type: "text", Target: "h1", Expression: "title"}},
	}
	out, err := Compile(sampleIR(), mapping.Table(), inferred)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !strings.Contains(out, "[INFERRED_INPUTS]") || !strings.Contains(out, "MUST declare exactly") {
		t.Fatal("missing mandatory inferred-inputs block")
	}
	if !strings.Contains(out, `"title"`) {
		t.Fatal("inferred input names must appear verbatim")
	}
}

func TestCompile_ByteIdentical(t *testing.T) {
	inferred := &infer.Result{Inputs: []infer.Input{{Name: "label", Type: "string"}}}
	first, err := Compile(sampleIR(), mapping.Table(), inferred)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Compile(sampleIR(), mapping.Table(), inferred)
		if err != nil {
			t.Fatalf("compile %d: %v", i, err)
		}
		if again != first {
			t.Fatalf("prompt text differs on run %d", i)
		}
	}
}

func TestCompile_RejectsEmptyInputs(t *testing.T) {
	d := sampleIR()
	d.ScreenName = " "
	if _, err := Compile(d, mapping.Table(), nil); err == nil {
		t.Fatal("expected error for empty screen name")
	}
	if _, err := Compile(sampleIR(), nil, nil); err == nil {
		t.Fatal("expected error for empty mapping table")
	}
}

func TestLayoutPrompt_EmbedsAllowList(t *testing.T) {
	out := LayoutPrompt("a mobile login screen")
	for key := range schema.AllowedComponentKeys {
		if !strings.Contains(out, key) {
			t.Fatalf("allow-list key %s missing from layout prompt", key)
		}
	}
	if !strings.Contains(out, "a mobile login screen") {
		t.Fatal("user request missing from layout prompt")
	}
	if out != LayoutPrompt("a mobile login screen") {
		t.Fatal("layout prompt must be deterministic")
	}
}
