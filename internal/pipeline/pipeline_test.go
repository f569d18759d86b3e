package pipeline

import (
	"context"
	"strings"
	"testing"

	"uiforge/internal/ir"
	"uiforge/internal/schema"
)

type fakeLLM struct {
	reply string
	err   error
	calls int
}

func (f *fakeLLM) Name() string { return "fake" }
func (f *fakeLLM) Close() error { return nil }
func (f *fakeLLM) GenerateText(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.reply, f.err
}

func loginLayout() schema.LayoutDocument {
	return schema.LayoutDocument{
		ScreenType:      schema.ScreenTypeMobile,
		ApplicationType: "saas",
		LayoutArchetype: "stacked_mobile",
		CanvasSize:      &schema.CanvasSize{Width: 390, Height: 844},
		Sections: []schema.Section{{
			Name:            "form",
			LayoutDirection: schema.DirectionVertical,
			Components: []schema.Component{
				{ComponentKey: schema.KeyHeading, Text: "Login"},
				{ComponentKey: schema.KeyTextInput, Text: "Email"},
				{ComponentKey: schema.KeyPrimaryButton, Text: "Sign In"},
			},
		}},
	}
}

func TestGenerateCode_TestModeLoginEndToEnd(t *testing.T) {
	p := New(nil, nil)
	res := p.GenerateCode(context.Background(), CodeRequest{
		Layout:     loginLayout(),
		ScreenName: "Login",
		TestMode:   true,
	})
	if !res.Success {
		t.Fatalf("want success, got errors: %v", res.Errors)
	}
	if res.DesignIR == nil || len(res.DesignIR.Components) != 3 {
		t.Fatalf("unexpected IR: %+v", res.DesignIR)
	}
	kinds := []string{ir.KindHeading, ir.KindInput, ir.KindButton}
	for i, k := range kinds {
		if res.DesignIR.Components[i].Kind != k {
			t.Fatalf("IR component %d: want %s, got %s", i, k, res.DesignIR.Components[i].Kind)
		}
	}
	if res.Files == nil || res.Files.Markup == nil || res.Files.TypeScript == nil {
		t.Fatalf("missing artifacts: %+v", res.Files)
	}
	if !strings.Contains(res.Files.Markup.Content, "matInput") {
		t.Fatal("markup must contain a recognized input tag")
	}
	if !strings.Contains(res.Files.Markup.Content, "mat-raised-button") {
		t.Fatal("markup must contain a recognized button tag")
	}
	if !strings.Contains(res.Files.TypeScript.Content, "@Component") {
		t.Fatal("typescript must contain the component declaration marker")
	}
	if !strings.Contains(res.Files.TypeScript.Content, "export class LoginComponent") {
		t.Fatal("typescript must export LoginComponent")
	}
	if len(res.ExportManifest) != 3 {
		t.Fatalf("want 3 manifest entries, got %d", len(res.ExportManifest))
	}
}

func TestGenerateCode_NoSectionsFailsWithoutModelCall(t *testing.T) {
	llm := &fakeLLM{}
	p := New(llm, nil)
	res := p.GenerateCode(context.Background(), CodeRequest{Layout: schema.LayoutDocument{}, ScreenName: "X"})
	if res.Success {
		t.Fatal("want failure for empty layout")
	}
	if llm.calls != 0 {
		t.Fatal("invalid document must block the model call")
	}
}

func TestGenerateCode_PartialArtifactsReportFailure(t *testing.T) {
	llm := &fakeLLM{reply: "```typescript\nimport { Component } from '@angular/core';\n@Component({})\nexport class XComponent {}\n```\n\n```css\n:host { display: block; }\n```\n"}
	p := New(llm, nil)
	res := p.GenerateCode(context.Background(), CodeRequest{Layout: loginLayout(), ScreenName: "X"})
	if res.Success {
		t.Fatal("partial file set must not be success")
	}
	found := false
	for _, e := range res.Errors {
		if e == "No html code block found" {
			found = true
		}
	}
	if !found {
		t.Fatalf("want missing-html error, got %v", res.Errors)
	}
	if res.Files == nil || res.Files.TypeScript == nil || res.Files.Style == nil {
		t.Fatal("extracted artifacts must still be reported")
	}
	if len(res.ExportManifest) != 2 {
		t.Fatalf("manifest must include only present artifacts, got %d", len(res.ExportManifest))
	}
}

func TestGenerateLayout_Success(t *testing.T) {
	reply := `{"screen_type":"mobile","application_type":"saas","layout_archetype":"stacked_mobile","sections":[{"name":"form","layout_direction":"vertical","components":[{"component_key":"heading","text":"Login"},{"component_key":"text_input","text":"Email"},{"component_key":"text_input","text":"Password"}]}]}`
	p := New(&fakeLLM{reply: reply}, nil)
	res := p.GenerateLayout(context.Background(), "a mobile login screen")
	if !res.Success {
		t.Fatalf("want success, got errors: %v", res.Errors)
	}
	if res.Document == nil || res.Document.LayoutMetadata.PrimaryUserFlow != schema.FlowInput {
		t.Fatalf("unexpected document: %+v", res.Document)
	}
	if res.Document.CanvasSize == nil || res.Document.CanvasSize.Width != 390 {
		t.Fatalf("canvas size must default from the archetype, got %+v", res.Document.CanvasSize)
	}
	if len(res.Components) != 3 {
		t.Fatalf("want 3 flattened components, got %d", len(res.Components))
	}
	if res.Validation == nil || !res.Validation.Enhanced {
		t.Fatalf("validation summary must flag enhancement: %+v", res.Validation)
	}
}

func TestGenerateLayout_FencedReplyStillDecodes(t *testing.T) {
	reply := "```json\n{\"screen_type\":\"web\",\"application_type\":\"landing\",\"layout_archetype\":\"hero_sections\",\"sections\":[{\"name\":\"hero\",\"layout_direction\":\"vertical\",\"components\":[{\"component_key\":\"heading\",\"text\":\"Welcome\"}]}]}\n```"
	p := New(&fakeLLM{reply: reply}, nil)
	res := p.GenerateLayout(context.Background(), "landing page")
	if !res.Success {
		t.Fatalf("fenced reply must decode, got errors: %v", res.Errors)
	}
}

func TestGenerateLayout_InvalidJSONCarriesRawText(t *testing.T) {
	p := New(&fakeLLM{reply: "sorry, I cannot do that"}, nil)
	res := p.GenerateLayout(context.Background(), "anything")
	if res.Success {
		t.Fatal("want failure")
	}
	if res.RawText == "" {
		t.Fatal("offending raw text must be carried on parse failure")
	}
}

func TestGenerateLayout_ValidationErrorsItemized(t *testing.T) {
	reply := `{"screen_type":"mobile","application_type":"saas","layout_archetype":"stacked_mobile","sections":[{"name":"form","components":[{"component_key":"spinner"}]}]}`
	p := New(&fakeLLM{reply: reply}, nil)
	res := p.GenerateLayout(context.Background(), "spinner screen")
	if res.Success {
		t.Fatal("want failure")
	}
	found := false
	for _, e := range res.Errors {
		if strings.Contains(e, "spinner") {
			found = true
		}
	}
	if !found {
		t.Fatalf("want itemized allow-list error, got %v", res.Errors)
	}
	if res.Document != nil {
		t.Fatal("invalid document must never be enhanced")
	}
}

func TestGenerateLayout_UnknownArchetypeIsError(t *testing.T) {
	reply := `{"screen_type":"web","application_type":"saas","layout_archetype":"mosaic","sections":[{"name":"main","components":[]}]}`
	p := New(&fakeLLM{reply: reply}, nil)
	res := p.GenerateLayout(context.Background(), "x")
	if res.Success {
		t.Fatal("unknown archetype must fail")
	}
	found := false
	for _, e := range res.Errors {
		if strings.Contains(e, "mosaic") && strings.Contains(e, "sidebar_main") {
			found = true
		}
	}
	if !found {
		t.Fatalf("error must name the offending and expected archetypes, got %v", res.Errors)
	}
}

func TestGenerateCode_ProgressEvents(t *testing.T) {
	p := New(nil, nil)
	var stages []string
	p.Progress = func(_, stage string) { stages = append(stages, stage) }
	_ = p.GenerateCode(context.Background(), CodeRequest{Layout: loginLayout(), ScreenName: "Login", TestMode: true})
	want := []string{"convert", "compile_prompt", "generate", "parse"}
	if len(stages) != len(want) {
		t.Fatalf("want stages %v, got %v", want, stages)
	}
	for i := range want {
		if stages[i] != want[i] {
			t.Fatalf("stage %d: want %s, got %s", i, want[i], stages[i])
		}
	}
}

func TestComponentClassName(t *testing.T) {
	cases := map[string]string{
		"login":           "LoginComponent",
		"login screen":    "LoginScreenComponent",
		"übersicht seite": "ÜbersichtSeiteComponent",
		"":                "ScreenComponent",
	}
	for in, want := range cases {
		if got := componentClassName(in); got != want {
			t.Fatalf("componentClassName(%q): want %s, got %s", in, want, got)
		}
	}
}
