package pipeline

import (
	"context"
	"fmt"

	"uiforge/internal/archetype"
	"uiforge/internal/promptc"
	"uiforge/internal/schema"
	"uiforge/internal/util/jsonutil"
)

// ValidationSummary is the caller-facing validation slice of a layout
// result.
type ValidationSummary struct {
	Valid    bool     `json:"valid"`
	Warnings []string `json:"warnings,omitempty"`
	Enhanced bool     `json:"enhanced"`
}

// LayoutResult is the orchestrator's output for the layout-generation
// path.
type LayoutResult struct {
	Success    bool                           `json:"success"`
	Document   *schema.EnhancedLayoutDocument `json:"document,omitempty"`
	Components []schema.Component             `json:"components,omitempty"`
	Validation *ValidationSummary             `json:"validation,omitempty"`
	Errors     []string                       `json:"errors,omitempty"`
	// RawText carries the offending model output when decoding failed.
	RawText string `json:"raw_text,omitempty"`
}

// GenerateLayout turns a natural-language description into a validated,
// enhanced layout document. Invalid documents block enhancement; the
// orchestrator only recovers from a missing canvas size, which gets the
// archetype default.
func (p *Pipeline) GenerateLayout(ctx context.Context, userPromptText string) (res LayoutResult) {
	defer func() {
		if r := recover(); r != nil {
			res.Success = false
			res.Errors = append(res.Errors, fmt.Sprintf("pipeline panic: %v", r))
		}
	}()

	if p.LLM == nil {
		res.Errors = append(res.Errors, "no model client configured")
		return res
	}

	p.progress("", "layout_prompt")
	raw, err := p.LLM.GenerateText(ctx, promptc.LayoutPrompt(userPromptText))
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("model call failed: %v", err))
		return res
	}

	p.progress("", "decode")
	var doc schema.LayoutDocument
	if err := jsonutil.UnmarshalLoose([]byte(raw), &doc); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("layout JSON invalid: %v", err))
		res.RawText = raw
		return res
	}

	p.progress("", "validate")
	vr := schema.Validate(&doc)
	if !vr.Valid {
		res.Errors = append(res.Errors, vr.Errors...)
		return res
	}

	// Archetype check. An unknown key is an error; only the canvas size
	// is defaulted here.
	if _, ok := archetype.ConfigFor(doc.LayoutArchetype); !ok {
		expected := archetype.ExpectedArchetype(doc.ApplicationType, doc.ScreenType)
		res.Errors = append(res.Errors, fmt.Sprintf("unknown layout_archetype %q (expected %q for %s/%s)",
			doc.LayoutArchetype, expected, doc.ApplicationType, doc.ScreenType))
		return res
	}
	if doc.CanvasSize == nil || doc.CanvasSize.Width <= 0 || doc.CanvasSize.Height <= 0 {
		cfg, _ := archetype.ConfigFor(doc.LayoutArchetype)
		size := archetype.CanvasSizeFor(cfg.CanvasType)
		doc.CanvasSize = &size
	}

	p.progress("", "enhance")
	enhanced := schema.Enhance(doc)
	res.Document = &enhanced
	res.Components = doc.FlattenComponents()
	res.Validation = &ValidationSummary{Valid: true, Warnings: vr.Warnings, Enhanced: true}
	res.Success = true
	return res
}
