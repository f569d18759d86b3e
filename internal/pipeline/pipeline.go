// Package pipeline sequences the generation stages and is the single
// boundary that converts stage failures into an aggregated result.
// Callers always receive a result object, never an error or a panic.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"

	"uiforge/internal/codegen"
	"uiforge/internal/infer"
	"uiforge/internal/ir"
	"uiforge/internal/llmclient"
	"uiforge/internal/mapping"
	"uiforge/internal/promptc"
	"uiforge/internal/schema"
)

// Pipeline holds the request-independent collaborators. Safe for
// concurrent use: all per-request state lives in the results.
type Pipeline struct {
	LLM llmclient.Client
	Log *log.Logger

	// Progress, when set, receives stage names as a run advances.
	Progress func(runID, stage string)
}

func New(llm llmclient.Client, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.Default()
	}
	return &Pipeline{LLM: llm, Log: logger}
}

// CodeRequest is one code-generation request (layout document already
// known).
type CodeRequest struct {
	RunID          string                `json:"run_id,omitempty"`
	Layout         schema.LayoutDocument `json:"layout"`
	ScreenName     string                `json:"screen_name,omitempty"`
	TestMode       bool                  `json:"test_mode,omitempty"`
	InferredInputs *infer.Result         `json:"inferred_inputs,omitempty"`
	OutputDir      string                `json:"output_dir,omitempty"`
}

// Result is the orchestrator's single output per code-generation request.
type Result struct {
	Success        bool                      `json:"success"`
	DesignIR       *ir.DesignIR              `json:"design_ir,omitempty"`
	Files          *codegen.GeneratedFileSet `json:"files,omitempty"`
	ExportManifest []codegen.ExportEntry     `json:"export_manifest,omitempty"`
	Summary        string                    `json:"summary"`
	Errors         []string                  `json:"errors,omitempty"`
}

// GenerateCode runs conversion through parsing for an already-known
// layout document. Every stage failure is accumulated; partial artifact
// sets are reported with success=false, never silently dropped.
func (p *Pipeline) GenerateCode(ctx context.Context, req CodeRequest) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res.Success = false
			res.Errors = append(res.Errors, fmt.Sprintf("pipeline panic: %v", r))
			res.Summary = summarize(res)
		}
	}()

	screenName := strings.TrimSpace(req.ScreenName)
	if screenName == "" {
		screenName = "Screen"
	}

	p.progress(req.RunID, "convert")
	d, err := ir.ToIR(req.Layout, screenName)
	if err != nil {
		res.Errors = append(res.Errors, err.Error())
		res.Summary = summarize(res)
		return res
	}
	res.DesignIR = &d

	if err := ir.ValidateIR(d); err != nil {
		res.Errors = append(res.Errors, err.Error())
		res.Summary = summarize(res)
		return res
	}
	if err := mapping.ValidateAllMappable(d.Components); err != nil {
		res.Errors = append(res.Errors, err.Error())
		res.Summary = summarize(res)
		return res
	}

	p.progress(req.RunID, "compile_prompt")
	prompt, err := promptc.Compile(d, mapping.Table(), req.InferredInputs)
	if err != nil {
		res.Errors = append(res.Errors, err.Error())
		res.Summary = summarize(res)
		return res
	}

	p.progress(req.RunID, "generate")
	raw, err := p.completion(ctx, req, d, prompt)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("model call failed: %v", err))
		res.Summary = summarize(res)
		return res
	}

	p.progress(req.RunID, "parse")
	set := codegen.Parse(raw, screenName)
	res.Files = &set
	res.Errors = append(res.Errors, set.HardErrors()...)

	outputDir := req.OutputDir
	if outputDir == "" {
		outputDir = "generated/" + strings.ToLower(screenName)
	}
	res.ExportManifest = codegen.ToExportManifest(set, outputDir)

	res.Success = len(res.Errors) == 0
	res.Summary = summarize(res)
	return res
}

// completion is the single externally-blocking operation: one awaited
// round-trip, no retry, no backoff. Test mode swaps in the deterministic
// local generator.
func (p *Pipeline) completion(ctx context.Context, req CodeRequest, d ir.DesignIR, prompt string) (string, error) {
	if req.TestMode {
		return StaticResponse(d)
	}
	if p.LLM == nil {
		return "", fmt.Errorf("no model client configured")
	}
	return p.LLM.GenerateText(ctx, prompt)
}

func (p *Pipeline) progress(runID, stage string) {
	if p.Progress != nil {
		p.Progress(runID, stage)
	}
}

func summarize(res Result) string {
	files := 0
	if res.Files != nil {
		if res.Files.TypeScript != nil {
			files++
		}
		if res.Files.Markup != nil {
			files++
		}
		if res.Files.Style != nil {
			files++
		}
	}
	if res.Success {
		return fmt.Sprintf("generated %d file(s)", files)
	}
	return fmt.Sprintf("generated %d file(s) with %d error(s)", files, len(res.Errors))
}
