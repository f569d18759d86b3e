// Package handler serves the plugin host's JSON endpoints.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"uiforge/internal/codegen"
	"uiforge/internal/gateway/repository/runstore"
	"uiforge/internal/pipeline"
)

// ArtifactStore is the slice of the S3 store the endpoints need: manifest
// upload after a run, listing and link resolution for the history panel.
type ArtifactStore interface {
	PutManifest(ctx context.Context, runID string, entries []codegen.ExportEntry) error
	List(ctx context.Context, runID string) ([]string, error)
	GetURL(ctx context.Context, runID, path string) (string, error)
}

type Handler struct {
	Pipeline  *pipeline.Pipeline
	Runs      *runstore.Store
	Artifacts ArtifactStore // nil when S3 export is disabled
	Log       *log.Logger

	hub *progressHub
}

func New(p *pipeline.Pipeline, runs *runstore.Store, artifacts ArtifactStore, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	h := &Handler{
		Pipeline:  p,
		Runs:      runs,
		Artifacts: artifacts,
		Log:       logger,
		hub:       newProgressHub(),
	}
	p.Progress = h.hub.publish
	return h
}

type layoutRequest struct {
	UserPromptText string `json:"user_prompt_text"`
}

func (h *Handler) HandleLayout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req layoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.UserPromptText) == "" {
		http.Error(w, "user_prompt_text is required", http.StatusBadRequest)
		return
	}
	res := h.Pipeline.GenerateLayout(r.Context(), req.UserPromptText)
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req pipeline.CodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if req.RunID == "" {
		req.RunID = fmt.Sprintf("run-%d", time.Now().UnixNano())
	}

	res := h.Pipeline.GenerateCode(r.Context(), req)

	h.recordRun(r.Context(), req, res)
	writeJSON(w, http.StatusOK, struct {
		RunID string `json:"run_id"`
		pipeline.Result
	}{RunID: req.RunID, Result: res})
}

// recordRun persists the run and, when configured, uploads the manifest.
// Neither failure changes the pipeline result; both are logged.
func (h *Handler) recordRun(ctx context.Context, req pipeline.CodeRequest, res pipeline.Result) {
	var fileNames []string
	for _, e := range res.ExportManifest {
		fileNames = append(fileNames, e.Path)
	}
	if err := h.Runs.Put(runstore.Run{
		ID:         req.RunID,
		ScreenName: req.ScreenName,
		Success:    res.Success,
		Errors:     res.Errors,
		FileNames:  fileNames,
	}); err != nil {
		h.Log.Printf("run store put failed (%s): %v", req.RunID, err)
	}
	if h.Artifacts != nil && len(res.ExportManifest) > 0 {
		if err := h.Artifacts.PutManifest(ctx, req.RunID, res.ExportManifest); err != nil {
			h.Log.Printf("artifact upload failed (%s): %v", req.RunID, err)
		}
	}
}

func (h *Handler) HandleListRuns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Runs []runstore.Run `json:"runs"`
	}{Runs: h.Runs.Recent(50)})
}

type runFile struct {
	Path string `json:"path"`
	URL  string `json:"url,omitempty"`
}

// HandleRunFiles serves GET /api/runs/{id}/files: the uploaded artifacts of
// one run, each with a presigned download link.
func (h *Handler) HandleRunFiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/api/runs/")
	runID := strings.TrimSuffix(rest, "/files")
	if runID == "" || runID == rest || strings.Contains(runID, "/") {
		http.NotFound(w, r)
		return
	}
	if h.Artifacts == nil {
		http.Error(w, "artifact storage is not configured", http.StatusNotFound)
		return
	}
	if _, ok := h.Runs.Get(runID); !ok {
		http.Error(w, "unknown run", http.StatusNotFound)
		return
	}

	paths, err := h.Artifacts.List(r.Context(), runID)
	if err != nil {
		h.Log.Printf("artifact list failed (%s): %v", runID, err)
		http.Error(w, "artifact listing failed", http.StatusBadGateway)
		return
	}
	files := make([]runFile, 0, len(paths))
	for _, p := range paths {
		f := runFile{Path: p}
		if url, err := h.Artifacts.GetURL(r.Context(), runID, p); err == nil {
			f.URL = url
		} else {
			h.Log.Printf("presign failed (%s/%s): %v", runID, p, err)
		}
		files = append(files, f)
	}
	writeJSON(w, http.StatusOK, struct {
		RunID string    `json:"run_id"`
		Files []runFile `json:"files"`
	}{RunID: runID, Files: files})
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
