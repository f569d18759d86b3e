package server

import (
	"net/http"

	"uiforge/internal/gateway/handler"
	"uiforge/internal/gateway/middleware"
)

func NewMux(h *handler.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/layout", h.HandleLayout)
	mux.HandleFunc("/api/generate", h.HandleGenerate)
	mux.HandleFunc("/api/runs", h.HandleListRuns)
	mux.HandleFunc("/api/runs/", h.HandleRunFiles)
	mux.HandleFunc("/api/progress/", h.HandleProgressWS)
	mux.HandleFunc("/api/health", h.HandleHealth)

	return middleware.CORS(mux)
}
