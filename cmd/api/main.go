package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"uiforge/internal/gateway/config"
	"uiforge/internal/gateway/handler"
	"uiforge/internal/gateway/repository/artifact"
	"uiforge/internal/gateway/repository/runstore"
	"uiforge/internal/gateway/server"
	"uiforge/internal/llmclient"
	"uiforge/internal/pipeline"
)

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	gemini, err := llmclient.NewGeminiClient(ctx, cfg.Model)
	if err != nil {
		logger.Fatalf("init model client: %v", err)
	}
	llm := llmclient.Chain(gemini, llmclient.WithLogging(logger))
	defer llm.Close()

	runs := runstore.NewFromEnv(cfg.RunStorePath)
	defer runs.Close()

	var artifacts handler.ArtifactStore
	if cfg.Artifact.Enabled {
		s3, err := artifact.NewS3Store(artifact.S3Config{
			Endpoint:  cfg.Artifact.Endpoint,
			Region:    cfg.Artifact.Region,
			AccessKey: cfg.Artifact.AccessKey,
			SecretKey: cfg.Artifact.SecretKey,
			Bucket:    cfg.Artifact.Bucket,
			UseSSL:    cfg.Artifact.UseSSL,
		})
		if err != nil {
			logger.Printf("artifact store disabled: %v", err)
		} else {
			artifacts = s3
		}
	}

	p := pipeline.New(llm, logger)
	h := handler.New(p, runs, artifacts, logger)
	srv := server.New(cfg.Port, server.NewMux(h), logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatalf("server: %v", err)
		}
	case <-stop:
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Printf("shutdown: %v", err)
		}
	}
}
