package transcribe

import (
	"context"
	"fmt"
	"os"
	"strings"

	"ausum/internal/apperr"
	"ausum/internal/config"
	"ausum/internal/logger"
	"ausum/pkg/executor"
)

type implTranscriber struct {
	cfg       *config.Config
	executor  executor.Executor
	engineDir string // checkout of the speech-to-text engine, run via swift
	logger    logger.Logger
}

// New creates a Transcriber that drives the FluidAudio engine from its
// engineDir checkout.
func New(cfg *config.Config, exec executor.Executor, engineDir string, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:       cfg,
		executor:  exec,
		engineDir: engineDir,
		logger:    log,
	}
}

// Transcribe runs the engine against wavPath and returns the transcript.
func (t *implTranscriber) Transcribe(ctx context.Context, wavPath string) (string, error) {
	if !t.modelCached() {
		// The engine downloads the model itself; this is only a heads-up
		// so a long silent first run doesn't look hung.
		t.logger.Info(ctx, "Downloading Parakeet model (~600MB), this only happens once...")
	}

	t.logger.Info(ctx, "Transcribing audio...")

	res, err := t.executor.Execute(ctx, executor.Command{
		Name: t.cfg.Tools.Swift,
		Args: []string{"run", "-c", "release", "fluidaudiocli", "transcribe", wavPath},
		Dir:  t.engineDir,
	})
	if err != nil {
		return "", fmt.Errorf("transcription: %w", err)
	}
	if res.ExitCode != 0 {
		return "", apperr.New(apperr.TranscriptionFailed, "transcription failed: %s", strings.TrimSpace(res.Stderr))
	}

	transcript := strings.TrimSpace(res.Stdout)
	if transcript == "" {
		return "", apperr.New(apperr.EmptyTranscript, "transcription produced no output")
	}

	return transcript, nil
}

// modelCached checks the engine's model cache for an entry matching the
// configured model identifier.
func (t *implTranscriber) modelCached() bool {
	entries, err := os.ReadDir(t.cfg.Model.CacheDir)
	if err != nil {
		return false
	}

	id := strings.ToLower(t.cfg.Model.ID)
	for _, entry := range entries {
		if entry.IsDir() && strings.Contains(strings.ToLower(entry.Name()), id) {
			return true
		}
	}

	return false
}
