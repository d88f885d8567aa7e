package pipeline

import (
	"os"

	"ausum/internal/audio"
	"ausum/internal/config"
	"ausum/internal/logger"
	"ausum/internal/prefs"
	"ausum/internal/prereq"
	"ausum/internal/source"
	"ausum/internal/summarize"
	"ausum/internal/transcribe"
)

type implPipeline struct {
	cfg         *config.Config
	checker     *prereq.Checker
	prefs       *prefs.Resolver
	resolver    source.Resolver
	acquirer    audio.Acquirer
	transcriber transcribe.Transcriber
	summarizer  summarize.Summarizer
	logger      logger.Logger

	mkdirTemp func(dir, pattern string) (string, error)
	removeAll func(path string) error
	writeFile func(name string, data []byte, perm os.FileMode) error
}

// New creates a Pipeline wired to real OS dependencies.
func New(
	cfg *config.Config,
	checker *prereq.Checker,
	prefsResolver *prefs.Resolver,
	resolver source.Resolver,
	acquirer audio.Acquirer,
	transcriber transcribe.Transcriber,
	summarizer summarize.Summarizer,
	log logger.Logger,
) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		checker:     checker,
		prefs:       prefsResolver,
		resolver:    resolver,
		acquirer:    acquirer,
		transcriber: transcriber,
		summarizer:  summarizer,
		logger:      log,
		mkdirTemp:   os.MkdirTemp,
		removeAll:   os.RemoveAll,
		writeFile:   os.WriteFile,
	}
}

// NewForTests creates a Pipeline with injectable filesystem hooks.
func NewForTests(
	cfg *config.Config,
	checker *prereq.Checker,
	prefsResolver *prefs.Resolver,
	resolver source.Resolver,
	acquirer audio.Acquirer,
	transcriber transcribe.Transcriber,
	summarizer summarize.Summarizer,
	log logger.Logger,
	mkdirTemp func(dir, pattern string) (string, error),
	removeAll func(path string) error,
	writeFile func(name string, data []byte, perm os.FileMode) error,
) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		checker:     checker,
		prefs:       prefsResolver,
		resolver:    resolver,
		acquirer:    acquirer,
		transcriber: transcriber,
		summarizer:  summarizer,
		logger:      log,
		mkdirTemp:   mkdirTemp,
		removeAll:   removeAll,
		writeFile:   writeFile,
	}
}
