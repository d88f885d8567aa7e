package summarize

import (
	"os"

	"ausum/internal/config"
	"ausum/internal/logger"
	"ausum/internal/source"
	"ausum/pkg/executor"
)

// New creates the Summarizer selected by summary.backend: the default
// CLI pair with narrow fallback, or the direct Gemini API client.
func New(cfg *config.Config, exec executor.Executor, classifier *source.SignatureClassifier, log logger.Logger) Summarizer {
	if cfg.Summary.Backend == "api" {
		keys := cfg.Summary.APIKeys
		if len(keys) == 0 {
			if key := os.Getenv("GEMINI_API_KEY"); key != "" {
				keys = []string{key}
			}
		}
		return &apiSummarizer{cfg: cfg, apiKeys: keys, logger: log}
	}

	return &cliSummarizer{
		cfg:        cfg,
		executor:   exec,
		classifier: classifier,
		logger:     log,
	}
}
