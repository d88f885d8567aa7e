package source

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"ausum/internal/apperr"
	"ausum/internal/config"
	"ausum/internal/logger"
	"ausum/pkg/executor"
)

type implResolver struct {
	cfg        *config.Config
	executor   executor.Executor
	classifier *SignatureClassifier
	logger     logger.Logger
}

// NewResolver creates a Resolver that asks the external downloader for
// remote titles and derives local titles from the file name.
func NewResolver(cfg *config.Config, exec executor.Executor, classifier *SignatureClassifier, log logger.Logger) Resolver {
	return &implResolver{
		cfg:        cfg,
		executor:   exec,
		classifier: classifier,
		logger:     log,
	}
}

// Title resolves the sanitized title used to name output artifacts.
func (r *implResolver) Title(ctx context.Context, src Source) (string, error) {
	if src.Kind == KindLocal {
		base := filepath.Base(src.Input)
		return SanitizeFilename(strings.TrimSuffix(base, filepath.Ext(base))), nil
	}

	r.logger.Info(ctx, "Getting video title...")

	res, err := r.executor.Execute(ctx, executor.Command{
		Name: r.cfg.Tools.Downloader,
		Args: []string{
			"--no-warnings",
			"--impersonate", r.cfg.Tools.Impersonate,
			"--print", "%(title)s",
			src.Input,
		},
	})
	if err != nil {
		return "", fmt.Errorf("get video title: %w", err)
	}
	if res.ExitCode != 0 {
		stderr := strings.TrimSpace(res.Stderr)
		if r.classifier.UnsupportedSource(stderr) {
			return "", apperr.New(apperr.UnsupportedSource,
				"no video found at URL (site may require JavaScript or use an unsupported player): %s", src.Input)
		}
		return "", fmt.Errorf("get video title: %s", stderr)
	}

	return SanitizeFilename(strings.TrimSpace(res.Stdout)), nil
}
