package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ausum/internal/apperr"
	"ausum/internal/config"
	"ausum/internal/logger"
	"ausum/internal/source"
	"ausum/pkg/executor"
)

type implAcquirer struct {
	cfg        *config.Config
	executor   executor.Executor
	classifier *source.SignatureClassifier
	logger     logger.Logger
}

// New creates an Acquirer that downloads remote audio with the external
// downloader and normalizes everything through the transcoder.
func New(cfg *config.Config, exec executor.Executor, classifier *source.SignatureClassifier, log logger.Logger) Acquirer {
	return &implAcquirer{
		cfg:        cfg,
		executor:   exec,
		classifier: classifier,
		logger:     log,
	}
}

// Acquire produces a 16 kHz mono single-channel WAV at wavPath.
func (a *implAcquirer) Acquire(ctx context.Context, src source.Source, wavPath string) error {
	if src.Kind == source.KindRemote {
		a.logger.Info(ctx, "Downloading and converting audio...")
		return a.downloadAndTranscode(ctx, src.Input, wavPath)
	}

	a.logger.Info(ctx, "Converting audio...")
	if _, err := os.Stat(src.Input); err != nil {
		return apperr.Wrap(apperr.SourceNotFound, err, "file not found: %s", src.Input)
	}
	return a.transcode(ctx, src.Input, wavPath)
}

func (a *implAcquirer) downloadAndTranscode(ctx context.Context, url, wavPath string) error {
	tmpDir, err := os.MkdirTemp("", "ausum-dl-*")
	if err != nil {
		return fmt.Errorf("create download workspace: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	// Fixed base name; the downloader decides the container extension.
	base := filepath.Join(tmpDir, "audio")
	res, err := a.executor.Execute(ctx, executor.Command{
		Name: a.cfg.Tools.Downloader,
		Args: []string{
			"--no-warnings",
			"--impersonate", a.cfg.Tools.Impersonate,
			"-f", "bestaudio",
			"-o", base,
			url,
		},
	})
	if err != nil {
		return fmt.Errorf("download audio: %w", err)
	}
	if res.ExitCode != 0 {
		stderr := strings.TrimSpace(res.Stderr)
		if a.classifier.UnsupportedSource(stderr) {
			return apperr.New(apperr.UnsupportedSource,
				"no video found at URL (site may require JavaScript or use an unsupported player): %s", url)
		}
		return apperr.New(apperr.AcquisitionFailed, "failed to download audio: %s", stderr)
	}

	downloaded, err := a.locateDownload(base)
	if err != nil {
		return err
	}

	return a.transcode(ctx, downloaded, wavPath)
}

// locateDownload probes for the downloaded file under the fixed base
// name: bare, with a known container extension, or by glob as a last
// resort. A successful download command with no file is its own failure
// class, distinct from the downloader failing.
func (a *implAcquirer) locateDownload(base string) (string, error) {
	if _, err := os.Stat(base); err == nil {
		return base, nil
	}

	for _, ext := range a.cfg.Audio.ProbeExtensions {
		candidate := base + ext
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	matches, err := filepath.Glob(base + ".*")
	if err == nil && len(matches) > 0 {
		return matches[0], nil
	}

	return "", apperr.New(apperr.AcquisitionIncomplete, "audio downloaded but file not found")
}

func (a *implAcquirer) transcode(ctx context.Context, inputPath, wavPath string) error {
	res, err := a.executor.Execute(ctx, executor.Command{
		Name: a.cfg.Tools.Transcoder,
		Args: []string{
			"-i", inputPath,
			"-ar", "16000",
			"-ac", "1",
			"-y", // overwrite
			wavPath,
		},
	})
	if err != nil {
		return fmt.Errorf("convert audio: %w", err)
	}
	if res.ExitCode != 0 {
		return apperr.New(apperr.TranscodeFailed, "failed to convert audio: %s", strings.TrimSpace(res.Stderr))
	}
	return nil
}
