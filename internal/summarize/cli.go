package summarize

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"ausum/internal/apperr"
	"ausum/internal/config"
	"ausum/internal/logger"
	"ausum/internal/source"
	"ausum/pkg/executor"
)

// status tags one backend invocation outcome. The fallback decision is
// made on this tag, never by re-inspecting output at the call site.
type status int

const (
	statusSuccess status = iota
	statusRecoverable // unauthenticated or missing primary, fallback applies
	statusFatal
)

type outcome struct {
	status status
	text   string
	detail string
	err    error // underlying cause, kept so cancellation stays detectable
}

// cliSummarizer runs the primary backend and falls back to the
// secondary only on a recoverable authentication failure. Unrelated
// primary errors abort immediately so a fallback that would likely fail
// the same way cannot mask them.
type cliSummarizer struct {
	cfg        *config.Config
	executor   executor.Executor
	classifier *source.SignatureClassifier
	logger     logger.Logger
}

func (s *cliSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	prompt := buildPrompt(s.cfg.Summary.Prompt, transcript)

	out := s.invokePrimary(ctx, prompt)
	switch out.status {
	case statusSuccess:
		return out.text, nil
	case statusFatal:
		if out.err != nil {
			return "", apperr.Wrap(apperr.SummarizationFailed, out.err, "summarization failed: %s", out.detail)
		}
		return "", apperr.New(apperr.SummarizationFailed, "summarization failed: %s", out.detail)
	}

	s.logger.Warn(ctx, "%s unavailable (%s), falling back to %s...",
		s.cfg.Tools.Primary, out.detail, s.cfg.Tools.Secondary)

	out = s.invokeSecondary(ctx, prompt)
	if out.status != statusSuccess {
		if out.err != nil {
			return "", apperr.Wrap(apperr.SummarizationFailed, out.err,
				"summarization failed, both backends exhausted (%s, %s): %s",
				s.cfg.Tools.Primary, s.cfg.Tools.Secondary, out.detail)
		}
		return "", apperr.New(apperr.SummarizationFailed,
			"summarization failed, both backends exhausted (%s, %s): %s",
			s.cfg.Tools.Primary, s.cfg.Tools.Secondary, out.detail)
	}

	return out.text, nil
}

// invokePrimary feeds the prompt to the primary backend on stdin.
func (s *cliSummarizer) invokePrimary(ctx context.Context, prompt string) outcome {
	res, err := s.executor.Execute(ctx, executor.Command{
		Name:  s.cfg.Tools.Primary,
		Args:  []string{"--print"},
		Stdin: prompt,
	})
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return outcome{status: statusRecoverable, detail: "executable not found"}
		}
		return outcome{status: statusFatal, detail: err.Error(), err: err}
	}

	text := strings.TrimSpace(res.Stdout)
	if res.ExitCode == 0 && text != "" {
		return outcome{status: statusSuccess, text: text}
	}

	if s.classifier.AuthFailure(res.Combined()) {
		return outcome{status: statusRecoverable, detail: "not authenticated"}
	}

	detail := strings.TrimSpace(res.Stderr)
	if detail == "" {
		detail = "produced no output"
	}
	return outcome{status: statusFatal, detail: detail}
}

// invokeSecondary passes the prompt through a temporary file reference;
// the secondary backend's interface consumes file-based input.
func (s *cliSummarizer) invokeSecondary(ctx context.Context, prompt string) outcome {
	promptFile, err := os.CreateTemp("", "ausum-prompt-*.txt")
	if err != nil {
		return outcome{status: statusFatal, detail: fmt.Sprintf("create prompt file: %v", err)}
	}
	defer os.Remove(promptFile.Name())

	if _, err := promptFile.WriteString(prompt); err != nil {
		promptFile.Close()
		return outcome{status: statusFatal, detail: fmt.Sprintf("write prompt file: %v", err)}
	}
	if err := promptFile.Close(); err != nil {
		return outcome{status: statusFatal, detail: fmt.Sprintf("write prompt file: %v", err)}
	}

	res, err := s.executor.Execute(ctx, executor.Command{
		Name: s.cfg.Tools.Secondary,
		Args: []string{"-p", "@" + promptFile.Name()},
	})
	if err != nil {
		return outcome{status: statusFatal, detail: err.Error(), err: err}
	}

	text := strings.TrimSpace(res.Stdout)
	if res.ExitCode == 0 && text != "" {
		return outcome{status: statusSuccess, text: text}
	}

	detail := strings.TrimSpace(res.Stderr)
	if detail == "" {
		detail = "produced no output"
	}
	return outcome{status: statusFatal, detail: detail}
}
