package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"ausum/internal/apperr"
	"ausum/internal/source"
	"ausum/internal/summarize"
)

// Run executes the full sequence for one input: prerequisites, output
// directory resolution, title, audio, transcript, summary. Fully
// sequential; each stage blocks until its collaborator exits.
func (p *implPipeline) Run(ctx context.Context, input string, opts Options) (Result, error) {
	if missing := p.checker.Missing(p.cfg); len(missing) > 0 {
		return Result{}, apperr.New(apperr.PrerequisiteMissing,
			"missing prerequisites: %s", strings.Join(missing, "; "))
	}

	outDir, err := p.prefs.Resolve(opts.OutputDir)
	if err != nil {
		return Result{}, err
	}

	src := source.Classify(input)
	title, err := p.resolver.Title(ctx, src)
	if err != nil {
		return Result{}, err
	}

	txtPath := filepath.Join(outDir, title+".txt")
	summaryPath := filepath.Join(outDir, title+"-summary.md")

	transcript, err := p.produceTranscript(ctx, src)
	if err != nil {
		return Result{}, err
	}

	// The transcript is persisted before summarization starts: it is
	// completed work and survives a later summarization failure.
	if err := p.writeFile(txtPath, []byte(transcript), 0o644); err != nil {
		return Result{}, fmt.Errorf("save transcript: %w", err)
	}
	p.logger.Info(ctx, "Transcript saved: %s", txtPath)

	p.logger.Info(ctx, "Generating summary...")
	summary, err := p.summarizer.Summarize(ctx, transcript)
	if err != nil {
		return Result{}, err
	}

	if err := p.writeFile(summaryPath, []byte(summary), 0o644); err != nil {
		return Result{}, fmt.Errorf("save summary: %w", err)
	}
	p.logger.Info(ctx, "Summary saved: %s", summaryPath)

	res := Result{TranscriptPath: txtPath, SummaryPath: summaryPath}

	if opts.ExportDocx {
		docxPath := filepath.Join(outDir, title+"-summary.docx")
		if err := summarize.WriteDocx(title, summary, docxPath); err != nil {
			p.logger.Warn(ctx, "Failed to export docx: %v", err)
		} else {
			p.logger.Info(ctx, "Docx saved: %s", docxPath)
			res.DocxPath = docxPath
		}
	}

	return res, nil
}

// produceTranscript runs acquisition and transcription inside a scoped
// temporary directory that is removed on every exit path.
func (p *implPipeline) produceTranscript(ctx context.Context, src source.Source) (string, error) {
	tmpDir, err := p.mkdirTemp("", "ausum-*")
	if err != nil {
		return "", fmt.Errorf("create temporary workspace: %w", err)
	}
	defer func() {
		if err := p.removeAll(tmpDir); err != nil {
			p.logger.Warn(ctx, "Failed to clean up %s: %v", tmpDir, err)
		}
	}()

	wavPath := filepath.Join(tmpDir, "audio.wav")
	if err := p.acquirer.Acquire(ctx, src, wavPath); err != nil {
		return "", err
	}

	return p.transcriber.Transcribe(ctx, wavPath)
}
