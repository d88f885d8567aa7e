package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"ausum/internal/audio"
	"ausum/internal/config"
	"ausum/internal/logger"
	"ausum/internal/pipeline"
	"ausum/internal/prefs"
	"ausum/internal/prereq"
	"ausum/internal/source"
	"ausum/internal/summarize"
	"ausum/internal/transcribe"
	"ausum/internal/watcher"
	"ausum/pkg/executor"
)

const (
	exitFailure     = 1
	exitInterrupted = 130
)

// app bundles the wired pipeline and its shared collaborators.
type app struct {
	cfg     *config.Config
	logger  logger.Logger
	checker *prereq.Checker
	pipe    pipeline.Pipeline
}

// buildApp wires every component from configuration. Stdout stays the
// success channel: the logger and the first-run prompt go to stderr.
func buildApp(cmd *cli.Command) (*app, error) {
	cfg, err := config.LoadOrDefault(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if cmd.Bool("verbose") {
		level = "debug"
	}
	log := logger.New(level)

	storePath, err := prefs.DefaultStorePath()
	if err != nil {
		return nil, fmt.Errorf("resolve preferences path: %w", err)
	}
	prefsResolver := prefs.NewResolver(prefs.NewJSONStore(storePath), os.Stdin, os.Stderr)

	exec := executor.New()
	classifier := source.NewSignatureClassifier(cfg.Classify.UnsupportedSource, cfg.Classify.AuthFailure)
	checker := prereq.NewChecker()

	pipe := pipeline.New(
		cfg,
		checker,
		prefsResolver,
		source.NewResolver(cfg, exec, classifier, log),
		audio.New(cfg, exec, classifier, log),
		transcribe.New(cfg, exec, checker.EngineDir(), log),
		summarize.New(cfg, exec, classifier, log),
		log,
	)

	return &app{cfg: cfg, logger: log, checker: checker, pipe: pipe}, nil
}

func run(ctx context.Context, cmd *cli.Command) error {
	input := cmd.Args().First()
	if input == "" {
		return fmt.Errorf("missing input: pass a video URL or a path to a local audio/video file")
	}

	a, err := buildApp(cmd)
	if err != nil {
		return err
	}

	res, err := a.pipe.Run(ctx, input, pipeline.Options{
		OutputDir:  cmd.String("outdir"),
		ExportDocx: cmd.Bool("docx"),
	})
	if err != nil {
		return err
	}

	// The success channel carries exactly the two output paths.
	fmt.Println(res.TranscriptPath)
	fmt.Println(res.SummaryPath)
	return nil
}

func runWatch(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.Args().First()
	if dir == "" {
		return fmt.Errorf("missing directory: pass a directory to watch for new media files")
	}

	a, err := buildApp(cmd)
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		OutputDir:  cmd.String("outdir"),
		ExportDocx: cmd.Bool("docx"),
	}
	w, err := watcher.New(dir, func(ctx context.Context, path string) error {
		res, err := a.pipe.Run(ctx, path, opts)
		if err != nil {
			return err
		}
		fmt.Println(res.TranscriptPath)
		fmt.Println(res.SummaryPath)
		return nil
	}, a.logger)
	if err != nil {
		return err
	}
	defer w.Stop()

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return ctx.Err()
}

func runDoctor(ctx context.Context, cmd *cli.Command) error {
	a, err := buildApp(cmd)
	if err != nil {
		return err
	}

	failures := 0
	for _, item := range a.checker.Report(a.cfg) {
		mark := "ok"
		if !item.OK {
			mark = "missing"
			failures++
		}
		fmt.Printf("%-16s %-8s %s\n", item.Name, mark, item.Detail)
	}

	if failures > 0 {
		return fmt.Errorf("%d prerequisite(s) missing", failures)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := &cli.Command{
		Name:      "ausum",
		Usage:     "Transcribe and summarize audio/video files or video URLs using Parakeet + Claude",
		ArgsUsage: "<url-or-file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "outdir",
				Aliases: []string{"d"},
				Usage:   "Output directory (overrides saved preference)",
			},
			&cli.BoolFlag{
				Name:  "docx",
				Usage: "Also export the summary as a .docx file",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Sources: cli.EnvVars("AUSUM_CONFIG"),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
		},
		Action: run,
		Commands: []*cli.Command{
			{
				Name:      "watch",
				Usage:     "Watch a directory and process every new media file",
				ArgsUsage: "<directory>",
				Action:    runWatch,
			},
			{
				Name:   "doctor",
				Usage:  "Check that all required external tools are available",
				Action: runDoctor,
			},
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		stop()
		if errors.Is(err, context.Canceled) {
			os.Exit(exitInterrupted)
		}
		fmt.Fprintf(os.Stderr, "ausum: error: %v\n", err)
		os.Exit(exitFailure)
	}
}
