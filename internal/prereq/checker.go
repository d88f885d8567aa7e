// Package prereq validates the external collaborators before the
// pipeline performs any work: required executables on PATH and the
// engine checkout referenced by the environment.
package prereq

import (
	"os"
	"os/exec"
	"path/filepath"

	"ausum/internal/config"
)

// EnvEngineDir names the environment variable pointing at the
// speech-to-text engine checkout.
const EnvEngineDir = "FLUIDAUDIO_PATH"

// manifestName must exist inside the engine checkout for `swift run` to
// build the transcription CLI.
const manifestName = "Package.swift"

// Item is one checked prerequisite for the doctor report.
type Item struct {
	Name   string
	OK     bool
	Detail string
}

// Checker probes the environment for required tools and paths.
type Checker struct {
	lookPath func(string) (string, error)
	stat     func(string) (os.FileInfo, error)
	getenv   func(string) string
}

// NewChecker builds a checker using real OS dependencies.
func NewChecker() *Checker {
	return &Checker{
		lookPath: exec.LookPath,
		stat:     os.Stat,
		getenv:   os.Getenv,
	}
}

// NewCheckerForTests creates a checker with injectable dependencies.
func NewCheckerForTests(
	lookPath func(string) (string, error),
	stat func(string) (os.FileInfo, error),
	getenv func(string) string,
) *Checker {
	return &Checker{lookPath: lookPath, stat: stat, getenv: getenv}
}

// Report runs every check and returns all results, pass and fail alike.
func (c *Checker) Report(cfg *config.Config) []Item {
	items := []Item{
		c.checkTool(cfg.Tools.Downloader, "install: brew install yt-dlp"),
		c.checkTool(cfg.Tools.Transcoder, "install: brew install ffmpeg"),
		c.checkTool(cfg.Tools.Swift, "comes with Xcode"),
		c.checkTool(cfg.Tools.Primary, "https://docs.anthropic.com/claude-cli"),
		c.checkEngineDir(),
	}
	return items
}

// Missing returns the detail lines of every failed check. The full list
// is reported at once so one fix-and-retry round covers everything.
func (c *Checker) Missing(cfg *config.Config) []string {
	var missing []string
	for _, item := range c.Report(cfg) {
		if !item.OK {
			missing = append(missing, item.Detail)
		}
	}
	return missing
}

// EngineDir returns the engine checkout directory from the environment.
func (c *Checker) EngineDir() string {
	return c.getenv(EnvEngineDir)
}

func (c *Checker) checkTool(name, hint string) Item {
	path, err := c.lookPath(name)
	if err != nil {
		return Item{Name: name, Detail: name + " (" + hint + ")"}
	}
	return Item{Name: name, OK: true, Detail: "found at " + path}
}

func (c *Checker) checkEngineDir() Item {
	item := Item{Name: EnvEngineDir}

	dir := c.getenv(EnvEngineDir)
	if dir == "" {
		item.Detail = EnvEngineDir + " environment variable not set"
		return item
	}

	info, err := c.stat(dir)
	if err != nil || !info.IsDir() {
		item.Detail = EnvEngineDir + " points to non-existent directory: " + dir
		return item
	}

	if _, err := c.stat(filepath.Join(dir, manifestName)); err != nil {
		item.Detail = "no " + manifestName + " found in " + EnvEngineDir + ": " + dir
		return item
	}

	item.OK = true
	item.Detail = "engine checkout at " + dir
	return item
}
