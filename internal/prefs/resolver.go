package prefs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"ausum/internal/source"
)

// Resolver turns an optional CLI override, stored preferences, and a
// first-run interactive prompt into a usable output directory.
type Resolver struct {
	store Store
	in    io.Reader
	out   io.Writer // prompt target, kept off the success channel
}

// NewResolver creates a Resolver. in and out carry the first-run
// interaction; pass os.Stdin and os.Stderr in production.
func NewResolver(store Store, in io.Reader, out io.Writer) *Resolver {
	return &Resolver{store: store, in: in, out: out}
}

// Resolve returns the output directory to use for this run. An explicit
// override wins and is not persisted; a stored preference is next; the
// first run prompts and persists the answer.
func (r *Resolver) Resolve(override string) (string, error) {
	if override != "" {
		dir := source.ExpandPath(override)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
		return dir, nil
	}

	p, err := r.store.Load()
	if err != nil {
		return "", err
	}
	if p.OutputDir != "" {
		return source.ExpandPath(p.OutputDir), nil
	}

	return r.promptAndSave()
}

func (r *Resolver) promptAndSave() (string, error) {
	defaultDir := source.ExpandPath("~/Documents")
	hasDefault := false
	if info, err := os.Stat(defaultDir); err == nil && info.IsDir() {
		hasDefault = true
	}

	if hasDefault {
		fmt.Fprintf(r.out, "Where should transcripts be saved? (default: %s)\nPress Enter for default, or enter a path: ", defaultDir)
	} else {
		fmt.Fprint(r.out, "Where should transcripts be saved? Enter a directory path: ")
	}

	reader := bufio.NewReader(r.in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read output directory: %w", err)
	}
	answer := strings.TrimSpace(line)

	var dir string
	switch {
	case answer != "":
		dir = source.ExpandPath(answer)
	case hasDefault:
		dir = defaultDir
	default:
		return "", fmt.Errorf("no default directory available, please enter a valid path")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	if err := r.store.Save(Preferences{OutputDir: dir}); err != nil {
		return "", fmt.Errorf("save preferences: %w", err)
	}

	fmt.Fprintf(r.out, "Saving transcripts to: %s\n", dir)
	return dir, nil
}
