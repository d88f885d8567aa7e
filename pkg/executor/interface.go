package executor

import "context"

// Command describes one external process invocation.
type Command struct {
	Name  string
	Args  []string
	Dir   string // working directory, empty for inherited
	Stdin string // piped to the process when non-empty
}

// Result captures the streams and exit status of a finished process.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Combined returns stdout and stderr joined, for signature matching
// against tools that report errors on either stream.
func (r Result) Combined() string {
	return r.Stdout + r.Stderr
}

// Executor defines the interface for executing external commands.
// A non-zero exit status is reported through Result.ExitCode with a nil
// error; the error return is reserved for processes that never ran
// (missing executable, canceled context).
type Executor interface {
	Execute(ctx context.Context, cmd Command) (Result, error)
}
