package source

import (
	"bytes"
	"context"
	"testing"

	"ausum/internal/apperr"
	"ausum/internal/config"
	"ausum/internal/logger"
	"ausum/pkg/executor"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Kind
	}{
		{"https url", "https://x", KindRemote},
		{"http url", "http://x", KindRemote},
		{"www shorthand", "www.x", KindRemote},
		{"absolute path", "/tmp/a.mp4", KindLocal},
		{"relative path", "a.mp4", KindLocal},
		{"ftp looks local", "ftp://x", KindLocal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.input).Kind; got != tt.want {
				t.Errorf("Classify(%q).Kind = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester") // deterministic expansion target

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare tilde", "~", "/home/tester"},
		{"tilde prefix", "~/Documents", "/home/tester/Documents"},
		{"mid-path tilde untouched", "/data/~/x", "/data/~/x"},
		{"plain path untouched", "/tmp/a.mp4", "/tmp/a.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandPath(tt.input); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

type fakeExecutor struct {
	fn    func(cmd executor.Command) (executor.Result, error)
	calls []executor.Command
}

func (f *fakeExecutor) Execute(ctx context.Context, cmd executor.Command) (executor.Result, error) {
	f.calls = append(f.calls, cmd)
	return f.fn(cmd)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Default()
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func testClassifier(cfg *config.Config) *SignatureClassifier {
	return NewSignatureClassifier(cfg.Classify.UnsupportedSource, cfg.Classify.AuthFailure)
}

func TestTitleLocal(t *testing.T) {
	cfg := testConfig(t)
	exec := &fakeExecutor{fn: func(executor.Command) (executor.Result, error) {
		panic("local title must not invoke the downloader")
	}}
	r := NewResolver(cfg, exec, testClassifier(cfg), logger.NewWithWriter(&bytes.Buffer{}, "error"))

	got, err := r.Title(context.Background(), Source{Kind: KindLocal, Input: "/tmp/My Talk: Part 1.mp4"})
	if err != nil {
		t.Fatalf("Title() error = %v", err)
	}
	if got != "My Talk- Part 1" {
		t.Errorf("Title() = %q, want %q", got, "My Talk- Part 1")
	}
}

func TestTitleRemote(t *testing.T) {
	tests := []struct {
		name     string
		result   executor.Result
		want     string
		wantKind apperr.Kind
	}{
		{
			name:   "success",
			result: executor.Result{Stdout: "Great Video\n"},
			want:   "Great Video",
		},
		{
			name:   "empty title falls back",
			result: executor.Result{Stdout: "  \n"},
			want:   "untitled",
		},
		{
			name:     "unsupported url signature",
			result:   executor.Result{ExitCode: 1, Stderr: "ERROR: Unsupported URL: https://x"},
			wantKind: apperr.UnsupportedSource,
		},
		{
			name:     "extraction failure signature",
			result:   executor.Result{ExitCode: 1, Stderr: "ERROR: Unable to extract player data"},
			wantKind: apperr.UnsupportedSource,
		},
		{
			name:   "unrelated failure is not unsupported",
			result: executor.Result{ExitCode: 1, Stderr: "network unreachable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			exec := &fakeExecutor{fn: func(executor.Command) (executor.Result, error) {
				return tt.result, nil
			}}
			r := NewResolver(cfg, exec, testClassifier(cfg), logger.NewWithWriter(&bytes.Buffer{}, "error"))

			got, err := r.Title(context.Background(), Source{Kind: KindRemote, Input: "https://x"})

			if tt.result.ExitCode != 0 {
				if err == nil {
					t.Fatal("Title() error = nil, want error")
				}
				if kind := apperr.KindOf(err); kind != tt.wantKind {
					t.Errorf("KindOf(err) = %v, want %v", kind, tt.wantKind)
				}
				return
			}

			if err != nil {
				t.Fatalf("Title() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSignatureClassifier(t *testing.T) {
	c := NewSignatureClassifier(
		[]string{"Unsupported URL", "no video"},
		[]string{"not logged in"},
	)

	tests := []struct {
		name   string
		output string
		method func(string) bool
		want   bool
	}{
		{"unsupported exact", "ERROR: Unsupported URL", c.UnsupportedSource, true},
		{"unsupported case-insensitive", "error: NO VIDEO found", c.UnsupportedSource, true},
		{"unsupported no match", "403 forbidden", c.UnsupportedSource, false},
		{"auth match", "You are not logged in. Run /login.", c.AuthFailure, true},
		{"auth no match", "rate limited", c.AuthFailure, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.method(tt.output); got != tt.want {
				t.Errorf("classifier(%q) = %v, want %v", tt.output, got, tt.want)
			}
		})
	}
}
