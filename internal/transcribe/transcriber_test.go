package transcribe

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ausum/internal/apperr"
	"ausum/internal/config"
	"ausum/internal/logger"
	"ausum/pkg/executor"
)

type fakeExecutor struct {
	fn    func(cmd executor.Command) (executor.Result, error)
	calls []executor.Command
}

func (f *fakeExecutor) Execute(ctx context.Context, cmd executor.Command) (executor.Result, error) {
	f.calls = append(f.calls, cmd)
	return f.fn(cmd)
}

func newTestTranscriber(t *testing.T, exec executor.Executor, cacheDir string, logOut *bytes.Buffer) Transcriber {
	t.Helper()
	cfg, err := config.Default()
	if err != nil {
		t.Fatal(err)
	}
	cfg.Model.CacheDir = cacheDir
	if logOut == nil {
		logOut = &bytes.Buffer{}
	}
	return New(cfg, exec, "/opt/fluidaudio", logger.NewWithWriter(logOut, "info"))
}

func TestTranscribe(t *testing.T) {
	exec := &fakeExecutor{fn: func(executor.Command) (executor.Result, error) {
		return executor.Result{Stdout: "  hello world \n"}, nil
	}}
	tr := newTestTranscriber(t, exec, t.TempDir(), nil)

	got, err := tr.Transcribe(context.Background(), "/tmp/audio.wav")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if got != "hello world" {
		t.Errorf("Transcribe() = %q, want %q", got, "hello world")
	}

	cmd := exec.calls[0]
	if cmd.Name != "swift" {
		t.Errorf("Name = %v, want swift", cmd.Name)
	}
	if cmd.Dir != "/opt/fluidaudio" {
		t.Errorf("Dir = %v, want /opt/fluidaudio", cmd.Dir)
	}
	want := []string{"run", "-c", "release", "fluidaudiocli", "transcribe", "/tmp/audio.wav"}
	if strings.Join(cmd.Args, " ") != strings.Join(want, " ") {
		t.Errorf("Args = %v, want %v", cmd.Args, want)
	}
}

func TestTranscribeFailures(t *testing.T) {
	tests := []struct {
		name     string
		result   executor.Result
		wantKind apperr.Kind
	}{
		{
			name:     "non-zero exit",
			result:   executor.Result{ExitCode: 1, Stderr: "model load failed"},
			wantKind: apperr.TranscriptionFailed,
		},
		{
			name:     "clean exit but empty output",
			result:   executor.Result{ExitCode: 0, Stdout: "   \n"},
			wantKind: apperr.EmptyTranscript,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &fakeExecutor{fn: func(executor.Command) (executor.Result, error) {
				return tt.result, nil
			}}
			tr := newTestTranscriber(t, exec, t.TempDir(), nil)

			_, err := tr.Transcribe(context.Background(), "/tmp/audio.wav")
			if kind := apperr.KindOf(err); kind != tt.wantKind {
				t.Errorf("KindOf(err) = %v, want %v", kind, tt.wantKind)
			}
		})
	}
}

func TestModelDownloadNotice(t *testing.T) {
	ok := func(executor.Command) (executor.Result, error) {
		return executor.Result{Stdout: "text"}, nil
	}

	t.Run("cold cache emits notice", func(t *testing.T) {
		var out bytes.Buffer
		tr := newTestTranscriber(t, &fakeExecutor{fn: ok}, t.TempDir(), &out)

		if _, err := tr.Transcribe(context.Background(), "/tmp/audio.wav"); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out.String(), "Downloading Parakeet model") {
			t.Error("expected download notice for empty cache")
		}
	})

	t.Run("warm cache stays quiet", func(t *testing.T) {
		cacheDir := t.TempDir()
		if err := os.Mkdir(filepath.Join(cacheDir, "Parakeet-TDT-0.6b-v3"), 0o755); err != nil {
			t.Fatal(err)
		}

		var out bytes.Buffer
		tr := newTestTranscriber(t, &fakeExecutor{fn: ok}, cacheDir, &out)

		if _, err := tr.Transcribe(context.Background(), "/tmp/audio.wav"); err != nil {
			t.Fatal(err)
		}
		if strings.Contains(out.String(), "Downloading Parakeet model") {
			t.Error("unexpected download notice with cached model")
		}
	})
}
