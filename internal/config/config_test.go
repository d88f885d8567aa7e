package config

import (
	"os"
	"testing"
)

func TestValidateDefaults(t *testing.T) {
	var cfg Config
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Tools.Downloader != "yt-dlp" {
		t.Errorf("Downloader = %v, want yt-dlp", cfg.Tools.Downloader)
	}
	if cfg.Tools.Primary != "claude" {
		t.Errorf("Primary = %v, want claude", cfg.Tools.Primary)
	}
	if cfg.Tools.Secondary != "gemini" {
		t.Errorf("Secondary = %v, want gemini", cfg.Tools.Secondary)
	}
	if len(cfg.Classify.UnsupportedSource) != 3 {
		t.Errorf("UnsupportedSource signatures = %d, want 3", len(cfg.Classify.UnsupportedSource))
	}
	if len(cfg.Classify.AuthFailure) != 1 || cfg.Classify.AuthFailure[0] != "not logged in" {
		t.Errorf("AuthFailure = %v, want [not logged in]", cfg.Classify.AuthFailure)
	}
	if cfg.Model.ID != "parakeet-tdt" {
		t.Errorf("Model.ID = %v, want parakeet-tdt", cfg.Model.ID)
	}
	if cfg.Model.CacheDir == "" {
		t.Error("Model.CacheDir not defaulted")
	}
	if len(cfg.Audio.ProbeExtensions) != 4 {
		t.Errorf("ProbeExtensions = %v, want 4 entries", cfg.Audio.ProbeExtensions)
	}
	if cfg.Summary.Backend != "cli" {
		t.Errorf("Summary.Backend = %v, want cli", cfg.Summary.Backend)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %v, want info", cfg.Logging.Level)
	}
}

func TestValidateBackend(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		wantErr bool
	}{
		{"empty defaults to cli", "", false},
		{"cli", "cli", false},
		{"api", "api", false},
		{"unknown backend", "local", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Summary: SummaryConfig{Backend: tt.backend}}
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
tools:
  downloader: "yt-dlp"
  primary: "claude"
  secondary: "llm"

classify:
  auth_failure:
    - "please run /login"

summary:
  backend: "api"
  api_model: "gemini-2.0-flash"

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Tools.Secondary != "llm" {
		t.Errorf("Secondary = %v, want llm", cfg.Tools.Secondary)
	}
	if cfg.Classify.AuthFailure[0] != "please run /login" {
		t.Errorf("AuthFailure = %v", cfg.Classify.AuthFailure)
	}
	if cfg.Summary.APIModel != "gemini-2.0-flash" {
		t.Errorf("APIModel = %v, want gemini-2.0-flash", cfg.Summary.APIModel)
	}
	// Untouched sections still get defaults.
	if cfg.Tools.Transcoder != "ffmpeg" {
		t.Errorf("Transcoder = %v, want ffmpeg", cfg.Tools.Transcoder)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	if _, err := Load("nonexistent.yaml"); err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadOrDefaultExplicitPathMustExist(t *testing.T) {
	// A path given on the command line is never silently ignored; a typo
	// must surface instead of running on built-in defaults.
	if _, err := LoadOrDefault("/definitely/not/here.yaml"); err == nil {
		t.Error("LoadOrDefault() should return error for explicit nonexistent path")
	}
}

func TestLoadOrDefaultFallsBackWithoutUserConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.Tools.Downloader != "yt-dlp" {
		t.Errorf("Downloader = %v, want yt-dlp", cfg.Tools.Downloader)
	}
}
