package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Tools    ToolsConfig    `yaml:"tools"`
	Classify ClassifyConfig `yaml:"classify"`
	Model    ModelConfig    `yaml:"model"`
	Audio    AudioConfig    `yaml:"audio"`
	Summary  SummaryConfig  `yaml:"summary"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ToolsConfig names the external executables the pipeline drives.
type ToolsConfig struct {
	Downloader  string `yaml:"downloader"`
	Transcoder  string `yaml:"transcoder"`
	Swift       string `yaml:"swift"`
	Primary     string `yaml:"primary"`
	Secondary   string `yaml:"secondary"`
	Impersonate string `yaml:"impersonate"`
}

// ClassifyConfig holds the substring signatures used to classify
// collaborator error output. Matching is case-insensitive.
type ClassifyConfig struct {
	UnsupportedSource []string `yaml:"unsupported_source"`
	AuthFailure       []string `yaml:"auth_failure"`
}

type ModelConfig struct {
	CacheDir string `yaml:"cache_dir"`
	ID       string `yaml:"id"`
}

type AudioConfig struct {
	ProbeExtensions []string `yaml:"probe_extensions"`
}

type SummaryConfig struct {
	Backend  string   `yaml:"backend"` // "cli" or "api"
	APIModel string   `yaml:"api_model"`
	APIKeys  []string `yaml:"api_keys"`
	Prompt   string   `yaml:"prompt"` // overrides the built-in instruction template
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func (c *Config) Validate() error {
	if c.Tools.Downloader == "" {
		c.Tools.Downloader = "yt-dlp"
	}
	if c.Tools.Transcoder == "" {
		c.Tools.Transcoder = "ffmpeg"
	}
	if c.Tools.Swift == "" {
		c.Tools.Swift = "swift"
	}
	if c.Tools.Primary == "" {
		c.Tools.Primary = "claude"
	}
	if c.Tools.Secondary == "" {
		c.Tools.Secondary = "gemini"
	}
	if c.Tools.Impersonate == "" {
		c.Tools.Impersonate = "chrome-131"
	}

	if len(c.Classify.UnsupportedSource) == 0 {
		c.Classify.UnsupportedSource = []string{
			"Unsupported URL",
			"Unable to extract",
			"no video",
		}
	}
	if len(c.Classify.AuthFailure) == 0 {
		c.Classify.AuthFailure = []string{"not logged in"}
	}

	if c.Model.CacheDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home directory: %w", err)
		}
		c.Model.CacheDir = filepath.Join(home, "Library", "Application Support", "FluidAudio", "Models")
	}
	if c.Model.ID == "" {
		c.Model.ID = "parakeet-tdt"
	}

	if len(c.Audio.ProbeExtensions) == 0 {
		c.Audio.ProbeExtensions = []string{".m4a", ".webm", ".opus", ".mp3"}
	}

	switch c.Summary.Backend {
	case "":
		c.Summary.Backend = "cli"
	case "cli", "api":
	default:
		return fmt.Errorf("summary.backend must be \"cli\" or \"api\", got %q", c.Summary.Backend)
	}
	if c.Summary.APIModel == "" {
		c.Summary.APIModel = "gemini-2.5-flash"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault loads the config at path. An explicitly given path must
// exist; only the conventional per-user location falls back to built-in
// defaults when no file is there.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	path = DefaultPath()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Default()
}

// Default returns the built-in configuration.
func Default() (*Config, error) {
	var cfg Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultPath returns the conventional per-user config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ausum", "config.yaml")
}
