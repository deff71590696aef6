package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Env variable names for the two service credentials. Both are read once at
// startup; an absent key never prevents the process from starting, the call
// that needs it fails with an authentication fault instead.
const (
	EnvTranscriptAPIKey = "TRANSCRIPT_API_KEY"
	EnvGeminiAPIKey     = "GEMINI_API_KEY"
)

type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Paths         PathsConfig         `yaml:"paths"`
	Acquisition   AcquisitionConfig   `yaml:"acquisition"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Gemini        GeminiConfig        `yaml:"gemini"`
	Logging       LoggingConfig       `yaml:"logging"`
	Performance   PerformanceConfig   `yaml:"performance"`
}

type ServerConfig struct {
	Port         string   `yaml:"port"`
	AllowOrigins []string `yaml:"allow_origins"`
}

type PathsConfig struct {
	Audio        string `yaml:"audio"`
	Intake       string `yaml:"intake"`
	IntakeOutput string `yaml:"intake_output"`
}

type AcquisitionConfig struct {
	BinaryPath     string `yaml:"binary_path"`
	PrimaryFormat  string `yaml:"primary_format"`
	FallbackFormat string `yaml:"fallback_format"`
}

type TranscriptionConfig struct {
	BaseURL             string `yaml:"base_url"`
	PollIntervalSeconds int    `yaml:"poll_interval_seconds"`
	APIKey              string `yaml:"-"`
}

type GeminiConfig struct {
	Model              string `yaml:"model"`
	MaxTranscriptChars int    `yaml:"max_transcript_chars"`
	APIKey             string `yaml:"-"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads the yaml config file, overlays credentials from the
// environment, and applies defaults via Validate.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.Transcription.APIKey = os.Getenv(EnvTranscriptAPIKey)
	cfg.Gemini.APIKey = os.Getenv(EnvGeminiAPIKey)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if len(c.Server.AllowOrigins) == 0 {
		c.Server.AllowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	if c.Paths.Audio == "" {
		c.Paths.Audio = "data/audio"
	}
	if c.Paths.Intake != "" && c.Paths.IntakeOutput == "" {
		c.Paths.IntakeOutput = "data/summaries"
	}
	if c.Acquisition.BinaryPath == "" {
		c.Acquisition.BinaryPath = "yt-dlp"
	}
	if c.Acquisition.PrimaryFormat == "" {
		c.Acquisition.PrimaryFormat = "bestaudio/best"
	}
	if c.Acquisition.FallbackFormat == "" {
		c.Acquisition.FallbackFormat = "bestaudio[ext=m4a]/bestaudio"
	}
	if c.Transcription.BaseURL == "" {
		c.Transcription.BaseURL = "https://api.assemblyai.com"
	}
	if c.Transcription.PollIntervalSeconds <= 0 {
		c.Transcription.PollIntervalSeconds = 3
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.MaxTranscriptChars <= 0 {
		c.Gemini.MaxTranscriptChars = 20000
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent <= 0 {
		c.Performance.MaxConcurrent = 2
	}

	if c.Paths.Intake != "" && c.Paths.Intake == c.Paths.IntakeOutput {
		return fmt.Errorf("paths.intake and paths.intake_output must differ")
	}

	return nil
}
