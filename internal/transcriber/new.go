package transcriber

import (
	"net/http"
	"time"

	"github.com/tantran2612/vidscribe/internal/config"
	"github.com/tantran2612/vidscribe/internal/logger"
)

const requestTimeout = 10 * time.Minute

type implTranscriber struct {
	baseURL      string
	apiKey       string
	pollInterval time.Duration
	httpClient   *http.Client
	logger       logger.Logger
}

// New creates a Transcriber talking to the configured speech-to-text API.
func New(cfg *config.Config, log logger.Logger) Transcriber {
	return &implTranscriber{
		baseURL:      cfg.Transcription.BaseURL,
		apiKey:       cfg.Transcription.APIKey,
		pollInterval: time.Duration(cfg.Transcription.PollIntervalSeconds) * time.Second,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: log,
	}
}
