package composer

import (
	"context"

	"github.com/tantran2612/vidscribe/internal/config"
	"github.com/tantran2612/vidscribe/internal/logger"
)

// generator is the single-call seam to the generative-text service.
type generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type implComposer struct {
	generator          generator
	maxTranscriptChars int
	logger             logger.Logger
}

// New creates a Composer backed by the Gemini API.
func New(cfg *config.Config, log logger.Logger) Composer {
	return &implComposer{
		generator: &geminiGenerator{
			apiKey: cfg.Gemini.APIKey,
			model:  cfg.Gemini.Model,
		},
		maxTranscriptChars: cfg.Gemini.MaxTranscriptChars,
		logger:             log,
	}
}
