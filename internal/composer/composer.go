package composer

import (
	"context"
	"strings"

	"github.com/tantran2612/vidscribe/internal/acquirer"
	"github.com/tantran2612/vidscribe/internal/transcriber"
)

// Compose builds the prompt, submits it once, and falls back to the
// deterministic renderer when no text can be extracted from the service.
func (c *implComposer) Compose(ctx context.Context, result *transcriber.Result, md acquirer.Metadata, opts Options) Summary {
	opts = opts.normalized()

	prompt := buildPrompt(result, md, opts, c.maxTranscriptChars)

	text, err := c.generator.Generate(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		c.logger.Warn(ctx, "Summary generation failed, using fallback renderer: %v", err)
		return Summary{Text: renderFallback(result, md), Source: SourceFallback}
	}

	c.logger.Debug(ctx, "Summary generated (%d characters)", len(text))
	return Summary{Text: text, Source: SourceGenerated}
}
