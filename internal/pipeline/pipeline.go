package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tantran2612/vidscribe/internal/acquirer"
	"github.com/tantran2612/vidscribe/internal/composer"
	"github.com/tantran2612/vidscribe/internal/transcriber"
)

// Run executes the request state machine. Any stage failure
// short-circuits the rest; the deferred cleanup runs regardless.
func (p *implPipeline) Run(ctx context.Context, url string, opts composer.Options) (*Outcome, error) {
	start := time.Now()
	p.logStage(ctx, StageReceived, url)

	url = acquirer.NormalizeURL(url)
	p.logStage(ctx, StageNormalized, url)

	p.logStage(ctx, StageAcquiring, url)
	audioPath, md, err := p.acquirer.Acquire(ctx, url)
	if audioPath != "" {
		defer p.cleanupTempFile(ctx, audioPath)
	}
	if err != nil {
		p.logStage(ctx, StageFailed, url)
		return nil, fmt.Errorf("acquire: %w", err)
	}

	p.logStage(ctx, StageTranscribing, url)
	result, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		p.logStage(ctx, StageFailed, url)
		return nil, fmt.Errorf("transcribe: %w", err)
	}

	p.logStage(ctx, StageComposing, url)
	summary := p.composer.Compose(ctx, result, md, opts)

	outcome := &Outcome{
		Text:     summary.Text,
		Source:   summary.Source,
		Metadata: md,
		Report:   buildReport(result, opts),
	}

	p.logStage(ctx, StageDone, url)
	p.logger.Info(ctx, "Request for %s completed in %s (source=%s)", url, time.Since(start), summary.Source)
	return outcome, nil
}

func (p *implPipeline) logStage(ctx context.Context, stage Stage, url string) {
	p.logger.Debug(ctx, "Stage %s: %s", stage, url)
}

// cleanupTempFile removes the request's audio file; its own failure is
// logged, never escalated.
func (p *implPipeline) cleanupTempFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", path)
	}
}

func buildReport(result *transcriber.Result, opts composer.Options) Report {
	return Report{
		HasChapters:        len(result.Chapters) > 0,
		HasSummary:         result.Summary != "",
		HasHighlights:      len(result.Highlights) > 0,
		WordCount:          len(strings.Fields(result.Text)),
		ChapterCount:       len(result.Chapters),
		TimestampsIncluded: opts.IncludeTimestamps,
		ChaptersIncluded:   opts.IncludeChapters && len(result.Chapters) > 0,
		HighlightsIncluded: opts.IncludeHighlights && len(result.Highlights) > 0,
	}
}
