package pipeline

import (
	"context"

	"github.com/tantran2612/vidscribe/internal/acquirer"
	"github.com/tantran2612/vidscribe/internal/composer"
)

// Pipeline runs one video request end to end: acquire, transcribe,
// compose. The temporary audio file is removed on every exit path.
type Pipeline interface {
	Run(ctx context.Context, url string, opts composer.Options) (*Outcome, error)
}

// Outcome carries everything a surface may want to report back.
type Outcome struct {
	Text     string
	Source   composer.Source
	Metadata acquirer.Metadata
	Report   Report
}

// Report describes which transcript features were present and which
// option toggles were honored.
type Report struct {
	HasChapters        bool
	HasSummary         bool
	HasHighlights      bool
	WordCount          int
	ChapterCount       int
	TimestampsIncluded bool
	ChaptersIncluded   bool
	HighlightsIncluded bool
}

// Stage names of the per-request state machine, in order.
type Stage string

const (
	StageReceived     Stage = "received"
	StageNormalized   Stage = "normalized"
	StageAcquiring    Stage = "acquiring"
	StageTranscribing Stage = "transcribing"
	StageComposing    Stage = "composing"
	StageDone         Stage = "done"
	StageFailed       Stage = "failed"
)
