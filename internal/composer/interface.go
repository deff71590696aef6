package composer

import (
	"context"

	"github.com/tantran2612/vidscribe/internal/acquirer"
	"github.com/tantran2612/vidscribe/internal/transcriber"
)

// Composer turns a transcript and metadata into a human-readable summary.
// Compose never fails: when the generative call cannot produce text the
// deterministic fallback renderer takes over, and the Summary records
// which path produced it.
type Composer interface {
	Compose(ctx context.Context, result *transcriber.Result, md acquirer.Metadata, opts Options) Summary
}

// Source tells which of the two composition paths produced the text.
type Source string

const (
	SourceGenerated Source = "generated"
	SourceFallback  Source = "fallback"
)

type Summary struct {
	Text   string
	Source Source
}

// Options select the summary style. The toggles only change prompt
// wording, never control flow.
type Options struct {
	SummaryType       string
	IncludeTimestamps bool
	IncludeChapters   bool
	IncludeHighlights bool
}

const (
	TypeComprehensive = "comprehensive"
	TypeBrief         = "brief"
	TypeBullets       = "bullets"
	TypeAcademic      = "academic"
)

// DefaultOptions returns the comprehensive style with all toggles on.
func DefaultOptions() Options {
	return Options{
		SummaryType:       TypeComprehensive,
		IncludeTimestamps: true,
		IncludeChapters:   true,
		IncludeHighlights: true,
	}
}

func (o Options) normalized() Options {
	switch o.SummaryType {
	case TypeComprehensive, TypeBrief, TypeBullets, TypeAcademic:
	default:
		o.SummaryType = TypeComprehensive
	}
	return o
}
