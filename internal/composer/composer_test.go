package composer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tantran2612/vidscribe/internal/acquirer"
	"github.com/tantran2612/vidscribe/internal/logger"
	"github.com/tantran2612/vidscribe/internal/transcriber"
)

type stubGenerator struct {
	text   string
	err    error
	prompt string
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.text, s.err
}

func newTestComposer(gen generator) *implComposer {
	return &implComposer{
		generator:          gen,
		maxTranscriptChars: 20000,
		logger:             logger.New("error"),
	}
}

func sampleMetadata() acquirer.Metadata {
	return acquirer.Metadata{
		Title:      "Go Concurrency Patterns",
		Uploader:   "gophercon",
		Duration:   1858,
		ViewCount:  123456,
		UploadDate: "20230515",
		Categories: []string{"Science & Technology"},
		Tags:       []string{"go", "concurrency"},
	}
}

func sampleResult() *transcriber.Result {
	return &transcriber.Result{
		Text:    "today we talk about goroutines and channels",
		Summary: "- goroutines are cheap",
		Chapters: []transcriber.Chapter{
			{Start: 0, End: 125, Headline: "Intro"},
			{Start: 125, End: 600, Headline: "Channels"},
		},
		Highlights: []transcriber.Highlight{
			{Text: "goroutines and channels", Rank: 0.9},
		},
	}
}

func TestComposeGeneratedPath(t *testing.T) {
	gen := &stubGenerator{text: "## Executive Summary\ngreat talk"}
	c := newTestComposer(gen)

	got := c.Compose(context.Background(), sampleResult(), sampleMetadata(), DefaultOptions())

	if got.Source != SourceGenerated {
		t.Errorf("Source = %v, want generated", got.Source)
	}
	if got.Text != "## Executive Summary\ngreat talk" {
		t.Errorf("Text = %q", got.Text)
	}
}

func TestComposeFallbackOnGeneratorError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	c := newTestComposer(gen)

	got := c.Compose(context.Background(), sampleResult(), sampleMetadata(), DefaultOptions())

	if got.Source != SourceFallback {
		t.Errorf("Source = %v, want fallback", got.Source)
	}
	if strings.TrimSpace(got.Text) == "" {
		t.Error("fallback text must be non-empty")
	}
}

func TestComposeFallbackOnEmptyGeneration(t *testing.T) {
	gen := &stubGenerator{text: "   \n"}
	c := newTestComposer(gen)

	got := c.Compose(context.Background(), sampleResult(), sampleMetadata(), DefaultOptions())
	if got.Source != SourceFallback {
		t.Errorf("Source = %v, want fallback", got.Source)
	}
}

func TestComposePromptContents(t *testing.T) {
	gen := &stubGenerator{text: "ok"}
	c := newTestComposer(gen)

	c.Compose(context.Background(), sampleResult(), sampleMetadata(), DefaultOptions())

	for _, want := range []string{
		"Title: Go Concurrency Patterns",
		"Creator: gophercon",
		"Duration: 30:58",
		"Upload Date: 2023-05-15",
		"[00:00-02:05] Intro",
		"today we talk about goroutines and channels",
		"Executive Summary",
	} {
		if !strings.Contains(gen.prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestComposePromptTogglesWordingOnly(t *testing.T) {
	opts := DefaultOptions()
	opts.IncludeTimestamps = false
	opts.IncludeChapters = false
	opts.IncludeHighlights = false

	gen := &stubGenerator{text: "ok"}
	c := newTestComposer(gen)

	got := c.Compose(context.Background(), sampleResult(), sampleMetadata(), opts)
	if got.Source != SourceGenerated {
		t.Fatalf("toggles must not change control flow, got %v", got.Source)
	}
	if strings.Contains(gen.prompt, "CHAPTERS:") {
		t.Error("prompt should omit chapters when toggled off")
	}
	if !strings.Contains(gen.prompt, "Do not include timestamps.") {
		t.Error("prompt should request no timestamps")
	}
}

func TestComposeSummaryTypes(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		fragment string
	}{
		{"comprehensive", TypeComprehensive, "Executive Summary"},
		{"brief", TypeBrief, "No headings"},
		{"bullets", TypeBullets, "bullet points"},
		{"academic", TypeAcademic, "Abstract"},
		{"unknown falls back to comprehensive", "chatty", "Executive Summary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &stubGenerator{text: "ok"}
			c := newTestComposer(gen)

			opts := DefaultOptions()
			opts.SummaryType = tt.kind
			c.Compose(context.Background(), sampleResult(), sampleMetadata(), opts)

			if !strings.Contains(gen.prompt, tt.fragment) {
				t.Errorf("prompt for %q missing %q", tt.kind, tt.fragment)
			}
		})
	}
}

func TestComposeTruncatesLongTranscript(t *testing.T) {
	gen := &stubGenerator{text: "ok"}
	c := newTestComposer(gen)
	c.maxTranscriptChars = 100

	result := sampleResult()
	result.Text = strings.Repeat("word ", 200)

	c.Compose(context.Background(), result, sampleMetadata(), DefaultOptions())

	if !strings.Contains(gen.prompt, "[transcript truncated]") {
		t.Error("prompt should mark truncated transcript")
	}
}
