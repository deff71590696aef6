package composer

import (
	"fmt"
	"strings"

	"github.com/tantran2612/vidscribe/internal/acquirer"
	"github.com/tantran2612/vidscribe/internal/transcriber"
)

const (
	readingWordsPerMinute  = 150
	syntheticBucketSeconds = 300
	maxSyntheticBuckets    = 5
)

// renderFallback produces the deterministic plain-markdown rendering used
// whenever the generative call cannot deliver. Always non-empty, always
// contains the title, duration, and the raw transcript verbatim.
func renderFallback(result *transcriber.Result, md acquirer.Metadata) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", md.Title)
	fmt.Fprintf(&b, "**Creator:** %s\n", md.Uploader)
	fmt.Fprintf(&b, "**Duration:** %s\n", FormatTimestamp(float64(md.Duration)))
	fmt.Fprintf(&b, "**Views:** %d\n\n", md.ViewCount)

	b.WriteString("## Summary\n\n")
	if result.Summary != "" {
		b.WriteString(result.Summary)
	} else {
		b.WriteString("Summary not available.")
	}
	b.WriteString("\n\n")

	b.WriteString("## Chapters\n\n")
	if len(result.Chapters) > 0 {
		for _, ch := range result.Chapters {
			fmt.Fprintf(&b, "- [%s-%s] %s\n", FormatTimestamp(ch.Start), FormatTimestamp(ch.End), chapterLabel(ch))
		}
	} else {
		for i, n := 0, syntheticBucketCount(result.Text); i < n; i++ {
			start := float64(i * syntheticBucketSeconds)
			end := float64((i + 1) * syntheticBucketSeconds)
			fmt.Fprintf(&b, "- [%s-%s] Part %d\n", FormatTimestamp(start), FormatTimestamp(end), i+1)
		}
	}
	b.WriteString("\n")

	b.WriteString("## Transcript\n\n")
	b.WriteString(result.Text)
	b.WriteString("\n")

	return b.String()
}

// syntheticBucketCount estimates 5-minute chapter buckets from word count
// at an assumed reading speed, capped at 5 and never less than 1.
func syntheticBucketCount(text string) int {
	words := len(strings.Fields(text))
	minutes := words / readingWordsPerMinute
	buckets := minutes/5 + 1
	if buckets > maxSyntheticBuckets {
		buckets = maxSyntheticBuckets
	}
	return buckets
}
