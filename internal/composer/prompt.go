package composer

import (
	"fmt"
	"strings"

	"github.com/tantran2612/vidscribe/internal/acquirer"
	"github.com/tantran2612/vidscribe/internal/transcriber"
)

var typeInstructions = map[string]string{
	TypeComprehensive: `Write a comprehensive summary with exactly these sections, in this order:
1. Executive Summary - two or three sentences capturing what the video is about
2. Key Takeaways - the most important points as a numbered list
3. Timestamped Breakdown - the video's flow section by section
4. Action Items - concrete things a viewer should do after watching
5. Additional Insights - context, caveats, or connections worth knowing`,

	TypeBrief: `Write a brief summary: two or three short paragraphs covering what the video is about, its core argument, and its conclusion. No headings, no lists.`,

	TypeBullets: `Write the summary entirely as bullet points. Group related points together, one fact per bullet, most important first.`,

	TypeAcademic: `Write the summary in a formal academic register with these sections: Abstract, Main Arguments, Evidence Presented, Conclusions. Cite positions in the video where relevant.`,
}

// buildPrompt assembles the single natural-language prompt sent to the
// generative service. All option toggles change wording only.
func buildPrompt(result *transcriber.Result, md acquirer.Metadata, opts Options, maxTranscriptChars int) string {
	var b strings.Builder

	b.WriteString("You are an expert video content analyst. Summarize the following video using its metadata and transcript.\n\n")

	fmt.Fprintf(&b, `VIDEO METADATA:
Title: %s
Creator: %s
Duration: %s
Upload Date: %s
Views: %d
Likes: %d
Categories: %s
Tags: %s
`,
		md.Title,
		md.Uploader,
		FormatTimestamp(float64(md.Duration)),
		FormatUploadDate(md.UploadDate),
		md.ViewCount,
		md.LikeCount,
		joinCategories(md.Categories),
		joinTags(md.Tags),
	)

	if md.Description != "" {
		fmt.Fprintf(&b, "\nVIDEO DESCRIPTION:\n%s\n", md.Description)
	}

	if result.Summary != "" {
		fmt.Fprintf(&b, "\nSERVICE-PROVIDED SUMMARY:\n%s\n", result.Summary)
	}

	if opts.IncludeChapters && len(result.Chapters) > 0 {
		b.WriteString("\nCHAPTERS:\n")
		for _, ch := range result.Chapters {
			fmt.Fprintf(&b, "[%s-%s] %s\n", FormatTimestamp(ch.Start), FormatTimestamp(ch.End), chapterLabel(ch))
		}
	}

	if opts.IncludeHighlights && len(result.Highlights) > 0 {
		b.WriteString("\nKEY HIGHLIGHTS:\n")
		for _, h := range result.Highlights {
			fmt.Fprintf(&b, "- %s\n", h.Text)
		}
	}

	if result.Text != "" {
		text := result.Text
		truncated := false
		if maxTranscriptChars > 0 && len(text) > maxTranscriptChars {
			text = text[:maxTranscriptChars]
			truncated = true
		}
		b.WriteString("\nTRANSCRIPT:\n")
		b.WriteString(text)
		if truncated {
			b.WriteString("\n[transcript truncated]")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(typeInstructions[opts.SummaryType])
	b.WriteString("\n")

	if opts.IncludeTimestamps {
		b.WriteString("Reference moments in the video with MM:SS timestamps that fit within its duration.\n")
	} else {
		b.WriteString("Do not include timestamps.\n")
	}
	if opts.IncludeChapters && len(result.Chapters) > 0 {
		b.WriteString("Follow the chapter structure above when breaking the video down.\n")
	}
	if opts.IncludeHighlights && len(result.Highlights) > 0 {
		b.WriteString("Make sure the key highlights are reflected in the summary.\n")
	}

	b.WriteString("Output clean markdown suitable for reading.\n")

	return b.String()
}

func chapterLabel(ch transcriber.Chapter) string {
	if ch.Headline != "" {
		return ch.Headline
	}
	if ch.Gist != "" {
		return ch.Gist
	}
	return ch.Summary
}
