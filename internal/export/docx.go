package export

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	bodyFont = "Calibri"
	bodySize = 11
)

var (
	reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet  = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reOrdered = regexp.MustCompile(`^\d+\.\s+(.+)$`)
)

// markdownToDocx renders markdown text into a styled docx document.
// Headings become bold runs at decreasing sizes, bullets and numbered
// items keep their markers, bold spans become bold runs.
func markdownToDocx(title, markdown, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addHeadingRun(doc.AddParagraph(""), title, 16)

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || trimmed == "---" {
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			addHeadingRun(doc.AddParagraph(""), m[2], headingSize(len(m[1])))
			continue
		}

		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			addBodyText(doc.AddParagraph(""), "• "+m[1])
			continue
		}

		if m := reOrdered.FindStringSubmatch(trimmed); m != nil {
			addBodyText(doc.AddParagraph(""), trimmed)
			continue
		}

		addBodyText(doc.AddParagraph(""), trimmed)
	}

	return doc.SaveTo(outputPath)
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 14
	case 3:
		return 12
	default:
		return bodySize
	}
}

func addHeadingRun(p *docx.Paragraph, text string, size uint64) {
	p.AddText(stripInlineMarkers(text)).Font(bodyFont).Size(size).Color("000000").Bold(true)
}

// addBodyText splits the line on bold spans so the bold segments get
// their own runs.
func addBodyText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(stripInlineMarkers(part)).Font(bodyFont).Size(bodySize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(stripInlineMarkers(matches[i][1])).Font(bodyFont).Size(bodySize).Color("000000").Bold(true)
		}
	}
}

func stripInlineMarkers(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
