package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Export writes name.md and name.docx into the output directory.
// The markdown file carries a generation timestamp under the title.
// A docx failure is logged and degrades the result, it never fails
// the export as a whole.
func (e *implExporter) Export(ctx context.Context, name, markdown string) (Paths, error) {
	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return Paths{}, fmt.Errorf("create output dir: %w", err)
	}

	md := fmt.Sprintf("# %s\n\n_%s_\n\n%s\n",
		name,
		time.Now().Format("2006-01-02 15:04"),
		strings.TrimSpace(markdown),
	)

	mdPath := filepath.Join(e.outputDir, name+".md")
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		return Paths{}, fmt.Errorf("write markdown: %w", err)
	}

	paths := Paths{Markdown: mdPath}

	docxPath := filepath.Join(e.outputDir, name+".docx")
	if err := markdownToDocx(name, markdown, docxPath); err != nil {
		e.logger.Warn(ctx, "Failed to write docx %s: %v", docxPath, err)
		return paths, nil
	}
	paths.Docx = docxPath

	e.logger.Info(ctx, "Exported %s and %s", mdPath, docxPath)
	return paths, nil
}
