package intake

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tantran2612/vidscribe/internal/acquirer"
	"github.com/tantran2612/vidscribe/internal/composer"
)

// Process runs one intake file end to end. The file name (without
// extension) becomes the title and the output base name.
func (p *implProcessor) Process(ctx context.Context, filePath string) error {
	name := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	p.logger.Info(ctx, "Processing intake file: %s", name)

	result, err := p.transcriber.Transcribe(ctx, filePath)
	if err != nil {
		return fmt.Errorf("transcribe %s: %w", name, err)
	}

	md := acquirer.Metadata{
		Title:       name,
		Description: "Imported from intake directory",
		Uploader:    "Local file",
	}
	summary := p.composer.Compose(ctx, result, md, composer.DefaultOptions())
	p.logger.Info(ctx, "Composed summary for %s (source: %s)", name, summary.Source)

	if _, err := p.exporter.Export(ctx, name, summary.Text); err != nil {
		return fmt.Errorf("export %s: %w", name, err)
	}

	// Move the source next to its results so the watcher never sees
	// it again.
	dest := filepath.Join(p.outputDir, filepath.Base(filePath))
	if err := os.Rename(filePath, dest); err != nil {
		p.logger.Warn(ctx, "Failed to move processed file %s: %v", filePath, err)
	}

	p.logger.Info(ctx, "[DONE] %s", name)
	return nil
}
