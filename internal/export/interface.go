package export

import "context"

// Exporter persists a composed summary as markdown plus a styled
// docx rendition of the same content.
type Exporter interface {
	Export(ctx context.Context, name, markdown string) (Paths, error)
}

// Paths holds where the exported files landed. Docx is empty when
// the docx rendition could not be written; markdown is authoritative.
type Paths struct {
	Markdown string
	Docx     string
}
