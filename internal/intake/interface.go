package intake

import "context"

// Processor handles one audio file dropped into the intake directory:
// transcribe, compose, export, then move the source aside so the file
// is not picked up again.
type Processor interface {
	Process(ctx context.Context, filePath string) error
}
