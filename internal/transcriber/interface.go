package transcriber

import "context"

// Transcriber submits a local audio file to the speech-to-text service and
// returns its structured result.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*Result, error)
}
