package acquirer

import "context"

// Acquirer obtains the audio track and metadata for a video URL.
// The returned file path is owned by the caller, including its removal.
type Acquirer interface {
	Acquire(ctx context.Context, url string) (string, Metadata, error)
}
