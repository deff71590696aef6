package acquirer

import (
	"testing"

	"github.com/tantran2612/vidscribe/internal/fault"
)

func TestClassifyDownloadError(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want fault.Kind
	}{
		{"age restricted", "ERROR: Sign in to confirm your age", fault.KindAgeRestricted},
		{"restricted keyword", "this video is restricted", fault.KindAgeRestricted},
		{"private video", "ERROR: Private video. Sign in if you've been granted access", fault.KindPrivateVideo},
		{"unavailable", "ERROR: Video unavailable", fault.KindNotFound},
		{"does not exist", "this video does not exist", fault.KindNotFound},
		{"network error", "connection reset by peer", fault.KindDownloadFailed},
		{"empty message", "", fault.KindDownloadFailed},
		{"case insensitive", "PRIVATE VIDEO", fault.KindPrivateVideo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyDownloadError(tt.msg); got != tt.want {
				t.Errorf("classifyDownloadError(%q) = %v, want %v", tt.msg, got, tt.want)
			}
		})
	}
}
