package fault

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want int
	}{
		{"invalid input", KindInvalidInput, http.StatusBadRequest},
		{"age restricted", KindAgeRestricted, http.StatusForbidden},
		{"private video", KindPrivateVideo, http.StatusForbidden},
		{"not found", KindNotFound, http.StatusNotFound},
		{"download failed", KindDownloadFailed, http.StatusInternalServerError},
		{"missing audio", KindMissingAudio, http.StatusInternalServerError},
		{"transcription failed", KindTranscriptionFailed, http.StatusInternalServerError},
		{"bad credentials", KindBadCredentials, http.StatusInternalServerError},
		{"internal", KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.kind, "boom")
			if got := err.HTTPStatus(); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	base := New(KindPrivateVideo, "the video is private")
	wrapped := fmt.Errorf("acquire: %w", base)

	if got := KindOf(wrapped); got != KindPrivateVideo {
		t.Errorf("KindOf(wrapped) = %v, want %v", got, KindPrivateVideo)
	}

	if got := KindOf(errors.New("plain")); got != KindInternal {
		t.Errorf("KindOf(plain) = %v, want %v", got, KindInternal)
	}
}

func TestStatusOfPlainError(t *testing.T) {
	if got := StatusOf(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("StatusOf(plain) = %d, want 500", got)
	}
}

func TestDetailMessage(t *testing.T) {
	err := New(KindNotFound, "video %s does not exist", "abc123")
	if err.Error() != "video abc123 does not exist" {
		t.Errorf("Error() = %q", err.Error())
	}
}
