package fault

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a request failure into one of the reportable categories.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindAgeRestricted
	KindPrivateVideo
	KindNotFound
	KindDownloadFailed
	KindMissingAudio
	KindTranscriptionFailed
	KindBadCredentials
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindAgeRestricted:
		return "age_restricted"
	case KindPrivateVideo:
		return "private_video"
	case KindNotFound:
		return "not_found"
	case KindDownloadFailed:
		return "download_failed"
	case KindMissingAudio:
		return "missing_audio"
	case KindTranscriptionFailed:
		return "transcription_failed"
	case KindBadCredentials:
		return "bad_credentials"
	default:
		return "internal"
	}
}

// Error carries a failure kind alongside a human-readable detail message.
type Error struct {
	Kind   Kind
	Detail string
}

// New builds an Error with a formatted detail message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Detail
}

// HTTPStatus maps the failure kind to the status code reported on the
// form-based surface.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindAgeRestricted, KindPrivateVideo:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// KindOf extracts the Kind from any error in err's chain.
// Errors that are not faults report as internal.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindInternal
}

// StatusOf returns the HTTP status for any error, 500 for non-faults.
func StatusOf(err error) int {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// DetailOf returns the fault's detail message without any wrapping
// context, or the full error text for non-faults.
func DetailOf(err error) string {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Detail
	}
	return err.Error()
}
