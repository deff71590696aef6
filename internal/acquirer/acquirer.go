package acquirer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/tantran2612/vidscribe/internal/fault"
)

const audioExt = ".m4a"

// Acquire normalizes the URL, fetches metadata, and downloads the best
// available audio track into the configured audio directory. Metadata
// failures degrade to placeholder values; an empty or missing download is
// retried once with the narrower fallback format selector.
func (a *implAcquirer) Acquire(ctx context.Context, rawURL string) (string, Metadata, error) {
	url := NormalizeURL(rawURL)
	a.logger.Info(ctx, "Acquiring audio: %s", url)

	if err := os.MkdirAll(a.cfg.Paths.Audio, 0755); err != nil {
		return "", placeholderMetadata(), fmt.Errorf("create audio dir: %w", err)
	}

	audioDir, err := filepath.Abs(a.cfg.Paths.Audio)
	if err != nil {
		return "", placeholderMetadata(), fmt.Errorf("resolve audio dir: %w", err)
	}

	audioPath := filepath.Join(audioDir, uuid.NewString()+audioExt)

	md := a.fetchMetadata(ctx, url)

	downloadErr := a.download(ctx, url, audioPath, a.cfg.Acquisition.PrimaryFormat)
	if downloadErr != nil || !validAudioFile(audioPath) {
		a.logger.Warn(ctx, "Primary download invalid for %s, retrying with fallback format", url)
		downloadErr = a.download(ctx, url, audioPath, a.cfg.Acquisition.FallbackFormat)
	}

	// The path is returned even on failure so the caller's cleanup can
	// collect a partially written file.
	if downloadErr != nil {
		kind := classifyDownloadError(downloadErr.Error())
		return audioPath, md, fault.New(kind, "%s", downloadMessage(kind, downloadErr))
	}

	if !validAudioFile(audioPath) {
		return audioPath, md, fault.New(fault.KindDownloadFailed, "failed to download audio file")
	}

	a.logger.Info(ctx, "Audio downloaded: %s", audioPath)
	return audioPath, md, nil
}

// fetchMetadata probes the video without downloading. It never fails the
// request; callers get placeholder metadata when the probe breaks.
func (a *implAcquirer) fetchMetadata(ctx context.Context, url string) Metadata {
	out, err := a.executor.Execute(ctx, a.cfg.Acquisition.BinaryPath,
		"--dump-json",
		"--no-playlist",
		"--skip-download",
		url,
	)
	if err != nil {
		a.logger.Warn(ctx, "Metadata extraction failed for %s: %v", url, err)
		return placeholderMetadata()
	}

	md, err := decodeMetadata([]byte(out))
	if err != nil {
		a.logger.Warn(ctx, "Metadata decode failed for %s: %v", url, err)
		return placeholderMetadata()
	}

	a.logger.Debug(ctx, "Metadata extracted: %s", md.Title)
	return md
}

func (a *implAcquirer) download(ctx context.Context, url, audioPath, format string) error {
	_, err := a.executor.Execute(ctx, a.cfg.Acquisition.BinaryPath,
		"-f", format,
		"--no-playlist",
		"-o", audioPath,
		url,
	)
	return err
}

func validAudioFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Size() > 0
}

func downloadMessage(kind fault.Kind, err error) string {
	switch kind {
	case fault.KindAgeRestricted:
		return "the video is age-restricted and requires authentication"
	case fault.KindPrivateVideo:
		return "the video is private and cannot be accessed"
	case fault.KindNotFound:
		return "the video is unavailable or does not exist"
	default:
		return fmt.Sprintf("failed to download video: %v", err)
	}
}
