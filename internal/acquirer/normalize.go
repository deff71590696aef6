package acquirer

import "strings"

const watchURLPrefix = "https://www.youtube.com/watch?v="

// NormalizeURL canonicalizes a video URL into the long-form watch URL.
// Short-link URLs are rebuilt from their trailing path segment; long-form
// URLs lose everything after the first ampersand. Anything unrecognizable
// passes through untouched and fails later at acquisition.
func NormalizeURL(raw string) string {
	if strings.Contains(raw, "youtu.be") {
		id := raw
		if i := strings.LastIndex(id, "/"); i >= 0 {
			id = id[i+1:]
		}
		if i := strings.Index(id, "?"); i >= 0 {
			id = id[:i]
		}
		return watchURLPrefix + id
	}

	if i := strings.Index(raw, "&"); i >= 0 {
		return raw[:i]
	}

	return raw
}
