package acquirer

import (
	"strings"

	"github.com/tantran2612/vidscribe/internal/fault"
)

// classifyDownloadError maps extractor error text to a failure kind by
// keyword. Pure function, kept separate from anything that touches the
// network so the mapping can be tested on its own.
func classifyDownloadError(msg string) fault.Kind {
	m := strings.ToLower(msg)

	switch {
	case strings.Contains(m, "age") || strings.Contains(m, "restrict"):
		return fault.KindAgeRestricted
	case strings.Contains(m, "private"):
		return fault.KindPrivateVideo
	case strings.Contains(m, "available") || strings.Contains(m, "exist"):
		return fault.KindNotFound
	default:
		return fault.KindDownloadFailed
	}
}
