package composer

import (
	"fmt"
	"math"
	"strings"
)

// FormatTimestamp renders seconds as zero-padded MM:SS. Minutes are
// unbounded (no hour rollover); NaN, infinities, and negatives map to
// "00:00" so the function is total.
func FormatTimestamp(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "00:00"
	}
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FormatUploadDate turns an 8-digit YYYYMMDD date into hyphenated ISO
// form. Anything else is returned unchanged.
func FormatUploadDate(date string) string {
	if len(date) != 8 {
		return date
	}
	for _, r := range date {
		if r < '0' || r > '9' {
			return date
		}
	}
	return date[0:4] + "-" + date[4:6] + "-" + date[6:8]
}

// joinTags renders at most the first 10 tags as a display string.
func joinTags(tags []string) string {
	if len(tags) == 0 {
		return "None"
	}
	if len(tags) > 10 {
		tags = tags[:10]
	}
	return strings.Join(tags, ", ")
}

func joinCategories(categories []string) string {
	if len(categories) == 0 {
		return "None"
	}
	return strings.Join(categories, ", ")
}
