package tui

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// truncateEnd shortens s to at most limit characters, appending an ellipsis
// if truncation occurs. Handles negative or tiny limits gracefully.
func truncateEnd(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit <= 1 {
		return "…"
	}
	return string(r[:limit-1]) + "…"
}

// truncateMiddle shortens s to at most limit characters by preserving the
// start and end of the string with a single ellipsis in the middle.
// Useful for URLs where both ends carry meaning.
func truncateMiddle(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	r := []rune(s)
	n := len(r)
	if n <= limit {
		return s
	}
	if limit <= 1 {
		return "…"
	}
	keep := limit - 1
	left := keep / 2
	right := keep - left
	if left <= 0 {
		return "…" + string(r[n-right:])
	}
	if right <= 0 {
		return string(r[:left]) + "…"
	}
	return string(r[:left]) + "…" + string(r[n-right:])
}

var isoDurationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// formatISODuration renders a YouTube ISO-8601 duration ("PT1H2M3S") as a
// clock string ("1:02:03"). Unparseable input comes back empty.
func formatISODuration(iso string) string {
	m := isoDurationRe.FindStringSubmatch(strings.TrimSpace(iso))
	if m == nil {
		return ""
	}
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	s, _ := strconv.Atoi(m[3])
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, min, s)
	}
	return fmt.Sprintf("%d:%02d", min, s)
}

// formatOffset renders a transcript offset in seconds as a clock string.
func formatOffset(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// formatCount compacts a numeric count string ("1234567" becomes "1.2M").
// Non-numeric input passes through unchanged.
func formatCount(count string) string {
	n, err := strconv.ParseFloat(strings.TrimSpace(count), 64)
	if err != nil {
		return count
	}
	switch {
	case n >= 1e9:
		return trimTrailingZero(fmt.Sprintf("%.1fB", n/1e9))
	case n >= 1e6:
		return trimTrailingZero(fmt.Sprintf("%.1fM", n/1e6))
	case n >= 1e3:
		return trimTrailingZero(fmt.Sprintf("%.1fK", n/1e3))
	default:
		return strconv.Itoa(int(n))
	}
}

func trimTrailingZero(s string) string {
	return strings.Replace(s, ".0", "", 1)
}

// formatDate renders a publish time for list rows; zero times come back
// empty instead of the epoch.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

var tagRe = regexp.MustCompile(`<[^>]*>`)

// stripTags removes HTML tags that search snippets sometimes carry.
func stripTags(s string) string {
	s = tagRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "&amp;", "&")
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&#39;", "'")
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	return s
}
