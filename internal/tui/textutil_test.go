package tui

import (
	"testing"
	"time"
)

func TestFormatISODuration(t *testing.T) {
	tests := []struct {
		iso  string
		want string
	}{
		{"PT15M33S", "15:33"},
		{"PT1H2M3S", "1:02:03"},
		{"PT45S", "0:45"},
		{"PT2H", "2:00:00"},
		{"PT10M", "10:00"},
		{"", ""},
		{"garbage", ""},
	}

	for _, tt := range tests {
		if got := formatISODuration(tt.iso); got != tt.want {
			t.Errorf("formatISODuration(%q) = %q, want %q", tt.iso, got, tt.want)
		}
	}
}

func TestFormatOffset(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{62, "1:02"},
		{3723.9, "1:02:03"},
		{-5, "0:00"},
	}

	for _, tt := range tests {
		if got := formatOffset(tt.seconds); got != tt.want {
			t.Errorf("formatOffset(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		count string
		want  string
	}{
		{"532", "532"},
		{"1234", "1.2K"},
		{"1000000", "1M"},
		{"2500000", "2.5M"},
		{"1200000000", "1.2B"},
		{"n/a", "n/a"},
	}

	for _, tt := range tests {
		if got := formatCount(tt.count); got != tt.want {
			t.Errorf("formatCount(%q) = %q, want %q", tt.count, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := formatDate(time.Time{}); got != "" {
		t.Errorf("zero time should render empty, got %q", got)
	}
	ts := time.Date(2024, time.March, 7, 12, 0, 0, 0, time.UTC)
	if got := formatDate(ts); got != "Mar 7, 2024" {
		t.Errorf("formatDate = %q", got)
	}
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<b>bold</b> text", "bold text"},
		{"no tags", "no tags"},
		{"a &amp; b &#39;c&#39;", "a & b 'c'"},
		{"<a href=\"x\">link</a>", "link"},
	}

	for _, tt := range tests {
		if got := stripTags(tt.in); got != tt.want {
			t.Errorf("stripTags(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncateEnd(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello w…"},
		{"hello", 0, ""},
		{"hello", 1, "…"},
	}

	for _, tt := range tests {
		if got := truncateEnd(tt.in, tt.limit); got != tt.want {
			t.Errorf("truncateEnd(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	got := truncateMiddle("https://example.org/some/long/path", 15)
	if len([]rune(got)) != 15 {
		t.Errorf("truncateMiddle length = %d, want 15 (%q)", len([]rune(got)), got)
	}
	if got := truncateMiddle("short", 15); got != "short" {
		t.Errorf("short input should pass through, got %q", got)
	}
}
