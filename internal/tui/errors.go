package tui

import (
	"fmt"
	"strings"
)

// wrapErr formats an error with a contextual prefix.
func wrapErr(context string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// summaryFailureText maps a summarization error to what the user sees.
// Transcript-related failures (captions disabled, none available) get a
// friendly line; everything else is shown verbatim.
func summaryFailureText(err error) string {
	if strings.Contains(strings.ToLower(err.Error()), "transcript") {
		return "Transcript unavailable or disabled for this video, so it cannot be summarized."
	}
	return err.Error()
}
