package tui

import "fmt"

// Canonical short status messages used across the app.
const (
	MsgSearching      = "Searching…"
	MsgRefreshingNews = "Refreshing news…"
	MsgLoadingMore    = "Loading more…"
	MsgLoadingDetails = "Loading video…"
	MsgLoadingTrans   = "Loading transcript…"
	MsgAnalyzing      = "Analyzing comments…"
	MsgSummarizing    = "Summarizing…"
	MsgSending        = "Sending…"
	MsgNoResults      = "No results"
	MsgLoggedOut      = "Logged out"
)

func MsgResultsCount(n int) string {
	if n == 1 {
		return "1 result"
	}
	return fmt.Sprintf("%d results", n)
}

func MsgSearchSettled(videos, web, news, errors int) string {
	base := fmt.Sprintf("Search settled: %d videos • %d web • %d news", videos, web, news)
	if errors > 0 {
		base += fmt.Sprintf(" • %d errors", errors)
	}
	return base
}

func MsgMoreNews(remaining int) string {
	if remaining == 1 {
		return "1 more article"
	}
	return fmt.Sprintf("%d more articles", remaining)
}

func MsgLoginAt(url string) string {
	return "Log in in your browser: " + url
}
