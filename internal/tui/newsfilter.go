package tui

import (
	"sort"
	"strings"

	"github.com/riziyan/apdetax/internal/api"
)

// News filtering is a pure function of (articles, filter, query) computed
// on every render. An article passes when its source is selected (or no
// sources are selected) and the search query, if any, appears in its title
// or snippet case-insensitively.

func filterArticles(articles []api.Article, sources map[string]bool, query string) []api.Article {
	query = strings.ToLower(strings.TrimSpace(query))

	var out []api.Article
	for _, a := range articles {
		if len(sources) > 0 && !sources[a.SourceName] {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(a.Title), query) &&
			!strings.Contains(strings.ToLower(a.Snippet), query) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// visibleArticles returns the first page*pageSize passing articles.
func visibleArticles(filtered []api.Article, page, pageSize int) []api.Article {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		return nil
	}
	n := page * pageSize
	if n > len(filtered) {
		n = len(filtered)
	}
	return filtered[:n]
}

// remainingArticles counts passing articles beyond the visible window.
func remainingArticles(filtered []api.Article, page, pageSize int) int {
	rest := len(filtered) - len(visibleArticles(filtered, page, pageSize))
	if rest < 0 {
		return 0
	}
	return rest
}

// availableSources lists the distinct source names in the full article
// set, sorted for stable display.
func availableSources(articles []api.Article) []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range articles {
		if a.SourceName == "" || seen[a.SourceName] {
			continue
		}
		seen[a.SourceName] = true
		out = append(out, a.SourceName)
	}
	sort.Strings(out)
	return out
}
