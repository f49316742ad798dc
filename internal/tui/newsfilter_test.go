package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riziyan/apdetax/internal/api"
)

func sampleArticles() []api.Article {
	return []api.Article{
		{ID: "1", Title: "Rust 2.0 released", Snippet: "major release", SourceName: "HackerDaily"},
		{ID: "2", Title: "Go generics retrospective", Snippet: "two years in", SourceName: "GopherWeekly"},
		{ID: "3", Title: "Kernel news", Snippet: "rust drivers land", SourceName: "HackerDaily"},
		{ID: "4", Title: "Quantum breakthrough", Snippet: "new qubit record", SourceName: "SciNews"},
	}
}

func TestFilterArticlesBySource(t *testing.T) {
	articles := sampleArticles()

	got := filterArticles(articles, map[string]bool{"HackerDaily": true}, "")
	assert.Len(t, got, 2)
	for _, a := range got {
		assert.Equal(t, "HackerDaily", a.SourceName)
	}

	// Empty source set means everything passes.
	got = filterArticles(articles, map[string]bool{}, "")
	assert.Len(t, got, 4)
}

func TestFilterArticlesByQuery(t *testing.T) {
	articles := sampleArticles()

	// Matches title or snippet, case-insensitively.
	got := filterArticles(articles, nil, "RUST")
	assert.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID, "snippet matches count too")

	got = filterArticles(articles, nil, "  rust  ")
	assert.Len(t, got, 2, "query is trimmed before matching")
}

func TestFilterOrderIsCommutative(t *testing.T) {
	articles := sampleArticles()
	sources := map[string]bool{"HackerDaily": true, "SciNews": true}

	bySourceFirst := filterArticles(filterArticles(articles, sources, ""), nil, "rust")
	byQueryFirst := filterArticles(filterArticles(articles, nil, "rust"), sources, "")
	both := filterArticles(articles, sources, "rust")

	assert.Equal(t, both, bySourceFirst)
	assert.Equal(t, both, byQueryFirst)
}

func TestFilterIsIdempotent(t *testing.T) {
	articles := sampleArticles()
	sources := map[string]bool{"HackerDaily": true}

	once := filterArticles(articles, sources, "rust")
	twice := filterArticles(once, sources, "rust")
	assert.Equal(t, once, twice)
}

func TestVisibleSliceAndRemaining(t *testing.T) {
	articles := sampleArticles()

	visible := visibleArticles(articles, 1, 3)
	assert.Len(t, visible, 3)
	assert.Equal(t, 1, remainingArticles(articles, 1, 3))

	visible = visibleArticles(articles, 2, 3)
	assert.Len(t, visible, 4, "page window is cumulative, not a single page")
	assert.Equal(t, 0, remainingArticles(articles, 2, 3))

	assert.Empty(t, visibleArticles(nil, 1, 3))
	assert.Equal(t, 0, remainingArticles(nil, 1, 3))
}

func TestAvailableSources(t *testing.T) {
	got := availableSources(sampleArticles())
	assert.Equal(t, []string{"GopherWeekly", "HackerDaily", "SciNews"}, got)

	assert.Empty(t, availableSources(nil))
	assert.Empty(t, availableSources([]api.Article{{Title: "no source"}}))
}
