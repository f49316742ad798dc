package search

import (
	"fmt"
	"sync"
	"testing"

	"github.com/riziyan/apdetax/internal/api"
)

func newTestEngine(t *testing.T) Searcher {
	t.Helper()
	eng, err := NewMemEngine()
	if err != nil {
		t.Fatalf("NewMemEngine: %v", err)
	}
	return eng
}

func TestIndexAndSearch(t *testing.T) {
	eng := newTestEngine(t)

	docs := []Document{
		FromVideo(api.Video{ID: "v1", Title: "Rust ownership explained", Description: "borrow checker basics", ChannelTitle: "SystemsChannel"}),
		FromWebResult(api.WebResult{Link: "https://example.org/go", Title: "Go concurrency patterns", Snippet: "channels and goroutines", DisplayLink: "example.org"}),
		FromArticle(api.Article{ID: "n1", Title: "Rust 2.0 released", Snippet: "major release", SourceName: "HackerDaily"}),
	}
	if err := eng.Index(docs); err != nil {
		t.Fatalf("Index: %v", err)
	}

	n, err := eng.DocCount()
	if err != nil {
		t.Fatalf("DocCount: %v", err)
	}
	if n != 3 {
		t.Errorf("DocCount = %d, want 3", n)
	}

	results, err := eng.Search("rust", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	kinds := map[Kind]bool{}
	for _, r := range results {
		kinds[r.Kind] = true
	}
	if !kinds[KindVideo] || !kinds[KindNews] {
		t.Errorf("expected a video and a news hit, got %v", kinds)
	}
}

func TestSearchShortQueryReturnsNothing(t *testing.T) {
	eng := newTestEngine(t)
	_ = eng.Index([]Document{{Kind: KindWeb, ID: "w", Title: "a"}})

	results, err := eng.Search("a", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("single-char query should match nothing, got %d", len(results))
	}
}

func TestTitleOutranksSnippet(t *testing.T) {
	eng := newTestEngine(t)
	docs := []Document{
		{Kind: KindWeb, ID: "title-hit", Title: "kubernetes networking", Snippet: "overview"},
		{Kind: KindWeb, ID: "snippet-hit", Title: "cluster guide", Snippet: "covers kubernetes briefly"},
	}
	if err := eng.Index(docs); err != nil {
		t.Fatalf("Index: %v", err)
	}

	results, err := eng.Search("kubernetes", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].ID != "title-hit" {
		t.Errorf("title match should rank first, got %q", results[0].ID)
	}
}

func TestReindexReplacesByID(t *testing.T) {
	eng := newTestEngine(t)
	_ = eng.Index([]Document{{Kind: KindNews, ID: "n1", Title: "first"}})
	_ = eng.Index([]Document{{Kind: KindNews, ID: "n1", Title: "updated headline"}})

	n, _ := eng.DocCount()
	if n != 1 {
		t.Errorf("re-indexing same ID should not duplicate, count = %d", n)
	}
}

func TestResetClearsIndex(t *testing.T) {
	eng := newTestEngine(t)
	_ = eng.Index([]Document{
		{Kind: KindVideo, ID: "v1", Title: "one"},
		{Kind: KindWeb, ID: "w1", Title: "two"},
	})

	if err := eng.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	n, err := eng.DocCount()
	if err != nil {
		t.Fatalf("DocCount after reset: %v", err)
	}
	if n != 0 {
		t.Errorf("index should be empty after reset, count = %d", n)
	}

	if err := eng.Index([]Document{{Kind: KindNews, ID: "n1", Title: "fresh"}}); err != nil {
		t.Fatalf("Index after reset: %v", err)
	}
}

func TestConcurrentIndexSearchAndReset(t *testing.T) {
	eng := newTestEngine(t)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_ = eng.Index([]Document{{Kind: KindNews, ID: fmt.Sprintf("n%d", i), Title: "headline"}})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_, _ = eng.Search("headline", 10)
		}
	}()

	for i := 0; i < 10; i++ {
		if err := eng.Reset(); err != nil {
			t.Fatalf("Reset: %v", err)
		}
	}
	wg.Wait()

	if err := eng.Index([]Document{{Kind: KindNews, ID: "after", Title: "headline"}}); err != nil {
		t.Fatalf("Index after concurrent resets: %v", err)
	}
	if _, err := eng.Search("headline", 10); err != nil {
		t.Fatalf("Search after concurrent resets: %v", err)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Rust ownership", []string{"rust", "ownership"}},
		{"a b cd", []string{"cd"}},
		{"C++20, modules!", []string{"20", "modules"}},
		{"", nil},
	}

	for _, tt := range tests {
		got := tokenize(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("tokenize(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}
