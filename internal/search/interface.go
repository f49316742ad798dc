package search

import "github.com/riziyan/apdetax/internal/api"

// Kind tags which result stream a document came from.
type Kind string

const (
	KindVideo Kind = "video"
	KindWeb   Kind = "web"
	KindNews  Kind = "news"
)

// Document is one indexable item from the current session: a video hit, a
// web hit, or a news article.
type Document struct {
	Kind    Kind
	ID      string
	Title   string
	Snippet string
	Source  string
}

// Result is a scored finder hit.
type Result struct {
	Kind    Kind
	ID      string
	Title   string
	Snippet string
	Source  string
	Score   float64
}

// Searcher is the minimal finder API used by the TUI.
type Searcher interface {
	Search(query string, limit int) ([]*Result, error)
	Index(docs []Document) error
	// Reset drops the whole index; called when the session goes home.
	Reset() error
	DocCount() (int, error)
}

// FromVideo converts a video search hit into an indexable document.
func FromVideo(v api.Video) Document {
	return Document{
		Kind:    KindVideo,
		ID:      v.ID,
		Title:   v.Title,
		Snippet: v.Description,
		Source:  v.ChannelTitle,
	}
}

// FromWebResult converts a web search hit into an indexable document.
func FromWebResult(w api.WebResult) Document {
	return Document{
		Kind:    KindWeb,
		ID:      w.Link,
		Title:   w.Title,
		Snippet: w.Snippet,
		Source:  w.DisplayLink,
	}
}

// FromArticle converts a news article into an indexable document.
func FromArticle(a api.Article) Document {
	return Document{
		Kind:    KindNews,
		ID:      a.ID,
		Title:   a.Title,
		Snippet: a.Snippet,
		Source:  a.SourceName,
	}
}
