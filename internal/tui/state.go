package tui

import (
	"strings"

	"github.com/riziyan/apdetax/internal/api"
)

// Stream tracks one backend data source: its items, a loading flag, and a
// terminal error message. IsLoading and a non-empty Err are mutually
// exclusive once a fetch settles.
//
// Every fetch is tagged with a sequence number taken at start; a completion
// carrying an older sequence is discarded, so a superseded search or a
// navigation home can never overwrite fresher state.
type Stream[T any] struct {
	Items     []T
	IsLoading bool
	Err       string

	seq int
}

// StartFetch clears the stream and marks it loading. Returns the sequence
// number the completion must echo back.
func (s *Stream[T]) StartFetch() int {
	s.seq++
	s.Items = nil
	s.IsLoading = true
	s.Err = ""
	return s.seq
}

// BeginReload marks the stream loading without dropping what is already on
// screen. Used for news refreshes, where the old list stays visible until
// the replacement arrives.
func (s *Stream[T]) BeginReload() int {
	s.seq++
	s.IsLoading = true
	s.Err = ""
	return s.seq
}

// Invalidate empties the stream and orphans any in-flight fetch.
func (s *Stream[T]) Invalidate() {
	s.seq++
	s.Items = nil
	s.IsLoading = false
	s.Err = ""
}

// Stale reports whether a completion tagged with seq has been superseded.
func (s *Stream[T]) Stale(seq int) bool { return seq != s.seq }

// Settle commits an initial-fetch completion: items replace the list on
// success, an error clears it. Returns false when the completion is stale
// and was discarded.
func (s *Stream[T]) Settle(seq int, items []T, err error) bool {
	if s.Stale(seq) {
		return false
	}
	s.IsLoading = false
	if err != nil {
		s.Err = err.Error()
		s.Items = nil
		return true
	}
	s.Err = ""
	s.Items = items
	return true
}

// SettleAppend commits a load-more completion: new items extend the list.
// On failure the already-loaded items stay put.
func (s *Stream[T]) SettleAppend(seq int, items []T, err error) bool {
	if s.Stale(seq) {
		return false
	}
	s.IsLoading = false
	if err != nil {
		s.Err = err.Error()
		return true
	}
	s.Err = ""
	s.Items = append(s.Items, items...)
	return true
}

// SearchSession is the query all three result streams are fetched against.
type SearchSession struct {
	Query  string
	Order  string
	Region string
}

// Active reports whether a search has been submitted.
func (s SearchSession) Active() bool { return s.Query != "" }

// Selection is the video currently opened in the detail view, at most one
// at a time.
type Selection struct {
	ID        string
	Details   *api.VideoDetails
	IsLoading bool
	Err       string
}

// Transcript holds the caption track for the current selection. It is
// cleared whenever the selection changes.
type Transcript struct {
	Entries   []api.TranscriptEntry
	IsLoading bool
	Err       string
}

// Loaded reports whether a non-empty transcript is available locally.
func (t Transcript) Loaded() bool { return len(t.Entries) > 0 }

// JoinedText concatenates all entry texts with single spaces, the form the
// text-summarization endpoint expects.
func (t Transcript) JoinedText() string {
	parts := make([]string, 0, len(t.Entries))
	for _, e := range t.Entries {
		parts = append(parts, e.Text)
	}
	return strings.Join(parts, " ")
}

// Role attributes a chat turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Turn is one entry in the chat thread.
type Turn struct {
	Role    Role
	Content string
}

// ChatThread is the append-only conversation with the assistant. It
// survives searches and navigation; only Clear drops it.
type ChatThread struct {
	Turns     []Turn
	IsSending bool
}

func (c *ChatThread) Append(role Role, content string) {
	c.Turns = append(c.Turns, Turn{Role: role, Content: content})
}

func (c *ChatThread) Clear() {
	c.Turns = nil
}

// Auth is the session state resolved once at startup and mutated only by
// explicit login/logout.
type Auth struct {
	IsLoading bool
	LoggedIn  bool
	User      *api.User
}

// NewsFilter drives render-time filtering and paging of the news stream.
// The filtered view is always recomputed from the full article list; it is
// never stored.
type NewsFilter struct {
	Sources  map[string]bool
	PageSize int
	Page     int
}

func NewNewsFilter(pageSize int) NewsFilter {
	return NewsFilter{
		Sources:  make(map[string]bool),
		PageSize: pageSize,
		Page:     1,
	}
}

// Toggle flips a source in or out of the selected set. Any filter change
// snaps the page back to 1 so the user never lands on a partial page.
func (f *NewsFilter) Toggle(source string) {
	if f.Sources == nil {
		f.Sources = make(map[string]bool)
	}
	if f.Sources[source] {
		delete(f.Sources, source)
	} else {
		f.Sources[source] = true
	}
	f.Page = 1
}

// NextPage advances the local pagination window.
func (f *NewsFilter) NextPage() {
	f.Page++
}

// Reset drops all selected sources and returns to page 1.
func (f *NewsFilter) Reset() {
	f.Sources = make(map[string]bool)
	f.Page = 1
}
