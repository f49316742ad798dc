package tui

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riziyan/apdetax/internal/api"
	"github.com/riziyan/apdetax/internal/config"
)

func newTestApp(baseURL string) *App {
	cfg := config.TestConfig()
	if baseURL == "" {
		baseURL = cfg.API.BaseURL
	}
	client := api.NewClient(baseURL, 2*time.Second, nil)
	return NewApp(client, nil, cfg)
}

// runBatch executes a command tree synchronously and returns every message
// it produces. Commands in tests only ever hit httptest servers.
func runBatch(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runBatch(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func TestRunSearchEmptyQuerySkipsVideoAndWebFetches(t *testing.T) {
	app := newTestApp("")

	cmd := app.runSearch("   ")

	assert.Empty(t, app.session.Query)
	assert.False(t, app.videos.IsLoading)
	assert.False(t, app.web.IsLoading)
	assert.Empty(t, app.videos.Items)
	assert.Empty(t, app.web.Items)
	assert.True(t, app.news.IsLoading, "news refreshes even without a query")
	assert.Equal(t, 1, app.pendingFetches, "only the news fetch goes out")
	assert.NotNil(t, cmd)
}

func TestRunSearchFanOut(t *testing.T) {
	var paths []string
	var queries []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/youtubesearch":
			queries = append(queries, r.URL.Query().Get("q")+"|"+r.URL.Query().Get("order"))
			json.NewEncoder(w).Encode([]api.Video{{ID: "v1", Title: "Rust talk"}})
		case "/api/websearch":
			queries = append(queries, r.URL.Query().Get("q")+"|"+r.URL.Query().Get("start"))
			json.NewEncoder(w).Encode(map[string]any{
				"items":              []api.WebResult{{Title: "Rust docs", Link: "https://rust-lang.org"}},
				"nextPageStartIndex": 11,
			})
		case "/api/rssnews":
			json.NewEncoder(w).Encode([]api.Article{{ID: "n1", Title: "Rust 2.0", SourceName: "HackerDaily"}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	app := newTestApp(server.URL)
	cmd := app.runSearch("rust programming")

	assert.Equal(t, "rust programming", app.session.Query)
	assert.True(t, app.videos.IsLoading)
	assert.True(t, app.web.IsLoading)
	assert.True(t, app.news.IsLoading)
	assert.Equal(t, ViewResults, app.view)
	assert.Equal(t, 3, app.pendingFetches)

	for _, msg := range runBatch(cmd) {
		switch msg.(type) {
		case videoResultsMsg, webResultsMsg, newsLoadedMsg:
			model, _ := app.Update(msg)
			app = model.(*App)
		}
	}

	assert.ElementsMatch(t, []string{"/api/youtubesearch", "/api/websearch", "/api/rssnews"}, paths)
	assert.Contains(t, queries, "rust programming|relevance")
	assert.Contains(t, queries, "rust programming|1")

	assert.False(t, app.videos.IsLoading)
	assert.False(t, app.web.IsLoading)
	assert.False(t, app.news.IsLoading)
	assert.Len(t, app.videos.Items, 1)
	assert.Len(t, app.web.Items, 1)
	assert.Len(t, app.news.Items, 1)
	require.NotNil(t, app.webCursor)
	assert.Equal(t, 11, *app.webCursor)
	assert.Equal(t, 0, app.pendingFetches)
}

func TestStreamFailuresAreIsolated(t *testing.T) {
	app := newTestApp("")
	app.runSearch("rust")

	model, _ := app.Update(videoResultsMsg{seq: 1, err: errors.New("quota exceeded")})
	app = model.(*App)
	next := 11
	model, _ = app.Update(webResultsMsg{seq: 1, items: []api.WebResult{{Title: "hit"}}, next: &next})
	app = model.(*App)

	assert.Equal(t, "quota exceeded", app.videos.Err)
	assert.Empty(t, app.videos.Items)
	assert.False(t, app.videos.IsLoading)

	assert.Empty(t, app.web.Err, "a sibling failure never touches this stream")
	assert.Len(t, app.web.Items, 1)
	assert.True(t, app.news.IsLoading, "news is still in flight")
}

func TestGoHomeOrphansInFlightCompletions(t *testing.T) {
	app := newTestApp("")
	app.runSearch("rust")
	app.goHome()

	model, _ := app.Update(videoResultsMsg{seq: 1, videos: []api.Video{{ID: "late"}}})
	app = model.(*App)

	assert.Empty(t, app.videos.Items, "completion from before the reset must be discarded")
	assert.False(t, app.videos.IsLoading)
	assert.Equal(t, ViewHome, app.view)
	assert.Empty(t, app.session.Query)
}

func TestSupersededSearchDiscardsOldResults(t *testing.T) {
	app := newTestApp("")
	app.runSearch("first")
	app.runSearch("second")

	model, _ := app.Update(videoResultsMsg{seq: 1, videos: []api.Video{{ID: "stale"}}})
	app = model.(*App)
	assert.Empty(t, app.videos.Items)
	assert.True(t, app.videos.IsLoading, "the second search is still pending")

	model, _ = app.Update(videoResultsMsg{seq: 2, videos: []api.Video{{ID: "fresh"}}})
	app = model.(*App)
	assert.Len(t, app.videos.Items, 1)
	assert.Equal(t, "fresh", app.videos.Items[0].ID)
}

func TestLoadMoreWebAppendsAndGuards(t *testing.T) {
	app := newTestApp("")
	app.runSearch("rust")

	next := 11
	model, _ := app.Update(webResultsMsg{seq: 1, items: []api.WebResult{{Title: "A"}, {Title: "B"}}, next: &next})
	app = model.(*App)
	require.NotNil(t, app.webCursor)

	cmd := app.loadMoreWeb()
	require.NotNil(t, cmd)
	assert.True(t, app.web.IsLoading)

	assert.Nil(t, app.loadMoreWeb(), "no-op while a web fetch is in flight")

	model, _ = app.Update(webResultsMsg{seq: 2, items: []api.WebResult{{Title: "C"}}, next: nil, appended: true})
	app = model.(*App)

	require.Len(t, app.web.Items, 3)
	assert.Equal(t, "A", app.web.Items[0].Title)
	assert.Equal(t, "C", app.web.Items[2].Title)
	assert.Nil(t, app.webCursor, "exhausted cursor hides load-more")
	assert.Nil(t, app.loadMoreWeb(), "no-op without a cursor")

	app.webCursor = &next
	app.session.Query = ""
	assert.Nil(t, app.loadMoreWeb(), "no-op without a query")
}

func TestSendMessageSingleFlight(t *testing.T) {
	app := newTestApp("")

	assert.Nil(t, app.sendMessage("   "), "blank input is rejected")

	cmd := app.sendMessage("hi")
	require.NotNil(t, cmd)
	assert.True(t, app.chat.IsSending)
	require.Len(t, app.chat.Turns, 1)
	assert.Equal(t, RoleUser, app.chat.Turns[0].Role)

	assert.Nil(t, app.sendMessage("again"), "second send while in flight is ignored")
	assert.Len(t, app.chat.Turns, 1)

	model, _ := app.Update(chatReplyMsg{reply: "hello there"})
	app = model.(*App)
	assert.False(t, app.chat.IsSending)
	require.Len(t, app.chat.Turns, 2)
	assert.Equal(t, RoleAssistant, app.chat.Turns[1].Role)
	assert.Equal(t, "hello there", app.chat.Turns[1].Content)
}

func TestChatFailureAppendsSystemTurn(t *testing.T) {
	app := newTestApp("")
	app.sendMessage("hi")

	model, _ := app.Update(chatReplyMsg{err: errors.New("model overloaded")})
	app = model.(*App)

	assert.False(t, app.chat.IsSending)
	require.Len(t, app.chat.Turns, 2)
	assert.Equal(t, RoleSystem, app.chat.Turns[1].Role)
	assert.Contains(t, app.chat.Turns[1].Content, "model overloaded")
}

func TestReselectionStartsWithEmptyTranscript(t *testing.T) {
	app := newTestApp("")

	app.selectVideo("abc123")
	app.selection.IsLoading = false
	app.loadTranscript()
	model, _ := app.Update(transcriptLoadedMsg{id: "abc123", entries: []api.TranscriptEntry{{Text: "hi"}}})
	app = model.(*App)
	assert.True(t, app.transcript.Loaded())

	app.clearSelection()
	assert.Empty(t, app.selection.ID)
	assert.False(t, app.transcript.Loaded())

	app.selectVideo("abc123")
	assert.False(t, app.transcript.Loaded(), "no stale transcript carry-over on reselection")
}

func TestStaleDetailAndTranscriptCompletionsDiscarded(t *testing.T) {
	app := newTestApp("")

	app.selectVideo("first")
	app.selectVideo("second")

	model, _ := app.Update(detailLoadedMsg{id: "first", details: &api.VideoDetails{}})
	app = model.(*App)
	assert.True(t, app.selection.IsLoading, "completion for the previous selection is ignored")
	assert.Nil(t, app.selection.Details)

	model, _ = app.Update(detailLoadedMsg{id: "second", details: &api.VideoDetails{Video: api.Video{ID: "second"}}})
	app = model.(*App)
	assert.False(t, app.selection.IsLoading)
	require.NotNil(t, app.selection.Details)
}

func TestSummarizePrefersLoadedTranscript(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"summary": "ok"})
	}))
	defer server.Close()

	app := newTestApp(server.URL)
	app.selection = Selection{ID: "abc123"}
	app.transcript = Transcript{Entries: []api.TranscriptEntry{{Text: "part one"}, {Text: "part two"}}}

	for _, msg := range runBatch(app.summarizeVideo()) {
		if _, ok := msg.(summaryDoneMsg); ok {
			model, _ := app.Update(msg)
			app = model.(*App)
		}
	}
	assert.Equal(t, []string{"/api/summarize-text"}, paths)

	paths = nil
	app.transcript = Transcript{}
	for _, msg := range runBatch(app.summarizeVideo()) {
		if _, ok := msg.(summaryDoneMsg); ok {
			model, _ := app.Update(msg)
			app = model.(*App)
		}
	}
	assert.Equal(t, []string{"/api/summarize-direct"}, paths)
}

func TestSummaryTranscriptErrorsGetFriendlyMessage(t *testing.T) {
	app := newTestApp("")

	model, _ := app.Update(summaryDoneMsg{id: "abc", err: errors.New("Transcript is disabled on this video")})
	app = model.(*App)
	require.NotEmpty(t, app.chat.Turns)
	last := app.chat.Turns[len(app.chat.Turns)-1]
	assert.Equal(t, RoleSystem, last.Role)
	assert.Contains(t, last.Content, "Transcript unavailable or disabled")

	model, _ = app.Update(summaryDoneMsg{id: "abc", err: errors.New("backend exploded")})
	app = model.(*App)
	last = app.chat.Turns[len(app.chat.Turns)-1]
	assert.Equal(t, "backend exploded", last.Content)
}

func TestAnalyzeCommentsAppendsOptimisticTurn(t *testing.T) {
	app := newTestApp("")
	app.selection = Selection{ID: "abc123"}

	cmd := app.analyzeComments()
	require.NotNil(t, cmd)
	require.Len(t, app.chat.Turns, 1)
	assert.Equal(t, RoleSystem, app.chat.Turns[0].Role)

	model, _ := app.Update(analysisDoneMsg{id: "abc123", analysis: "mostly positive"})
	app = model.(*App)
	require.Len(t, app.chat.Turns, 2)
	assert.Equal(t, RoleAssistant, app.chat.Turns[1].Role)
	assert.Contains(t, app.chat.Turns[1].Content, "mostly positive")
}

func TestAuthFailureMeansLoggedOut(t *testing.T) {
	app := newTestApp("")
	assert.True(t, app.auth.IsLoading)

	model, _ := app.Update(authCheckedMsg{err: errors.New("connection refused")})
	app = model.(*App)

	assert.False(t, app.auth.IsLoading)
	assert.False(t, app.auth.LoggedIn)
	assert.Nil(t, app.err, "auth failures never surface as error banners")
}

func TestLogoutFailureLeavesSessionUntouched(t *testing.T) {
	app := newTestApp("")
	app.auth = Auth{LoggedIn: true, User: &api.User{Name: "Riz"}}

	model, _ := app.Update(loggedOutMsg{err: errors.New("session store down")})
	app = model.(*App)
	assert.True(t, app.auth.LoggedIn, "failed logout keeps the session")

	model, _ = app.Update(loggedOutMsg{})
	app = model.(*App)
	assert.False(t, app.auth.LoggedIn)
	assert.Nil(t, app.auth.User)
}

func TestViewTransitions(t *testing.T) {
	tests := []struct {
		name         string
		initialView  View
		msg          tea.Msg
		expectedView View
		setupFunc    func(*App)
	}{
		{
			name:         "ViewDetail to ViewResults on Escape",
			initialView:  ViewDetail,
			msg:          tea.KeyMsg{Type: tea.KeyEsc},
			expectedView: ViewResults,
		},
		{
			name:         "ViewResults to ViewHome on Escape",
			initialView:  ViewResults,
			msg:          tea.KeyMsg{Type: tea.KeyEsc},
			expectedView: ViewHome,
		},
		{
			name:         "ViewResults to ViewFinder on ctrl+f",
			initialView:  ViewResults,
			msg:          tea.KeyMsg{Type: tea.KeyCtrlF},
			expectedView: ViewFinder,
		},
		{
			name:         "ViewFinder back to previous on Escape",
			initialView:  ViewFinder,
			msg:          tea.KeyMsg{Type: tea.KeyEsc},
			expectedView: ViewResults,
			setupFunc: func(a *App) {
				a.previousView = ViewResults
			},
		},
		{
			name:         "ViewResults to ViewChat on ctrl+k",
			initialView:  ViewResults,
			msg:          tea.KeyMsg{Type: tea.KeyCtrlK},
			expectedView: ViewChat,
		},
		{
			name:         "ViewChat back to previous on Escape",
			initialView:  ViewChat,
			msg:          tea.KeyMsg{Type: tea.KeyEsc},
			expectedView: ViewDetail,
			setupFunc: func(a *App) {
				a.previousView = ViewDetail
				a.chatInput.Blur()
			},
		},
		{
			name:         "ViewSources to ViewResults on Escape",
			initialView:  ViewSources,
			msg:          tea.KeyMsg{Type: tea.KeyEsc},
			expectedView: ViewResults,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp("")
			app.view = tt.initialView
			app.searchInput.Blur()

			if tt.setupFunc != nil {
				tt.setupFunc(app)
			}

			updatedModel, _ := app.Update(tt.msg)
			updatedApp, ok := updatedModel.(*App)
			require.True(t, ok, "model should be *App")

			assert.Equal(t, tt.expectedView, updatedApp.view)
		})
	}
}

func TestTabSwitchingInResults(t *testing.T) {
	app := newTestApp("")
	app.view = ViewResults
	app.searchInput.Blur()

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = model.(*App)
	assert.Equal(t, TabWeb, app.tab)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = model.(*App)
	assert.Equal(t, TabNews, app.tab)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = model.(*App)
	assert.Equal(t, TabVideos, app.tab, "tab cycles back around")

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	app = model.(*App)
	assert.Equal(t, TabNews, app.tab)
}

func TestNewsRefreshKeepsItemsVisibleWhileLoading(t *testing.T) {
	app := newTestApp("")

	require.NotNil(t, app.refreshNews())
	model, _ := app.Update(newsLoadedMsg{seq: app.news.seq, articles: []api.Article{{ID: "n1", Title: "old", SourceName: "X"}}})
	app = model.(*App)
	require.Len(t, app.news.Items, 1)

	cmd := app.refreshNews()
	require.NotNil(t, cmd)
	assert.True(t, app.news.IsLoading)
	assert.Len(t, app.news.Items, 1, "old headlines stay up during a refresh")

	model, _ = app.Update(newsLoadedMsg{seq: app.news.seq, articles: []api.Article{{ID: "n2", Title: "new", SourceName: "Y"}}})
	app = model.(*App)
	require.Len(t, app.news.Items, 1)
	assert.Equal(t, "n2", app.news.Items[0].ID, "refresh replaces, never appends")
}
