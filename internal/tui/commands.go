package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riziyan/apdetax/internal/debuglog"
	"github.com/riziyan/apdetax/internal/search"
)

// Commands run on their own goroutines; everything they learn comes back
// through the Update loop as a message. The client carries the program-wide
// timeout, so context.Background is fine here.

func (a *App) fetchVideos(seq int, query, order, region string) tea.Cmd {
	return func() tea.Msg {
		videos, err := a.client.SearchVideos(context.Background(), query, order, region)
		return videoResultsMsg{seq: seq, videos: videos, err: err}
	}
}

func (a *App) fetchWeb(seq int, query string, start int, appended bool) tea.Cmd {
	return func() tea.Msg {
		page, err := a.client.SearchWeb(context.Background(), query, start)
		if err != nil {
			return webResultsMsg{seq: seq, appended: appended, err: err}
		}
		return webResultsMsg{seq: seq, items: page.Items, next: page.NextStart, appended: appended}
	}
}

func (a *App) fetchNews(seq int) tea.Cmd {
	return func() tea.Msg {
		articles, err := a.client.NewsFeed(context.Background())
		return newsLoadedMsg{seq: seq, articles: articles, err: err}
	}
}

func (a *App) fetchDetails(id string) tea.Cmd {
	return func() tea.Msg {
		details, err := a.client.VideoDetails(context.Background(), id)
		return detailLoadedMsg{id: id, details: details, err: err}
	}
}

func (a *App) fetchTranscript(id string) tea.Cmd {
	return func() tea.Msg {
		entries, err := a.client.Transcript(context.Background(), id)
		return transcriptLoadedMsg{id: id, entries: entries, err: err}
	}
}

func (a *App) sendChat(text string) tea.Cmd {
	return func() tea.Msg {
		reply, err := a.client.Chat(context.Background(), text)
		return chatReplyMsg{reply: reply, err: err}
	}
}

func (a *App) runAnalysis(id string) tea.Cmd {
	return func() tea.Msg {
		analysis, err := a.client.AnalyzeComments(context.Background(), id)
		return analysisDoneMsg{id: id, analysis: analysis, err: err}
	}
}

func (a *App) summarizeFromText(id, text string) tea.Cmd {
	return func() tea.Msg {
		summary, err := a.client.SummarizeText(context.Background(), text)
		return summaryDoneMsg{id: id, summary: summary, err: err}
	}
}

func (a *App) summarizeDirect(id string) tea.Cmd {
	return func() tea.Msg {
		summary, err := a.client.SummarizeVideo(context.Background(), id)
		return summaryDoneMsg{id: id, summary: summary, err: err}
	}
}

func (a *App) checkAuth() tea.Cmd {
	return func() tea.Msg {
		status, err := a.client.Profile(context.Background())
		return authCheckedMsg{status: status, err: err}
	}
}

func (a *App) doLogout() tea.Cmd {
	return func() tea.Msg {
		return loggedOutMsg{err: a.client.Logout(context.Background())}
	}
}

// indexDocs feeds freshly arrived results into the session finder. Indexing
// failures only ever cost finder coverage, so they are logged and dropped.
func (a *App) indexDocs(docs []search.Document) tea.Cmd {
	if a.finder == nil || len(docs) == 0 {
		return nil
	}
	return func() tea.Msg {
		if err := a.finder.Index(docs); err != nil {
			debuglog.Warnf("finder indexing failed: %v", err)
		}
		return nil
	}
}

func (a *App) runFinder(query string) tea.Cmd {
	if a.finder == nil {
		return nil
	}
	return func() tea.Msg {
		results, err := a.finder.Search(query, 20)
		if err != nil {
			debuglog.Warnf("finder query failed: %v", err)
			return errorMsg{err: wrapErr("session finder", err)}
		}
		return finderResultsMsg{results: results}
	}
}
