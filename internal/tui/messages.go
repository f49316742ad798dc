package tui

import (
	"github.com/riziyan/apdetax/internal/api"
	"github.com/riziyan/apdetax/internal/search"
)

// Fetch completions carry the sequence number of the fetch that produced
// them; the matching stream discards anything stale. Detail, transcript and
// the chat-adjacent completions are keyed on the video ID instead, since a
// new selection supersedes them.

type videoResultsMsg struct {
	seq    int
	videos []api.Video
	err    error
}

type webResultsMsg struct {
	seq      int
	items    []api.WebResult
	next     *int
	appended bool
	err      error
}

type newsLoadedMsg struct {
	seq      int
	articles []api.Article
	err      error
}

type detailLoadedMsg struct {
	id      string
	details *api.VideoDetails
	err     error
}

type transcriptLoadedMsg struct {
	id      string
	entries []api.TranscriptEntry
	err     error
}

type chatReplyMsg struct {
	reply string
	err   error
}

type analysisDoneMsg struct {
	id       string
	analysis string
	err      error
}

type summaryDoneMsg struct {
	id      string
	summary string
	err     error
}

type authCheckedMsg struct {
	status *api.AuthStatus
	err    error
}

type loggedOutMsg struct {
	err error
}

type finderResultsMsg struct {
	results []*search.Result
}

type detailRenderedMsg struct {
	content string
	reset   bool
}

type chatRenderedMsg struct {
	content string
}

type errorMsg struct {
	err error
}
