package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/riziyan/apdetax/internal/api"
	"github.com/riziyan/apdetax/internal/config"
	"github.com/riziyan/apdetax/internal/debuglog"
	"github.com/riziyan/apdetax/internal/search"
)

// App owns every piece of cross-cutting state: the search session, the
// three result streams, the selection with its transcript, the chat thread
// and the auth session. All mutations happen inside Update; commands only
// report back through messages.
type App struct {
	config     *config.Config
	client     *api.Client
	finder     search.Searcher
	keyHandler *KeyHandler

	session    SearchSession
	videos     Stream[api.Video]
	web        Stream[api.WebResult]
	webCursor  *int
	news       Stream[api.Article]
	newsFilter NewsFilter
	selection  Selection
	transcript Transcript
	chat       ChatThread
	auth       Auth

	// Settle tracking for the initial fan-out, logging only; rendering is
	// gated per stream, never on the join.
	pendingFetches int
	fanoutErrors   int

	view         View
	previousView View
	tab          ResultTab

	videoList   list.Model
	webList     list.Model
	newsList    list.Model
	sourceList  list.Model
	finderList  list.Model
	searchInput textinput.Model
	chatInput   textinput.Model
	finderInput textinput.Model
	viewport    viewport.Model
	chatView    viewport.Model
	spinner     spinner.Model

	width  int
	height int
	status string
	err    error

	glamourRenderer *glamour.TermRenderer
	rendererWidth   int
}

func NewApp(client *api.Client, finder search.Searcher, cfg *config.Config) *App {
	videoList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	videoList.Title = "› videos"
	videoList.SetShowStatusBar(false)
	videoList.SetFilteringEnabled(true)
	videoList.SetShowHelp(true)

	webList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	webList.Title = "› web"
	webList.SetShowStatusBar(false)
	webList.SetFilteringEnabled(true)
	webList.SetShowHelp(true)

	newsList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	newsList.Title = "› news"
	newsList.SetShowStatusBar(false)
	newsList.SetFilteringEnabled(false)
	newsList.SetShowHelp(true)

	sourceList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	sourceList.Title = "› news sources"
	sourceList.SetShowStatusBar(false)
	sourceList.SetFilteringEnabled(false)
	sourceList.SetShowHelp(false)

	finderList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	finderList.Title = "› session finder"
	finderList.SetShowStatusBar(false)
	finderList.SetShowHelp(false)
	finderList.SetFilteringEnabled(false)

	si := textinput.New()
	si.Placeholder = "Search videos, the web and news..."
	si.Focus()

	ci := textinput.New()
	ci.Placeholder = "Ask the assistant..."

	fi := textinput.New()
	fi.Placeholder = "Find in this session's results..."

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(AccentColor)

	app := &App{
		config:       cfg,
		client:       client,
		finder:       finder,
		videoList:    videoList,
		webList:      webList,
		newsList:     newsList,
		sourceList:   sourceList,
		finderList:   finderList,
		searchInput:  si,
		chatInput:    ci,
		finderInput:  fi,
		viewport:     viewport.New(0, 0),
		chatView:     viewport.New(0, 0),
		spinner:      sp,
		view:         ViewHome,
		previousView: ViewHome,
		tab:          TabVideos,
		session: SearchSession{
			Order:  cfg.Search.DefaultOrder,
			Region: cfg.Search.DefaultRegion,
		},
		newsFilter: NewNewsFilter(cfg.News.PageSize),
		auth:       Auth{IsLoading: true},
	}

	app.keyHandler = NewKeyHandler(app)

	return app
}

func (a *App) getRenderer() (*glamour.TermRenderer, error) {
	wordWrapWidth := (a.width * 9) / 10
	if wordWrapWidth > 120 {
		wordWrapWidth = 120
	}
	if wordWrapWidth < 40 {
		wordWrapWidth = 40
	}
	if a.width > 0 && a.width < 50 {
		wordWrapWidth = a.width - 4
		if wordWrapWidth < 20 {
			wordWrapWidth = 20
		}
	}

	if a.glamourRenderer == nil || abs(a.rendererWidth-wordWrapWidth) > 10 {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wordWrapWidth),
		)
		if err != nil {
			return nil, err
		}
		a.glamourRenderer = r
		a.rendererWidth = wordWrapWidth
	}

	return a.glamourRenderer, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.checkAuth(),
		a.refreshNews(),
		tea.EnterAltScreen,
	)
}

func (a *App) setStatus(s string) {
	a.status = s
	a.err = nil
}

// --- named state operations -------------------------------------------

// runSearch is the fan-out entry point. An empty query clears the video
// and web streams without issuing their fetches; news refreshes either way
// because it has no query dependency.
func (a *App) runSearch(raw string) tea.Cmd {
	query := strings.TrimSpace(raw)
	a.newsFilter.Page = 1

	if query == "" {
		a.session.Query = ""
		a.videos.Invalidate()
		a.web.Invalidate()
		a.webCursor = nil
		a.videoList.SetItems([]list.Item{})
		a.webList.SetItems([]list.Item{})
		nseq := a.news.BeginReload()
		a.pendingFetches = 1
		a.fanoutErrors = 0
		a.setStatus(MsgRefreshingNews)
		return tea.Batch(a.spinner.Tick, a.fetchNews(nseq))
	}

	a.session.Query = query
	vseq := a.videos.StartFetch()
	wseq := a.web.StartFetch()
	a.webCursor = nil
	nseq := a.news.BeginReload()
	a.videoList.SetItems([]list.Item{})
	a.webList.SetItems([]list.Item{})
	a.pendingFetches = 3
	a.fanoutErrors = 0
	a.view = ViewResults
	a.tab = TabVideos
	a.setStatus(MsgSearching)
	debuglog.WithFields(map[string]interface{}{"query": query, "order": a.session.Order}).
		Infof("search fan-out started")

	return tea.Batch(
		a.spinner.Tick,
		a.fetchVideos(vseq, query, a.session.Order, a.session.Region),
		a.fetchWeb(wseq, query, 1, false),
		a.fetchNews(nseq),
	)
}

// loadMoreWeb appends the next web page. Without a cursor, with a fetch in
// flight, or without a query it is a deliberate no-op.
func (a *App) loadMoreWeb() tea.Cmd {
	if a.webCursor == nil || a.web.IsLoading || !a.session.Active() {
		return nil
	}
	start := *a.webCursor
	seq := a.web.BeginReload()
	a.setStatus(MsgLoadingMore)
	return tea.Batch(a.spinner.Tick, a.fetchWeb(seq, a.session.Query, start, true))
}

// loadMoreNews is purely local: the full list is already here, the page
// window just widens.
func (a *App) loadMoreNews() {
	a.newsFilter.NextPage()
	a.syncNewsList()
}

func (a *App) refreshNews() tea.Cmd {
	seq := a.news.BeginReload()
	a.setStatus(MsgRefreshingNews)
	return tea.Batch(a.spinner.Tick, a.fetchNews(seq))
}

func (a *App) toggleSource(source string) {
	a.newsFilter.Toggle(source)
	a.syncNewsList()
	a.syncSourceList()
}

func (a *App) selectVideo(id string) tea.Cmd {
	a.selection = Selection{ID: id, IsLoading: true}
	a.transcript = Transcript{}
	a.previousView = a.view
	a.view = ViewDetail
	a.viewport.SetContent("")
	a.setStatus(MsgLoadingDetails)
	return tea.Batch(a.spinner.Tick, a.fetchDetails(id))
}

func (a *App) clearSelection() {
	a.selection = Selection{}
	a.transcript = Transcript{}
	a.view = ViewResults
}

func (a *App) loadTranscript() tea.Cmd {
	if a.selection.ID == "" || a.transcript.IsLoading {
		return nil
	}
	a.transcript = Transcript{IsLoading: true}
	a.setStatus(MsgLoadingTrans)
	return tea.Batch(a.spinner.Tick, a.fetchTranscript(a.selection.ID))
}

// analyzeComments drops an optimistic system turn into the chat thread
// before the request goes out; the result lands as a later turn.
func (a *App) analyzeComments() tea.Cmd {
	if a.selection.ID == "" {
		return nil
	}
	a.chat.Append(RoleSystem, "Analyzing the comment section, this can take a moment…")
	a.setStatus(MsgAnalyzing)
	return tea.Batch(a.spinner.Tick, a.runAnalysis(a.selection.ID), a.renderChat())
}

// summarizeVideo prefers a transcript that is already loaded; only when
// none is available does the backend fetch its own.
func (a *App) summarizeVideo() tea.Cmd {
	if a.selection.ID == "" {
		return nil
	}
	a.setStatus(MsgSummarizing)
	if a.transcript.Loaded() {
		return tea.Batch(a.spinner.Tick, a.summarizeFromText(a.selection.ID, a.transcript.JoinedText()))
	}
	return tea.Batch(a.spinner.Tick, a.summarizeDirect(a.selection.ID))
}

// sendMessage appends the user turn immediately and gates on IsSending:
// one chat request in flight at a time.
func (a *App) sendMessage(raw string) tea.Cmd {
	text := strings.TrimSpace(raw)
	if text == "" || a.chat.IsSending {
		return nil
	}
	a.chat.Append(RoleUser, text)
	a.chat.IsSending = true
	a.chatInput.Reset()
	a.setStatus(MsgSending)
	return tea.Batch(a.spinner.Tick, a.sendChat(text), a.renderChat())
}

// goHome resets everything except the chat thread and the auth session.
// In-flight completions from before the reset are orphaned by the sequence
// bumps and silently discarded when they arrive.
func (a *App) goHome() tea.Cmd {
	a.session = SearchSession{
		Order:  a.config.Search.DefaultOrder,
		Region: a.config.Search.DefaultRegion,
	}
	a.videos.Invalidate()
	a.web.Invalidate()
	a.webCursor = nil
	a.news.Invalidate()
	a.newsFilter.Reset()
	a.selection = Selection{}
	a.transcript = Transcript{}
	a.pendingFetches = 0
	a.videoList.SetItems([]list.Item{})
	a.webList.SetItems([]list.Item{})
	a.newsList.SetItems([]list.Item{})
	a.tab = TabVideos
	a.view = ViewHome
	a.status = ""
	a.err = nil
	a.searchInput.Reset()
	a.searchInput.Focus()
	if a.finder != nil {
		if err := a.finder.Reset(); err != nil {
			debuglog.Warnf("finder reset failed: %v", err)
		}
	}
	return a.refreshNews()
}

func (a *App) logout() tea.Cmd {
	if !a.auth.LoggedIn {
		return nil
	}
	return a.doLogout()
}

// --- update loop -------------------------------------------------------

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		listHeight := msg.Height - 6
		if listHeight < 5 {
			listHeight = 5
		}
		a.videoList.SetSize(msg.Width, listHeight)
		a.webList.SetSize(msg.Width, listHeight)
		a.newsList.SetSize(msg.Width, listHeight)
		a.sourceList.SetSize(msg.Width, listHeight)

		finderListHeight := msg.Height - 10
		if finderListHeight < 5 {
			finderListHeight = 5
		}
		a.finderList.SetSize(msg.Width, finderListHeight)

		a.viewport.Width = msg.Width
		a.viewport.Height = msg.Height - 3
		a.chatView.Width = msg.Width
		a.chatView.Height = msg.Height - 6

		inputWidth := msg.Width - 4
		if inputWidth < 20 {
			inputWidth = msg.Width
		}
		a.searchInput.Width = inputWidth
		a.chatInput.Width = inputWidth

	case tea.KeyMsg:
		return a.keyHandler.HandleKey(msg)

	case spinner.TickMsg:
		if a.anythingLoading() {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case videoResultsMsg:
		if a.videos.Settle(msg.seq, msg.videos, msg.err) {
			a.settleFetch(msg.err != nil)
			if msg.err == nil {
				items := make([]list.Item, len(a.videos.Items))
				docs := make([]search.Document, 0, len(a.videos.Items))
				for i, v := range a.videos.Items {
					items[i] = videoItem{video: v}
					docs = append(docs, search.FromVideo(v))
				}
				a.videoList.SetItems(items)
				cmds = append(cmds, a.indexDocs(docs))
			} else {
				a.videoList.SetItems([]list.Item{})
			}
		}

	case webResultsMsg:
		var committed bool
		if msg.appended {
			committed = a.web.SettleAppend(msg.seq, msg.items, msg.err)
		} else {
			committed = a.web.Settle(msg.seq, msg.items, msg.err)
		}
		if committed {
			if !msg.appended {
				a.settleFetch(msg.err != nil)
			}
			if msg.err == nil {
				a.webCursor = msg.next
				items := make([]list.Item, len(a.web.Items))
				for i, w := range a.web.Items {
					items[i] = webItem{result: w}
				}
				a.webList.SetItems(items)
				docs := make([]search.Document, 0, len(msg.items))
				for _, w := range msg.items {
					docs = append(docs, search.FromWebResult(w))
				}
				cmds = append(cmds, a.indexDocs(docs))
				if msg.appended {
					a.setStatus(MsgResultsCount(len(a.web.Items)))
				}
			} else if !msg.appended {
				a.webList.SetItems([]list.Item{})
				a.webCursor = nil
			}
		}

	case newsLoadedMsg:
		if a.news.Settle(msg.seq, msg.articles, msg.err) {
			a.settleFetch(msg.err != nil)
			a.syncNewsList()
			a.syncSourceList()
			if msg.err == nil {
				docs := make([]search.Document, 0, len(msg.articles))
				for _, art := range msg.articles {
					docs = append(docs, search.FromArticle(art))
				}
				cmds = append(cmds, a.indexDocs(docs))
			}
		}

	case detailLoadedMsg:
		if msg.id == a.selection.ID && a.selection.IsLoading {
			a.selection.IsLoading = false
			if msg.err != nil {
				a.selection.Err = msg.err.Error()
			} else {
				a.selection.Details = msg.details
				a.status = ""
				cmds = append(cmds, a.renderDetail(true))
			}
		}

	case transcriptLoadedMsg:
		if msg.id == a.selection.ID && a.transcript.IsLoading {
			a.transcript.IsLoading = false
			if msg.err != nil {
				a.transcript.Err = msg.err.Error()
			} else {
				a.transcript.Entries = msg.entries
				a.status = ""
				cmds = append(cmds, a.renderDetail(false))
			}
		}

	case chatReplyMsg:
		a.chat.IsSending = false
		if msg.err != nil {
			a.chat.Append(RoleSystem, "Message failed: "+msg.err.Error())
		} else {
			a.chat.Append(RoleAssistant, msg.reply)
		}
		a.status = ""
		cmds = append(cmds, a.renderChat())

	case analysisDoneMsg:
		if msg.err != nil {
			a.chat.Append(RoleSystem, "Comment analysis failed: "+msg.err.Error())
		} else {
			a.chat.Append(RoleAssistant, "**Comment Analysis:**\n\n"+msg.analysis)
		}
		a.status = ""
		cmds = append(cmds, a.renderChat())

	case summaryDoneMsg:
		if msg.err != nil {
			a.chat.Append(RoleSystem, summaryFailureText(msg.err))
		} else {
			a.chat.Append(RoleAssistant, "**Video Summary:**\n\n"+msg.summary)
		}
		a.status = ""
		cmds = append(cmds, a.renderChat())

	case authCheckedMsg:
		a.auth.IsLoading = false
		if msg.err != nil || msg.status == nil || !msg.status.LoggedIn {
			// Any failure means logged out, never an error banner.
			if msg.err != nil {
				debuglog.Debugf("auth check failed, treating as logged out: %v", msg.err)
			}
			a.auth.LoggedIn = false
			a.auth.User = nil
		} else {
			a.auth.LoggedIn = true
			a.auth.User = msg.status.User
		}

	case loggedOutMsg:
		if msg.err != nil {
			// Non-fatal and silent to the user.
			debuglog.Warnf("logout failed: %v", msg.err)
		} else {
			a.auth = Auth{}
			a.setStatus(MsgLoggedOut)
		}

	case finderResultsMsg:
		if a.view == ViewFinder {
			items := make([]list.Item, len(msg.results))
			for i, r := range msg.results {
				items[i] = finderItem{result: r}
			}
			a.finderList.SetItems(items)
		}

	case detailRenderedMsg:
		if a.view == ViewDetail {
			a.viewport.SetContent(msg.content)
			if msg.reset {
				a.viewport.GotoTop()
			}
		}

	case chatRenderedMsg:
		a.chatView.SetContent(msg.content)
		a.chatView.GotoBottom()

	case errorMsg:
		a.err = msg.err
	}

	switch a.view {
	case ViewHome:
		newInput, cmd := a.searchInput.Update(msg)
		a.searchInput = newInput
		cmds = append(cmds, cmd)
	case ViewResults:
		switch a.tab {
		case TabVideos:
			newList, cmd := a.videoList.Update(msg)
			a.videoList = newList
			cmds = append(cmds, cmd)
		case TabWeb:
			newList, cmd := a.webList.Update(msg)
			a.webList = newList
			cmds = append(cmds, cmd)
		case TabNews:
			newList, cmd := a.newsList.Update(msg)
			a.newsList = newList
			cmds = append(cmds, cmd)
		}
	case ViewDetail:
		switch msg.(type) {
		case tea.KeyMsg, tea.WindowSizeMsg, tea.MouseMsg:
			newViewport, cmd := a.viewport.Update(msg)
			a.viewport = newViewport
			cmds = append(cmds, cmd)
		}
	case ViewChat:
		newInput, cmd := a.chatInput.Update(msg)
		a.chatInput = newInput
		cmds = append(cmds, cmd)
	case ViewSources:
		newList, cmd := a.sourceList.Update(msg)
		a.sourceList = newList
		cmds = append(cmds, cmd)
	case ViewFinder:
		newInput, cmd := a.finderInput.Update(msg)
		a.finderInput = newInput
		cmds = append(cmds, cmd)

		newList, listCmd := a.finderList.Update(msg)
		a.finderList = newList
		cmds = append(cmds, listCmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) settleFetch(failed bool) {
	if a.pendingFetches == 0 {
		return
	}
	if failed {
		a.fanoutErrors++
	}
	a.pendingFetches--
	if a.pendingFetches == 0 {
		debuglog.WithFields(map[string]interface{}{
			"query":  a.session.Query,
			"errors": a.fanoutErrors,
		}).Infof("search fan-out settled")
		a.setStatus(MsgSearchSettled(len(a.videos.Items), len(a.web.Items), len(a.news.Items), a.fanoutErrors))
	}
}

func (a *App) anythingLoading() bool {
	return a.videos.IsLoading || a.web.IsLoading || a.news.IsLoading ||
		a.selection.IsLoading || a.transcript.IsLoading || a.chat.IsSending
}

// syncNewsList rebuilds the visible news rows from the filtered, paged
// article set.
func (a *App) syncNewsList() {
	filtered := filterArticles(a.news.Items, a.newsFilter.Sources, a.session.Query)
	visible := visibleArticles(filtered, a.newsFilter.Page, a.newsFilter.PageSize)
	items := make([]list.Item, len(visible))
	for i, art := range visible {
		items[i] = newsItem{article: art}
	}
	a.newsList.SetItems(items)
}

func (a *App) syncSourceList() {
	sources := availableSources(a.news.Items)
	items := make([]list.Item, len(sources))
	for i, s := range sources {
		items[i] = sourceItem{name: s, selected: a.newsFilter.Sources[s]}
	}
	a.sourceList.SetItems(items)
}

// newsRemaining counts filtered articles beyond the current page window.
func (a *App) newsRemaining() int {
	filtered := filterArticles(a.news.Items, a.newsFilter.Sources, a.session.Query)
	return remainingArticles(filtered, a.newsFilter.Page, a.newsFilter.PageSize)
}

// renderDetail builds the markdown for the detail view: metadata, the
// description, loaded comments, and the transcript when present.
func (a *App) renderDetail(reset bool) tea.Cmd {
	details := a.selection.Details
	trans := a.transcript
	return func() tea.Msg {
		if details == nil {
			return detailRenderedMsg{content: "", reset: reset}
		}

		var b strings.Builder
		b.WriteString(fmt.Sprintf("# %s\n\n", details.Title))
		b.WriteString(fmt.Sprintf("*%s*", details.ChannelTitle))
		if d := formatISODuration(details.Duration); d != "" {
			b.WriteString(" • " + d)
		}
		if details.ViewCount != "" {
			b.WriteString(fmt.Sprintf(" • %s views", formatCount(details.ViewCount)))
		}
		if details.LikeCount != "" {
			b.WriteString(fmt.Sprintf(" • %s likes", formatCount(details.LikeCount)))
		}
		if date := formatDate(details.PublishedAt); date != "" {
			b.WriteString(" • " + date)
		}
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("[Watch](%s)\n\n", details.WatchURL()))
		b.WriteString("---\n\n")

		if details.Description != "" {
			b.WriteString(details.Description)
			b.WriteString("\n\n")
		}

		if trans.Err != "" {
			b.WriteString("## Transcript\n\n")
			b.WriteString("_" + trans.Err + "_\n\n")
		} else if trans.Loaded() {
			b.WriteString("## Transcript\n\n")
			for _, e := range trans.Entries {
				b.WriteString(fmt.Sprintf("`%s` %s\n\n", formatOffset(e.OffsetSeconds), e.Text))
			}
		}

		if len(details.Comments) > 0 {
			b.WriteString("## Comments\n\n")
			for _, thread := range details.Comments {
				if !thread.Usable() {
					continue
				}
				b.WriteString(fmt.Sprintf("**%s**", thread.Author()))
				if likes := thread.Likes(); likes > 0 {
					b.WriteString(fmt.Sprintf(" · %d likes", likes))
				}
				if date := formatDate(thread.Published()); date != "" {
					b.WriteString(" · " + date)
				}
				b.WriteString("\n\n")
				b.WriteString(thread.Text())
				b.WriteString("\n\n")
				for _, reply := range thread.ReplyList() {
					b.WriteString(fmt.Sprintf("> **%s**: %s\n\n", reply.Author(), reply.Text()))
				}
			}
		}

		r, err := a.getRenderer()
		if err != nil {
			return detailRenderedMsg{content: "Error initializing renderer: " + err.Error(), reset: reset}
		}
		rendered, err := r.Render(b.String())
		if err != nil {
			return detailRenderedMsg{content: b.String(), reset: reset}
		}
		return detailRenderedMsg{content: rendered, reset: reset}
	}
}

// renderChat builds the chat transcript. Assistant turns are markdown;
// user and system turns get styled plain-text prefixes.
func (a *App) renderChat() tea.Cmd {
	turns := make([]Turn, len(a.chat.Turns))
	copy(turns, a.chat.Turns)
	return func() tea.Msg {
		var parts []string
		for _, turn := range turns {
			switch turn.Role {
			case RoleUser:
				parts = append(parts, UserTurnStyle.Render("You › ")+turn.Content)
			case RoleSystem:
				parts = append(parts, SystemTurnStyle.Render("• "+turn.Content))
			case RoleAssistant:
				content := turn.Content
				if r, err := a.getRenderer(); err == nil {
					if rendered, renderErr := r.Render(turn.Content); renderErr == nil {
						content = strings.TrimRight(rendered, "\n")
					}
				}
				parts = append(parts, content)
			}
		}
		return chatRenderedMsg{content: strings.Join(parts, "\n\n")}
	}
}

// --- list item adapters ------------------------------------------------

type videoItem struct {
	video api.Video
}

func (i videoItem) Title() string {
	title := i.video.Title
	if d := formatISODuration(i.video.Duration); d != "" {
		title += TimeStyle.Render(" [" + d + "]")
	}
	return title
}

func (i videoItem) Description() string {
	parts := []string{i.video.ChannelTitle}
	if i.video.ViewCount != "" {
		parts = append(parts, formatCount(i.video.ViewCount)+" views")
	}
	if date := formatDate(i.video.PublishedAt); date != "" {
		parts = append(parts, date)
	}
	return strings.Join(parts, " • ")
}

func (i videoItem) FilterValue() string { return i.video.Title }

type webItem struct {
	result api.WebResult
}

func (i webItem) Title() string { return stripTags(i.result.Title) }

func (i webItem) Description() string {
	snippet := truncateEnd(stripTags(i.result.Snippet), 80)
	link := truncateMiddle(i.result.DisplayLink, 40)
	if link == "" {
		return snippet
	}
	return snippet + TimeStyle.Render(" • "+link)
}

func (i webItem) FilterValue() string { return i.result.Title + " " + i.result.Snippet }

type newsItem struct {
	article api.Article
}

func (i newsItem) Title() string { return i.article.Title }

func (i newsItem) Description() string {
	snippet := truncateEnd(stripTags(i.article.Snippet), 80)
	meta := i.article.SourceName
	if date := formatDate(i.article.PublishedAt); date != "" {
		meta += " • " + date
	}
	if snippet == "" {
		return TimeStyle.Render(meta)
	}
	return snippet + TimeStyle.Render(" • "+meta)
}

func (i newsItem) FilterValue() string { return i.article.Title }

type sourceItem struct {
	name     string
	selected bool
}

func (i sourceItem) Title() string {
	if i.selected {
		return SourceOnStyle.Render("◉ " + i.name)
	}
	return "○ " + i.name
}

func (i sourceItem) Description() string {
	if i.selected {
		return "included"
	}
	return ""
}

func (i sourceItem) FilterValue() string { return i.name }

type finderItem struct {
	result *search.Result
}

func (i finderItem) Title() string {
	var prefix string
	switch i.result.Kind {
	case search.KindVideo:
		prefix = "▶ "
	case search.KindWeb:
		prefix = "🔗 "
	case search.KindNews:
		prefix = "📰 "
	}
	return prefix + i.result.Title
}

func (i finderItem) Description() string {
	snippet := truncateEnd(stripTags(i.result.Snippet), 60)
	if i.result.Source == "" {
		return snippet
	}
	return snippet + TimeStyle.Render(" • "+i.result.Source)
}

func (i finderItem) FilterValue() string { return i.result.Title + " " + i.result.Snippet }
