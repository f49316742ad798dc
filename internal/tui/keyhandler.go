package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riziyan/apdetax/internal/search"
)

type KeyHandler struct {
	app *App
}

func NewKeyHandler(app *App) *KeyHandler {
	return &KeyHandler{app: app}
}

func (kh *KeyHandler) HandleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if kh.isInTextInputMode() {
		return kh.handleTextInputMode(msg)
	}

	if model, cmd, handled := kh.handleCustomKeys(key); handled {
		return model, cmd
	}

	return kh.delegateToCharm(msg)
}

func (kh *KeyHandler) isInTextInputMode() bool {
	switch kh.app.view {
	case ViewHome:
		return kh.app.searchInput.Focused()
	case ViewChat:
		return kh.app.chatInput.Focused()
	case ViewFinder:
		return kh.app.finderInput.Focused()
	default:
		return false
	}
}

func (kh *KeyHandler) handleTextInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "esc":
		return kh.navigateBack()
	case "ctrl+c":
		return kh.app, tea.Quit
	case "enter":
		return kh.handleTextInputEnter()
	case "tab", "down":
		if kh.app.view == ViewFinder {
			if len(kh.app.finderList.Items()) > 0 {
				kh.app.finderInput.Blur()
				kh.app.finderList.Select(0)
			}
			return kh.app, nil
		}
		return kh.delegateToTextInput(msg)
	default:
		return kh.delegateToTextInput(msg)
	}
}

func (kh *KeyHandler) handleTextInputEnter() (tea.Model, tea.Cmd) {
	switch kh.app.view {
	case ViewHome:
		return kh.app, kh.app.runSearch(kh.app.searchInput.Value())

	case ViewChat:
		return kh.app, kh.app.sendMessage(kh.app.chatInput.Value())

	case ViewFinder:
		if items := kh.app.finderList.Items(); len(items) > 0 {
			if i, ok := items[0].(finderItem); ok {
				return kh.selectFinderResult(i)
			}
		}
		return kh.app, nil

	default:
		return kh.app, nil
	}
}

func (kh *KeyHandler) delegateToTextInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch kh.app.view {
	case ViewHome:
		newInput, cmd := kh.app.searchInput.Update(msg)
		kh.app.searchInput = newInput
		return kh.app, cmd

	case ViewChat:
		newInput, cmd := kh.app.chatInput.Update(msg)
		kh.app.chatInput = newInput
		return kh.app, cmd

	case ViewFinder:
		prev := kh.app.finderInput.Value()
		newInput, cmd := kh.app.finderInput.Update(msg)
		kh.app.finderInput = newInput

		newVal := sanitizeFinderInput(kh.app.finderInput.Value())
		if newVal != prev && len(newVal) > 1 {
			return kh.app, tea.Batch(cmd, kh.app.runFinder(newVal))
		}
		return kh.app, cmd

	default:
		return kh.app, nil
	}
}

// handleCustomKeys handles only our custom action keys
func (kh *KeyHandler) handleCustomKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "ctrl+c", "q":
		return kh.app, tea.Quit, true
	case "esc":
		model, cmd := kh.navigateBack()
		return model, cmd, true
	case "ctrl+f":
		model, cmd := kh.enterFinderMode()
		return model, cmd, true
	case "ctrl+k":
		model, cmd := kh.enterChatMode()
		return model, cmd, true
	case "ctrl+h":
		return kh.app, kh.app.goHome(), true
	case "ctrl+l":
		if kh.app.auth.LoggedIn {
			return kh.app, kh.app.logout(), true
		}
		kh.app.setStatus(MsgLoginAt(kh.app.client.LoginURL()))
		return kh.app, nil, true
	}

	switch kh.app.view {
	case ViewResults:
		return kh.handleResultsCustomKeys(key)
	case ViewDetail:
		return kh.handleDetailCustomKeys(key)
	default:
		return kh.app, nil, false
	}
}

func (kh *KeyHandler) handleResultsCustomKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "tab":
		kh.app.tab = (kh.app.tab + 1) % 3
		return kh.app, nil, true
	case "shift+tab":
		kh.app.tab = (kh.app.tab + 2) % 3
		return kh.app, nil, true
	case "1":
		kh.app.tab = TabVideos
		return kh.app, nil, true
	case "2":
		kh.app.tab = TabWeb
		return kh.app, nil, true
	case "3":
		kh.app.tab = TabNews
		return kh.app, nil, true
	case "m":
		switch kh.app.tab {
		case TabWeb:
			return kh.app, kh.app.loadMoreWeb(), true
		case TabNews:
			if kh.app.newsRemaining() > 0 {
				kh.app.loadMoreNews()
			}
			return kh.app, nil, true
		}
		return kh.app, nil, false
	case "r":
		if kh.app.tab == TabNews {
			return kh.app, kh.app.refreshNews(), true
		}
		return kh.app, nil, false
	case "s":
		if kh.app.tab == TabNews {
			kh.app.syncSourceList()
			kh.app.previousView = kh.app.view
			kh.app.view = ViewSources
			return kh.app, nil, true
		}
		return kh.app, nil, false
	}
	return kh.app, nil, false
}

func (kh *KeyHandler) handleDetailCustomKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "t":
		return kh.app, kh.app.loadTranscript(), true
	case "a":
		cmd := kh.app.analyzeComments()
		_, chatCmd := kh.enterChatMode()
		return kh.app, tea.Batch(cmd, chatCmd), true
	case "y":
		cmd := kh.app.summarizeVideo()
		_, chatCmd := kh.enterChatMode()
		return kh.app, tea.Batch(cmd, chatCmd), true
	}
	return kh.app, nil, false
}

// delegateToCharm lets Charm handle all keys we don't intercept
func (kh *KeyHandler) delegateToCharm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch kh.app.view {
	case ViewResults:
		switch kh.app.tab {
		case TabVideos:
			kh.app.videoList, cmd = kh.app.videoList.Update(msg)
			if msg.String() == "enter" {
				if i, ok := kh.app.videoList.SelectedItem().(videoItem); ok {
					return kh.app, kh.app.selectVideo(i.video.ID)
				}
			}
		case TabWeb:
			kh.app.webList, cmd = kh.app.webList.Update(msg)
			if msg.String() == "enter" {
				if i, ok := kh.app.webList.SelectedItem().(webItem); ok {
					kh.app.setStatus(i.result.Link)
				}
			}
		case TabNews:
			kh.app.newsList, cmd = kh.app.newsList.Update(msg)
			if msg.String() == "enter" {
				if i, ok := kh.app.newsList.SelectedItem().(newsItem); ok {
					kh.app.setStatus(i.article.Link)
				}
			}
		}
		return kh.app, cmd

	case ViewSources:
		kh.app.sourceList, cmd = kh.app.sourceList.Update(msg)
		if key := msg.String(); key == "enter" || key == " " {
			if i, ok := kh.app.sourceList.SelectedItem().(sourceItem); ok {
				kh.app.toggleSource(i.name)
			}
		}
		return kh.app, cmd

	case ViewFinder:
		if !kh.app.finderInput.Focused() {
			switch msg.String() {
			case "tab", "shift+tab", "/", "i":
				kh.app.finderInput.Focus()
				return kh.app, nil
			case "up":
				if len(kh.app.finderList.Items()) > 0 && kh.app.finderList.Index() == 0 {
					kh.app.finderInput.Focus()
					return kh.app, nil
				}
			}
		}
		kh.app.finderList, cmd = kh.app.finderList.Update(msg)
		if msg.String() == "enter" && !kh.app.finderInput.Focused() {
			if i, ok := kh.app.finderList.SelectedItem().(finderItem); ok {
				return kh.selectFinderResult(i)
			}
		}
		return kh.app, cmd

	case ViewDetail:
		kh.app.viewport, cmd = kh.app.viewport.Update(msg)
		return kh.app, cmd

	case ViewChat:
		kh.app.chatView, cmd = kh.app.chatView.Update(msg)
		if key := msg.String(); key == "/" || key == "i" {
			kh.app.chatInput.Focus()
			return kh.app, nil
		}
		return kh.app, cmd

	default:
		return kh.app, nil
	}
}

// selectFinderResult jumps to whatever the finder hit points at: videos
// open the detail view, web and news hits surface their link.
func (kh *KeyHandler) selectFinderResult(item finderItem) (tea.Model, tea.Cmd) {
	r := item.result
	switch r.Kind {
	case search.KindVideo:
		return kh.app, kh.app.selectVideo(r.ID)
	case search.KindWeb:
		kh.app.view = kh.app.previousView
		kh.app.setStatus(r.ID)
		return kh.app, nil
	case search.KindNews:
		kh.app.view = kh.app.previousView
		for _, art := range kh.app.news.Items {
			if art.ID == r.ID {
				kh.app.setStatus(art.Link)
				break
			}
		}
		return kh.app, nil
	}
	return kh.app, nil
}

// navigateBack implements smart back navigation
func (kh *KeyHandler) navigateBack() (tea.Model, tea.Cmd) {
	switch kh.app.view {
	case ViewSources:
		kh.app.view = ViewResults
		return kh.app, nil

	case ViewFinder:
		kh.app.view = kh.app.previousView
		kh.app.finderInput.Reset()
		kh.app.finderList.SetItems(nil)
		return kh.app, nil

	case ViewChat:
		kh.app.chatInput.Blur()
		kh.app.view = kh.app.previousView
		return kh.app, nil

	case ViewDetail:
		kh.app.clearSelection()
		return kh.app, nil

	case ViewResults:
		return kh.app, kh.app.goHome()

	default:
		return kh.app, tea.Quit
	}
}

func (kh *KeyHandler) enterFinderMode() (tea.Model, tea.Cmd) {
	if kh.app.view != ViewFinder {
		kh.app.previousView = kh.app.view
	}
	kh.app.view = ViewFinder
	kh.app.finderInput.Reset()
	kh.app.finderInput.Focus()
	kh.app.finderList.SetItems(nil)
	return kh.app, nil
}

func (kh *KeyHandler) enterChatMode() (tea.Model, tea.Cmd) {
	if kh.app.view != ViewChat {
		kh.app.previousView = kh.app.view
	}
	kh.app.view = ViewChat
	kh.app.chatInput.Focus()
	return kh.app, kh.app.renderChat()
}

// sanitizeFinderInput trims and bounds a finder query.
func sanitizeFinderInput(input string) string {
	input = strings.TrimSpace(input)

	if r := []rune(input); len(r) > 256 {
		input = string(r[:256])
	}

	input = strings.ReplaceAll(input, "\n", " ")
	input = strings.ReplaceAll(input, "\r", " ")
	input = strings.ReplaceAll(input, "\t", " ")

	for strings.Contains(input, "  ") {
		input = strings.ReplaceAll(input, "  ", " ")
	}

	return strings.TrimSpace(input)
}

// GetHelpForCurrentView returns only our custom help text (Charm handles the rest)
func (kh *KeyHandler) GetHelpForCurrentView() []string {
	switch kh.app.view {
	case ViewHome:
		help := []string{"enter: search", "ctrl+k: chat", "ctrl+f: finder"}
		if kh.app.auth.LoggedIn {
			help = append(help, "ctrl+l: logout")
		} else {
			help = append(help, "ctrl+l: login")
		}
		return help

	case ViewResults:
		help := []string{"tab: next panel", "enter: open"}
		switch kh.app.tab {
		case TabWeb:
			if kh.app.webCursor != nil && !kh.app.web.IsLoading {
				help = append(help, "m: load more")
			}
		case TabNews:
			if kh.app.newsRemaining() > 0 {
				help = append(help, "m: more news")
			}
			help = append(help, "r: refresh", "s: sources")
		}
		return append(help, "ctrl+f: finder", "esc: home")

	case ViewDetail:
		return []string{"t: transcript", "y: summarize", "a: analyze comments", "ctrl+k: chat", "esc: back"}

	case ViewChat:
		return []string{"enter: send", "esc: back"}

	case ViewFinder:
		return []string{"enter: open", "tab: results", "esc: back"}

	case ViewSources:
		return []string{"enter: toggle", "esc: back"}

	default:
		return []string{}
	}
}
