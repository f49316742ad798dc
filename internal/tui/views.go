package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) View() string {
	var content string

	switch a.view {
	case ViewHome:
		content = a.viewHome()
	case ViewResults:
		content = a.viewResults()
	case ViewDetail:
		content = a.viewDetail()
	case ViewChat:
		content = a.viewChat()
	case ViewFinder:
		content = a.viewFinder()
	case ViewSources:
		content = a.sourceList.View()
	}

	customStatus := a.getCustomStatusBar()
	if customStatus != "" {
		separatorWidth := a.width - 2
		if separatorWidth < 0 {
			separatorWidth = 0
		}
		separator := SeparatorStyle.Render("─" + strings.Repeat("─", separatorWidth))

		return lipgloss.JoinVertical(lipgloss.Top, content, separator, customStatus)
	}

	return content
}

func (a *App) viewHome() string {
	inputWidth := a.width - 8
	if inputWidth < 10 {
		inputWidth = a.width - 4
	}
	a.searchInput.Width = inputWidth

	authLine := ""
	switch {
	case a.auth.IsLoading:
		authLine = renderMuted("checking session…")
	case a.auth.LoggedIn && a.auth.User != nil:
		authLine = renderMuted("signed in as " + a.auth.User.Name)
	default:
		authLine = renderMuted("not signed in • ctrl+l to log in")
	}

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		GetWelcomeMessage(),
		"",
		renderInputFrame(a.searchInput.View(), a.searchInput.Focused(), inputWidth),
		"",
		authLine,
	)

	return renderCentered(a.width, a.height-3, body)
}

func (a *App) viewResults() string {
	tabBar := a.renderTabBar()

	var panel string
	switch a.tab {
	case TabVideos:
		panel = a.renderStreamPanel(a.videos.IsLoading, a.videos.Err, len(a.videos.Items), a.videoList.View())
	case TabWeb:
		panel = a.renderStreamPanel(a.web.IsLoading, a.web.Err, len(a.web.Items), a.webList.View())
	case TabNews:
		news := a.renderStreamPanel(a.news.IsLoading && len(a.news.Items) == 0, a.news.Err, len(a.news.Items), a.newsList.View())
		if remaining := a.newsRemaining(); remaining > 0 {
			news = lipgloss.JoinVertical(lipgloss.Top, news, renderHelp(MsgMoreNews(remaining)+" • m: load more"))
		}
		panel = news
	}

	return lipgloss.JoinVertical(lipgloss.Top, tabBar, "", panel)
}

func (a *App) renderTabBar() string {
	labels := []string{
		fmt.Sprintf("1 videos (%d)", len(a.videos.Items)),
		fmt.Sprintf("2 web (%d)", len(a.web.Items)),
		fmt.Sprintf("3 news (%d)", len(a.news.Items)),
	}

	var parts []string
	for i, label := range labels {
		if ResultTab(i) == a.tab {
			parts = append(parts, HeaderStyle.Render("› "+label))
		} else {
			parts = append(parts, renderMuted("  "+label))
		}
	}

	query := truncateEnd(a.session.Query, a.width/3)
	bar := strings.Join(parts, renderMuted("  │  "))
	if query != "" {
		bar += renderMuted("   ⌕ " + query)
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(bar)
}

// renderStreamPanel renders one result stream: spinner while the first
// fetch is out, an error banner on failure, otherwise the list. Spinner and
// banner are mutually exclusive by construction.
func (a *App) renderStreamPanel(loading bool, errText string, count int, listView string) string {
	if errText != "" {
		return renderErrorBanner(a.width, a.height-8, errText, "retry with a new search")
	}
	if loading && count == 0 {
		return renderCentered(a.width, a.height-8, a.spinner.View()+" "+renderMuted("loading…"))
	}
	if count == 0 {
		return renderCentered(a.width, a.height-8, renderMuted(MsgNoResults))
	}
	return listView
}

func (a *App) viewDetail() string {
	if a.selection.Err != "" {
		return renderErrorBanner(a.width, a.height-3, a.selection.Err, "esc: back")
	}
	if a.selection.IsLoading {
		return renderCentered(a.width, a.height-3, a.spinner.View()+" "+renderMuted(MsgLoadingDetails))
	}
	return a.viewport.View()
}

func (a *App) viewChat() string {
	inputWidth := a.width - 8
	if inputWidth < 10 {
		inputWidth = a.width - 4
	}
	a.chatInput.Width = inputWidth

	header := renderHeader("› assistant", "", a.width)

	body := a.chatView.View()
	if len(a.chat.Turns) == 0 {
		body = renderCentered(a.width, a.chatView.Height, renderMuted("Ask anything about your research."))
	}

	inputView := a.chatInput.View()
	if a.chat.IsSending {
		inputView = a.spinner.View() + " " + renderMuted("waiting for the assistant…")
	}

	return lipgloss.JoinVertical(
		lipgloss.Top,
		header,
		body,
		renderInputFrame(inputView, a.chatInput.Focused() && !a.chat.IsSending, inputWidth),
	)
}

func (a *App) viewFinder() string {
	inputWidth := a.width - 8
	if inputWidth < 10 {
		inputWidth = a.width - 4
	}
	a.finderInput.Width = inputWidth

	helpText := ""
	if a.finderInput.Focused() {
		helpText = "Type to search this session • Tab/↓: results • Esc: back"
	} else if len(a.finderList.Items()) > 0 {
		helpText = "↑↓: navigate • Enter: open • Tab/↑: search box • Esc: back"
	} else {
		helpText = "No matches • Tab/↑: search box • Esc: back"
	}

	content := lipgloss.JoinVertical(
		lipgloss.Top,
		renderHeader("› session finder", "", a.width),
		"",
		renderInputFrame(a.finderInput.View(), a.finderInput.Focused(), inputWidth),
		renderMuted(helpText),
		"",
		a.finderList.View(),
	)

	return lipgloss.NewStyle().
		Width(a.width).
		Height(a.height - 3).
		MaxHeight(a.height - 3).
		Render(content)
}

func (a *App) getCustomStatusBar() string {
	commands := a.keyHandler.GetHelpForCurrentView()

	if a.err != nil {
		errorText := ErrorMessageStyle.Render(fmt.Sprintf("✗ %v", a.err))
		return StatusBarStyle.Width(a.width).Render(errorText)
	}

	if a.status != "" {
		return StatusBarStyle.Width(a.width).Render(a.status)
	}

	if len(commands) > 0 {
		return StatusBarStyle.Width(a.width).Render(strings.Join(commands, " • "))
	}

	return ""
}
