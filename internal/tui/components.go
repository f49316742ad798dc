package tui

import "github.com/charmbracelet/lipgloss"

// Shared building blocks for the view layer: headers, framed inputs,
// centered panels and the error banner every stream panel uses.

func renderHeader(title, subtitle string, width int) string {
	header := HeaderStyle.Render(truncateEnd(title, width-2))
	if subtitle == "" {
		return header
	}
	return lipgloss.JoinVertical(lipgloss.Top,
		header,
		renderMuted(truncateEnd(subtitle, width-2)),
	)
}

// renderInputFrame wraps an already-rendered text input in a rounded
// border. Focus is signalled through the border color.
func renderInputFrame(inputView string, focused bool, contentWidth int) string {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Padding(0, 1).
		Width(contentWidth + 4)
	if focused {
		frame = frame.BorderForeground(AccentColor)
	}
	return frame.Render(inputView)
}

func renderCentered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// renderErrorBanner centers a failure line with an optional recovery hint
// under it. Used by the stream panels and the detail view.
func renderErrorBanner(width, height int, text, hint string) string {
	banner := ErrorMessageStyle.Render("✗ " + truncateEnd(text, width-6))
	if hint == "" {
		return renderCentered(width, height, banner)
	}
	return renderCentered(width, height,
		lipgloss.JoinVertical(lipgloss.Center, banner, "", renderHelp(hint)))
}

func renderMuted(text string) string {
	return lipgloss.NewStyle().Foreground(MutedColor).Render(text)
}

func renderHelp(text string) string {
	return HelpStyle.Render(text)
}
