package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/riziyan/apdetax/internal/config"
)

const AppName = "apdetax"

// ASCII art logo lines - canonical definition
var LogoLines = []string{
	"▄▀█ █▀█ █▀▄ █▀▀ ▀█▀ ▄▀█ ▀▄▀",
	"█▀█ █▀▀ █▄▀ ██▄  █  █▀█ █ █",
}

const CompactLogo = `apdetax ›`

// Banner gradient colors
var BannerColors = []lipgloss.Color{
	lipgloss.Color("#FF6B6B"),
	lipgloss.Color("#FFA86B"),
	lipgloss.Color("#95E1D3"),
	lipgloss.Color("#4ECDC4"),
}

var (
	PrimaryColor   = lipgloss.Color("#FF6B6B")
	SecondaryColor = lipgloss.Color("#4ECDC4")
	AccentColor    = lipgloss.Color("#95E1D3")

	TextColor  = lipgloss.Color("#EAEAEA")
	MutedColor = lipgloss.Color("#94A3B8")

	ErrorColor   = lipgloss.Color("#EF4444")
	SuccessColor = lipgloss.Color("#10B981")
)

// Styled components
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true).
			Padding(0, 2)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	TimeStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Faint(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor).
				Bold(true)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	UserTurnStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	SystemTurnStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	SourceOnStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	EmptyStyle = lipgloss.NewStyle()
)

// ApplyPalette overrides the default colors from the user's config. Blank
// entries keep their defaults.
func ApplyPalette(c config.UIColors) {
	set := func(dst *lipgloss.Color, hex string) {
		if hex != "" {
			*dst = lipgloss.Color(hex)
		}
	}
	set(&PrimaryColor, c.Primary)
	set(&SecondaryColor, c.Secondary)
	set(&AccentColor, c.Accent)
	set(&TextColor, c.Text)
	set(&MutedColor, c.Muted)
	set(&ErrorColor, c.Error)
	set(&SuccessColor, c.Success)

	LogoStyle = LogoStyle.Foreground(PrimaryColor)
	TitleStyle = TitleStyle.Foreground(TextColor)
	HeaderStyle = HeaderStyle.Foreground(SecondaryColor)
	StatusBarStyle = StatusBarStyle.Foreground(MutedColor)
	HelpStyle = HelpStyle.Foreground(MutedColor)
	TimeStyle = TimeStyle.Foreground(MutedColor)
	ErrorMessageStyle = ErrorMessageStyle.Foreground(ErrorColor)
	SeparatorStyle = SeparatorStyle.Foreground(MutedColor)
	UserTurnStyle = UserTurnStyle.Foreground(AccentColor)
	SystemTurnStyle = SystemTurnStyle.Foreground(MutedColor)
	SourceOnStyle = SourceOnStyle.Foreground(SuccessColor)
}

func GetWelcomeMessage() string {
	return GetCompactBanner("Type a topic and press enter to search")
}

func GetCompactBanner(message string) string {
	var coloredLines []string
	for _, line := range LogoLines {
		coloredLines = append(coloredLines, LogoStyle.Render(line))
	}

	logo := lipgloss.JoinVertical(lipgloss.Center, coloredLines...)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		logo,
		"",
		HelpStyle.Render(message),
	)
}

// ShowBanner prints the startup banner to stdout before the program takes
// over the terminal.
func ShowBanner(version string) {
	lines := make([]string, len(LogoLines)+1)
	copy(lines, LogoLines)
	lines[len(LogoLines)] = ""

	versionTag := version
	if versionTag != "" && versionTag != "dev" {
		if versionTag[0] != 'v' && versionTag[0] != 'V' {
			versionTag = "v" + versionTag
		}
		lines = append(lines, fmt.Sprintf("  Research Dashboard %s", versionTag))
	} else {
		lines = append(lines, "  Research Dashboard")
	}

	var coloredLines []string
	for i, line := range lines {
		if line == "" {
			coloredLines = append(coloredLines, line)
			continue
		}
		colorIdx := i % len(BannerColors)
		style := lipgloss.NewStyle().
			Foreground(BannerColors[colorIdx]).
			Bold(i < len(LogoLines))
		coloredLines = append(coloredLines, style.Render(line))
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("#4ECDC4")).
		Padding(1, 3).
		MarginTop(1)

	banner := lipgloss.JoinVertical(lipgloss.Center, coloredLines...)
	fmt.Println(lipgloss.NewStyle().
		Width(60).
		Align(lipgloss.Center).
		MarginBottom(1).
		Render(borderStyle.Render(banner)))
}
