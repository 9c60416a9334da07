package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/GhouI/Ted-IPTV-Player-sub003/internal/version"
)

// Application branding constants
const (
	AppName       = "TED IPTV PLAYER"
	GitHubURL     = "github.com/GhouI/Ted-IPTV-Player-sub003"
	GitHubFullURL = "https://github.com/GhouI/Ted-IPTV-Player-sub003"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 72  // Minimum supported terminal width
	MaxContentWidth  = 120 // Maximum content width before capping

	// Modal widths per workflow state. The type selector is deliberately
	// wider than the forms; layout tests observe this difference.
	TypeSelectModalWidth = 64
	FormModalWidth       = 52
)

// Color palette
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	AccentColor    = lipgloss.Color("#FF8B94") // Pink
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF0000") // Red

	// Neutral colors
	TextColor       = lipgloss.Color("#FFFFFF") // White
	SubtleColor     = lipgloss.Color("#626262") // Gray
	BorderColor     = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor  = lipgloss.Color("#43BF6D") // Green (same as secondary)
	BackgroundColor = lipgloss.Color("#1A1A1A") // Dark gray
)

// Common styles
var (
	// Title style
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(1, 0).
			MarginBottom(1)

	// Subtitle style
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Menu item style (unselected)
	MenuItemStyle = lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(TextColor)

	// Menu item style (focused)
	FocusedMenuItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(HighlightColor).
				Bold(true)

	// Help text style
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(1, 0)

	// Error banner style (submission-level errors above form fields)
	ErrorBannerStyle = lipgloss.NewStyle().
				Foreground(ErrorColor).
				Bold(true).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ErrorColor)

	// Inline field error style
	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// Field label style
	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Focused field label style
	FocusedFieldLabelStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true)

	// Active badge on the selected playback source
	ActiveBadgeStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true)

	// Source type label style
	TypeLabelStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Skeleton placeholder row style (list loading state)
	SkeletonStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Spinner style
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// Button style (unfocused)
	ButtonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Foreground(SubtleColor).
			Padding(0, 2).
			MarginRight(2)

	// Button style (focused)
	FocusedButtonStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(HighlightColor).
				Foreground(HighlightColor).
				Bold(true).
				Padding(0, 2).
				MarginRight(2)

	// Disabled button style (excluded from traversal, rendered muted)
	DisabledButtonStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(BackgroundColor).
				Foreground(SubtleColor).
				Padding(0, 2).
				MarginRight(2)
)

// RenderMenuItem renders a menu item with a focus indicator
func RenderMenuItem(text string, focused bool) string {
	if focused {
		return FocusedMenuItemStyle.Render("→ " + text)
	}
	return MenuItemStyle.Render("  " + text)
}

// RenderButton renders a button in its focused/disabled/normal state
func RenderButton(label string, focused, disabled bool) string {
	switch {
	case disabled:
		return DisabledButtonStyle.Render("  " + label)
	case focused:
		return FocusedButtonStyle.Render("→ " + label)
	default:
		return ButtonStyle.Render("  " + label)
	}
}

// BuildHeaderContent creates header content with app name and GitHub URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return HelpStyle.Render(helpText)
}

// RenderApplicationContainer is the wrapper for all screens in the
// application. It provides a consistent full-screen panel with an application
// header, the screen content, and a context-sensitive footer, all inside a
// bordered outer container sized to the terminal.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	header := BuildHeaderContent()
	footer := BuildFooterContent(footerText)

	// Clamp to the supported range so very narrow terminals still get a
	// coherent frame and very wide ones don't stretch rows unreadably.
	frameWidth := terminalWidth
	if frameWidth < MinTerminalWidth {
		frameWidth = MinTerminalWidth
	}
	if frameWidth > MaxContentWidth {
		frameWidth = MaxContentWidth
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(frameWidth - 4). // Leave room for outer border
		Padding(0, 1)

	styledHeader := headerStyle.Render(header)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(frameWidth - 4).
		Padding(0, 1)

	styledFooter := footerStyle.Render(footer)

	contentStyle := lipgloss.NewStyle().
		Width(frameWidth - 4)

	styledContent := contentStyle.Render(content)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		styledHeader,
		styledContent,
		styledFooter,
	)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(frameWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top)

	bordered := borderStyle.Render(innerContent)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		bordered,
	)
}

// RenderModal centers modal content over a dimmed backdrop. Used for the
// add-source workflow overlay.
func RenderModal(modalContent string, terminalWidth int, terminalHeight int) string {
	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Center,
		lipgloss.Center,
		modalContent,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("240")),
	)
}

// SafeModalWidth calculates a safe modal width that respects terminal
// constraints so modals never overflow horizontally.
func SafeModalWidth(requestedWidth, terminalWidth int) int {
	maxWidth := terminalWidth - 4
	if maxWidth < 40 {
		maxWidth = 40 // Absolute minimum for usability
	}
	if requestedWidth < maxWidth {
		return requestedWidth
	}
	return maxWidth
}
