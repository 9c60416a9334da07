package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// Focus keys shared by both onboarding forms. Field nodes are keyed by the
// same identifiers the validators use, so an inline error always lines up
// with a focusable control.
const (
	focusKeySubmit = "submit"
	focusKeyCancel = "cancel"
)

// formKeyMap defines key bindings inside the onboarding forms. Left/right are
// deliberately absent: within a text field they move the cursor, and the
// submit/cancel pair handles them through focus movement.
type formKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Cancel key.Binding
}

func newFormKeyMap() formKeyMap {
	return formKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous field"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next field"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// newFormInput creates a text input configured for a form field.
func newFormInput(placeholder string, masked bool) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = FormModalWidth - 12
	if masked {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	return ti
}

// renderFormField renders a labelled input with its inline error, if any.
func renderFormField(label string, input textinput.Model, errMsg string, focused bool) string {
	labelStyle := FieldLabelStyle
	if focused {
		labelStyle = FocusedFieldLabelStyle
	}

	lines := []string{
		labelStyle.Render(label),
		input.View(),
	}
	if errMsg != "" {
		lines = append(lines, FieldErrorStyle.Render("  "+errMsg))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderFormFrame wraps form content in the modal border at the given width.
func renderFormFrame(title, content string, width int) string {
	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Render(title),
		content,
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Width(width).
		Padding(1, 2).
		Render(inner)
}
