package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GhouI/Ted-IPTV-Player-sub003/internal/focus"
	"github.com/GhouI/Ted-IPTV-Player-sub003/internal/source"
)

// xtreamFieldOrder is the form's field order, top to bottom.
var xtreamFieldOrder = []string{
	source.FieldName,
	source.FieldServerURL,
	source.FieldUsername,
	source.FieldPassword,
}

// XtreamFormModel is the Xtream Codes onboarding form: name, server URL,
// username, and password (masked). Validation runs in a single pass on
// submit; on success the normalized payload is emitted exactly once via
// XtreamSubmittedMsg. While Loading, submit and cancel are inert.
type XtreamFormModel struct {
	inputs map[string]textinput.Model
	errors source.FormErrors

	// Err is a caller-level failure (a save that went wrong), rendered
	// above the fields. It persists until the next submit attempt.
	Err string

	Loading bool
	spinner spinner.Model

	// FrameWidth is the rendered modal frame width, already clamped to the
	// terminal by the workflow.
	FrameWidth int

	fm    *focus.Manager
	scope *focus.Scope
	keys  formKeyMap
}

// NewXtreamForm creates the form with empty fields and focus on the first one.
func NewXtreamForm(fm *focus.Manager, parent *focus.Scope) XtreamFormModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	m := XtreamFormModel{
		inputs: map[string]textinput.Model{
			source.FieldName:      newFormInput("My provider", false),
			source.FieldServerURL: newFormInput("http://example.com:8080", false),
			source.FieldUsername:  newFormInput("username", false),
			source.FieldPassword:  newFormInput("password", true),
		},
		errors:     make(source.FormErrors),
		spinner:    sp,
		FrameWidth: FormModalWidth,
		fm:         fm,
		scope:      parent.AddScope("xtream-form", false),
		keys:       newFormKeyMap(),
	}
	m.registerFocus()
	m.fm.FocusDefault(m.scope)
	m.syncInputFocus()
	return m
}

// registerFocus registers one node per field plus the submit/cancel pair.
func (m *XtreamFormModel) registerFocus() {
	for i, field := range xtreamFieldOrder {
		m.scope.Register(focus.Node{Key: field, Row: i, Col: 0})
	}
	row := len(xtreamFieldOrder)
	m.scope.Register(focus.Node{Key: focusKeySubmit, Row: row, Col: 0, Disabled: m.Loading})
	m.scope.Register(focus.Node{Key: focusKeyCancel, Row: row, Col: 1, Disabled: m.Loading})
}

// SetLoading toggles the in-flight state. Submit and cancel leave the focus
// traversal while loading so they cannot be activated.
func (m *XtreamFormModel) SetLoading(loading bool) {
	m.Loading = loading
	m.registerFocus()
	m.fm.EnsureFocus(m.scope)
	m.syncInputFocus()
}

// SetField pre-fills a field's value. Used for edit flows and tests.
func (m *XtreamFormModel) SetField(field, value string) {
	if ti, ok := m.inputs[field]; ok {
		ti.SetValue(value)
		m.inputs[field] = ti
	}
}

// SetError sets the caller-level error banner.
func (m *XtreamFormModel) SetError(msg string) {
	m.Err = msg
}

// FieldError returns the current inline error for a field, or "".
func (m XtreamFormModel) FieldError(field string) string {
	return m.errors[field]
}

// syncInputFocus mirrors the focus manager's state onto the text inputs so
// exactly the focused field accepts keystrokes.
func (m *XtreamFormModel) syncInputFocus() {
	for field, ti := range m.inputs {
		if !m.Loading && m.fm.IsFocused(m.scope, field) {
			ti.Focus()
		} else {
			ti.Blur()
		}
		m.inputs[field] = ti
	}
}

// Init starts the spinner tick.
func (m XtreamFormModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages and updates the model
func (m XtreamFormModel) Update(msg tea.Msg) (XtreamFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		// While loading, every control is inert: no typing, no submit,
		// no cancel. The workflow stays up until the save resolves.
		if m.Loading {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Up):
			m.fm.Move(focus.DirUp)
			m.syncInputFocus()
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.fm.Move(focus.DirDown)
			m.syncInputFocus()
			return m, nil

		case key.Matches(msg, m.keys.Cancel):
			return m, func() tea.Msg { return FormCancelledMsg{} }

		case key.Matches(msg, m.keys.Enter):
			return m.handleEnter()
		}

		// Left/right and printable keys go to the focused field; on the
		// button row they move focus between submit and cancel instead.
		if cur := m.fm.Current(); cur != nil {
			if cur.Key == focusKeySubmit || cur.Key == focusKeyCancel {
				switch msg.String() {
				case "left":
					m.fm.Move(focus.DirLeft)
				case "right":
					m.fm.Move(focus.DirRight)
				}
				return m, nil
			}
			if ti, ok := m.inputs[cur.Key]; ok {
				var cmd tea.Cmd
				ti, cmd = ti.Update(msg)
				m.inputs[cur.Key] = ti
				return m, cmd
			}
		}
	}

	return m, nil
}

// handleEnter advances from a field to the next control, or fires the focused
// button.
func (m XtreamFormModel) handleEnter() (XtreamFormModel, tea.Cmd) {
	cur := m.fm.Current()
	if cur == nil {
		return m, nil
	}

	switch cur.Key {
	case focusKeySubmit:
		return m.submit()
	case focusKeyCancel:
		return m, func() tea.Msg { return FormCancelledMsg{} }
	default:
		m.fm.Move(focus.DirDown)
		m.syncInputFocus()
		return m, nil
	}
}

// submit runs the single-pass validator. On failure the inline errors replace
// any previous set; on success the normalized payload is emitted.
func (m XtreamFormModel) submit() (XtreamFormModel, tea.Cmd) {
	m.Err = ""
	data, errs := source.ValidateXtreamForm(source.XtreamFields{
		Name:      m.inputs[source.FieldName].Value(),
		ServerURL: m.inputs[source.FieldServerURL].Value(),
		Username:  m.inputs[source.FieldUsername].Value(),
		Password:  m.inputs[source.FieldPassword].Value(),
	})
	m.errors = errs
	if errs.HasErrors() {
		return m, nil
	}

	return m, func() tea.Msg { return XtreamSubmittedMsg{Data: data} }
}

// View renders the form content
func (m XtreamFormModel) View() string {
	labels := map[string]string{
		source.FieldName:      "Name",
		source.FieldServerURL: "Server URL",
		source.FieldUsername:  "Username",
		source.FieldPassword:  "Password",
	}

	sections := make([]string, 0, len(xtreamFieldOrder)+3)
	if m.Err != "" {
		sections = append(sections, ErrorBannerStyle.Render(m.Err))
	}
	for _, field := range xtreamFieldOrder {
		sections = append(sections, renderFormField(
			labels[field],
			m.inputs[field],
			m.errors[field],
			m.fm.IsFocused(m.scope, field),
		))
	}

	submitLabel := "Save source"
	if m.Loading {
		submitLabel = m.spinner.View() + " Saving..."
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		RenderButton(submitLabel, m.fm.IsFocused(m.scope, focusKeySubmit), m.Loading),
		RenderButton("Cancel", m.fm.IsFocused(m.scope, focusKeyCancel), m.Loading),
	)
	sections = append(sections, "", buttons)

	return renderFormFrame("Add Xtream source", lipgloss.JoinVertical(lipgloss.Left, sections...), m.FrameWidth)
}
