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

var m3uFieldOrder = []string{
	source.FieldName,
	source.FieldPlaylistURL,
	source.FieldEPGURL,
}

// M3UFormModel is the M3U playlist onboarding form: name, playlist URL, and
// an optional EPG URL. It shares the Xtream form's structure: single-pass
// validation on submit, one emission per successful pass, inert controls
// while Loading.
type M3UFormModel struct {
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

// NewM3UForm creates the form with empty fields and focus on the first one.
func NewM3UForm(fm *focus.Manager, parent *focus.Scope) M3UFormModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	m := M3UFormModel{
		inputs: map[string]textinput.Model{
			source.FieldName:        newFormInput("My playlist", false),
			source.FieldPlaylistURL: newFormInput("https://example.com/playlist.m3u", false),
			source.FieldEPGURL:      newFormInput("https://example.com/epg.xml (optional)", false),
		},
		errors:     make(source.FormErrors),
		spinner:    sp,
		FrameWidth: FormModalWidth,
		fm:         fm,
		scope:      parent.AddScope("m3u-form", false),
		keys:       newFormKeyMap(),
	}
	m.registerFocus()
	m.fm.FocusDefault(m.scope)
	m.syncInputFocus()
	return m
}

func (m *M3UFormModel) registerFocus() {
	for i, field := range m3uFieldOrder {
		m.scope.Register(focus.Node{Key: field, Row: i, Col: 0})
	}
	row := len(m3uFieldOrder)
	m.scope.Register(focus.Node{Key: focusKeySubmit, Row: row, Col: 0, Disabled: m.Loading})
	m.scope.Register(focus.Node{Key: focusKeyCancel, Row: row, Col: 1, Disabled: m.Loading})
}

// SetLoading toggles the in-flight state. Submit and cancel leave the focus
// traversal while loading so they cannot be activated.
func (m *M3UFormModel) SetLoading(loading bool) {
	m.Loading = loading
	m.registerFocus()
	m.fm.EnsureFocus(m.scope)
	m.syncInputFocus()
}

// SetField pre-fills a field's value. Used for edit flows and tests.
func (m *M3UFormModel) SetField(field, value string) {
	if ti, ok := m.inputs[field]; ok {
		ti.SetValue(value)
		m.inputs[field] = ti
	}
}

// SetError sets the caller-level error banner.
func (m *M3UFormModel) SetError(msg string) {
	m.Err = msg
}

// FieldError returns the current inline error for a field, or "".
func (m M3UFormModel) FieldError(field string) string {
	return m.errors[field]
}

func (m *M3UFormModel) syncInputFocus() {
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
func (m M3UFormModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages and updates the model
func (m M3UFormModel) Update(msg tea.Msg) (M3UFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
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

func (m M3UFormModel) handleEnter() (M3UFormModel, tea.Cmd) {
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

// submit runs the single-pass validator. A whitespace-only EPG URL validates
// as absent and never reaches the payload.
func (m M3UFormModel) submit() (M3UFormModel, tea.Cmd) {
	m.Err = ""
	data, errs := source.ValidateM3UForm(source.M3UFields{
		Name:        m.inputs[source.FieldName].Value(),
		PlaylistURL: m.inputs[source.FieldPlaylistURL].Value(),
		EPGURL:      m.inputs[source.FieldEPGURL].Value(),
	})
	m.errors = errs
	if errs.HasErrors() {
		return m, nil
	}

	return m, func() tea.Msg { return M3USubmittedMsg{Data: data} }
}

// View renders the form content
func (m M3UFormModel) View() string {
	labels := map[string]string{
		source.FieldName:        "Name",
		source.FieldPlaylistURL: "Playlist URL",
		source.FieldEPGURL:      "EPG URL (optional)",
	}

	sections := make([]string, 0, len(m3uFieldOrder)+3)
	if m.Err != "" {
		sections = append(sections, ErrorBannerStyle.Render(m.Err))
	}
	for _, field := range m3uFieldOrder {
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

	return renderFormFrame("Add M3U source", lipgloss.JoinVertical(lipgloss.Left, sections...), m.FrameWidth)
}
