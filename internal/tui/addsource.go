package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GhouI/Ted-IPTV-Player-sub003/internal/focus"
	"github.com/GhouI/Ted-IPTV-Player-sub003/internal/source"
)

// WorkflowStep identifies the add-source workflow's current screen.
type WorkflowStep int

const (
	// StepTypeSelect is the entry step: pick Xtream or M3U.
	StepTypeSelect WorkflowStep = iota
	// StepXtreamForm shows the Xtream onboarding form.
	StepXtreamForm
	// StepM3UForm shows the M3U onboarding form.
	StepM3UForm
)

// Focus keys of the type-selection step.
const (
	focusKeyTypeXtream = "type-xtream"
	focusKeyTypeM3U    = "type-m3u"
	focusKeyBack       = "back"
)

// WorkflowModel is the add-source modal: a forward-only two-step machine.
// Step one picks the source type, step two is the matching form. Going back
// from a form discards the draft and returns to type selection; each workflow
// instance starts at type selection with empty fields, so reopening the modal
// never shows stale input.
//
// The workflow owns a boundary focus scope: while the modal is open,
// directional movement cannot land on the list underneath it.
type WorkflowModel struct {
	Step WorkflowStep

	xtream XtreamFormModel
	m3u    M3UFormModel

	// Loading is set after a submit leaves the workflow, while the save is
	// in flight. The active form's controls are inert until it resolves.
	Loading bool

	// Width is the terminal width the modal must fit in.
	Width int

	fm    *focus.Manager
	scope *focus.Scope
	keys  formKeyMap
}

// NewWorkflow creates a fresh workflow at the type-selection step.
// The caller opens at most one workflow at a time.
func NewWorkflow(fm *focus.Manager) WorkflowModel {
	m := WorkflowModel{
		Width: 80,
		fm:    fm,
		scope: fm.Root().AddScope("modal", true),
		keys:  newFormKeyMap(),
	}
	m.enterTypeSelect()
	return m
}

// SetWidth records the terminal width and re-clamps the active form's frame.
func (m *WorkflowModel) SetWidth(width int) {
	m.Width = width
	switch m.Step {
	case StepXtreamForm:
		m.xtream.FrameWidth = SafeModalWidth(FormModalWidth, width)
	case StepM3UForm:
		m.m3u.FrameWidth = SafeModalWidth(FormModalWidth, width)
	}
}

// Close tears down the workflow's focus scope. Any draft dies with it.
func (m *WorkflowModel) Close() {
	m.fm.Root().RemoveScope("modal")
	m.fm.Blur()
}

// ModalWidth returns the modal width for the current step, clamped to the
// terminal. The type selector is wider than the forms.
func (m WorkflowModel) ModalWidth() int {
	if m.Step == StepTypeSelect {
		return SafeModalWidth(TypeSelectModalWidth, m.Width)
	}
	return SafeModalWidth(FormModalWidth, m.Width)
}

// enterTypeSelect (re)builds the type-selection focus nodes. Any form scope
// from a previous step is dropped, discarding its draft.
func (m *WorkflowModel) enterTypeSelect() {
	m.Step = StepTypeSelect
	m.scope.Clear()
	m.scope.Register(focus.Node{Key: focusKeyTypeXtream, Row: 0})
	m.scope.Register(focus.Node{Key: focusKeyTypeM3U, Row: 1})
	m.scope.Register(focus.Node{Key: focusKeyBack, Row: 2})
	m.fm.FocusDefault(m.scope)
}

// enterForm mounts the form for the chosen type with empty fields.
func (m *WorkflowModel) enterForm(t source.Type) tea.Cmd {
	m.scope.Clear()
	switch t {
	case source.TypeXtream:
		m.Step = StepXtreamForm
		m.xtream = NewXtreamForm(m.fm, m.scope)
		m.xtream.FrameWidth = SafeModalWidth(FormModalWidth, m.Width)
		return m.xtream.Init()
	case source.TypeM3U:
		m.Step = StepM3UForm
		m.m3u = NewM3UForm(m.fm, m.scope)
		m.m3u.FrameWidth = SafeModalWidth(FormModalWidth, m.Width)
		return m.m3u.Init()
	}
	return nil
}

// SetLoading propagates the in-flight state to the active form.
func (m *WorkflowModel) SetLoading(loading bool) {
	m.Loading = loading
	switch m.Step {
	case StepXtreamForm:
		m.xtream.SetLoading(loading)
	case StepM3UForm:
		m.m3u.SetLoading(loading)
	}
}

// SetError surfaces a save failure on the active form. The form keeps its
// data so the user can retry.
func (m *WorkflowModel) SetError(msg string) {
	switch m.Step {
	case StepXtreamForm:
		m.xtream.SetError(msg)
	case StepM3UForm:
		m.m3u.SetError(msg)
	}
}

// Update handles messages and updates the model
func (m WorkflowModel) Update(msg tea.Msg) (WorkflowModel, tea.Cmd) {
	switch m.Step {
	case StepTypeSelect:
		return m.updateTypeSelect(msg)
	case StepXtreamForm:
		return m.updateXtreamForm(msg)
	case StepM3UForm:
		return m.updateM3UForm(msg)
	}
	return m, nil
}

func (m WorkflowModel) updateTypeSelect(msg tea.Msg) (WorkflowModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.fm.Move(focus.DirUp)
	case key.Matches(keyMsg, m.keys.Down):
		m.fm.Move(focus.DirDown)
	case key.Matches(keyMsg, m.keys.Cancel):
		return m, func() tea.Msg { return WorkflowClosedMsg{} }
	case key.Matches(keyMsg, m.keys.Enter):
		cur := m.fm.Current()
		if cur == nil {
			return m, nil
		}
		switch cur.Key {
		case focusKeyTypeXtream:
			return m, m.enterForm(source.TypeXtream)
		case focusKeyTypeM3U:
			return m, m.enterForm(source.TypeM3U)
		case focusKeyBack:
			return m, func() tea.Msg { return WorkflowClosedMsg{} }
		}
	}

	return m, nil
}

func (m WorkflowModel) updateXtreamForm(msg tea.Msg) (WorkflowModel, tea.Cmd) {
	switch msg := msg.(type) {
	case XtreamSubmittedMsg:
		// Hand the payload to the coordinator; the workflow stays open
		// and inert until the save resolves.
		return m, func() tea.Msg {
			return WorkflowSubmitMsg{Type: source.TypeXtream, Xtream: msg.Data}
		}
	case FormCancelledMsg:
		m.enterTypeSelect()
		return m, nil
	}

	var cmd tea.Cmd
	m.xtream, cmd = m.xtream.Update(msg)
	return m, cmd
}

func (m WorkflowModel) updateM3UForm(msg tea.Msg) (WorkflowModel, tea.Cmd) {
	switch msg := msg.(type) {
	case M3USubmittedMsg:
		return m, func() tea.Msg {
			return WorkflowSubmitMsg{Type: source.TypeM3U, M3U: msg.Data}
		}
	case FormCancelledMsg:
		m.enterTypeSelect()
		return m, nil
	}

	var cmd tea.Cmd
	m.m3u, cmd = m.m3u.Update(msg)
	return m, cmd
}

// View renders the workflow content
func (m WorkflowModel) View() string {
	switch m.Step {
	case StepXtreamForm:
		return m.xtream.View()
	case StepM3UForm:
		return m.m3u.View()
	}

	options := lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Render("Add source"),
		SubtitleStyle.Render("What kind of source is this?"),
		"",
		RenderMenuItem("Xtream Codes — server, username, password", m.fm.IsFocused(m.scope, focusKeyTypeXtream)),
		RenderMenuItem("M3U playlist — playlist URL, optional EPG", m.fm.IsFocused(m.scope, focusKeyTypeM3U)),
		"",
		RenderButton("Back", m.fm.IsFocused(m.scope, focusKeyBack), false),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Width(m.ModalWidth()).
		Padding(1, 2).
		Render(options)
}
