package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GhouI/Ted-IPTV-Player-sub003/internal/focus"
	"github.com/GhouI/Ted-IPTV-Player-sub003/internal/source"
)

// DefaultSkeletonRows is the placeholder row count for the loading state.
const DefaultSkeletonRows = 3

// Focus keys used by the list scope. Row and remove nodes are derived from
// the source id: "row-<id>" and "remove-<id>".
const (
	focusKeyAdd      = "add"
	focusKeyAddFirst = "add-first"
)

// listKeyMap defines key bindings for the source list
type listKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k listKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Quit},
	}
}

// SourceListModel renders the saved-source list.
//
// Exactly one of three states is shown, checked in this precedence: loading
// (fixed-count skeleton rows, all input ignored), empty (a dedicated
// "add your first source" call to action), populated (one row per source
// plus a trailing add affordance). Rows and their remove controls are
// separate focus nodes, so activating remove can never also select the row.
type SourceListModel struct {
	Sources  []source.Source
	ActiveID string
	Loading  bool

	// SkeletonRows is the placeholder count for the loading state.
	SkeletonRows int

	fm    *focus.Manager
	scope *focus.Scope

	Width int

	Help help.Model
	Keys listKeyMap
}

// NewSourceList creates the list component and registers its focus scope
// under parent. The list scope is not a focus boundary: movement may escape
// to sibling surfaces when the list has no candidate in a direction.
func NewSourceList(fm *focus.Manager, parent *focus.Scope) SourceListModel {
	keys := listKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}

	m := SourceListModel{
		SkeletonRows: DefaultSkeletonRows,
		fm:           fm,
		scope:        parent.AddScope("sources", false),
		Help:         help.New(),
		Keys:         keys,
	}
	m.rebuildFocus()
	return m
}

// SetSources replaces the rendered collection and rebuilds focus targets.
func (m *SourceListModel) SetSources(sources []source.Source, activeID string) {
	m.Sources = sources
	m.ActiveID = activeID
	m.rebuildFocus()
}

// SetLoading toggles the loading state. While loading, every list control is
// unregistered so a remote user cannot land focus on a dead row.
func (m *SourceListModel) SetLoading(loading bool) {
	m.Loading = loading
	m.rebuildFocus()
}

// rebuildFocus re-registers the scope's nodes for the current state.
func (m *SourceListModel) rebuildFocus() {
	m.scope.Clear()

	if m.Loading {
		return
	}

	if len(m.Sources) == 0 {
		m.scope.Register(focus.Node{Key: focusKeyAddFirst, Row: 0, Col: 0})
		m.fm.EnsureFocus(m.scope)
		return
	}

	for i, src := range m.Sources {
		m.scope.Register(focus.Node{Key: rowFocusKey(src.ID), Row: i, Col: 0})
		m.scope.Register(focus.Node{Key: removeFocusKey(src.ID), Row: i, Col: 1})
	}
	m.scope.Register(focus.Node{Key: focusKeyAdd, Row: len(m.Sources), Col: 0})
	m.fm.EnsureFocus(m.scope)
}

func rowFocusKey(id string) string {
	return "row-" + id
}

func removeFocusKey(id string) string {
	return "remove-" + id
}

// Update handles messages and updates the model
func (m SourceListModel) Update(msg tea.Msg) (SourceListModel, tea.Cmd) {
	// Loading state ignores the real collection and all callbacks.
	if m.Loading {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Up):
		m.fm.Move(focus.DirUp)
	case key.Matches(keyMsg, m.Keys.Down):
		m.fm.Move(focus.DirDown)
	case key.Matches(keyMsg, m.Keys.Left):
		m.fm.Move(focus.DirLeft)
	case key.Matches(keyMsg, m.Keys.Right):
		m.fm.Move(focus.DirRight)
	case key.Matches(keyMsg, m.Keys.Select):
		return m, m.activate()
	}

	return m, nil
}

// activate maps the focused node to its primary action. Enter activation is
// 1:1 with the node: a row selects, its remove control removes, the add
// affordances open the workflow. Nothing else fires.
func (m SourceListModel) activate() tea.Cmd {
	cur := m.fm.Current()
	if cur == nil {
		return nil
	}

	switch {
	case cur.Key == focusKeyAdd || cur.Key == focusKeyAddFirst:
		return func() tea.Msg { return AddSourceRequestedMsg{} }

	case strings.HasPrefix(cur.Key, "remove-"):
		id := strings.TrimPrefix(cur.Key, "remove-")
		if src := m.sourceByID(id); src != nil {
			entity := *src
			return func() tea.Msg { return RemoveSourceMsg{Source: entity} }
		}

	case strings.HasPrefix(cur.Key, "row-"):
		id := strings.TrimPrefix(cur.Key, "row-")
		if src := m.sourceByID(id); src != nil {
			entity := *src
			return func() tea.Msg { return SelectSourceMsg{Source: entity} }
		}
	}

	return nil
}

func (m SourceListModel) sourceByID(id string) *source.Source {
	for i := range m.Sources {
		if m.Sources[i].ID == id {
			return &m.Sources[i]
		}
	}
	return nil
}

// View renders the list content
func (m SourceListModel) View() string {
	switch {
	case m.Loading:
		return m.renderLoading()
	case len(m.Sources) == 0:
		return m.renderEmpty()
	default:
		return m.renderPopulated()
	}
}

// renderLoading renders the fixed-count skeleton. The real collection is
// ignored entirely in this state.
func (m SourceListModel) renderLoading() string {
	rows := make([]string, 0, m.SkeletonRows+1)
	rows = append(rows, TitleStyle.Render("Sources"))
	for i := 0; i < m.SkeletonRows; i++ {
		rows = append(rows, SkeletonStyle.Render("  "+strings.Repeat("░", 36)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderEmpty renders the call to action for a first source.
func (m SourceListModel) renderEmpty() string {
	title := TitleStyle.Render("Sources")
	hint := SubtitleStyle.Render("No sources configured yet.")
	cta := RenderButton("+ Add your first source", m.fm.IsFocused(m.scope, focusKeyAddFirst), false)

	return lipgloss.JoinVertical(lipgloss.Left, title, hint, "", cta)
}

// renderPopulated renders one row per source plus the trailing add affordance.
func (m SourceListModel) renderPopulated() string {
	rows := make([]string, 0, len(m.Sources)+2)
	rows = append(rows, TitleStyle.Render("Sources"))

	for _, src := range m.Sources {
		rows = append(rows, m.renderRow(src))
	}

	rows = append(rows, "")
	rows = append(rows, RenderButton("+ Add source", m.fm.IsFocused(m.scope, focusKeyAdd), false))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderRow renders a single source row: name, type label, active badge, and
// the remove control.
func (m SourceListModel) renderRow(src source.Source) string {
	rowFocused := m.fm.IsFocused(m.scope, rowFocusKey(src.ID))
	removeFocused := m.fm.IsFocused(m.scope, removeFocusKey(src.ID))

	arrow := "  "
	nameStyle := lipgloss.NewStyle().Foreground(TextColor)
	if rowFocused {
		arrow = "→ "
		nameStyle = nameStyle.Foreground(HighlightColor).Bold(true)
	}

	name := nameStyle.Width(24).Render(src.Name)
	typeLabel := TypeLabelStyle.Width(16).Render(src.Type.Label())

	badge := strings.Repeat(" ", 9)
	if src.ID == m.ActiveID {
		badge = ActiveBadgeStyle.Render("● active ")
	}

	removeStyle := lipgloss.NewStyle().Foreground(SubtleColor)
	removeLabel := "[remove]"
	if removeFocused {
		removeStyle = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
		removeLabel = "[✗ remove]"
	}

	return lipgloss.JoinHorizontal(lipgloss.Left,
		arrow,
		name,
		typeLabel,
		badge,
		removeStyle.Render(removeLabel),
	)
}

// HelpView renders the list's key bindings for the footer.
func (m SourceListModel) HelpView() string {
	return m.Help.View(m.Keys)
}

// StatusLine summarizes the collection for the footer.
func (m SourceListModel) StatusLine() string {
	if m.Loading {
		return "Loading sources..."
	}
	if len(m.Sources) == 0 {
		return "No sources"
	}
	active := "none active"
	for _, src := range m.Sources {
		if src.ID == m.ActiveID {
			active = fmt.Sprintf("active: %s", src.Name)
			break
		}
	}
	return fmt.Sprintf("%d source(s) • %s", len(m.Sources), active)
}
