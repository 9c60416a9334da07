package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/GhouI/Ted-IPTV-Player-sub003/internal/config"
	"github.com/GhouI/Ted-IPTV-Player-sub003/internal/focus"
	"github.com/GhouI/Ted-IPTV-Player-sub003/internal/logging"
	"github.com/GhouI/Ted-IPTV-Player-sub003/internal/source"
)

// AppModel is the top-level coordinator. It owns the source collection, the
// registry it persists to, the focus manager, and the modal lifecycle. Child
// components never touch the registry; they emit messages and AppModel
// applies the mutation, persists it, and pushes the new state back down.
type AppModel struct {
	registry *config.Registry
	col      *source.Collection

	fm   *focus.Manager
	list SourceListModel

	// workflow is non-nil exactly while the add-source modal is open.
	workflow *WorkflowModel

	// pendingAddID is the id of a workflow-submitted source whose save is
	// still in flight, so a failed save can roll the add back.
	pendingAddID string

	width  int
	height int

	errMsg   string
	quitting bool

	logger *zap.Logger
}

// NewAppModel creates the application model against a loaded registry.
// The list starts in the loading state until the initial read resolves.
func NewAppModel(registry *config.Registry) AppModel {
	fm := focus.NewManager()
	list := NewSourceList(fm, fm.Root())
	list.SetLoading(true)
	if registry.Preferences != nil && registry.Preferences.SkeletonRows > 0 {
		list.SkeletonRows = registry.Preferences.SkeletonRows
	}

	return AppModel{
		registry: registry,
		fm:       fm,
		list:     list,
		width:    80,
		height:   24,
		logger:   logging.GetLogger(),
	}
}

// Init kicks off the initial source load.
func (m AppModel) Init() tea.Cmd {
	return m.loadSourcesCmd()
}

// loadSourcesCmd reads the collection out of the registry off the update loop.
func (m AppModel) loadSourcesCmd() tea.Cmd {
	registry := m.registry
	return func() tea.Msg {
		return sourcesLoadedMsg{col: registry.Collection()}
	}
}

// saveCmd persists the collection through the registry. The snapshot is taken
// synchronously on the update loop; the returned command performs only the
// disk write, so collection mutations that arrive while the save is in flight
// cannot race the marshal.
func (m AppModel) saveCmd() tea.Cmd {
	m.registry.SetCollection(m.col)
	snapshot := *m.registry
	return func() tea.Msg {
		if err := snapshot.Save(); err != nil {
			return saveCompleteMsg{err: source.NewStorageError("could not persist sources", err)}
		}
		return saveCompleteMsg{}
	}
}

// Update handles messages and updates the model
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.workflow != nil {
			m.workflow.SetWidth(msg.Width)
		}
		return m, nil

	case sourcesLoadedMsg:
		return m.handleSourcesLoaded(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.workflow == nil && (msg.String() == "q" || msg.String() == "esc") {
			m.quitting = true
			return m, tea.Quit
		}

	case AddSourceRequestedMsg:
		return m.openWorkflow()

	case SelectSourceMsg:
		return m.handleSelect(msg)

	case RemoveSourceMsg:
		return m.handleRemove(msg)

	case WorkflowSubmitMsg:
		return m.handleWorkflowSubmit(msg)

	case WorkflowClosedMsg:
		return m.closeWorkflow()

	case saveCompleteMsg:
		return m.handleSaveComplete(msg)
	}

	// Route remaining messages to the open modal, or the list underneath.
	if m.workflow != nil {
		wf, cmd := m.workflow.Update(msg)
		m.workflow = &wf
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m AppModel) handleSourcesLoaded(msg sourcesLoadedMsg) (tea.Model, tea.Cmd) {
	m.col = msg.col
	m.list.SetLoading(false)
	m.list.SetSources(m.col.Sources, m.col.ActiveID)
	return m, nil
}

func (m AppModel) openWorkflow() (tea.Model, tea.Cmd) {
	// Each open starts a fresh workflow: type selection, empty fields.
	wf := NewWorkflow(m.fm)
	wf.SetWidth(m.width)
	m.workflow = &wf
	m.logger.Debug("add-source workflow opened")
	return m, nil
}

func (m AppModel) closeWorkflow() (tea.Model, tea.Cmd) {
	if m.workflow != nil {
		m.workflow.Close()
		m.workflow = nil
		m.pendingAddID = ""
	}
	// Focus returns to the list.
	m.list.SetSources(m.col.Sources, m.col.ActiveID)
	m.fm.EnsureFocus(m.fm.Root().Child("sources"))
	return m, nil
}

// handleSelect marks a row's source as the active playback source.
func (m AppModel) handleSelect(msg SelectSourceMsg) (tea.Model, tea.Cmd) {
	if err := m.col.SetActive(msg.Source.ID); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	m.errMsg = ""
	m.logger.Info("active source changed",
		zap.String("id", msg.Source.ID),
		zap.String("name", msg.Source.Name))
	m.list.SetSources(m.col.Sources, m.col.ActiveID)
	return m, m.saveCmd()
}

// handleRemove deletes the source. Removal never selects: if the removed
// source was active the collection clears the reference, and no replacement
// is chosen here.
func (m AppModel) handleRemove(msg RemoveSourceMsg) (tea.Model, tea.Cmd) {
	if err := m.col.Remove(msg.Source.ID); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	m.errMsg = ""
	m.logger.Info("source removed",
		zap.String("id", msg.Source.ID),
		zap.String("name", msg.Source.Name))
	m.list.SetSources(m.col.Sources, m.col.ActiveID)
	return m, m.saveCmd()
}

// handleWorkflowSubmit constructs the entity from the normalized payload,
// adds it, and starts the persist. The workflow stays open and inert until
// saveCompleteMsg resolves it.
func (m AppModel) handleWorkflowSubmit(msg WorkflowSubmitMsg) (tea.Model, tea.Cmd) {
	if m.workflow == nil {
		return m, nil
	}
	if m.workflow.Loading || m.pendingAddID != "" {
		// A save is already in flight. A second submission can be queued
		// before the first one's loading state propagates back to the
		// form; it is the same user action, so it must not add twice.
		return m, nil
	}

	var src source.Source
	switch msg.Type {
	case source.TypeXtream:
		src = source.NewXtreamSource(msg.Xtream)
	case source.TypeM3U:
		src = source.NewM3USource(msg.M3U)
	default:
		return m, nil
	}

	if err := m.col.Add(src); err != nil {
		// The modal covers the list banner, so the error goes to the form.
		m.workflow.SetError(err.Error())
		m.logger.Warn("source rejected", zap.Error(err))
		return m, nil
	}

	m.pendingAddID = src.ID
	m.workflow.SetLoading(true)
	m.logger.Info("source added",
		zap.String("id", src.ID),
		zap.String("type", string(src.Type)),
		zap.String("name", src.Name))
	return m, m.saveCmd()
}

func (m AppModel) handleSaveComplete(msg saveCompleteMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errMsg = "Failed to save: " + msg.err.Error()
		m.logger.Error("registry save failed", zap.Error(msg.err))
		if m.workflow != nil {
			// Keep the workflow open with its data so the user can retry.
			m.workflow.SetLoading(false)
			m.workflow.SetError(m.errMsg)
			if m.pendingAddID != "" {
				// Undo the optimistic add; a retry re-adds it.
				_ = m.col.Remove(m.pendingAddID)
				m.pendingAddID = ""
			}
		}
		return m, nil
	}

	m.errMsg = ""
	if m.workflow != nil && m.pendingAddID != "" {
		// The submit's save landed; the workflow is done.
		return m.closeWorkflow()
	}
	return m, nil
}

// View renders the application
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	content := m.list.View()
	if m.errMsg != "" {
		content = ErrorBannerStyle.Render(m.errMsg) + "\n" + content
	}

	footer := m.list.StatusLine() + "  •  " + m.list.HelpView()
	if m.workflow != nil {
		footer = "↑/↓ move • enter confirm • esc back"
	}

	base := RenderApplicationContainer(content, footer, m.width, m.height)

	if m.workflow != nil {
		return RenderModal(m.workflow.View(), m.width, m.height)
	}

	return base
}
