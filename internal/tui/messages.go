package tui

import (
	"github.com/GhouI/Ted-IPTV-Player-sub003/internal/source"
)

// Messages flowing between components. Components never call back into their
// parent directly; they emit one of these and the coordinator reacts, so an
// unhandled message degrades to a no-op rather than a crash.

// SelectSourceMsg is emitted when a list row's primary action fires.
// It carries the full entity, not just the id.
type SelectSourceMsg struct {
	Source source.Source
}

// RemoveSourceMsg is emitted when a row's remove control fires. Removal is an
// isolated action: emitting it never also emits SelectSourceMsg.
type RemoveSourceMsg struct {
	Source source.Source
}

// AddSourceRequestedMsg is emitted by the list's add affordance (or the
// empty-state call to action) to open the add-source workflow.
type AddSourceRequestedMsg struct{}

// XtreamSubmittedMsg carries the normalized Xtream form payload.
// Emitted exactly once per successful validation pass.
type XtreamSubmittedMsg struct {
	Data source.XtreamData
}

// M3USubmittedMsg carries the normalized M3U form payload.
type M3USubmittedMsg struct {
	Data source.M3UData
}

// FormCancelledMsg is emitted by a form's cancel control (never while the
// form is loading).
type FormCancelledMsg struct{}

// WorkflowSubmitMsg is the workflow's exit-with-data message: the chosen
// source type plus its normalized payload. Exactly one of Xtream/M3U is
// meaningful, according to Type.
type WorkflowSubmitMsg struct {
	Type   source.Type
	Xtream source.XtreamData
	M3U    source.M3UData
}

// WorkflowClosedMsg is the workflow's exit-without-data message. Any
// partially entered data has already been discarded.
type WorkflowClosedMsg struct{}

// sourcesLoadedMsg delivers the collection read from the registry at startup.
// The registry read cannot fail (invalid entries are skipped during the
// build), so the message carries no error.
type sourcesLoadedMsg struct {
	col *source.Collection
}

// saveCompleteMsg reports the outcome of an asynchronous registry save.
type saveCompleteMsg struct {
	err error
}
