// Package tui implements the terminal user interface for the Ted IPTV player's
// source management screens.
//
// The package is built on the Bubble Tea framework and follows the Elm
// architecture with immutable state updates and a Model-Update-View pattern.
// Every interactive surface is navigable with the five-button remote
// vocabulary: up/down/left/right move focus, enter activates the focused
// control. Mouse support is intentionally absent.
//
// # Components
//
//   - SourceListModel: the saved-source list with loading, empty, and
//     populated states, per-row select/remove controls, and an add affordance
//   - XtreamFormModel / M3UFormModel: onboarding forms that validate input and
//     emit normalized submission payloads
//   - WorkflowModel: the add-source modal, a two-step state machine (type
//     selection, then the chosen form)
//   - AppModel: the coordinator that owns the source collection, the registry,
//     and the modal lifecycle
//
// # Focus Management
//
// All components register their controls with a shared focus.Manager. The
// list lives in a non-boundary scope; the add-source modal owns a boundary
// scope so directional movement cannot escape it while it is open. Disabled
// controls (submit while saving) are unregistered from traversal entirely.
//
// # Framework Components
//
//   - bubbles/textinput: form fields (password fields use masked echo)
//   - bubbles/spinner: saving indicator on the submit control
//   - bubbles/help + bubbles/key: context-sensitive footer help
//   - lipgloss: styling and layout
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := tui.Run(registry); err != nil {
//	    log.Fatal(err)
//	}
package tui
