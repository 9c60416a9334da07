// Package focus implements directional focus management for remote-style
// navigation (up/down/left/right/enter).
//
// Interactive surfaces register their controls as nodes in a tree of scopes.
// A scope is a self-contained interactive region (a form, a list, a modal);
// each node is registered under a stable, human-readable key that is unique
// within its scope and carries a grid position used for directional traversal.
//
// # Scopes and Boundaries
//
// A scope created with boundary=false lets directional movement escape to a
// sibling scope when no focusable node exists in the requested direction. A
// boundary scope traps movement inside itself until the owning component
// tears it down (modal close, workflow transition).
//
// # Traversal
//
// Move performs a graph search over registered node positions: among enabled
// nodes strictly in the requested direction, the nearest one wins (Manhattan
// distance with the perpendicular axis weighted 4x, lowest key as the
// deterministic tie-break). Disabled nodes are excluded from traversal
// entirely - they can never receive focus, not merely ignore activation.
//
// # Activation
//
// Activate invokes the focused node's handler. A node without a handler is a
// no-op, never a crash.
//
// The package is pure state - it renders nothing and can be unit-tested
// without a terminal. Components consume Manager.IsFocused to drive their
// visual focus state.
package focus
