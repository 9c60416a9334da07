package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFocusDefaultPicksFirstEnabled(t *testing.T) {
	m := NewManager()
	form := m.Root().AddScope("form", true)
	form.Register(Node{Key: "name", Row: 0, Disabled: true})
	form.Register(Node{Key: "url", Row: 1})
	form.Register(Node{Key: "submit", Row: 2})

	require.True(t, m.FocusDefault(form))
	assert.Equal(t, "url", m.Current().Key, "disabled node must be skipped as default target")
}

func TestMoveVertically(t *testing.T) {
	m := NewManager()
	form := m.Root().AddScope("form", true)
	form.Register(Node{Key: "name", Row: 0})
	form.Register(Node{Key: "url", Row: 1})
	form.Register(Node{Key: "submit", Row: 2})

	require.True(t, m.Focus(form, "name"))
	require.True(t, m.Move(DirDown))
	assert.Equal(t, "url", m.Current().Key)
	require.True(t, m.Move(DirDown))
	assert.Equal(t, "submit", m.Current().Key)
	require.True(t, m.Move(DirUp))
	assert.Equal(t, "url", m.Current().Key)
}

func TestMoveSkipsDisabledEntirely(t *testing.T) {
	m := NewManager()
	form := m.Root().AddScope("form", true)
	form.Register(Node{Key: "name", Row: 0})
	form.Register(Node{Key: "submit", Row: 1, Disabled: true})
	form.Register(Node{Key: "cancel", Row: 2})

	require.True(t, m.Focus(form, "name"))
	require.True(t, m.Move(DirDown))
	assert.Equal(t, "cancel", m.Current().Key, "traversal must jump over disabled nodes")
}

func TestMoveHorizontalPrefersSameRow(t *testing.T) {
	m := NewManager()
	list := m.Root().AddScope("list", false)
	list.Register(Node{Key: "row-a", Row: 0, Col: 0})
	list.Register(Node{Key: "remove-a", Row: 0, Col: 1})
	list.Register(Node{Key: "row-b", Row: 1, Col: 0})
	list.Register(Node{Key: "remove-b", Row: 1, Col: 1})

	require.True(t, m.Focus(list, "row-a"))
	require.True(t, m.Move(DirRight))
	assert.Equal(t, "remove-a", m.Current().Key)
	require.True(t, m.Move(DirDown))
	assert.Equal(t, "remove-b", m.Current().Key)
	require.True(t, m.Move(DirLeft))
	assert.Equal(t, "row-b", m.Current().Key)
}

func TestBoundaryScopeTrapsMovement(t *testing.T) {
	m := NewManager()
	list := m.Root().AddScope("list", false)
	list.Register(Node{Key: "row-a", Row: 0})

	modal := m.Root().AddScope("modal", true)
	modal.Register(Node{Key: "xtream", Row: 0})
	modal.Register(Node{Key: "m3u", Row: 1})

	require.True(t, m.Focus(modal, "m3u"))
	assert.False(t, m.Move(DirDown), "no node below and boundary set - movement must be trapped")
	assert.Equal(t, "m3u", m.Current().Key)

	// Inside the boundary, movement still works.
	require.True(t, m.Move(DirUp))
	assert.Equal(t, "xtream", m.Current().Key)
}

func TestNonBoundaryScopeEscapesToSibling(t *testing.T) {
	m := NewManager()
	header := m.Root().AddScope("header", false)
	header.Register(Node{Key: "settings", Row: 0})

	list := m.Root().AddScope("list", false)
	list.Register(Node{Key: "row-a", Row: 1})

	require.True(t, m.Focus(list, "row-a"))
	require.True(t, m.Move(DirUp), "movement should escape a non-boundary scope")
	assert.Equal(t, "settings", m.Current().Key)
}

func TestActivateRunsHandler(t *testing.T) {
	m := NewManager()
	list := m.Root().AddScope("list", false)

	fired := 0
	list.Register(Node{Key: "add", Row: 0, OnActivate: func() { fired++ }})

	require.True(t, m.Focus(list, "add"))
	m.Activate()
	assert.Equal(t, 1, fired)
}

func TestActivateWithoutHandlerIsNoOp(t *testing.T) {
	m := NewManager()
	list := m.Root().AddScope("list", false)
	list.Register(Node{Key: "row", Row: 0})

	require.True(t, m.Focus(list, "row"))
	assert.NotPanics(t, func() { m.Activate() })
}

func TestActivateWithoutFocusIsNoOp(t *testing.T) {
	m := NewManager()
	assert.NotPanics(t, func() { m.Activate() })
}

func TestFocusRejectsDisabledNode(t *testing.T) {
	m := NewManager()
	form := m.Root().AddScope("form", true)
	form.Register(Node{Key: "submit", Row: 0, Disabled: true})

	assert.False(t, m.Focus(form, "submit"), "a disabled control must never receive focus")
	assert.Nil(t, m.Current())
}

func TestRegisterReplacesExistingKey(t *testing.T) {
	m := NewManager()
	form := m.Root().AddScope("form", true)
	form.Register(Node{Key: "submit", Row: 0})
	form.Register(Node{Key: "submit", Row: 0, Disabled: true})

	nodes := form.subtreeEnabledNodes()
	assert.Empty(t, nodes, "re-registration must replace, not duplicate")
}

func TestEnsureFocusReseatsAfterRemoval(t *testing.T) {
	m := NewManager()
	list := m.Root().AddScope("list", false)
	list.Register(Node{Key: "row-a", Row: 0})
	list.Register(Node{Key: "row-b", Row: 1})

	require.True(t, m.Focus(list, "row-b"))
	list.Unregister("row-b")
	m.EnsureFocus(list)

	require.NotNil(t, m.Current())
	assert.Equal(t, "row-a", m.Current().Key)
}

func TestDeterministicTieBreak(t *testing.T) {
	m := NewManager()
	grid := m.Root().AddScope("grid", true)
	grid.Register(Node{Key: "origin", Row: 0, Col: 1})
	// Two equidistant candidates below.
	grid.Register(Node{Key: "a", Row: 1, Col: 0})
	grid.Register(Node{Key: "b", Row: 1, Col: 2})

	require.True(t, m.Focus(grid, "origin"))
	require.True(t, m.Move(DirDown))
	assert.Equal(t, "a", m.Current().Key, "equidistant candidates break ties on lowest key")
}
