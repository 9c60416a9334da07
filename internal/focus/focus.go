package focus

// Direction is a directional move request from the remote.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Node is a focusable control registered in a scope.
//
// Key is stable and unique within the owning scope. Row/Col place the node on
// the scope's logical grid for directional traversal. A Disabled node is
// excluded from traversal entirely. OnActivate is the node's primary action;
// nil means activation is a no-op.
type Node struct {
	Key        string
	Row, Col   int
	Disabled   bool
	OnActivate func()

	scope *Scope
}

// Scope is a bounded region of focusable nodes with its own traversal rules.
type Scope struct {
	Key      string
	Boundary bool

	parent   *Scope
	children []*Scope
	nodes    []*Node
}

// AddScope creates (or replaces) a child scope with the given key.
// Replacing keeps scope keys unique within the parent across rebuilds.
func (s *Scope) AddScope(key string, boundary bool) *Scope {
	s.removeChild(key)
	child := &Scope{Key: key, Boundary: boundary, parent: s}
	s.children = append(s.children, child)
	return child
}

// RemoveScope removes the child scope with the given key, if present.
func (s *Scope) RemoveScope(key string) {
	s.removeChild(key)
}

func (s *Scope) removeChild(key string) {
	for i, c := range s.children {
		if c.Key == key {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return
		}
	}
}

// Child returns the child scope with the given key, or nil.
func (s *Scope) Child(key string) *Scope {
	for _, c := range s.children {
		if c.Key == key {
			return c
		}
	}
	return nil
}

// Register adds a node to the scope. Registering an existing key replaces the
// previous node, which keeps node keys unique within the scope when a
// component re-registers its controls after a state change.
func (s *Scope) Register(n Node) *Node {
	s.Unregister(n.Key)
	node := &n
	node.scope = s
	s.nodes = append(s.nodes, node)
	return node
}

// Unregister removes the node with the given key, if present.
func (s *Scope) Unregister(key string) {
	for i, node := range s.nodes {
		if node.Key == key {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			return
		}
	}
}

// Clear removes every node and child scope. Used when a component unmounts
// its interactive region.
func (s *Scope) Clear() {
	s.nodes = nil
	s.children = nil
}

// Node returns the registered node with the given key, or nil.
func (s *Scope) Node(key string) *Node {
	for _, node := range s.nodes {
		if node.Key == key {
			return node
		}
	}
	return nil
}

// enabledNodes collects the scope's own enabled nodes.
func (s *Scope) enabledNodes() []*Node {
	var out []*Node
	for _, node := range s.nodes {
		if !node.Disabled {
			out = append(out, node)
		}
	}
	return out
}

// subtreeEnabledNodes collects enabled nodes from the scope and all
// descendants.
func (s *Scope) subtreeEnabledNodes() []*Node {
	out := s.enabledNodes()
	for _, c := range s.children {
		out = append(out, c.subtreeEnabledNodes()...)
	}
	return out
}

// Manager owns the scope tree and the single focused node.
type Manager struct {
	root    *Scope
	focused *Node
}

// NewManager creates a manager with an empty root scope.
func NewManager() *Manager {
	return &Manager{root: &Scope{Key: "root"}}
}

// Root returns the root scope.
func (m *Manager) Root() *Scope {
	return m.root
}

// Current returns the focused node, or nil when nothing is focused.
func (m *Manager) Current() *Node {
	return m.focused
}

// IsFocused reports whether the node with the given key in the given scope is
// focused. Components consume this boolean to drive visual state.
func (m *Manager) IsFocused(scope *Scope, key string) bool {
	return m.focused != nil && m.focused.scope == scope && m.focused.Key == key
}

// Focus moves focus to the node with the given key in the given scope.
// Returns false when the node is absent or disabled.
func (m *Manager) Focus(scope *Scope, key string) bool {
	node := scope.Node(key)
	if node == nil || node.Disabled {
		return false
	}
	m.focused = node
	return true
}

// FocusDefault focuses the scope's default target: the first enabled node in
// registration order, descending into children when the scope itself has
// none. Used when a freshly mounted scope requests its initial focus.
func (m *Manager) FocusDefault(scope *Scope) bool {
	nodes := scope.subtreeEnabledNodes()
	if len(nodes) == 0 {
		return false
	}
	m.focused = nodes[0]
	return true
}

// Blur clears focus entirely.
func (m *Manager) Blur() {
	m.focused = nil
}

// EnsureFocus re-seats focus when the current node has been removed or
// disabled by a state change, falling back to the scope's default target.
func (m *Manager) EnsureFocus(scope *Scope) {
	if m.focused != nil && !m.focused.Disabled && m.focused.scope != nil {
		if m.focused.scope.Node(m.focused.Key) == m.focused {
			return
		}
	}
	m.FocusDefault(scope)
}

// Activate invokes the focused node's primary action.
// A missing node or handler is a no-op.
func (m *Manager) Activate() {
	if m.focused == nil || m.focused.Disabled || m.focused.OnActivate == nil {
		return
	}
	m.focused.OnActivate()
}

// Move shifts focus in the given direction. The search starts in the focused
// node's scope; when that scope has no candidate and is not a boundary, the
// search widens to sibling scopes through each non-boundary ancestor. Returns
// false when focus did not move.
func (m *Manager) Move(dir Direction) bool {
	if m.focused == nil {
		return false
	}

	scope := m.focused.scope
	if scope == nil {
		return false
	}

	// Own scope first.
	if next := bestCandidate(m.focused, scope.subtreeEnabledNodes(), dir); next != nil {
		m.focused = next
		return true
	}

	// Widen through non-boundary ancestors.
	from := scope
	for !from.Boundary && from.parent != nil {
		parent := from.parent
		var pool []*Node
		for _, node := range parent.enabledNodes() {
			pool = append(pool, node)
		}
		for _, sibling := range parent.children {
			if sibling == from {
				continue
			}
			pool = append(pool, sibling.subtreeEnabledNodes()...)
		}
		if next := bestCandidate(m.focused, pool, dir); next != nil {
			m.focused = next
			return true
		}
		from = parent
	}

	return false
}

// bestCandidate picks the nearest enabled node strictly in the requested
// direction. Distance is Manhattan with the perpendicular axis weighted 4x;
// ties break on the lowest key for determinism.
func bestCandidate(cur *Node, pool []*Node, dir Direction) *Node {
	var best *Node
	bestScore := 0

	for _, cand := range pool {
		if cand == cur {
			continue
		}

		var primary, perp int
		switch dir {
		case DirUp:
			primary = cur.Row - cand.Row
			perp = abs(cand.Col - cur.Col)
		case DirDown:
			primary = cand.Row - cur.Row
			perp = abs(cand.Col - cur.Col)
		case DirLeft:
			primary = cur.Col - cand.Col
			perp = abs(cand.Row - cur.Row)
		case DirRight:
			primary = cand.Col - cur.Col
			perp = abs(cand.Row - cur.Row)
		}

		if primary <= 0 {
			continue // not strictly in the requested direction
		}

		score := primary + 4*perp
		if best == nil || score < bestScore || (score == bestScore && cand.Key < best.Key) {
			best = cand
			bestScore = score
		}
	}

	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
