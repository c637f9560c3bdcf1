package flex

import "github.com/flexkit/flex/internal/core/geom"

// MeasureFunc lets a leaf node (one with no children) report its own
// intrinsic size for a given constraint pair, e.g. text or an image. A
// node with a MeasureFunc set may not have children and vice versa (§3).
type MeasureFunc func(node *Node, width geom.Value, widthMode MeasureMode, height geom.Value, heightMode MeasureMode) *geom.Size

// directionUnset is a sentinel distinct from any real Direction, used so
// the very first layout of a node always "needs to visit" regardless of
// its dirty bit (§4.7).
const directionUnset Direction = -1

// cachedMeasurement is one remembered (request, answer) pair (§3).
type cachedMeasurement struct {
	valid bool

	availableWidth  geom.Value
	availableHeight geom.Value
	widthMode       MeasureMode
	heightMode      MeasureMode

	computedWidth  geom.Value
	computedHeight geom.Value
}

// measurementRingSize is the bounded ring of measurement-pass cache slots
// kept per node (§3): "16 measurement slots, next-write-index wrapping".
const measurementRingSize = 16

// Layout is a node's mutable computed output. A layout pass writes only
// to the current node's Direction/MeasuredDimensions and to each child's
// Position/LineIndex (and, recursively, the child's own Layout).
type Layout struct {
	Position           [4]geom.Value // indexed by geom.Edge{Left,Top,Right,Bottom}
	Dimensions         [2]geom.Value // indexed by geom.Dimension
	Direction          Direction
	LineIndex          int
	MeasuredDimensions [2]geom.Value

	ComputedFlexBasis           geom.Value
	ComputedFlexBasisGeneration uint64

	LastParentDirection Direction

	GenerationCount uint64
	HasNewLayout    bool
	IsDirty         bool

	cachedLayout                cachedMeasurement
	measurements                [measurementRingSize]cachedMeasurement
	nextCachedMeasurementsIndex int
}

func newLayout() Layout {
	l := Layout{
		LastParentDirection: directionUnset,
		ComputedFlexBasis:   geom.Undefined,
	}
	for i := range l.Position {
		l.Position[i] = geom.Undefined
	}
	for i := range l.Dimensions {
		l.Dimensions[i] = geom.Undefined
		l.MeasuredDimensions[i] = geom.Undefined
	}
	return l
}

// Node owns its Style and Layout, an ordered child list, and an optional
// MeasureFunc/Context. A child has at most one parent; deleting a node
// detaches it from its parent and orphans (does not delete) its children.
type Node struct {
	style  Style
	layout Layout

	parent   *Node
	children []*Node

	measure MeasureFunc
	context any

	config *Config
}

// NewNode allocates a Node with default Style, using cfg's node allocator
// hook if one is set (§5/§6). A nil cfg falls back to DefaultConfig().
func NewNode(cfg *Config) *Node {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	var n *Node
	if cfg.newNode != nil {
		n = cfg.newNode()
	} else {
		n = &Node{}
	}
	n.style = NewStyle()
	n.layout = newLayout()
	n.config = cfg
	cfg.instanceCount++
	return n
}

// Reset restores a node to its freshly-allocated state. It requires the
// node to currently have no parent and no children — resetting an
// attached node is a programmer error.
func (n *Node) Reset() {
	if n.parent != nil || len(n.children) > 0 {
		n.config.logf(LogError, "Node.Reset: node still attached (parent=%v children=%d)", n.parent != nil, len(n.children))
		panic("flex: Reset called on an attached node")
	}
	cfg := n.config
	*n = Node{config: cfg}
	n.style = NewStyle()
	n.layout = newLayout()
}

// Free detaches n from its parent (if any) and decrements the owning
// Config's instance count. Children are orphaned, not freed.
func (n *Node) Free() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
	if n.config != nil {
		n.config.instanceCount--
	}
}

// FreeRecursive frees n and every descendant, deepest first.
func (n *Node) FreeRecursive() {
	for _, c := range append([]*Node(nil), n.children...) {
		c.parent = nil
		c.FreeRecursive()
	}
	n.children = nil
	n.Free()
}

// Style returns a copy of the node's current style. Mutate it and pass it
// to SetStyle (or use the SetXxx accessors) to change layout input.
func (n *Node) Style() Style { return n.style }

// SetStyle replaces the node's style wholesale and marks it dirty.
func (n *Node) SetStyle(s Style) {
	n.style = s
	n.MarkDirty()
}

// Layout returns the node's last-computed layout output.
func (n *Node) Layout() Layout { return n.layout }

// Context returns the opaque host payload attached via SetContext.
func (n *Node) Context() any { return n.context }

// SetContext attaches an opaque host payload to the node. It does not
// affect layout and does not mark the node dirty.
func (n *Node) SetContext(ctx any) { n.context = ctx }

// HasMeasureFunc reports whether a measure callback is set.
func (n *Node) HasMeasureFunc() bool { return n.measure != nil }

// SetMeasureFunc installs a measure callback. It panics if the node
// already has children (§3: a node with a measure callback has zero
// children). Passing nil clears the callback.
func (n *Node) SetMeasureFunc(f MeasureFunc) {
	if f != nil && len(n.children) > 0 {
		n.config.logf(LogError, "Node.SetMeasureFunc: node already has %d children", len(n.children))
		panic("flex: cannot set a measure function on a node with children")
	}
	n.measure = f
	n.MarkDirty()
}

// ChildCount returns the number of children n owns.
func (n *Node) ChildCount() int { return len(n.children) }

// GetChild returns the child at index, or nil if out of range.
func (n *Node) GetChild(index int) *Node {
	if index < 0 || index >= len(n.children) {
		return nil
	}
	return n.children[index]
}

// Parent returns n's parent, or nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// InsertChild inserts child at index under n. It panics if child already
// has a parent, or if n has a measure callback set (§3).
func (n *Node) InsertChild(child *Node, index int) {
	if child.parent != nil {
		n.config.logf(LogError, "Node.InsertChild: child already has a parent")
		panic("flex: child already has a parent")
	}
	if n.measure != nil {
		n.config.logf(LogError, "Node.InsertChild: parent has a measure function")
		panic("flex: cannot insert a child under a node with a measure function")
	}
	if index < 0 || index > len(n.children) {
		index = len(n.children)
	}
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	child.parent = n
	n.MarkDirty()
}

// AddChild appends child to n's child list.
func (n *Node) AddChild(child *Node) { n.InsertChild(child, len(n.children)) }

// RemoveChild detaches child from n, if present, and marks n dirty.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			n.MarkDirty()
			return
		}
	}
}

// IsDirty reports whether n's layout is stale with respect to its style.
func (n *Node) IsDirty() bool { return n.layout.IsDirty }

// HasNewLayout reports whether the most recent CalculateLayout produced a
// fresh geometry for n (as opposed to serving it from cache).
func (n *Node) HasNewLayout() bool { return n.layout.HasNewLayout }

// MarkDirty marks n (and, per §3, every ancestor up to the first already-
// dirty one) as needing recomputation. Hosts call this on measure-bearing
// leaves whenever the callback's answer would change; every other mutator
// in this package calls it automatically.
func (n *Node) MarkDirty() {
	if n.layout.IsDirty {
		return
	}
	n.layout.IsDirty = true
	n.layout.ComputedFlexBasis = geom.Undefined
	if n.parent != nil {
		n.parent.MarkDirty()
	}
}

// --- resolved layout-rectangle accessors (§6) ------------------------------

func (n *Node) LayoutLeft() float64   { return n.layout.Position[geom.EdgeLeft] }
func (n *Node) LayoutTop() float64    { return n.layout.Position[geom.EdgeTop] }
func (n *Node) LayoutRight() float64  { return n.layout.Position[geom.EdgeRight] }
func (n *Node) LayoutBottom() float64 { return n.layout.Position[geom.EdgeBottom] }
func (n *Node) LayoutWidth() float64  { return n.layout.MeasuredDimensions[geom.DimensionWidth] }
func (n *Node) LayoutHeight() float64 { return n.layout.MeasuredDimensions[geom.DimensionHeight] }
func (n *Node) LayoutDirection() Direction { return n.layout.Direction }
