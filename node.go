package motion

// NodeType distinguishes how a Node's point data is interpreted.
type NodeType uint8

const (
	NodeTypeGroup  NodeType = iota // container with no points of its own
	NodeTypePath                   // vector path of cubic Bézier segments, 4 points each
	NodeTypePoints                 // point cloud, not a vector path
	NodeTypeText                   // glyph group carrying its source string
	NodeTypeValue                  // scalar value holder
)

// String returns the lowercase name of the node type.
func (t NodeType) String() string {
	switch t {
	case NodeTypeGroup:
		return "group"
	case NodeTypePath:
		return "path"
	case NodeTypePoints:
		return "points"
	case NodeTypeText:
		return "text"
	case NodeTypeValue:
		return "value"
	default:
		return "unknown"
	}
}

// Updater is a per-frame callback attached to a node. dt is the frame time
// in seconds.
type Updater func(n *Node, dt float64)

// Channel identifies a data channel that can be locked during a Transform.
type Channel uint8

const (
	ChannelPoints Channel = 1 << iota
	ChannelStroke
	ChannelFill
)

// nodeIDCounter is a plain counter (no atomic, motion is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the scene graph element animated by this package. A single flat
// struct is used for all node types; Type decides which fields matter.
//
// Nodes are owned by the Scene they are added to. Animations keep a
// non-owning reference plus private snapshot copies.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Own point data, independent of the children's.
	Points []Vec3

	// Style
	Stroke      Color
	StrokeWidth float64
	Fill        Color

	// Value holds the number of a NodeTypeValue node.
	Value float64
	// Content holds the source string of a NodeTypeText node.
	Content string

	// Target is scratch state for MoveToTarget, set by GenerateTarget.
	Target *Node

	updaters  []Updater
	suspended bool
	locked    Channel
	saved     *Node
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Stroke = ColorWhite
	n.StrokeWidth = 4
	n.Fill = ColorWhite.WithAlpha(0)
}

// NewGroup creates a group node holding the given children in order.
func NewGroup(name string, children ...*Node) *Node {
	n := &Node{Name: name, Type: NodeTypeGroup}
	nodeDefaults(n)
	for _, c := range children {
		n.AddChild(c)
	}
	return n
}

// NewPath creates a vector path node from raw cubic Bézier points. The point
// count must be a multiple of 4.
func NewPath(name string, points []Vec3) *Node {
	if len(points)%4 != 0 {
		panic("motion: path point count must be a multiple of 4")
	}
	n := &Node{Name: name, Type: NodeTypePath}
	nodeDefaults(n)
	n.Points = append([]Vec3(nil), points...)
	return n
}

// NewPointCloud creates a point-cloud node.
func NewPointCloud(name string, points []Vec3) *Node {
	n := &Node{Name: name, Type: NodeTypePoints}
	nodeDefaults(n)
	n.Points = append([]Vec3(nil), points...)
	n.StrokeWidth = 2
	return n
}

// NewValue creates a scalar value node for the number animations.
func NewValue(name string, v float64) *Node {
	n := &Node{Name: name, Type: NodeTypeValue, Value: v}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("motion: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("motion: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("motion: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
func (n *Node) RemoveChildren() {
	for i, child := range n.children {
		child.Parent = nil
		n.children[i] = nil
	}
	n.children = n.children[:0]
}

// SetChildren replaces the child list. Children keep no other parent.
// The slice is copied into the node's own buffer, so repeated calls with
// lists no longer than the high-water mark do not allocate.
func (n *Node) SetChildren(children []*Node) {
	for _, c := range n.children {
		if c.Parent == n {
			c.Parent = nil
		}
	}
	n.children = n.children[:0]
	for _, c := range children {
		if c.Parent != nil && c.Parent != n {
			c.Parent.removeChildByPtr(c)
		}
		c.Parent = n
		n.children = append(n.children, c)
	}
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// Family returns n and all its descendants in depth-first pre-order.
func (n *Node) Family() []*Node {
	return n.appendFamily(nil)
}

// appendFamily appends the family of n to buf and returns it.
func (n *Node) appendFamily(buf []*Node) []*Node {
	buf = append(buf, n)
	for _, c := range n.children {
		buf = c.appendFamily(buf)
	}
	return buf
}

// FamilySize returns the number of nodes in the family of n.
func (n *Node) FamilySize() int {
	size := 1
	for _, c := range n.children {
		size += c.FamilySize()
	}
	return size
}

// FamilyWithPoints returns the family members that carry point data.
func (n *Node) FamilyWithPoints() []*Node {
	var out []*Node
	for _, m := range n.Family() {
		if len(m.Points) > 0 {
			out = append(out, m)
		}
	}
	return out
}

// Root returns the topmost ancestor of n.
func (n *Node) Root() *Node {
	r := n
	for r.Parent != nil {
		r = r.Parent
	}
	return r
}

// --- Copying ---

// Copy returns a deep copy of the subtree rooted at n. The copy has no
// parent, no target and no saved state; updaters are shared by reference.
func (n *Node) Copy() *Node {
	c := &Node{
		ID:          nextNodeID(),
		Name:        n.Name,
		Type:        n.Type,
		Points:      append([]Vec3(nil), n.Points...),
		Stroke:      n.Stroke,
		StrokeWidth: n.StrokeWidth,
		Fill:        n.Fill,
		Value:       n.Value,
		Content:     n.Content,
		suspended:   n.suspended,
	}
	if len(n.updaters) > 0 {
		c.updaters = append([]Updater(nil), n.updaters...)
	}
	if len(n.children) > 0 {
		c.children = make([]*Node, 0, len(n.children))
		for _, child := range n.children {
			cc := child.Copy()
			cc.Parent = c
			c.children = append(c.children, cc)
		}
	}
	return c
}

// copyOwnData copies the data channels of src into n without touching the
// hierarchy. The point buffer is reused when large enough.
func (n *Node) copyOwnData(src *Node) {
	n.Type = src.Type
	n.Points = append(n.Points[:0], src.Points...)
	n.Stroke = src.Stroke
	n.StrokeWidth = src.StrokeWidth
	n.Fill = src.Fill
	n.Value = src.Value
	n.Content = src.Content
}

// Become makes n's family a data copy of other's. Children are reused when
// the structures already match; otherwise they are replaced by copies of
// other's children.
func (n *Node) Become(other *Node) {
	n.copyOwnData(other)
	if len(n.children) == len(other.children) {
		for i, c := range n.children {
			c.Become(other.children[i])
		}
		return
	}
	n.RemoveChildren()
	for _, oc := range other.children {
		n.AddChild(oc.Copy())
	}
}

// GenerateTarget stores a copy of n in n.Target and returns it.
func (n *Node) GenerateTarget() *Node {
	n.Target = n.Copy()
	return n.Target
}

// SaveState stores a copy of n to be restored later.
func (n *Node) SaveState() {
	n.saved = n.Copy()
}

// SavedState returns the last saved state, or nil.
func (n *Node) SavedState() *Node {
	return n.saved
}

// RestoreState makes n become its saved state. No-op without a saved state.
func (n *Node) RestoreState() {
	if n.saved == nil {
		return
	}
	n.Become(n.saved)
}

// --- Updaters ---

// AddUpdater attaches a per-frame callback to n.
func (n *Node) AddUpdater(fn Updater) {
	n.updaters = append(n.updaters, fn)
}

// ClearUpdaters removes all callbacks from n (not its children).
func (n *Node) ClearUpdaters() {
	n.updaters = nil
}

// HasUpdaters reports whether any family member has an updater.
func (n *Node) HasUpdaters() bool {
	if len(n.updaters) > 0 {
		return true
	}
	for _, c := range n.children {
		if c.HasUpdaters() {
			return true
		}
	}
	return false
}

// SuspendUpdating stops updaters on the whole family until ResumeUpdating.
func (n *Node) SuspendUpdating() {
	n.suspended = true
	for _, c := range n.children {
		c.SuspendUpdating()
	}
}

// ResumeUpdating re-enables updaters on the whole family.
func (n *Node) ResumeUpdating() {
	n.suspended = false
	for _, c := range n.children {
		c.ResumeUpdating()
	}
}

// IsUpdatingSuspended reports whether n's own updaters are suspended.
func (n *Node) IsUpdatingSuspended() bool {
	return n.suspended
}

// Update runs the updaters of every non-suspended family member.
func (n *Node) Update(dt float64) {
	if !n.suspended {
		for _, fn := range n.updaters {
			fn(n, dt)
		}
	}
	for _, c := range n.children {
		c.Update(dt)
	}
}

// --- Data locks ---

// LockMatchingData locks, per family member, every channel whose data is
// identical in start and target. Interpolation skips locked channels.
// The three families must be congruent.
func (n *Node) LockMatchingData(start, target *Node) {
	var mask Channel
	if pointsEqual(start.Points, target.Points) {
		mask |= ChannelPoints
	}
	if start.Stroke == target.Stroke && start.StrokeWidth == target.StrokeWidth {
		mask |= ChannelStroke
	}
	if start.Fill == target.Fill {
		mask |= ChannelFill
	}
	n.locked = mask
	for i, c := range n.children {
		if i < len(start.children) && i < len(target.children) {
			c.LockMatchingData(start.children[i], target.children[i])
		}
	}
}

// UnlockData releases all channel locks on the family.
func (n *Node) UnlockData() {
	n.locked = 0
	for _, c := range n.children {
		c.UnlockData()
	}
}

// IsLocked reports whether ch is locked on n.
func (n *Node) IsLocked(ch Channel) bool {
	return n.locked&ch != 0
}

// --- Helpers ---

func pointsEqual(a, b []Vec3) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
