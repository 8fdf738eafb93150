package motion

// IsAlignedWith reports whether n and other have congruent families: the
// same child count at every level and, member by member, the same number
// of points. Aligned families can be interpolated pairwise by index.
func (n *Node) IsAlignedWith(other *Node) bool {
	if len(n.Points) != len(other.Points) || len(n.children) != len(other.children) {
		return false
	}
	for i, c := range n.children {
		if !c.IsAlignedWith(other.children[i]) {
			return false
		}
	}
	return true
}

// AlignFamily makes the families of n and other congruent, mutating both.
// Per tree level the shorter child list is padded with copies of its last
// member; per node the path with fewer segments is subdivided. No member is
// ever reordered. Aligned families are left untouched.
func (n *Node) AlignFamily(other *Node) {
	if n.IsAlignedWith(other) {
		return
	}
	alignPoints(n, other)
	switch a, b := len(n.children), len(other.children); {
	case a < b:
		n.padChildren(b)
	case b < a:
		other.padChildren(a)
	}
	for i, c := range n.children {
		c.AlignFamily(other.children[i])
	}
}

// padChildren grows n's child list to count. Copies of the last child are
// appended; a childless node is padded with point-collapsed copies of
// itself.
func (n *Node) padChildren(count int) {
	if len(n.children) == 0 {
		ghost := n.Copy()
		ghost.Name = n.Name + ".pad"
		ghost.collapseTo(n.Center(), len(ghost.Points))
		for len(n.children) < count {
			n.AddChild(ghost.Copy())
		}
		return
	}
	last := n.children[len(n.children)-1]
	for len(n.children) < count {
		n.AddChild(last.Copy())
	}
}

// alignPoints reconciles the own point data of a and b.
func alignPoints(a, b *Node) {
	la, lb := len(a.Points), len(b.Points)
	switch {
	case la == lb:
		return
	case la == 0:
		becomeDegenerate(a, b)
		return
	case lb == 0:
		becomeDegenerate(b, a)
		return
	}
	if isPath(a) && isPath(b) {
		target := max(a.NumSegments(), b.NumSegments())
		a.InsertSegments(target)
		b.InsertSegments(target)
		return
	}
	count := max(la, lb)
	a.padPoints(count)
	b.padPoints(count)
}

// becomeDegenerate gives the pointless node n as many points as other,
// all placed at n's center, so it can grow out of a single spot.
func becomeDegenerate(n, other *Node) {
	n.collapseTo(n.Center(), len(other.Points))
	if n.Type == NodeTypeGroup {
		n.Type = other.Type
	}
}

func isPath(n *Node) bool {
	return n.Type != NodeTypePoints && len(n.Points)%4 == 0
}
