package doctree

// Path is an ordered sequence of non-negative child indices locating a node
// from the document root. The empty Path denotes the root itself.
//
// Paths are value types: every method returns a new Path (or a slice view
// treated as immutable by convention) rather than mutating the receiver.
type Path []int

// NewPath builds a Path from a list of indices.
func NewPath(indices ...int) Path {
	p := make(Path, len(indices))
	copy(p, indices)
	return p
}

// Len returns the depth of the path.
func (p Path) Len() int {
	return len(p)
}

// Get returns the index at depth i, or false if i is out of range.
func (p Path) Get(i int) (int, bool) {
	if i < 0 || i >= len(p) {
		return 0, false
	}
	return p[i], true
}

// Equal reports positional equality with other.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Concat appends index i and returns the new, longer path.
func (p Path) Concat(i int) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = i
	return out
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Parent drops the last index. Absent (ok=false) when p is the root.
func (p Path) Parent() (Path, bool) {
	if len(p) == 0 {
		return nil, false
	}
	return p[:len(p)-1].Clone(), true
}

// Next returns the path with the last index incremented by one, keeping the
// same parent. Absent only for the root, which has no last index to bump.
// Otherwise it is never absent: the path is conceptually unbounded on the
// right, and callers must check the result resolves in the document they
// care about.
func (p Path) Next() (Path, bool) {
	if len(p) == 0 {
		return nil, false
	}
	out := p.Clone()
	out[len(out)-1]++
	return out, true
}

// Previous returns the path with the last index decremented by one. Absent
// when p is the root, or when the last index is already zero.
func (p Path) Previous() (Path, bool) {
	if len(p) == 0 || p[len(p)-1] == 0 {
		return nil, false
	}
	out := p.Clone()
	out[len(out)-1]--
	return out, true
}

// HasPrevious reports whether the last index is greater than zero. False
// for the root, which has no last index at all.
func (p Path) HasPrevious() bool {
	if len(p) == 0 {
		return false
	}
	return p[len(p)-1] > 0
}

// Levels returns every prefix of p, including the empty path and p itself,
// ordered root-first unless reverse is set.
func (p Path) Levels(reverse bool) []Path {
	out := make([]Path, len(p)+1)
	for i := 0; i <= len(p); i++ {
		out[i] = p[:i].Clone()
	}
	if reverse {
		reversePaths(out)
	}
	return out
}

// Ancestors returns Levels with p itself excluded.
func (p Path) Ancestors(reverse bool) []Path {
	levels := p.Levels(reverse)
	if reverse {
		return levels[1:]
	}
	return levels[:len(levels)-1]
}

func reversePaths(ps []Path) {
	for i, j := 0, len(ps)-1; i < j; i, j = i+1, j-1 {
		ps[i], ps[j] = ps[j], ps[i]
	}
}

// Common returns the longest common prefix of p and other.
func (p Path) Common(other Path) Path {
	n := len(p)
	if len(other) < n {
		n = len(other)
	}
	out := make(Path, 0, n)
	for i := 0; i < n; i++ {
		if p[i] != other[i] {
			break
		}
		out = append(out, p[i])
	}
	return out
}

// Relative returns p with ancestor stripped. Absent when ancestor is not an
// ancestor of p and is not equal to p.
func (p Path) Relative(ancestor Path) (Path, bool) {
	if !ancestor.IsAncestor(p) && !ancestor.Equal(p) {
		return nil, false
	}
	return p[len(ancestor):].Clone(), true
}

// Compare orders paths lexicographically on their common-length prefix.
// When one path is a prefix of the other (the "same vertical line" case)
// they compare equal regardless of differing length.
func (p Path) Compare(other Path) int {
	n := len(p)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if p[i] < other[i] {
			return -1
		}
		if p[i] > other[i] {
			return 1
		}
	}
	return 0
}

// IsBefore reports whether p strictly precedes other.
func (p Path) IsBefore(other Path) bool {
	return p.Compare(other) < 0
}

// IsAfter reports whether p strictly follows other.
func (p Path) IsAfter(other Path) bool {
	return p.Compare(other) > 0
}

// IsAncestor reports whether p is a strict ancestor of b.
func (p Path) IsAncestor(b Path) bool {
	return len(p) < len(b) && p.Compare(b) == 0
}

// IsDescendant reports whether p is a strict descendant of b.
func (p Path) IsDescendant(b Path) bool {
	return len(p) > len(b) && p.Compare(b) == 0
}

// IsParent reports whether p is the direct parent of b.
func (p Path) IsParent(b Path) bool {
	return len(p)+1 == len(b) && p.Compare(b) == 0
}

// IsChild reports whether p is a direct child of b.
func (p Path) IsChild(b Path) bool {
	return len(p) == len(b)+1 && p.Compare(b) == 0
}

// IsSibling reports whether p and b share a parent but differ in their
// final index.
func (p Path) IsSibling(b Path) bool {
	if len(p) != len(b) || len(p) == 0 {
		return false
	}
	last := len(p) - 1
	if p[last] == b[last] {
		return false
	}
	return p[:last].Equal(b[:last])
}

// IsCommon reports whether p is a prefix of b, including equality.
func (p Path) IsCommon(b Path) bool {
	return len(p) <= len(b) && p.Compare(b) == 0
}

// EndsBefore reports whether p and b share a parent at depth len(p)-1 and
// p's last index is less than b's index at that same depth. False when the
// two paths don't share that parent depth.
func (p Path) EndsBefore(b Path) bool {
	if len(p) == 0 || len(b) < len(p) {
		return false
	}
	i := len(p) - 1
	return p[:i].Equal(b[:i]) && p[i] < b[i]
}

// EndsAfter is the mirror of EndsBefore.
func (p Path) EndsAfter(b Path) bool {
	if len(p) == 0 || len(b) < len(p) {
		return false
	}
	i := len(p) - 1
	return p[:i].Equal(b[:i]) && p[i] > b[i]
}

// EndsAt reports whether p equals the first len(p) indices of b, i.e. p is
// a prefix of b (possibly equal to it).
func (p Path) EndsAt(b Path) bool {
	if len(p) > len(b) {
		return false
	}
	return p.Equal(b[:len(p)])
}

// Affinity disambiguates path/point transforms at an exact split boundary.
type Affinity int

const (
	// AffinityForward is the default: prefer the node/offset that now sits
	// after the boundary introduced by the operation.
	AffinityForward Affinity = iota
	// AffinityBackward prefers the node/offset before the boundary.
	AffinityBackward
	// AffinityNone means no direction was specified; transforms that land
	// exactly on an ambiguous boundary are absent rather than guessed.
	AffinityNone
)

// Transform rewrites p so it still addresses the same conceptual node after
// op is applied, or reports absent if that node was removed.
func (p Path) Transform(op Operation, affinity Affinity) (Path, bool) {
	if len(p) == 0 {
		return p.Clone(), true
	}
	out := p.Clone()

	switch op.Kind {
	case OpInsertNode:
		opPath := op.Path
		d := len(opPath)
		if opPath.Equal(out) || opPath.EndsBefore(out) || opPath.IsAncestor(out) {
			out[d-1]++
		}

	case OpRemoveNode:
		opPath := op.Path
		d := len(opPath)
		if opPath.Equal(out) || opPath.IsAncestor(out) {
			return nil, false
		} else if opPath.EndsBefore(out) {
			out[d-1]--
		}

	case OpMergeNode:
		opPath := op.Path
		d := len(opPath)
		if opPath.Equal(out) || opPath.EndsBefore(out) {
			out[d-1]--
		} else if opPath.IsAncestor(out) {
			out[d-1]--
			out[d] += op.Position
		}

	case OpSplitNode:
		opPath := op.Path
		d := len(opPath)
		if opPath.Equal(out) {
			switch affinity {
			case AffinityForward:
				out[d-1]++
			case AffinityBackward:
				// Still refers to the correct path; nothing to do.
			default:
				return nil, false
			}
		} else if opPath.EndsBefore(out) {
			out[d-1]++
		} else if opPath.IsAncestor(out) && out[d] >= op.Position {
			out[d-1]++
			out[d] -= op.Position
		}

	case OpMoveNode:
		return transformMove(out, op)

	default:
		// InsertText, RemoveText, SetNode, SetSelection: identity.
	}

	return out, true
}

func transformMove(p Path, op Operation) (Path, bool) {
	opPath := op.Path
	newPath := op.NewPath.Clone()
	d := len(opPath)

	if opPath.Equal(newPath) {
		return p, true
	}

	if opPath.IsAncestor(p) || opPath.Equal(p) {
		if opPath.EndsBefore(newPath) && len(opPath) < len(newPath) {
			newPath[d-1]--
		}
		suffix := p[d:]
		out := make(Path, len(newPath)+len(suffix))
		copy(out, newPath)
		copy(out[len(newPath):], suffix)
		return out, true
	}

	if opPath.IsSibling(newPath) && (newPath.IsAncestor(p) || newPath.Equal(p)) {
		out := p.Clone()
		if opPath.EndsBefore(p) {
			out[d-1]--
		} else {
			out[d-1]++
		}
		return out, true
	}

	if newPath.EndsBefore(p) || newPath.Equal(p) || newPath.IsAncestor(p) {
		out := p.Clone()
		if opPath.EndsBefore(p) {
			out[d-1]--
		}
		out[len(newPath)-1]++
		return out, true
	}

	if opPath.EndsBefore(p) {
		out := p.Clone()
		if newPath.Equal(p) {
			out[len(newPath)-1]++
		}
		out[d-1]--
		return out, true
	}

	return p, true
}
