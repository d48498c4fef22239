package doctree

// Node is the sum Editor | Element | Text. It is a sealed interface: the
// only implementations are the three concrete types in this package, so a
// type switch (or the accessor functions below) is an exhaustive pattern
// match, the Go rendering of the tagged union spec.md §4.9 calls for.
type Node interface {
	numChildren() int
	childAt(i int) (Descendant, bool)
}

// Descendant is the sum Element | Text: anything that can live inside an
// Ancestor's child list. A Text leaf is always childless (invariant 5 in
// spec.md §3: numChildren(Text) ≡ 0).
type Descendant interface {
	Node
	isDescendant()
}

// Ancestor is the sum Editor | Element: nodes that may contain children.
type Ancestor interface {
	Node
	isAncestor()
	Children() []Descendant
	NumChildren() int
	HasChildren() bool
}

// NodeEntry pairs a Node with its absolute Path, as returned by Ancestors
// and the depth-first iterator.
type NodeEntry struct {
	Node Node
	Path Path
}

// DescendantEntry pairs a Descendant with its absolute Path, as returned
// by Children.
type DescendantEntry struct {
	Node Descendant
	Path Path
}

// ElementEntry pairs an Element with its absolute Path.
type ElementEntry struct {
	Element Element
	Path    Path
}

func copyDescendants(children []Descendant, add Descendant) []Descendant {
	out := make([]Descendant, len(children)+1)
	copy(out, children)
	out[len(children)] = add
	return out
}

// Editor is the document root: an ordered sequence of Descendants plus an
// optional selection, an append-only operation log, and optional pending
// marks to apply to the next inserted text.
type Editor struct {
	children   []Descendant
	Selection  *Range
	Operations []Operation
	Marks      *Marks
	Props      Props
}

// NewEditor builds an empty Editor.
func NewEditor() Editor {
	return Editor{}
}

// AddChild returns a copy of e with child appended.
func (e Editor) AddChild(child Descendant) Editor {
	e.children = copyDescendants(e.children, child)
	return e
}

// WithSelection returns a copy of e with the given selection (nil clears it).
func (e Editor) WithSelection(r *Range) Editor {
	e.Selection = r
	return e
}

// WithMarks returns a copy of e with the given pending marks (nil clears them).
func (e Editor) WithMarks(m *Marks) Editor {
	e.Marks = m
	return e
}

// WithProps returns a copy of e carrying the given property bag.
func (e Editor) WithProps(p Props) Editor {
	e.Props = p
	return e
}

// Log returns a copy of e with op appended to its append-only operation log.
func (e Editor) Log(op Operation) Editor {
	out := make([]Operation, len(e.Operations)+1)
	copy(out, e.Operations)
	out[len(e.Operations)] = op
	e.Operations = out
	return e
}

// Children returns the editor's direct children.
func (e Editor) Children() []Descendant { return e.children }

// NumChildren returns the number of direct children.
func (e Editor) NumChildren() int { return len(e.children) }

// HasChildren reports whether the editor has at least one child.
func (e Editor) HasChildren() bool { return len(e.children) > 0 }

func (e Editor) numChildren() int { return len(e.children) }

func (e Editor) childAt(i int) (Descendant, bool) {
	if i < 0 || i >= len(e.children) {
		return nil, false
	}
	return e.children[i], true
}

func (Editor) isAncestor() {}

// Element is an inline or block node containing an ordered sequence of
// Descendants, plus an open property bag (see SPEC_FULL.md §5).
type Element struct {
	children []Descendant
	Props    Props
}

// NewElement builds an empty Element whose Props carries "type": kind.
func NewElement(kind string) Element {
	return Element{Props: Props{"type": kind}}
}

// AddChild returns a copy of el with child appended.
func (el Element) AddChild(child Descendant) Element {
	el.children = copyDescendants(el.children, child)
	return el
}

// WithProps returns a copy of el carrying the given property bag.
func (el Element) WithProps(p Props) Element {
	el.Props = p
	return el
}

// Children returns the element's direct children.
func (el Element) Children() []Descendant { return el.children }

// NumChildren returns the number of direct children.
func (el Element) NumChildren() int { return len(el.children) }

// HasChildren reports whether the element has at least one child.
func (el Element) HasChildren() bool { return len(el.children) > 0 }

func (el Element) numChildren() int { return len(el.children) }

func (el Element) childAt(i int) (Descendant, bool) {
	if i < 0 || i >= len(el.children) {
		return nil, false
	}
	return el.children[i], true
}

func (Element) isAncestor()   {}
func (Element) isDescendant() {}

func (Text) numChildren() int               { return 0 }
func (Text) childAt(int) (Descendant, bool) { return nil, false }
func (Text) isDescendant()                  {}

// Get returns the descendant node referred to by path. An empty path
// refers to root itself.
func Get(root Node, path Path) (Node, bool) {
	var cur Node = root
	for i := 0; i < path.Len(); i++ {
		idx, _ := path.Get(i)
		child, ok := cur.childAt(idx)
		if !ok {
			return nil, false
		}
		cur = child
	}
	return cur, true
}

// Has reports whether path resolves to a node in root.
func Has(root Node, path Path) bool {
	_, ok := Get(root, path)
	return ok
}

// AncestorAt returns the node at path, asserting it is an Ancestor. Absent
// (WrongKind, per spec.md §7) when path resolves to a Text leaf, or when it
// doesn't resolve at all.
func AncestorAt(root Node, path Path) (Ancestor, bool) {
	n, ok := Get(root, path)
	if !ok {
		return nil, false
	}
	a, ok := n.(Ancestor)
	return a, ok
}

// Ancestors returns every ancestor of path (see Path.Ancestors), paired
// with its node, root-first unless reverse is set.
func Ancestors(root Node, path Path, reverse bool) []NodeEntry {
	levels := path.Ancestors(reverse)
	out := make([]NodeEntry, 0, len(levels))
	for _, p := range levels {
		n, ok := Get(root, p)
		if !ok {
			continue
		}
		out = append(out, NodeEntry{Node: n, Path: p})
	}
	return out
}

// Child returns the i-th direct child of ancestor.
func Child(ancestor Ancestor, i int) (Descendant, bool) {
	return ancestor.childAt(i)
}

// Children returns the direct children of the ancestor at path, paired
// with their absolute paths. Absent when path doesn't resolve to an
// Ancestor.
func Children(root Node, path Path, reverse bool) ([]DescendantEntry, bool) {
	a, ok := AncestorAt(root, path)
	if !ok {
		return nil, false
	}
	children := a.Children()
	out := make([]DescendantEntry, len(children))
	for i, c := range children {
		out[i] = DescendantEntry{Node: c, Path: path.Concat(i)}
	}
	if reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, true
}

// DescendantAt returns the node at path, asserting it is a Descendant.
// Absent (WrongKind) when path is the root, or when it doesn't resolve.
func DescendantAt(root Node, path Path) (Descendant, bool) {
	n, ok := Get(root, path)
	if !ok {
		return nil, false
	}
	d, ok := n.(Descendant)
	return d, ok
}

// Common returns the node and path of the lowest common ancestor of a and b.
func Common(root Node, a, b Path) (Node, Path) {
	p := a.Common(b)
	n, _ := Get(root, p)
	return n, p
}
