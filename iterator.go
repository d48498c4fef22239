package doctree

import (
	"strconv"
	"strings"
)

func pathKey(p Path) string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ",")
}

// IterOptions configures a depth-first Nodes traversal.
type IterOptions struct {
	// From bounds the start of the traversal; zero value means the root.
	From Path
	// To, when HasTo is set, bounds the end of the traversal: the iterator
	// stops once the cursor passes To in the current direction.
	To    Path
	HasTo bool
	// Reverse visits children right-to-left (last child first) instead of
	// left-to-right.
	Reverse bool
	// Pass, if non-nil, is consulted before descending into a subtree: when
	// it returns false for an entry, that entry is still emitted but its
	// children are skipped.
	Pass func(NodeEntry) bool
}

// Iterator produces a depth-first, single-pass sequence of (node, path)
// entries over a document tree, as described in spec.md §4.6. Reconstruct
// a new Iterator to traverse again; an exhausted one cannot be restarted.
type Iterator struct {
	root    Node
	to      Path
	hasTo   bool
	reverse bool
	pass    func(NodeEntry) bool

	path    Path
	node    Node
	visited map[string]struct{}
	started bool
	done    bool
}

// NewIterator builds an Iterator over root configured by opts.
func NewIterator(root Node, opts IterOptions) *Iterator {
	return &Iterator{
		root:    root,
		to:      opts.To,
		hasTo:   opts.HasTo,
		reverse: opts.Reverse,
		pass:    opts.Pass,
		path:    opts.From.Clone(),
		visited: make(map[string]struct{}),
	}
}

// Next returns the next (node, path) entry, or ok=false once the
// traversal is exhausted.
func (it *Iterator) Next() (NodeEntry, bool) {
	if it.done {
		return NodeEntry{}, false
	}

	if !it.started {
		it.started = true
		n, ok := Get(it.root, it.path)
		if !ok {
			it.done = true
			return NodeEntry{}, false
		}
		it.node = n
	} else if !it.advance() {
		it.done = true
		return NodeEntry{}, false
	}

	if it.hasTo {
		if it.reverse {
			if it.path.IsBefore(it.to) {
				it.done = true
				return NodeEntry{}, false
			}
		} else if it.path.IsAfter(it.to) {
			it.done = true
			return NodeEntry{}, false
		}
	}

	return NodeEntry{Node: it.node, Path: it.path.Clone()}, true
}

// advance moves the cursor to the next entry in the sequence: descend into
// the current node's first (or last, if reverse) child when descent is
// permitted and hasn't already happened; otherwise move to the next
// sibling, or ascend and retry. Returns false once there is nowhere left
// to go.
func (it *Iterator) advance() bool {
	key := pathKey(it.path)
	_, seen := it.visited[key]

	if !seen {
		if anc, ok := it.node.(Ancestor); ok && anc.NumChildren() > 0 {
			allowed := it.pass == nil || it.pass(NodeEntry{Node: it.node, Path: it.path.Clone()})
			if allowed {
				idx := 0
				if it.reverse {
					idx = anc.NumChildren() - 1
				}
				if child, ok := anc.childAt(idx); ok {
					it.visited[key] = struct{}{}
					it.path = it.path.Concat(idx)
					it.node = child
					return true
				}
			}
		}
	}

	cursor := it.path
	for {
		if cursor.Len() == 0 {
			return false
		}

		var sibling Path
		var ok bool
		if it.reverse {
			sibling, ok = cursor.Previous()
		} else {
			sibling, ok = cursor.Next()
		}
		if ok {
			if siblingNode, ok2 := Get(it.root, sibling); ok2 {
				it.path = sibling
				it.node = siblingNode
				return true
			}
		}

		it.visited[pathKey(cursor)] = struct{}{}
		parent, ok := cursor.Parent()
		if !ok {
			return false
		}
		cursor = parent
	}
}

// Nodes collects the full depth-first sequence over root with no bounds
// and no pass predicate.
func Nodes(root Node) []NodeEntry {
	return CollectNodes(root, IterOptions{})
}

// CollectNodes collects the full sequence produced by an Iterator configured
// with opts.
func CollectNodes(root Node, opts IterOptions) []NodeEntry {
	it := NewIterator(root, opts)
	var out []NodeEntry
	for {
		entry, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, entry)
	}
}

// Descendants returns Nodes(root) with the root entry itself excluded.
func Descendants(root Node) []NodeEntry {
	all := Nodes(root)
	if len(all) == 0 {
		return nil
	}
	return all[1:]
}
