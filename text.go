package doctree

import "sort"

// Marks is a small closed bit-set of text formatting flags. It mirrors a
// `bitflags!`-style block from the original Rust source: implementations
// may add extension bits, but Matches must keep subset-containment
// semantics.
type Marks uint32

const (
	MarkBold Marks = 1 << (iota + 1)
	MarkItalic
	MarkUnderline
)

// Contains reports whether m has every bit set in other.
func (m Marks) Contains(other Marks) bool {
	return m&other == other
}

// Union returns m with every bit of other also set.
func (m Marks) Union(other Marks) Marks {
	return m | other
}

// MetaSet is an unordered set of string tags attached to a Text leaf, used
// for decoration bookkeeping.
type MetaSet map[string]struct{}

// NewMetaSet builds a MetaSet from the given tags.
func NewMetaSet(tags ...string) MetaSet {
	s := make(MetaSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// Clone returns an independent copy of the set.
func (s MetaSet) Clone() MetaSet {
	out := make(MetaSet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

// Union returns a new set containing every tag in s or other.
func (s MetaSet) Union(other MetaSet) MetaSet {
	out := make(MetaSet, len(s)+len(other))
	for k := range s {
		out[k] = struct{}{}
	}
	for k := range other {
		out[k] = struct{}{}
	}
	return out
}

// Has reports whether tag is present in the set.
func (s MetaSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Equal reports whether two sets contain exactly the same tags.
func (s MetaSet) Equal(other MetaSet) bool {
	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if _, ok := other[k]; !ok {
			return false
		}
	}
	return true
}

// sortedTags returns the set's tags in sorted order, so that EncodeHTML's
// data-deco attribute is deterministic.
func (s MetaSet) sortedTags() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Text is a leaf node: its string content, its mark flags, and an
// unordered set of metadata tags used for decorations.
type Text struct {
	Value string
	Marks Marks
	Meta  MetaSet
}

// NewText builds an unmarked, untagged Text leaf.
func NewText(value string) Text {
	return Text{Value: value}
}

// WithMarks returns a copy of t carrying the given marks.
func (t Text) WithMarks(marks Marks) Text {
	t.Marks = marks
	return t
}

// WithMeta returns a copy of t carrying the given metadata set.
func (t Text) WithMeta(meta MetaSet) Text {
	t.Meta = meta
	return t
}

// runeLen returns the codepoint length of the leaf's text; offsets
// throughout this package are codepoint offsets.
func (t Text) runeLen() int {
	return len([]rune(t.Value))
}

func runeSlice(s string, from, to int) string {
	r := []rune(s)
	if from < 0 {
		from = 0
	}
	if to > len(r) {
		to = len(r)
	}
	if from >= to {
		return ""
	}
	return string(r[from:to])
}

// Matches reports whether a's marks are a superset of b's marks. Used to
// decide whether two adjacent leaves could be merged into one.
func Matches(a, b Text) bool {
	return a.Marks.Contains(b.Marks)
}

// Decoration is a range-bound metadata tag applied transiently over a span
// of text leaves, without mutating their marks.
type Decoration struct {
	Range Range
	Tags  MetaSet
}

// NewDecoration builds a Decoration.
func NewDecoration(r Range, tags MetaSet) Decoration {
	return Decoration{Range: r, Tags: tags}
}

// Decorations splits t into an ordered list of leaves covering the same
// string, such that each leaf's metadata equals t.Meta unioned with every
// decoration tag set whose range overlaps that leaf.
//
// Grounded on the original text.rs: decorations are applied one at a time,
// in input order, against the leaf list produced so far. A decoration
// either covers a leaf whole, misses it entirely, or splits it into up to
// three pieces. The boundary rule "end == offset && offset != 0 is a
// miss, not an overlap" prevents a phantom zero-length leaf from being
// emitted when a decoration's end lands exactly on a leaf boundary that
// isn't the very start of the string.
func (t Text) Decorations(decorations []Decoration) []Text {
	leaves := []Text{t}

	for _, dec := range decorations {
		start, end := dec.Range.Edges(false)
		next := make([]Text, 0, len(leaves))
		offset := 0

		for _, leaf := range leaves {
			length := leaf.runeLen()
			regionStart := offset
			regionEnd := offset + length
			offset += length

			if start.Offset <= regionStart && end.Offset >= regionEnd {
				next = append(next, leaf.WithMeta(leaf.Meta.Union(dec.Tags)))
				continue
			}

			if start.Offset > regionEnd || end.Offset < regionStart ||
				(end.Offset == regionStart && regionStart != 0) {
				next = append(next, leaf)
				continue
			}

			middle := leaf
			var before, after *Text

			if end.Offset < regionEnd {
				off := end.Offset - regionStart
				a := Text{Value: runeSlice(middle.Value, off, middle.runeLen()), Marks: middle.Marks, Meta: middle.Meta.Clone()}
				after = &a
				middle = Text{Value: runeSlice(middle.Value, 0, off), Marks: middle.Marks, Meta: middle.Meta}
			}

			if start.Offset > regionStart {
				off := start.Offset - regionStart
				b := Text{Value: runeSlice(middle.Value, 0, off), Marks: middle.Marks, Meta: middle.Meta.Clone()}
				before = &b
				middle = Text{Value: runeSlice(middle.Value, off, middle.runeLen()), Marks: middle.Marks, Meta: middle.Meta}
			}

			middle.Meta = middle.Meta.Union(dec.Tags)

			if before != nil {
				next = append(next, *before)
			}
			next = append(next, middle)
			if after != nil {
				next = append(next, *after)
			}
		}

		leaves = next
	}

	return leaves
}
