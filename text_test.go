package doctree

import "testing"

func TestMarksContainsAndUnion(t *testing.T) {
	bold := MarkBold
	boldItalic := MarkBold.Union(MarkItalic)

	if !boldItalic.Contains(bold) {
		t.Error("bold+italic should contain bold")
	}
	if boldItalic.Contains(MarkUnderline) {
		t.Error("bold+italic should not contain underline")
	}
}

func TestMatchesIsSupersetContainment(t *testing.T) {
	a := NewText("hello").WithMarks(MarkBold.Union(MarkItalic))
	b := NewText("world").WithMarks(MarkBold)

	if !Matches(a, b) {
		t.Error("a (bold+italic) should match b (bold): a is a superset")
	}
	if Matches(b, a) {
		t.Error("b (bold only) should not match a (bold+italic): b is not a superset")
	}
}

func TestMetaSetUnionAndEqual(t *testing.T) {
	s1 := NewMetaSet("comment")
	s2 := NewMetaSet("comment", "highlight")

	u := s1.Union(s2)
	if !u.Has("comment") || !u.Has("highlight") {
		t.Error("union should carry both tags")
	}
	if s1.Equal(s2) {
		t.Error("different-size sets should not compare equal")
	}
	if !u.Equal(NewMetaSet("highlight", "comment")) {
		t.Error("Equal should ignore tag order")
	}
}

func TestDecorationsMiddle(t *testing.T) {
	text := NewText("0123456789")
	dec := NewDecoration(NewRange(pt(NewPath(0), 3), pt(NewPath(0), 6)), NewMetaSet("bold"))

	got := text.Decorations([]Decoration{dec})
	if len(got) != 3 {
		t.Fatalf("got %d leaves, want 3", len(got))
	}
	if got[0].Value != "012" || got[0].Meta.Has("bold") {
		t.Errorf("leaf 0 = %+v", got[0])
	}
	if got[1].Value != "345" || !got[1].Meta.Has("bold") {
		t.Errorf("leaf 1 = %+v", got[1])
	}
	if got[2].Value != "6789" || got[2].Meta.Has("bold") {
		t.Errorf("leaf 2 = %+v", got[2])
	}
}

func TestDecorationsStart(t *testing.T) {
	text := NewText("0123456789")
	dec := NewDecoration(NewRange(pt(NewPath(0), 0), pt(NewPath(0), 3)), NewMetaSet("bold"))

	got := text.Decorations([]Decoration{dec})
	if len(got) != 2 {
		t.Fatalf("got %d leaves, want 2", len(got))
	}
	if got[0].Value != "012" || !got[0].Meta.Has("bold") {
		t.Errorf("leaf 0 = %+v", got[0])
	}
	if got[1].Value != "3456789" || got[1].Meta.Has("bold") {
		t.Errorf("leaf 1 = %+v", got[1])
	}
}

func TestDecorationsEnd(t *testing.T) {
	text := NewText("0123456789")
	dec := NewDecoration(NewRange(pt(NewPath(0), 7), pt(NewPath(0), 10)), NewMetaSet("bold"))

	got := text.Decorations([]Decoration{dec})
	if len(got) != 2 {
		t.Fatalf("got %d leaves, want 2", len(got))
	}
	if got[0].Value != "0123456" || got[0].Meta.Has("bold") {
		t.Errorf("leaf 0 = %+v", got[0])
	}
	if got[1].Value != "789" || !got[1].Meta.Has("bold") {
		t.Errorf("leaf 1 = %+v", got[1])
	}
}

func TestDecorationsOverlapping(t *testing.T) {
	text := NewText("0123456789")
	bold := NewDecoration(NewRange(pt(NewPath(0), 0), pt(NewPath(0), 5)), NewMetaSet("bold"))
	italic := NewDecoration(NewRange(pt(NewPath(0), 3), pt(NewPath(0), 10)), NewMetaSet("italic"))

	got := text.Decorations([]Decoration{bold, italic})

	var rebuilt string
	for _, leaf := range got {
		rebuilt += leaf.Value
	}
	if rebuilt != text.Value {
		t.Fatalf("leaves do not reassemble to the original string: %q", rebuilt)
	}

	for _, leaf := range got {
		switch leaf.Value {
		case "012":
			if !leaf.Meta.Has("bold") || leaf.Meta.Has("italic") {
				t.Errorf("leaf %q should be bold only, got %v", leaf.Value, leaf.Meta)
			}
		case "34":
			if !leaf.Meta.Has("bold") || !leaf.Meta.Has("italic") {
				t.Errorf("leaf %q should be bold and italic, got %v", leaf.Value, leaf.Meta)
			}
		case "56789":
			if leaf.Meta.Has("bold") || !leaf.Meta.Has("italic") {
				t.Errorf("leaf %q should be italic only, got %v", leaf.Value, leaf.Meta)
			}
		}
	}
}

func TestDecorationsZeroWidthAtNonZeroBoundaryIsMiss(t *testing.T) {
	// end == regionStart && regionStart != 0 is a miss, not an overlap: a
	// zero-width decoration sitting exactly on a leaf boundary that isn't
	// the very start of the string leaves that leaf untouched.
	text := NewText("hello")
	split := NewDecoration(NewRange(pt(NewPath(0), 0), pt(NewPath(0), 2)), NewMetaSet("bold"))
	boundary := NewDecoration(NewRange(pt(NewPath(0), 2), pt(NewPath(0), 2)), NewMetaSet("miss"))

	got := text.Decorations([]Decoration{split, boundary})

	last := got[len(got)-1]
	if last.Value != "llo" {
		t.Fatalf("expected the trailing leaf to remain \"llo\", got %q", last.Value)
	}
	if last.Meta.Has("miss") {
		t.Error("a zero-width decoration landing on a non-zero boundary must not tag the following leaf")
	}
}
