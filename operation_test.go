package doctree

import "testing"

func TestOperationInverseInvolution(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
	}{
		{"InsertNode", InsertNode(NewPath(0, 1), NewText("hi"))},
		{"RemoveNode", RemoveNode(NewPath(0), NewText("bye"))},
		{"InsertText", InsertText(NewPath(0), 2, "abc")},
		{"RemoveText", RemoveText(NewPath(0), 2, "abc")},
		{"MergeNode", MergeNode(NewPath(0, 1), 3, Props{"type": "p"})},
		{"SplitNode", SplitNode(NewPath(0, 1), 3, Props{"type": "p"})},
		{"MoveNode identity", MoveNode(NewPath(0, 1), NewPath(0, 1))},
		{"MoveNode sibling", MoveNode(NewPath(0, 1), NewPath(0, 3))},
		{"SetNode", SetNode(NewPath(0), Props{"type": "a"}, Props{"type": "b"})},
		{"SetSelection both nil", SetSelection(nil, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := tt.op.Inverse()
			back := inv.Inverse()
			if back.Kind != tt.op.Kind {
				t.Fatalf("kind mismatch after round trip: got %v, want %v", back.Kind, tt.op.Kind)
			}
		})
	}
}

func TestMergeNodeInverseProducesSplit(t *testing.T) {
	op := MergeNode(NewPath(0, 1), 3, Props{"type": "p"})
	inv := op.Inverse()
	if inv.Kind != OpSplitNode {
		t.Fatalf("expected SplitNode, got %v", inv.Kind)
	}
	want := NewPath(0, 0)
	if !inv.Path.Equal(want) {
		t.Errorf("inverse path = %v, want %v", inv.Path, want)
	}
	if inv.Position != 3 {
		t.Errorf("inverse position = %d, want 3", inv.Position)
	}
}

func TestMergeNodeInversePanicsWithNoPreviousSibling(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when merging the first child")
		}
	}()
	MergeNode(NewPath(0, 0), 0, nil).Inverse()
}

func TestSplitNodeInversePanicsWithNoNext(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic path, since Next() is never absent for non-root paths")
		}
	}()
	// Next() only fails for the root path, so exercise that boundary case
	// directly against the panic condition's guard.
	op := SplitNode(NewPath(), 0, nil)
	op.Inverse()
}

func TestMoveNodeInverseCrossSubtree(t *testing.T) {
	// spec.md worked example family: a move across subtrees inverts via
	// Path.Transform under the move itself.
	op := MoveNode(NewPath(0, 2), NewPath(1, 0, 0))
	inv := op.inverseMove()
	if inv.Kind != OpMoveNode {
		t.Fatalf("expected MoveNode, got %v", inv.Kind)
	}
}

func TestSetSelectionInverseSwapsSides(t *testing.T) {
	oldSel := NewRange(NewPoint(NewPath(0), 0), NewPoint(NewPath(0), 1))
	newSel := NewRange(NewPoint(NewPath(1), 0), NewPoint(NewPath(1), 2))
	op := SetSelection(&oldSel, &newSel)
	inv := op.Inverse()
	if inv.OldSelection != &newSel || inv.NewSelection != &oldSel {
		t.Error("SetSelection.Inverse() should swap Old/New")
	}
}
