package gui

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestElement_Snapshot(t *testing.T) {
	sys := newTestSystem(t, 100, 50)
	label := NewText("ok", CellMeasurer(8, 16, 16), 16, WithName("label"), WithAlign(AlignStart, AlignStart))
	panel := New(WithName("panel"), WithPadding(EdgeAll(5)), WithChildren(label))
	if err := sys.Root().AddChild(panel); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	sys.Layout()

	got := panel.Snapshot()
	want := &Snapshot{
		Name:        "panel",
		Kind:        "panel",
		BoundingBox: NewRect(0, 0, 100, 50),
		ContentRect: NewRect(5, 5, 90, 40),
		ClipRect:    NewRect(0, 0, 100, 50),
		ActualSize:  Sz(26, 26),
		Visibility:  "visible",
		Children: []*Snapshot{{
			Name:        "label",
			Kind:        "text",
			BoundingBox: NewRect(5, 5, 16, 16),
			ContentRect: NewRect(5, 5, 16, 16),
			ClipRect:    NewRect(5, 5, 16, 16),
			ActualSize:  Sz(16, 16),
			Visibility:  "visible",
		}},
	}

	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(Snapshot{}, "ID")); diff != "" {
		t.Errorf("Snapshot mismatch (-want +got):\n%s", diff)
	}
	if got.ID != panel.ID().String() {
		t.Errorf("Snapshot ID = %s, want %s", got.ID, panel.ID())
	}

	data, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	for _, key := range []string{"boundingBox", "contentRect", "clipRect", "actualSize", "children"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("JSON snapshot missing %q", key)
		}
	}
}

func TestElement_FindAndWalk(t *testing.T) {
	target := New(WithName("target"))
	skipped := New(WithName("skipped"))
	tree := New(WithName("top"), WithChildren(
		New(WithName("left"), WithChildren(target)),
		New(WithName("right"), WithChildren(skipped)),
	))

	if got := tree.Find("target"); got != target {
		t.Errorf("Find(target) = %v, want the target element", got)
	}
	if got := tree.Find("missing"); got != nil {
		t.Errorf("Find(missing) = %v, want nil", got)
	}

	var visited []string
	tree.Walk(func(e *Element) bool {
		visited = append(visited, e.Name())
		return e.Name() != "right"
	})
	want := []string{"top", "left", "target", "right"}
	if diff := cmp.Diff(want, visited); diff != "" {
		t.Errorf("Walk order mismatch (-want +got):\n%s", diff)
	}
}
