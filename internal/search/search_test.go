package search

import (
	"testing"

	"github.com/iitalics/botris-battle-bluefin/internal/clearstate"
	"github.com/iitalics/botris-battle-bluefin/internal/matrix"
	"github.com/iitalics/botris-battle-bluefin/internal/piece"
	"github.com/iitalics/botris-battle-bluefin/internal/places"
	"github.com/iitalics/botris-battle-bluefin/internal/queue"
)

func TestExpandMatchesPlaceEnumeratorCount(t *testing.T) {
	arena := NewArena()
	buf := matrix.NewBuffer()

	q := queue.New(nil, []piece.Shape{piece.T})
	root := NewRoot(arena, nil, q, clearstate.New(false))

	children := Expand(arena, buf, root)
	want := len(places.Enumerate(matrix.View(nil), piece.T))
	if len(children) != want {
		t.Fatalf("Expand produced %d children, want %d (from places.Enumerate directly)", len(children), want)
	}

	for _, c := range children {
		if c.Parent != root {
			t.Errorf("child's parent should be root")
		}
		if c.Edge.Shape != piece.T {
			t.Errorf("child edge shape = %v, want T", c.Edge.Shape)
		}
	}
}

func TestExpandIsIdempotent(t *testing.T) {
	arena := NewArena()
	buf := matrix.NewBuffer()
	q := queue.New(nil, []piece.Shape{piece.O})
	root := NewRoot(arena, nil, q, clearstate.New(false))

	first := Expand(arena, buf, root)
	second := Expand(arena, buf, root)
	if len(first) != len(second) {
		t.Fatalf("second Expand call changed child count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("second Expand call returned different child pointers at %d", i)
		}
	}
}

func TestRunReturnsRootEdgeForDescendant(t *testing.T) {
	arena := NewArena()
	buf := matrix.NewBuffer()
	q := queue.New(nil, []piece.Shape{piece.T, piece.J, piece.L, piece.S})
	root := NewRoot(arena, nil, q, clearstate.New(false))

	best, generations := Run(arena, buf, root, Options{})
	if generations == 0 {
		t.Errorf("expected at least one generation to run")
	}
	if best.Score < root.Score {
		t.Errorf("best.Score = %d should be >= root.Score = %d (root is always a candidate)", best.Score, root.Score)
	}

	if best == root {
		return
	}
	edge, ok := best.RootEdge()
	if !ok {
		t.Fatalf("expected a root edge for a non-root best node")
	}
	hold, _ := q.Hold()
	next := q.Next()
	if edge.Shape != hold && (len(next) == 0 || edge.Shape != next[0]) {
		t.Errorf("root edge shape %v should be hold (%v) or first queued piece", edge.Shape, hold)
	}
}

func TestRunKeepsRootWhenQueueEmpty(t *testing.T) {
	arena := NewArena()
	buf := matrix.NewBuffer()
	q := queue.New(nil, nil)
	if !q.Empty() {
		t.Fatalf("expected empty queue")
	}
	root := NewRoot(arena, nil, q, clearstate.New(false))
	best, _ := Run(arena, buf, root, Options{})
	if best != root {
		t.Fatalf("expected root to remain best when the queue starts empty")
	}
}
