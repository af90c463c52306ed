package places

import (
	"fmt"
	"testing"

	"github.com/iitalics/botris-battle-bluefin/internal/falling"
	"github.com/iitalics/botris-battle-bluefin/internal/matrix"
	"github.com/iitalics/botris-battle-bluefin/internal/piece"
)

type poseKey struct {
	x, y int8
	r    piece.Rot
}

func keyOf(p falling.Pose) poseKey {
	return poseKey{p.X, p.Y, p.R}
}

func rangeKeys(x0, x1 int, y int8, r piece.Rot) map[poseKey]bool {
	out := map[poseKey]bool{}
	for x := x0; x <= x1; x++ {
		out[poseKey{int8(x), y, r}] = true
	}
	return out
}

func union(ms ...map[poseKey]bool) map[poseKey]bool {
	out := map[poseKey]bool{}
	for _, m := range ms {
		for k := range m {
			out[k] = true
		}
	}
	return out
}

func TestEnumerateEmptyFieldT(t *testing.T) {
	expected := union(
		rangeKeys(0, 7, 1, piece.RotN),
		rangeKeys(-1, 7, 2, piece.RotE),
		rangeKeys(0, 7, 2, piece.RotS),
		rangeKeys(0, 8, 2, piece.RotW),
	)

	mat := matrix.View(nil)
	results := Enumerate(mat, piece.T)

	got := map[poseKey]bool{}
	for _, r := range results {
		got[keyOf(r.Piece.Pose)] = true
		if r.Cells.Immobile(mat) {
			t.Errorf("pose %+v should not be immobile on an empty field", r.Piece.Pose)
		}
	}

	assertSetEqual(t, got, expected)
}

func TestEnumerateEmptyFieldI(t *testing.T) {
	expected := union(
		rangeKeys(0, 6, 1, piece.RotN),
		rangeKeys(0, 6, 2, piece.RotS),
		rangeKeys(-2, 7, 3, piece.RotE),
		rangeKeys(-1, 8, 3, piece.RotW),
	)

	mat := matrix.View(nil)
	results := Enumerate(mat, piece.I)

	got := map[poseKey]bool{}
	for _, r := range results {
		got[keyOf(r.Piece.Pose)] = true
	}

	assertSetEqual(t, got, expected)
}

func assertSetEqual(t *testing.T, got, want map[poseKey]bool) {
	t.Helper()
	for k := range want {
		if !got[k] {
			t.Errorf("missing expected pose %v", k)
		}
	}
	for k := range got {
		if !want[k] {
			t.Errorf("unexpected pose %v", k)
		}
	}
	if t.Failed() {
		t.Logf("got %d poses, want %d", len(got), len(want))
	}
}

func TestEnumerateDeadOnSpawnCollision(t *testing.T) {
	buf := matrix.NewBuffer()
	for y := 0; y < 21; y++ {
		buf.Set(y, matrix.Full)
	}
	results := Enumerate(buf.View(), piece.O)
	if results != nil {
		t.Fatalf("expected nil results when spawn collides, got %d", len(results))
	}
}

func TestEnumerateSSpinImmobile(t *testing.T) {
	buf := matrix.NewBuffer()
	buf.Set(0, 0b1111001111)
	buf.Set(1, 0b1110011111)

	mat := buf.View()
	results := Enumerate(mat, piece.S)

	found := false
	for _, r := range results {
		if r.Piece.Pose.X == 4 && r.Piece.Pose.Y == 2 && r.Piece.Pose.R == piece.RotS {
			found = true
			if !r.Cells.Immobile(mat) {
				t.Errorf("pose (4,2,S) should be immobile")
			}
		}
	}
	if !found {
		t.Fatalf("expected pose (4,2,S) to be among S piece placements: %v", summarize(results))
	}
}

func summarize(results []Result) string {
	s := ""
	for _, r := range results {
		s += fmt.Sprintf("(%d,%d,%s) ", r.Piece.Pose.X, r.Piece.Pose.Y, r.Piece.Pose.R)
	}
	return s
}
