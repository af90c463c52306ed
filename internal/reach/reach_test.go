package reach

import (
	"reflect"
	"testing"

	"github.com/iitalics/botris-battle-bluefin/internal/falling"
	"github.com/iitalics/botris-battle-bluefin/internal/matrix"
	"github.com/iitalics/botris-battle-bluefin/internal/piece"
)

func TestReachSimpleTLeft(t *testing.T) {
	mat := matrix.View(nil)
	target := falling.Piece{Shape: piece.T, Pose: falling.Pose{X: 0, Y: 1, R: piece.RotN}}
	inputs, ok := Reach(mat, target)
	if !ok {
		t.Fatalf("expected target to be reachable")
	}
	want := []Input{Left, Left, Left}
	if !reflect.DeepEqual(inputs, want) {
		t.Fatalf("Reach() = %v, want %v", inputs, want)
	}
}

func TestReachTWithRotationTiebreak(t *testing.T) {
	mat := matrix.View(nil)
	target := falling.Piece{Shape: piece.T, Pose: falling.Pose{X: -1, Y: 2, R: piece.RotE}}
	inputs, ok := Reach(mat, target)
	if !ok {
		t.Fatalf("expected target to be reachable")
	}
	want := []Input{Left, Left, Left, Cw, Left}
	if !reflect.DeepEqual(inputs, want) {
		t.Fatalf("Reach() = %v, want %v", inputs, want)
	}
}

func TestReachSSpin(t *testing.T) {
	buf := matrix.NewBuffer()
	buf.Set(0, 0b1111001111)
	buf.Set(1, 0b1110011111)
	mat := buf.View()

	target := falling.Piece{Shape: piece.S, Pose: falling.Pose{X: 4, Y: 2, R: piece.RotS}}
	inputs, ok := Reach(mat, target)
	if !ok {
		t.Fatalf("expected S-spin target to be reachable")
	}
	want := []Input{Cw, SonicDrop, Cw}
	if !reflect.DeepEqual(inputs, want) {
		t.Fatalf("Reach() = %v, want %v", inputs, want)
	}

	cells := target.Cells()
	if !cells.Immobile(mat) {
		t.Fatalf("target cells should be immobile (a spin)")
	}
}

func TestReachUnreachableWhenSpawnBlocked(t *testing.T) {
	buf := matrix.NewBuffer()
	for y := 0; y < 21; y++ {
		buf.Set(y, matrix.Full)
	}
	mat := buf.View()
	target := falling.Piece{Shape: piece.O, Pose: falling.Pose{X: 4, Y: 0, R: piece.RotN}}
	_, ok := Reach(mat, target)
	if ok {
		t.Fatalf("expected unreachable target when spawn is blocked")
	}
}

func TestReachNoInputsWhenAlreadyAtSpawnCells(t *testing.T) {
	mat := matrix.View(nil)
	spawn := falling.Spawn(piece.T)
	inputs, ok := Reach(mat, spawn)
	if !ok {
		t.Fatalf("expected spawn pose to be trivially reachable")
	}
	if len(inputs) != 0 {
		t.Fatalf("expected no inputs needed to reach spawn, got %v", inputs)
	}
}
