// Package falling implements Component C: a falling piece's pose on a
// matrix, with the three primitive moves (shift, rotate with kicks, sonic
// drop) that both place enumeration and input reconstruction are built on.
package falling

import (
	"github.com/iitalics/botris-battle-bluefin/internal/matrix"
	"github.com/iitalics/botris-battle-bluefin/internal/piece"
)

// Dir is a lateral shift direction.
type Dir int8

const (
	Left  Dir = -1
	Right Dir = 1
)

// Pose is a piece's position and rotation state.
type Pose struct {
	X, Y int8
	R    piece.Rot
}

// Piece is a falling piece: a shape at a pose.
type Piece struct {
	Shape piece.Shape
	Pose  Pose
}

// Spawn returns p at its shape's spawn pose.
func Spawn(s piece.Shape) Piece {
	x, y := s.Spawn()
	return Piece{Shape: s, Pose: Pose{X: x, Y: y, R: piece.RotN}}
}

// Cells returns the board cells occupied by p at its current pose.
func (p Piece) Cells() piece.Cells {
	return p.Shape.Cells(p.Pose.R).Offset(p.Pose.X, p.Pose.Y)
}

// TryShift attempts to move p one column in dir. On success it returns the
// shifted piece and its cells; otherwise it returns ok=false and p
// unchanged.
func (p Piece) TryShift(mat matrix.Matrix, dir Dir) (Piece, piece.Cells, bool) {
	trial := p
	trial.Pose.X += int8(dir)
	cells := trial.Cells()
	if cells.Collides(mat) {
		return p, piece.Cells{}, false
	}
	return trial, cells, true
}

// TryRotate attempts to rotate p in direction t, trying each of the
// shape's wall-kick offsets in order and committing the first one that
// does not collide. Returns ok=false if every kick collides.
func (p Piece) TryRotate(mat matrix.Matrix, t piece.Turn) (Piece, piece.Cells, bool) {
	newRot := p.Pose.R.Add(t)
	kicks := p.Shape.WallKicks(p.Pose.R, t)
	for _, k := range kicks {
		trial := p
		trial.Pose.X += k.Dx
		trial.Pose.Y += k.Dy
		trial.Pose.R = newRot
		cells := trial.Cells()
		if !cells.Collides(mat) {
			return trial, cells, true
		}
	}
	return p, piece.Cells{}, false
}

// SonicDrop moves p downward until it rests on the stack (or the floor),
// returning the dropped piece, how many rows it fell, and its final cells.
// When the piece starts well above the stack, the descent is pre-computed
// in one step rather than tested row by row.
func (p Piece) SonicDrop(mat matrix.Matrix) (Piece, int, piece.Cells) {
	cells := p.Cells()
	skip := 0
	if !cells.Collides(mat) {
		// Pre-drop to the top of the stack: no collision is possible
		// until the piece's bottom reaches the highest occupied row.
		if s := int(cells.Y0) - mat.Len(); s > 0 {
			skip = s
			cells = cells.Offset(0, -int8(skip))
		}
	}
	k := skip
	for {
		next := cells.Offset(0, -1)
		if next.Collides(mat) {
			break
		}
		cells = next
		k++
	}
	p.Pose.Y -= int8(k)
	return p, k, cells
}
