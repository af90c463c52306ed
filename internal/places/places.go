// Package places implements Component E: the place enumerator. Given a
// matrix and a piece shape, it walks every distinct pose reachable from
// spawn via shifts, kicked rotations, and soft drops, and emits the subset
// of those poses that are already resting on the stack.
package places

import (
	"github.com/iitalics/botris-battle-bluefin/internal/falling"
	"github.com/iitalics/botris-battle-bluefin/internal/matrix"
	"github.com/iitalics/botris-battle-bluefin/internal/piece"
)

// Result is one emitted placement: the resting falling piece and the cells
// it occupies.
type Result struct {
	Piece falling.Piece
	Cells piece.Cells
}

var rotateTurns = [2]piece.Turn{piece.Cw, piece.Ccw}
var driftDirs = [2]falling.Dir{falling.Left, falling.Right}

// Enumerate returns every distinct final pose of shape reachable from spawn
// on mat. An empty (nil) result means the spawn pose itself collides — the
// piece is dead on arrival. Order is unspecified; callers must treat the
// result as a set.
func Enumerate(mat matrix.Matrix, shape piece.Shape) []Result {
	spawn := falling.Spawn(shape)
	if spawn.Cells().Collides(mat) {
		return nil
	}

	visited := newVisitedSet(256)
	visited.insert(spawn.Pose)

	stack := []falling.Piece{spawn}
	var results []Result

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, t := range rotateTurns {
			if np, _, ok := p.TryRotate(mat, t); ok && visited.insert(np.Pose) {
				stack = append(stack, np)
			}
		}

		for _, dir := range driftDirs {
			cur := p
			for {
				next, _, ok := cur.TryShift(mat, dir)
				if !ok {
					break
				}
				if visited.insert(next.Pose) {
					stack = append(stack, next)
				}
				cur = next
			}
		}

		dropped, dy, cells := p.SonicDrop(mat)
		if dy > 0 {
			if visited.insert(dropped.Pose) {
				stack = append(stack, dropped)
			}
			continue
		}
		results = append(results, Result{Piece: p, Cells: cells})
	}

	return results
}
