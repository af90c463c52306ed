// Package queue implements Component D: an immutable view over the held
// piece and the preview queue, with the two-successor Pop() operation that
// models "play the current piece" vs. "hold".
package queue

import "github.com/iitalics/botris-battle-bluefin/internal/piece"

// View is an immutable (hold, next) pair. A non-empty View always has a
// hold piece: the constructor pulls one from the front of next if none was
// supplied.
type View struct {
	hold    piece.Shape
	hasHold bool
	next    []piece.Shape
}

// New constructs a View. If hold is nil and next is non-empty, the front of
// next is normalized into the hold slot.
func New(hold *piece.Shape, next []piece.Shape) View {
	if hold == nil {
		if len(next) > 0 {
			return View{hold: next[0], hasHold: true, next: next[1:]}
		}
		return View{next: next}
	}
	return View{hold: *hold, hasHold: true, next: next}
}

// Hold returns the held piece and whether one is present.
func (v View) Hold() (piece.Shape, bool) {
	return v.hold, v.hasHold
}

// Next returns the preview pieces after the hold slot.
func (v View) Next() []piece.Shape {
	return v.next
}

// Empty reports whether the view has no reachable piece at all (nothing
// held and nothing upcoming). A bot facing an empty queue has no move to
// make.
func (v View) Empty() bool {
	return !v.hasHold
}

// Pop is one (piece, remaining queue) successor of a View.
type Pop struct {
	Piece piece.Shape
	Next  View
}

// PopAll returns every immediately reachable (piece, queue-after) pair: at
// most two — "play the normalized front" and, when next is non-empty,
// "swap hold with the front of next and play the old hold". Returns nil
// for an empty queue.
func (v View) PopAll() []Pop {
	if !v.hasHold {
		return nil
	}
	out := make([]Pop, 0, 2)
	out = append(out, Pop{Piece: v.hold, Next: New(nil, v.next)})
	if len(v.next) > 0 {
		out = append(out, Pop{
			Piece: v.next[0],
			Next:  View{hold: v.hold, hasHold: true, next: v.next[1:]},
		})
	}
	return out
}
