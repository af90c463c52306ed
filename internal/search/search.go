// Package search implements Component I: the arena-allocated beam-search
// DAG over placements, driven by iterative widening. The generation
// structuring (successive passes that expand a frontier and prune it back
// to a width) follows the teacher's worker.go/engine.go iterative-deepening
// shape, adapted from chess search depths to single-threaded beam
// generations per the redesigned concurrency model.
package search

import (
	"log"
	"sort"
	"time"

	"github.com/iitalics/botris-battle-bluefin/internal/clearstate"
	"github.com/iitalics/botris-battle-bluefin/internal/eval"
	"github.com/iitalics/botris-battle-bluefin/internal/matrix"
	"github.com/iitalics/botris-battle-bluefin/internal/places"
	"github.com/iitalics/botris-battle-bluefin/internal/queue"
)

// MaxGenerations bounds the default iterative-widening driver.
const MaxGenerations = 5

// beamWidth returns the beam width for generation g: 16, 32, 64, 128, 256.
func beamWidth(g int) int {
	return 16 << uint(g)
}

// NewRoot allocates the search's root node: the board as given, with no
// placement above it.
func NewRoot(arena *Arena, rows []uint16, q queue.View, st clearstate.State) *Node {
	n := arena.Alloc()
	n.rows = rows
	n.Queue = q
	n.State = st
	n.Score = eval.Evaluate(matrix.View(rows), st)
	return n
}

// Expand materializes n's children, one per (piece, landing placement)
// reachable from n.Queue.PopAll(). Expanding an already-expanded node is a
// no-op that returns the existing children, so callers never need to guard
// the call themselves.
func Expand(arena *Arena, buf *matrix.Buffer, n *Node) []*Node {
	if n.expanded {
		return n.Children
	}
	n.expanded = true

	mat := n.Matrix()
	for _, pop := range n.Queue.PopAll() {
		for _, res := range places.Enumerate(mat, pop.Piece) {
			isSpin := res.Cells.Immobile(mat)

			buf.CopyFrom(mat)
			res.Cells.Place(buf)
			cleared := buf.ClearLines(res.Cells.Bottom())

			child := arena.Alloc()
			child.rows = buf.CopyRows()
			child.Queue = pop.Next
			child.State = n.State.Next(cleared, isSpin)
			child.Score = eval.Evaluate(matrix.View(child.rows), child.State)
			child.Parent = n
			child.Edge = res.Piece

			n.Children = append(n.Children, child)
		}
	}
	return n.Children
}

// Options configures a search run.
type Options struct {
	// Logger receives one line per generation when non-nil.
	Logger *log.Logger
	// Deadline, when non-zero, stops the driver between generations (never
	// mid-expansion) once exceeded. A zero Deadline means run to
	// MaxGenerations unconditionally.
	Deadline time.Time
}

// Run drives the iterative-widening beam search from root and returns the
// best-scoring node observed across every generation (ties keep the
// earlier node) along with the number of generations actually run.
// Returns root unchanged if root has no reachable placements at all.
func Run(arena *Arena, buf *matrix.Buffer, root *Node, opts Options) (*Node, int) {
	best := root
	beam := []*Node{root}
	ran := 0

	for generation := 0; generation < MaxGenerations; generation++ {
		if !opts.Deadline.IsZero() && time.Now().After(opts.Deadline) {
			break
		}
		ran++

		width := beamWidth(generation)
		if len(beam) > width {
			sort.Slice(beam, func(i, j int) bool { return beam[i].Score > beam[j].Score })
			beam = beam[:width]
		}

		var next []*Node
		for _, n := range beam {
			if n.Score > best.Score {
				best = n
			}
			next = append(next, Expand(arena, buf, n)...)
		}

		if opts.Logger != nil {
			opts.Logger.Printf("[Search] generation=%d beam=%d frontier=%d nodes=%d best=%d",
				generation, width, len(next), arena.Nodes(), best.Score)
		}

		if len(next) == 0 {
			break
		}
		beam = next
	}

	return best, ran
}
