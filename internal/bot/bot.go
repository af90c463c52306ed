// Package bot implements Component J: the glue between the external game
// state (current piece, hold, preview queue, board) and the search core.
// Decide is the only entry point external collaborators need.
package bot

import (
	"log"

	"github.com/iitalics/botris-battle-bluefin/internal/clearstate"
	"github.com/iitalics/botris-battle-bluefin/internal/matrix"
	"github.com/iitalics/botris-battle-bluefin/internal/piece"
	"github.com/iitalics/botris-battle-bluefin/internal/queue"
	"github.com/iitalics/botris-battle-bluefin/internal/reach"
	"github.com/iitalics/botris-battle-bluefin/internal/search"
	"github.com/iitalics/botris-battle-bluefin/internal/telemetry"
)

// Decision is the bot's recommendation: whether to hold before placing,
// and the input sequence (short of the terminal hard-drop) to execute.
type Decision struct {
	Hold   bool
	Inputs []reach.Input
	Stats  telemetry.Stats
}

// Options configures one Decide call.
type Options struct {
	// B2B carries the caller's real back-to-back state into the root
	// node's clear state. The reference source hard-codes this to false;
	// this is the spec's resolution of that open question — expose it as
	// a parameter instead.
	B2B bool
	// Logger receives per-generation search progress lines when non-nil.
	Logger *log.Logger
}

// Decide combines the current falling piece, the held piece (if any), and
// the preview queue into a root search node over mat, runs the beam
// search, and reconstructs the input sequence for the best path's first
// placement. It returns ok=false when the search picks no placement — the
// best node is the root itself, as when every spawn is blocked or no
// searched node scores above the root — or when reach() could not
// reconstruct a sequence for the chosen placement (the latter should be
// unreachable in practice if enumeration and reachability agree; it is
// handled defensively rather than treated as a bug).
func Decide(current piece.Shape, hold *piece.Shape, next []piece.Shape, mat matrix.Matrix, opts Options) (Decision, bool) {
	combined := make([]piece.Shape, 0, len(next)+1)
	if hold != nil {
		combined = append(combined, *hold)
	}
	combined = append(combined, current)
	combined = append(combined, next...)

	q := queue.New(nil, combined)
	if q.Empty() {
		return Decision{}, false
	}

	arena := search.NewArena()
	buf := matrix.NewBuffer()
	buf.CopyFrom(mat)
	rows := buf.CopyRows()

	root := search.NewRoot(arena, rows, q, clearstate.New(opts.B2B))
	best, generations := search.Run(arena, buf, root, search.Options{Logger: opts.Logger})

	stats := telemetry.Stats{
		ArenaBytes:  arena.Bytes(),
		Generations: generations,
		Nodes:       arena.Nodes(),
		BestScore:   best.Score,
	}

	target, ok := best.RootEdge()
	if !ok {
		return Decision{}, false
	}

	inputs, ok := reach.Reach(mat, target)
	if !ok {
		if opts.Logger != nil {
			opts.Logger.Printf("[Bot] reach() failed for chosen placement %+v; this should not happen", target)
		}
		return Decision{}, false
	}

	return Decision{
		Hold:   target.Shape != current,
		Inputs: inputs,
		Stats:  stats,
	}, true
}
