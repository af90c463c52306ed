// Package reach implements Component F: shortest input reconstruction. It
// finds the minimum-length input sequence from a shape's spawn pose to a
// target placement's cells, using a lexicographically-weighted Dijkstra
// search. The container/heap priority-queue shape follows the teacher
// pack's graph Dijkstra (katalvlaran/lvlath's graph/dijkstra.go).
package reach

import (
	"container/heap"

	"github.com/iitalics/botris-battle-bluefin/internal/falling"
	"github.com/iitalics/botris-battle-bluefin/internal/matrix"
	"github.com/iitalics/botris-battle-bluefin/internal/piece"
)

// Input is one atomic action the bot can instruct the game client to
// execute, short of the terminal hard-drop.
type Input int

const (
	Left Input = iota
	Right
	Cw
	Ccw
	SonicDrop
)

func (i Input) String() string {
	switch i {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Cw:
		return "Cw"
	case Ccw:
		return "Ccw"
	case SonicDrop:
		return "SonicDrop"
	default:
		return "Input(?)"
	}
}

// cost is the lexicographic distance used to break ties: fewest total
// inputs first, then fewest soft drops, then fewest rotations (so that,
// among equally short sequences, lateral moves are preferred).
type cost struct {
	total, drops, rotations int
}

func (a cost) less(b cost) bool {
	if a.total != b.total {
		return a.total < b.total
	}
	if a.drops != b.drops {
		return a.drops < b.drops
	}
	return a.rotations < b.rotations
}

type edge struct {
	from  falling.Pose
	input Input
}

type pqItem struct {
	piece falling.Piece
	cost  cost
}

type priorityQueue []pqItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].cost.less(pq[j].cost) }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// Reach returns the shortest input sequence that moves target.Shape from
// spawn to a pose whose cells equal target's cells, plus whether the
// target is reachable at all.
func Reach(mat matrix.Matrix, target falling.Piece) ([]Input, bool) {
	spawn := falling.Spawn(target.Shape)
	if spawn.Cells().Collides(mat) {
		return nil, false
	}
	targetCells := target.Cells()

	dist := map[falling.Pose]cost{spawn.Pose: {}}
	parent := map[falling.Pose]edge{}
	visited := map[falling.Pose]bool{}

	pq := &priorityQueue{{piece: spawn, cost: cost{}}}
	heap.Init(pq)

	relax := func(from falling.Piece, next falling.Piece, nc cost, in Input) {
		if visited[next.Pose] {
			return
		}
		if old, ok := dist[next.Pose]; ok && !nc.less(old) {
			return
		}
		dist[next.Pose] = nc
		parent[next.Pose] = edge{from: from.Pose, input: in}
		heap.Push(pq, pqItem{piece: next, cost: nc})
	}

	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem)
		p := item.piece
		if visited[p.Pose] {
			continue
		}
		visited[p.Pose] = true

		// A pose terminates the search either when it already sits on the
		// target cells directly (covers an already-grounded match, such as
		// the final kicked rotation in the S-spin case, and a target equal
		// to the floating spawn pose itself) or when its free settle —
		// SonicDrop, not counted as a traversed edge, standing in for the
		// terminal hard-drop the returned sequence omits — rests on the
		// target cells (covers a grounded target reached by shifting or
		// rotating while still airborne and letting the drop do the rest).
		if _, _, settled := p.SonicDrop(mat); p.Cells() == targetCells || settled == targetCells {
			return reconstruct(parent, p.Pose), true
		}

		c := dist[p.Pose]

		if next, _, ok := p.TryShift(mat, falling.Left); ok {
			relax(p, next, cost{c.total + 1, c.drops, c.rotations}, Left)
		}
		if next, _, ok := p.TryShift(mat, falling.Right); ok {
			relax(p, next, cost{c.total + 1, c.drops, c.rotations}, Right)
		}
		if next, _, ok := p.TryRotate(mat, piece.Cw); ok {
			relax(p, next, cost{c.total + 1, c.drops, c.rotations + 1}, Cw)
		}
		if next, _, ok := p.TryRotate(mat, piece.Ccw); ok {
			relax(p, next, cost{c.total + 1, c.drops, c.rotations + 1}, Ccw)
		}
		if next, dy, _ := p.SonicDrop(mat); dy > 0 {
			relax(p, next, cost{c.total + 1, c.drops + 1, c.rotations}, SonicDrop)
		}
	}

	return nil, false
}

func reconstruct(parent map[falling.Pose]edge, pose falling.Pose) []Input {
	var rev []Input
	for {
		e, ok := parent[pose]
		if !ok {
			break
		}
		rev = append(rev, e.input)
		pose = e.from
	}
	out := make([]Input, len(rev))
	for i, in := range rev {
		out[len(rev)-1-i] = in
	}
	return out
}
