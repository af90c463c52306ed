package search

import (
	"unsafe"

	"github.com/iitalics/botris-battle-bluefin/internal/clearstate"
	"github.com/iitalics/botris-battle-bluefin/internal/falling"
	"github.com/iitalics/botris-battle-bluefin/internal/matrix"
	"github.com/iitalics/botris-battle-bluefin/internal/queue"
)

// Node is one arena-allocated vertex of the placement DAG. Its matrix
// reflects the board after the placement that produced it (and any
// resulting line clears); score is computed once at construction. Every
// field except Children (and its expanded flag) is immutable once NewRoot
// or Expand has built the node; Children is a write-once slot filled by
// Expand.
type Node struct {
	rows  []uint16
	Queue queue.View
	State clearstate.State
	Score int32

	Parent *Node
	Edge   falling.Piece // the placement that produced this node; meaningless when Parent == nil

	Children []*Node
	expanded bool
}

var nodeSize = uint64(unsafe.Sizeof(Node{}))

// Matrix returns a read-only view over the node's board.
func (n *Node) Matrix() matrix.Matrix {
	return matrix.View(n.rows)
}

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool {
	return n.Parent == nil
}

// Expanded reports whether Expand has already been called on n.
func (n *Node) Expanded() bool {
	return n.expanded
}

// RootEdge walks n's parent chain back to the node whose parent is the
// root, returning the placement that began that path. Returns the zero
// Piece and false if n is the root itself (no path to reconstruct).
func (n *Node) RootEdge() (falling.Piece, bool) {
	if n.IsRoot() {
		return falling.Piece{}, false
	}
	cur := n
	for !cur.Parent.IsRoot() {
		cur = cur.Parent
	}
	return cur.Edge, true
}
