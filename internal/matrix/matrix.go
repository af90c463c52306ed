// Package matrix implements the bit-packed board representation: a stack of
// 10-wide rows, each packed into a single machine word with sentinel bits
// covering the unused high columns so that horizontal-overflow collisions
// fall out of the same bitwise test as normal column collisions.
package matrix

import "fmt"

// Cols is the width of the play field in columns.
const Cols = 10

// Full is a row with every representable bit set (floor sentinel).
const Full uint16 = 0xFFFF

// Empty is a row with only the sentinel bits (>= Cols) set; it represents an
// unoccupied row, including any row above the top of a stack.
const Empty uint16 = Full &^ (1<<Cols - 1)

// Matrix is an immutable, borrowed view over a slice of packed rows. Row y=0
// is the bottom of the stack; rows grow upward. Reading below the stack
// (y<0) returns Full (as if the floor were solid); reading above the stack
// (y>=len) returns Empty.
type Matrix struct {
	rows []uint16
}

// View wraps a row slice as a read-only Matrix. The caller retains ownership
// of rows; View does not copy.
func View(rows []uint16) Matrix {
	return Matrix{rows: rows}
}

// Rows returns the underlying row slice, bottom row first.
func (m Matrix) Rows() []uint16 {
	return m.rows
}

// Len returns the number of stored rows.
func (m Matrix) Len() int {
	return len(m.rows)
}

// Get returns the packed bits of row y, applying the floor/ceiling sentinel
// policy for out-of-range y.
func (m Matrix) Get(y int) uint16 {
	if y < 0 {
		return Full
	}
	if y >= len(m.rows) {
		return Empty
	}
	return m.rows[y]
}

// Buffer is a growable, owned matrix used to stage placements before they
// are copied into an arena as an immutable Matrix view.
type Buffer struct {
	rows []uint16
}

// NewBuffer allocates an empty buffer with a small initial row capacity.
func NewBuffer() *Buffer {
	return &Buffer{rows: make([]uint16, 0, 24)}
}

// View returns a read-only Matrix over the buffer's current contents. The
// returned Matrix aliases the buffer's backing array: do not mutate the
// buffer while the view is in use across a placement that expects a stable
// snapshot; callers that need a durable copy should use CopyRows.
func (b *Buffer) View() Matrix {
	return Matrix{rows: b.rows}
}

// Len returns the number of stored rows.
func (b *Buffer) Len() int {
	return len(b.rows)
}

// Get returns the packed bits of row y with the same sentinel policy as
// Matrix.Get.
func (b *Buffer) Get(y int) uint16 {
	if y < 0 {
		return Full
	}
	if y >= len(b.rows) {
		return Empty
	}
	return b.rows[y]
}

// Reset empties the buffer without releasing its backing array.
func (b *Buffer) Reset() {
	b.rows = b.rows[:0]
}

// CopyFrom replaces the buffer's contents with a copy of mat's rows.
func (b *Buffer) CopyFrom(mat Matrix) {
	b.rows = append(b.rows[:0], mat.rows...)
}

// CopyRows returns a freshly allocated copy of the buffer's rows, suitable
// for storing in an arena as a durable Matrix view.
func (b *Buffer) CopyRows() []uint16 {
	out := make([]uint16, len(b.rows))
	copy(out, b.rows)
	return out
}

// Set ORs bits into row y, extending the buffer with Empty rows as needed.
// Negative y is a silent no-op (writing below the floor cannot happen, and
// is never an error per the core's out-of-bounds policy).
func (b *Buffer) Set(y int, bits uint16) {
	if y < 0 {
		return
	}
	if y >= len(b.rows) {
		b.growTo(y + 1)
	}
	b.rows[y] |= bits
}

func (b *Buffer) growTo(n int) {
	for len(b.rows) < n {
		b.rows = append(b.rows, Empty)
	}
}

// ClearLines removes every row at or above yStart that is entirely full,
// shifting the remaining rows down to close the gap, and returns the number
// of rows removed. Rows below yStart are left untouched: a placement's line
// clears can only affect rows the placement itself occupies, so callers pass
// the placed piece's bottom row as yStart.
func (b *Buffer) ClearLines(yStart int) uint8 {
	rows := b.rows
	yEnd := len(rows)
	if yStart < 0 {
		yStart = 0
	}
	if yStart > yEnd {
		yStart = yEnd
	}
	yTo := yStart
	for y := yStart; y < yEnd; y++ {
		if rows[y] != Full {
			rows[yTo] = rows[y]
			yTo++
		}
	}
	b.rows = rows[:yTo]
	return uint8(yEnd - yTo)
}

// String renders the buffer bottom-row-first for debugging, one line per
// row, '#' for a set play-field column and '.' otherwise.
func (b *Buffer) String() string {
	return formatRows(b.rows)
}

func formatRows(rows []uint16) string {
	s := ""
	for y := len(rows) - 1; y >= 0; y-- {
		row := rows[y]
		for x := 0; x < Cols; x++ {
			if row&(1<<uint(x)) != 0 {
				s += "#"
			} else {
				s += "."
			}
		}
		s += fmt.Sprintf(" y=%d\n", y)
	}
	return s
}
