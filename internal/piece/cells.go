package piece

import "github.com/iitalics/botris-battle-bluefin/internal/matrix"

// Cells is the four occupied squares of a piece at one pose, encoded as a
// bounding rectangle [X0,X1)x[Y0,Y1) plus a bitmask packed low-nibble-first,
// bottom row to top row, 4 bits per row (one bit per column, relative to
// X0). The bitmask always has exactly 4 bits set and the rectangle always
// satisfies 0 <= X1-X0 <= 4 and 0 <= Y1-Y0 <= 4.
type Cells struct {
	X0, X1 int8
	Y0, Y1 int8
	Bits   uint16
}

// Offset translates a Cells rectangle by (dx, dy). Coordinates wrap on
// overflow, which is deliberate: real 10x20 play never approaches i8 range.
func (c Cells) Offset(dx, dy int8) Cells {
	return Cells{
		X0:   c.X0 + dx,
		X1:   c.X1 + dx,
		Y0:   c.Y0 + dy,
		Y1:   c.Y1 + dy,
		Bits: c.Bits,
	}
}

// Collides reports whether c overlaps a filled cell of mat, lies outside
// the field horizontally, or extends below the floor. Rows at or above the
// top of mat are implicitly empty, so only rows below mat.Len() are tested;
// the matrix's sentinel bits above Cols catch horizontal overflow via the
// same AND test.
func (c Cells) Collides(mat matrix.Matrix) bool {
	if c.X0 < 0 || int(c.X1) > matrix.Cols || c.Y0 < 0 {
		return true
	}
	y1 := c.Y1
	if int(y1) > mat.Len() {
		y1 = int8(mat.Len())
	}
	bits := c.Bits
	var test uint16
	for y := c.Y0; y < y1; y++ {
		mask := (bits & 0b1111) << uint(c.X0)
		test |= mat.Get(int(y)) & mask
		bits >>= 4
	}
	return test != 0
}

// Immobile reports whether c cannot move in any of the four cardinal
// directions without colliding. This is the spec's chosen reading of
// "spin" (see DESIGN.md Open Question (a)): the original source's Cells
// helper had an "any one neighbour collides" variant too, but clear-state
// spin bookkeeping is specified against the stricter all-four reading, so
// that is what this implements.
func (c Cells) Immobile(mat matrix.Matrix) bool {
	return c.Offset(0, -1).Collides(mat) &&
		c.Offset(0, 1).Collides(mat) &&
		c.Offset(-1, 0).Collides(mat) &&
		c.Offset(1, 0).Collides(mat)
}

// Place ORs c's occupied cells into buf, row by row.
func (c Cells) Place(buf *matrix.Buffer) {
	bits := c.Bits
	for y := c.Y0; y < c.Y1; y++ {
		mask := (bits & 0b1111) << uint(c.X0)
		buf.Set(int(y), mask)
		bits >>= 4
	}
}

// Bottom returns the lowest occupied row, used as clear_lines' y_start: a
// placement's line clears can only touch rows the placement itself
// occupies.
func (c Cells) Bottom() int {
	return int(c.Y0)
}

// Coords enumerates the four (x, y) board coordinates c occupies. Order is
// unspecified.
func (c Cells) Coords() [4][2]int8 {
	var out [4][2]int8
	i := 0
	bits := c.Bits
	for dy := int8(0); c.Y0+dy < c.Y1; dy++ {
		row := bits & 0b1111
		for dx := int8(0); dx < 4; dx++ {
			if row&(1<<uint(dx)) != 0 {
				out[i] = [2]int8{c.X0 + dx, c.Y0 + dy}
				i++
			}
		}
		bits >>= 4
	}
	return out
}

// cellsTable[shape][rot] gives the local-frame cell layout before any
// offset is applied. Ported verbatim (bit patterns and y-ranges) from the
// reference implementation's standard_rules table.
var cellsTable = [NumShapes][4]Cells{
	I: {
		{X0: 0, X1: 4, Y0: -1, Y1: 0, Bits: 0b1111},
		{X0: 2, X1: 3, Y0: -3, Y1: 1, Bits: 0b0001_0001_0001_0001},
		{X0: 0, X1: 4, Y0: -2, Y1: -1, Bits: 0b1111},
		{X0: 1, X1: 2, Y0: -3, Y1: 1, Bits: 0b0001_0001_0001_0001},
	},
	J: {
		{X0: 0, X1: 3, Y0: -1, Y1: 1, Bits: 0b0001_0111},
		{X0: 1, X1: 3, Y0: -2, Y1: 1, Bits: 0b0011_0001_0001},
		{X0: 0, X1: 3, Y0: -2, Y1: 0, Bits: 0b0111_0100},
		{X0: 0, X1: 2, Y0: -2, Y1: 1, Bits: 0b0010_0010_0011},
	},
	L: {
		{X0: 0, X1: 3, Y0: -1, Y1: 1, Bits: 0b0100_0111},
		{X0: 1, X1: 3, Y0: -2, Y1: 1, Bits: 0b0001_0001_0011},
		{X0: 0, X1: 3, Y0: -2, Y1: 0, Bits: 0b0111_0001},
		{X0: 0, X1: 2, Y0: -2, Y1: 1, Bits: 0b0011_0010_0010},
	},
	O: {
		{X0: 0, X1: 2, Y0: -1, Y1: 1, Bits: 0b0011_0011},
		{X0: 0, X1: 2, Y0: -1, Y1: 1, Bits: 0b0011_0011},
		{X0: 0, X1: 2, Y0: -1, Y1: 1, Bits: 0b0011_0011},
		{X0: 0, X1: 2, Y0: -1, Y1: 1, Bits: 0b0011_0011},
	},
	S: {
		{X0: 0, X1: 3, Y0: -1, Y1: 1, Bits: 0b0110_0011},
		{X0: 1, X1: 3, Y0: -2, Y1: 1, Bits: 0b0001_0011_0010},
		{X0: 0, X1: 3, Y0: -2, Y1: 0, Bits: 0b0110_0011},
		{X0: 0, X1: 2, Y0: -2, Y1: 1, Bits: 0b0001_0011_0010},
	},
	T: {
		{X0: 0, X1: 3, Y0: -1, Y1: 1, Bits: 0b0010_0111},
		{X0: 1, X1: 3, Y0: -2, Y1: 1, Bits: 0b0001_0011_0001},
		{X0: 0, X1: 3, Y0: -2, Y1: 0, Bits: 0b0111_0010},
		{X0: 0, X1: 2, Y0: -2, Y1: 1, Bits: 0b0010_0011_0010},
	},
	Z: {
		{X0: 0, X1: 3, Y0: -1, Y1: 1, Bits: 0b0011_0110},
		{X0: 1, X1: 3, Y0: -2, Y1: 1, Bits: 0b0010_0011_0001},
		{X0: 0, X1: 3, Y0: -2, Y1: 0, Bits: 0b0011_0110},
		{X0: 0, X1: 2, Y0: -2, Y1: 1, Bits: 0b0010_0011_0001},
	},
}

// Cells returns s's local-frame cell layout at rotation r (before any
// translation to a board position is applied).
func (s Shape) Cells(r Rot) Cells {
	return cellsTable[s][r&3]
}
