package game

// Size is the board edge length: 4 cells per axis, 64 cells total.
const Size = 4

// Cell is the content of one board position.
type Cell byte

const (
	Empty Cell = iota
	X          // the human-controlled owner
	O          // the engine-controlled owner
)

func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Coord addresses one cell as (layer, row, column), each in [0,Size).
type Coord struct {
	Layer int
	Row   int
	Col   int
}

// Board is the full 4x4x4 grid. It is a value type: assignment copies the
// whole board, so independent searches just need independent copies.
type Board [Size][Size][Size]Cell

// At returns the cell at c. Out-of-range coordinates are a programming
// defect and panic via the array bounds check.
func (b *Board) At(c Coord) Cell {
	return b[c.Layer][c.Row][c.Col]
}

// Set writes cell at c.
func (b *Board) Set(c Coord, cell Cell) {
	b[c.Layer][c.Row][c.Col] = cell
}

// EmptyCells returns every empty coordinate in a fixed order: ascending by
// layer, then row, then column. A fresh slice is returned on every call.
func (b *Board) EmptyCells() []Coord {
	cells := make([]Coord, 0, Size*Size*Size)
	for z := 0; z < Size; z++ {
		for y := 0; y < Size; y++ {
			for x := 0; x < Size; x++ {
				if b[z][y][x] == Empty {
					cells = append(cells, Coord{Layer: z, Row: y, Col: x})
				}
			}
		}
	}
	return cells
}

// IsFull reports whether no empty cell remains.
func (b *Board) IsFull() bool {
	for z := 0; z < Size; z++ {
		for y := 0; y < Size; y++ {
			for x := 0; x < Size; x++ {
				if b[z][y][x] == Empty {
					return false
				}
			}
		}
	}
	return true
}
