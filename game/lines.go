package game

// Line is an ordered set of four collinear coordinates; an owner holding
// all four has won.
type Line [4]Coord

// The full catalogue of winning lines, built once at startup. Both the
// generation order and the first-match semantics of Winner are load-bearing:
// when several lines complete at once, callers are told the lowest-indexed
// one, and regenerating the catalogue must reproduce the same 76 lines in
// the same order.
var winningLines = generateLines()

// Lines returns the fixed 76-line catalogue. The returned slice is shared
// and must not be modified.
func Lines() []Line {
	return winningLines
}

func generateLines() []Line {
	lines := make([]Line, 0, 76)

	// Rows and columns within each layer
	for z := 0; z < Size; z++ {
		for y := 0; y < Size; y++ {
			lines = append(lines, lineFrom(Coord{z, y, 0}, 0, 0, 1))
		}
		for x := 0; x < Size; x++ {
			lines = append(lines, lineFrom(Coord{z, 0, x}, 0, 1, 0))
		}
	}
	// Pillars through the layers
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			lines = append(lines, lineFrom(Coord{0, y, x}, 1, 0, 0))
		}
	}
	// Diagonals within each layer
	for z := 0; z < Size; z++ {
		lines = append(lines, lineFrom(Coord{z, 0, 0}, 0, 1, 1))
		lines = append(lines, lineFrom(Coord{z, 0, Size - 1}, 0, 1, -1))
	}
	// Diagonals within each row plane
	for y := 0; y < Size; y++ {
		lines = append(lines, lineFrom(Coord{0, y, 0}, 1, 0, 1))
		lines = append(lines, lineFrom(Coord{0, y, Size - 1}, 1, 0, -1))
	}
	// Diagonals within each column plane
	for x := 0; x < Size; x++ {
		lines = append(lines, lineFrom(Coord{0, 0, x}, 1, 1, 0))
		lines = append(lines, lineFrom(Coord{0, Size - 1, x}, 1, -1, 0))
	}
	// Space diagonals
	lines = append(lines, lineFrom(Coord{0, 0, 0}, 1, 1, 1))
	lines = append(lines, lineFrom(Coord{0, 0, Size - 1}, 1, 1, -1))
	lines = append(lines, lineFrom(Coord{0, Size - 1, 0}, 1, -1, 1))
	lines = append(lines, lineFrom(Coord{Size - 1, 0, 0}, -1, 1, 1))

	return lines
}

// lineFrom builds the line starting at start with a constant per-axis step.
func lineFrom(start Coord, dz, dy, dx int) Line {
	var line Line
	for i := 0; i < len(line); i++ {
		line[i] = Coord{
			Layer: start.Layer + i*dz,
			Row:   start.Row + i*dy,
			Col:   start.Col + i*dx,
		}
	}
	return line
}

// Winner returns the first catalogue-order line whose four cells are all
// held by owner, or false if owner has no complete line.
func (b *Board) Winner(owner Cell) (Line, bool) {
	for _, line := range winningLines {
		complete := true
		for _, c := range line {
			if b.At(c) != owner {
				complete = false
				break
			}
		}
		if complete {
			return line, true
		}
	}
	return Line{}, false
}
