package maze

// CellType identifies what occupies a single board cell.
type CellType int

const (
	// Wall is a blocked cell. Out-of-bounds coordinates also read as Wall.
	Wall CellType = iota

	// Free is an open, walkable cell.
	Free

	// Start marks the carve origin. Walkable.
	Start

	// End marks the goal cell. Walkable.
	End
)

// Walkable reports whether an agent may occupy a cell of this type.
func (c CellType) Walkable() bool {
	return c != Wall
}

// Rune returns the single-character board notation for the cell type.
func (c CellType) Rune() rune {
	switch c {
	case Wall:
		return '#'
	case Start:
		return 'S'
	case End:
		return 'E'
	default:
		return '.'
	}
}

// Position is a board coordinate. X is the column index and Y is the row
// index, both zero-based from the top-left corner.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the position shifted by dx columns and dy rows.
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}
