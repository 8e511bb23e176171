package game

// Cell is a grid coordinate. Value type, compared by equality.
type Cell struct {
	Col, Row int
}

// InBounds reports whether the cell lies inside the grid.
func (c Cell) InBounds() bool {
	return c.Col >= 0 && c.Col < GridCols && c.Row >= 0 && c.Row < GridRows
}

// Wrapped returns the cell with coordinates wrapped modulo the grid size.
func (c Cell) Wrapped() Cell {
	col := c.Col % GridCols
	if col < 0 {
		col += GridCols
	}
	row := c.Row % GridRows
	if row < 0 {
		row += GridRows
	}
	return Cell{Col: col, Row: row}
}

type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight

	dirCount // must stay last

	// DirNone marks the absence of a directional intent for a tick.
	DirNone Direction = -1
)

// Opposite returns the reverse heading, used to reject 180-degree turns.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Shift returns the neighboring cell one step along d. No wrapping.
func (c Cell) Shift(d Direction) Cell {
	switch d {
	case DirUp:
		return Cell{Col: c.Col, Row: c.Row - 1}
	case DirDown:
		return Cell{Col: c.Col, Row: c.Row + 1}
	case DirLeft:
		return Cell{Col: c.Col - 1, Row: c.Row}
	default:
		return Cell{Col: c.Col + 1, Row: c.Row}
	}
}
