package game

import "errors"

// ErrNoFreeCell is returned when the sampling domain holds no free cell.
// Callers are expected to keep the grid from saturating; this error means
// that guarantee was broken and the session cannot continue.
var ErrNoFreeCell = errors.New("game: no free cell in placement domain")

// maxPlacementTries bounds rejection sampling before falling back to an
// ordered scan of the domain.
const maxPlacementTries = GridCols * GridRows

// RandomFreeCell draws a uniformly random cell that is absent from
// occupied. With a magnet bias it samples from a window of ±MagnetRange
// cells around the bias cell, clamped to grid bounds. If rejection
// sampling fails it scans the domain once and fails fast when the domain
// is fully occupied.
func RandomFreeCell(r *Rand, occupied map[Cell]struct{}, magnetBias *Cell) (Cell, error) {
	minCol, maxCol := 0, GridCols-1
	minRow, maxRow := 0, GridRows-1
	if magnetBias != nil {
		minCol = clamp(magnetBias.Col-MagnetRange, 0, GridCols-1)
		maxCol = clamp(magnetBias.Col+MagnetRange, 0, GridCols-1)
		minRow = clamp(magnetBias.Row-MagnetRange, 0, GridRows-1)
		maxRow = clamp(magnetBias.Row+MagnetRange, 0, GridRows-1)
	}

	for i := 0; i < maxPlacementTries; i++ {
		c := Cell{Col: r.Range(minCol, maxCol), Row: r.Range(minRow, maxRow)}
		if _, taken := occupied[c]; !taken {
			return c, nil
		}
	}

	// Random draws kept colliding; scan the domain for any free cell.
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			c := Cell{Col: col, Row: row}
			if _, taken := occupied[c]; !taken {
				return c, nil
			}
		}
	}
	return Cell{}, ErrNoFreeCell
}
