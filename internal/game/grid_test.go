package game

import "testing"

func TestCellWrapped(t *testing.T) {
	tests := []struct {
		name string
		in   Cell
		want Cell
	}{
		{"inside", Cell{Col: 5, Row: 5}, Cell{Col: 5, Row: 5}},
		{"right edge", Cell{Col: GridCols, Row: 3}, Cell{Col: 0, Row: 3}},
		{"left edge", Cell{Col: -1, Row: 3}, Cell{Col: GridCols - 1, Row: 3}},
		{"bottom edge", Cell{Col: 4, Row: GridRows}, Cell{Col: 4, Row: 0}},
		{"top edge", Cell{Col: 4, Row: -1}, Cell{Col: 4, Row: GridRows - 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Wrapped(); got != tt.want {
				t.Errorf("Wrapped(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCellShift(t *testing.T) {
	origin := Cell{Col: 10, Row: 10}
	tests := []struct {
		dir  Direction
		want Cell
	}{
		{DirUp, Cell{Col: 10, Row: 9}},
		{DirDown, Cell{Col: 10, Row: 11}},
		{DirLeft, Cell{Col: 9, Row: 10}},
		{DirRight, Cell{Col: 11, Row: 10}},
	}
	for _, tt := range tests {
		if got := origin.Shift(tt.dir); got != tt.want {
			t.Errorf("Shift(%v) = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("Opposite(%v) = %v, want %v", d, got, want)
		}
	}
}

func TestInBounds(t *testing.T) {
	if !(Cell{Col: 0, Row: 0}).InBounds() {
		t.Error("origin should be in bounds")
	}
	if (Cell{Col: GridCols, Row: 0}).InBounds() {
		t.Error("col == GridCols should be out of bounds")
	}
	if (Cell{Col: 0, Row: -1}).InBounds() {
		t.Error("negative row should be out of bounds")
	}
}
