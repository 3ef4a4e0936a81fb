package solver

import "github.com/vxm-ppz/fifteen-solver/internal/board"

// GoalIndex is the fixed tile -> target-cell mapping for the canonical
// goal of a W×H board: tile i sits at ((i-1)/W, (i-1)%W) for i in
// [1, N-1], and tile 0 sits at the bottom-right cell.
type GoalIndex struct {
	width, height int
	cells         []board.Coord // cells[tile] = its goal coordinate
}

// NewGoalIndex builds the goal mapping once per solve from the board's
// dimensions.
func NewGoalIndex(width, height int) *GoalIndex {
	size := width * height
	cells := make([]board.Coord, size)
	for i := 1; i < size; i++ {
		cells[i] = board.Coord{Row: (i - 1) / width, Col: (i - 1) % width}
	}
	cells[0] = board.Coord{Row: height - 1, Col: width - 1}
	return &GoalIndex{width: width, height: height, cells: cells}
}

// Coord returns the goal cell of tile.
func (g *GoalIndex) Coord(tile int) board.Coord { return g.cells[tile] }
