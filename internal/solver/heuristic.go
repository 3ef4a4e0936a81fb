package solver

import "github.com/vxm-ppz/fifteen-solver/internal/board"

// Heuristic holds the per-tile Manhattan distance from each tile's
// current cell to its goal cell, plus the running sum. It is maintained
// incrementally: each move touches exactly two tiles (the one that
// slides and tile 0), so StepForward/StepBack only ever recompute those
// two entries instead of summing the whole board.
type Heuristic struct {
	values []int // values[tile] = Manhattan distance of tile to its goal
	sum    int
}

func manhattan(a, b board.Coord) int {
	d := a.Row - b.Row
	if d < 0 {
		d = -d
	}
	e := a.Col - b.Col
	if e < 0 {
		e = -e
	}
	return d + e
}

// NewHeuristic allocates a Heuristic and immediately Inits it against b
// and goal.
func NewHeuristic(b *board.Board, goal *GoalIndex) *Heuristic {
	h := &Heuristic{values: make([]int, b.Size())}
	h.Init(b, goal)
	return h
}

// Init recomputes every H[tile] and the running sum from scratch.
func (h *Heuristic) Init(b *board.Board, goal *GoalIndex) {
	sum := 0
	for tile := 0; tile < b.Size(); tile++ {
		row, col := b.CoordOf(tile)
		d := manhattan(board.Coord{Row: row, Col: col}, goal.Coord(tile))
		h.values[tile] = d
		sum += d
	}
	h.sum = sum
}

// Sum is H[N], the total Manhattan distance across all tiles.
func (h *Heuristic) Sum() int { return h.sum }

// Value returns H[tile].
func (h *Heuristic) Value(tile int) int { return h.values[tile] }

// StepForward swaps nbr into tile 0's cell on b, recomputes H[nbr] and
// H[0] against their new coordinates, and folds the delta into the
// running sum. It returns the previous values of H[nbr], H[0] and the
// sum, so a matching StepBack can restore them exactly.
func (h *Heuristic) StepForward(b *board.Board, goal *GoalIndex, nbr int) (prevHNbr, prevH0, prevHSum, newHSum int) {
	prevHNbr = h.values[nbr]
	prevH0 = h.values[0]
	prevHSum = h.sum

	b.Swap(nbr, 0)

	rowN, colN := b.CoordOf(nbr)
	newHNbr := manhattan(board.Coord{Row: rowN, Col: colN}, goal.Coord(nbr))
	row0, col0 := b.CoordOf(0)
	newH0 := manhattan(board.Coord{Row: row0, Col: col0}, goal.Coord(0))

	h.values[nbr] = newHNbr
	h.values[0] = newH0
	h.sum = h.sum + (newHNbr + newH0) - (prevHNbr + prevH0)

	return prevHNbr, prevH0, prevHSum, h.sum
}

// StepBack reverses a StepForward(nbr) call: swaps back and restores the
// three heuristic cells that call touched.
func (h *Heuristic) StepBack(b *board.Board, nbr, prevHNbr, prevH0, prevHSum int) {
	b.Swap(nbr, 0)
	h.values[nbr] = prevHNbr
	h.values[0] = prevH0
	h.sum = prevHSum
}

// Clone returns an independent copy, used to seed a parallel worker's
// private heuristic state alongside its cloned Board.
func (h *Heuristic) Clone() *Heuristic {
	values := make([]int, len(h.values))
	copy(values, h.values)
	return &Heuristic{values: values, sum: h.sum}
}
