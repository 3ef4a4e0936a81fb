package solver

import (
	"errors"

	"github.com/vxm-ppz/fifteen-solver/internal/board"
)

// ErrUnsolvable is returned by FixParity(b, true) when b's parity does
// not match the canonical goal's and the caller asked for strict
// rejection instead of silent correction.
var ErrUnsolvable = errors.New("board is not solvable against the canonical goal")

// FixParity computes the board's parity against the canonical goal and,
// if it is odd (unsolvable), corrects it by swapping the positions of
// labels N-2 and N-3 — the same correction the reference solver applies
// unconditionally. With strict set, an odd-parity board is left
// untouched and ErrUnsolvable is returned instead.
func FixParity(b *board.Board, strict bool) error {
	if parity(b)%2 == 0 {
		return nil
	}
	if strict {
		return ErrUnsolvable
	}
	size := b.Size()
	b.Swap(size-2, size-3)
	return nil
}

// parity computes the correction value described in the spec: inversion
// count over the flattened grid (skipping tile 0), adjusted by the row
// of the blank cell and the board's width/height parity.
func parity(b *board.Board) int {
	size := b.Size()
	flat := make([]int, 0, size-1)
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			v := b.ValueAt(row, col)
			if v != 0 {
				flat = append(flat, v)
			}
		}
	}

	p := 0
	for i := 0; i < len(flat); i++ {
		for j := i + 1; j < len(flat); j++ {
			if flat[i] > flat[j] {
				p++
			}
		}
	}

	r0, _ := b.CoordOf(0)
	width, height := b.Width(), b.Height()

	if (size-1)%2 != 0 {
		p += r0
	}
	if height%2 == 0 && width%2 == 0 {
		p++
	}
	if height%2 == 0 && width%2 != 0 {
		p += r0 % 2
	}
	return p
}
