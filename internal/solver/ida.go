// Package solver implements the Iterative Deepening A* search: the
// cost-bounded depth-first recursion, its parallel fan-out variant, and
// the parity correction and solution bookkeeping that surround them.
package solver

import (
	"context"
	"math"

	"github.com/vxm-ppz/fifteen-solver/internal/board"
)

// Solver runs a single-threaded IDA* search over one board. It owns the
// board and heuristic directly — unlike the parallel variant, there is
// only ever one call stack mutating them, so no cloning or locking is
// needed on the hot path; only the shared Record is mutex-guarded, to
// keep the same Result shape as the parallel solver.
type Solver struct {
	board  *board.Board
	goal   *GoalIndex
	heur   *Heuristic
	record *Record
}

// New builds a Solver over b. b should already have passed through
// FixParity; the solver does not check solvability itself.
func New(b *board.Board) *Solver {
	goal := NewGoalIndex(b.Width(), b.Height())
	return &Solver{
		board:  b,
		goal:   goal,
		heur:   NewHeuristic(b, goal),
		record: NewRecord(),
	}
}

// Solve runs the outer iterative-deepening loop and returns the best
// step count, an oldest-first trajectory of tiles swapped with 0, and
// the reporting counters. ctx is only checked between outer-loop
// iterations (never mid-recursion), so a cancellation can never leave
// the shared record half-written.
func (s *Solver) Solve(ctx context.Context) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	if s.heur.Sum() == 0 {
		s.record.recordGoal(0, s.board.String())
		return s.record.Result(), nil
	}

	f := s.heur.Sum()
	var steps int64
	for f > 0 {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		f = dfs(s.record, s.goal, s.board, s.heur, f, 1, 0, nil, &steps)
	}
	s.record.AddMadeSteps(steps)
	return s.record.Result(), nil
}

// dfs is the cost-bounded depth-first recursion described in the DFS
// state-machine table: it examines every current neighbour of tile 0
// other than prev, prunes branches whose f exceeds the bound F, detects
// the goal, and otherwise descends. It returns the minimum f-value
// exceeding F seen in this subtree, or 0 if a goal was reached. steps
// counts every StepForward call made anywhere in this subtree — one
// permutation tried, per the original's madeStepsCnt.
//
// This is a free function, not a *Solver method, so the parallel
// variant can run it in-thread (below the fan-out depth) against a
// per-worker Board+Heuristic clone while still sharing the one mutex-
// guarded Record.
func dfs(record *Record, goal *GoalIndex, b *board.Board, h *Heuristic, f, g, prev int, bestOut *int, steps *int64) int {
	min := math.MaxInt
	shuffleWith := 0
	shuffleDepth := 0 // the absolute depth bestOut should forward once this call returns

	for _, nbr := range b.Neighbours(0) {
		if nbr == prev {
			continue
		}

		*steps++
		prevHNbr, prevH0, prevHSum, newHSum := h.StepForward(b, goal, nbr)
		childF := g + newHSum

		if childF > f {
			h.StepBack(b, nbr, prevHNbr, prevH0, prevHSum)
			if shuffleWith != 0 {
				break
			}
			return childF
		}

		if newHSum == 0 {
			if record.recordGoal(g, b.String()) {
				record.pushShuffle(nbr)
				if bestOut != nil {
					*bestOut = g
				}
				h.StepBack(b, nbr, prevHNbr, prevH0, prevHSum)
				if record.soleStateRecorded() {
					record.recordDepthState(g-1, b.String())
				}
				return 0
			}
			h.StepBack(b, nbr, prevHNbr, prevH0, prevHSum)
			return 0
		}

		var childBest int
		m := dfs(record, goal, b, h, f, g+1, nbr, &childBest, steps)
		if m < min {
			min = m
		}
		if childBest != 0 {
			shuffleWith = nbr
			shuffleDepth = childBest
		}
		h.StepBack(b, nbr, prevHNbr, prevH0, prevHSum)
	}

	if min == 0 && shuffleWith != 0 {
		record.recordDepthState(g-1, b.String())
		record.pushShuffle(shuffleWith)
	}
	if bestOut != nil && shuffleWith != 0 {
		*bestOut = shuffleDepth
	}
	return min
}
