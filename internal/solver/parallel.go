package solver

import (
	"context"
	"math"
	"sync"

	"github.com/vxm-ppz/fifteen-solver/internal/board"
)

// ParallelSolver runs the same IDA* recursion as Solver, but at depths
// G <= cpuUnits it fans each non-backtracking neighbour out to its own
// goroutine carrying a cloned Board+Heuristic, joining with a
// sync.WaitGroup before combining results. Grounded in the teacher's
// AStarSolver worker-pool (astar_solver.go): a fixed dispatch frame,
// WaitGroup join, and a single mutex-guarded shared result — reused here
// for cost-bounded DFS fan-out instead of a best-first open set.
type ParallelSolver struct {
	board    *board.Board
	goal     *GoalIndex
	heur     *Heuristic
	record   *Record
	cpuUnits int
}

// NewParallel builds a ParallelSolver over b with the given worker
// budget. cpuUnits <= 0 degenerates to purely in-thread recursion (every
// depth exceeds the fan-out threshold immediately).
func NewParallel(b *board.Board, cpuUnits int) *ParallelSolver {
	goal := NewGoalIndex(b.Width(), b.Height())
	return &ParallelSolver{
		board:    b,
		goal:     goal,
		heur:     NewHeuristic(b, goal),
		record:   NewRecord(),
		cpuUnits: cpuUnits,
	}
}

// Solve runs the outer iterative-deepening loop, dispatching the
// parallel DFS variant at each iteration. Like Solver.Solve, ctx is only
// checked between outer-loop iterations.
func (s *ParallelSolver) Solve(ctx context.Context) (Result, error) {
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
		f = s.dfsMulti(f, 1, 0, s.board, s.heur, nil, &steps)
	}
	s.record.AddMadeSteps(steps)
	return s.record.Result(), nil
}

type fanOutJob struct {
	nbr   int
	board *board.Board
	heur  *Heuristic
}

// dfsMulti is dfs's fan-out variant. Below the depth budget it defers to
// the shared single-threaded recursion; at or above the root up to
// cpuUnits it clones state per neighbour and races workers, joining
// under a WaitGroup. steps accumulates this call's own made-steps total
// — every StepForward this frame makes directly, plus each forked
// worker's own total, summed in under the WaitGroup join per §4.5's
// "sums each worker's madeSteps into this thread's total".
func (s *ParallelSolver) dfsMulti(f, g, prev int, b *board.Board, h *Heuristic, bestOut *int, steps *int64) int {
	if g > s.cpuUnits {
		return dfs(s.record, s.goal, b, h, f, g, prev, bestOut, steps)
	}

	min := math.MaxInt
	shuffleWith := 0
	var jobs []fanOutJob

	for _, nbr := range b.Neighbours(0) {
		if nbr == prev {
			continue
		}

		*steps++
		prevHNbr, prevH0, prevHSum, newHSum := h.StepForward(b, s.goal, nbr)
		childF := g + newHSum

		if childF > f {
			h.StepBack(b, nbr, prevHNbr, prevH0, prevHSum)
			if shuffleWith != 0 {
				break
			}
			return childF
		}

		if newHSum == 0 {
			if s.record.recordGoal(g, b.String()) {
				s.record.pushShuffle(nbr)
				if bestOut != nil {
					*bestOut = g
				}
				h.StepBack(b, nbr, prevHNbr, prevH0, prevHSum)
				if s.record.soleStateRecorded() {
					s.record.recordDepthState(g-1, b.String())
				}
				return 0
			}
			h.StepBack(b, nbr, prevHNbr, prevH0, prevHSum)
			return 0
		}

		// Clone while the board holds nbr's post-move state: this is
		// exactly the state the worker's own recursion should start
		// from at depth g+1.
		jobs = append(jobs, fanOutJob{nbr: nbr, board: b.Clone(), heur: h.Clone()})
		h.StepBack(b, nbr, prevHNbr, prevH0, prevHSum)
	}

	if len(jobs) == 0 {
		return s.joinNone(g, min, shuffleWith, 0, b, bestOut)
	}

	results := make([]int, len(jobs))
	flags := make([]int, len(jobs))
	workerSteps := make([]int64, len(jobs))
	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job fanOutJob) {
			defer wg.Done()
			var childBest int
			results[i] = s.dfsMulti(f, g+1, job.nbr, job.board, job.heur, &childBest, &workerSteps[i])
			flags[i] = childBest
		}(i, job)
	}
	wg.Wait()

	for _, m := range results {
		if m < min {
			min = m
		}
	}
	for _, ws := range workerSteps {
		*steps += ws
	}

	// A worker's flag is the depth at which it found a goal. Only a
	// flag matching the record's current best step count identifies a
	// worker that is actually on the optimal path — ties are resolved
	// by letting the last matching job in dispatch order win, the same
	// deterministic rule the single-threaded sibling loop uses.
	best := s.record.BestSteps()
	shuffleDepth := 0
	for i, job := range jobs {
		if flags[i] != 0 && flags[i] == best {
			shuffleWith = job.nbr
			shuffleDepth = flags[i]
		}
	}

	return s.joinNone(g, min, shuffleWith, shuffleDepth, b, bestOut)
}

// joinNone applies the shared post-loop bookkeeping: if this frame's
// subtree reached a goal (min == 0) through one of its children
// (shuffleWith != 0), snapshot the pre-move board at depth g-1 and push
// the move onto the trajectory; forward shuffleDepth — the absolute
// depth the matching child reported, not this frame's own g — so an
// ancestor fan-out frame's BestSteps() comparison keeps working no
// matter how many nested levels of fan-out lie between it and the
// goal.
func (s *ParallelSolver) joinNone(g, min, shuffleWith, shuffleDepth int, b *board.Board, bestOut *int) int {
	if min == 0 && shuffleWith != 0 {
		s.record.recordDepthState(g-1, b.String())
		s.record.pushShuffle(shuffleWith)
	}
	if bestOut != nil && shuffleWith != 0 {
		*bestOut = shuffleDepth
	}
	return min
}
