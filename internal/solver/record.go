package solver

import (
	"math"
	"strconv"
	"strings"
	"sync"
)

// Record is the one shared value per solve call: the best-known step
// count, the trajectory of tiles swapped with 0 along that path
// (most-recent-first), optional board-string snapshots keyed by depth,
// and counters carried over from the original's madeStepsCnt/slnFoundCnt
// reporting. Every read and write goes through mu — this is the only
// state shared between parallel workers; everything else (Board,
// Heuristic) is cloned per worker. Adapted from the teacher's
// GameHistory (game_history.go): that type tracked a single-threaded
// session's move-by-move log keyed by board hash, this one tracks only
// the current best path, guarded for concurrent writers.
type Record struct {
	mu sync.Mutex

	bestSteps  int
	trajectory []int          // most-recent-first: trajectory[0] was the last move taken into the goal
	states     map[int]string // states[depth] = board string snapshot

	madeSteps  int64
	goalsFound int64
}

// NewRecord returns an empty record with bestSteps effectively +Inf.
func NewRecord() *Record {
	return &Record{bestSteps: math.MaxInt, states: make(map[int]string)}
}

// BestSteps returns the best step count found so far.
func (r *Record) BestSteps() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bestSteps
}

// AddMadeSteps adds n permutations to the shared total. The solvers call
// it once, after the outer loop, with the count summed over all workers.
func (r *Record) AddMadeSteps(n int64) {
	r.mu.Lock()
	r.madeSteps += n
	r.mu.Unlock()
}

// recordGoal registers a goal reached at depth G, with goalBoard the
// board string at the moment of discovery. Returns true if this became
// the new best (strictly shorter than anything recorded so far).
func (r *Record) recordGoal(depth int, goalBoard string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.goalsFound++
	if depth >= r.bestSteps {
		return false
	}
	r.bestSteps = depth
	r.trajectory = r.trajectory[:0]
	r.states = make(map[int]string)
	r.states[depth] = goalBoard
	return true
}

// pushShuffle appends tile to the most-recent-first trajectory. It takes
// no snapshot; callers record board states through recordDepthState.
func (r *Record) pushShuffle(tile int) {
	r.mu.Lock()
	r.trajectory = append(r.trajectory, tile)
	r.mu.Unlock()
}

// recordDepthState snapshots boardStr at the given depth, used by the
// post-loop unwind bookkeeping in DFS.
func (r *Record) recordDepthState(depth int, boardStr string) {
	r.mu.Lock()
	r.states[depth] = boardStr
	r.mu.Unlock()
}

// soleStateRecorded reports whether exactly one snapshot is currently
// held — used right after recordGoal to decide whether the pre-goal
// state at G-1 still needs seeding.
func (r *Record) soleStateRecorded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states) == 1
}

// Result is the solve's output value: the best step count, the ordered
// (oldest-first) trajectory, and the counters carried from the
// original's reporting surface.
type Result struct {
	Steps      int
	Trajectory []int // oldest-first
	MadeSteps  int64
	GoalsFound int64
}

// Result reads out the record's final state as an immutable oldest-first
// Result.
func (r *Record) Result() Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	traj := make([]int, len(r.trajectory))
	for i, t := range r.trajectory {
		traj[len(traj)-1-i] = t
	}
	return Result{
		Steps:      r.bestSteps,
		Trajectory: traj,
		MadeSteps:  r.madeSteps,
		GoalsFound: r.goalsFound,
	}
}

// DumpSolutionShuffles renders the swap sequence oldest-first,
// comma-separated, matching the reference front end's
// dumpSolutionShuffles().
func (res Result) DumpSolutionShuffles() string {
	parts := make([]string, len(res.Trajectory))
	for i, t := range res.Trajectory {
		parts[i] = strconv.Itoa(t)
	}
	return strings.Join(parts, ",")
}

// DumpSolutionStates renders the snapshot map in ascending depth order,
// one "depth: board" line per recorded entry, for debugging —
// dumpSolutionStates() in the reference front end.
func (r *Record) DumpSolutionStates() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sb strings.Builder
	for depth := 0; depth <= r.bestSteps; depth++ {
		s, ok := r.states[depth]
		if !ok {
			continue
		}
		sb.WriteString(strconv.Itoa(depth))
		sb.WriteString(": ")
		sb.WriteString(s)
		sb.WriteByte('\n')
	}
	return sb.String()
}
