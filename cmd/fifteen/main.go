// Command fifteen generates or accepts a sliding-tile puzzle, fixes its
// parity if needed, and solves it with (by default) the parallel IDA*
// variant, reporting the swap sequence and timing. Flag surface and
// exit codes follow the reference C++ front end (main.cpp).
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/pflag"

	"github.com/vxm-ppz/fifteen-solver/internal/board"
	"github.com/vxm-ppz/fifteen-solver/internal/fplog"
	"github.com/vxm-ppz/fifteen-solver/internal/solver"
)

const banner = `*************************************
**       Copyright (c) 2012        **
** The Fifteen Puzzle solver v0.65 **
*************************************`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out *os.File) int {
	flags := pflag.NewFlagSet("fifteen", pflag.ContinueOnError)
	flags.SetOutput(out)

	help := flags.Bool("help", false, "show this help message")
	noSolution := flags.BoolP("no-solution", "n", false, "just create and print random puzzle")
	jsonOut := flags.BoolP("json", "j", false, "print generated puzzle in JSON form")
	width := flags.IntP("width", "w", 4, "random puzzle width")
	height := flags.IntP("height", "h", 4, "random puzzle height")
	setPuzzle := flags.StringP("set-puzzle", "c", "", "set custom puzzle where arg is a bracketed array")
	multi := flags.BoolP("multi", "m", true, "use the parallel variant of the algorithm")
	cpuUnits := flags.IntP("cpu-units", "u", runtime.NumCPU(), "worker budget for the parallel algorithm")
	logConfigPath := flags.String("log-config", "", "optional YAML file configuring logging")
	strictParity := flags.Bool("strict-parity", false, "reject unsolvable boards instead of silently correcting them")

	if err := flags.Parse(args); err != nil {
		fmt.Fprintln(out, banner)
		fmt.Fprintln(out, flags.FlagUsages())
		return 1
	}
	if *help {
		fmt.Fprintln(out, banner)
		fmt.Fprintln(out, flags.FlagUsages())
		return 1
	}

	logConfig, err := fplog.LoadConfig(*logConfigPath)
	if err != nil {
		fmt.Fprintln(out, banner)
		return 1
	}
	if err := fplog.Initialize(logConfig); err != nil {
		fmt.Fprintln(out, banner)
		return 1
	}

	fmt.Fprintln(out, banner)
	fmt.Fprintln(out)

	var puzzle *board.Board
	if *setPuzzle != "" {
		puzzle, err = board.Parse(*setPuzzle)
	} else {
		puzzle, err = board.NewRandom(*width, *height)
	}
	if err != nil {
		fplog.Errorf("constructing board: %v", err)
		fmt.Fprintln(out, err)
		return 1
	}

	if err := solver.FixParity(puzzle, *strictParity); err != nil {
		fplog.Errorf("fixing parity: %v", err)
		fmt.Fprintln(out, err)
		return 1
	}

	fmt.Fprint(out, "=====> Set puzzle: ")
	if *jsonOut {
		fmt.Fprintf(out, "%q", puzzle.String())
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out)
	fmt.Fprint(out, puzzle.Dump())

	if *noSolution {
		return 0
	}

	units := *cpuUnits
	if !*multi {
		units = 1
	}

	start := time.Now()
	ctx := context.Background()

	var (
		res    solver.Result
		solErr error
	)
	if units > 1 {
		res, solErr = solver.NewParallel(puzzle, units).Solve(ctx)
	} else {
		res, solErr = solver.New(puzzle).Solve(ctx)
	}
	elapsed := time.Since(start)

	if solErr != nil {
		fplog.Errorf("solving: %v", solErr)
		fmt.Fprintln(out, solErr)
		return 1
	}

	fmt.Fprintln(out, res.DumpSolutionShuffles())
	fmt.Fprintf(out, "solved in %d steps (%d permutations tried, %d goals found) in %s\n",
		res.Steps, res.MadeSteps, res.GoalsFound, elapsed)
	fplog.Info("solve complete",
		"steps", res.Steps,
		"made_steps", res.MadeSteps,
		"goals_found", res.GoalsFound,
		"cpu_units", units,
		"elapsed", elapsed.String(),
	)

	return 0
}
