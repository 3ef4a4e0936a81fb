package main

import (
	"bufio"
	"os"
	"strings"
	"testing"
)

func captureRun(t *testing.T, args []string) (string, int) {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe failed: %v", err)
	}

	code := run(args, w)
	w.Close()

	var sb strings.Builder
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		sb.WriteString(scanner.Text())
		sb.WriteByte('\n')
	}
	return sb.String(), code
}

func TestRunHelp(t *testing.T) {
	out, code := captureRun(t, []string{"--help"})
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(out, "Fifteen Puzzle solver") {
		t.Errorf("help output missing banner: %q", out)
	}
}

func TestRunNoSolution(t *testing.T) {
	out, code := captureRun(t, []string{"--no-solution", "--set-puzzle", "[[1,2,3],[4,5,6],[7,0,8]]"})
	if code != 0 {
		t.Fatalf("exit code = %d, want 0; output: %q", code, out)
	}
	if strings.Contains(out, "solved in") {
		t.Errorf("--no-solution output should not contain a solve report: %q", out)
	}
}

func TestRunSolvesSetPuzzle(t *testing.T) {
	out, code := captureRun(t, []string{"--set-puzzle", "[[1,2,3],[4,5,6],[7,0,8]]", "--multi=false"})
	if code != 0 {
		t.Fatalf("exit code = %d, want 0; output: %q", code, out)
	}
	if !strings.Contains(out, "solved in 1 steps") {
		t.Errorf("output missing expected solve report: %q", out)
	}
}

func TestRunInvalidBoard(t *testing.T) {
	out, code := captureRun(t, []string{"--set-puzzle", "not a board"})
	if code != 1 {
		t.Errorf("exit code = %d, want 1; output: %q", code, out)
	}
}

func TestRunMultiMatchesSingleThreaded(t *testing.T) {
	single, code := captureRun(t, []string{"--set-puzzle", "[[8,6,7],[2,5,4],[3,0,1]]", "--multi=false"})
	if code != 0 {
		t.Fatalf("single-threaded run failed: %d, %q", code, single)
	}
	multi, code := captureRun(t, []string{"--set-puzzle", "[[8,6,7],[2,5,4],[3,0,1]]", "--multi=true", "--cpu-units=4"})
	if code != 0 {
		t.Fatalf("multi-threaded run failed: %d, %q", code, multi)
	}
	if !strings.Contains(single, "solved in 31 steps") || !strings.Contains(multi, "solved in 31 steps") {
		t.Errorf("expected both runs to report 31 steps: single=%q multi=%q", single, multi)
	}
}
