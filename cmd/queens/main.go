// Command queens is the CLI front end for the permutation store, board
// generator, and incremental solver: generate a puzzle, watch the
// solver work it one step at a time, or feed it a serialized board
// directly.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/arkazolin/queens/board"
	"github.com/arkazolin/queens/generator"
	"github.com/arkazolin/queens/internal/render"
	"github.com/arkazolin/queens/permutation"
	"github.com/arkazolin/queens/rng"
	"github.com/arkazolin/queens/solver"
)

const version = "queens 0.1.0"

const usage = `usage: queens <command> [args]

commands:
  --help                          print this message
  --version                       print the version string
  --generate <N>                  generate a unique-solution board, 5 <= N <= 15
  --generate_and_solve <N>        generate, then solve it one step at a time
  --solve_step <board_string>     apply one incremental solver call to a board
  --print_from_string <board_string>   parse and print a serialized board
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 1
	}

	switch args[0] {
	case "--help":
		fmt.Fprint(stdout, usage)
		return 0
	case "--version":
		fmt.Fprintln(stdout, version)
		return 0
	case "--generate":
		return cmdGenerate(args[1:], stdout, stderr)
	case "--generate_and_solve":
		return cmdGenerateAndSolve(args[1:], stdout, stderr)
	case "--solve_step":
		return cmdSolveStep(args[1:], stdout, stderr)
	case "--print_from_string":
		return cmdPrintFromString(args[1:], stdout, stderr)
	default:
		fmt.Fprintf(stderr, "queens: unknown command %q\n\n%s", args[0], usage)
		return 1
	}
}

func cmdGenerate(args []string, stdout, stderr io.Writer) int {
	n, ok := parseSize(args, stderr)
	if !ok {
		return 1
	}

	b, err := newBoard(n)
	if err != nil {
		fmt.Fprintf(stderr, "queens: generate: %v\n", err)
		return 1
	}

	printBoard(stdout, b)
	return 0
}

func cmdGenerateAndSolve(args []string, stdout, stderr io.Writer) int {
	n, ok := parseSize(args, stderr)
	if !ok {
		return 1
	}

	b, err := newBoard(n)
	if err != nil {
		fmt.Fprintf(stderr, "queens: generate_and_solve: %v\n", err)
		return 1
	}

	printBoard(stdout, b)

	ctx := context.Background()
	const maxSteps = 200
	for step := 1; step <= maxSteps; step++ {
		tag, err := solver.IncrementalSolve(ctx, b)
		if err != nil {
			fmt.Fprintf(stderr, "queens: solve: %v\n", err)
			return 1
		}

		fmt.Fprintf(stdout, "step %d: %s\n", step, tag)
		printBoard(stdout, b)

		if tag == solver.SOLVED || tag == solver.FAILED {
			break
		}
	}

	return 0
}

func cmdSolveStep(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "queens: solve_step requires exactly one board_string argument")
		return 1
	}

	b, err := board.Parse(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "queens: solve_step: %v\n", err)
		return 1
	}

	tag, err := solver.IncrementalSolve(context.Background(), b)
	if err != nil {
		fmt.Fprintf(stderr, "queens: solve_step: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "strategy: %s\n", tag)
	printBoard(stdout, b)
	fmt.Fprintln(stdout, board.Serialize(b))
	return 0
}

func cmdPrintFromString(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "queens: print_from_string requires exactly one board_string argument")
		return 1
	}

	b, err := board.Parse(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "queens: print_from_string: %v\n", err)
		return 1
	}

	printBoard(stdout, b)
	return 0
}

func parseSize(args []string, stderr io.Writer) (int, bool) {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "queens: expected exactly one <N> argument")
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "queens: %q is not a valid size\n", args[0])
		return 0, false
	}
	return n, true
}

func newBoard(n int) (*board.Board, error) {
	ctx := context.Background()
	store := permutation.NewStore(cacheDir(), permutation.Packed)
	src := rng.NewSource(int64(os.Getpid()))
	return generator.Generate(ctx, n, generator.DefaultConfig(), store, src)
}

func printBoard(w io.Writer, b *board.Board) {
	_ = render.Board(w, b)
}

func cacheDir() string {
	if dir := os.Getenv("QUEENS_CACHE_DIR"); dir != "" {
		return dir
	}
	return "."
}
