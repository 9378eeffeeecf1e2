package main

import (
	"os"

	"github.com/mkwasniak/nroads/internal/cli"
)

// runCLI is an overridable package var so tests can stub the command loop
// without touching real stdin/stdout.
var runCLI = cli.Run

func main() {
	os.Exit(run(os.Args[1:]))
}

// run wires the process's real stdin/stdout/stderr into cli.Run and returns
// the process exit code. Keeping this function small makes unit-testing
// straightforward.
func run(args []string) int {
	return runCLI(args, os.Stdin, os.Stdout, os.Stderr)
}
