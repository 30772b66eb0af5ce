// Cube Solver - CLI application for scrambling and solving a Rubik's cube.
package main

import (
	"github.com/SeamusWaldron/cubesolver/internal/cli"
)

func main() {
	cli.Execute()
}
