// Package cli implements the command-line interface for cubesolver.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath    string
	statePath string
	verbose   bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesolver",
	Short: "Rubik's Cube scrambler and solver",
	Long: `cubesolver - a CLI for scrambling and solving a 3x3 Rubik's cube.

The cube state persists between invocations, so you can scramble,
apply moves, inspect the cube, and ask the search solver for a
solution in separate commands. Every solve attempt is recorded in a
local history database.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "History database path (default: ~/.cubesolver/cubesolver.db)")
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "", "Cube state file path (default: ~/.cubesolver/state.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
