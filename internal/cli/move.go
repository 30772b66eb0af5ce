package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver"
)

var moveCmd = &cobra.Command{
	Use:   "move <moves...>",
	Short: "Apply moves to the cube",
	Long: `Apply one or more moves in standard notation to the persisted cube.

Moves can be given as separate arguments or as a single quoted
sequence, e.g.:

  cubesolver move R U R' U'
  cubesolver move "R U R' U'"

If any token is invalid the whole command fails and the cube is left
unchanged.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMove,
}

func init() {
	rootCmd.AddCommand(moveCmd)
}

func runMove(cmd *cobra.Command, args []string) error {
	moves, err := cubesolver.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	tracker, sf, err := loadTracker()
	if err != nil {
		return err
	}

	tracker.ApplyMoves(moves)

	if err := sf.Save(tracker); err != nil {
		return err
	}

	fmt.Printf("Applied: %s\n", moveStyle.Render(cubesolver.FormatMoves(moves)))
	if verbose {
		fmt.Println(renderCube(tracker.Cube()))
	}
	fmt.Printf("State: %s\n", renderProgress(tracker.Cube()))
	return nil
}
