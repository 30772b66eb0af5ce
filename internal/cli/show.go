package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the current cube state",
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	tracker, _, err := loadTracker()
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Cube State"))
	fmt.Println()
	fmt.Println(renderCube(tracker.Cube()))
	fmt.Printf("Phase: %s\n", renderProgress(tracker.Cube()))

	history := tracker.History()
	if len(history) > 0 {
		fmt.Printf("Moves applied: %d\n", len(history))
		if verbose {
			fmt.Printf("History: %s\n", moveStyle.Render(cubesolver.FormatMoves(history)))
		}
	}
	return nil
}
