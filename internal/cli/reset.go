package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the cube to the solved state",
	RunE:  runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	tracker, sf, err := loadTracker()
	if err != nil {
		return err
	}

	tracker.Reset()
	if err := sf.Save(tracker); err != nil {
		return err
	}

	fmt.Println("Cube reset to solved state.")
	return nil
}
