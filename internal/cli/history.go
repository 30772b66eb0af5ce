package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded solve attempts",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of attempts to list")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solves, err := storage.NewSolveRepository(db).List(historyLimit)
	if err != nil {
		return err
	}
	if len(solves) == 0 {
		fmt.Println("No solve attempts recorded yet.")
		return nil
	}

	fmt.Println(titleStyle.Render("Solve History"))
	fmt.Println()
	for _, s := range solves {
		status := s.Status
		if status == "found" {
			status = phaseStyle.Render(fmt.Sprintf("found (%d moves)", s.MoveCount))
		} else {
			status = errorStyle.Render("exhausted")
		}
		fmt.Printf("%s  %s  %s  depth %d, %d nodes, %s\n",
			s.SolveID[:8],
			s.CreatedAt.Local().Format(time.DateTime),
			status,
			s.DepthReached,
			s.NodesVisited,
			formatDuration(time.Duration(s.DurationMs)*time.Millisecond))
		if verbose {
			if s.ScrambleText != "" {
				fmt.Printf("  scramble: %s\n", statusStyle.Render(s.ScrambleText))
			}
			if s.SolutionText != "" {
				fmt.Printf("  solution: %s\n", moveStyle.Render(s.SolutionText))
			}
		}
	}
	return nil
}
