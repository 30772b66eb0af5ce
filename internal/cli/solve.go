package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver"
	"github.com/SeamusWaldron/cubesolver/internal/storage"
)

var (
	solveMaxDepth   int
	solveNodeBudget int64
	solveTimeout    time.Duration
	solveWorkers    int
	solveApply      bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Search for a solution to the current cube",
	Long: `Run an iterative deepening search for a move sequence that solves
the persisted cube. The search is exhaustive up to --max-depth, so any
solution it finds is the shortest possible.

Deeply scrambled cubes are beyond this search; bound the work with
--max-depth, --node-budget, or --timeout. Every attempt is recorded in
the history database whether or not a solution was found.`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntVar(&solveMaxDepth, "max-depth", 8, "Maximum solution length to search")
	solveCmd.Flags().Int64Var(&solveNodeBudget, "node-budget", 0, "Abort after visiting this many nodes (0 = unlimited)")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "Abort after this duration (0 = no timeout)")
	solveCmd.Flags().IntVar(&solveWorkers, "workers", 1, "Parallel workers for the top search level")
	solveCmd.Flags().BoolVar(&solveApply, "apply", false, "Apply the found solution to the cube")
}

func runSolve(cmd *cobra.Command, args []string) error {
	tracker, sf, err := loadTracker()
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	if solveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, solveTimeout)
		defer cancel()
	}

	scramble := cubesolver.FormatMoves(tracker.History())
	start := time.Now()
	result := cubesolver.Solve(ctx, tracker.Cube(),
		cubesolver.WithMaxDepth(solveMaxDepth),
		cubesolver.WithNodeBudget(solveNodeBudget),
		cubesolver.WithWorkers(solveWorkers),
	)
	elapsed := time.Since(start)

	repo := storage.NewSolveRepository(db)
	solveID, err := repo.Record(storage.Solve{
		ScrambleText: scramble,
		SolutionText: cubesolver.FormatMoves(result.Solution),
		Status:       result.Status.String(),
		MoveCount:    len(result.Solution),
		DepthReached: result.Stats.DepthReached,
		NodesVisited: result.Stats.NodesVisited,
		DurationMs:   elapsed.Milliseconds(),
	})
	if err != nil {
		return fmt.Errorf("failed to record solve: %w", err)
	}

	if !result.Solved() {
		fmt.Printf("No solution within depth %d (%d nodes, %s)\n",
			solveMaxDepth, result.Stats.NodesVisited, formatDuration(elapsed))
		if verbose {
			fmt.Printf("Recorded attempt %s\n", solveID)
		}
		return nil
	}

	if len(result.Solution) == 0 {
		fmt.Println("Cube is already solved.")
		return nil
	}

	fmt.Printf("Solution: %s\n", moveStyle.Render(cubesolver.FormatMoves(result.Solution)))
	fmt.Printf("Length %d, %d nodes, %s\n",
		len(result.Solution), result.Stats.NodesVisited, formatDuration(elapsed))
	if verbose {
		fmt.Printf("Recorded solve %s\n", solveID)
	}

	if solveApply {
		tracker.ApplyMoves(result.Solution)
		if err := sf.Save(tracker); err != nil {
			return err
		}
		fmt.Printf("State: %s\n", renderProgress(tracker.Cube()))
	}
	return nil
}
