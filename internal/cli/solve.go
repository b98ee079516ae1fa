package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LGimbel/boggle-solver/pkg/boggle"
	"github.com/LGimbel/boggle-solver/pkg/errors"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	dictionary string // word list path (config default if empty)
	noCache    bool   // disable the solve-result cache
	refresh    bool   // recompute even when a cached result exists
	jsonOut    bool   // print the raw result as JSON
	showPaths  bool   // print a witness path under each top word
}

// solveCommand creates the solve command. It takes the four board rows as
// positional arguments, four letters each.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve <row1> <row2> <row3> <row4>",
		Short: "Solve a 4x4 board against a word list",
		Long: `Solve a 4x4 board: find every dictionary word that can be traced
through adjacent cells without reusing a cell, and print the longest ones.

Examples:
  boggle solve srps euim eahw wdzr
  boggle solve srps euim eahw wdzr --dictionary /usr/share/dict/words
  boggle solve srps euim eahw wdzr --json`,
		Args: cobra.ExactArgs(boardSize),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd, args, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dictionary, "dictionary", "d", "", "word list path (one word per line)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the solve-result cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if a cached result exists")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&opts.showPaths, "paths", false, "show a witness path for each top word")

	return cmd
}

func (c *CLI) runSolve(cmd *cobra.Command, args []string, opts *solveOpts) error {
	if err := errors.ValidateSquareBoard(args, boardSize); err != nil {
		return err
	}

	runner, err := c.newRunner(cmd.Context(), opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	ctx := withLogger(cmd.Context(), c.Logger)
	pipeOpts := c.pipelineOptions(args, opts.dictionary, opts.refresh)

	spinner := newSpinnerWithContext(ctx, "Solving board...")
	spinner.Start()
	result, err := runner.Execute(ctx, pipeOpts)
	spinner.Stop()
	if spinner.Cancelled() {
		return ctx.Err()
	}
	if err != nil {
		return err
	}

	if opts.jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	board, err := boggle.NewBoard(args)
	if err != nil {
		return err
	}

	fmt.Println(renderBoard(board, nil))
	fmt.Println()
	if result.Total == 0 {
		printWarning("No words found on this board")
	} else {
		fmt.Println(renderTopWords(result.Top))
	}
	printStats(result.Total, result.Stats.DictWords, result.CacheInfo.SolveHit)

	if opts.showPaths {
		fmt.Println()
		for _, w := range result.Top {
			printDetail("%s: %s", w, formatPath(result.Paths[w]))
		}
	}

	return nil
}
