package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LGimbel/boggle-solver/pkg/boggle"
	"github.com/LGimbel/boggle-solver/pkg/errors"
	"github.com/LGimbel/boggle-solver/pkg/render"
)

// Output formats for the paths command.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// pathsOpts holds the command-line flags for the paths command.
type pathsOpts struct {
	dictionary string // word list path (config default if empty)
	output     string // output file (derived from word and format if empty)
	format     string // dot, svg, or png
}

// pathsCommand creates the paths command: it solves the board, looks up the
// witness path of one word, and writes a graph of that path to a file.
func (c *CLI) pathsCommand() *cobra.Command {
	opts := pathsOpts{format: formatSVG}

	cmd := &cobra.Command{
		Use:   "paths <word> <row1> <row2> <row3> <row4>",
		Short: "Render the cell path of a found word",
		Long: `Render the path a word takes through the board as a graph.

The board is solved first; the command fails if the word cannot be traced.

Examples:
  boggle paths spur srps euim eahw wdzr
  boggle paths spur srps euim eahw wdzr -f png -o spur.png`,
		Args: cobra.ExactArgs(1 + boardSize),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPaths(cmd, args[0], args[1:], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dictionary, "dictionary", "d", "", "word list path (one word per line)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <word>.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, dot")

	return cmd
}

func (c *CLI) runPaths(cmd *cobra.Command, word string, rows []string, opts *pathsOpts) error {
	if err := validatePathFormat(opts.format); err != nil {
		return err
	}
	if err := errors.ValidateSquareBoard(rows, boardSize); err != nil {
		return err
	}

	runner, err := c.newRunner(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer runner.Close()

	ctx := withLogger(cmd.Context(), c.Logger)
	prog := newProgress(loggerFromContext(ctx))

	result, err := runner.Execute(ctx, c.pipelineOptions(rows, opts.dictionary, false))
	if err != nil {
		return err
	}

	word = strings.ToUpper(word)
	path, ok := result.Paths[word]
	if !ok {
		return errors.New(errors.ErrCodeWordNotFound, "word %q cannot be traced on this board", word)
	}

	board, err := boggle.NewBoard(rows)
	if err != nil {
		return err
	}

	dot := render.ToDOT(board, word, path)

	var data []byte
	switch opts.format {
	case formatDOT:
		data = []byte(dot)
	case formatSVG:
		data, err = render.RenderSVG(dot)
	case formatPNG:
		data, err = render.RenderPNG(dot)
	}
	if err != nil {
		return err
	}

	out := opts.output
	if out == "" {
		out = strings.ToLower(word) + "." + opts.format
	}
	if err := ensureOutputDir(out); err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	prog.done(fmt.Sprintf("Rendered %s as %s", word, opts.format))
	printSuccess("Rendered path for %s", StyleHighlight.Render(word))
	printDetail("Path: %s", formatPath(path))
	printFile(out)
	return nil
}

// validatePathFormat checks the format flag against the supported set.
func validatePathFormat(format string) error {
	switch format {
	case formatDOT, formatSVG, formatPNG:
		return nil
	default:
		return errors.New(errors.ErrCodeUnsupported, "unsupported format %q (want %s)",
			format, strings.Join([]string{formatSVG, formatPNG, formatDOT}, ", "))
	}
}

// ensure the output directory exists for nested -o paths.
func ensureOutputDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
