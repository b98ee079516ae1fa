package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LGimbel/boggle-solver/pkg/dictionary"
	"github.com/LGimbel/boggle-solver/pkg/trie"
)

// dictCommand creates the dict command for inspecting word lists.
func (c *CLI) dictCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Inspect a word list",
	}

	cmd.AddCommand(c.dictStatsCommand())
	cmd.AddCommand(c.dictCheckCommand())

	return cmd
}

// dictStatsCommand creates the "dict stats" subcommand. It loads the word
// list with the same filtering the solver uses, so the counts reflect the
// playable dictionary, not the raw file.
func (c *CLI) dictStatsCommand() *cobra.Command {
	var dictFlag string

	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Show playable word counts by length",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := dictFlag
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				path = c.Config.Dictionary
			}

			prog := newProgress(c.Logger)
			tr, err := dictionary.LoadFile(path)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Loaded %d playable words", tr.Len()))

			printInfo("Word list %s", StyleValue.Render(path))
			printDetail("Playable words: %d (length %d-%d, letters only)",
				tr.Len(), dictionary.MinWordLen, dictionary.MaxWordLen)

			hist := lengthHistogram(tr)
			for length := dictionary.MinWordLen; length <= dictionary.MaxWordLen; length++ {
				n := hist[length]
				if n == 0 {
					continue
				}
				printDetail("%2d letters  %s %d", length, histogramBar(n, maxCount(hist)), n)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dictFlag, "dictionary", "d", "", "word list path (one word per line)")
	return cmd
}

// dictCheckCommand creates the "dict check" subcommand.
func (c *CLI) dictCheckCommand() *cobra.Command {
	var dictFlag string

	cmd := &cobra.Command{
		Use:   "check <word>...",
		Short: "Check whether words are playable and in the list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := dictFlag
			if path == "" {
				path = c.Config.Dictionary
			}

			tr, err := dictionary.LoadFile(path)
			if err != nil {
				return err
			}

			for _, arg := range args {
				word := strings.ToUpper(strings.TrimSpace(arg))
				if tr.Contains(word) {
					printSuccess("%s", word)
				} else {
					printError("%s", word)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dictFlag, "dictionary", "d", "", "word list path (one word per line)")
	return cmd
}

// lengthHistogram counts words per length by walking every terminal node.
func lengthHistogram(tr *trie.Trie) map[int]int {
	hist := make(map[int]int)
	var walk func(n *trie.Node, depth int)
	walk = func(n *trie.Node, depth int) {
		if n.Terminal() {
			hist[depth]++
		}
		for b := byte('A'); b <= 'Z'; b++ {
			if child := n.Child(b); child != nil {
				walk(child, depth+1)
			}
		}
	}
	walk(tr.Root(), 0)
	return hist
}

func maxCount(hist map[int]int) int {
	max := 1
	for _, n := range hist {
		if n > max {
			max = n
		}
	}
	return max
}

// histogramBar scales n against max into a fixed-width bar.
func histogramBar(n, max int) string {
	const width = 30
	if n == 0 {
		return ""
	}
	filled := n * width / max
	if filled == 0 {
		filled = 1
	}
	return StyleHighlight.Render(strings.Repeat("█", filled))
}
