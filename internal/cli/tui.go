package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/spf13/cobra"

	"github.com/LGimbel/boggle-solver/pkg/boggle"
	"github.com/LGimbel/boggle-solver/pkg/errors"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// playCommand creates the play command: solve the board, then browse the
// found words interactively with each word's path highlighted on the grid.
func (c *CLI) playCommand() *cobra.Command {
	var dictFlag string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "play <row1> <row2> <row3> <row4>",
		Short: "Browse found words in an interactive terminal UI",
		Args:  cobra.ExactArgs(boardSize),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateSquareBoard(args, boardSize); err != nil {
				return err
			}

			runner, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			result, err := runner.Execute(cmd.Context(), c.pipelineOptions(args, dictFlag, false))
			if err != nil {
				return err
			}

			board, err := boggle.NewBoard(args)
			if err != nil {
				return err
			}

			model := NewWordListModel(board, result.Paths)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&dictFlag, "dictionary", "d", "", "word list path (one word per line)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the solve-result cache")

	return cmd
}

// =============================================================================
// WordListModel - Interactive found-word browser
// =============================================================================

// WordListModel is the bubbletea model for browsing found words. The word
// list scrolls; the board stays pinned with the selected word's path lit.
type WordListModel struct {
	Board  *boggle.Board
	Words  []string
	Paths  map[string][]boggle.Cell
	Cursor int
	Height int
	Offset int
}

// NewWordListModel creates a browser over every found word, longest first.
func NewWordListModel(board *boggle.Board, paths map[string][]boggle.Cell) WordListModel {
	words := make([]string, 0, len(paths))
	for w := range paths {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})

	return WordListModel{
		Board:  board,
		Words:  words,
		Paths:  paths,
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m WordListModel) Init() tea.Cmd {
	return nil
}

func (m WordListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Words)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "g", "home":
			m.Cursor = 0
			m.Offset = 0
		case "G", "end":
			m.Cursor = len(m.Words) - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m WordListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Found Words"))
	b.WriteString("  ")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("%d total", len(m.Words))))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	if len(m.Words) == 0 {
		b.WriteString(renderBoard(m.Board, nil))
		b.WriteString("\n\n")
		b.WriteString(listDimStyle.Render("No words found on this board."))
		b.WriteString("\n")
		return b.String()
	}

	selected := m.Words[m.Cursor]
	board := renderBoard(m.Board, pathCells(m.Paths[selected]))

	end := m.Offset + m.Height
	if end > len(m.Words) {
		end = len(m.Words)
	}

	var list strings.Builder
	for i := m.Offset; i < end; i++ {
		w := m.Words[i]
		if i == m.Cursor {
			list.WriteString(listSelectedStyle.Render("▸ " + w))
		} else {
			list.WriteString(listNormalStyle.Render("  " + w))
		}
		list.WriteString("\n")
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, board, "   ", list.String()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(selected + ": " + formatPath(m.Paths[selected])))
	b.WriteString("\n")

	return b.String()
}
