package cli

import (
	"strings"
	"testing"

	"github.com/LGimbel/boggle-solver/pkg/boggle"
)

func TestRenderBoard(t *testing.T) {
	board, err := boggle.NewBoard([]string{"ab", "cd"})
	if err != nil {
		t.Fatal(err)
	}

	out := renderBoard(board, nil)
	for _, letter := range []string{"A", "B", "C", "D"} {
		if !strings.Contains(out, letter) {
			t.Errorf("renderBoard() output missing letter %q", letter)
		}
	}
}

func TestRenderBoardHighlight(t *testing.T) {
	board, err := boggle.NewBoard([]string{"ab", "cd"})
	if err != nil {
		t.Fatal(err)
	}

	lit := map[boggle.Cell]bool{{Row: 0, Col: 0}: true}
	// Highlighting must not panic or drop cells; styling is terminal-dependent.
	out := renderBoard(board, lit)
	if !strings.Contains(out, "A") || !strings.Contains(out, "D") {
		t.Error("highlighted board should still contain every letter")
	}
}

func TestRenderTopWords(t *testing.T) {
	out := renderTopWords([]string{"SPUR", "SEA"})
	if !strings.Contains(out, "SPUR") || !strings.Contains(out, "SEA") {
		t.Error("renderTopWords() should include the words")
	}
	if !strings.Contains(out, "4") {
		t.Error("renderTopWords() should include word lengths")
	}
}

func TestRenderTopWordsEmpty(t *testing.T) {
	out := renderTopWords(nil)
	if out == "" {
		t.Error("renderTopWords(nil) should render a placeholder")
	}
}

func TestFormatPath(t *testing.T) {
	path := []boggle.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}}
	got := formatPath(path)
	if !strings.Contains(got, "(0,0)") || !strings.Contains(got, "(1,1)") {
		t.Errorf("formatPath() = %q", got)
	}
}

func TestPathCells(t *testing.T) {
	path := []boggle.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 0}}
	lit := pathCells(path)
	if len(lit) != 2 {
		t.Fatalf("pathCells() has %d entries, want 2", len(lit))
	}
	if !lit[boggle.Cell{Row: 0, Col: 1}] {
		t.Error("pathCells() missing (0,1)")
	}
}
