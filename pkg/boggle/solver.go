// Package boggle finds every dictionary word that can be traced on a
// letter board by stepping between 8-directionally adjacent cells,
// using each cell at most once per word.
//
// The search is a backtracking depth-first walk that descends a prefix
// trie in lock-step with the board. A board path whose letters form a
// prefix of no dictionary word is abandoned the moment the trie has no
// matching child, which keeps the traversal far below the raw
// exponential path count.
package boggle

import (
	"sort"

	"github.com/LGimbel/boggle-solver/pkg/trie"
)

// TopWords is the number of ranked words included in a Result.
const TopWords = 6

// Result holds the outcome of a solve: the number of distinct words
// found, the up-to-TopWords longest (ties broken alphabetically), and a
// witness cell path for every found word.
type Result struct {
	Total int               `json:"total"`
	Top   []string          `json:"top"`
	Paths map[string][]Cell `json:"paths,omitempty"`
}

// Solver searches a board against a dictionary trie. The board and trie
// are read-only for the lifetime of the solver; the visited mask and
// path buffer are scratch state owned by the single in-flight Solve
// call. A Solver is not safe for concurrent use; create one per
// goroutine.
type Solver struct {
	dict  *trie.Trie
	board *Board

	visited [][]bool
	path    []byte
	found   map[string][]Cell
	cells   []Cell
}

// NewSolver creates a solver for the given board and dictionary.
func NewSolver(board *Board, dict *trie.Trie) *Solver {
	visited := make([][]bool, board.Rows())
	for i := range visited {
		visited[i] = make([]bool, board.Cols())
	}
	return &Solver{
		dict:    dict,
		board:   board,
		visited: visited,
		path:    make([]byte, 0, 16),
		cells:   make([]Cell, 0, 16),
	}
}

// Solve runs the full board scan and returns the ranked result. Every
// dictionary word that has at least one valid path on the board appears
// exactly once, no matter how many distinct paths spell it. Solve fully
// restores its scratch state, so calling it again yields an identical
// result.
func (s *Solver) Solve() *Result {
	s.found = make(map[string][]Cell)

	for r := 0; r < s.board.Rows(); r++ {
		for c := 0; c < s.board.Cols(); c++ {
			s.walk(r, c, s.dict.Root())
		}
	}

	res := &Result{
		Total: len(s.found),
		Paths: s.found,
	}
	res.Top = rank(s.found, TopWords)
	s.found = nil
	return res
}

// walk advances the search onto cell (r, c) with the trie positioned at
// node, the prefix spelled so far held in s.path. The visited mask and
// path buffer are restored before walk returns, so siblings and
// ancestors always observe the state they left behind.
func (s *Solver) walk(r, c int, node *trie.Node) {
	if r < 0 || r >= s.board.Rows() || c < 0 || c >= s.board.Cols() || s.visited[r][c] {
		return
	}

	ch := s.board.Letter(r, c)
	next := node.Child(ch)
	if next == nil {
		// No dictionary word continues this prefix: prune the whole
		// subtree of longer paths through this cell.
		return
	}

	s.visited[r][c] = true
	s.path = append(s.path, ch)
	s.cells = append(s.cells, Cell{Row: r, Col: c})
	defer func() {
		s.visited[r][c] = false
		s.path = s.path[:len(s.path)-1]
		s.cells = s.cells[:len(s.cells)-1]
	}()

	if next.Terminal() {
		word := string(s.path)
		if _, seen := s.found[word]; !seen {
			s.found[word] = append([]Cell(nil), s.cells...)
		}
	}

	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			s.walk(r+dr, c+dc, next)
		}
	}
}

// rank orders words by descending length, breaking length ties in
// ascending alphabetical order, and returns at most top entries.
func rank(found map[string][]Cell, top int) []string {
	words := make([]string, 0, len(found))
	for w := range found {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	if len(words) > top {
		words = words[:top]
	}
	return words
}
