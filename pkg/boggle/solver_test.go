package boggle

import (
	"reflect"
	"slices"
	"testing"

	"github.com/LGimbel/boggle-solver/pkg/trie"
)

func mustBoard(t *testing.T, rows ...string) *Board {
	t.Helper()
	b, err := NewBoard(rows)
	if err != nil {
		t.Fatalf("NewBoard(%v): %v", rows, err)
	}
	return b
}

func dictOf(words ...string) *trie.Trie {
	tr := trie.New()
	for _, w := range words {
		tr.Insert(w)
	}
	return tr
}

func TestSolveReferenceBoard(t *testing.T) {
	b := mustBoard(t, "srps", "euim", "eahw", "wdzr")
	dict := dictOf("SEA", "SPUR", "SEED", "WHIM", "RISE", "QUIZ")

	res := NewSolver(b, dict).Solve()

	// SEA, SPUR, SEED and WHIM all have valid adjacency paths.
	for _, w := range []string{"SEA", "SPUR", "SEED", "WHIM"} {
		if !slices.Contains(res.Top, w) {
			t.Errorf("word %s missing from result %v", w, res.Top)
		}
	}

	// RISE forces R(0,1) -> I(1,2) -> S(0,3), and no E neighbors S(0,3);
	// QUIZ has no Q at all. Neither may appear.
	for _, w := range []string{"RISE", "QUIZ"} {
		if slices.Contains(res.Top, w) {
			t.Errorf("word %s has no adjacency path but appeared in %v", w, res.Top)
		}
	}

	if res.Total != 4 {
		t.Errorf("Total = %d, want 4", res.Total)
	}
}

func TestSolveDedup(t *testing.T) {
	// SEA is spellable via both E cells; it must count once.
	b := mustBoard(t, "se", "ea")
	dict := dictOf("SEA")

	res := NewSolver(b, dict).Solve()

	if res.Total != 1 {
		t.Errorf("Total = %d, want 1", res.Total)
	}
	if !reflect.DeepEqual(res.Top, []string{"SEA"}) {
		t.Errorf("Top = %v, want [SEA]", res.Top)
	}
}

func TestSolveRanking(t *testing.T) {
	b := mustBoard(t, "ates", "rsbo", "niop", "tesd")
	dict := dictOf("SET", "BOP", "TEN", "OBOE", "BITS", "STOP", "SID", "POD")

	res := NewSolver(b, dict).Solve()

	for i := 1; i < len(res.Top); i++ {
		prev, cur := res.Top[i-1], res.Top[i]
		if len(prev) < len(cur) {
			t.Fatalf("Top not sorted by descending length: %v", res.Top)
		}
		if len(prev) == len(cur) && prev > cur {
			t.Fatalf("length ties not in ascending order: %v", res.Top)
		}
	}
}

func TestSolveTopCap(t *testing.T) {
	b := mustBoard(t, "srps", "euim", "eahw", "wdzr")
	dict := dictOf("SEA", "SEE", "SUE", "USE", "EAU", "AWE", "WAD", "DAW", "HAD", "SEED", "WHIM")

	res := NewSolver(b, dict).Solve()

	if res.Total <= TopWords {
		t.Fatalf("test needs more than %d findable words, got %d", TopWords, res.Total)
	}
	if len(res.Top) != TopWords {
		t.Errorf("len(Top) = %d, want %d", len(res.Top), TopWords)
	}
}

func TestSolveEmptyDictionary(t *testing.T) {
	b := mustBoard(t, "srps", "euim", "eahw", "wdzr")

	res := NewSolver(b, trie.New()).Solve()

	if res.Total != 0 {
		t.Errorf("Total = %d, want 0", res.Total)
	}
	if len(res.Top) != 0 {
		t.Errorf("Top = %v, want empty", res.Top)
	}
}

func TestSolveTinyBoard(t *testing.T) {
	// A 1x2 board cannot hold words of length 3.
	b := mustBoard(t, "se")
	dict := dictOf("SEA", "SET")

	res := NewSolver(b, dict).Solve()

	if res.Total != 0 {
		t.Errorf("Total = %d, want 0", res.Total)
	}
}

func TestSolveRepeatable(t *testing.T) {
	// The visited mask must be fully unset after Solve, so a second run
	// on the same solver yields an identical result.
	b := mustBoard(t, "srps", "euim", "eahw", "wdzr")
	dict := dictOf("SEA", "SPUR", "SEED", "WHIM", "WAD")

	s := NewSolver(b, dict)
	first := s.Solve()
	second := s.Solve()

	if first.Total != second.Total {
		t.Errorf("Total changed between runs: %d vs %d", first.Total, second.Total)
	}
	if !reflect.DeepEqual(first.Top, second.Top) {
		t.Errorf("Top changed between runs: %v vs %v", first.Top, second.Top)
	}
}

func TestSolveNoCellReuse(t *testing.T) {
	// SEES needs two E cells and two S cells; this board has one E.
	b := mustBoard(t, "se", "xs")
	dict := dictOf("SEES")

	res := NewSolver(b, dict).Solve()

	if res.Total != 0 {
		t.Errorf("Total = %d, want 0 (cells may not repeat within a path)", res.Total)
	}
}

func TestSolvePaths(t *testing.T) {
	b := mustBoard(t, "srps", "euim", "eahw", "wdzr")
	dict := dictOf("SPUR")

	res := NewSolver(b, dict).Solve()

	path, ok := res.Paths["SPUR"]
	if !ok {
		t.Fatal("no witness path recorded for SPUR")
	}
	if len(path) != 4 {
		t.Fatalf("path length = %d, want 4", len(path))
	}

	// The path must spell the word over adjacent, distinct cells.
	seen := map[Cell]bool{}
	for i, cell := range path {
		if b.Letter(cell.Row, cell.Col) != "SPUR"[i] {
			t.Errorf("path cell %d spells %c, want %c", i, b.Letter(cell.Row, cell.Col), "SPUR"[i])
		}
		if seen[cell] {
			t.Errorf("cell %v repeated in path", cell)
		}
		seen[cell] = true
		if i > 0 {
			dr := path[i].Row - path[i-1].Row
			dc := path[i].Col - path[i-1].Col
			if dr < -1 || dr > 1 || dc < -1 || dc > 1 || (dr == 0 && dc == 0) {
				t.Errorf("cells %v and %v are not adjacent", path[i-1], path[i])
			}
		}
	}
}

func TestRank(t *testing.T) {
	found := map[string][]Cell{
		"SEA": nil, "SEED": nil, "WHIM": nil, "SPUR": nil, "WAD": nil,
		"AWE": nil, "USE": nil, "SUE": nil,
	}

	got := rank(found, 6)
	want := []string{"SEED", "SPUR", "WHIM", "AWE", "SEA", "SUE"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rank = %v, want %v", got, want)
	}

	// A cap larger than the set returns everything.
	if got := rank(found, 20); len(got) != len(found) {
		t.Errorf("rank with large cap returned %d words, want %d", len(got), len(found))
	}
}
