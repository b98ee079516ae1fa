package boggle_test

import (
	"fmt"

	"github.com/LGimbel/boggle-solver/pkg/boggle"
	"github.com/LGimbel/boggle-solver/pkg/trie"
)

func ExampleSolver_Solve() {
	board, _ := boggle.NewBoard([]string{"srps", "euim", "eahw", "wdzr"})

	dict := trie.New()
	for _, w := range []string{"SEA", "SPUR", "WHIM"} {
		dict.Insert(w)
	}

	result := boggle.NewSolver(board, dict).Solve()
	fmt.Println("Total:", result.Total)
	fmt.Println("Top:", result.Top)
	// Output:
	// Total: 3
	// Top: [SPUR WHIM SEA]
}

func ExampleBoard_String() {
	board, _ := boggle.NewBoard([]string{"ab", "cd"})
	fmt.Print(board)
	// Output:
	// A B
	// C D
}
