package cli

import (
	"testing"

	"github.com/LGimbel/boggle-solver/pkg/trie"
)

func TestLengthHistogram(t *testing.T) {
	tr := trie.New()
	for _, w := range []string{"SEA", "SUE", "SPUR", "WHIMS"} {
		tr.Insert(w)
	}

	hist := lengthHistogram(tr)
	if hist[3] != 2 {
		t.Errorf("hist[3] = %d, want 2", hist[3])
	}
	if hist[4] != 1 {
		t.Errorf("hist[4] = %d, want 1", hist[4])
	}
	if hist[5] != 1 {
		t.Errorf("hist[5] = %d, want 1", hist[5])
	}
}

func TestHistogramBar(t *testing.T) {
	if histogramBar(0, 10) != "" {
		t.Error("zero count should render an empty bar")
	}
	// A tiny but nonzero count still shows at least one block.
	if histogramBar(1, 1000) == "" {
		t.Error("nonzero count should render a visible bar")
	}
}
