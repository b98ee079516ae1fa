package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LGimbel/boggle-solver/pkg/errors"
)

func TestLoad(t *testing.T) {
	input := strings.Join([]string{
		"sea",        // playable, uppercased
		"RISE",       // playable, already upper
		"  spur  ",   // trimmed
		"at",         // too short
		"",           // blank line
		"don't",      // apostrophe, skipped
		"über",       // non-ASCII, skipped
		strings.Repeat("a", 17), // too long
		strings.Repeat("b", 16), // exactly max length, kept
	}, "\n")

	tr, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := tr.Len(); got != 4 {
		t.Errorf("Len() = %d, want 4", got)
	}

	for _, w := range []string{"SEA", "RISE", "SPUR", strings.Repeat("B", 16)} {
		if !tr.Contains(w) {
			t.Errorf("Contains(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"AT", "DON'T", strings.Repeat("A", 17)} {
		if tr.Contains(w) {
			t.Errorf("Contains(%q) = true, want false", w)
		}
	}
}

func TestLoadEmpty(t *testing.T) {
	tr, err := Load(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tr.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tr.Len())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("sea\nspur\nat\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tr, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if tr.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tr.Len())
	}
}

func TestLoadFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")
	_, err := LoadFile(path)
	if !errors.Is(err, errors.ErrCodeDictionaryNotFound) {
		t.Fatalf("LoadFile(%s) err = %v, want DICTIONARY_NOT_FOUND", path, err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error should name the missing file: %v", err)
	}
}

func TestPlayable(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"sea", true},
		{"SEA", true},
		{"at", false},
		{"", false},
		{"don't", false},
		{"a b", false},
	}
	for _, tt := range tests {
		if got := playable(tt.word); got != tt.want {
			t.Errorf("playable(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}
