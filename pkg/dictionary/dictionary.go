// Package dictionary loads word lists into the prefix trie used by the
// board search.
//
// Words are read one per line, trimmed, uppercased, and filtered before
// insertion: only words of 3 to 16 letters are playable, and because
// the trie is indexed by the letters A-Z, words containing any other
// character are skipped (they could never be traced on a letter board
// anyway).
package dictionary

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/LGimbel/boggle-solver/pkg/errors"
	"github.com/LGimbel/boggle-solver/pkg/trie"
)

// Word length bounds for playable words.
const (
	MinWordLen = 3
	MaxWordLen = 16
)

// Load reads newline-separated words from r and returns a trie holding
// every playable word, uppercased. Lines that are empty, out of the
// playable length range, or contain non-letter characters are skipped.
func Load(r io.Reader) (*trie.Trie, error) {
	tr := trie.New()

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		word := strings.TrimSpace(sc.Text())
		if !playable(word) {
			continue
		}
		tr.Insert(strings.ToUpper(word))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read word list")
	}

	return tr, nil
}

// LoadFile reads a word list from path. A missing or unreadable file is
// reported as a DICTIONARY_NOT_FOUND error naming the path.
func LoadFile(path string) (*trie.Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDictionaryNotFound, err, "open dictionary %s", path)
	}
	defer f.Close()
	return Load(f)
}

// playable reports whether word passes the length and alphabet filters.
func playable(word string) bool {
	if len(word) < MinWordLen || len(word) > MaxWordLen {
		return false
	}
	for i := 0; i < len(word); i++ {
		c := word[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
