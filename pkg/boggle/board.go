package boggle

import (
	"strings"

	"github.com/LGimbel/boggle-solver/pkg/errors"
)

// Cell addresses one board position.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is a rectangular grid of uppercase letters. It is immutable
// after construction.
type Board struct {
	rows []string
}

// NewBoard builds a board from row strings. Input is case-insensitive;
// rows must be non-empty, of uniform length, and contain only letters.
func NewBoard(rows []string) (*Board, error) {
	if err := errors.ValidateBoardRows(rows); err != nil {
		return nil, err
	}

	upper := make([]string, len(rows))
	for i, row := range rows {
		upper[i] = strings.ToUpper(row)
	}
	return &Board{rows: upper}, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return len(b.rows)
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return len(b.rows[0])
}

// Letter returns the uppercase letter at (r, c). Coordinates must be in
// bounds; the solver performs its own bounds checks before calling.
func (b *Board) Letter(r, c int) byte {
	return b.rows[r][c]
}

// RowStrings returns the uppercased rows. The returned slice is a copy.
func (b *Board) RowStrings() []string {
	out := make([]string, len(b.rows))
	copy(out, b.rows)
	return out
}

// String renders the board with one space between letters, one row per
// line.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.Rows() * b.Cols() * 2)
	for _, row := range b.rows {
		for i := 0; i < len(row); i++ {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(row[i])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
