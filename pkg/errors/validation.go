package errors

// ValidateBoardRows validates raw board row input before board construction.
// Rows must be non-empty, of uniform length, and contain only ASCII letters.
// Case is not checked here; board construction uppercases its input.
func ValidateBoardRows(rows []string) error {
	if len(rows) == 0 {
		return New(ErrCodeInvalidBoard, "board must have at least one row")
	}

	width := len(rows[0])
	if width == 0 {
		return New(ErrCodeInvalidBoard, "board rows cannot be empty")
	}

	for i, row := range rows {
		if len(row) != width {
			return New(ErrCodeInvalidBoard, "row %d has %d letters, want %d", i+1, len(row), width)
		}
		for j := 0; j < len(row); j++ {
			c := row[j]
			isLetter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
			if !isLetter {
				return New(ErrCodeInvalidBoard, "row %d contains non-letter character %q", i+1, c)
			}
		}
	}

	return nil
}

// ValidateSquareBoard validates rows for the fixed-size CLI board:
// exactly size rows, each exactly size letters long.
func ValidateSquareBoard(rows []string, size int) error {
	if len(rows) != size {
		return New(ErrCodeInvalidBoard, "expected %d rows, got %d", size, len(rows))
	}
	for i, row := range rows {
		if len(row) != size {
			return New(ErrCodeInvalidBoard, "row %d must be exactly %d letters long", i+1, size)
		}
	}
	return ValidateBoardRows(rows)
}
