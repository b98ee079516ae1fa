package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/LGimbel/boggle-solver/pkg/boggle"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleCell = lipgloss.NewStyle().
			Foreground(colorWhite).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)

	styleCellLit = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(colorCyan).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorCyan).
			Padding(0, 1)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// =============================================================================
// Stats Display
// =============================================================================

// printStats prints solve statistics on a single line.
func printStats(total, dictWords int, cached bool) {
	parts := []string{fmt.Sprintf("%d words found", total)}
	if dictWords > 0 {
		parts = append(parts, fmt.Sprintf("%d in dictionary", dictWords))
	}

	status := iconFresh
	statusStyle := styleComputed
	if cached {
		status = iconCached
		statusStyle = styleCached
	}
	parts = append(parts, statusStyle.Render(status))

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	fmt.Println(line)
}

// =============================================================================
// Board Display
// =============================================================================

// renderBoard renders the grid with bordered cells. Cells whose coordinates
// appear in lit are highlighted; pass nil for a plain board.
func renderBoard(b *boggle.Board, lit map[boggle.Cell]bool) string {
	rows := make([]string, 0, b.Rows())
	for r := 0; r < b.Rows(); r++ {
		cells := make([]string, 0, b.Cols())
		for c := 0; c < b.Cols(); c++ {
			letter := string(b.Letter(r, c))
			if lit[boggle.Cell{Row: r, Col: c}] {
				cells = append(cells, styleCellLit.Render(letter))
			} else {
				cells = append(cells, styleCell.Render(letter))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderTopWords renders the ranked words as a table with rank and length.
func renderTopWords(words []string) string {
	if len(words) == 0 {
		return StyleDim.Render("  (no words found)")
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "WORD", "LEN").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return lipgloss.NewStyle().Foreground(colorGray).Padding(0, 1)
			}
			if col == 1 {
				return StyleHighlight.Padding(0, 1)
			}
			return StyleDim.Padding(0, 1)
		})

	for i, w := range words {
		t.Row(fmt.Sprintf("%d", i+1), w, fmt.Sprintf("%d", len(w)))
	}
	return t.Render()
}

// pathCells converts a witness path to a lookup set for renderBoard.
func pathCells(path []boggle.Cell) map[boggle.Cell]bool {
	lit := make(map[boggle.Cell]bool, len(path))
	for _, c := range path {
		lit[c] = true
	}
	return lit
}

// formatPath renders a witness path as "(r,c) → (r,c) → ...".
func formatPath(path []boggle.Cell) string {
	steps := make([]string, len(path))
	for i, c := range path {
		steps[i] = fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return strings.Join(steps, " "+iconArrow+" ")
}
