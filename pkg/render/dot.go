// Package render draws a found word's cell path over the board as a
// Graphviz diagram.
//
// Every board cell becomes a node laid out on a fixed grid; the cells
// of the word's path are highlighted and connected by numbered edges in
// spelling order. Output formats are DOT text, SVG, and PNG.
package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/LGimbel/boggle-solver/pkg/boggle"
)

// ToDOT converts a board and a word's cell path to Graphviz DOT format.
// The resulting DOT string can be rendered with [RenderSVG] or [RenderPNG].
//
// Cells are pinned to grid coordinates via pos attributes, so the
// neato engine reproduces the board layout exactly.
func ToDOT(board *boggle.Board, word string, path []boggle.Cell) string {
	onPath := make(map[boggle.Cell]int, len(path))
	for i, cell := range path {
		onPath[cell] = i
	}

	var buf bytes.Buffer
	buf.WriteString("digraph board {\n")
	fmt.Fprintf(&buf, "  label=%q;\n", word)
	buf.WriteString("  labelloc=\"t\";\n")
	buf.WriteString("  fontsize=24;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=square, style=filled, fillcolor=white, fontsize=20, fixedsize=true, width=0.7];\n")
	buf.WriteString("  edge [color=\"#2f6f6f\", penwidth=2.0, fontsize=12];\n")
	buf.WriteString("\n")

	for r := 0; r < board.Rows(); r++ {
		for c := 0; c < board.Cols(); c++ {
			attrs := fmt.Sprintf("label=%q, pos=\"%d,%d!\"", string(board.Letter(r, c)), c, board.Rows()-1-r)
			if _, ok := onPath[boggle.Cell{Row: r, Col: c}]; ok {
				attrs += ", fillcolor=\"#9fd8d8\""
			}
			fmt.Fprintf(&buf, "  %q [%s];\n", cellID(r, c), attrs)
		}
	}

	buf.WriteString("\n")
	for i := 1; i < len(path); i++ {
		fmt.Fprintf(&buf, "  %q -> %q [label=\"%d\"];\n",
			cellID(path[i-1].Row, path[i-1].Col),
			cellID(path[i].Row, path[i].Col),
			i)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func cellID(r, c int) string {
	return fmt.Sprintf("r%dc%d", r, c)
}

// RenderSVG renders a DOT graph to SVG using Graphviz with the neato
// engine, which honors the pinned cell positions.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	out := buf.Bytes()
	if format == graphviz.SVG {
		out = normalizeViewBox(out)
	}
	return out, nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
