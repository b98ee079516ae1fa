// Package pkg provides the core libraries for the boggle solver.
//
// # Overview
//
// The solver finds every dictionary word that can be traced through a grid
// of letters by moving between adjacent cells (including diagonals) without
// reusing a cell. The pkg directory is organized by concern:
//
//   - [trie] - Prefix trie built from a word list; prunes the board walk
//   - [boggle] - Board model and the backtracking solver
//   - [dictionary] - Word list loading and playability filtering
//   - [pipeline] - Orchestration (load → solve → rank) plus result caching
//   - [cache] - Cache backends (file, Redis, null) and key derivation
//   - [render] - Graphviz rendering of a word's path through the board
//   - [errors] - Structured error codes shared by the CLI and HTTP API
//   - [observability] - Hook points for timing and cache instrumentation
//   - [buildinfo] - Version metadata injected at build time
//
// # Architecture
//
// The typical data flow:
//
//	Word list file
//	       ↓
//	dictionary.Load  →  trie.Trie
//	       ↓
//	boggle.NewSolver(board, trie).Solve()
//	       ↓
//	pipeline.Result (total, ranked top words, witness paths)
//
// The pipeline wraps this flow with caching keyed on the board rows and the
// word list's content hash, so repeated solves of the same board are free.
package pkg
