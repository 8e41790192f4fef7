package engine

import (
	"sort"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
// The board is restored before returning.
func Perft(board *chess.Board, depth int) int64 {
	if depth <= 0 {
		return 1
	}
	moves := GenerateMoves(board)
	var nodes int64
	for _, m := range moves {
		ApplyMove(board, m)
		if !IsInCheck(board, m.Moved.Colour()) {
			if depth == 1 {
				nodes++
			} else {
				nodes += Perft(board, depth-1)
			}
		}
		UnmakeMove(board, m)
	}
	return nodes
}

// NodeCache stores subtree node counts keyed by position and depth.
type NodeCache interface {
	Lookup(board *chess.Board, depth int) (int64, bool)
	Store(board *chess.Board, depth int, nodes int64)
}

// PerftCached is Perft with subtree counts shared through cache. A nil
// cache falls back to Perft. Depths below 2 are never cached.
func PerftCached(board *chess.Board, depth int, cache NodeCache) int64 {
	if cache == nil || depth < 2 {
		return Perft(board, depth)
	}
	if nodes, ok := cache.Lookup(board, depth); ok {
		return nodes
	}
	moves := GenerateMoves(board)
	var nodes int64
	for _, m := range moves {
		ApplyMove(board, m)
		if !IsInCheck(board, m.Moved.Colour()) {
			nodes += PerftCached(board, depth-1, cache)
		}
		UnmakeMove(board, m)
	}
	cache.Store(board, depth, nodes)
	return nodes
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes int64
}

// Divide runs Perft below each legal root move. Entries are sorted by the
// move's coordinate text.
func Divide(board *chess.Board, depth int) []DivideEntry {
	if depth <= 0 {
		return nil
	}
	legal := LegalMoves(board)
	entries := make([]DivideEntry, 0, len(legal))
	for _, m := range legal {
		ApplyMove(board, m)
		entries = append(entries, DivideEntry{Move: m, Nodes: Perft(board, depth-1)})
		UnmakeMove(board, m)
	}
	SortDivide(entries)
	return entries
}

// SortDivide orders entries by move text.
func SortDivide(entries []DivideEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.String() < entries[j].Move.String()
	})
}

// DivideTotal sums the nodes of all entries.
func DivideTotal(entries []DivideEntry) int64 {
	var total int64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}
