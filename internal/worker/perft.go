package worker

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// PerftFunc returns a ProcessFunc that plays the item's move and counts the
// leaf nodes below it. cache may be nil; when the pool has more than one
// worker it must be safe for concurrent use.
func PerftFunc(cache engine.NodeCache) ProcessFunc {
	return func(item WorkItem) (result ProcessResult) {
		result = ProcessResult{Index: item.Index, Move: item.Move}
		defer func() {
			if r := recover(); r != nil {
				result.Nodes = 0
				result.Error = fmt.Errorf("perft below %s: %v: %w", item.Move, r, errors.ErrInvariant)
			}
		}()

		board := item.Board
		engine.ApplyMove(&board, item.Move)
		result.Nodes = engine.PerftCached(&board, item.Depth-1, cache)
		return result
	}
}

// Divide counts the nodes below every legal root move of board, spreading
// the root moves over workers goroutines. Entries are sorted by move text.
// board is not modified. The first failed item aborts the run.
func Divide(board *chess.Board, depth, workers int, cache engine.NodeCache) ([]engine.DivideEntry, error) {
	if depth <= 0 {
		return nil, nil
	}
	legal := engine.LegalMoves(board)
	pool := NewPoolWithOptions(PerftFunc(cache),
		WithWorkers(workers),
		WithBufferSize(len(legal)+1),
	)
	pool.Start()

	root := *board
	go func() {
		for i, m := range legal {
			if !pool.Submit(WorkItem{Board: root, Move: m, Depth: depth, Index: i}) {
				break
			}
		}
		pool.Close()
	}()

	entries := make([]engine.DivideEntry, 0, len(legal))
	var firstErr error
	for result := range pool.Results() {
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
				pool.Stop()
			}
			continue
		}
		entries = append(entries, engine.DivideEntry{Move: result.Move, Nodes: result.Nodes})
	}
	if firstErr != nil {
		return nil, firstErr
	}
	engine.SortDivide(entries)
	return entries, nil
}
