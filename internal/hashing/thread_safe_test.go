package hashing

import (
	"sync"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

func TestThreadSafePerftCache_Concurrent(t *testing.T) {
	cache := NewThreadSafePerftCache(0)
	board := testutil.MustBoard(t, testutil.KiwipeteFEN)
	roots := engine.LegalMoves(board)

	const numWorkers = 8
	results := make([]int64, numWorkers)
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			local := board.Copy()
			var total int64
			for _, m := range roots {
				engine.ApplyMove(local, m)
				total += engine.PerftCached(local, 2, cache)
				engine.UnmakeMove(local, m)
			}
			results[workerID] = total
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if got != 97862 {
			t.Errorf("worker %d counted %d, want 97862", i, got)
		}
	}
	if cache.Len() != len(roots) {
		t.Errorf("Len() = %d, want %d", cache.Len(), len(roots))
	}
	engine.ApplyMove(board, roots[0])
	before := cache.Hits()
	engine.PerftCached(board, 2, cache)
	if cache.Hits() != before+1 {
		t.Errorf("hits = %d, want %d", cache.Hits(), before+1)
	}
}

func TestThreadSafePerftCache_Capacity(t *testing.T) {
	cache := NewThreadSafePerftCache(1)
	board := engine.NewInitialBoard()

	cache.Store(board, 2, 400)
	cache.Store(board, 3, 8902)
	if !cache.IsFull() {
		t.Error("IsFull() = false")
	}
	if nodes, ok := cache.Lookup(board, 2); !ok || nodes != 400 {
		t.Errorf("Lookup(2) = %d, %v; want 400, true", nodes, ok)
	}
	if _, ok := cache.Lookup(board, 3); ok {
		t.Error("entry stored past capacity was kept")
	}
}
