package hashing

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// cacheKey identifies a subtree: a position and the depth searched below it.
type cacheKey struct {
	hash  uint64
	depth int
}

// PerftCache remembers node counts of positions already searched.
// It is not safe for concurrent use; see ThreadSafePerftCache.
type PerftCache struct {
	table map[cacheKey]int64
	// maxCapacity limits the number of stored entries (0 = unlimited)
	maxCapacity int
	hits        int64
	misses      int64
}

// NewPerftCache creates a cache holding at most maxCapacity entries.
// maxCapacity of 0 means unlimited capacity.
func NewPerftCache(maxCapacity int) *PerftCache {
	return &PerftCache{
		table:       make(map[cacheKey]int64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored node count for board searched to depth.
func (c *PerftCache) Lookup(board *chess.Board, depth int) (int64, bool) {
	nodes, ok := c.table[cacheKey{GenerateZobristHash(board), depth}]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return nodes, ok
}

// Store records the node count for board searched to depth. Once the cache
// is full new entries are dropped.
func (c *PerftCache) Store(board *chess.Board, depth int, nodes int64) {
	if c.IsFull() {
		return
	}
	c.table[cacheKey{GenerateZobristHash(board), depth}] = nodes
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *PerftCache) IsFull() bool {
	return c.maxCapacity > 0 && len(c.table) >= c.maxCapacity
}

// Len returns the number of stored entries.
func (c *PerftCache) Len() int {
	return len(c.table)
}

// Hits returns the number of successful lookups.
func (c *PerftCache) Hits() int64 {
	return c.hits
}

// Misses returns the number of failed lookups.
func (c *PerftCache) Misses() int64 {
	return c.misses
}
