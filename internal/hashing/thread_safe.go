package hashing

import (
	"sync"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// ThreadSafePerftCache wraps PerftCache with mutex protection for concurrent access.
type ThreadSafePerftCache struct {
	cache *PerftCache
	mu    sync.Mutex
}

// NewThreadSafePerftCache creates a new thread-safe cache.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafePerftCache(maxCapacity int) *ThreadSafePerftCache {
	return &ThreadSafePerftCache{
		cache: NewPerftCache(maxCapacity),
	}
}

// Lookup returns the stored node count for board searched to depth.
// The key is computed outside the lock.
func (c *ThreadSafePerftCache) Lookup(board *chess.Board, depth int) (int64, bool) {
	key := cacheKey{GenerateZobristHash(board), depth}
	c.mu.Lock()
	defer c.mu.Unlock()
	nodes, ok := c.cache.table[key]
	if ok {
		c.cache.hits++
	} else {
		c.cache.misses++
	}
	return nodes, ok
}

// Store records the node count for board searched to depth.
func (c *ThreadSafePerftCache) Store(board *chess.Board, depth int, nodes int64) {
	key := cacheKey{GenerateZobristHash(board), depth}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.cache.IsFull() {
		c.cache.table[key] = nodes
	}
}

// Len returns the number of stored entries.
func (c *ThreadSafePerftCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Len()
}

// Hits returns the number of successful lookups.
func (c *ThreadSafePerftCache) Hits() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Hits()
}

// Misses returns the number of failed lookups.
func (c *ThreadSafePerftCache) Misses() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Misses()
}

// IsFull returns true if the cache has reached its capacity limit.
func (c *ThreadSafePerftCache) IsFull() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.IsFull()
}
