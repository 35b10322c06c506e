// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package programcache

import (
	"container/list"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/gogpu/progkey"
	"github.com/gogpu/wgpu/hal"
)

// Default configuration constants.
const (
	// shardCount is the number of shards for reduced lock contention.
	// Must be a power of 2 for fast modulo via bitwise AND.
	shardCount = 16

	// shardMask selects a shard from a descriptor checksum.
	shardMask = shardCount - 1

	// DefaultCapacity is the default maximum programs per shard.
	DefaultCapacity = 64
)

// Cache errors.
var (
	// ErrEmptyDescriptor is returned when a lookup uses an empty (failed
	// or never-built) descriptor. Draws whose key build failed must skip
	// caching entirely.
	ErrEmptyDescriptor = errors.New("programcache: descriptor is empty")
)

// Cache is a sharded LRU cache of compiled programs keyed by program
// descriptors. It is safe for concurrent use.
type Cache struct {
	shards   [shardCount]*cacheShard
	capacity int
	device   hal.Device

	// Statistics (atomic for zero-allocation reads).
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// cacheShard holds one shard's entries. Map keys are exact descriptor bytes;
// the LRU list orders keys most-recent first.
type cacheShard struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	lru     *list.List
}

// cacheEntry pairs a cached program with its LRU position.
type cacheEntry struct {
	program *Program
	element *list.Element // value is the string key
}

// Stats contains cache statistics for monitoring.
type Stats struct {
	// Entries is the number of cached programs.
	Entries int
	// Hits is the number of cache hits.
	Hits uint64
	// Misses is the number of cache misses.
	Misses uint64
	// HitRate is the cache hit rate (0.0 to 1.0).
	HitRate float64
	// Evictions is the number of programs evicted.
	Evictions uint64
}

// New creates a program cache with the given per-shard capacity. Total
// capacity is approximately capacity * 16. If capacity <= 0,
// DefaultCapacity is used.
//
// device, when non-nil, is used by CompileWGSL-based create callbacks; the
// cache itself never touches it.
func New(capacity int, device hal.Device) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Cache{
		capacity: capacity,
		device:   device,
	}
	for i := range c.shards {
		c.shards[i] = &cacheShard{
			entries: make(map[string]*cacheEntry),
			lru:     list.New(),
		}
	}
	return c
}

// Device returns the device the cache compiles against, or nil.
func (c *Cache) Device() hal.Device {
	return c.device
}

// getShard routes a descriptor to its shard by checksum.
func (c *Cache) getShard(desc *progkey.ProgramDesc) *cacheShard {
	return c.shards[desc.Checksum()&shardMask]
}

// Get returns the cached program for a descriptor, if any. A hit refreshes
// the program's LRU position.
func (c *Cache) Get(desc *progkey.ProgramDesc) (*Program, bool) {
	if desc.IsEmpty() {
		return nil, false
	}
	shard := c.getShard(desc)
	key := string(desc.Bytes())

	shard.mu.Lock()
	entry, ok := shard.entries[key]
	if ok {
		shard.lru.MoveToFront(entry.element)
	}
	shard.mu.Unlock()

	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return entry.program, true
}

// GetOrCreate returns the cached program for a descriptor, compiling it with
// create on a miss. The create callback runs with the shard lock held so a
// program is compiled at most once per descriptor; keep it free of calls
// back into the cache.
//
// An empty descriptor (failed key build) returns ErrEmptyDescriptor: such
// draws must compile uncached rather than poison the cache with a shared
// bogus key.
func (c *Cache) GetOrCreate(desc *progkey.ProgramDesc, create func() (*Program, error)) (*Program, error) {
	if desc.IsEmpty() {
		return nil, ErrEmptyDescriptor
	}
	shard := c.getShard(desc)
	key := string(desc.Bytes())

	// Fast path: read lock.
	shard.mu.RLock()
	entry, ok := shard.entries[key]
	shard.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		c.touch(shard, key)
		return entry.program, nil
	}

	// Slow path: write lock with double-check.
	shard.mu.Lock()
	defer shard.mu.Unlock()

	if entry, ok := shard.entries[key]; ok {
		shard.lru.MoveToFront(entry.element)
		c.hits.Add(1)
		return entry.program, nil
	}

	c.misses.Add(1)

	program, err := create()
	if err != nil {
		return nil, err
	}

	for shard.lru.Len() >= c.capacity {
		oldest := shard.lru.Back()
		if oldest == nil {
			break
		}
		shard.lru.Remove(oldest)
		delete(shard.entries, oldest.Value.(string))
		c.evictions.Add(1)
	}

	shard.entries[key] = &cacheEntry{
		program: program,
		element: shard.lru.PushFront(key),
	}
	return program, nil
}

// touch refreshes an entry's LRU position after a read-locked hit. The entry
// may have been evicted in between; that is fine, the next lookup recompiles.
func (c *Cache) touch(shard *cacheShard, key string) {
	shard.mu.Lock()
	if entry, ok := shard.entries[key]; ok {
		shard.lru.MoveToFront(entry.element)
	}
	shard.mu.Unlock()
}

// Delete removes a descriptor's program from the cache. Returns true if a
// program was removed.
func (c *Cache) Delete(desc *progkey.ProgramDesc) bool {
	if desc.IsEmpty() {
		return false
	}
	shard := c.getShard(desc)
	key := string(desc.Bytes())

	shard.mu.Lock()
	defer shard.mu.Unlock()

	entry, ok := shard.entries[key]
	if !ok {
		return false
	}
	shard.lru.Remove(entry.element)
	delete(shard.entries, key)
	return true
}

// Clear removes all cached programs and resets statistics.
func (c *Cache) Clear() {
	for _, shard := range c.shards {
		shard.mu.Lock()
		shard.entries = make(map[string]*cacheEntry)
		shard.lru.Init()
		shard.mu.Unlock()
	}
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}

// Len returns the total number of cached programs.
func (c *Cache) Len() int {
	total := 0
	for _, shard := range c.shards {
		shard.mu.RLock()
		total += len(shard.entries)
		shard.mu.RUnlock()
	}
	return total
}

// Capacity returns the per-shard capacity.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Stats returns current cache statistics.
func (c *Cache) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Entries:   c.Len(),
		Hits:      hits,
		Misses:    misses,
		HitRate:   hitRate,
		Evictions: c.evictions.Load(),
	}
}
