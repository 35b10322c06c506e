// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package programcache stores compiled shader programs keyed by progkey
// program descriptors.
//
// Program compilation is expensive, so draws first build a descriptor with
// progkey.Build and then look it up here; only descriptor misses compile.
// The cache is sharded for concurrent draw recording, bounded per shard with
// LRU eviction, and keyed by exact descriptor bytes — the descriptor
// checksum only routes lookups to a shard and pre-screens comparisons, it is
// never trusted for equality.
package programcache
