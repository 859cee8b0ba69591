// Package lru provides a fixed-capacity in-process key-value cache with
// least-recently-used eviction.
//
// Cache pairs a hash index with a recency-ordered entry list, so lookup,
// insertion, and update all run in constant time while memory stays bounded
// at a configured number of entries. When the bound is exceeded, the entry
// that has gone longest unused is discarded.
//
// Cache takes a lock while operating and is therefore thread-safe for
// consumers. NewSingleOwner skips the locking for callers that guarantee
// exclusive use. The underlying unlocked engine lives in the simplelru
// package.
package lru
