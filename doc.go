// Copyright 2024 The Cockroach Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package uhash is a generic, open-addressing hash table.
//
// # Open addressing
//
// Unlike Go's builtin map, which chains entries into per-bucket overflow
// lists, uhash stores every key directly in one of three parallel slices:
// flags (bucket state), keys, and values. Collisions are resolved by
// probing: when a bucket is already taken, the next candidate bucket is
// computed from a deterministic sequence derived from the key's hash. This
// keeps keys and values packed tightly (no bucket headers, no pointers to
// chase) at the cost of a trickier deletion story: removing an entry can't
// simply empty its bucket, because doing so could break the probe chain of
// some other key that happens to hash to the same starting bucket. Instead,
// removed buckets are marked DELETED (a tombstone): probing treats a
// tombstone as occupied-but-not-a-match, so later lookups still walk past
// it to find keys that were inserted after it.
//
// Tombstones accumulate over time and are purged during Resize, which
// rehashes every live entry into a fresh bucket-state vector using an
// in-place "kick-out" pass reminiscent of Cuckoo hashing: relocating an
// entry may displace an entry already occupying its new home, which is then
// itself relocated, and so on, until every entry has a final resting place.
//
// This design traces back to Attractive Chaos's khash.h, one of the more
// widely copied open-addressing hash table implementations in C; this
// package is a generic Go rendition of the same bucket layout, probe
// sequence, and resize strategy.
//
// # Hashing and equality
//
// A Table never compares keys with ==, nor does it compute its own hash.
// Both are supplied by the caller as plain functions (Hasher[K, U] and
// Eq[K]), so keys need not even satisfy Go's comparable constraint: a
// Table[[]byte, V, uint32] with a caller-supplied byte-slice hash and
// equality function works as well as a Table[int, V, uint32].
//
// # Concurrency
//
// A Table is NOT goroutine-safe. All operations run synchronously on the
// calling goroutine; callers that need concurrent access must provide their
// own exclusion.
package uhash

// Result is the return code of operations that may add an entry to a
// Table (and, transitively, of the Map/Set convenience layer built on it).
type Result int8

const (
	// Error indicates the operation failed. As of now this can only happen
	// if growing the table would require a capacity that overflows the
	// table's index type.
	Error Result = -1

	// Present indicates the key was already present and no entry was
	// added (Put itself never overwrites an existing key or its value —
	// see Table.Put; Map.Set does overwrite the value).
	Present Result = 0

	// Inserted indicates the key was absent and has been inserted.
	Inserted Result = 1
)

func (r Result) String() string {
	switch r {
	case Error:
		return "Error"
	case Present:
		return "Present"
	case Inserted:
		return "Inserted"
	default:
		return "Result(?)"
	}
}

// debug gates verbose tracing of probe/rehash decisions, in the same spirit
// as a printf-debugging flag flipped on only while chasing a specific bug.
const debug = false

// invariants gates expensive post-mutation consistency checks, intended for
// use under `go test` and disabled in production builds.
const invariants = false
