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

package uhash

// Set is the key-only convenience layer over Table, implementing
// insert/insert_all/remove/is_superset/equals/hash. It is a
// Table[K, struct{}, U]: the value slice occupies no space.
type Set[K any, U Size] struct {
	t *Table[K, struct{}, U]
}

// NewSet constructs an empty Set.
func NewSet[K any, U Size](hash Hasher[K, U], eq Eq[K], opts ...Option[K, struct{}, U]) *Set[K, U] {
	return &Set[K, U]{t: New[K, struct{}, U](hash, eq, opts...)}
}

// Len reports the number of elements in s. A nil Set reports 0.
func (s *Set[K, U]) Len() int {
	if s == nil {
		return 0
	}
	return s.t.Len()
}

// Contains reports whether key is a member of s.
func (s *Set[K, U]) Contains(key K) bool {
	return s.t.Lookup(key) != Missing[U]()
}

// Insert adds key to s. On Present it returns the member key already
// equal to key and leaves s unchanged; on Error the table could not grow
// and key was not added.
func (s *Set[K, U]) Insert(key K) (existing K, status Result) {
	i, status := s.t.Put(key)
	if status == Error {
		return existing, Error
	}
	if status == Present {
		return s.t.Key(i), Present
	}
	return existing, status
}

// InsertAll first resizes s to a capacity sized for len(keys) elements
// (which shrinks a sparsely filled table whose current elements still fit)
// and then inserts each one. It returns Inserted if at least one key was newly added,
// Present if every key was already a member, and Error if s could not be
// grown (in which case no keys are inserted).
func (s *Set[K, U]) InsertAll(keys ...K) Result {
	if !s.t.Resize(requiredCapacity(U(len(keys)), s.t.loadFactor)) {
		return Error
	}
	status := Present
	for _, key := range keys {
		if _, st := s.Insert(key); st == Inserted {
			status = Inserted
		}
	}
	return status
}

// Remove deletes key from s. It reports whether key had been a member.
func (s *Set[K, U]) Remove(key K) bool {
	i := s.t.Lookup(key)
	if i == Missing[U]() {
		return false
	}
	s.t.Delete(i)
	return true
}

// Clear removes every element from s without releasing bucket storage.
func (s *Set[K, U]) Clear() {
	s.t.Clear()
}

// Resize grows or shrinks s's backing table to a bucket capacity of n
// rounded up to a power of two (at least 4). n is a bucket count, not an
// element count: the load-factor ceiling applies to that capacity, so
// inserting n elements can still trigger a further resize. It does nothing
// if that capacity is too small for s's current elements, and reports
// false only on capacity overflow.
func (s *Set[K, U]) Resize(n int) bool {
	return s.t.Resize(U(n))
}

// All calls yield once for every element of s. Iteration order is
// unspecified. If yield returns false, All stops early.
func (s *Set[K, U]) All(yield func(key K) bool) {
	s.t.All(func(_ U, k K, _ struct{}) bool {
		return yield(k)
	})
}

// GetAny returns an arbitrary element of s, mirroring uhset_get_any.
// The second result is false if s is empty.
func (s *Set[K, U]) GetAny() (K, bool) {
	var found K
	ok := false
	s.t.All(func(_ U, k K, _ struct{}) bool {
		found = k
		ok = true
		return false
	})
	return found, ok
}

// IsSuperset reports whether every element of other is also in s.
func (s *Set[K, U]) IsSuperset(other *Set[K, U]) bool {
	superset := true
	other.t.All(func(_ U, k K, _ struct{}) bool {
		if !s.Contains(k) {
			superset = false
			return false
		}
		return true
	})
	return superset
}

// Equals reports whether s and other contain exactly the same elements.
func (s *Set[K, U]) Equals(other *Set[K, U]) bool {
	return s.Len() == other.Len() && s.IsSuperset(other)
}

// Hash combines a per-element hash into an order-independent hash of the
// whole set: element hashes are XORed together, so membership order and
// probe history never affect the result.
func (s *Set[K, U]) Hash(elementHash Hasher[K, U]) U {
	var h U
	s.t.All(func(_ U, k K, _ struct{}) bool {
		h ^= elementHash(k)
		return true
	})
	return h
}
