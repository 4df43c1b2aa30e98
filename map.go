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

// Map is the key/value convenience layer over Table, implementing
// get/set/add/replace/remove on top of the engine's put/lookup/delete
// primitives.
type Map[K any, V any, U Size] struct {
	t *Table[K, V, U]
}

// NewMap constructs an empty Map.
func NewMap[K any, V any, U Size](hash Hasher[K, U], eq Eq[K], opts ...Option[K, V, U]) *Map[K, V, U] {
	return &Map[K, V, U]{t: New[K, V, U](hash, eq, opts...)}
}

// Len reports the number of entries in m. A nil Map reports 0.
func (m *Map[K, V, U]) Len() int {
	if m == nil {
		return 0
	}
	return m.t.Len()
}

// Get returns the value stored for key and reports whether key was
// present.
func (m *Map[K, V, U]) Get(key K) (V, bool) {
	i := m.t.Lookup(key)
	if i == Missing[U]() {
		var zero V
		return zero, false
	}
	return m.t.Value(i), true
}

// Contains reports whether key is present in m.
func (m *Map[K, V, U]) Contains(key K) bool {
	return m.t.Lookup(key) != Missing[U]()
}

// Set inserts key with value val, overwriting any existing value for key.
// On Present it returns the value key held before the overwrite; on
// Error the table could not grow and val was not stored.
func (m *Map[K, V, U]) Set(key K, val V) (prev V, status Result) {
	i, status := m.t.Put(key)
	if status == Error {
		return prev, Error
	}
	if status == Present {
		prev = m.t.Value(i)
	}
	m.t.SetValue(i, val)
	return prev, status
}

// Add inserts key with value val only if key is not already present. On
// Present it returns the existing value and leaves m unchanged; on Error
// the table could not grow and val was not stored.
func (m *Map[K, V, U]) Add(key K, val V) (existing V, status Result) {
	i, status := m.t.Put(key)
	if status == Error {
		return existing, Error
	}
	if status == Present {
		return m.t.Value(i), Present
	}
	m.t.SetValue(i, val)
	return existing, status
}

// Replace overwrites the value for key only if key is already present. It
// reports whether the replacement happened.
func (m *Map[K, V, U]) Replace(key K, val V) (replaced bool) {
	i := m.t.Lookup(key)
	if i == Missing[U]() {
		return false
	}
	m.t.SetValue(i, val)
	return true
}

// Remove deletes key from m, returning its last value and reporting
// whether key had been present.
func (m *Map[K, V, U]) Remove(key K) (V, bool) {
	i := m.t.Lookup(key)
	if i == Missing[U]() {
		var zero V
		return zero, false
	}
	val := m.t.Value(i)
	m.t.Delete(i)
	return val, true
}

// Clear removes every entry from m without releasing bucket storage.
func (m *Map[K, V, U]) Clear() {
	m.t.Clear()
}

// Resize grows or shrinks m's backing table to a bucket capacity of n
// rounded up to a power of two (at least 4). n is a bucket count, not an
// element count: the load-factor ceiling applies to that capacity, so
// inserting n entries can still trigger a further resize. It does nothing
// if that capacity is too small for m's current entries, and reports false
// only on capacity overflow.
func (m *Map[K, V, U]) Resize(n int) bool {
	return m.t.Resize(U(n))
}

// All calls yield once for every (key, value) pair in m. Iteration order
// is unspecified. If yield returns false, All stops early.
func (m *Map[K, V, U]) All(yield func(key K, value V) bool) {
	m.t.All(func(_ U, k K, v V) bool {
		return yield(k, v)
	})
}
