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

import "fmt"

// Option provides an interface to customize a Table while it is being
// created.
type Option[K any, V any, U Size] interface {
	apply(t *Table[K, V, U])
}

type loadFactorOption[K any, V any, U Size] struct {
	loadFactor float64
}

func (op loadFactorOption[K, V, U]) apply(t *Table[K, V, U]) {
	if op.loadFactor <= 0 || op.loadFactor >= 1 {
		panic(fmt.Sprintf("uhash: load factor must lie in (0, 1), got %v", op.loadFactor))
	}
	t.loadFactor = op.loadFactor
}

// WithLoadFactor overrides the default load-factor ceiling (0.77) used to
// decide when a Table must grow. l must lie in (0, 1).
func WithLoadFactor[K any, V any, U Size](l float64) Option[K, V, U] {
	return loadFactorOption[K, V, U]{l}
}

type initialCapacityOption[K any, V any, U Size] struct {
	capacity uintptr
}

func (op initialCapacityOption[K, V, U]) apply(t *Table[K, V, U]) {
	t.pendingCapacity = op.capacity
}

// WithCapacity pre-sizes a Table to a bucket capacity of n rounded up to a
// power of two (at least 4), allocating its backing arrays immediately
// instead of lazily on first insertion. n is a bucket count, not an element
// count: the load-factor ceiling applies to that capacity, so inserting n
// elements can still trigger a resize.
func WithCapacity[K any, V any, U Size](n int) Option[K, V, U] {
	return initialCapacityOption[K, V, U]{uintptr(n)}
}
