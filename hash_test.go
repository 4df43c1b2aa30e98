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

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestMissingIsLargestValue(t *testing.T) {
	require.Equal(t, uint16(0xFFFF), Missing[uint16]())
	require.Equal(t, uint32(0xFFFFFFFF), Missing[uint32]())
	require.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), Missing[uint64]())
}

func TestHashInt8IsIdentityAcrossWidths(t *testing.T) {
	require.Equal(t, uint16(200), HashInt8[uint16](-56))
	require.Equal(t, uint32(200), HashInt8[uint32](-56))
	require.Equal(t, uint64(200), HashInt8[uint64](-56))
}

func TestHashInt32PassesThroughOnWideTables(t *testing.T) {
	require.Equal(t, uint32(12345), HashInt32[uint32](12345))
	require.Equal(t, uint64(12345), HashInt32[uint64](12345))
}

func TestHashInt32FoldsHighBitsOnTinyTables(t *testing.T) {
	a := HashInt32[uint16](1)
	b := HashInt32[uint16](1 << 20)
	// Both values are fully determined by the fold formula, not a literal
	// truncation: a high-order bit difference must still perturb the
	// low 16 bits that the tiny table actually uses.
	require.NotEqual(t, a, b)
}

func TestHashInt64FoldsOnNarrowerTables(t *testing.T) {
	wide := HashInt64[uint64](1 << 40)
	require.Equal(t, uint64(1<<40), wide)

	narrow16 := HashInt64[uint16](1 << 40)
	narrow32 := HashInt64[uint32](1 << 40)
	// Plain truncation of 1<<40 would give 0; folding brings bit 40 down to
	// bit 7 (h>>33) at both narrower widths.
	require.Equal(t, uint16(128), narrow16)
	require.Equal(t, uint32(128), narrow32)
}

func TestHashStringEmpty(t *testing.T) {
	require.Equal(t, uint32(0), HashString[uint32](""))
}

func TestHashStringDeterministic(t *testing.T) {
	require.Equal(t, HashString[uint32]("hello"), HashString[uint32]("hello"))
	require.NotEqual(t, HashString[uint32]("hello"), HashString[uint32]("world"))
}

func TestHashPointerMatchesPlatformWidth(t *testing.T) {
	x := 42
	p := unsafe.Pointer(&x)
	if unsafe.Sizeof(uintptr(0)) <= 4 {
		require.Equal(t, HashInt32[uint32](int32(uintptr(p))), HashPointer[uint32](p))
	} else {
		require.Equal(t, HashInt64[uint32](int64(uintptr(p))), HashPointer[uint32](p))
	}
}

func TestIdentical(t *testing.T) {
	require.True(t, Identical(1, 1))
	require.False(t, Identical(1, 2))
}

func TestEqualStrings(t *testing.T) {
	require.True(t, EqualStrings("a", "a"))
	require.False(t, EqualStrings("a", "b"))
}

func TestNextPow2(t *testing.T) {
	cases := map[uint32]uint32{
		0:  0,
		1:  1,
		2:  2,
		3:  4,
		4:  4,
		5:  8,
		17: 32,
		32: 32,
	}
	for in, want := range cases {
		require.Equal(t, want, nextPow2(in), "nextPow2(%d)", in)
	}
}

func TestNextPow2SaturatesOnOverflow(t *testing.T) {
	require.Equal(t, uint16(0), nextPow2(uint16(0xFFFF)))
	require.Equal(t, uint16(0), nextPow2(uint16(0x8001)))
}

func TestUpperBound(t *testing.T) {
	require.Equal(t, uint32(3), upperBound(uint32(4), 0.77))
	require.Equal(t, uint32(394), upperBound(uint32(512), 0.77))
}
