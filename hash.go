package uhash

import "unsafe"

// Size is the constraint on a Table's index/hash integer type: instantiate
// Table[K, V, uint16] for "tiny", Table[K, V, uint32] for "default", or
// Table[K, V, uint64] for "huge". The choice is made per instantiation
// rather than per build.
type Size interface {
	~uint16 | ~uint32 | ~uint64
}

// Hasher computes the hash of a key for a Table indexed by U.
type Hasher[K any, U Size] func(key K) U

// Eq reports whether two keys are equal. A Table never compares keys with
// == directly; it always goes through the caller-supplied Eq, which is
// what lets Table hold keys that aren't even `comparable` (e.g. slices,
// given an appropriate Eq).
type Eq[K any] func(a, b K) bool

// Missing returns the MISSING sentinel for a given index width: the
// maximum representable value of U. It is never a valid bucket index
// because capacity is always strictly smaller.
func Missing[U Size]() U {
	return ^U(0)
}

func widthBits[U Size]() int {
	var zero U
	return int(unsafe.Sizeof(zero)) * 8
}

// HashInt8 hashes an 8-bit integer identically across all index widths.
func HashInt8[U Size](key int8) U {
	return U(uint8(key))
}

// HashInt16 hashes a 16-bit integer identically across all index widths.
func HashInt16[U Size](key int16) U {
	return U(uint16(key))
}

// HashInt32 hashes a 32-bit integer. When the table's index width is
// 16-bit ("tiny"), the high bits are folded in rather than truncated away.
func HashInt32[U Size](key int32) U {
	h := uint32(key)
	if widthBits[U]() == 16 {
		return U(h>>17 ^ h ^ h<<6)
	}
	return U(h)
}

// HashInt64 hashes a 64-bit integer, folding high bits in for both the
// 16-bit and 32-bit index widths (only the 64-bit "huge" width can pass a
// 64-bit hash through untouched).
func HashInt64[U Size](key int64) U {
	h := uint64(key)
	switch widthBits[U]() {
	case 16:
		return U(h>>49 ^ h>>33 ^ h>>17 ^ h ^ h<<6 ^ h<<23 ^ h<<39)
	case 32:
		return U(h>>33 ^ h ^ h<<11)
	default:
		return U(h)
	}
}

// HashInt hashes a Go native int by way of HashInt64, since int is a
// 64-bit word on every platform this package targets. Most callers keying
// a Table on plain int reach for this rather than HashInt32/HashInt64
// directly.
func HashInt[U Size](key int) U {
	return HashInt64[U](int64(key))
}

// HashPointer hashes an unsafe.Pointer using the integer hash matching the
// platform's pointer width (32-bit or 64-bit).
func HashPointer[U Size](p unsafe.Pointer) U {
	if unsafe.Sizeof(uintptr(0)) <= 4 {
		return HashInt32[U](int32(uintptr(p)))
	}
	return HashInt64[U](int64(uintptr(p)))
}

// HashString hashes a string with Karl Nelson's X31 hash (Bernstein-style:
// h = (h<<5) - h + c), seeded with the first byte.
func HashString[U Size](key string) U {
	if len(key) == 0 {
		return 0
	}
	h := U(key[0])
	for i := 1; i < len(key); i++ {
		h = (h << 5) - h + U(key[i])
	}
	return h
}

// Identical is the identity equality predicate (a == b) for any comparable
// key type.
func Identical[K comparable](a, b K) bool {
	return a == b
}

// EqualStrings compares two strings byte-wise. Exposed for parity with the
// C original's uhash_str_equals (strcmp); Go strings carry their own
// length and aren't NUL-terminated, so this is a plain ==.
func EqualStrings(a, b string) bool {
	return a == b
}
