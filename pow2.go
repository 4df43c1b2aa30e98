package uhash

// nextPow2 rounds x up to the next power of two. If x is already a power
// of two it is returned unchanged; nextPow2(0) is 0.
//
// The shifts go up to 32 regardless of U's actual width: shifting an
// unsigned integer by more bits than its width is well-defined in Go (the
// result is zero), so the extra no-op shifts are harmless for uint16 and
// uint32 and only matter for uint64. This also gives the function its
// overflow behavior for free: if x is already above the largest
// representable power of two for U, the trailing x++ wraps to 0, which
// Put and Resize treat as a saturated-overflow failure.
func nextPow2[U Size](x U) U {
	if x == 0 {
		return 0
	}
	x--
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x |= x >> 32
	x++
	return x
}

// upperBound computes the maximum number of used (occupied + deleted)
// buckets a table of the given capacity may hold before a resize is
// required: floor(capacity*loadFactor + 0.5).
func upperBound[U Size](capacity U, loadFactor float64) U {
	return U(float64(uint64(capacity))*loadFactor + 0.5)
}
