package uhash

// flags is the packed two-bit-per-bucket state vector: bucket i's state
// lives in word i>>4 at bit offset (i&15)*2. The two bits encode
// (emptyBit, deletedBit); the three legal states are:
//
//	EMPTY    = 10 (0b10)
//	DELETED  = 01 (0b01)
//	OCCUPIED = 00 (0b00)
//
// 11 never appears and observing it is undefined. A freshly allocated
// flags vector is filled with the byte 0xAA (0b10101010), which packs four
// EMPTY buckets per byte — the same trick the C original relies on to make
// "zeroed storage looks occupied" impossible and "memset(0xAA) looks
// empty" free.
type flags []uint32

const (
	stateEmptyBit   = 2
	stateDeletedBit = 1
)

// flagWords returns the number of uint32 words needed to hold n buckets'
// worth of two-bit states, 16 per word.
func flagWords(n uintptr) uintptr {
	if n == 0 {
		return 0
	}
	return (n + 15) >> 4
}

func newFlags(capacity uintptr) flags {
	f := make(flags, flagWords(capacity))
	fillEmpty(f)
	return f
}

// fillEmpty resets every bucket in f to EMPTY, equivalent to memset(0xAA).
func fillEmpty(f flags) {
	for i := range f {
		f[i] = 0xAAAAAAAA
	}
}

func (f flags) shift(i uintptr) uintptr {
	return (i & 0xf) << 1
}

func (f flags) isEmpty(i uintptr) bool {
	return (f[i>>4]>>f.shift(i))&stateEmptyBit != 0
}

func (f flags) isDeleted(i uintptr) bool {
	return (f[i>>4]>>f.shift(i))&stateDeletedBit != 0
}

// isEitherEmptyOrDeleted reports whether bucket i holds no live key: it's
// the bitwise OR of both state bits, true for EMPTY and DELETED alike.
func (f flags) isEitherEmptyOrDeleted(i uintptr) bool {
	return (f[i>>4]>>f.shift(i))&(stateEmptyBit|stateDeletedBit) != 0
}

// isOccupied reports whether bucket i currently holds a live key.
func (f flags) isOccupied(i uintptr) bool {
	return !f.isEitherEmptyOrDeleted(i)
}

func (f flags) setDeletedFalse(i uintptr) {
	f[i>>4] &^= stateDeletedBit << f.shift(i)
}

func (f flags) setEmptyFalse(i uintptr) {
	f[i>>4] &^= stateEmptyBit << f.shift(i)
}

// setOccupied clears both state bits, marking bucket i OCCUPIED regardless
// of its previous state (EMPTY or DELETED).
func (f flags) setOccupied(i uintptr) {
	f[i>>4] &^= (stateEmptyBit | stateDeletedBit) << f.shift(i)
}

func (f flags) setDeleted(i uintptr) {
	w := i >> 4
	s := f.shift(i)
	f[w] &^= stateEmptyBit << s
	f[w] |= stateDeletedBit << s
}
