// Package ref holds the plain Go rendition of every bits32 operation. It is
// the oracle the restricted-operator versions are checked against.
package ref

import (
	"math"
	"math/bits"
)

// And returns x & y.
func And(x, y int32) int32 { return x & y }

// Byte returns byte n of x, 0 being the least significant. It panics when n
// is outside 0..3.
func Byte(x, n int32) int32 {
	var b [4]byte
	lePutUint32(b[:], uint32(x))
	return int32(b[n])
}

// LogicalShiftRight returns x >> n with zero fill.
func LogicalShiftRight(x, n int32) int32 {
	return int32(uint32(x) >> uint(n))
}

// PopCount returns the number of one bits in x.
func PopCount(x int32) int32 {
	return int32(bits.OnesCount32(uint32(x)))
}

// LogicalNot returns 1 if x is zero.
func LogicalNot(x int32) int32 {
	if x == 0 {
		return 1
	}
	return 0
}

// MinInt returns math.MinInt32.
func MinInt() int32 { return math.MinInt32 }

// FitsInBits returns 1 if -2^(n-1) <= x < 2^(n-1).
func FitsInBits(x, n int32) int32 {
	lim := int64(1) << (n - 1)
	if int64(x) >= -lim && int64(x) < lim {
		return 1
	}
	return 0
}

// DivPow2 returns x / 2^n truncated toward zero.
func DivPow2(x, n int32) int32 {
	return int32(int64(x) / (int64(1) << n))
}

// Negate returns -x.
func Negate(x int32) int32 { return -x }

// IsPositive returns 1 if x > 0.
func IsPositive(x int32) int32 {
	if x > 0 {
		return 1
	}
	return 0
}

// IsLessOrEqual returns 1 if x <= y.
func IsLessOrEqual(x, y int32) int32 {
	if x <= y {
		return 1
	}
	return 0
}

// Log2Floor returns the index of the highest set bit of x.
func Log2Floor(x int32) int32 {
	return int32(31 - bits.LeadingZeros32(uint32(x)))
}

func lePutUint32(b []byte, v uint32) {
	_ = b[3] // early bounds check to guarantee safety of writes below
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
