// Package bits32 implements integer operations on 32-bit two's complement
// words using only the operators ! ~ & ^ | + << >>.
//
// Go has no logical not on integers, LogicalNot stands in for the ! operator.
// Unary ^ is the ~ operator. Shift counts are converted to uint32 at the shift
// site so a count outside the documented range never panics.
package bits32

// BitwiseAnd returns x & y using only ~ and |.
func BitwiseAnd(x, y int32) int32 {
	return ^(^x | ^y)
}

// GetByte extracts byte n from x, 0 being the least significant byte.
// Requires 0 <= n <= 3.
func GetByte(x, n int32) int32 {
	return (x >> uint32(n<<3)) & 0xff
}

// LogicalShiftRight shifts x right by n filling with zeros.
// Requires 0 <= n <= 31.
func LogicalShiftRight(x, n int32) int32 {
	one := int32(1)
	// (1<<31)>>n<<1 has the top n bits set
	return (x >> uint32(n)) & ^(((one << 31) >> uint32(n)) << 1)
}

// PopCount returns the number of set bits in x.
func PopCount(x int32) int32 {
	one := int32(1)
	lanes := one | (one << 8) | (one << 16) | (one << 24)
	low := int32(0xff)

	// each byte lane counts the bits of its own byte, at most 8
	sum := (x & lanes) + ((x >> 1) & lanes) + ((x >> 2) & lanes) + ((x >> 3) & lanes) +
		((x >> 4) & lanes) + ((x >> 5) & lanes) + ((x >> 6) & lanes) + ((x >> 7) & lanes)

	return (sum & low) + ((sum >> 8) & low) + ((sum >> 16) & low) + ((sum >> 24) & low)
}

// LogicalNot returns 1 when x is zero and 0 otherwise.
func LogicalNot(x int32) int32 {
	sign := x >> 31
	negSign := (^x + 1) >> 31
	// only zero has both x and -x non-negative
	return ^(sign | negSign) & 1
}

// MinInt returns the smallest two's complement 32-bit integer.
func MinInt() int32 {
	one := int32(1)
	return one << 31
}

// FitsInBits returns 1 if x can be represented as an n-bit two's complement
// integer. Requires 1 <= n <= 32.
func FitsInBits(x, n int32) int32 {
	// 33 + ^n is 32-n
	shift := uint32(33 + ^n)
	return LogicalNot(((x << shift) >> shift) ^ x)
}

// DivPow2 computes x/(2^n) rounding toward zero. Requires 0 <= n <= 30.
func DivPow2(x, n int32) int32 {
	sign := x >> 31
	// 2^n-1 for negative x, 0 otherwise
	bias := ((sign & 1) << uint32(n)) + sign
	return (x + bias) >> uint32(n)
}

// Negate returns -x. Negate(MinInt()) is MinInt().
func Negate(x int32) int32 {
	return ^x + 1
}

// IsPositive returns 1 if x > 0 and 0 otherwise.
func IsPositive(x int32) int32 {
	return LogicalNot(x>>31) ^ LogicalNot(x)
}

// IsLessOrEqual returns 1 if x <= y and 0 otherwise.
func IsLessOrEqual(x, y int32) int32 {
	signX := x >> 31
	signY := y >> 31

	equal := LogicalNot(x ^ y)
	// x-y-1 cannot overflow when the signs agree
	diff := (^y + x) >> 31
	sameSign := LogicalNot(signX^signY) & diff
	// x negative, y not
	mixedSign := signX & LogicalNot(signY)

	return equal | sameSign | mixedSign
}

// Log2Floor returns floor(log2(x)). Requires x > 0.
//
// The highest set bit is located by halving the window five times: bits
// 31..16, then 15..8, 7..4, 3..2 and finally bit 1 of what remains.
func Log2Floor(x int32) int32 {
	low := int32(0xff)
	upperHalf := (low << 24) + (low << 16)
	secondByte := low << 8
	upperNibble := int32(0xf0)
	upperPair := int32(0x0c)
	secondBit := int32(0x02)

	half := LogicalNot(LogicalNot(x&upperHalf)) << 4
	x = x >> uint32(half)

	byte1 := LogicalNot(LogicalNot(x&secondByte)) << 3
	x = x >> uint32(byte1)

	nibble := LogicalNot(LogicalNot(x&upperNibble)) << 2
	x = x >> uint32(nibble)

	pair := LogicalNot(LogicalNot(x&upperPair)) << 1
	x = x >> uint32(pair)

	bit := LogicalNot(LogicalNot(x&secondBit))

	return half + byte1 + nibble + pair + bit
}
