package mathutil

import (
	"math/bits"
	"unsafe"
)

// Mask returns a value with the low 'width' bits set.
func Mask(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return 1<<width - 1
}

// BinaryDigits returns the number of bits needed to represent 'value'.
func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// SignExtend interprets the low 'width' bits of 'raw' as a two's complement
// number and extends it to 64 bits. width must be in [1, 64].
func SignExtend(raw uint64, width uint) int64 {
	shift := 64 - width
	return int64(raw<<shift) >> shift
}

// TopBit reports whether the highest of the low 'width' bits of 'raw' is set.
func TopBit(raw uint64, width uint) bool {
	return raw&(1<<(width-1)) != 0
}

func AbsInt(val int) int {
	mask := val >> (unsafe.Sizeof(int(0))*8 - 1)
	return (val + mask) ^ mask
}

func AbsInt64(val int64) int64 {
	mask := val >> (unsafe.Sizeof(int64(0))*8 - 1)
	return (val + mask) ^ mask
}

func Int64Sign(v int64) int {
	if v == 0 {
		return 0
	}
	return [...]int{1, -1}[uint64(v)>>63]
}
