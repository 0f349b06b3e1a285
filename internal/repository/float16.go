package repository

import (
	"encoding/binary"
	"math"
)

// float16LEBytes serializes a float32 vector as IEEE 754 half-precision
// values in a little-endian byte buffer, the layout the vector index
// expects for float16 fields.
func float16LEBytes(vector []float32) []byte {
	buf := make([]byte, 2*len(vector))
	for i, f := range vector {
		binary.LittleEndian.PutUint16(buf[2*i:], float16Bits(f))
	}
	return buf
}

// float16Bits converts a float32 to half-precision bits, rounding to
// nearest with ties to even, matching how the index writers serialize
// their vectors. Overflow maps to infinity, NaN stays NaN, and values
// below the subnormal range flush to signed zero.
func float16Bits(f float32) uint16 {
	b := math.Float32bits(f)
	sign := uint16(b>>16) & 0x8000
	exp := int32(b>>23&0xff) - 127 + 15
	mant := b & 0x7fffff

	switch {
	case exp >= 0x1f:
		if b&0x7fffffff > 0x7f800000 {
			return sign | 0x7e00
		}
		return sign | 0x7c00
	case exp <= 0:
		if exp < -10 {
			return sign
		}
		mant |= 0x800000
		shift := uint32(14 - exp)
		half := uint16(mant >> shift)
		rem := mant & (1<<shift - 1)
		tie := uint32(1) << (shift - 1)
		if rem > tie || (rem == tie && half&1 == 1) {
			half++
		}
		return sign | half
	default:
		half := sign | uint16(exp)<<10 | uint16(mant>>13)
		rem := mant & 0x1fff
		if rem > 0x1000 || (rem == 0x1000 && half&1 == 1) {
			// Rounding may carry into the exponent; the bit layout
			// makes the carried value correct as well.
			half++
		}
		return half
	}
}
