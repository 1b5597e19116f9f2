// SPDX-License-Identifier: MIT
package bitint

import "math/bits"

// PopCount returns the number of set bits in n. Negative inputs count
// the bits of the two's complement representation, so PopCount(-1) is
// the platform word size.
func PopCount(n int) int {
	return bits.OnesCount(uint(n))
}

// For 32-bit integers
func PopCount32(n int32) int {
	return bits.OnesCount32(uint32(n))
}

// For 64-bit integers
func PopCount64(n int64) int {
	return bits.OnesCount64(uint64(n))
}

// LeadingZeros returns the number of zero bits above the highest set
// bit of n. A zero input has no set bits, so the result is the full
// platform word size.
func LeadingZeros(n int) int {
	return bits.LeadingZeros(uint(n))
}

// For 32-bit integers
func LeadingZeros32(n int32) int {
	return bits.LeadingZeros32(uint32(n))
}

// For 64-bit integers
func LeadingZeros64(n int64) int {
	return bits.LeadingZeros64(uint64(n))
}

// TrailingZeros returns the number of zero bits below the lowest set
// bit of n. A zero input has no set bits, so the result is the full
// platform word size.
func TrailingZeros(n int) int {
	return bits.TrailingZeros(uint(n))
}

// For 32-bit integers
func TrailingZeros32(n int32) int {
	return bits.TrailingZeros32(uint32(n))
}

// For 64-bit integers
func TrailingZeros64(n int64) int {
	return bits.TrailingZeros64(uint64(n))
}
