// SPDX-License-Identifier: MIT
package bitint

import (
	"fmt"
	"math/bits"
	"testing"
)

func TestPopCount(t *testing.T) {
	tests := []struct {
		n        int
		expected int
	}{
		{0, 0},              // No bits set
		{1, 1},              // Single bit
		{3, 2},              // Two low bits
		{255, 8},            // Full byte
		{1 << 20, 1},        // Single high bit
		{-1, bits.UintSize}, // All bits of the word
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d→%d", tt.n, tt.expected), func(t *testing.T) {
			result := PopCount(tt.n)
			if result != tt.expected {
				t.Errorf("PopCount(%d) = %d, expected %d", tt.n, result, tt.expected)
			}
		})
	}
}

func TestPopCount32(t *testing.T) {
	tests := []struct {
		n        int32
		expected int
	}{
		{0, 0},           // No bits set
		{1, 1},           // Single bit
		{0x0F0F0F0F, 16}, // Alternating nibbles
		{-1, 32},         // All bits set
		{-0x80000000, 1}, // Sign bit only
		{0x7FFFFFFF, 31}, // All but the sign bit
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d→%d", tt.n, tt.expected), func(t *testing.T) {
			result := PopCount32(tt.n)
			if result != tt.expected {
				t.Errorf("PopCount32(%d) = %d, expected %d", tt.n, result, tt.expected)
			}
		})
	}
}

func TestPopCount64(t *testing.T) {
	tests := []struct {
		n        int64
		expected int
	}{
		{0, 0},       // No bits set
		{255, 8},     // Full byte
		{1 << 40, 1}, // Single high bit
		{-1, 64},     // All bits set
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d→%d", tt.n, tt.expected), func(t *testing.T) {
			result := PopCount64(tt.n)
			if result != tt.expected {
				t.Errorf("PopCount64(%d) = %d, expected %d", tt.n, result, tt.expected)
			}
		})
	}
}

func TestLeadingZeros32(t *testing.T) {
	tests := []struct {
		n        int32
		expected int
	}{
		{0, 32},         // Zero has no set bits
		{1, 31},         // Lowest bit
		{256, 23},       // 2^8
		{0x7FFFFFFF, 1}, // All but the sign bit
		{-1, 0},         // Sign bit set
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d→%d", tt.n, tt.expected), func(t *testing.T) {
			result := LeadingZeros32(tt.n)
			if result != tt.expected {
				t.Errorf("LeadingZeros32(%d) = %d, expected %d", tt.n, result, tt.expected)
			}
		})
	}
}

func TestLeadingZeros64(t *testing.T) {
	tests := []struct {
		n        int64
		expected int
	}{
		{0, 64},       // Zero has no set bits
		{1, 63},       // Lowest bit
		{1 << 40, 23}, // 2^40
		{-1, 0},       // Sign bit set
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d→%d", tt.n, tt.expected), func(t *testing.T) {
			result := LeadingZeros64(tt.n)
			if result != tt.expected {
				t.Errorf("LeadingZeros64(%d) = %d, expected %d", tt.n, result, tt.expected)
			}
		})
	}
}

func TestTrailingZeros32(t *testing.T) {
	tests := []struct {
		n        int32
		expected int
	}{
		{0, 32},           // Zero has no set bits
		{1, 0},            // Lowest bit
		{8, 3},            // 2^3
		{-2, 1},           // ...11111110
		{-0x80000000, 31}, // Sign bit only
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d→%d", tt.n, tt.expected), func(t *testing.T) {
			result := TrailingZeros32(tt.n)
			if result != tt.expected {
				t.Errorf("TrailingZeros32(%d) = %d, expected %d", tt.n, result, tt.expected)
			}
		})
	}
}

func TestTrailingZeros64(t *testing.T) {
	tests := []struct {
		n        int64
		expected int
	}{
		{0, 64},       // Zero has no set bits
		{1024, 10},    // 2^10
		{3, 0},        // Odd-ish low bits
		{1 << 62, 62}, // High power of two
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d→%d", tt.n, tt.expected), func(t *testing.T) {
			result := TrailingZeros64(tt.n)
			if result != tt.expected {
				t.Errorf("TrailingZeros64(%d) = %d, expected %d", tt.n, result, tt.expected)
			}
		})
	}
}

func TestZeroCountsPlatformWidth(t *testing.T) {
	if got := LeadingZeros(0); got != bits.UintSize {
		t.Errorf("LeadingZeros(0) = %d, expected %d", got, bits.UintSize)
	}
	if got := TrailingZeros(0); got != bits.UintSize {
		t.Errorf("TrailingZeros(0) = %d, expected %d", got, bits.UintSize)
	}
}

func BenchmarkPopCount(b *testing.B) {
	var i int
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		PopCount(i % 10000)
		i++
	}
}

func BenchmarkTrailingZeros(b *testing.B) {
	var i int
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		TrailingZeros(i % 10000)
		i++
	}
}
