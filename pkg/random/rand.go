// SPDX-License-Identifier: MIT
package random

import (
	"encoding/binary"
	"math/bits"
)

// Scaling constants for float derivation. A float64 mantissa holds 53
// bits and a float32 mantissa 24, so the high-order bits of a draw
// scale straight into [0, 1) without bias.
const (
	f53Mul = 0x1.0p-53
	f24Mul = 0x1.0p-24
)

// Rand derives all toolkit randomness from a Source.
type Rand struct {
	src Source
}

// New returns a Rand drawing from src. A nil src panics: that is a
// programmer error, not a runtime condition.
func New(src Source) *Rand {
	if src == nil {
		panic("random: nil Source")
	}
	return &Rand{src: src}
}

// Uint64 returns the next raw draw.
func (r *Rand) Uint64() uint64 {
	return r.src.Uint64()
}

// uint64n returns a uniform value in [0, n). Power-of-two bounds mask
// directly; everything else goes through the widening multiply,
// rejecting the biased band.
func (r *Rand) uint64n(n uint64) uint64 {
	if n == 0 {
		panic("random: upper bound 0")
	}
	if n&(n-1) == 0 {
		return r.src.Uint64() & (n - 1)
	}

	hi, lo := bits.Mul64(r.src.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(r.src.Uint64(), n)
		}
	}
	return hi
}

// Float64 returns a uniform value in [0, 1).
func (r *Rand) Float64() float64 {
	return float64(r.src.Uint64()>>11) * f53Mul
}

// Float32 returns a uniform value in [0, 1).
func (r *Rand) Float32() float32 {
	return float32(r.src.Uint64()>>40) * f24Mul
}

// Bool returns true or false with equal probability.
func (r *Rand) Bool() bool {
	return r.src.Uint64()&1 == 1
}

// IntRange returns a uniform value from the inclusive range
// [min, max]. When max <= min it returns min without drawing.
func (r *Rand) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	span := uint64(max) - uint64(min) + 1
	if span == 0 { // the full int domain
		return int(r.src.Uint64())
	}
	return min + int(r.uint64n(span))
}

// Int32Range returns a uniform value from the inclusive range
// [min, max]. When max <= min it returns min without drawing.
func (r *Rand) Int32Range(min, max int32) int32 {
	if max <= min {
		return min
	}
	span := uint64(uint32(max)-uint32(min)) + 1
	return min + int32(r.uint64n(span))
}

// Int64Range returns a uniform value from the inclusive range
// [min, max]. When max <= min it returns min without drawing.
func (r *Rand) Int64Range(min, max int64) int64 {
	if max <= min {
		return min
	}
	span := uint64(max) - uint64(min) + 1
	if span == 0 { // the full int64 domain
		return int64(r.src.Uint64())
	}
	return min + int64(r.uint64n(span))
}

// Float64Range returns a uniform value from the half-open range
// [min, max). When max <= min it returns min without drawing.
func (r *Rand) Float64Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.Float64()*(max-min)
}

// Float32Range returns a uniform value from the half-open range
// [min, max). When max <= min it returns min without drawing.
func (r *Rand) Float32Range(min, max float32) float32 {
	if max <= min {
		return min
	}
	return min + r.Float32()*(max-min)
}

// Shuffle randomizes the order of n elements through swap, walking the
// Fisher-Yates descent from the last index. Fewer than two elements is
// a no-op.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(r.uint64n(uint64(i) + 1))
		swap(i, j)
	}
}

// Perm returns a random permutation of the integers 0..n-1.
func (r *Rand) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	r.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}

// Read fills p with random bytes. The error is always nil; the
// signature matches io.Reader so a Rand can stand in for one.
func (r *Rand) Read(p []byte) (int, error) {
	var buf [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.NativeEndian.PutUint64(buf[:], r.src.Uint64())
		copy(p[i:], buf[:])
	}
	return len(p), nil
}

// Default is the process-wide generator. It draws from the system
// CSPRNG and is safe for concurrent use from any goroutine.
var Default = New(CryptoSource{})

// Uint64 draws from Default.
func Uint64() uint64 { return Default.Uint64() }

// Float64 draws from Default.
func Float64() float64 { return Default.Float64() }

// Float32 draws from Default.
func Float32() float32 { return Default.Float32() }

// Bool draws from Default.
func Bool() bool { return Default.Bool() }

// IntRange draws from Default.
func IntRange(min, max int) int { return Default.IntRange(min, max) }

// Int32Range draws from Default.
func Int32Range(min, max int32) int32 { return Default.Int32Range(min, max) }

// Int64Range draws from Default.
func Int64Range(min, max int64) int64 { return Default.Int64Range(min, max) }

// Float64Range draws from Default.
func Float64Range(min, max float64) float64 { return Default.Float64Range(min, max) }

// Float32Range draws from Default.
func Float32Range(min, max float32) float32 { return Default.Float32Range(min, max) }

// Perm draws from Default.
func Perm(n int) []int { return Default.Perm(n) }

// Read fills p from Default.
func Read(p []byte) (int, error) { return Default.Read(p) }

// Shuffle randomizes the elements of s in place using Default.
func Shuffle[T any](s []T) {
	ShuffleWith(Default, s)
}

// ShuffleWith randomizes the elements of s in place using r.
func ShuffleWith[T any](r *Rand, s []T) {
	r.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}

// Choice returns a uniformly selected element of s using Default. The
// boolean is false for an empty slice.
func Choice[T any](s []T) (T, bool) {
	return ChoiceWith(Default, s)
}

// ChoiceWith returns a uniformly selected element of s using r. The
// boolean is false for an empty slice.
func ChoiceWith[T any](r *Rand, s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[int(r.uint64n(uint64(len(s))))], true
}
