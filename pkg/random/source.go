// SPDX-License-Identifier: MIT
/*
Package random provides the toolkit's random generation. The process
default draws from the operating system CSPRNG and is safe to use from
any goroutine; deterministic seeded sources exist for tests and
reproducible sweeps.

Every derivation (ranges, floats, shuffles, choice) is built on raw
64-bit draws from a single Source capability, so swapping the Source
swaps the randomness of everything derived from it.
*/
package random

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"sync"
)

// Source produces uniformly distributed 64-bit values. Implementations
// state their own concurrency guarantees.
type Source interface {
	Uint64() uint64
}

// CryptoSource draws from the operating system CSPRNG via crypto/rand.
// It is stateless and safe for concurrent use.
type CryptoSource struct{}

// Uint64 reads 8 bytes from the system entropy pool. A read failure
// means the process environment is broken beyond recovery, so it
// panics rather than degrade silently.
func (CryptoSource) Uint64() uint64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		panic("random: crypto source unavailable: " + err.Error())
	}
	return binary.NativeEndian.Uint64(buf[:])
}

// SeededSource is a SplitMix64 generator: identical seeds yield
// identical sequences, which is what tests want. Not safe for
// concurrent use; wrap it in a LockedSource when shared.
type SeededSource struct {
	state uint64
}

// NewSeededSource returns a deterministic Source starting from seed.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{state: seed}
}

// Uint64 advances the SplitMix64 state and mixes it into the output.
func (s *SeededSource) Uint64() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// LockedSource serializes access to a wrapped Source so stateful
// generators can be shared between goroutines.
type LockedSource struct {
	mu  sync.Mutex
	src Source
}

// NewLockedSource wraps src with a mutex.
func NewLockedSource(src Source) *LockedSource {
	return &LockedSource{src: src}
}

// Uint64 forwards to the wrapped Source under the lock.
func (l *LockedSource) Uint64() uint64 {
	l.mu.Lock()
	v := l.src.Uint64()
	l.mu.Unlock()
	return v
}
