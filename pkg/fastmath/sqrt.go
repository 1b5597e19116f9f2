// SPDX-License-Identifier: MIT
/*
Package fastmath implements classic hand-derived approximations: an
iterative Newton-Raphson square root, the bit-level fast inverse square
root, and fixed-length Maclaurin series for sine and cosine.

Every routine comes in a 32-bit and a 64-bit flavor, with an
arbitrary-precision big.Float variant where extended precision is
worth having. The algorithms are deliberately simple and
self-contained; nothing here calls into the routines of the math
package beyond bit reinterpretation and absolute values.

Accuracy Characteristics:

	Sqrt      converges to within its width's tolerance for inputs
	          whose magnitude the iteration cap can reach (see below)
	InvSqrt   ~0.2% relative error at 32 bits, ~1e-5 at 64 bits
	Sin/Cos   near machine precision inside [-π, π], decaying fast
	          beyond ±2π (no argument range reduction is performed)

The Newton iteration halves the exponent gap once per step before
quadratic convergence kicks in, so extremely large magnitudes (beyond
roughly 1e60 at 64 bits) exhaust the iteration cap before converging.
*/
package fastmath

import (
	"errors"
	"math"
	"math/big"
)

// Convergence tolerances for the Newton-Raphson square root, one per
// numeric width. Iteration stops when two successive estimates differ
// by less than the tolerance.
const (
	SqrtTolerance32  = 1e-6
	SqrtTolerance64  = 1e-10
	SqrtToleranceBig = 1e-30
)

// maxNewtonIter bounds every iteration loop so pathological inputs
// (NaN, subnormals) cannot stall it. Well-formed inputs converge in
// far fewer steps.
const maxNewtonIter = 100

// defaultBigPrec is the minimum working precision, in mantissa bits,
// for the big.Float variants. 128 bits comfortably resolves the
// 1e-30 tolerance.
const defaultBigPrec = 128

// ErrNegativeSqrt is reported by the Checked variants when the input
// lies outside the real domain of the square root.
var ErrNegativeSqrt = errors.New("fastmath: square root of negative number")

var (
	bigOne  = big.NewFloat(1)
	bigHalf = big.NewFloat(0.5)
)

// Sqrt32 computes the square root of x by Newton-Raphson iteration at
// single precision. Negative inputs return the sentinel -1; 0 and 1
// return unchanged.
func Sqrt32(x float32) float32 {
	switch {
	case x < 0:
		return -1
	case x == 0 || x == 1:
		return x
	}

	g := x / 2
	for i := 0; i < maxNewtonIter; i++ {
		next := (g + x/g) / 2
		if abs32(next-g) < SqrtTolerance32 {
			return next
		}
		g = next
	}
	return g
}

// Sqrt computes the square root of x by Newton-Raphson iteration at
// double precision. Negative inputs return the sentinel -1; 0 and 1
// return unchanged.
func Sqrt(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x == 0 || x == 1:
		return x
	}

	g := x / 2
	for i := 0; i < maxNewtonIter; i++ {
		next := (g + x/g) / 2
		if math.Abs(next-g) < SqrtTolerance64 {
			return next
		}
		g = next
	}
	return g
}

// SqrtBig computes the square root of x by the same Newton-Raphson
// iteration carried in big.Float arithmetic, converging to within
// SqrtToleranceBig. The working precision is x's precision or
// defaultBigPrec, whichever is larger. x is never modified; negative
// inputs return the sentinel -1.
func SqrtBig(x *big.Float) *big.Float {
	prec := x.Prec()
	if prec < defaultBigPrec {
		prec = defaultBigPrec
	}

	switch {
	case x.Sign() < 0:
		return new(big.Float).SetPrec(prec).SetInt64(-1)
	case x.Sign() == 0 || x.Cmp(bigOne) == 0:
		return new(big.Float).SetPrec(prec).Set(x)
	}

	tol := new(big.Float).SetPrec(prec).SetFloat64(SqrtToleranceBig)
	g := new(big.Float).SetPrec(prec).Mul(x, bigHalf)
	next := new(big.Float).SetPrec(prec)
	quot := new(big.Float).SetPrec(prec)
	diff := new(big.Float).SetPrec(prec)

	for i := 0; i < maxNewtonIter; i++ {
		quot.Quo(x, g)
		next.Add(g, quot)
		next.Mul(next, bigHalf)
		diff.Sub(next, g)
		if diff.Abs(diff).Cmp(tol) < 0 {
			return next
		}
		g.Set(next)
	}
	return g
}

// CheckedSqrt32 is the error-reporting form of Sqrt32 for callers that
// cannot treat -1 as a sentinel.
func CheckedSqrt32(x float32) (float32, error) {
	if x < 0 {
		return 0, ErrNegativeSqrt
	}
	return Sqrt32(x), nil
}

// CheckedSqrt is the error-reporting form of Sqrt for callers that
// cannot treat -1 as a sentinel.
func CheckedSqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, ErrNegativeSqrt
	}
	return Sqrt(x), nil
}

// abs32 clears the sign bit directly instead of routing float32
// through math.Abs and back.
func abs32(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}
