package fastmath

// sinCosTerms is the fixed number of Maclaurin terms the series
// routines accumulate. All terms are summed unconditionally, with no
// early exit and no argument range reduction: accuracy is near machine
// precision inside [-π, π] and decays rapidly beyond ±2π.
const sinCosTerms = 15

// Sin approximates sin(x) with a truncated Maclaurin series. Each term
// is derived from the previous one, so no factorials are materialized.
func Sin(x float64) float64 {
	term := x
	sum := x
	negXX := -x * x
	for k := 1; k < sinCosTerms; k++ {
		term *= negXX / float64(2*k*(2*k+1))
		sum += term
	}
	return sum
}

// Cos approximates cos(x) with a truncated Maclaurin series.
func Cos(x float64) float64 {
	term := 1.0
	sum := 1.0
	negXX := -x * x
	for k := 1; k < sinCosTerms; k++ {
		term *= negXX / float64(2*k*(2*k-1))
		sum += term
	}
	return sum
}

// Tan approximates tan(x) as Sin(x)/Cos(x). Should the cosine series
// evaluate to exactly zero, the IEEE quotient is the correctly signed
// infinity rather than a panic.
func Tan(x float64) float64 {
	return Sin(x) / Cos(x)
}

// Sin32 is Sin with the accumulation carried in float32 arithmetic.
func Sin32(x float32) float32 {
	term := x
	sum := x
	negXX := -x * x
	for k := 1; k < sinCosTerms; k++ {
		term *= negXX / float32(2*k*(2*k+1))
		sum += term
	}
	return sum
}

// Cos32 is Cos with the accumulation carried in float32 arithmetic.
func Cos32(x float32) float32 {
	term := float32(1)
	sum := float32(1)
	negXX := -x * x
	for k := 1; k < sinCosTerms; k++ {
		term *= negXX / float32(2*k*(2*k-1))
		sum += term
	}
	return sum
}

// Tan32 approximates tan(x) as Sin32(x)/Cos32(x), with the same
// division semantics as Tan.
func Tan32(x float32) float32 {
	return Sin32(x) / Cos32(x)
}
