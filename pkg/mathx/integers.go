package mathx

// Factorial returns n! as a uint64. Inputs below 2 return 1. The
// product overflows silently beyond n = 20; callers own that bound.
func Factorial(n int) uint64 {
	if n < 2 {
		return 1
	}
	result := uint64(1)
	for i := uint64(2); i <= uint64(n); i++ {
		result *= i
	}
	return result
}

// GCD returns the greatest common divisor of a and b by the Euclidean
// algorithm. The result is never negative, and GCD(0, b) is |b|.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b, or 0 when either
// is 0. Dividing by the GCD before multiplying keeps the intermediate
// value small.
func LCM(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		return -l
	}
	return l
}

// IsPrime reports whether n is prime, by trial division over the odd
// candidates up to √n. Fine for the magnitudes the toolkit deals in,
// not meant for cryptographic sizes.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for i := int64(3); i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}
