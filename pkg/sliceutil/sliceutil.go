// SPDX-License-Identifier: MIT
// Package sliceutil provides generic scan, reverse and search helpers
// over slices.
package sliceutil

import "toolkit/pkg/mathx"

// Sum returns the sum of all elements; 0 for an empty slice. Integer
// overflow wraps with the element type.
func Sum[T mathx.Number](s []T) T {
	var total T
	for _, v := range s {
		total += v
	}
	return total
}

// Avg returns the arithmetic mean as a float64; 0 for an empty slice.
func Avg[T mathx.Number](s []T) float64 {
	if len(s) == 0 {
		return 0
	}
	return float64(Sum(s)) / float64(len(s))
}

// Min returns the smallest element. The boolean is false for an empty
// slice.
func Min[T mathx.Ordered](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	m := s[0]
	for _, v := range s[1:] {
		if v < m {
			m = v
		}
	}
	return m, true
}

// Max returns the largest element. The boolean is false for an empty
// slice.
func Max[T mathx.Ordered](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	m := s[0]
	for _, v := range s[1:] {
		if v > m {
			m = v
		}
	}
	return m, true
}

// Reverse reverses s in place. Slices shorter than two elements are
// left untouched.
func Reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// BinarySearch looks for target in the ascending-sorted s and returns
// an index holding it, any one of them when the value is duplicated.
// A miss returns (-1, false).
func BinarySearch[T mathx.Ordered](s []T, target T) (int, bool) {
	lo, hi := 0, len(s)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case s[mid] == target:
			return mid, true
		case s[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return -1, false
}
