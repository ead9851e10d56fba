// Copyright 2026 the Scitour authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package scitour

import "github.com/grailbio/base/errors"

// DefaultFibonacciLength is the sequence length used by the tour's
// Fibonacci demonstration.
const DefaultFibonacciLength = 25

// Sum applies f to every integer in the inclusive range [lo, hi] and
// returns the accumulated sum. An empty range (lo > hi) sums to zero.
func Sum(f func(int) int, lo, hi int) int {
	var sum int
	for x := lo; x <= hi; x++ {
		sum += f(x)
	}
	return sum
}

// Fibonacci returns the first n values of the Fibonacci sequence,
// beginning 0, 1. n must be at least 2. Values are computed in int
// arithmetic; they overflow beyond n=92, which is the caller's
// concern.
func Fibonacci(n int) ([]int, error) {
	if n < 2 {
		return nil, errors.E("scitour.Fibonacci", errors.Invalid, "sequence length must be at least 2")
	}
	seq := make([]int, n)
	seq[0], seq[1] = 0, 1
	for i := 2; i < n; i++ {
		seq[i] = seq[i-1] + seq[i-2]
	}
	return seq, nil
}
