// Copyright 2026 the Scitour authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package montecarlo estimates π by random sampling. An estimate
// draws uniform points from the unit square and counts the fraction
// that fall inside the quarter unit circle; four times that fraction
// converges to π at the usual Monte Carlo rate, with error
// proportional to 1/√n.
//
// Estimates compose: a Result is a commutative summary (sample and
// hit counts) that can be merged by addition, so the sample range may
// be partitioned across goroutines or machines and the partial
// results combined in any order. EstimateParallel does this across
// local goroutines; EstimateDistributed does it across bigmachine
// workers.
package montecarlo

import (
	"encoding/binary"
	"math"
	"math/rand"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/traverse"
	"github.com/spaolacci/murmur3"
)

// A Result summarizes a batch of samples: the number of points drawn
// and the number that landed inside the quarter unit circle. Results
// from independent batches are merged with Add.
type Result struct {
	// N is the number of points sampled.
	N int
	// Hits is the number of sampled points (x, y) with x²+y² ≤ 1.
	Hits int
}

// Add merges two independent sample batches. Addition is commutative
// and associative, so batches may be merged in any order.
func (r Result) Add(s Result) Result {
	return Result{N: r.N + s.N, Hits: r.Hits + s.Hits}
}

// Pi returns the π estimate implied by the summary.
func (r Result) Pi() float64 {
	return 4 * float64(r.Hits) / float64(r.N)
}

// StdErr returns the binomial standard error of the estimate,
// scaled to the estimate's units.
func (r Result) StdErr() float64 {
	p := float64(r.Hits) / float64(r.N)
	return 4 * math.Sqrt(p*(1-p)/float64(r.N))
}

// Sample draws n points from rng and summarizes them. It is the
// sequential kernel shared by all of the estimators.
func Sample(rng *rand.Rand, n int) Result {
	r := Result{N: n}
	for i := 0; i < n; i++ {
		x, y := rng.Float64(), rng.Float64()
		if x*x+y*y <= 1 {
			r.Hits++
		}
	}
	return r
}

// Estimate draws n samples sequentially, seeding a fresh RNG from
// seed. n must be positive.
func Estimate(seed int64, n int) (Result, error) {
	if n <= 0 {
		return Result{}, errors.E(errors.Invalid, "montecarlo: sample count must be positive")
	}
	return Sample(rand.New(rand.NewSource(seed)), n), nil
}

// EstimateParallel partitions n samples across p worker goroutines,
// each drawing from its own deterministically seeded RNG, and merges
// the partial results. For fixed seed, n and p the result is
// reproducible. n and p must be positive.
func EstimateParallel(seed int64, n, p int) (Result, error) {
	if n <= 0 {
		return Result{}, errors.E(errors.Invalid, "montecarlo: sample count must be positive")
	}
	if p <= 0 {
		return Result{}, errors.E(errors.Invalid, "montecarlo: worker count must be positive")
	}
	if p > n {
		p = n
	}
	results := make([]Result, p)
	err := traverse.Each(p, func(i int) error {
		results[i] = Sample(rand.New(rand.NewSource(workerSeed(seed, i))), share(n, p, i))
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	var total Result
	for _, r := range results {
		total = total.Add(r)
	}
	return total, nil
}

// Share computes worker i's portion of n samples split across p
// workers: an even split, with the remainder going to worker 0.
func share(n, p, i int) int {
	s := n / p
	if i == 0 {
		s += n % p
	}
	return s
}

// WorkerSeed derives a per-worker RNG seed from the estimate seed and
// the worker's index. Hashing decorrelates the streams: adjacent
// seeds would otherwise produce overlapping state in some RNGs.
func workerSeed(seed int64, worker int) int64 {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], uint64(seed))
	binary.LittleEndian.PutUint64(b[8:], uint64(worker))
	return int64(murmur3.Sum64(b[:]))
}
