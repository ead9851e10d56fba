// Copyright 2026 the Scitour authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package montecarlo

import (
	"context"
	"encoding/gob"
	"math/rand"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/bigmachine"
	"golang.org/x/sync/errgroup"
)

func init() {
	gob.Register(&sampler{})
}

// A sampler is the bigmachine service installed on each worker
// machine. Its only method draws a batch of samples and replies with
// the summary.
type sampler struct{}

// A sampleRequest names a batch of work: the worker's RNG seed and
// the number of points to draw.
type sampleRequest struct {
	Seed int64
	N    int
}

// Sample draws the requested batch on the worker and replies with its
// summary.
func (*sampler) Sample(ctx context.Context, req sampleRequest, reply *Result) error {
	if req.N <= 0 {
		return errors.E(errors.Invalid, "montecarlo: sample count must be positive")
	}
	*reply = Sample(rand.New(rand.NewSource(req.Seed)), req.N)
	return nil
}

// EstimateDistributed partitions n samples across nmach bigmachine
// workers, issuing one sampling call per machine and merging the
// partial results. The machines are started on b with the sampler
// service installed; machines that fail to boot fail the estimate.
// The caller owns b's lifecycle and releases the workers by shutting
// it down.
//
// For fixed seed, n and nmach the result is reproducible across
// backends, since each worker's RNG is seeded only from the estimate
// seed and the worker's index.
func EstimateDistributed(ctx context.Context, b *bigmachine.B, seed int64, n, nmach int) (Result, error) {
	if n <= 0 {
		return Result{}, errors.E(errors.Invalid, "montecarlo: sample count must be positive")
	}
	if nmach <= 0 {
		return Result{}, errors.E(errors.Invalid, "montecarlo: machine count must be positive")
	}
	if nmach > n {
		nmach = n
	}
	machines, err := b.Start(ctx, nmach, bigmachine.Services{"Sampler": &sampler{}})
	if err != nil {
		return Result{}, err
	}
	log.Printf("montecarlo: sampling %d points on %d machines", n, len(machines))
	results := make([]Result, len(machines))
	g, ctx := errgroup.WithContext(ctx)
	for i := range machines {
		i, m := i, machines[i]
		g.Go(func() error {
			select {
			case <-m.Wait(bigmachine.Running):
			case <-ctx.Done():
				return ctx.Err()
			}
			if err := m.Err(); err != nil {
				log.Error.Printf("montecarlo: machine %s failed to start: %v", m.Addr, err)
				return err
			}
			req := sampleRequest{Seed: workerSeed(seed, i), N: share(n, len(machines), i)}
			return m.RetryCall(ctx, "Sampler.Sample", req, &results[i])
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	var total Result
	for _, r := range results {
		total = total.Add(r)
	}
	return total, nil
}
