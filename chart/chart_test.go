// Copyright 2026 the Scitour authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grailbio/testutil"
)

func TestConvergence(t *testing.T) {
	dir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	samples := []Sample{
		{N: 100, Estimate: 3.08},
		{N: 1000, Estimate: 3.18},
		{N: 10000, Estimate: 3.15},
		{N: 100000, Estimate: 3.143},
		{N: 1000000, Estimate: 3.1421},
	}
	path := filepath.Join(dir, "convergence.png")
	if err := Convergence(samples, path); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty chart file")
	}
}

func TestConvergenceExactEstimate(t *testing.T) {
	dir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	// An estimate that happens to hit π exactly must not break the
	// log-scaled axes.
	samples := []Sample{
		{N: 100, Estimate: 3.15},
		{N: 1000, Estimate: 3.1415926535897932},
	}
	if err := Convergence(samples, filepath.Join(dir, "exact.png")); err != nil {
		t.Fatal(err)
	}
}

func TestConvergenceEmpty(t *testing.T) {
	if err := Convergence(nil, "unused.png"); err == nil {
		t.Error("expected error for empty samples")
	}
}
