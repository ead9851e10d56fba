// Copyright 2026 the Scitour authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package scitour

import (
	"math"
	"testing"
)

func TestCircle(t *testing.T) {
	if got, want := CircleArea(2), 4*math.Pi; math.Abs(got-want) > 1e-12 {
		t.Errorf("got area %f, want %f", got, want)
	}
	if got, want := CircleCircumference(2), 4*math.Pi; math.Abs(got-want) > 1e-12 {
		t.Errorf("got circumference %f, want %f", got, want)
	}
}
