// Copyright 2026 the Scitour authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package scitour

import "math"

// CircleArea returns the area of a circle with radius r.
func CircleArea(r float64) float64 {
	return math.Pi * r * r
}

// CircleCircumference returns the circumference of a circle with
// radius r.
func CircleCircumference(r float64) float64 {
	return 2 * math.Pi * r
}
