// Copyright 2026 the Scitour authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"reflect"
	"testing"
)

func TestChartSizes(t *testing.T) {
	for _, tc := range []struct {
		max  int
		want []int
	}{
		{1e6, []int{100, 1000, 10000, 100000, 1000000}},
		{2500, []int{100, 1000}},
		{100, []int{100}},
		{50, []int{50}},
		{1, []int{1}},
		{0, nil},
		{-10, nil},
	} {
		if got := chartSizes(tc.max); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("chartSizes(%d) = %v, want %v", tc.max, got, tc.want)
		}
	}
}
