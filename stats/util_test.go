// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"sort"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// naneq is == that considers NaN equal to NaN.
func naneq(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// testFunc checks that f(x) ≅ want for each x, want pair in vals.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if naneq(want, got) || aeq(want, got) {
			continue
		}
		t.Errorf("want %s(%v)=%v, got %v", name, x, want, got)
	}
}

// aeqSlice reports whether a and b have the same length and are
// element-wise ≅.
func aeqSlice(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !naneq(a[i], b[i]) && !aeq(a[i], b[i]) {
			return false
		}
	}
	return true
}

func checkSlice(t *testing.T, name string, want, got []float64) {
	t.Helper()
	if !aeqSlice(want, got) {
		t.Errorf("%s: want %v, got %v", name, fmtFloats(want), fmtFloats(got))
	}
}

func fmtFloats(xs []float64) string {
	s := "["
	for i, x := range xs {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%.6g", x)
	}
	return s + "]"
}
