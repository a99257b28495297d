// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats computes the pieces of a distribution chart from a
// column of numbers: summary statistics, histograms, fitted normal
// curves, kernel density estimates, reservoir samples, and
// normalizing value transforms.
//
// Functions in this package never fail on malformed numeric input.
// NaN and ±Inf values are skipped wherever they would corrupt a
// statistic, and transforms silently drop values outside their
// domain. Degenerate inputs (empty, or with zero variance) produce
// degenerate but well-defined outputs.
//
// Every function is pure and safe for concurrent use. The only source
// of non-determinism is a RandSource supplied by the caller.
package stats // import "github.com/aclements/go-distplot/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// finite returns the finite values of xs in their original order.
func finite(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if isFinite(x) {
			out = append(out, x)
		}
	}
	return out
}
