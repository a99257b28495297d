// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// DefaultBins is the bin count used when the caller does not request
// one.
const DefaultBins = 30

// Bounds on the bin count chosen by SuggestBins.
const (
	minBins = 5
	maxBins = 200

	// maxFallbackBins bounds the bin count when there are too few
	// values to estimate a bin width.
	maxFallbackBins = 10
)

// SuggestBins returns a histogram bin count for the finite values of
// xs using the Freedman–Diaconis rule, which sets the bin width to
// 2·IQR/∛n. The result is clamped to [5, 200].
//
// If xs has fewer than two finite values, SuggestBins returns
// defaultBins clamped to [5, 10]. If the rule yields no usable width
// (for example, because the IQR is 0), it returns defaultBins as is.
// If defaultBins <= 0, DefaultBins is used.
//
// Quartiles are nearest-rank: the q'th quartile is the sorted value
// at index floor(q*(n-1)).
//
// Freedman, David; Diaconis, Persi (1981). "On the histogram as a
// density estimator: L2 theory". Probability Theory and Related
// Fields 57 (4): 453–476.
func SuggestBins(xs []float64, defaultBins int) int {
	if defaultBins <= 0 {
		defaultBins = DefaultBins
	}
	s := newSortedSample(xs)
	n := len(s.xs)
	if n < 2 {
		// TODO: This clamps to [5, 10] while the main path clamps
		// to [5, 200]; decide with chart owners whether the two
		// should agree.
		return max(minBins, min(maxFallbackBins, defaultBins))
	}

	width := 2 * s.IQR() / math.Cbrt(float64(n))
	if !isFinite(width) || width <= 0 {
		return defaultBins
	}
	bins := math.Ceil((s.xs[n-1] - s.xs[0]) / width)
	if bins < minBins {
		return minBins
	} else if bins > maxBins {
		return maxBins
	}
	return int(bins)
}
