// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// A Bin is one bucket of a histogram, covering [Start, End).
type Bin struct {
	// X is the center of the bin.
	X float64 `json:"x"`

	Start float64 `json:"start"`
	End   float64 `json:"end"`

	// Count is the number of values that fell in this bin.
	Count int `json:"count"`

	// Density is Count normalized by the total count and the bin
	// width, so that the densities of all bins integrate to 1.
	Density float64 `json:"density"`
}

// Width returns the width of the bin.
func (b Bin) Width() float64 {
	return b.End - b.Start
}

// Histogram divides the range of the finite values of xs into
// binCount equal-width bins and counts the values in each. The last
// bin is closed on both ends so it includes the maximum. If binCount
// <= 0, it uses DefaultBins.
//
// Consecutive bins share their boundaries exactly, the first bin
// starts at the minimum finite value, and the last bin ends at the
// maximum finite value.
//
// If xs has no finite values, or all finite values are equal,
// Histogram returns a single zero-width bin at that value (or at 0
// if there are no finite values) whose Count is len(xs) and whose
// Density is 1.
func Histogram(xs []float64, binCount int) []Bin {
	if binCount <= 0 {
		binCount = DefaultBins
	}

	lo, hi, n := inf, -inf, 0
	for _, x := range xs {
		if !isFinite(x) {
			continue
		}
		n++
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	if n == 0 || lo == hi {
		at := lo
		if n == 0 {
			at = 0
		}
		return []Bin{{X: at, Start: at, End: at, Count: len(xs), Density: 1}}
	}

	width := (hi - lo) / float64(binCount)
	counts := make([]int, binCount)
	for _, x := range xs {
		if !isFinite(x) {
			continue
		}
		i := int(math.Floor((x - lo) / width))
		if i < 0 {
			i = 0
		} else if i >= binCount {
			i = binCount - 1
		}
		counts[i]++
	}

	bins := make([]Bin, binCount)
	norm := float64(n) * width
	for i, count := range counts {
		start := lo + float64(i)*width
		end := lo + float64(i+1)*width
		if i == binCount-1 {
			end = hi
		}
		bins[i] = Bin{
			X:       start + width/2,
			Start:   start,
			End:     end,
			Count:   count,
			Density: float64(count) / norm,
		}
	}
	return bins
}
