// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
)

// sortedSample is the finite values of a sample in increasing order.
type sortedSample struct {
	xs  []float64
	sum Summary
}

// newSortedSample copies the finite values of xs and sorts them.
func newSortedSample(xs []float64) *sortedSample {
	s := &sortedSample{xs: finite(xs)}
	sort.Float64s(s.xs)
	s.sum = Summarize(s.xs)
	return s
}

// Weight returns the number of values in s.
func (s *sortedSample) Weight() float64 {
	return float64(len(s.xs))
}

// StdDev returns the population standard deviation of s.
func (s *sortedSample) StdDev() float64 {
	return s.sum.StdDev
}

// Percentile returns the nearest-rank p'th quantile of s, using the
// value at index floor(p*(n-1)). p is clamped to [0, 1]. It returns
// NaN if s is empty.
func (s *sortedSample) Percentile(p float64) float64 {
	if len(s.xs) == 0 {
		return nan
	}
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	return s.xs[int(math.Floor(p*float64(len(s.xs)-1)))]
}

// IQR returns the nearest-rank interquartile range of s.
func (s *sortedSample) IQR() float64 {
	return s.Percentile(0.75) - s.Percentile(0.25)
}

// rank returns the number of values in s that are <= x.
func (s *sortedSample) rank(x float64) int {
	return sort.Search(len(s.xs), func(i int) bool { return s.xs[i] > x })
}
