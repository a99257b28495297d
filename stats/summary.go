// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// Summary holds the summary statistics of the finite values of a
// sample.
//
// For an empty sample, Count is 0, Mean and StdDev are 0, Min is +Inf
// and Max is -Inf. Callers must check Empty before using Min and Max
// as a display domain.
type Summary struct {
	Count int `json:"count"`

	// Mean is the arithmetic mean.
	Mean float64 `json:"mean"`

	// StdDev is the population standard deviation (that is, the
	// variance is normalized by Count, not Count-1).
	StdDev float64 `json:"std"`

	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Empty reports whether s summarizes no values.
func (s Summary) Empty() bool {
	return s.Count == 0
}

// Running accumulates a Summary in a single pass using Welford's
// online algorithm, which avoids the catastrophic cancellation of the
// naive sum-of-squares formula for large-magnitude or large-n data.
//
// The zero value is an empty accumulator. A Running must not be
// updated concurrently.
//
// Welford, B. P. (1962). "Note on a method for calculating corrected
// sums of squares and products". Technometrics 4 (3): 419–420.
type Running struct {
	n        int
	mean, m2 float64
	min, max float64
}

// Add adds x to the accumulator. Non-finite values are ignored.
func (r *Running) Add(x float64) {
	if !isFinite(x) {
		return
	}
	if r.n == 0 {
		r.min, r.max = x, x
	}
	r.n++
	delta := x - r.mean
	r.mean += delta / float64(r.n)
	r.m2 += delta * (x - r.mean)
	if x < r.min {
		r.min = x
	}
	if x > r.max {
		r.max = x
	}
}

// AddAll adds each of xs to the accumulator.
func (r *Running) AddAll(xs []float64) {
	for _, x := range xs {
		r.Add(x)
	}
}

// Count returns the number of finite values added.
func (r *Running) Count() int {
	return r.n
}

// Mean returns the mean of the values added, or 0 if there are none.
func (r *Running) Mean() float64 {
	return r.mean
}

// Variance returns the population variance of the values added. It
// is 0 if fewer than two values have been added.
func (r *Running) Variance() float64 {
	if r.n < 2 {
		return 0
	}
	return r.m2 / float64(r.n)
}

// StdDev returns the population standard deviation of the values
// added.
func (r *Running) StdDev() float64 {
	return math.Sqrt(r.Variance())
}

// Summary returns the summary of the values added so far.
func (r *Running) Summary() Summary {
	if r.n == 0 {
		return Summary{Min: inf, Max: -inf}
	}
	return Summary{
		Count:  r.n,
		Mean:   r.mean,
		StdDev: r.StdDev(),
		Min:    r.min,
		Max:    r.max,
	}
}

// Summarize returns the Summary of the finite values in xs.
func Summarize(xs []float64) Summary {
	var r Running
	r.AddAll(xs)
	return r.Summary()
}
