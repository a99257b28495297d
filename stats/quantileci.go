// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// An Interval is a distribution-free confidence interval for a
// quantile of a sample.
type Interval struct {
	Quantile float64 `json:"quantile"`

	// Confidence is the achieved confidence level, which is at
	// least the requested level.
	Confidence float64 `json:"confidence"`

	// Lo and Hi bound the interval. They are -Inf or +Inf when the
	// sample is too small to bound that side.
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`

	// LoOrder and HiOrder are the 1-based order statistics of Lo
	// and Hi. They may be 0 or n+1 for an unbounded side.
	LoOrder int `json:"-"`
	HiOrder int `json:"-"`
}

// quantileCIApproxThreshold is the sample size above which the
// binomial distribution of order statistics is replaced by its normal
// approximation. It is a variable for testing.
var quantileCIApproxThreshold = 30

// QuantileCI returns a confidence interval for the q'th quantile of
// the finite values of xs. Ties between equally likely intervals are
// broken toward the left.
func QuantileCI(xs []float64, q, confidence float64) Interval {
	s := newSortedSample(xs)
	n := len(s.xs)
	l, r, c := quantileOrders(n, q, confidence)

	iv := Interval{Quantile: q, Confidence: c, LoOrder: l, HiOrder: r, Lo: -inf, Hi: inf}
	if l >= 1 {
		iv.Lo = s.xs[l-1]
	}
	if r <= n {
		iv.Hi = s.xs[r-1]
	}
	return iv
}

// quantileOrders returns the order statistics [l, r) bounding the
// q'th quantile of a sample of size n with at least the given
// confidence, and the confidence actually achieved.
//
// In B(n, q), PMF(k) is the probability that the population quantile
// falls between the k'th and k+1'th order statistic.
func quantileOrders(n int, q, confidence float64) (l, r int, c float64) {
	if confidence >= 1 || n == 0 {
		return 0, n + 1, 1
	}
	b := BinomialDist{N: n, P: q}

	if n <= quantileCIApproxThreshold {
		// Grow outward from the (lower) mode, taking the more
		// likely neighbor each step. Probabilities fall off
		// monotonically from the mode.
		x := int(math.Ceil(float64(n+1)*q) - 1)
		if q == 0 {
			x = 0
		}
		l, r = x, x+1
		c = b.PMF(float64(x))
		lp, rp := b.PMF(float64(l-1)), b.PMF(float64(r))
		for c < confidence && (lp > 0 || rp > 0) {
			if lp >= rp {
				c += lp
				l--
				lp = b.PMF(float64(l - 1))
			} else {
				c += rp
				r++
				rp = b.PMF(float64(r))
			}
		}
		return l, r, c
	}

	norm := b.NormalApprox()
	lx := norm.InvCDF((1 - confidence) / 2)
	rx := 2*norm.Mu - lx
	// Band k of the binomial is [k-0.5, k+0.5] of the normal, so
	// round out to half-integers and recover k.
	l = int(math.Floor(math.Floor(lx-0.5)+0.5)) + 1
	r = int(math.Floor(math.Ceil(rx-0.5)+0.5)) + 1
	band := func(l, r int) float64 {
		return norm.CDF(float64(r)-0.5) - norm.CDF(float64(l)-0.5)
	}
	c = band(l, r)
	if cb := band(l, r-1); cb >= confidence && cb < c {
		r, c = r-1, cb
	}
	if l <= 0 && r >= n+1 {
		c = 1
	}
	return max(l, 0), min(r, n+1), c
}
