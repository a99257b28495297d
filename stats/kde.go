// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// KDE represents options for constructing a Gaussian kernel density
// estimate, a smooth alternative to the fitted normal curve for
// overlaying on a histogram.
//
// Kernel density estimation constructs an estimate ƒ̂(x) of an
// unknown distribution ƒ(x) given a sample from that distribution.
// Unlike the fitted normal curve, it does not assume any particular
// shape, so it follows skewed and multi-modal data (note, however,
// that the result depends deeply on the selected bandwidth).
//
// The default (zero) value of KDE is a reasonable default
// configuration.
type KDE struct {
	// Bandwidth is the standard deviation of the Gaussian kernel.
	//
	// If this is zero, the bandwidth is computed from the
	// provided data using BandwidthScott.
	Bandwidth float64

	// [BoundaryMin, BoundaryMax] specify a bounded support for
	// the KDE. If both are 0 (their default values), they are
	// treated as -/+inf. Density that the kernels place outside
	// the support is reflected back across the boundary.
	//
	// To specify a half-bounded support, set Min to math.Inf(-1)
	// or Max to math.Inf(1). For example, the output of a Sqrt
	// transform has support [0, inf).
	BoundaryMin float64
	BoundaryMax float64
}

// BandwidthSilverman is a bandwidth estimator implementing
// Silverman's Rule of Thumb. It's fast, but not very robust to
// outliers as it assumes data is approximately normal.
//
// Silverman, B. W. (1986) Density Estimation.
func BandwidthSilverman(data interface {
	StdDev() float64
	Weight() float64
}) float64 {
	return 1.06 * data.StdDev() * math.Pow(data.Weight(), -1.0/5)
}

// BandwidthScott is a bandwidth estimator implementing Scott's Rule.
// This is generally robust to outliers: it chooses the minimum
// between the sample's standard deviation and an robust estimator of
// a Gaussian distribution's standard deviation.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthScott(data interface {
	StdDev() float64
	Weight() float64
	Percentile(float64) float64
}) float64 {
	iqr := data.Percentile(0.75) - data.Percentile(0.25)
	hScale := 1.06 * math.Pow(data.Weight(), -1.0/5)
	stdDev := data.StdDev()
	if stdDev < iqr/1.349 || iqr == 0 {
		// Use Silverman's Rule of Thumb
		return hScale * stdDev
	} else {
		// Use IQR/1.349 as a robust estimator of the standard
		// deviation of a Gaussian distribution.
		return hScale * (iqr / 1.349)
	}
}

// From returns the kernel density estimate of the finite values of
// xs. If xs has no finite values or the bandwidth is 0, the estimate
// is degenerate and its PDF is 0 everywhere.
func (k KDE) From(xs []float64) *KDEDist {
	s := newSortedSample(xs)

	h := k.Bandwidth
	if h == 0 && len(s.xs) > 0 {
		h = BandwidthScott(s)
	}

	min, max := k.BoundaryMin, k.BoundaryMax
	if min == 0 && max == 0 {
		min, max = math.Inf(-1), math.Inf(1)
	}

	return &KDEDist{kernel: NormalDist{0, h}, s: s, xs: s.xs, min: min, max: max}
}

// Curve samples the kernel density estimate of xs at points+1 evenly
// spaced values across [lo, hi], like NormalCurve.
func (k KDE) Curve(xs []float64, lo, hi float64, points int) []Point {
	return Curve(k.From(xs), lo, hi, points)
}

// KDEDist is a kernel density estimate. It implements Dist.
type KDEDist struct {
	kernel   NormalDist
	s        *sortedSample
	xs       []float64 // s.xs
	min, max float64   // Support bounds
}

// Bandwidth returns the kernel bandwidth of d.
func (d *KDEDist) Bandwidth() float64 {
	return d.kernel.Sigma
}

func (d *KDEDist) degenerate() bool {
	return len(d.xs) == 0 || d.kernel.Sigma <= 0
}

// mean evaluates f at x shifted by each sample and averages the
// results.
func (d *KDEDist) mean(f func(float64) float64, x float64) float64 {
	sum := 0.0
	for _, xi := range d.xs {
		sum += f(x - xi)
	}
	return sum / float64(len(d.xs))
}

func (d *KDEDist) PDF(x float64) float64 {
	if d.degenerate() || x < d.min || x > d.max {
		return 0
	}
	y := func(x float64) float64 { return d.mean(d.kernel.PDF, x) }
	p := y(x)
	// Reflect the mass that fell past each finite boundary.
	if !math.IsInf(d.min, -1) {
		p += y(2*d.min - x)
	}
	if !math.IsInf(d.max, 1) {
		p += y(2*d.max - x)
	}
	return p
}

func (d *KDEDist) PDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.PDF(x)
	}
	return res
}

func (d *KDEDist) CDF(x float64) float64 {
	if x < d.min {
		return 0
	} else if x >= d.max {
		return 1
	}
	if d.degenerate() {
		if len(d.xs) == 0 {
			return nan
		}
		// Each sample is a step.
		return float64(d.s.rank(x)) / float64(len(d.xs))
	}
	y := func(x float64) float64 { return d.mean(d.kernel.CDF, x) }
	c := y(x)
	if !math.IsInf(d.min, -1) {
		c -= y(2*d.min - x)
	}
	if !math.IsInf(d.max, 1) {
		c += 1 - y(2*d.max-x)
	}
	return c
}

func (d *KDEDist) CDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.CDF(x)
	}
	return res
}

// InvCDF finds x such that CDF(x) = y by bisection. It returns NaN if
// y is not in (0, 1) or d is degenerate.
func (d *KDEDist) InvCDF(y float64) float64 {
	if d.degenerate() || !(y > 0 && y < 1) {
		return nan
	}
	lo, hi := d.Bounds()
	for d.CDF(lo) > y {
		lo -= hi - lo
	}
	for d.CDF(hi) < y {
		hi += hi - lo
	}
	const tolerance = 1e-9
	for hi-lo > tolerance*math.Max(1, math.Abs(lo)) {
		mid := lo + (hi-lo)/2
		if d.CDF(mid) < y {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo + (hi-lo)/2
}

func (d *KDEDist) InvCDFEach(ys []float64) []float64 {
	res := make([]float64, len(ys))
	for i, y := range ys {
		res[i] = d.InvCDF(y)
	}
	return res
}

// Bounds returns the sample range widened by three bandwidths on each
// side, limited to the support.
func (d *KDEDist) Bounds() (low float64, high float64) {
	if len(d.xs) == 0 {
		return 0, 0
	}
	low, high = d.xs[0], d.xs[len(d.xs)-1]
	if d.kernel.Sigma > 0 {
		low -= 3 * d.kernel.Sigma
		high += 3 * d.kernel.Sigma
	}
	return math.Max(low, d.min), math.Min(high, d.max)
}
