// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// A Dist is a continuous statistical distribution that can be
// overlaid on a histogram.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x float64) float64

	// PDFEach returns PDF(xs[i]) for each i.
	PDFEach(xs []float64) []float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x.
	CDF(x float64) float64

	// CDFEach returns CDF(xs[i]) for each i.
	CDFEach(xs []float64) []float64

	// InvCDF returns the inverse of the CDF for y. That is,
	// InvCDF(CDF(x)) = x. If y is outside (0, 1), InvCDF
	// returns NaN.
	InvCDF(y float64) float64

	// InvCDFEach returns InvCDF(ys[i]) for each i.
	InvCDFEach(ys []float64) []float64

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)
}

// A Point is one sample of a curve.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Curve samples d's PDF at points+1 evenly spaced values across
// [lo, hi], including both end points. If points <= 0, it uses
// DefaultCurvePoints.
func Curve(d Dist, lo, hi float64, points int) []Point {
	xs := curveXs(lo, hi, points)
	ys := d.PDFEach(xs)
	out := make([]Point, len(xs))
	for i := range xs {
		out[i] = Point{xs[i], ys[i]}
	}
	return out
}
