// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultCurvePoints is the number of intervals a curve is sampled
// at when the caller does not specify one.
const DefaultCurvePoints = 200

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
//
// A NormalDist with Sigma <= 0 is degenerate: its PDF is 0
// everywhere, so a normal curve fitted to zero-variance data is flat
// rather than infinite.
type NormalDist struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1).
var StdNormal = NormalDist{0, 1}

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

func (n NormalDist) PDF(x float64) float64 {
	if n.Sigma <= 0 {
		return 0
	}
	z := (x - n.Mu) / n.Sigma
	return math.Exp(-0.5*z*z) * invSqrt2Pi / n.Sigma
}

func (n NormalDist) PDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	if n.Sigma <= 0 {
		return res
	}
	a := -1 / (2 * n.Sigma * n.Sigma)
	b := invSqrt2Pi / n.Sigma
	for i, x := range xs {
		z := x - n.Mu
		res[i] = math.Exp(z*z*a) * b
	}
	return res
}

func (n NormalDist) CDF(x float64) float64 {
	return (1 + math.Erf((x-n.Mu)/(n.Sigma*math.Sqrt2))) / 2
}

func (n NormalDist) CDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	a := 1 / (n.Sigma * math.Sqrt2)
	for i, x := range xs {
		res[i] = (1 + math.Erf((x-n.Mu)*a)) / 2
	}
	return res
}

// InvCDF returns Mu + Sigma*NormInv(y). It returns NaN if y is not
// in (0, 1).
func (n NormalDist) InvCDF(y float64) float64 {
	return n.Mu + n.Sigma*NormInv(y)
}

func (n NormalDist) InvCDFEach(ys []float64) []float64 {
	res := make([]float64, len(ys))
	for i, y := range ys {
		res[i] = n.InvCDF(y)
	}
	return res
}

func (n NormalDist) Bounds() (float64, float64) {
	const stddevs = 3
	return n.Mu - stddevs*n.Sigma, n.Mu + stddevs*n.Sigma
}

// GaussianPDF returns the density at x of the normal distribution
// with the given mean and standard deviation. It returns 0 if std <=
// 0.
func GaussianPDF(x, mean, std float64) float64 {
	return NormalDist{mean, std}.PDF(x)
}

// NormalCurve samples the normal density with the given mean and
// standard deviation at points+1 evenly spaced values across [lo,
// hi]. It is used to overlay a fitted normal curve on a histogram. If
// points <= 0, it uses DefaultCurvePoints.
func NormalCurve(lo, hi, mean, std float64, points int) []Point {
	return Curve(NormalDist{mean, std}, lo, hi, points)
}

// curveXs returns points+1 evenly spaced values across [lo, hi].
func curveXs(lo, hi float64, points int) []float64 {
	if points <= 0 {
		points = DefaultCurvePoints
	}
	return floats.Span(make([]float64, points+1), lo, hi)
}
