// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// Coefficients of Acklam's rational approximation. These are the
// published values and must not be changed.
var (
	acklamA = [6]float64{
		-3.969683028665376e+01, 2.209460984245205e+02,
		-2.759285104469687e+02, 1.383577518672690e+02,
		-3.066479806614716e+01, 2.506628277459239e+00,
	}
	acklamB = [5]float64{
		-5.447609879822406e+01, 1.615858368580409e+02,
		-1.556989798598866e+02, 6.680131188771972e+01,
		-1.328068155288572e+01,
	}
	acklamC = [6]float64{
		-7.784894002430293e-03, -3.223964580411365e-01,
		-2.400758277161838e+00, -2.549732539343734e+00,
		4.374664141464968e+00, 2.938163982698783e+00,
	}
	acklamD = [4]float64{
		7.784695709041462e-03, 3.224671290700398e-01,
		2.445134137142996e+00, 3.754408661907416e+00,
	}
)

// Break-points between the tail and central regions.
const (
	acklamLow  = 0.02425
	acklamHigh = 1 - acklamLow
)

// NormInv returns the inverse of the standard normal CDF (the probit
// function) at p: the z such that StdNormal.CDF(z) = p. It returns
// NaN if p is not a finite value in (0, 1).
//
// This uses Peter Acklam's rational approximation, which has a
// relative error of at most 1.15e-9 over the whole domain. The low
// tail (p < 0.02425), the high tail (p > 0.97575), and the central
// region each use their own rational function.
//
// Acklam, Peter J. (2003). "An algorithm for computing the inverse
// normal cumulative distribution function".
func NormInv(p float64) float64 {
	if !isFinite(p) || p <= 0 || p >= 1 {
		return nan
	}
	a, b, c, d := &acklamA, &acklamB, &acklamC, &acklamD

	switch {
	case p < acklamLow:
		q := math.Sqrt(-2 * math.Log(p))
		return (((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
			((((d[0]*q+d[1])*q+d[2])*q+d[3])*q + 1)
	case p > acklamHigh:
		q := math.Sqrt(-2 * math.Log(1-p))
		return -(((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
			((((d[0]*q+d[1])*q+d[2])*q+d[3])*q + 1)
	}
	q := p - 0.5
	r := q * q
	return (((((a[0]*r+a[1])*r+a[2])*r+a[3])*r+a[4])*r + a[5]) * q /
		(((((b[0]*r+b[1])*r+b[2])*r+b[3])*r+b[4])*r + 1)
}
