// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/combin"
)

// BinomialDist is the number of successes in N independent trials
// that each succeed with probability P.
//
// It is the sampling distribution of order statistics, which is how
// QuantileCI uses it.
type BinomialDist struct {
	N int     // N >= 0
	P float64 // 0 <= P <= 1
}

// PMF returns the probability of exactly floor(k) successes.
func (d BinomialDist) PMF(k float64) float64 {
	ki := int(math.Floor(k))
	if ki < 0 || ki > d.N {
		return 0
	}
	c := combin.GeneralizedBinomial(float64(d.N), float64(ki))
	return c * math.Pow(d.P, float64(ki)) * math.Pow(1-d.P, float64(d.N-ki))
}

// CDF returns the probability of floor(k) or fewer successes.
func (d BinomialDist) CDF(k float64) float64 {
	ki := int(math.Floor(k))
	switch {
	case ki < 0:
		return 0
	case ki >= d.N:
		return 1
	}
	return mathext.RegIncBeta(float64(d.N-ki), float64(ki+1), 1-d.P)
}

func (d BinomialDist) Bounds() (float64, float64) {
	return 0, float64(d.N)
}

func (d BinomialDist) Mean() float64 {
	return float64(d.N) * d.P
}

func (d BinomialDist) Variance() float64 {
	return float64(d.N) * d.P * (1 - d.P)
}

// NormalApprox returns the normal distribution with d's mean and
// variance. Callers must apply a continuity correction: d.PMF(k) is
// approximated by n.CDF(k+0.5) - n.CDF(k-0.5).
func (d BinomialDist) NormalApprox() NormalDist {
	return NormalDist{Mu: d.Mean(), Sigma: math.Sqrt(d.Variance())}
}
