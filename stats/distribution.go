// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// Domain is the x range of a distribution chart.
type Domain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Distribution is everything needed to draw a distribution chart: a
// histogram of the data, a normal curve fitted to the data's mean and
// standard deviation, the summary statistics, and the x domain that
// both cover.
type Distribution struct {
	Histogram   []Bin   `json:"histogram"`
	NormalCurve []Point `json:"normalCurve"`
	Summary     Summary `json:"stats"`
	Domain      Domain  `json:"domain"`
}

// BuildDistribution computes the Distribution of the finite values of
// xs. If bins <= 0, the bin count is chosen by SuggestBins.
//
// The domain spans the histogram's bins, and the normal curve is
// sampled at DefaultCurvePoints intervals across it.
func BuildDistribution(xs []float64, bins int) Distribution {
	sum := Summarize(xs)
	if bins <= 0 {
		bins = SuggestBins(xs, DefaultBins)
	}
	hist := Histogram(xs, bins)

	dom := Domain{sum.Min, sum.Max}
	if len(hist) > 0 {
		dom = Domain{hist[0].Start, hist[len(hist)-1].End}
	}

	return Distribution{
		Histogram:   hist,
		NormalCurve: NormalCurve(dom.Min, dom.Max, sum.Mean, sum.StdDev, DefaultCurvePoints),
		Summary:     sum,
		Domain:      dom,
	}
}

// BuildTransformed applies t to xs and returns the Distribution of
// the result.
func BuildTransformed(xs []float64, t Transform, bins int) Distribution {
	return BuildDistribution(ApplyTransform(xs, t), bins)
}
