// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	mfstats "github.com/montanaflynn/stats"
	"github.com/pkg/errors"

	"github.com/aclements/go-distplot/stats"
)

// barWidth is the width of the longest histogram bar.
const barWidth = 50

// medianConfidence is the requested confidence level of the median
// interval printed with the quartiles.
const medianConfidence = 0.95

func writeJSON(w io.Writer, rep report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(rep), "encoding JSON")
}

// writeText prints rep the way dist always has: a summary line,
// quartiles with a confidence interval for the median, then the histogram with the fitted normal density at
// each bin center marked by '*' (and the KDE density by 'o' if kde is
// non-nil).
func writeText(w io.Writer, rep report, vals []float64, kde *stats.KDEDist) error {
	var b strings.Builder
	s := rep.Summary

	fmt.Fprintf(&b, "N %s  mean %.6g  std dev %.6g  min %.6g  max %.6g\n", humanize.Comma(int64(s.Count)), s.Mean, s.StdDev, s.Min, s.Max)
	if rep.Transform != "" {
		fmt.Fprintf(&b, "transform %s  dropped %s\n", rep.Transform, humanize.Comma(int64(rep.Dropped)))
	} else if rep.Dropped > 0 {
		fmt.Fprintf(&b, "dropped %s non-finite\n", humanize.Comma(int64(rep.Dropped)))
	}
	b.WriteString("\n")

	// Quartiles and tails.
	fin := finiteValues(vals)
	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		var q float64
		var err error
		switch p {
		case 0:
			q, err = mfstats.Min(fin)
		case 50:
			q, err = mfstats.Median(fin)
		case 100:
			q, err = mfstats.Max(fin)
		default:
			q, err = mfstats.Percentile(fin, float64(p))
		}
		if err != nil {
			return errors.Wrapf(err, "computing %s", label)
		}
		fmt.Fprintf(&b, "%8s %.6g\n", label, q)
	}
	ci := stats.QuantileCI(fin, 0.5, medianConfidence)
	fmt.Fprintf(&b, "%.0f%% CI for median [%.6g, %.6g] (achieved %.1f%%)\n", medianConfidence*100, ci.Lo, ci.Hi, ci.Confidence*100)
	b.WriteString("\n")

	// Histogram.
	norm := stats.NormalDist{Mu: s.Mean, Sigma: s.StdDev}
	scale := 0.0
	for _, bin := range rep.Histogram {
		scale = math.Max(scale, bin.Density)
	}
	for _, p := range rep.NormalCurve {
		scale = math.Max(scale, p.Y)
	}
	for _, p := range rep.KDE {
		scale = math.Max(scale, p.Y)
	}
	col := func(y float64) int {
		if scale == 0 {
			return 0
		}
		return min(int(math.Round(y/scale*barWidth)), barWidth)
	}

	fmt.Fprintf(&b, "%d bins over [%.6g, %.6g]\n", len(rep.Histogram), rep.Domain.Min, rep.Domain.Max)
	for _, bin := range rep.Histogram {
		bar := []byte(strings.Repeat("#", col(bin.Density)) + strings.Repeat(" ", barWidth+1-col(bin.Density)))
		bar[col(norm.PDF(bin.X))] = '*'
		if kde != nil {
			bar[col(kde.PDF(bin.X))] = 'o'
		}
		fmt.Fprintf(&b, "%12.6g %12.6g %8d %10.4g |%s\n", bin.Start, bin.End, bin.Count, bin.Density, strings.TrimRight(string(bar), " "))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func finiteValues(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			out = append(out, x)
		}
	}
	return out
}
