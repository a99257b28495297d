// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"testing"
)

func TestQuantileOrders(t *testing.T) {
	var n int
	var q, conf float64
	check := func(wl, wr int, wc float64) {
		t.Helper()
		l, r, c := quantileOrders(n, q, conf)
		if l != wl || r != wr || !aeq(c, wc) {
			t.Errorf("quantileOrders(%d, %v, %v): want [%d,%d)@%v, got [%d,%d)@%v", n, q, conf, wl, wr, wc, l, r, c)
		}
	}
	pmf := func(n int, p float64, k int) float64 {
		return BinomialDist{N: n, P: p}.PMF(float64(k))
	}

	// Low confidence falls directly around the quantile.
	n, q, conf = 4, 0.5, 0.001
	check(2, 3, 0.375)
	n, q, conf = 4, 0.25, 0.001
	check(1, 2, 0.421875)
	n, q, conf = 4, 0, 0.001
	check(0, 1, 1)
	n, q, conf = 4, 0.0001, 0.001
	check(0, 1, pmf(4, 0.0001, 0))
	n, q, conf = 4, 1, 0.001
	check(4, 5, 1)
	n, q, conf = 4, 0.999, 0.001
	check(4, 5, pmf(4, 0.999, 4))

	// Exactly the mode's mass, then just beyond it (left-biased).
	n, q, conf = 4, 0.5, 0.375
	check(2, 3, 0.375)
	n, q, conf = 4, 0.5, 0.3750001
	check(1, 3, 0.375+0.25)

	// Full or nearly full confidence covers everything.
	n, q, conf = 4, 0.5, 1
	check(0, 5, 1)
	n, q, conf = 4, 0.5, 0.99
	check(0, 5, 1)
	n, q, conf = 4, 0.5, 0.99-0.0625
	check(0, 4, 0.375+2*0.25+0.0625)

	// Odd sample size.
	n, q, conf = 5, 0.5, 0.001
	check(2, 3, 0.3125)
	n, q, conf = 5, 0.5, 0.3125001
	check(2, 4, 0.3125*2)
	n, q, conf = 5, 0.5, 0.99-0.03125
	check(0, 5, 1-0.03125)

	n, q, conf = 0, 0.5, 0.95
	check(0, 1, 1)
}

func TestQuantileOrdersApprox(t *testing.T) {
	defer func(x int) { quantileCIApproxThreshold = x }(quantileCIApproxThreshold)
	quantileCIApproxThreshold = 0

	bands := func(n int, p float64) []float64 {
		norm := BinomialDist{N: n, P: p}.NormalApprox()
		bs := make([]float64, n+1)
		for i := range bs {
			bs[i] = norm.CDF(float64(i)+0.5) - norm.CDF(float64(i)-0.5)
		}
		return bs
	}
	check := func(n int, q, conf float64, wl, wr int, wc float64) {
		t.Helper()
		l, r, c := quantileOrders(n, q, conf)
		if l != wl || r != wr || !aeq(c, wc) {
			t.Errorf("quantileOrders(%d, %v, %v): want [%d,%d)@%v, got [%d,%d)@%v", n, q, conf, wl, wr, wc, l, r, c)
		}
	}

	b := bands(4, 0.5)
	check(4, 0.5, 0.001, 2, 3, b[2])
	check(4, 0.5, b[2]+0.00001, 1, 3, b[1]+b[2])
	check(4, 0.5, 1, 0, 5, 1)
	check(4, 0.5, 0.99, 0, 5, 1)
	check(4, 0.5, 0.90, 0, 4, b[0]+b[1]+b[2]+b[3])

	b = bands(5, 0.5)
	check(5, 0.5, 0.001, 2, 3, b[2])
	check(5, 0.5, b[2]+0.00001, 2, 4, b[2]+b[3])

	check(5, 0, 0.95, 0, 1, 1)
	check(5, 1, 0.95, 5, 6, 1)
}

func TestQuantileCI(t *testing.T) {
	// Shuffled 1..4 plus values that must be ignored.
	xs := []float64{3, nan, 1, 4, inf, 2}

	iv := QuantileCI(xs, 0.5, 0.001)
	if iv.Lo != 2 || iv.Hi != 3 || !aeq(iv.Confidence, 0.375) {
		t.Errorf("want [2,3]@0.375, got %+v", iv)
	}
	iv = QuantileCI(xs, 0, 0.001)
	if !math.IsInf(iv.Lo, -1) || iv.Hi != 1 {
		t.Errorf("want [-Inf,1], got %+v", iv)
	}
	iv = QuantileCI(xs, 1, 0.001)
	if iv.Lo != 4 || !math.IsInf(iv.Hi, 1) {
		t.Errorf("want [4,+Inf], got %+v", iv)
	}
	iv = QuantileCI(nil, 0.5, 0.95)
	if !math.IsInf(iv.Lo, -1) || !math.IsInf(iv.Hi, 1) || iv.Confidence != 1 {
		t.Errorf("want unbounded interval for empty input, got %+v", iv)
	}

	// A large sample takes the normal path and still brackets the
	// median.
	big := seq(1, 1001)
	iv = QuantileCI(big, 0.5, 0.95)
	if !(iv.Lo < 501 && 501 < iv.Hi) || iv.Confidence < 0.95 {
		t.Errorf("95%% CI of median of 1..1001 = %+v", iv)
	}
}

func BenchmarkQuantileCI(b *testing.B) {
	defer func(x int) { quantileCIApproxThreshold = x }(quantileCIApproxThreshold)
	for n := 5; n <= 100; n += 5 {
		for _, approx := range []bool{false, true} {
			if approx {
				quantileCIApproxThreshold = 0
			} else {
				quantileCIApproxThreshold = 1000
			}
			b.Run(fmt.Sprintf("n=%d/approx=%v", n, approx), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					quantileOrders(n, 0.5, 0.95)
				}
			})
		}
	}
}
