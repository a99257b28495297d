// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// DefaultSampleForRanks is the default size of the reference sample
// used to rank values in the quantile transforms.
const DefaultSampleForRanks = 200000

// quantileClamp keeps ranks away from 0 and 1 before they are mapped
// through NormInv.
const quantileClamp = 1e-12

// QuantileUniform maps each finite value to its empirical rank: the
// fraction of reference values less than or equal to it. The result
// lies in (0, 1]. Non-finite values are dropped.
//
// The reference is the finite values of the input itself. If there
// are more than SampleForRanks of them, the reference is instead a
// reservoir sample of SampleForRanks values drawn with Rand. This
// bounds the cost of ranking very large inputs at the price of some
// accuracy in the ranks.
//
// If SampleForRanks <= 0, DefaultSampleForRanks is used. If Rand is
// nil, a fixed-seed generator is used.
type QuantileUniform struct {
	SampleForRanks int
	Rand           RandSource
}

func (QuantileUniform) Method() Method { return MethodQuantileUniform }
func (QuantileUniform) isTransform()   {}

func (t QuantileUniform) Apply(xs []float64) []float64 {
	return quantileRanks(xs, t.SampleForRanks, t.Rand)
}

// QuantileNormal maps each finite value to the standard normal
// quantile of its empirical rank, producing approximately normally
// distributed output regardless of the input's shape. Ranks are
// computed as in QuantileUniform and clamped to [1e-12, 1-1e-12]
// before applying NormInv, so the largest value maps to about 7.03
// rather than +Inf.
type QuantileNormal struct {
	SampleForRanks int
	Rand           RandSource
}

func (QuantileNormal) Method() Method { return MethodQuantileNormal }
func (QuantileNormal) isTransform()   {}

func (t QuantileNormal) Apply(xs []float64) []float64 {
	ranks := quantileRanks(xs, t.SampleForRanks, t.Rand)
	for i, r := range ranks {
		ranks[i] = NormInv(math.Min(math.Max(r, quantileClamp), 1-quantileClamp))
	}
	return ranks
}

// quantileRanks returns the empirical rank of each finite value of xs
// within a reference sample of at most sampleForRanks of those
// values.
func quantileRanks(xs []float64, sampleForRanks int, rnd RandSource) []float64 {
	if sampleForRanks <= 0 {
		sampleForRanks = DefaultSampleForRanks
	}
	vals := finite(xs)
	if len(vals) == 0 {
		return vals
	}

	ref := vals
	if len(ref) > sampleForRanks {
		ref = ReservoirSample(vals, sampleForRanks, rnd)
	}
	s := newSortedSample(ref)

	n := float64(len(s.xs))
	for i, x := range vals {
		vals[i] = float64(s.rank(x)) / n
	}
	return vals
}
