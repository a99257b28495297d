// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math/rand/v2"

// A RandSource is a source of uniformly distributed random integers.
// *rand.Rand from math/rand/v2 implements RandSource.
type RandSource interface {
	// IntN returns a uniform random integer in [0, n). It panics
	// if n <= 0.
	IntN(n int) int
}

// defaultSeed seeds the source used when a caller does not supply
// one. Each call gets a fresh generator.
var defaultSeed = [2]uint64{0x9e3779b97f4a7c15, 0xbf58476d1ce4e5b9}

func newDefaultSource() RandSource {
	return rand.New(rand.NewPCG(defaultSeed[0], defaultSeed[1]))
}

// ReservoirSample returns a uniform random sample of min(k, len(xs))
// values from xs, drawn using Algorithm R. Each value of xs is
// included with probability k/len(xs). If len(xs) <= k, the result is
// a copy of xs. xs is not modified. If rnd is nil, ReservoirSample
// uses a new generator with a fixed seed.
//
// This is a single pass over xs using O(k) space, so it is suitable
// for bounding the cost of previewing very large columns.
//
// Vitter, Jeffrey S. (1985). "Random sampling with a reservoir". ACM
// Transactions on Mathematical Software 11 (1): 37–57.
func ReservoirSample(xs []float64, k int, rnd RandSource) []float64 {
	if k <= 0 {
		return []float64{}
	}
	if len(xs) <= k {
		return append([]float64(nil), xs...)
	}
	if rnd == nil {
		rnd = newDefaultSource()
	}

	sample := append([]float64(nil), xs[:k]...)
	for i := k; i < len(xs); i++ {
		if j := rnd.IntN(i + 1); j < k {
			sample[j] = xs[i]
		}
	}
	return sample
}
