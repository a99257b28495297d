// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A Method names a family of value transforms.
type Method int

const (
	MethodLog Method = iota
	MethodSqrt
	MethodBoxCox
	MethodYeoJohnson
	MethodQuantileUniform
	MethodQuantileNormal
)

var methodNames = [...]string{
	MethodLog:             "log",
	MethodSqrt:            "sqrt",
	MethodBoxCox:          "box_cox",
	MethodYeoJohnson:      "yeo_johnson",
	MethodQuantileUniform: "quantile_uniform",
	MethodQuantileNormal:  "quantile_normal",
}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// Methods returns all transform methods.
func Methods() []Method {
	ms := make([]Method, len(methodNames))
	for i := range ms {
		ms[i] = Method(i)
	}
	return ms
}

// ParseMethod returns the Method whose String is name.
func ParseMethod(name string) (Method, error) {
	for i, n := range methodNames {
		if n == name {
			return Method(i), nil
		}
	}
	return 0, errors.Errorf("unknown transform method %q", name)
}

// A Transform maps a sample to a transformed sample. Values outside a
// transform's domain are silently dropped, so the result may be
// shorter than the input. Transforms never produce NaN or ±Inf.
//
// The implementations are Log, Sqrt, BoxCox, YeoJohnson,
// QuantileUniform, and QuantileNormal. No other types may implement
// Transform.
type Transform interface {
	// Method returns the method of this transform.
	Method() Method

	// Apply returns the transformed values of xs.
	Apply(xs []float64) []float64

	isTransform()
}

// DefaultTransform returns the transform for m with its default
// parameters: natural log with no offset, square root with no offset,
// Box-Cox with λ=0, Yeo-Johnson with λ=1, and quantile transforms
// ranked against up to DefaultSampleForRanks values.
func DefaultTransform(m Method) Transform {
	switch m {
	case MethodLog:
		return Log{}
	case MethodSqrt:
		return Sqrt{}
	case MethodBoxCox:
		return BoxCox{}
	case MethodYeoJohnson:
		return YeoJohnson{Lambda: 1}
	case MethodQuantileUniform:
		return QuantileUniform{SampleForRanks: DefaultSampleForRanks}
	case MethodQuantileNormal:
		return QuantileNormal{SampleForRanks: DefaultSampleForRanks}
	}
	panic(fmt.Sprintf("unknown transform method %v", m))
}

// ApplyTransform returns t applied to xs.
func ApplyTransform(xs []float64, t Transform) []float64 {
	switch t := t.(type) {
	case Log:
		return t.Apply(xs)
	case Sqrt:
		return t.Apply(xs)
	case BoxCox:
		return t.Apply(xs)
	case YeoJohnson:
		return t.Apply(xs)
	case QuantileUniform:
		return t.Apply(xs)
	case QuantileNormal:
		return t.Apply(xs)
	}
	panic(fmt.Sprintf("unknown transform %T", t))
}

// mapFinite applies f to each x in xs and keeps the results for which
// ok is true and the value is finite.
func mapFinite(xs []float64, f func(x float64) (y float64, ok bool)) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if y, ok := f(x); ok && isFinite(y) {
			out = append(out, y)
		}
	}
	return out
}

// lambdaEpsilon is the magnitude below which a power-transform
// parameter is treated as exactly zero.
const lambdaEpsilon = 1e-12

// A LogBase is the base of a Log transform.
type LogBase int

const (
	LogE LogBase = iota
	Log10
	Log2
)

func (b LogBase) String() string {
	switch b {
	case LogE:
		return "e"
	case Log10:
		return "10"
	case Log2:
		return "2"
	}
	return fmt.Sprintf("LogBase(%d)", int(b))
}

// ParseLogBase parses "e", "10", or "2".
func ParseLogBase(s string) (LogBase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "e", "ln", "":
		return LogE, nil
	case "10":
		return Log10, nil
	case "2":
		return Log2, nil
	}
	return 0, errors.Errorf("unsupported log base %q (want e, 10, or 2)", s)
}

func (b LogBase) log(x float64) float64 {
	switch b {
	case Log10:
		return math.Log10(x)
	case Log2:
		return math.Log2(x)
	}
	return math.Log(x)
}

// Log transforms x to log_Base(x + Offset). Values with x+Offset <= 0
// are dropped.
type Log struct {
	Base   LogBase
	Offset float64
}

func (Log) Method() Method { return MethodLog }
func (Log) isTransform()   {}

func (t Log) Apply(xs []float64) []float64 {
	return mapFinite(xs, func(x float64) (float64, bool) {
		v := x + t.Offset
		return t.Base.log(v), v > 0
	})
}

// Sqrt transforms x to sqrt(x + Offset). Values with x+Offset < 0 are
// dropped.
type Sqrt struct {
	Offset float64
}

func (Sqrt) Method() Method { return MethodSqrt }
func (Sqrt) isTransform()   {}

func (t Sqrt) Apply(xs []float64) []float64 {
	return mapFinite(xs, func(x float64) (float64, bool) {
		v := x + t.Offset
		return math.Sqrt(v), v >= 0
	})
}

// BoxCox is the Box-Cox power transform with parameter Lambda:
//
//	(x^λ - 1) / λ  if λ ≠ 0
//	ln(x)          if λ = 0
//
// Box-Cox is only defined for positive x; other values are dropped.
// Lambda is never estimated from the data.
//
// Box, George E. P.; Cox, D. R. (1964). "An analysis of
// transformations". Journal of the Royal Statistical Society, Series
// B 26 (2): 211–252.
type BoxCox struct {
	Lambda float64
}

func (BoxCox) Method() Method { return MethodBoxCox }
func (BoxCox) isTransform()   {}

func (t BoxCox) Apply(xs []float64) []float64 {
	lambda := t.Lambda
	return mapFinite(xs, func(x float64) (float64, bool) {
		if x <= 0 {
			return 0, false
		}
		if math.Abs(lambda) < lambdaEpsilon {
			return math.Log(x), true
		}
		return (math.Pow(x, lambda) - 1) / lambda, true
	})
}

// YeoJohnson is the Yeo-Johnson power transform with parameter
// Lambda. It extends Box-Cox to zero and negative values:
//
//	((x+1)^λ - 1) / λ              if x >= 0, λ ≠ 0
//	ln(x+1)                        if x >= 0, λ = 0
//	-((1-x)^(2-λ) - 1) / (2-λ)     if x < 0, λ ≠ 2
//	-ln(1-x)                       if x < 0, λ = 2
//
// The zero value has λ=0; DefaultTransform(MethodYeoJohnson) has λ=1,
// which is the identity.
//
// Yeo, In-Kwon; Johnson, Richard A. (2000). "A new family of power
// transformations to improve normality or symmetry". Biometrika 87
// (4): 954–959.
type YeoJohnson struct {
	Lambda float64
}

func (YeoJohnson) Method() Method { return MethodYeoJohnson }
func (YeoJohnson) isTransform()   {}

func (t YeoJohnson) Apply(xs []float64) []float64 {
	lambda := t.Lambda
	return mapFinite(xs, func(y float64) (float64, bool) {
		if y >= 0 {
			if math.Abs(lambda) < lambdaEpsilon {
				return math.Log1p(y), true
			}
			return (math.Pow(y+1, lambda) - 1) / lambda, true
		}
		u := 1 - y
		d := 2 - lambda
		if math.Abs(d) < lambdaEpsilon {
			return -math.Log(u), true
		}
		return -(math.Pow(u, d) - 1) / d, true
	})
}

// ParseLambda parses a power-transform parameter. "auto" is accepted
// and means 0, since the parameter is never estimated from data.
func ParseLambda(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "auto") {
		return 0, nil
	}
	lambda, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid lambda %q", s)
	}
	if !isFinite(lambda) {
		return 0, errors.Errorf("lambda must be finite, got %q", s)
	}
	return lambda, nil
}
