// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-distplot/stats"
)

// execute runs dist with args on stdin and returns its output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestReadInput(t *testing.T) {
	xs, err := readInput(strings.NewReader("1\n\n 2.5 \nNaN\n-Inf\n1e3\n"), "test")
	require.NoError(t, err)
	require.Len(t, xs, 5)
	assert.Equal(t, []float64{1, 2.5}, xs[:2])
	assert.True(t, math.IsNaN(xs[2]))
	assert.True(t, math.IsInf(xs[3], -1))
	assert.Equal(t, 1000.0, xs[4])

	_, err = readInput(strings.NewReader("1\nabc\n"), "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test:2")
}

func TestReadInputs(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(a, []byte("1\n2\n"), 0o644))

	xs, err := readInputs(strings.NewReader("3\n"), []string{a, "-"})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, xs)

	_, err = readInputs(nil, []string{filepath.Join(dir, "missing")})
	assert.Error(t, err)
}

func TestDistText(t *testing.T) {
	out, err := execute(t, "1\n2\n3\n4\n5\n")
	require.NoError(t, err)
	assert.Contains(t, out, "N 5  mean 3  std dev 1.41421  min 1  max 5")
	assert.Contains(t, out, "  median 3\n")
	assert.Contains(t, out, "95% CI for median [-Inf, 5] (achieved 96.9%)")
	assert.Contains(t, out, "5 bins over [1, 5]")
	assert.Contains(t, out, "*")
}

func TestDistJSON(t *testing.T) {
	out, err := execute(t, "1\n10\n100\n-5\nNaN\n", "--format", "json", "--transform", "log", "--base", "10", "--bins", "2", "--kde")
	require.NoError(t, err)

	var rep struct {
		Histogram   []stats.Bin   `json:"histogram"`
		NormalCurve []stats.Point `json:"normalCurve"`
		Stats       stats.Summary `json:"stats"`
		Domain      stats.Domain  `json:"domain"`
		Transform   string        `json:"transform"`
		Dropped     int           `json:"dropped"`
		KDE         []stats.Point `json:"kde"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "log", rep.Transform)
	assert.Equal(t, 2, rep.Dropped)
	assert.Equal(t, 3, rep.Stats.Count)
	assert.InDelta(t, 1, rep.Stats.Mean, 1e-12)
	assert.Len(t, rep.Histogram, 2)
	assert.Equal(t, stats.Domain{Min: 0, Max: 2}, rep.Domain)
	assert.Len(t, rep.NormalCurve, stats.DefaultCurvePoints+1)
	assert.Len(t, rep.KDE, stats.DefaultCurvePoints+1)
}

func TestDistPoints(t *testing.T) {
	out, err := execute(t, "1\n2\n3\n", "--format", "json", "--points", "10")
	require.NoError(t, err)
	var rep report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Len(t, rep.NormalCurve, 11)
}

func TestDistTextLarge(t *testing.T) {
	var in strings.Builder
	for i := 1; i <= 1500; i++ {
		fmt.Fprintf(&in, "%d\n", i)
	}
	in.WriteString("NaN\n")
	out, err := execute(t, in.String(), "--transform", "sqrt")
	require.NoError(t, err)
	assert.Contains(t, out, "N 1,500  mean")
	assert.Contains(t, out, "transform sqrt  dropped 1\n")
}

func TestDistEmpty(t *testing.T) {
	_, err := execute(t, "NaN\nInf\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no finite values")

	// Everything dropped by the transform.
	_, err = execute(t, "-1\n-2\n", "--transform", "box_cox")
	assert.Error(t, err)
}

func TestDistBadFlags(t *testing.T) {
	for _, args := range [][]string{
		{"--format", "xml"},
		{"--transform", "logit"},
		{"--transform", "log", "--base", "3"},
		{"--transform", "box_cox", "--lambda", "x"},
		{"--bins", "-1"},
		{"--log-level", "loud"},
	} {
		_, err := execute(t, "1\n2\n", args...)
		assert.Error(t, err, "%v", args)
	}
}

func TestConfigTransform(t *testing.T) {
	check := func(cfg config, want stats.Transform) {
		t.Helper()
		got, err := cfg.transform()
		require.NoError(t, err)
		if q, ok := got.(stats.QuantileNormal); ok {
			assert.NotNil(t, q.Rand)
			q.Rand = nil
			got = q
		}
		assert.Equal(t, want, got)
	}
	check(config{}, nil)
	check(config{Transform: "none"}, nil)
	check(config{Transform: "box_cox"}, stats.BoxCox{Lambda: 0})
	check(config{Transform: "box_cox", Lambda: "auto"}, stats.BoxCox{Lambda: 0})
	check(config{Transform: "box_cox", Lambda: "0.5"}, stats.BoxCox{Lambda: 0.5})
	check(config{Transform: "yeo_johnson"}, stats.YeoJohnson{Lambda: 1})
	check(config{Transform: "sqrt", Offset: 2}, stats.Sqrt{Offset: 2})
	check(config{Transform: "log", Base: "2", Offset: 1}, stats.Log{Base: stats.Log2, Offset: 1})
	check(config{Transform: "quantile_normal", SampleRanks: 100}, stats.QuantileNormal{SampleForRanks: 100})
}

func TestConfigSources(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "dist.toml")
	require.NoError(t, os.WriteFile(file, []byte("bins = 3\nformat = \"json\"\ntransform = \"sqrt\"\n"), 0o644))

	// The file sets the format and bins.
	out, err := execute(t, "1\n4\n9\n16\n", "--config", file)
	require.NoError(t, err)
	var rep report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Len(t, rep.Histogram, 3)
	assert.Equal(t, "sqrt", rep.Transform)

	// The environment overrides the file, and flags override both.
	t.Setenv("DIST_BINS", "4")
	out, err = execute(t, "1\n4\n9\n16\n", "--config", file)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Len(t, rep.Histogram, 4)

	out, err = execute(t, "1\n4\n9\n16\n", "--config", file, "--bins", "2")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Len(t, rep.Histogram, 2)

	_, err = execute(t, "1\n", "--config", filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestPreview(t *testing.T) {
	input := strings.Repeat("1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n", 10)
	a, err := execute(t, input, "preview", "--size", "5", "--seed", "3")
	require.NoError(t, err)
	b, err := execute(t, input, "preview", "--size", "5", "--seed", "3")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	lines := strings.Split(strings.TrimSpace(a), "\n")
	assert.Len(t, lines, 5)

	out, err := execute(t, "1\n2\n", "preview", "--size", "5")
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)
}
