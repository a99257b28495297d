// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist reads newline-separated numbers from files or stdin and
// describes their distribution: summary statistics, quartiles, and a
// histogram overlaid with a fitted normal curve. The values can first
// be passed through a normalizing transform.
//
// Usage:
//
//	dist [flags] [file...]
//	dist preview [flags] [file...]
//
// Every flag can also be set with a DIST_* environment variable (for
// example, DIST_TRANSFORM=box_cox) or in a TOML file given by
// --config. Flags take precedence over the environment, which takes
// precedence over the file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aclements/go-distplot/stats"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dist [file...]",
		Short: "Describe the distribution of a column of numbers",
		Long: `Describe the distribution of newline-separated numbers read from the
given files, or stdin if there are none.

Example: seq 1 1000 | dist --transform log --base 10 --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			xs, err := readInputs(stdin, args)
			if err != nil {
				return err
			}
			return runDist(stdout, cfg, xs)
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "TOML config file")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.Uint64("seed", 1, "random seed for sampling")

	f := cmd.Flags()
	f.Int("bins", 0, "histogram bin count (0 chooses one with the Freedman-Diaconis rule)")
	f.Int("points", stats.DefaultCurvePoints, "number of intervals to sample curves at")
	f.String("transform", "", "transform to apply first: "+methodList())
	f.String("lambda", "", "Box-Cox or Yeo-Johnson parameter, or \"auto\" (default 0 for box_cox, 1 for yeo_johnson)")
	f.String("base", "e", "log transform base (e, 10, or 2)")
	f.Float64("offset", 0, "offset added before log or sqrt transforms")
	f.Int("sample-ranks", stats.DefaultSampleForRanks, "reference sample size for quantile transforms")
	f.String("format", "text", "output format (text or json)")
	f.Bool("kde", false, "also estimate the density with a Gaussian KDE")

	cmd.AddCommand(newPreviewCmd(stdin, stdout))
	return cmd
}

func methodList() string {
	s := ""
	for i, m := range stats.Methods() {
		if i > 0 {
			s += ", "
		}
		s += m.String()
	}
	return s
}

// report is the JSON form of dist's output.
type report struct {
	stats.Distribution
	Transform string        `json:"transform,omitempty"`
	Dropped   int           `json:"dropped"`
	KDE       []stats.Point `json:"kde,omitempty"`
}

func runDist(w io.Writer, cfg *config, xs []float64) error {
	tr, err := cfg.transform()
	if err != nil {
		return err
	}

	rep := report{}
	vals := xs
	if tr != nil {
		vals = stats.ApplyTransform(xs, tr)
		rep.Transform = tr.Method().String()
	}
	rep.Distribution = stats.BuildDistribution(vals, cfg.Bins)
	rep.Dropped = len(xs) - rep.Summary.Count
	if cfg.Points != stats.DefaultCurvePoints {
		d := rep.Domain
		rep.NormalCurve = stats.NormalCurve(d.Min, d.Max, rep.Summary.Mean, rep.Summary.StdDev, cfg.Points)
	}

	log.WithFields(log.Fields{
		"read":      len(xs),
		"kept":      rep.Summary.Count,
		"dropped":   rep.Dropped,
		"transform": rep.Transform,
		"bins":      len(rep.Histogram),
	}).Info("computed distribution")

	if rep.Summary.Empty() {
		return errors.Errorf("no finite values to describe (%d values read)", len(xs))
	}

	var kde *stats.KDEDist
	if cfg.KDE {
		kde = stats.KDE{}.From(vals)
		rep.KDE = stats.Curve(kde, rep.Domain.Min, rep.Domain.Max, cfg.Points)
		log.WithField("bandwidth", kde.Bandwidth()).Debug("estimated KDE")
	}

	switch cfg.Format {
	case formatJSON:
		return writeJSON(w, rep)
	default:
		return writeText(w, rep, vals, kde)
	}
}
