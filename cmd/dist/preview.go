// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"math/rand/v2"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aclements/go-distplot/stats"
)

func newPreviewCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [file...]",
		Short: "Print a uniform random sample of the input",
		Long: `Print a uniform random sample of the input values, one per line, in
the order they were sampled. The same --seed always gives the same
sample.

Example: dist preview --size 20 --seed 7 data.txt`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			xs, err := readInputs(stdin, args)
			if err != nil {
				return err
			}
			return runPreview(stdout, cfg, xs)
		},
	}
	cmd.Flags().Int("size", 10, "number of values to sample")
	return cmd
}

func runPreview(w io.Writer, cfg *config, xs []float64) error {
	sample := stats.ReservoirSample(xs, cfg.Size, cfg.rand())
	log.WithFields(log.Fields{"read": len(xs), "sampled": len(sample), "seed": cfg.Seed}).Info("sampled input")

	bw := bufio.NewWriter(w)
	for _, x := range sample {
		bw.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// newRand returns the sampling source for seed.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d))
}
