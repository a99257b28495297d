// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// readInputs reads the values in each named file, or in stdin if
// there are no names. The name "-" also means stdin.
func readInputs(stdin io.Reader, names []string) ([]float64, error) {
	if len(names) == 0 {
		return readInput(stdin, "stdin")
	}
	var xs []float64
	for _, name := range names {
		if name == "-" {
			more, err := readInput(stdin, "stdin")
			if err != nil {
				return nil, err
			}
			xs = append(xs, more...)
			continue
		}
		f, err := os.Open(name)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		more, err := readInput(f, name)
		f.Close()
		if err != nil {
			return nil, err
		}
		xs = append(xs, more...)
	}
	return xs, nil
}

// readInput reads one number per line from r. Blank lines are
// skipped. NaN and ±Inf are accepted and left for the statistics to
// ignore.
func readInput(r io.Reader, name string) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", name, line)
		}
		xs = append(xs, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	log.WithFields(log.Fields{"input": name, "values": len(xs)}).Debug("read input")
	return xs, nil
}
