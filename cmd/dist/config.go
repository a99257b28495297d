// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aclements/go-distplot/stats"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// config holds the settings of one dist invocation.
type config struct {
	Bins        int
	Points      int
	Transform   string
	Lambda      string
	Base        string
	Offset      float64
	SampleRanks int
	Seed        uint64
	Format      string
	KDE         bool
	LogLevel    string

	// Size is the preview sample size.
	Size int
}

// loadConfig resolves cmd's settings from its flags, DIST_*
// environment variables, and the --config file, in that order of
// precedence. It also configures logging.
func loadConfig(cmd *cobra.Command) (*config, error) {
	v := viper.New()
	v.SetDefault("points", stats.DefaultCurvePoints)
	v.SetDefault("base", "e")
	v.SetDefault("sample-ranks", stats.DefaultSampleForRanks)
	v.SetDefault("seed", 1)
	v.SetDefault("format", formatText)
	v.SetDefault("log-level", "warn")
	v.SetDefault("size", 10)
	v.SetEnvPrefix("DIST")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, errors.Wrap(err, "binding flags")
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", file)
		}
	}

	cfg := &config{
		Bins:        v.GetInt("bins"),
		Points:      v.GetInt("points"),
		Transform:   v.GetString("transform"),
		Lambda:      v.GetString("lambda"),
		Base:        v.GetString("base"),
		Offset:      v.GetFloat64("offset"),
		SampleRanks: v.GetInt("sample-ranks"),
		Seed:        uint64(v.GetInt64("seed")),
		Format:      strings.ToLower(v.GetString("format")),
		KDE:         v.GetBool("kde"),
		LogLevel:    v.GetString("log-level"),
		Size:        v.GetInt("size"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}
	log.SetLevel(level)
	log.SetOutput(cmd.ErrOrStderr())
	if file := v.ConfigFileUsed(); file != "" {
		log.WithField("file", file).Debug("loaded config")
	}
	return cfg, nil
}

func (c *config) validate() error {
	switch {
	case c.Bins < 0:
		return errors.Errorf("bins must be >= 0, got %d", c.Bins)
	case c.Points < 0:
		return errors.Errorf("points must be >= 0, got %d", c.Points)
	case c.SampleRanks < 0:
		return errors.Errorf("sample-ranks must be >= 0, got %d", c.SampleRanks)
	case c.Size < 0:
		return errors.Errorf("size must be >= 0, got %d", c.Size)
	case c.Format != formatText && c.Format != formatJSON:
		return errors.Errorf("unknown format %q (want %s or %s)", c.Format, formatText, formatJSON)
	}
	if c.Points == 0 {
		c.Points = stats.DefaultCurvePoints
	}
	_, err := c.transform()
	return err
}

func (c *config) rand() stats.RandSource {
	return newRand(c.Seed)
}

// transform returns the transform selected by c, or nil if there is
// none.
func (c *config) transform() (stats.Transform, error) {
	name := strings.TrimSpace(c.Transform)
	if name == "" || name == "none" {
		return nil, nil
	}
	m, err := stats.ParseMethod(name)
	if err != nil {
		return nil, err
	}

	lambda := func() (float64, error) {
		if c.Lambda == "" {
			switch t := stats.DefaultTransform(m).(type) {
			case stats.BoxCox:
				return t.Lambda, nil
			case stats.YeoJohnson:
				return t.Lambda, nil
			}
		}
		return stats.ParseLambda(c.Lambda)
	}

	switch m {
	case stats.MethodLog:
		base, err := stats.ParseLogBase(c.Base)
		if err != nil {
			return nil, err
		}
		return stats.Log{Base: base, Offset: c.Offset}, nil
	case stats.MethodSqrt:
		return stats.Sqrt{Offset: c.Offset}, nil
	case stats.MethodBoxCox:
		l, err := lambda()
		return stats.BoxCox{Lambda: l}, err
	case stats.MethodYeoJohnson:
		l, err := lambda()
		return stats.YeoJohnson{Lambda: l}, err
	case stats.MethodQuantileUniform:
		return stats.QuantileUniform{SampleForRanks: c.SampleRanks, Rand: c.rand()}, nil
	case stats.MethodQuantileNormal:
		return stats.QuantileNormal{SampleForRanks: c.SampleRanks, Rand: c.rand()}, nil
	}
	return nil, errors.Errorf("unhandled transform %v", m)
}
