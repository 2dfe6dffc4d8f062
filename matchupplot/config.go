// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"golang.org/x/time/rate"

	"github.com/pitchlab/matchup/matchup"
	"github.com/pitchlab/matchup/statcast"
)

// envPrefix prefixes environment variables that override the config
// file, such as MATCHUP_PITCHER or MATCHUP_PT.
const envPrefix = "MATCHUP_"

// settings is the command's configuration after layering the config
// file, the environment, and explicitly set flags.
type settings struct {
	Pitcher   string `koanf:"pitcher"`
	Batter    string `koanf:"batter"`
	PitcherID int    `koanf:"pitcher_id"`
	BatterID  int    `koanf:"batter_id"`
	BHand     string `koanf:"bhand"`
	PHand     string `koanf:"phand"`
	PitchType string `koanf:"pt"`
	Metric    string `koanf:"metric"`

	// Start and End are dates in statcast.DateFormat.
	Start string `koanf:"start"`
	End   string `koanf:"end"`

	SavantURL   string `koanf:"savant_url"`
	RegisterURL string `koanf:"register_url"`

	// Rate is the maximum number of requests per second to
	// either service.
	Rate float64 `koanf:"rate"`
}

func defaultSettings() settings {
	return settings{
		Metric:      statcast.DefaultMetric,
		SavantURL:   statcast.DefaultSavantURL,
		RegisterURL: statcast.DefaultRegisterURL,
		Rate:        1,
	}
}

// flagKey returns the settings key set by the named flag, or "" if
// the flag is not a setting.
func flagKey(name string) string {
	switch name {
	case "pitcher", "batter", "pitcher-id", "batter-id", "bhand", "phand", "pt", "metric", "start", "end":
		return strings.ReplaceAll(name, "-", "_")
	}
	return ""
}

// loadSettings layers the defaults, the YAML file at path (if any),
// MATCHUP_* environment variables, and flags, in increasing order of
// precedence. flags maps settings keys to flag values.
func loadSettings(path string, flags map[string]string) (*settings, error) {
	k := koanf.New(".")
	if path == "" {
		path = os.Getenv(envPrefix + "CONFIG")
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	// MATCHUP_PITCHER_ID -> pitcher_id.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	for key, val := range flags {
		if err := k.Set(key, val); err != nil {
			return nil, err
		}
	}

	s := defaultSettings()
	if err := k.UnmarshalWithConf("", &s, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}
	return &s, nil
}

// config returns the matchup described by s. Dates default to
// matchup.DefaultStart through now.
func (s *settings) config(now time.Time) (matchup.Config, error) {
	cfg := matchup.DefaultConfig(now)
	cfg.Pitcher = matchup.ParseName(s.Pitcher)
	cfg.Pitcher.ID = s.PitcherID
	cfg.Batter = matchup.ParseName(s.Batter)
	cfg.Batter.ID = s.BatterID
	cfg.BatterHand = strings.ToUpper(s.BHand)
	cfg.PitcherHand = strings.ToUpper(s.PHand)
	cfg.PitchType = strings.ToUpper(s.PitchType)
	if s.Metric != "" {
		cfg.Metric = s.Metric
	}
	for _, d := range []struct {
		val string
		dst *time.Time
	}{{s.Start, &cfg.Start}, {s.End, &cfg.End}} {
		if d.val == "" {
			continue
		}
		t, err := time.Parse(statcast.DateFormat, d.val)
		if err != nil {
			return cfg, fmt.Errorf("bad date %q: want YYYY-MM-DD", d.val)
		}
		*d.dst = t
	}
	return cfg, nil
}

func (s *settings) limiter() *rate.Limiter {
	if s.Rate <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(s.Rate), 1)
}

// client returns a Savant client decoding metric.
func (s *settings) client(metric string) *statcast.Client {
	return &statcast.Client{
		BaseURL: s.SavantURL,
		Limiter: s.limiter(),
		Metric:  metric,
	}
}

// register returns a player register client. The register's shards
// are static files, so they are fetched without rate limiting.
func (s *settings) register() *statcast.Register {
	return &statcast.Register{BaseURL: s.RegisterURL}
}
