// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matchup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	cfg := DefaultConfig(time.Date(2025, time.June, 15, 18, 30, 0, 0, time.UTC))
	cfg.Pitcher = Player{First: "Tarik", Last: "Skubal"}
	cfg.Batter = Player{First: "Aaron", Last: "Judge"}
	cfg.BatterHand = "R"
	cfg.PitcherHand = "L"
	cfg.PitchType = "CH"
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig(time.Date(2025, time.June, 15, 18, 30, 0, 0, time.UTC))
	assert.Equal(t, "estimated_woba_using_speedangle", cfg.Metric)
	assert.Equal(t, DefaultStart, cfg.Start)
	assert.Equal(t, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), cfg.End)
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	for _, test := range []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"bhand", func(c *Config) { c.BatterHand = "X" }, "BatterHand must be one of L R S"},
		{"phand", func(c *Config) { c.PitcherHand = "S" }, "PitcherHand must be one of L R"},
		{"pitch type", func(c *Config) { c.PitchType = "sl" }, `PitchType "sl" is not a pitch code`},
		{"no pitcher", func(c *Config) { c.Pitcher = Player{} }, "Pitcher.First is required"},
		{"metric", func(c *Config) { c.Metric = "" }, "Metric is required"},
		{"dates", func(c *Config) { c.End = c.Start.AddDate(0, 0, -1) }, "End must not be before Start"},
	} {
		t.Run(test.name, func(t *testing.T) {
			cfg := validConfig()
			test.modify(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.want)
		})
	}
}

func TestValidateID(t *testing.T) {
	cfg := validConfig()
	cfg.Pitcher = Player{ID: 669373}
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "#669373", cfg.Pitcher.Name())
}

func TestParseName(t *testing.T) {
	for _, test := range []struct {
		in   string
		want Player
	}{
		{"Aaron Judge", Player{First: "Aaron", Last: "Judge"}},
		{"  Elly De La Cruz ", Player{First: "Elly", Last: "De La Cruz"}},
		{"Ichiro", Player{Last: "Ichiro"}},
	} {
		assert.Equal(t, test.want, ParseName(test.in), test.in)
	}
}
