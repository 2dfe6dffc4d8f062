// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matchup filters a pitcher's and a batter's pitch histories
// down to a single matchup and computes the density panels that
// compare them.
//
// A run has four stages. Both players are resolved to MLBAM ids, each
// player's pitches are retrieved for the configured dates, the two
// histories are filtered by handedness and pitch type, and the
// filtered sets are turned into a Report of three heatmap panels.
package matchup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pitchlab/matchup/statcast"
)

var (
	// ErrPlayerNotFound is returned when a player's name has no
	// match in the directory.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrNoMatchupData is returned when the pitcher or batter has
	// no pitches left after handedness filtering.
	ErrNoMatchupData = errors.New("no data available for the specified matchup")

	// ErrNoPitchTypeData is returned, wrapped in a *PitchTypeError,
	// when the pitcher threw none of the requested pitch type to
	// this kind of batter.
	ErrNoPitchTypeData = errors.New("no data available for pitch type")
)

// PitchTypeError reports that no pitches of PitchType remain.
type PitchTypeError struct {
	PitchType string
}

func (e *PitchTypeError) Error() string {
	return fmt.Sprintf("no data available for %s pitches", e.PitchType)
}

func (e *PitchTypeError) Unwrap() error {
	return ErrNoPitchTypeData
}

// Directory maps player names to register entries.
// *statcast.Register implements Directory.
type Directory interface {
	LookupPlayer(ctx context.Context, last, first string) ([]statcast.Person, error)
}

// Stats retrieves pitch histories. *statcast.Client implements Stats.
type Stats interface {
	PitcherEvents(ctx context.Context, id int, start, end time.Time) ([]statcast.PitchEvent, error)
	BatterEvents(ctx context.Context, id int, start, end time.Time) ([]statcast.PitchEvent, error)
}

// ResolvePlayer returns p's MLBAM id. If p already has an id it is
// returned directly. Otherwise the first directory entry matching p's
// name is used.
func ResolvePlayer(ctx context.Context, dir Directory, p Player) (int, error) {
	if p.ID != 0 {
		return p.ID, nil
	}
	people, err := dir.LookupPlayer(ctx, p.Last, p.First)
	if err != nil {
		return 0, err
	}
	if len(people) == 0 {
		return 0, fmt.Errorf("%s: %w", p.Name(), ErrPlayerNotFound)
	}
	return people[0].ID, nil
}

// Histories are the unfiltered pitch histories of a matchup's two
// players.
type Histories struct {
	PitcherID, BatterID int
	Pitcher, Batter     []statcast.PitchEvent
}

// Pipeline runs matchups against a player directory and a source of
// pitch histories.
type Pipeline struct {
	Directory Directory
	Stats     Stats

	// Logf, if non-nil, is called with progress messages.
	Logf func(format string, args ...interface{})
}

func (p *Pipeline) logf(format string, args ...interface{}) {
	if p.Logf != nil {
		p.Logf(format, args...)
	}
}

// Run resolves, retrieves, filters, and analyzes the matchup described
// by cfg. If either filtered set is empty, it returns ErrNoMatchupData
// or a *PitchTypeError and no Report.
func (p *Pipeline) Run(ctx context.Context, cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	h, err := p.Fetch(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return Analyze(cfg, h)
}

// Fetch resolves both players and retrieves their histories, pitcher
// first.
func (p *Pipeline) Fetch(ctx context.Context, cfg Config) (*Histories, error) {
	var h Histories
	var err error
	if h.PitcherID, err = ResolvePlayer(ctx, p.Directory, cfg.Pitcher); err != nil {
		return nil, fmt.Errorf("resolving pitcher: %w", err)
	}
	if h.BatterID, err = ResolvePlayer(ctx, p.Directory, cfg.Batter); err != nil {
		return nil, fmt.Errorf("resolving batter: %w", err)
	}
	p.logf("resolved %s to %d and %s to %d", cfg.Pitcher.Name(), h.PitcherID, cfg.Batter.Name(), h.BatterID)

	if h.Pitcher, err = p.Stats.PitcherEvents(ctx, h.PitcherID, cfg.Start, cfg.End); err != nil {
		return nil, err
	}
	p.logf("retrieved data for pitcher %s: %d pitches", cfg.Pitcher.Name(), len(h.Pitcher))
	if h.Batter, err = p.Stats.BatterEvents(ctx, h.BatterID, cfg.Start, cfg.End); err != nil {
		return nil, err
	}
	p.logf("retrieved data for batter %s: %d pitches", cfg.Batter.Name(), len(h.Batter))
	return &h, nil
}

// Report is a filtered, analyzed matchup.
type Report struct {
	Config              Config
	PitcherID, BatterID int

	// PitcherSet is the pitcher's history restricted to batters
	// standing like this batter. PitchTypeSet further restricts it
	// to the configured pitch type.
	PitcherSet   []statcast.PitchEvent
	PitchTypeSet []statcast.PitchEvent

	// BatterSet is the batter's history against this pitch type
	// from pitchers throwing with this hand.
	BatterSet []statcast.PitchEvent

	// Batter is the batter's metric-weighted heatmap, Mix is the
	// pitcher's pitch mix, and Pitcher is the pitcher's
	// metric-weighted heatmap for the pitch type.
	Batter  HeatmapPanel
	Mix     MixPanel
	Pitcher HeatmapPanel
}

// Analyze filters h according to cfg and computes the three panels.
func Analyze(cfg Config, h *Histories) (*Report, error) {
	r := &Report{
		Config:     cfg,
		PitcherID:  h.PitcherID,
		BatterID:   h.BatterID,
		PitcherSet: FilterPitcher(h.Pitcher, cfg.BatterHand),
		BatterSet:  FilterBatter(h.Batter, cfg.PitchType, cfg.PitcherHand),
	}
	if len(r.PitcherSet) == 0 || len(r.BatterSet) == 0 {
		return nil, ErrNoMatchupData
	}
	r.PitchTypeSet = FilterPitchType(r.PitcherSet, cfg.PitchType)
	if len(r.PitchTypeSet) == 0 {
		return nil, &PitchTypeError{cfg.PitchType}
	}

	metric := MetricLabel(cfg.Metric)
	r.Batter = heatmap(
		fmt.Sprintf("%s-Weighted KDE Heatmap for %s vs %sHP %s (%d pitches)",
			metric, cfg.Batter.Name(), cfg.PitcherHand, cfg.PitchType, len(r.BatterSet)),
		cfg.Metric, r.BatterSet)
	r.Mix = pitchMix(
		fmt.Sprintf("Pitch Density Heatmap for %s vs %sHB", cfg.Pitcher.Name(), cfg.BatterHand),
		r.PitcherSet)
	r.Pitcher = heatmap(
		fmt.Sprintf("%s-Weighted KDE Heatmap for %s (%s) vs %sHB (%d pitches)",
			metric, cfg.Pitcher.Name(), cfg.PitchType, cfg.BatterHand, len(r.PitchTypeSet)),
		cfg.Metric, r.PitchTypeSet)
	return r, nil
}
