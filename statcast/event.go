// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package statcast reads pitch-level Statcast records from Baseball
// Savant and resolves player names through the Chadwick Bureau
// person register.
//
// Savant's search endpoint returns one CSV row per pitch. Only the
// columns needed to locate a pitch and weight it by an outcome metric
// are decoded; the rest are ignored.
package statcast

import (
	"math"
	"time"
)

// Handedness codes as they appear in the stand and p_throws columns.
const (
	Left   = "L"
	Right  = "R"
	Switch = "S"
)

// DefaultMetric is the outcome-quality column used to weight pitch
// locations when no other column is requested.
const DefaultMetric = "estimated_woba_using_speedangle"

// PitchEvent is a single pitch (a single row of a Savant search).
type PitchEvent struct {
	// PitchType is the Statcast pitch classification, such as
	// "FF" or "SL". It may be empty for unclassified pitches.
	PitchType string

	// GameDate is the date of the game the pitch was thrown in.
	GameDate time.Time

	// Pitcher and Batter are the MLBAM ids of the two players.
	Pitcher, Batter int

	// PlayerName is the name Savant reports for the row's subject
	// player.
	PlayerName string

	// PlateX and PlateZ give the position of the ball as it
	// crosses the front of home plate, in feet. PlateX is
	// horizontal from the catcher's view and PlateZ is the height
	// above the ground. Either is NaN if Savant has no tracking
	// data for the pitch.
	PlateX, PlateZ float64

	// Stand is the side of the plate the batter stood on and
	// PThrows is the pitcher's throwing arm, both Left or Right.
	Stand, PThrows string

	// Description and Events describe the pitch result and the
	// plate appearance result, if this pitch ended it.
	Description, Events string

	// Metric is the value of the outcome-quality column the
	// records were decoded with. It is NaN when the cell is
	// empty, which for expected-value metrics means the pitch
	// was not put in play.
	Metric float64
}

// HasLocation reports whether e has plate crossing coordinates.
func (e *PitchEvent) HasLocation() bool {
	return !math.IsNaN(e.PlateX) && !math.IsNaN(e.PlateZ) &&
		!math.IsInf(e.PlateX, 0) && !math.IsInf(e.PlateZ, 0)
}

// HasMetric reports whether e carries a usable outcome metric.
func (e *PitchEvent) HasMetric() bool {
	return !math.IsNaN(e.Metric) && !math.IsInf(e.Metric, 0)
}

// Person is one row of the Chadwick person register.
type Person struct {
	// ID is the MLBAM id, the key used by Savant.
	ID int

	First, Last string

	// FirstSeason and LastSeason are the first and last MLB
	// seasons the person played, or 0 if unknown.
	FirstSeason, LastSeason int
}
