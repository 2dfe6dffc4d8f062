// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matchup

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/pitchlab/matchup/statcast"
)

// DefaultStart is the first game date retrieved when none is given.
var DefaultStart = time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)

// Player names a player and, once resolved, carries their MLBAM id.
type Player struct {
	First string `validate:"required_without=ID"`
	Last  string `validate:"required_without=ID"`

	// ID is the player's MLBAM id. If it is non-zero, name
	// lookup is skipped.
	ID int `validate:"gte=0"`
}

// Name returns the player's full name, or their id if the name is
// unknown.
func (p Player) Name() string {
	name := strings.TrimSpace(p.First + " " + p.Last)
	if name == "" {
		return fmt.Sprintf("#%d", p.ID)
	}
	return name
}

// ParseName splits a full name at its first space into first and
// last names.
func ParseName(full string) Player {
	full = strings.TrimSpace(full)
	if i := strings.IndexByte(full, ' '); i >= 0 {
		return Player{First: full[:i], Last: strings.TrimSpace(full[i+1:])}
	}
	return Player{Last: full}
}

// Config is everything that determines a matchup report. A Config is
// a value: the pipeline never modifies it.
type Config struct {
	Pitcher Player
	Batter  Player

	// BatterHand is the side the batter hits from in this
	// matchup: statcast.Left, statcast.Right, or statcast.Switch.
	BatterHand string `validate:"oneof=L R S"`

	// PitcherHand is the throwing arm of the pitchers the batter's
	// history is restricted to.
	PitcherHand string `validate:"oneof=L R"`

	// PitchType is the Statcast pitch code to analyze, such as
	// "SL".
	PitchType string `validate:"pitchtype"`

	// Metric is the Savant column used to weight pitch locations.
	Metric string `validate:"required"`

	// Start and End bound the game dates retrieved, inclusive.
	Start time.Time `validate:"required"`
	End   time.Time `validate:"required,gtefield=Start"`
}

// DefaultConfig returns a Config with the default metric and a date
// range from DefaultStart through the date of now.
func DefaultConfig(now time.Time) Config {
	y, m, d := now.Date()
	return Config{
		Metric: statcast.DefaultMetric,
		Start:  DefaultStart,
		End:    time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}
}

var pitchTypeRe = regexp.MustCompile(`^[A-Z]{2,3}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("pitchtype", func(fl validator.FieldLevel) bool {
		return pitchTypeRe.MatchString(fl.Field().String())
	})
	return v
}

// Validate checks that c describes a complete matchup.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = describe(fe)
	}
	return fmt.Errorf("invalid matchup: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required", "required_without":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of %s, not %q", field, fe.Param(), fe.Value())
	case "pitchtype":
		return fmt.Sprintf("%s %q is not a pitch code like FF or SL", field, fe.Value())
	case "gtefield":
		return fmt.Sprintf("%s must not be before %s", field, fe.Param())
	}
	return fmt.Sprintf("%s fails %s", field, fe.Tag())
}
