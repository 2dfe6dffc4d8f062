// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statcast

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const savantHeader = "\ufeffpitch_type,game_date,release_speed,player_name,batter,pitcher,events,description,stand,p_throws,plate_x,plate_z,estimated_woba_using_speedangle,launch_speed\n"

func TestParse(t *testing.T) {
	input := savantHeader +
		`FF,2025-04-02,95.1,"Cole, Gerrit",592450,543037,,called_strike,R,R,0.12,2.51,,` + "\n" +
		`SL,2025-04-02,86.0,"Cole, Gerrit",592450,543037,single,hit_into_play,R,R,-0.55,1.98,0.871,101.2` + "\n" +
		`CH,2025-04-02,88.4,"Cole, Gerrit",605141,543037,,ball,L,R,,,,` + "\n"

	events, err := Parse(strings.NewReader(input), "")
	require.NoError(t, err)
	require.Len(t, events, 3)

	ff := events[0]
	assert.Equal(t, "FF", ff.PitchType)
	assert.Equal(t, time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), ff.GameDate)
	assert.Equal(t, "Cole, Gerrit", ff.PlayerName)
	assert.Equal(t, 592450, ff.Batter)
	assert.Equal(t, 543037, ff.Pitcher)
	assert.Equal(t, "R", ff.Stand)
	assert.Equal(t, "R", ff.PThrows)
	assert.InDelta(t, 0.12, ff.PlateX, 1e-9)
	assert.InDelta(t, 2.51, ff.PlateZ, 1e-9)
	assert.True(t, ff.HasLocation())
	assert.False(t, ff.HasMetric(), "called strike has no xwOBA")

	sl := events[1]
	assert.Equal(t, "single", sl.Events)
	assert.InDelta(t, 0.871, sl.Metric, 1e-9)
	assert.True(t, sl.HasMetric())

	ch := events[2]
	assert.Equal(t, "L", ch.Stand)
	assert.True(t, math.IsNaN(ch.PlateX))
	assert.False(t, ch.HasLocation())
}

func TestParseMetricColumn(t *testing.T) {
	input := savantHeader +
		`SL,2025-04-02,86.0,"Cole, Gerrit",592450,543037,single,hit_into_play,R,R,-0.55,1.98,0.871,101.2` + "\n"

	events, err := Parse(strings.NewReader(input), "launch_speed")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.InDelta(t, 101.2, events[0].Metric, 1e-9)
}

func TestParseEmpty(t *testing.T) {
	events, err := Parse(strings.NewReader(""), "")
	require.NoError(t, err)
	assert.Empty(t, events)

	events, err = Parse(strings.NewReader(savantHeader), "")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestParseMissingColumn(t *testing.T) {
	for _, test := range []struct {
		input  string
		metric string
		want   string
	}{
		{"pitch_type,plate_x,plate_z,stand\nFF,0,2,R\n", "", "p_throws"},
		{"pitch_type,plate_x,plate_z,stand,p_throws\nFF,0,2,R,R\n", "", DefaultMetric},
		{savantHeader, "woba_value", "woba_value"},
	} {
		_, err := Parse(strings.NewReader(test.input), test.metric)
		var merr *MissingColumnError
		if !errors.As(err, &merr) {
			t.Errorf("Parse(%q): want MissingColumnError, got %v", test.input, err)
			continue
		}
		if merr.Column != test.want {
			t.Errorf("Parse(%q): missing column %q, want %q", test.input, merr.Column, test.want)
		}
	}
}

func TestParseNumbers(t *testing.T) {
	for _, test := range []struct {
		in   string
		want float64
	}{
		{"1.5", 1.5},
		{"-0.83", -0.83},
		{"", math.NaN()},
		{"null", math.NaN()},
		{"NA", math.NaN()},
		{"junk", math.NaN()},
	} {
		got := parseFloat(test.in)
		if math.IsNaN(test.want) {
			if !math.IsNaN(got) {
				t.Errorf("parseFloat(%q) = %v, want NaN", test.in, got)
			}
		} else if got != test.want {
			t.Errorf("parseFloat(%q) = %v, want %v", test.in, got, test.want)
		}
	}

	for _, test := range []struct {
		in   string
		want int
	}{
		{"543037", 543037},
		{"543037.0", 543037},
		{"", 0},
		{"x", 0},
	} {
		if got := parseInt(test.in); got != test.want {
			t.Errorf("parseInt(%q) = %d, want %d", test.in, got, test.want)
		}
	}
}
