// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statcast

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

// requiredCols are the columns every Savant search result must have.
// The metric column is required in addition to these.
var requiredCols = []string{"pitch_type", "plate_x", "plate_z", "stand", "p_throws"}

// A MissingColumnError reports a search result that lacks a column
// needed to analyze pitch locations.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("statcast: search result has no %q column", e.Column)
}

// Parse decodes a Savant CSV search result from r. metric names the
// outcome-quality column to decode into PitchEvent.Metric; if it is
// "", DefaultMetric is used.
//
// An empty input yields no events and no error, since Savant answers
// a search with no matching pitches with an empty body.
func Parse(r io.Reader, metric string) ([]PitchEvent, error) {
	if metric == "" {
		metric = DefaultMetric
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return []PitchEvent{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("statcast: reading header: %w", err)
	}

	// Index the header. Savant prefixes the file with a UTF-8
	// byte order mark.
	cols := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		cols[strings.TrimSpace(name)] = i
	}
	for _, col := range append(requiredCols, metric) {
		if _, ok := cols[col]; !ok {
			return nil, &MissingColumnError{col}
		}
	}

	field := func(rec []string, col string) string {
		i, ok := cols[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	events := []PitchEvent{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) && perr.Err == csv.ErrFieldCount {
				continue
			}
			return nil, fmt.Errorf("statcast: %w", err)
		}

		e := PitchEvent{
			PitchType:   field(rec, "pitch_type"),
			PlayerName:  field(rec, "player_name"),
			PlateX:      parseFloat(field(rec, "plate_x")),
			PlateZ:      parseFloat(field(rec, "plate_z")),
			Stand:       field(rec, "stand"),
			PThrows:     field(rec, "p_throws"),
			Description: field(rec, "description"),
			Events:      field(rec, "events"),
			Metric:      parseFloat(field(rec, metric)),
			Pitcher:     parseInt(field(rec, "pitcher")),
			Batter:      parseInt(field(rec, "batter")),
		}
		if d := field(rec, "game_date"); d != "" {
			e.GameDate, _ = time.Parse(DateFormat, d)
		}
		events = append(events, e)
	}
	return events, nil
}

// parseFloat parses a numeric cell. Empty cells and Savant's null
// spellings yield NaN.
func parseFloat(s string) float64 {
	switch s {
	case "", "null", "NA", "NaN":
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func parseInt(s string) int {
	// Savant sometimes writes ids as floats ("123456.0").
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
