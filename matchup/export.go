// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matchup

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/pitchlab/matchup/statcast"
)

var eventHeader = []interface{}{
	"game_date", "pitcher", "batter", "player_name", "pitch_type",
	"p_throws", "stand", "plate_x", "plate_z", "description", "events", "metric",
}

// WriteWorkbook writes r as an Excel workbook to w. The workbook has a
// summary sheet, the pitch mix, and one sheet per filtered event set.
func WriteWorkbook(w io.Writer, r *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	const summary = "Summary"
	if err := f.SetSheetName(f.GetSheetName(0), summary); err != nil {
		return err
	}
	cfg := r.Config
	rows := [][]interface{}{
		{"pitcher", cfg.Pitcher.Name(), r.PitcherID},
		{"batter", cfg.Batter.Name(), r.BatterID},
		{"batter hand", cfg.BatterHand},
		{"pitcher hand", cfg.PitcherHand},
		{"pitch type", cfg.PitchType},
		{"metric", cfg.Metric},
		{"start", cfg.Start.Format(statcast.DateFormat)},
		{"end", cfg.End.Format(statcast.DateFormat)},
		{},
		{r.Batter.Title},
		{r.Mix.Title},
		{r.Pitcher.Title},
	}
	if err := writeRows(f, summary, rows); err != nil {
		return err
	}

	mix := [][]interface{}{{"pitch_type", "count", "percent"}}
	for _, s := range r.Mix.Types {
		mix = append(mix, []interface{}{s.PitchType, s.Count, s.Percent})
	}
	if err := newSheet(f, "Pitch mix", mix); err != nil {
		return err
	}

	sets := []struct {
		name   string
		events []statcast.PitchEvent
	}{
		{"Batter", r.BatterSet},
		{"Pitcher", r.PitcherSet},
		{"Pitcher " + cfg.PitchType, r.PitchTypeSet},
	}
	for _, set := range sets {
		if err := newSheet(f, set.name, eventRows(set.events)); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func newSheet(f *excelize.File, name string, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	return writeRows(f, name, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func eventRows(events []statcast.PitchEvent) [][]interface{} {
	rows := make([][]interface{}, 0, len(events)+1)
	rows = append(rows, eventHeader)
	for _, ev := range events {
		date := ""
		if !ev.GameDate.IsZero() {
			date = ev.GameDate.Format(statcast.DateFormat)
		}
		rows = append(rows, []interface{}{
			date, ev.Pitcher, ev.Batter, ev.PlayerName, ev.PitchType,
			ev.PThrows, ev.Stand, cell(ev.PlateX), cell(ev.PlateZ),
			ev.Description, ev.Events, cell(ev.Metric),
		})
	}
	return rows
}

// cell maps missing values to blank cells.
func cell(x float64) interface{} {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}
	return x
}
