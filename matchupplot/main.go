// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command matchupplot plots where a pitcher throws a pitch type and
// where a batter does damage against it.
//
// matchupplot looks up both players in the Chadwick Bureau register,
// downloads their Statcast pitch histories from Baseball Savant, and
// draws three heatmaps side by side: the batter's metric-weighted
// locations against the pitch type from pitchers of the given hand,
// the pitcher's overall pitch mix against batters standing like this
// batter, and the pitcher's metric-weighted locations for the pitch
// type.
//
// For example,
//
//	matchupplot -pitcher "Tarik Skubal" -batter "Aaron Judge" -bhand R -phand L -pt CH
//
// Settings may also come from a YAML file given by -config (or
// $MATCHUP_CONFIG) and from MATCHUP_* environment variables, which
// use the flag names with dashes replaced by underscores, for example
// MATCHUP_PITCHER_ID. Flags take precedence over the environment,
// which takes precedence over the file.
//
// By default the SVG figure is opened in a viewer when standard
// output is a terminal and written to standard output otherwise.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/pitchlab/matchup/matchup"
	"github.com/pitchlab/matchup/render"
)

func main() {
	log.SetPrefix("matchupplot: ")
	log.SetFlags(0)

	var (
		flagConfig = flag.String("config", "", "read settings from YAML `file`")
		flagOut    = flag.String("o", "", "write SVG figure to `file` (\"-\" for stdout)")
		flagPNG    = flag.String("png", "", "also write a PNG figure to `file`")
		flagXLSX   = flag.String("xlsx", "", "also write the filtered pitches to an Excel `file`")
		flagView   = flag.String("view", defaultViewer(), "open the figure with `command`")
		flagQuiet  = flag.Bool("q", false, "don't print progress messages")
	)
	flag.String("pitcher", "", "pitcher's `name`, as \"First Last\"")
	flag.String("batter", "", "batter's `name`, as \"First Last\"")
	flag.Int("pitcher-id", 0, "pitcher's MLBAM `id` (skips name lookup)")
	flag.Int("batter-id", 0, "batter's MLBAM `id` (skips name lookup)")
	flag.String("bhand", "", "side the batter `hits` from: L, R, or S")
	flag.String("phand", "", "`arm` of the pitchers the batter faced: L or R")
	flag.String("pt", "", "Statcast pitch `type`, such as FF or SL")
	flag.String("metric", "", "Savant `column` that weights pitch locations (default estimated_woba_using_speedangle)")
	flag.String("start", "", "first game `date` to include (default "+matchup.DefaultStart.Format("2006-01-02")+")")
	flag.String("end", "", "last game `date` to include (default today)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	set := make(map[string]string)
	flag.Visit(func(f *flag.Flag) {
		if key := flagKey(f.Name); key != "" {
			set[key] = f.Value.String()
		}
	})
	s, err := loadSettings(*flagConfig, set)
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := s.config(time.Now())
	if err != nil {
		log.Fatal(err)
	}
	progress := log.New(os.Stderr, log.Prefix(), 0)
	if *flagQuiet {
		progress.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pl := &matchup.Pipeline{
		Directory: s.register(),
		Stats:     s.client(cfg.Metric),
		Logf:      progress.Printf,
	}
	report, err := pl.Run(ctx, cfg)
	var pte *matchup.PitchTypeError
	switch {
	case errors.Is(err, matchup.ErrNoMatchupData):
		fmt.Println("No data available for the specified matchup.")
		return
	case errors.As(err, &pte):
		fmt.Printf("No data available for %s pitches.\n", pte.PitchType)
		return
	case err != nil:
		log.Fatal(err)
	}
	progress.Printf("matchup: %s batter pitches, %s pitcher pitches, %s %s",
		humanize.Comma(int64(len(report.BatterSet))),
		humanize.Comma(int64(len(report.PitcherSet))),
		humanize.Comma(int64(len(report.PitchTypeSet))), cfg.PitchType)

	if *flagXLSX != "" {
		if err := writeFile(progress, *flagXLSX, func(w io.Writer) error {
			return matchup.WriteWorkbook(w, report)
		}); err != nil {
			log.Fatal(err)
		}
	}
	if *flagPNG != "" {
		if err := writeFile(progress, *flagPNG, func(w io.Writer) error {
			return render.PNG(w, report)
		}); err != nil {
			log.Fatal(err)
		}
	}
	if err := present(progress, report, *flagOut, *flagView); err != nil {
		log.Fatal(err)
	}
}
