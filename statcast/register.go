// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statcast

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/time/rate"
)

// DefaultRegisterURL is the directory holding the Chadwick register's
// people-*.csv shards.
const DefaultRegisterURL = "https://raw.githubusercontent.com/chadwickbureau/register/master/data"

// registerShards are the suffixes of the register's people files.
const registerShards = "0123456789abcdef"

// Register looks up MLBAM ids in the Chadwick Bureau person register.
//
// The register is not cached: every lookup downloads the shards.
type Register struct {
	// BaseURL is the directory containing people-0.csv through
	// people-f.csv. If "", it defaults to DefaultRegisterURL.
	BaseURL string

	// HTTPClient is used to issue requests. If nil,
	// http.DefaultClient is used.
	HTTPClient *http.Client

	// Limiter, if non-nil, spaces out shard downloads.
	Limiter *rate.Limiter
}

// LookupPlayer returns the register entries whose last and first
// names match last and first, ignoring case and surrounding space.
// Entries without an MLBAM id are omitted. Matches are returned in
// register order; there may be none.
func (r *Register) LookupPlayer(ctx context.Context, last, first string) ([]Person, error) {
	base := r.BaseURL
	if base == "" {
		base = DefaultRegisterURL
	}
	base = strings.TrimSuffix(base, "/")

	people := []Person{}
	for _, shard := range registerShards {
		u := fmt.Sprintf("%s/people-%c.csv", base, shard)
		body, err := get(ctx, r.HTTPClient, r.Limiter, u)
		if err != nil {
			return nil, fmt.Errorf("looking up %s %s: %w", first, last, err)
		}
		ps, err := MatchPeople(body, last, first)
		body.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", u, err)
		}
		people = append(people, ps...)
	}
	return people, nil
}

// MatchPeople scans one register CSV file from rd and returns the
// entries matching last and first as described by LookupPlayer.
func MatchPeople(rd io.Reader, last, first string) ([]Person, error) {
	last, first = normName(last), normName(first)

	cr := csv.NewReader(rd)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimPrefix(name, "\ufeff")] = i
	}
	for _, col := range []string{"key_mlbam", "name_last", "name_first"} {
		if _, ok := cols[col]; !ok {
			return nil, &MissingColumnError{col}
		}
	}
	field := func(rec []string, col string) string {
		i, ok := cols[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	var people []Person
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if normName(field(rec, "name_last")) != last || normName(field(rec, "name_first")) != first {
			continue
		}
		id := parseInt(field(rec, "key_mlbam"))
		if id <= 0 {
			continue
		}
		p := Person{
			ID:    id,
			First: field(rec, "name_first"),
			Last:  field(rec, "name_last"),
		}
		p.FirstSeason = parseInt(field(rec, "mlb_played_first"))
		p.LastSeason = parseInt(field(rec, "mlb_played_last"))
		people = append(people, p)
	}
	return people, nil
}

func normName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
