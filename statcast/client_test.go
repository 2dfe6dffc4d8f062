// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statcast

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchURL(t *testing.T) {
	c := &Client{BaseURL: "https://example.com/savant"}
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)

	raw, err := c.SearchURL("pitcher", 543037, start, end)
	require.NoError(t, err)
	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "/savant/statcast_search/csv", u.Path)
	q := u.Query()
	assert.Equal(t, "pitcher", q.Get("player_type"))
	assert.Equal(t, "543037", q.Get("pitchers_lookup[]"))
	assert.Equal(t, "2025-04-01", q.Get("game_date_gt"))
	assert.Equal(t, "2025-09-30", q.Get("game_date_lt"))
	assert.Equal(t, "details", q.Get("type"))
	assert.Empty(t, q.Get("batters_lookup[]"))
}

func TestClientEvents(t *testing.T) {
	var (
		mu  sync.Mutex
		got []url.Values
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		got = append(got, r.URL.Query())
		mu.Unlock()
		fmt.Fprint(w, savantHeader)
		switch r.URL.Query().Get("player_type") {
		case "pitcher":
			fmt.Fprintln(w, `FF,2025-04-02,95.1,"Cole, Gerrit",592450,543037,,called_strike,R,R,0.12,2.51,,`)
			fmt.Fprintln(w, `SL,2025-04-02,86.0,"Cole, Gerrit",605141,543037,,ball,L,R,0.8,1.1,,`)
		case "batter":
			fmt.Fprintln(w, `SL,2025-04-03,85.0,"Judge, Aaron",592450,605483,double,hit_into_play,R,L,0.3,2.2,1.25,104.0`)
		}
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	ctx := context.Background()
	start, end := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)

	pitches, err := c.PitcherEvents(ctx, 543037, start, end)
	require.NoError(t, err)
	assert.Len(t, pitches, 2)

	seen, err := c.BatterEvents(ctx, 592450, start, end)
	require.NoError(t, err)
	require.Len(t, seen, 1)
	assert.InDelta(t, 1.25, seen[0].Metric, 1e-9)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 2)
	assert.Equal(t, "543037", got[0].Get("pitchers_lookup[]"))
	assert.Equal(t, "592450", got[1].Get("batters_lookup[]"))
}

func TestClientStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	_, err := c.PitcherEvents(context.Background(), 1, time.Now(), time.Now())
	var serr *StatusError
	require.True(t, errors.As(err, &serr), "got %v", err)
	assert.True(t, strings.HasPrefix(serr.Status, "429"))
}

func TestRegisterLookup(t *testing.T) {
	const header = "key_person,key_uuid,key_mlbam,key_retro,name_last,name_first,mlb_played_first,mlb_played_last\n"
	shards := map[string]string{
		"/data/people-3.csv": header +
			"3a1,u1,543037,coleg001,Cole,Gerrit,2013,2025\n" +
			"3a2,u2,,,Cole,Gerrit,,\n",
		"/data/people-c.csv": header +
			"ca1,u3,592450,judga001,Judge,Aaron,2016,2025\n" +
			"ca2,u4,999999,colex001,cole,GERRIT,1901,1902\n",
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := shards[r.URL.Path]
		if !ok {
			body = header
		}
		fmt.Fprint(w, body)
	}))
	defer srv.Close()

	reg := &Register{BaseURL: srv.URL + "/data/"}
	people, err := reg.LookupPlayer(context.Background(), " Cole", "gerrit ")
	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, Person{ID: 543037, First: "Gerrit", Last: "Cole", FirstSeason: 2013, LastSeason: 2025}, people[0])
	assert.Equal(t, 999999, people[1].ID)

	people, err = reg.LookupPlayer(context.Background(), "Nobody", "Known")
	require.NoError(t, err)
	assert.Empty(t, people)
}

func TestRegisterMissingShard(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	reg := &Register{BaseURL: srv.URL}
	_, err := reg.LookupPlayer(context.Background(), "Cole", "Gerrit")
	var serr *StatusError
	assert.True(t, errors.As(err, &serr), "got %v", err)
}
