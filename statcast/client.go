// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statcast

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// DateFormat is the layout of dates in Savant queries and results.
const DateFormat = "2006-01-02"

// DefaultSavantURL is the root of the Baseball Savant site.
const DefaultSavantURL = "https://baseballsavant.mlb.com"

// A StatusError reports a non-200 response from a remote service.
type StatusError struct {
	URL    string
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("statcast: GET %s: %s", e.URL, e.Status)
}

// Client queries the Savant search endpoint for pitch-level records.
//
// A Client issues one request per query and does not retry. The zero
// Client is usable and talks to DefaultSavantURL.
type Client struct {
	// BaseURL is the root of the Savant site. If "", it defaults
	// to DefaultSavantURL.
	BaseURL string

	// HTTPClient is used to issue requests. If nil,
	// http.DefaultClient is used.
	HTTPClient *http.Client

	// Limiter, if non-nil, spaces out requests to Savant.
	Limiter *rate.Limiter

	// Metric is the outcome-quality column to decode into
	// PitchEvent.Metric. If "", DefaultMetric is used.
	Metric string
}

// NewClient returns a Client for the public Savant site that issues
// at most one request per second.
func NewClient(metric string) *Client {
	return &Client{
		BaseURL: DefaultSavantURL,
		Limiter: rate.NewLimiter(rate.Every(time.Second), 1),
		Metric:  metric,
	}
}

// PitcherEvents returns every pitch thrown by pitcher id between
// start and end, inclusive.
func (c *Client) PitcherEvents(ctx context.Context, id int, start, end time.Time) ([]PitchEvent, error) {
	return c.search(ctx, "pitcher", id, start, end)
}

// BatterEvents returns every pitch seen by batter id between start
// and end, inclusive.
func (c *Client) BatterEvents(ctx context.Context, id int, start, end time.Time) ([]PitchEvent, error) {
	return c.search(ctx, "batter", id, start, end)
}

// SearchURL returns the Savant CSV search URL for all pitches
// involving player id as playerType ("pitcher" or "batter").
func (c *Client) SearchURL(playerType string, id int, start, end time.Time) (string, error) {
	base := c.BaseURL
	if base == "" {
		base = DefaultSavantURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("statcast: bad base URL: %w", err)
	}
	u.Path = path.Join(u.Path, "statcast_search", "csv")

	q := url.Values{}
	q.Set("all", "true")
	q.Set("type", "details")
	q.Set("player_type", playerType)
	q.Set(playerType+"s_lookup[]", strconv.Itoa(id))
	q.Set("game_date_gt", start.Format(DateFormat))
	q.Set("game_date_lt", end.Format(DateFormat))
	// Regular season, postseason, and spring training.
	q.Set("hfGT", "R|PO|S|")
	q.Set("min_pitches", "0")
	q.Set("min_results", "0")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) search(ctx context.Context, playerType string, id int, start, end time.Time) ([]PitchEvent, error) {
	u, err := c.SearchURL(playerType, id, start, end)
	if err != nil {
		return nil, err
	}
	body, err := get(ctx, c.HTTPClient, c.Limiter, u)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	events, err := Parse(body, c.Metric)
	if err != nil {
		return nil, fmt.Errorf("fetching %s %d: %w", playerType, id, err)
	}
	return events, nil
}

// get issues a GET for u and returns the response body if the
// request succeeded with 200 OK. The caller must close the body.
func get(ctx context.Context, hc *http.Client, lim *rate.Limiter, u string) (io.ReadCloser, error) {
	if hc == nil {
		hc = http.DefaultClient
	}
	if lim != nil {
		if err := lim.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("statcast: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &StatusError{u, resp.Status}
	}
	return resp.Body, nil
}
