// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matchup

import "github.com/pitchlab/matchup/statcast"

// FilterPitcher returns the pitches from a pitcher's history that
// were thrown to batters standing where this matchup's batter will.
//
// The pitcher's throwing hand is taken from the first event. A batter
// facing a same-side pitcher is assumed to stand on their own side, so
// only events with Stand == batterHand are kept. Otherwise switch
// hitters are kept as well, since they would also stand opposite the
// pitcher.
func FilterPitcher(events []statcast.PitchEvent, batterHand string) []statcast.PitchEvent {
	out := []statcast.PitchEvent{}
	if len(events) == 0 {
		return out
	}
	throws := events[0].PThrows
	for _, ev := range events {
		if ev.Stand == batterHand || (batterHand != throws && ev.Stand == statcast.Switch) {
			out = append(out, ev)
		}
	}
	return out
}

// FilterBatter returns the pitches from a batter's history of type
// pitchType thrown by pitchers with throwing hand pitcherHand.
func FilterBatter(events []statcast.PitchEvent, pitchType, pitcherHand string) []statcast.PitchEvent {
	out := []statcast.PitchEvent{}
	for _, ev := range events {
		if ev.PitchType == pitchType && ev.PThrows == pitcherHand {
			out = append(out, ev)
		}
	}
	return out
}

// FilterPitchType returns the events of type pitchType.
func FilterPitchType(events []statcast.PitchEvent, pitchType string) []statcast.PitchEvent {
	out := []statcast.PitchEvent{}
	for _, ev := range events {
		if ev.PitchType == pitchType {
			out = append(out, ev)
		}
	}
	return out
}

// PitchTypes returns the distinct pitch types in events in the order
// they first appear.
func PitchTypes(events []statcast.PitchEvent) []string {
	seen := make(map[string]bool)
	var types []string
	for _, ev := range events {
		if !seen[ev.PitchType] {
			seen[ev.PitchType] = true
			types = append(types, ev.PitchType)
		}
	}
	return types
}
