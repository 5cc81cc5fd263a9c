// Package cue holds the time-sorted cue list that drives lyric display and
// scene transitions. The map is immutable after load except for one owned
// cursor: the time of the most recent scene trigger that already fired.
package cue

import "sort"

// Entry is a single timestamped cue. Text may be empty for scene-only
// triggers; Scene is empty when the cue carries no transition.
type Entry struct {
	Time  float64
	Text  string
	Scene string
}

// DefaultFinaleMessage is shown when the cue source provides none
const DefaultFinaleMessage = "Thank you for listening ♥"

// Map is an ordered-by-time cue list plus show metadata.
type Map struct {
	entries       []Entry
	Duration      float64
	FinaleMessage string

	// lastTriggered is the newest cue time whose scene trigger has fired.
	// Owned here so per-frame queries stay one-shot edge triggers.
	lastTriggered float64
}

// NewMap builds a map from entries in any order; they are stably sorted by
// time so duplicate times keep their relative order.
func NewMap(entries []Entry, duration float64, finaleMessage string) *Map {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})
	if finaleMessage == "" {
		finaleMessage = DefaultFinaleMessage
	}
	return &Map{
		entries:       sorted,
		Duration:      duration,
		FinaleMessage: finaleMessage,
		lastTriggered: -1,
	}
}

// Default returns an empty cue map so the show can run without lyrics
func Default() *Map {
	return NewMap(nil, 0, DefaultFinaleMessage)
}

// Len returns the number of entries
func (m *Map) Len() int { return len(m.entries) }

// Entries exposes the sorted cue list for read-only inspection
func (m *Map) Entries() []Entry { return m.entries }

// LyricAt returns the entry with the greatest time <= t, or nil when t
// precedes the first entry or the map is empty. Among entries sharing a
// time, the last in sort order wins. Pure - no state is touched.
func (m *Map) LyricAt(t float64) *Entry {
	idx := sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].Time > t
	})
	if idx == 0 {
		return nil
	}
	return &m.entries[idx-1]
}

// SceneTriggerAt returns the scene name of the newest still-unfired trigger
// with time <= t, advancing the cursor so the same cue never fires twice
// across a monotonically increasing query sequence. Returns "" when the
// newest eligible trigger has already fired.
func (m *Map) SceneTriggerAt(t float64) string {
	for i := len(m.entries) - 1; i >= 0; i-- {
		e := &m.entries[i]
		if e.Scene == "" || e.Time > t {
			continue
		}
		if e.Time > m.lastTriggered {
			m.lastTriggered = e.Time
			return e.Scene
		}
		// Newest eligible trigger already fired; older ones must not re-fire
		return ""
	}
	return ""
}

// ResetTriggerCursor rearms every trigger. Callers that seek backward must
// invoke this explicitly; forward playback never needs it.
func (m *Map) ResetTriggerCursor() {
	m.lastTriggered = -1
}
