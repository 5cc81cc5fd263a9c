package cue

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"serenade/constants"
)

// cueFile mirrors the on-disk schema. YAML is a superset of JSON, so both
// .yaml cue sheets and legacy .json ones parse through the same decoder.
type cueFile struct {
	DurationSeconds float64    `yaml:"duration_seconds"`
	FinaleMessage   string     `yaml:"finale_message"`
	Lyrics          []cueEntry `yaml:"lyrics"`
}

type cueEntry struct {
	Time  float64 `yaml:"time"`
	Text  string  `yaml:"text"`
	Scene string  `yaml:"scene"`
}

// Load reads a cue sheet from path. A missing or malformed file is returned
// as an error; callers decide whether to fall back to Default().
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cue sheet: %w", err)
	}

	var f cueFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse cue sheet %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(f.Lyrics))
	for i, e := range f.Lyrics {
		if e.Time < 0 {
			return nil, fmt.Errorf("cue sheet %s: entry %d has negative time %g", path, i, e.Time)
		}
		entries = append(entries, Entry{Time: e.Time, Text: e.Text, Scene: e.Scene})
	}

	duration := f.DurationSeconds
	if duration <= 0 {
		duration = constants.DefaultDuration
	}

	return NewMap(entries, duration, f.FinaleMessage), nil
}
