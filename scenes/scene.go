// Package scenes contains the visual behavior units of the show. Every scene
// owns its transient animation state and implements the same lifecycle:
// Enter once when it becomes current, Update/Render once per tick, Exit once
// when it is replaced.
package scenes

import (
	runewidth "github.com/mattn/go-runewidth"

	"serenade/render"
)

// Context is the per-tick view a scene receives from the director. It is
// passed by value and rebuilt every frame; scenes must not retain it.
type Context struct {
	Width  int
	Height int

	// SongTime is the logical playback position in seconds
	SongTime float64

	// SceneTime is seconds since the current scene was entered
	SceneTime float64

	// BeatIntensity is the synthetic beat scalar in [0,1]
	BeatIntensity float64

	// Transitioning reports whether a crossfade is in progress
	Transitioning bool

	// ParticleBudget is this tick's copy of the shared adaptive cap.
	// Particle-emitting scenes consult it before spawning.
	ParticleBudget int
}

// Scene is the lifecycle contract every variant implements.
//
// Update must scale all physics by dt; Render must pre-multiply colors by
// alpha and leave state untouched. Neither may fail for non-negative dt and
// a viewport of at least 1x1.
type Scene interface {
	Name() string
	Mood() string
	Enter()
	Update(dt float64, ctx Context)
	Render(fb *render.Buffer, alpha float64)
	Exit()
}

// centerX returns the column that centers text of the given display width
func centerX(text string, width int) int {
	return (width - runewidth.StringWidth(text)) / 2
}
