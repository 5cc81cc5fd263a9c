// Package engine owns the show orchestration: the director state machine
// that routes scenes and crossfades, the pausable clock, and the tick loop.
package engine

import (
	"errors"
	"fmt"
	"time"

	"serenade/constants"
	"serenade/cue"
	"serenade/render"
	"serenade/scenes"
)

// ErrUnknownScene reports a transition request for an unregistered name.
// This is a wiring bug, not a runtime condition, so it fails fast.
var ErrUnknownScene = errors.New("unknown scene")

// Factory constructs a fresh scene instance from the current context
type Factory func(ctx scenes.Context) scenes.Scene

// State is the director's lifecycle phase
type State int

const (
	// StateIdle - no current scene; only before the first transition completes
	StateIdle State = iota
	// StateActive - one current scene, no crossfade in flight
	StateActive
	// StateTransitioning - current and incoming scenes both live, alpha rising
	StateTransitioning
)

// Director owns the active scene(s), the cue map, transition state, and the
// adaptive particle budget. Single-threaded: every method is called from the
// tick loop.
type Director struct {
	cues      *cue.Map
	factories map[string]Factory

	current      scenes.Scene
	incoming     scenes.Scene
	incomingName string
	alpha        float64

	currentTime float64
	sceneStart  float64
	lyric       *cue.Entry

	width, height int

	// Performance governor state
	budget    int
	fps       float64
	lastFrame time.Duration
}

// NewDirector creates a director over the given cue map
func NewDirector(cues *cue.Map) *Director {
	return &Director{
		cues:      cues,
		factories: make(map[string]Factory),
		budget:    constants.InitialParticleBudget,
	}
}

// Register binds a scene name to its construction factory
func (d *Director) Register(name string, factory Factory) {
	d.factories[name] = factory
}

// Registered reports whether a scene name has a factory
func (d *Director) Registered(name string) bool {
	_, ok := d.factories[name]
	return ok
}

// State returns the current lifecycle phase
func (d *Director) State() State {
	switch {
	case d.incoming != nil:
		return StateTransitioning
	case d.current != nil:
		return StateActive
	default:
		return StateIdle
	}
}

// CurrentSceneName returns the active scene's name, or "" when idle
func (d *Director) CurrentSceneName() string {
	if d.current == nil {
		return ""
	}
	return d.current.Name()
}

// CurrentMood returns the active scene's mood tag, defaulting to dreamy
func (d *Director) CurrentMood() string {
	if d.current == nil {
		return "dreamy"
	}
	return d.current.Mood()
}

// SetTime records the logical playback position for this tick
func (d *Director) SetTime(t float64) {
	d.currentTime = t
}

// SceneTime returns seconds since the current scene was entered
func (d *Director) SceneTime() float64 {
	return d.currentTime - d.sceneStart
}

// SetViewport records the terminal size used when constructing scenes
func (d *Director) SetViewport(width, height int) {
	d.width = width
	d.height = height
}

// Context builds this tick's scene context from director state
func (d *Director) Context(beatIntensity float64) scenes.Context {
	return scenes.Context{
		Width:          d.width,
		Height:         d.height,
		SongTime:       d.currentTime,
		SceneTime:      d.SceneTime(),
		BeatIntensity:  beatIntensity,
		Transitioning:  d.incoming != nil,
		ParticleBudget: d.budget,
	}
}

// RequestTransition starts a crossfade to the named scene. While a
// transition is already in flight the latest request wins: the pending
// target is replaced and the fade restarts from zero.
func (d *Director) RequestTransition(name string) error {
	factory, ok := d.factories[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	if d.incoming != nil && d.incomingName == name {
		return nil // already fading to it
	}

	// The instance exists from request time so both scenes animate during
	// the fade; Enter fires only at completion, after the outgoing Exit.
	d.incoming = factory(d.Context(0))
	d.incomingName = name
	d.alpha = 0
	return nil
}

// Update advances the active scene(s) and any in-flight crossfade by dt
func (d *Director) Update(dt float64, ctx scenes.Context) {
	d.width, d.height = ctx.Width, ctx.Height

	if d.current != nil {
		d.current.Update(dt, ctx)
	}
	if d.incoming != nil {
		d.incoming.Update(dt, ctx)

		d.alpha += dt / constants.FadeDuration.Seconds()
		if d.alpha >= 1.0 {
			d.alpha = 1.0
			d.completeTransition()
		}
	}
}

// completeTransition promotes the incoming scene: outgoing Exit, then
// incoming Enter, in that order.
func (d *Director) completeTransition() {
	if d.current != nil {
		d.current.Exit()
	}
	d.incoming.Enter()
	d.current = d.incoming
	d.incoming = nil
	d.incomingName = ""
	d.alpha = 0
	d.sceneStart = d.currentTime
}

// Render paints the active scene(s) into the frame sink. During a crossfade
// both scenes overlay in the same buffer: outgoing at 1-alpha, incoming at
// alpha.
func (d *Director) Render(fb *render.Buffer) {
	if d.incoming != nil {
		if d.current != nil {
			d.current.Render(fb, 1.0-d.alpha)
		}
		d.incoming.Render(fb, d.alpha)
		return
	}
	if d.current != nil {
		d.current.Render(fb, 1.0)
	}
}

// CheckTriggers fires a cue-driven transition when playback time crosses a
// scene trigger naming a scene other than the current one.
func (d *Director) CheckTriggers(t float64) error {
	name := d.cues.SceneTriggerAt(t)
	if name == "" || name == d.CurrentSceneName() {
		return nil
	}
	return d.RequestTransition(name)
}

// UpdateLyric recomputes the cached active lyric for this tick
func (d *Director) UpdateLyric(t float64) {
	d.lyric = d.cues.LyricAt(t)
}

// Lyric returns the cached active lyric, possibly nil
func (d *Director) Lyric() *cue.Entry {
	return d.lyric
}

// ObserveFrame feeds one measured frame duration into the governor. Heavy
// frames degrade the shared particle budget by a quarter, never below the
// floor.
func (d *Director) ObserveFrame(frameTime time.Duration) {
	d.lastFrame = frameTime

	if s := frameTime.Seconds(); s > 0 {
		d.fps = 1.0 / s
	}

	target := float64(constants.TargetFrameTime)
	threshold := time.Duration(target * constants.LagThresholdMultiplier)
	if frameTime > threshold {
		degraded := int(float64(d.budget) * constants.BudgetDecayFactor)
		if degraded < constants.MinParticleBudget {
			degraded = constants.MinParticleBudget
		}
		d.budget = degraded
	}
}

// FPS returns the rate derived from the last observed frame
func (d *Director) FPS() float64 { return d.fps }

// ParticleBudget returns the current shared budget
func (d *Director) ParticleBudget() int { return d.budget }
