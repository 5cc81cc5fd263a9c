package constants

import "time"

// Frame Pacing
const (
	// TargetFPS is the frame rate the main loop paces toward
	TargetFPS = 30

	// TargetFrameTime is the per-tick budget derived from TargetFPS
	TargetFrameTime = time.Second / TargetFPS

	// LagThresholdMultiplier marks a frame as heavy when its duration
	// exceeds TargetFrameTime by this factor
	LagThresholdMultiplier = 1.5
)

// Scene Transitions
const (
	// FadeDuration is the fixed crossfade length between two scenes
	FadeDuration = 500 * time.Millisecond
)

// Particle Budget (shared, advisory - scenes consult it before spawning)
const (
	// InitialParticleBudget is the budget at startup
	InitialParticleBudget = 500

	// MinParticleBudget is the floor the governor never degrades below
	MinParticleBudget = 50

	// BudgetDecayFactor is applied to the budget on each heavy frame
	BudgetDecayFactor = 0.75
)

// Show Timing
const (
	// DefaultDuration is assumed when the cue source carries no duration
	DefaultDuration = 180.0

	// FinaleGrace is how long the finale keeps running after the song ends
	FinaleGrace = 5 * time.Second
)
