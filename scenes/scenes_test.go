package scenes

import (
	"testing"

	"serenade/render"
)

func testContext(w, h int) Context {
	return Context{
		Width:          w,
		Height:         h,
		BeatIntensity:  0.5,
		ParticleBudget: 500,
	}
}

func allScenes(ctx Context) []Scene {
	return []Scene{
		NewIntro(ctx),
		NewStarfield(ctx),
		NewMatrixRain(ctx),
		NewFireworks(ctx),
		NewHeartbeat(ctx),
		NewWaveform(ctx),
		NewFinale("until next time"),
	}
}

func TestSceneLifecycleSurvivesDocumentedRanges(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		dt   float64
	}{
		{"Normal viewport", 80, 24, 1.0 / 30},
		{"Minimum viewport", 1, 1, 1.0 / 30},
		{"Zero dt", 80, 24, 0},
		{"Large dt", 80, 24, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(tt.w, tt.h)
			fb := render.NewBuffer(tt.w, tt.h)

			for _, s := range allScenes(ctx) {
				s.Enter()
				for i := 0; i < 90; i++ {
					s.Update(tt.dt, ctx)
				}
				s.Render(fb, 0.5)
				s.Exit()
			}
		})
	}
}

func TestSceneNamesAreStable(t *testing.T) {
	want := map[string]string{
		"intro":       "mysterious",
		"starfield":   "dreamy",
		"matrix_rain": "tech/cool",
		"fireworks":   "celebration",
		"heartbeat":   "deep/intense",
		"waveform":    "energetic",
		"finale":      "romantic",
	}

	for _, s := range allScenes(testContext(80, 24)) {
		mood, ok := want[s.Name()]
		if !ok {
			t.Errorf("Unexpected scene name %q", s.Name())
			continue
		}
		if s.Mood() != mood {
			t.Errorf("Scene %q: expected mood %q, got %q", s.Name(), mood, s.Mood())
		}
	}
}

func TestFireworksHonorsParticleBudget(t *testing.T) {
	ctx := testContext(80, 24)
	ctx.ParticleBudget = 60

	s := NewFireworks(ctx).(*Fireworks)
	s.Enter()

	for i := 0; i < 300; i++ {
		s.Update(1.0/30, ctx)
	}

	if len(s.particles) > 60 {
		t.Errorf("Expected at most 60 particles under budget 60, got %d", len(s.particles))
	}
}

func TestFireworksExitClearsParticles(t *testing.T) {
	ctx := testContext(80, 24)
	s := NewFireworks(ctx).(*Fireworks)
	s.Enter()
	s.Update(1.0, ctx)

	if len(s.particles) == 0 {
		t.Fatal("Expected particles after update")
	}

	s.Exit()
	if len(s.particles) != 0 {
		t.Errorf("Expected no particles after Exit, got %d", len(s.particles))
	}
}

func TestIntroTypesOverTime(t *testing.T) {
	ctx := testContext(80, 24)
	s := NewIntro(ctx).(*Intro)
	s.Enter()

	// Long enough to finish every line at the slowest typing speed
	for i := 0; i < 60*30; i++ {
		s.Update(1.0/30, ctx)
	}

	if s.textIndex < len(introTexts)-1 {
		t.Errorf("Expected typing to reach the last line, stuck at %d", s.textIndex)
	}

	fb := render.NewBuffer(80, 24)
	s.Render(fb, 1.0)

	found := false
	for y := 0; y < 24 && !found; y++ {
		for x := 0; x < 80; x++ {
			if fb.At(x, y).Rune != ' ' {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("Expected rendered intro text in the buffer")
	}
}

func TestFinaleMessageFadesIn(t *testing.T) {
	s := NewFinale("line one\nline two").(*Finale)
	s.Enter()
	ctx := testContext(80, 24)

	s.Update(0.5, ctx)
	if s.messageAlpha != 0 {
		t.Errorf("Expected message hidden before delay, alpha %g", s.messageAlpha)
	}

	for i := 0; i < 120; i++ {
		s.Update(1.0/30, ctx)
	}
	if s.messageAlpha != 1 {
		t.Errorf("Expected message fully faded in, alpha %g", s.messageAlpha)
	}
}

func TestRenderDoesNotMutateState(t *testing.T) {
	ctx := testContext(80, 24)
	s := NewWaveform(ctx).(*Waveform)
	s.Enter()
	s.Update(0.2, ctx)

	before := make([]float64, len(s.heights))
	copy(before, s.heights)

	fb := render.NewBuffer(80, 24)
	s.Render(fb, 0.7)
	s.Render(fb, 0.7)

	for i := range before {
		if s.heights[i] != before[i] {
			t.Fatalf("Render mutated bar %d: %g -> %g", i, before[i], s.heights[i])
		}
	}
}
