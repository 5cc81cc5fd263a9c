package engine

import (
	"errors"
	"testing"
	"time"

	"serenade/constants"
	"serenade/cue"
	"serenade/render"
	"serenade/scenes"
)

// stubScene records lifecycle calls into a shared log
type stubScene struct {
	name    string
	log     *[]string
	updates int
}

func (s *stubScene) Name() string { return s.name }
func (s *stubScene) Mood() string { return "dreamy" }
func (s *stubScene) Enter()       { *s.log = append(*s.log, s.name+".enter") }
func (s *stubScene) Exit()        { *s.log = append(*s.log, s.name+".exit") }
func (s *stubScene) Update(dt float64, ctx scenes.Context) {
	s.updates++
}
func (s *stubScene) Render(fb *render.Buffer, alpha float64) {
	*s.log = append(*s.log, s.name+".render")
}

func newTestDirector(log *[]string, names ...string) *Director {
	d := NewDirector(cue.Default())
	for _, name := range names {
		n := name
		d.Register(n, func(scenes.Context) scenes.Scene {
			return &stubScene{name: n, log: log}
		})
	}
	d.SetViewport(80, 24)
	return d
}

func testCtx() scenes.Context {
	return scenes.Context{Width: 80, Height: 24, ParticleBudget: 500}
}

func TestRequestTransitionUnknownSceneFailsFast(t *testing.T) {
	var log []string
	d := newTestDirector(&log, "intro")

	if err := d.RequestTransition("intro"); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		d.Update(0.1, testCtx())
	}

	err := d.RequestTransition("nope")
	if !errors.Is(err, ErrUnknownScene) {
		t.Fatalf("Expected ErrUnknownScene, got %v", err)
	}
	if d.CurrentSceneName() != "intro" {
		t.Errorf("Expected current scene unchanged, got %q", d.CurrentSceneName())
	}
	if d.State() != StateActive {
		t.Errorf("Expected StateActive, got %v", d.State())
	}
}

func TestTransitionLifecycleOrdering(t *testing.T) {
	var log []string
	d := newTestDirector(&log, "a", "b")

	if err := d.RequestTransition("a"); err != nil {
		t.Fatal(err)
	}
	d.Update(0.5, testCtx()) // completes the idle fade-in

	if d.CurrentSceneName() != "a" {
		t.Fatalf("Expected a current, got %q", d.CurrentSceneName())
	}

	log = log[:0]
	if err := d.RequestTransition("b"); err != nil {
		t.Fatal(err)
	}
	d.Update(0.25, testCtx())
	if d.State() != StateTransitioning {
		t.Fatal("Expected mid-transition state")
	}
	d.Update(0.25, testCtx())

	if d.State() != StateActive || d.CurrentSceneName() != "b" {
		t.Fatalf("Expected b active, got %q in state %v", d.CurrentSceneName(), d.State())
	}

	// a must exit before b enters
	var exitIdx, enterIdx = -1, -1
	for i, e := range log {
		switch e {
		case "a.exit":
			exitIdx = i
		case "b.enter":
			enterIdx = i
		}
	}
	if exitIdx == -1 || enterIdx == -1 || exitIdx > enterIdx {
		t.Errorf("Expected a.exit before b.enter, log %v", log)
	}
}

func TestTransitionAlphaStaysInRangeAndCompletesSameTick(t *testing.T) {
	var log []string
	d := newTestDirector(&log, "a", "b")
	d.RequestTransition("a")
	d.Update(1.0, testCtx())

	d.RequestTransition("b")
	for i := 0; i < 10; i++ {
		d.Update(0.07, testCtx())
		if d.alpha < 0 || d.alpha > 1 {
			t.Fatalf("Alpha out of range: %g", d.alpha)
		}
	}
	// 10 * 0.07 = 0.7s > FadeDuration: transition must have completed, not
	// be stuck at 1.0
	if d.State() != StateActive {
		t.Errorf("Expected transition completed, state %v alpha %g", d.State(), d.alpha)
	}
}

func TestIdleTransitionNeverCallsExit(t *testing.T) {
	var log []string
	d := newTestDirector(&log, "a")

	d.RequestTransition("a")
	d.Update(0.5, testCtx())

	for _, e := range log {
		if e == "a.exit" {
			t.Fatalf("Unexpected exit during idle fade-in: %v", log)
		}
	}
	if d.CurrentSceneName() != "a" {
		t.Errorf("Expected a current, got %q", d.CurrentSceneName())
	}
}

func TestMidTransitionLatestWins(t *testing.T) {
	var log []string
	d := newTestDirector(&log, "a", "b", "c")
	d.RequestTransition("a")
	d.Update(0.5, testCtx())

	d.RequestTransition("b")
	d.Update(0.2, testCtx())
	d.RequestTransition("c") // replaces b, restarts the fade

	d.Update(0.25, testCtx())
	if d.State() != StateTransitioning {
		t.Fatal("Expected fade restarted, not completed")
	}
	d.Update(0.3, testCtx())

	if d.CurrentSceneName() != "c" {
		t.Errorf("Expected latest request to win, got %q", d.CurrentSceneName())
	}
	for _, e := range log {
		if e == "b.enter" {
			t.Errorf("Abandoned target must never enter, log %v", log)
		}
	}
}

func TestRequestSameTargetKeepsFadeProgress(t *testing.T) {
	var log []string
	d := newTestDirector(&log, "a", "b")
	d.RequestTransition("a")
	d.Update(0.5, testCtx())

	d.RequestTransition("b")
	d.Update(0.2, testCtx())
	before := d.alpha

	d.RequestTransition("b")
	if d.alpha != before {
		t.Errorf("Expected re-request of same target to keep alpha %g, got %g", before, d.alpha)
	}
}

func TestCheckTriggersFiresOncePerCue(t *testing.T) {
	var log []string
	m := cue.NewMap([]cue.Entry{
		{Time: 0, Scene: "a"},
		{Time: 10, Scene: "b"},
	}, 30, "")
	d := NewDirector(m)
	for _, name := range []string{"a", "b"} {
		n := name
		d.Register(n, func(scenes.Context) scenes.Scene { return &stubScene{name: n, log: &log} })
	}
	d.SetViewport(80, 24)

	if err := d.CheckTriggers(0); err != nil {
		t.Fatal(err)
	}
	d.Update(1.0, testCtx())
	if d.CurrentSceneName() != "a" {
		t.Fatalf("Expected a, got %q", d.CurrentSceneName())
	}

	// Re-querying between cues must not restart anything
	if err := d.CheckTriggers(5); err != nil {
		t.Fatal(err)
	}
	if d.State() != StateActive {
		t.Error("Expected no transition from an already-fired cue")
	}

	if err := d.CheckTriggers(10); err != nil {
		t.Fatal(err)
	}
	if d.State() != StateTransitioning {
		t.Error("Expected transition from the t=10 cue")
	}
}

func TestRenderBlendsBothScenesDuringTransition(t *testing.T) {
	var log []string
	d := newTestDirector(&log, "a", "b")
	d.RequestTransition("a")
	d.Update(0.5, testCtx())

	d.RequestTransition("b")
	d.Update(0.2, testCtx())

	log = log[:0]
	fb := render.NewBuffer(80, 24)
	d.Render(fb)

	if len(log) != 2 || log[0] != "a.render" || log[1] != "b.render" {
		t.Errorf("Expected outgoing then incoming render, got %v", log)
	}
}

func TestGovernorDegradesBudget(t *testing.T) {
	var log []string
	d := newTestDirector(&log)

	heavy := constants.TargetFrameTime * 2
	d.ObserveFrame(heavy)

	if got := d.ParticleBudget(); got != 375 {
		t.Errorf("Expected budget 375 after one heavy frame, got %d", got)
	}

	for i := 0; i < 100; i++ {
		d.ObserveFrame(heavy)
	}
	if got := d.ParticleBudget(); got != constants.MinParticleBudget {
		t.Errorf("Expected budget floor %d, got %d", constants.MinParticleBudget, got)
	}
}

func TestGovernorIgnoresLightFrames(t *testing.T) {
	var log []string
	d := newTestDirector(&log)

	d.ObserveFrame(constants.TargetFrameTime)
	if got := d.ParticleBudget(); got != constants.InitialParticleBudget {
		t.Errorf("Expected untouched budget, got %d", got)
	}
	if d.FPS() < 29 || d.FPS() > 31 {
		t.Errorf("Expected ~30 fps, got %g", d.FPS())
	}

	// Zero duration must not divide by zero
	d.ObserveFrame(0)
}

func TestObserveFrameZeroGuard(t *testing.T) {
	var log []string
	d := newTestDirector(&log)
	before := d.FPS()
	d.ObserveFrame(0)
	if d.FPS() != before {
		t.Errorf("Expected fps unchanged on zero frame time, got %g", d.FPS())
	}
}

func TestSceneTimeTracksEntry(t *testing.T) {
	var log []string
	d := newTestDirector(&log, "a")
	d.SetTime(12)
	d.RequestTransition("a")
	d.Update(1.0, testCtx())

	d.SetTime(15)
	if got := d.SceneTime(); got != 3 {
		t.Errorf("Expected scene time 3, got %g", got)
	}
}

func TestClockPauseFreezesPosition(t *testing.T) {
	c := NewClock()
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}

	time.Sleep(20 * time.Millisecond)
	c.Pause()
	p1 := c.Position()
	time.Sleep(20 * time.Millisecond)
	p2 := c.Position()

	if p1 != p2 {
		t.Errorf("Expected frozen position while paused, got %g then %g", p1, p2)
	}

	c.Resume()
	time.Sleep(10 * time.Millisecond)
	if c.Position() <= p2 {
		t.Error("Expected position to advance after resume")
	}
}

func TestClockFromOffset(t *testing.T) {
	c := NewClockFrom(42)
	if got := c.Position(); got != 42 {
		t.Errorf("Expected unstarted clock to report its offset, got %g", got)
	}
	c.Start()
	if got := c.Position(); got < 42 {
		t.Errorf("Expected position to continue from offset, got %g", got)
	}
}

func TestBeatIntensity(t *testing.T) {
	tests := []struct {
		name string
		mood string
	}{
		{"Dreamy", "dreamy"},
		{"Celebration", "celebration"},
		{"Energetic", "energetic"},
		{"Unknown mood", "whatever"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for ti := 0.0; ti < 10; ti += 0.1 {
				v := BeatIntensity(ti, tt.mood)
				if v < 0 || v > 1 {
					t.Fatalf("Intensity out of range at t=%g: %g", ti, v)
				}
			}
		})
	}

	// Determinism: same inputs, same output
	if BeatIntensity(3.7, "romantic") != BeatIntensity(3.7, "romantic") {
		t.Error("Expected deterministic intensity")
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"Fits on one line", "hello world", 20, []string{"hello world"}},
		{"Wraps at width", "one two three four", 9, []string{"one two", "three", "four"}},
		{"Long word unbroken", "a verylongword b", 6, []string{"a", "verylongword", "b"}},
		{"Empty", "", 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.text, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Line %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}
