package engine

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	runewidth "github.com/mattn/go-runewidth"
	"golang.org/x/sync/errgroup"

	"serenade/constants"
	"serenade/cue"
	"serenade/render"
	"serenade/status"
)

// RunConfig wires the tick loop to its collaborators
type RunConfig struct {
	Screen   tcell.Screen
	Director *Director
	Time     TimeSource
	Cues     *cue.Map
	Spectrum *render.Spectrum
	Monitor  *status.Monitor // nil disables the HUD line
}

// Run drives the show: one logical frame per iteration, paced to the target
// frame duration by sleeping the residual. Returns true when the song played
// through to the end (as opposed to a quit request).
//
// Everything inside a tick runs on this goroutine; the only concurrency is
// the tcell event pump feeding the events channel.
func Run(cfg RunConfig) (bool, error) {
	events := make(chan tcell.Event, 32)
	done := make(chan struct{})

	var g errgroup.Group
	g.Go(func() error {
		for {
			ev := cfg.Screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-done:
				return nil
			}
		}
	})

	completed, err := tick(cfg, events)

	// Wake the pump out of PollEvent so it can observe done
	close(done)
	cfg.Screen.PostEvent(tcell.NewEventInterrupt(nil))
	if pumpErr := g.Wait(); err == nil {
		err = pumpErr
	}

	return completed, err
}

func tick(cfg RunConfig, events <-chan tcell.Event) (bool, error) {
	director := cfg.Director
	ts := cfg.Time

	duration := cfg.Cues.Duration
	if duration <= 0 {
		duration = constants.DefaultDuration
	}

	width, height := cfg.Screen.Size()
	fb := render.NewBuffer(width, height)
	director.SetViewport(width, height)

	// Initial scene: the t=0 cue wins, otherwise the intro
	if director.State() == StateIdle {
		if err := director.CheckTriggers(0); err != nil {
			return false, err
		}
		if director.State() == StateIdle && director.Registered("intro") {
			if err := director.RequestTransition("intro"); err != nil {
				return false, err
			}
		}
	}

	paused := false
	lastTick := time.Now()

	for {
		frameStart := time.Now()

		dt := frameStart.Sub(lastTick).Seconds()
		lastTick = frameStart
		if dt < 0 {
			dt = 0
		}
		if dt > 0.25 {
			dt = 0.25 // a stalled frame must not teleport the animations
		}

		quit := false
		for len(events) > 0 {
			switch ev := (<-events).(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					quit = true
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					quit = true
				case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
					paused = !paused
					if paused {
						ts.Pause()
					} else {
						ts.Resume()
					}
				}
			case *tcell.EventResize:
				cfg.Screen.Sync()
			}
		}
		if quit {
			return false, nil
		}

		// Audio gone mid-show: hand the position over to wall clock
		if ts.Err() != nil {
			clk := NewClockFrom(ts.Position())
			clk.Start()
			if paused {
				clk.Pause()
			}
			ts.Stop()
			ts = clk
		}

		now := ts.Position()
		isFinale := director.CurrentSceneName() == "finale"

		if now >= duration {
			if !isFinale || now >= duration+constants.FinaleGrace.Seconds() {
				return true, nil
			}
		}

		if w, h := cfg.Screen.Size(); w != width || h != height {
			width, height = w, h
			fb.Resize(width, height)
		}

		beat := BeatIntensity(now, director.CurrentMood())

		director.SetTime(now)
		if err := director.CheckTriggers(now); err != nil {
			return false, err
		}
		director.UpdateLyric(now)

		ctx := director.Context(beat)
		ctx.Width, ctx.Height = width, height

		if !paused {
			cfg.Spectrum.Update(dt, beat)
			director.Update(dt, ctx)
		}

		fb.Clear()
		director.Render(fb)
		renderLyric(fb, director)
		cfg.Spectrum.Render(fb)

		if cfg.Monitor != nil {
			fb.SetText(1, 0, cfg.Monitor.Line(director.ParticleBudget()), render.RgbDimCyan)
		}

		fb.Flush(cfg.Screen)

		frameTime := time.Since(frameStart)
		director.ObserveFrame(frameTime)
		if cfg.Monitor != nil {
			cfg.Monitor.Observe(frameTime)
		}

		if residual := constants.TargetFrameTime - frameTime; residual > 0 {
			time.Sleep(residual)
		}
	}
}

// renderLyric overlays the active lyric, word-wrapped and centered within a
// padded band. Intro and finale carry their own text, so lyrics are
// suppressed there.
func renderLyric(fb *render.Buffer, director *Director) {
	lyric := director.Lyric()
	if lyric == nil || lyric.Text == "" {
		return
	}
	switch director.CurrentSceneName() {
	case "intro", "finale", "":
		return
	}

	width, height := fb.Width(), fb.Height()

	padding := width / constants.LyricPaddingDivisor
	if padding < constants.LyricMinPadding {
		padding = constants.LyricMinPadding
	}
	textWidth := width - 2*padding
	if textWidth < constants.LyricMinTextWidth {
		padding = 2
		textWidth = width - 4
	}
	if textWidth < 1 {
		return
	}

	lines := wrapText(lyric.Text, textWidth)
	startY := (height - len(lines)) / 2

	for i, line := range lines {
		y := startY + i
		if y < 0 || y >= height {
			continue
		}
		x := padding + (textWidth-runewidth.StringWidth(line))/2
		fb.SetText(x, y, line, render.RgbLyricText)
	}
}

// wrapText greedily wraps words to the given display width. Words wider
// than the limit go on their own line unbroken rather than being split.
func wrapText(text string, width int) []string {
	var lines []string
	var current strings.Builder
	currentWidth := 0

	for _, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)
		switch {
		case currentWidth == 0:
			current.WriteString(word)
			currentWidth = w
		case currentWidth+1+w <= width:
			current.WriteByte(' ')
			current.WriteString(word)
			currentWidth += 1 + w
		default:
			lines = append(lines, current.String())
			current.Reset()
			current.WriteString(word)
			currentWidth = w
		}
	}
	if currentWidth > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
