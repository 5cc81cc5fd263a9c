// Serenade plays a timed, audio-synchronized terminal animation: scenes
// crossfade on cue-sheet triggers while lyrics overlay the picture.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"serenade/audio"
	"serenade/constants"
	"serenade/cue"
	"serenade/engine"
	"serenade/render"
	"serenade/scenes"
	"serenade/status"
)

var (
	cuesFlag  = flag.String("cues", "assets/cues.yaml", "Path to the cue sheet (YAML or legacy JSON)")
	audioFlag = flag.String("audio", "assets/audio.mp3", "Path to the soundtrack MP3")
	hudFlag   = flag.Bool("hud", false, "Show the performance HUD line")
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	flag.Parse()

	var screen tcell.Screen

	// Restore the terminal before reporting any crash, otherwise the stack
	// trace lands on a raw alternate screen
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "serenade crashed: %v\n%s", r, debug.Stack())
			code = 1
		}
	}()

	cues, err := cue.Load(*cuesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cue sheet: %v - running without lyrics\n", err)
		cues = cue.Default()
	}

	director := engine.NewDirector(cues)
	director.Register("intro", scenes.NewIntro)
	director.Register("starfield", scenes.NewStarfield)
	director.Register("matrix_rain", scenes.NewMatrixRain)
	director.Register("fireworks", scenes.NewFireworks)
	director.Register("heartbeat", scenes.NewHeartbeat)
	director.Register("waveform", scenes.NewWaveform)
	director.Register("finale", func(scenes.Context) scenes.Scene {
		return scenes.NewFinale(cues.FinaleMessage)
	})

	// A cue naming an unregistered scene would otherwise surface mid-show
	for _, e := range cues.Entries() {
		if e.Scene != "" && !director.Registered(e.Scene) {
			fmt.Fprintf(os.Stderr, "cue sheet: unknown scene %q at t=%g\n", e.Scene, e.Time)
			return 1
		}
	}

	var ts engine.TimeSource
	player := audio.NewPlayer(*audioFlag)
	if err := player.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "♫ no audio (%v) - running on wall clock\n", err)
		clock := engine.NewClock()
		clock.Start()
		ts = clock
	} else {
		ts = player
	}
	defer ts.Stop()

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal init: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal init: %v\n", err)
		return 1
	}
	defer screen.Fini()

	var monitor *status.Monitor
	if *hudFlag {
		monitor = status.NewMonitor()
	}

	completed, err := engine.Run(engine.RunConfig{
		Screen:   screen,
		Director: director,
		Time:     ts,
		Cues:     cues,
		Spectrum: render.NewSpectrum(constants.VisualizerBars),
		Monitor:  monitor,
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "show stopped: %v\n", err)
		return 1
	}

	// The show settles into a static closing screen when it ran to the end
	if completed {
		engine.HoldFinale(screen, cues.FinaleMessage)
	}

	return 0
}
