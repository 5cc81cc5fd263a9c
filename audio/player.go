// Package audio plays the show's soundtrack and is the primary time source:
// the playback position of the decoded stream is the logical show clock.
package audio

import (
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
)

// Player decodes an MP3 and plays it through the speaker. Pause and resume
// are drift-free because position is read from the stream itself, which does
// not advance while the Ctrl is paused.
type Player struct {
	path string

	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl

	started bool
	err     error
}

// NewPlayer creates a player for the given audio file. Nothing is opened
// until Start.
func NewPlayer(path string) *Player {
	return &Player{path: path}
}

// Start decodes the file and begins playback. Failures are recorded and
// returned, never panicked: the caller degrades to wall-clock timing.
func (p *Player) Start() error {
	f, err := os.Open(p.path)
	if err != nil {
		return p.fail(fmt.Errorf("open audio: %w", err))
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return p.fail(fmt.Errorf("decode audio %s: %w", p.path, err))
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		streamer.Close()
		return p.fail(fmt.Errorf("init speaker: %w", err))
	}

	p.streamer = streamer
	p.format = format
	p.ctrl = &beep.Ctrl{Streamer: streamer}
	p.started = true

	speaker.Play(p.ctrl)
	return nil
}

// Pause freezes playback and therefore the reported position
func (p *Player) Pause() {
	if !p.started {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
}

// Resume continues playback from the frozen position
func (p *Player) Resume() {
	if !p.started {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
}

// Stop halts playback and releases the stream
func (p *Player) Stop() {
	if !p.started {
		return
	}
	speaker.Clear()
	p.streamer.Close()
	p.started = false
}

// Position returns the playback position in seconds. Non-blocking: one
// sample-count read under the speaker lock.
func (p *Player) Position() float64 {
	if !p.started {
		return 0
	}
	speaker.Lock()
	n := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(n).Seconds()
}

// Err reports the recorded failure, if any
func (p *Player) Err() error {
	return p.err
}

func (p *Player) fail(err error) error {
	p.err = err
	logError(err.Error())
	return err
}
