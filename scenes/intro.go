package scenes

import (
	"serenade/render"
)

// Intro scene text sequence, typed out one character at a time
var introTexts = []string{
	"Initializing signal...",
	"Locking on to the beat..",
	"Enjoy the show.",
}

const (
	typeSpeedMin      = 0.05 // seconds per character
	typeSpeedMax      = 0.08
	pauseBetweenLines = 1.0
)

// Intro is a black screen with terminal-style typing text.
type Intro struct {
	textIndex int
	charIndex int
	typeTimer float64
	pauseLeft float64
	pausing   bool
}

// NewIntro creates the intro scene
func NewIntro(Context) Scene { return &Intro{} }

func (s *Intro) Name() string { return "intro" }
func (s *Intro) Mood() string { return "mysterious" }

func (s *Intro) Enter() {
	s.textIndex = 0
	s.charIndex = 0
	s.typeTimer = 0
	s.pauseLeft = 0
	s.pausing = false
}

func (s *Intro) Exit() {}

func (s *Intro) Update(dt float64, ctx Context) {
	if s.textIndex >= len(introTexts) {
		return
	}

	if s.pausing {
		s.pauseLeft -= dt
		if s.pauseLeft <= 0 {
			s.textIndex++
			s.charIndex = 0
			s.pausing = false
		}
		return
	}

	s.typeTimer += dt

	// Delay wobbles per character so the typing feels hand-made
	delay := typeSpeedMin + (typeSpeedMax-typeSpeedMin)*float64(s.charIndex%10)/10

	if s.typeTimer >= delay {
		s.typeTimer = 0
		s.charIndex++

		line := []rune(introTexts[s.textIndex])
		if s.charIndex >= len(line) {
			if s.textIndex < len(introTexts)-1 {
				s.pausing = true
				s.pauseLeft = pauseBetweenLines
			}
		}
	}
}

func (s *Intro) Render(fb *render.Buffer, alpha float64) {
	startY := (fb.Height() - len(introTexts)*2) / 2
	if startY < 2 {
		startY = 2
	}

	color := render.RgbPink.Scale(alpha)

	for i, text := range introTexts {
		y := startY + i*2
		if y >= fb.Height() {
			break
		}
		x := centerX(text, fb.Width())

		switch {
		case i < s.textIndex:
			fb.SetText(x, y, text, color)
		case i == s.textIndex:
			line := []rune(text)
			n := s.charIndex
			if n > len(line) {
				n = len(line)
			}
			fb.SetText(x, y, string(line[:n]), color)
		}
	}
}
