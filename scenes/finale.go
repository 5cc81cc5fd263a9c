package scenes

import (
	"math/rand"
	"strings"

	"serenade/render"
)

const (
	finaleBurstInterval = 0.8
	finaleMessageDelay  = 1.0
	finaleFadeRate      = 0.8 // message alpha per second
)

// Finale is the closing scene: sparkles drifting upward from the bottom and
// the cue sheet's farewell message fading in at center.
type Finale struct {
	message      string
	particles    []Particle
	burstTimer   float64
	sceneTime    float64
	messageAlpha float64
}

// NewFinale creates the finale scene showing the given farewell message
func NewFinale(message string) Scene {
	return &Finale{message: message}
}

func (s *Finale) Name() string { return "finale" }
func (s *Finale) Mood() string { return "romantic" }

func (s *Finale) Enter() {
	s.particles = nil
	s.burstTimer = 0
	s.sceneTime = 0
	s.messageAlpha = 0
}

func (s *Finale) Exit() {
	s.particles = nil
}

func (s *Finale) Update(dt float64, ctx Context) {
	s.sceneTime += dt

	s.burstTimer -= dt
	if s.burstTimer <= 0 {
		s.spawnDrift(ctx)
		s.burstTimer = finaleBurstInterval
	}

	alive := s.particles[:0]
	for i := range s.particles {
		p := &s.particles[i]
		p.Update(dt)
		if p.Alive() {
			alive = append(alive, *p)
		}
	}
	s.particles = alive

	if s.sceneTime > finaleMessageDelay {
		s.messageAlpha += dt * finaleFadeRate
		if s.messageAlpha > 1 {
			s.messageAlpha = 1
		}
	}
}

// spawnDrift releases a handful of sparkles that float upward
func (s *Finale) spawnDrift(ctx Context) {
	cx := float64(ctx.Width) / 2
	cy := float64(ctx.Height) * 0.8

	count := 8 + int(ctx.BeatIntensity*5)
	if room := ctx.ParticleBudget - len(s.particles); count > room {
		count = room
	}

	colors := []render.RGB{render.RgbPink, render.RgbGold, render.RgbWhite}
	for i := 0; i < count; i++ {
		s.particles = append(s.particles, Particle{
			X:       cx + rand.Float64()*30 - 15,
			Y:       cy + rand.Float64()*10 - 5,
			VX:      rand.Float64()*2 - 1,
			VY:      -(2 + rand.Float64()*3),
			Gravity: -2.0, // negative gravity keeps them rising
			Drag:    0.1,
			Life:    1.0,
			MaxLife: 1.5 + rand.Float64()*1.5,
			Char:    EmberGlyphs[rand.Intn(len(EmberGlyphs))],
			Color:   colors[rand.Intn(len(colors))],
		})
	}
}

func (s *Finale) Render(fb *render.Buffer, alpha float64) {
	for i := range s.particles {
		p := &s.particles[i]
		fb.Set(int(p.X), int(p.Y), p.Char, p.RenderColor().Scale(alpha*0.8))
	}

	if s.messageAlpha <= 0 {
		return
	}

	cy := fb.Height() / 2
	msgColor := render.RgbPink.Scale(alpha * s.messageAlpha)

	hearts := "♥ ♥ ♥"
	fb.SetText(centerX(hearts, fb.Width()), cy-3, hearts, msgColor)

	for i, line := range strings.Split(s.message, "\n") {
		y := cy - 1 + i
		if y < 0 || y >= fb.Height() {
			continue
		}
		fb.SetText(centerX(line, fb.Width()), y, line, msgColor)
	}
}
