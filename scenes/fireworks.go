package scenes

import (
	"math/rand"

	"serenade/render"
)

const fireworkBurstInterval = 0.5

// Fireworks is the celebration scene: particle bursts across the upper
// screen, denser and faster when the beat is high. It is the main consumer
// of the shared particle budget.
type Fireworks struct {
	particles  []Particle
	burstTimer float64
	spawner    *Spawner
}

// NewFireworks creates the fireworks scene
func NewFireworks(Context) Scene {
	return &Fireworks{
		spawner: NewSpawner(SparkGlyphs, []render.RGB{render.RgbPink, render.RgbBlue, render.RgbGold}),
	}
}

func (s *Fireworks) Name() string { return "fireworks" }
func (s *Fireworks) Mood() string { return "celebration" }

func (s *Fireworks) Enter() {
	s.particles = nil
	s.burstTimer = 0
}

func (s *Fireworks) Exit() {
	s.particles = nil
}

func (s *Fireworks) Update(dt float64, ctx Context) {
	s.burstTimer -= dt

	if s.burstTimer <= 0 {
		s.spawnBurst(ctx)
		s.burstTimer = fireworkBurstInterval * (1.1 - ctx.BeatIntensity*0.5)
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

	// Honor the shared budget: drop the oldest overflow
	if len(s.particles) > ctx.ParticleBudget {
		s.particles = s.particles[len(s.particles)-ctx.ParticleBudget:]
	}
}

func (s *Fireworks) spawnBurst(ctx Context) {
	x := float64(ctx.Width) * (0.2 + rand.Float64()*0.6)
	y := float64(ctx.Height) * (0.2 + rand.Float64()*0.4)

	count := 20 + int(ctx.BeatIntensity*30)
	if room := ctx.ParticleBudget - len(s.particles); count > room {
		count = room
	}
	if count <= 0 {
		return
	}

	speed := 5.0 + ctx.BeatIntensity*10.0
	s.particles = append(s.particles, s.spawner.Burst(x, y, count, speed, 2.0)...)
}

func (s *Fireworks) Render(fb *render.Buffer, alpha float64) {
	for i := range s.particles {
		p := &s.particles[i]
		fb.Set(int(p.X), int(p.Y), p.Char, p.RenderColor().Scale(alpha))
	}
}
