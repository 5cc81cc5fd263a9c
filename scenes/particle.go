package scenes

import (
	"math"
	"math/rand"

	"serenade/render"
)

// Glyph sets particle spawners pick from
var (
	SparkGlyphs   = []rune{'*', '✦', '✧', '⋆', '✵', '+'}
	HeartGlyphs   = []rune{'♥', '♡', '❤', '❥'}
	FlowerGlyphs  = []rune{'✿', '❀', '✾', '❁'}
	EmberGlyphs   = []rune{'✦', '⋆', '∗', '·'}
	MusicalGlyphs = []rune{'♪', '♫', '♬', '♩'}
)

// Particle is a value with independent physics: gravity, drag, and a life
// that counts down from 1 to 0 over MaxLife seconds. Owned exclusively by
// the scene that spawned it.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Gravity float64
	Drag    float64 // 0..1 air resistance
	Life    float64 // 1 at birth, dead at 0
	MaxLife float64 // seconds from birth to death
	Char    rune
	Color   render.RGB
}

// Update advances the particle by dt seconds
func (p *Particle) Update(dt float64) {
	p.VY += p.Gravity * dt

	dragFactor := 1 - p.Drag*dt
	if dragFactor < 0 {
		dragFactor = 0
	}
	p.VX *= dragFactor
	p.VY *= dragFactor

	p.X += p.VX * dt
	p.Y += p.VY * dt

	p.Life -= dt / p.MaxLife
}

// Alive reports whether the particle still has life left
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// Brightness follows a parabolic curve: dark at birth and death, full at
// mid-life, so particles fade in and out instead of popping.
func (p *Particle) Brightness() float64 {
	return 4 * p.Life * (1 - p.Life)
}

// RenderColor is the particle color shaded by its brightness curve
func (p *Particle) RenderColor() render.RGB {
	b := p.Brightness()
	if b <= 0 {
		return render.RgbBlack
	}
	return p.Color.Scale(b)
}

// Spawner creates particles with randomized glyph, color, and velocity.
type Spawner struct {
	Glyphs []rune
	Colors []render.RGB
}

// NewSpawner builds a spawner over the given glyph and color sets
func NewSpawner(glyphs []rune, colors []render.RGB) *Spawner {
	return &Spawner{Glyphs: glyphs, Colors: colors}
}

// Create spawns one particle at (x, y) with gaussian velocity spread
func (s *Spawner) Create(x, y, vxBase, vyBase, life, gravity, drag, spread float64) Particle {
	return Particle{
		X:       x,
		Y:       y,
		VX:      vxBase + rand.NormFloat64()*spread,
		VY:      vyBase + rand.NormFloat64()*spread,
		Gravity: gravity,
		Drag:    drag,
		Life:    1.0,
		MaxLife: life,
		Char:    s.Glyphs[rand.Intn(len(s.Glyphs))],
		Color:   s.Colors[rand.Intn(len(s.Colors))],
	}
}

// Burst spawns count particles radiating from (x, y) in random directions
// with speed varied in [0.5*speed, 1.5*speed].
func (s *Spawner) Burst(x, y float64, count int, speed, life float64) []Particle {
	particles := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		angle := rand.Float64() * 2 * math.Pi
		v := speed * (0.5 + rand.Float64())
		vx := math.Cos(angle) * v
		vy := math.Sin(angle) * v
		particles = append(particles, s.Create(x, y, vx, vy, life, 9.8, 0.5, 0.2))
	}
	return particles
}
