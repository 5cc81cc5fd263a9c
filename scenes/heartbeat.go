package scenes

import (
	"math"
	"math/rand"

	"serenade/render"
)

// Heartbeat renders an implicit-equation heart that throbs with the beat.
// The interior is sparse stardust rather than a solid fill.
type Heartbeat struct {
	scale     float64
	beatPhase float64

	// Stable per-cell noise so the stardust doesn't shimmer every frame
	noise map[[2]int]float64
}

// NewHeartbeat creates the heartbeat scene
func NewHeartbeat(Context) Scene {
	return &Heartbeat{scale: 1.0, noise: make(map[[2]int]float64)}
}

func (s *Heartbeat) Name() string { return "heartbeat" }
func (s *Heartbeat) Mood() string { return "deep/intense" }

func (s *Heartbeat) Enter() {
	s.scale = 1.0
	s.beatPhase = 0
}

func (s *Heartbeat) Exit() {}

func (s *Heartbeat) Update(dt float64, ctx Context) {
	s.beatPhase += dt * 3.5

	// sin^6 gives a sharp thump with a slow release
	thump := math.Pow(math.Sin(s.beatPhase), 6)
	target := 1.0 + thump*0.15 + ctx.BeatIntensity*0.1

	s.scale += (target - s.scale) * dt * 5
}

func (s *Heartbeat) noiseAt(x, y int) float64 {
	key := [2]int{x, y}
	if v, ok := s.noise[key]; ok {
		return v
	}
	v := rand.Float64()
	s.noise[key] = v
	return v
}

func (s *Heartbeat) Render(fb *render.Buffer, alpha float64) {
	cx := fb.Width() / 2
	cy := fb.Height() / 2

	radiusY := 6.5 * s.scale
	radiusX := radiusY * 2.2 // terminal cells are taller than wide

	minY := int(float64(cy) - radiusY*1.5)
	maxY := int(float64(cy) + radiusY*1.5)
	minX := int(float64(cx) - radiusX*1.5)
	maxX := int(float64(cx) + radiusX*1.5)

	outline := render.RgbPink.Scale(alpha)
	dust := render.RgbPink.Scale(alpha * 0.5)
	sparkle := render.RgbWhite.Scale(alpha * 0.8)

	for y := max(0, minY); y < min(fb.Height(), maxY); y++ {
		ny := float64(cy-y) / radiusY
		for x := max(0, minX); x < min(fb.Width(), maxX); x++ {
			nx := float64(x-cx) / radiusX

			// (x^2 + y^2 - 1)^3 - x^2 y^3 <= 0 is inside the heart
			a := nx*nx + ny*ny - 1
			value := a*a*a - nx*nx*ny*ny*ny
			if value > 0 {
				continue
			}

			if value > -0.2 {
				fb.Set(x, y, '*', outline)
				continue
			}

			switch n := s.noiseAt(x, y); {
			case n > 0.95:
				fb.Set(x, y, '+', sparkle)
			case n > 0.7:
				fb.Set(x, y, '·', dust)
			}
		}
	}
}
