package scenes

import (
	"math/rand"

	"serenade/render"
)

const (
	starCount    = 150
	starMaxDepth = 100.0
	starBaseWarp = 5.0
)

var starGlyphs = []rune{'*', '✦', '⋆', '+', '.'}

type star struct {
	x, y, z float64
}

func (s *star) reset() {
	s.x = rand.Float64()*100 - 50
	s.y = rand.Float64()*50 - 25
}

// Starfield is the dreamy 3D warp: stars fly toward the camera and respawn
// at the back plane when they pass it.
type Starfield struct {
	stars []star
}

// NewStarfield creates the starfield scene
func NewStarfield(Context) Scene {
	s := &Starfield{stars: make([]star, starCount)}
	s.seed()
	return s
}

func (s *Starfield) seed() {
	for i := range s.stars {
		s.stars[i].reset()
		s.stars[i].z = 1 + rand.Float64()*(starMaxDepth-1)
	}
}

func (s *Starfield) Name() string { return "starfield" }
func (s *Starfield) Mood() string { return "dreamy" }

func (s *Starfield) Enter() { s.seed() }
func (s *Starfield) Exit()  {}

func (s *Starfield) Update(dt float64, ctx Context) {
	// Beat pushes the warp speed up to 3x
	speed := starBaseWarp * (1 + ctx.BeatIntensity*2) * dt

	for i := range s.stars {
		st := &s.stars[i]
		st.z -= speed
		if st.z <= 1 {
			st.z = starMaxDepth
			st.reset()
		}
	}
}

func (s *Starfield) Render(fb *render.Buffer, alpha float64) {
	cx := float64(fb.Width()) / 2
	cy := float64(fb.Height()) / 2

	white := render.RgbWhite.Scale(alpha)
	blue := render.RgbBlue.Scale(alpha)

	for i := range s.stars {
		st := &s.stars[i]
		if st.z <= 0 {
			continue
		}

		scale := 50 / st.z
		x := int(cx + st.x*scale)
		y := int(cy + st.y*scale)

		depthIdx := int(st.z / 20)
		if depthIdx >= len(starGlyphs) {
			depthIdx = len(starGlyphs) - 1
		}

		color := blue
		if st.z < 20 {
			color = white
		}
		fb.Set(x, y, starGlyphs[depthIdx], color)
	}
}
