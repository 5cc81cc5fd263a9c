package scenes

import (
	"math"
	"math/rand"

	"serenade/render"
)

const (
	rainColumnSpacing = 2
	rainColorDrift    = 30.0 // seconds for the green -> pink shift
	rainGlyphDecay    = 0.6  // per-second exponential brightness decay
)

type rainGlyph struct {
	char       rune
	brightness float64
}

type rainColumn struct {
	x          int
	maxHeight  int
	speed      float64
	spawnTimer float64
	glyphs     []rainGlyph
}

func (c *rainColumn) update(dt, speedMult float64) {
	c.spawnTimer -= dt * c.speed * speedMult

	if c.spawnTimer <= 0 {
		c.glyphs = append(c.glyphs, rainGlyph{
			char:       FlowerGlyphs[rand.Intn(len(FlowerGlyphs))],
			brightness: 1.0,
		})
		c.spawnTimer = 0.1 + rand.Float64()*0.2
	}

	decay := math.Exp(-rainGlyphDecay * dt)
	kept := c.glyphs[:0]
	for _, g := range c.glyphs {
		g.brightness *= decay
		if g.brightness > 0.05 {
			kept = append(kept, g)
		}
	}
	c.glyphs = kept

	if len(c.glyphs) > c.maxHeight {
		c.glyphs = c.glyphs[len(c.glyphs)-c.maxHeight:]
	}
}

// MatrixRain is digital rain rendered with flower glyphs, drifting from
// green to pink over the first half minute of the scene.
type MatrixRain struct {
	columns   []rainColumn
	sceneTime float64
	lastW     int
	lastH     int
}

// NewMatrixRain creates the matrix rain scene
func NewMatrixRain(ctx Context) Scene {
	s := &MatrixRain{}
	s.ensureColumns(ctx.Width, ctx.Height)
	return s
}

func (s *MatrixRain) Name() string { return "matrix_rain" }
func (s *MatrixRain) Mood() string { return "tech/cool" }

func (s *MatrixRain) Enter() {
	s.columns = nil
	s.sceneTime = 0
	s.ensureColumns(s.lastW, s.lastH)
}

func (s *MatrixRain) Exit() {
	s.columns = nil
}

// ensureColumns rebuilds the column set when the viewport changes enough
func (s *MatrixRain) ensureColumns(width, height int) {
	if len(s.columns) > 0 && abs(width-s.lastW) <= 4 && height == s.lastH {
		return
	}
	s.lastW = width
	s.lastH = height
	s.columns = s.columns[:0]
	for x := 0; x < width; x += rainColumnSpacing {
		s.columns = append(s.columns, rainColumn{
			x:         x,
			maxHeight: height,
			speed:     3 + rand.Float64()*5,
		})
	}
}

func (s *MatrixRain) Update(dt float64, ctx Context) {
	s.sceneTime += dt
	s.ensureColumns(ctx.Width, ctx.Height)

	// Rain accelerates with scene age and the beat
	speedMult := 1.0 + s.sceneTime/60.0 + ctx.BeatIntensity

	for i := range s.columns {
		s.columns[i].update(dt, speedMult)
	}
}

func (s *MatrixRain) Render(fb *render.Buffer, alpha float64) {
	progress := math.Min(1, s.sceneTime/rainColorDrift)
	base := render.RgbMatrixGreen.Lerp(render.RgbPink, progress)

	height := fb.Height()
	for i := range s.columns {
		col := &s.columns[i]
		// Newest glyph sits at the bottom of the column's trail
		for j := range col.glyphs {
			g := col.glyphs[len(col.glyphs)-1-j]
			y := height - 1 - j
			if y < 0 {
				break
			}
			fb.Set(col.x, y, g.char, base.Scale(alpha*g.brightness))
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
