package render

import (
	"math"
	"math/rand"

	"serenade/constants"
)

// Visualizer block ramp, index = level 0..7
var blockChars = []rune(" ▂▃▄▅▆▇█")

// Spectrum is the simulated beat reactor drawn along the bottom of every
// frame. Layered sines stand in for a real FFT - the point is convincing
// motion without audio-analysis latency.
type Spectrum struct {
	numBars int
	offset  float64
	heights []float64
}

// NewSpectrum creates a visualizer with the given bar count
func NewSpectrum(numBars int) *Spectrum {
	if numBars < 1 {
		numBars = constants.VisualizerBars
	}
	return &Spectrum{
		numBars: numBars,
		offset:  rand.Float64() * 100,
		heights: make([]float64, numBars),
	}
}

// Update advances the bars by dt, scaled by beat intensity
func (s *Spectrum) Update(dt, beatIntensity float64) {
	s.offset += dt * 2

	for i := range s.heights {
		fi := float64(i)
		noise := math.Sin(s.offset+fi*0.3) +
			math.Sin(s.offset*1.5+fi*0.7)*0.5 +
			math.Sin(s.offset*2.3+fi*1.1)*0.25

		noise = (noise + 1.75) / 3.5
		noise = math.Max(0, math.Min(1, noise))

		energy := noise * (0.3 + beatIntensity*0.7)
		s.heights[i] = s.heights[i]*0.7 + energy*0.3
	}
}

// Render draws the bar strip into the bottom rows of the buffer
func (s *Spectrum) Render(fb *Buffer) {
	width, height := fb.Width(), fb.Height()
	barWidth := width / s.numBars
	if barWidth < 2 {
		barWidth = 2
	}

	for row := 0; row < constants.VisualizerRows; row++ {
		y := height - constants.VisualizerRows + row
		x := 0
		for i := 0; i < s.numBars && x < width; i++ {
			h := s.heights[i]
			level := int(h * 8)
			ch := ' '
			if level > 0 && row*3 < level {
				idx := level - row*3
				if idx > 7 {
					idx = 7
				}
				if idx < 1 {
					idx = 1
				}
				ch = blockChars[idx]
			}
			color := Gradient(h).Scale(0.6)
			for dx := 0; dx < barWidth; dx++ {
				fb.Set(x+dx, y, ch, color)
			}
			x += barWidth
		}
	}
}
