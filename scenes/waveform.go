package scenes

import (
	"math"

	"serenade/render"
)

var waveformBlocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Waveform is the energetic scene: gradient-colored bars rising from the
// bottom of the screen, driven by a traveling sine and the beat.
type Waveform struct {
	heights []float64
	offset  float64
	numBars int
	lastW   int
}

// NewWaveform creates the waveform scene
func NewWaveform(ctx Context) Scene {
	s := &Waveform{}
	s.ensureBars(ctx.Width)
	return s
}

func (s *Waveform) Name() string { return "waveform" }
func (s *Waveform) Mood() string { return "energetic" }

func (s *Waveform) Enter() {
	s.offset = 0
	for i := range s.heights {
		s.heights[i] = 0
	}
}

func (s *Waveform) Exit() {}

func (s *Waveform) ensureBars(width int) {
	target := width / 3
	if target < 20 {
		target = 20
	}
	if len(s.heights) > 0 && abs(target-s.numBars) <= 5 {
		s.lastW = width
		return
	}
	s.numBars = target
	s.lastW = width
	s.heights = make([]float64, s.numBars)
}

func (s *Waveform) Update(dt float64, ctx Context) {
	s.ensureBars(ctx.Width)
	s.offset += dt * 3

	for i := range s.heights {
		wave := (math.Sin(s.offset+float64(i)*0.3) + 1) / 2
		h := wave * (0.3 + ctx.BeatIntensity*0.7)
		s.heights[i] = s.heights[i]*0.8 + h*0.2
	}
}

func (s *Waveform) Render(fb *render.Buffer, alpha float64) {
	width, height := fb.Width(), fb.Height()
	maxHeight := height / 2
	if maxHeight < 1 {
		maxHeight = 1
	}
	barWidth := width / s.numBars
	if barWidth < 1 {
		barWidth = 1
	}

	for i, h := range s.heights {
		barHeight := int(h * float64(maxHeight))
		x := i * width / s.numBars
		color := render.Gradient(h).Scale(alpha)

		for y := 0; y < barHeight; y++ {
			screenY := height - 2 - y
			if screenY < 0 {
				break
			}
			blockIdx := y * 9 / maxHeight
			if blockIdx > 8 {
				blockIdx = 8
			}
			for dx := 0; dx < barWidth && x+dx < width; dx++ {
				fb.Set(x+dx, screenY, waveformBlocks[blockIdx], color)
			}
		}
	}
}
