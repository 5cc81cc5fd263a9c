package render

// Fixed RGB values for consistent appearance across terminals
var (
	RgbPink  = RGB{255, 105, 180} // Hot Pink
	RgbBlue  = RGB{0, 191, 255}   // Deep Sky Blue
	RgbCyan  = RGB{0, 255, 255}   // Cyan
	RgbGold  = RGB{255, 215, 0}   // Gold
	RgbWhite = RGB{255, 255, 255} // White
	RgbBlack = RGB{0, 0, 0}       // Black

	RgbMatrixGreen = RGB{0, 255, 0} // Rain column start color
	RgbLyricText   = RGB{255, 130, 200}
	RgbDimCyan     = RGB{0, 130, 130} // Visualizer strip
)

// ParticleColors is the default palette particle spawners pick from
var ParticleColors = []RGB{RgbPink, RgbBlue, RgbGold, RgbWhite}

// Gradient maps intensity in [0,1] through blue -> cyan -> pink -> gold,
// the same ramp for visualizer bars and waveform columns.
func Gradient(intensity float64) RGB {
	switch {
	case intensity <= 0.0:
		return RgbBlue
	case intensity < 0.33:
		return RgbBlue.Lerp(RgbCyan, intensity/0.33)
	case intensity < 0.66:
		return RgbCyan.Lerp(RgbPink, (intensity-0.33)/0.33)
	case intensity < 1.0:
		return RgbPink.Lerp(RgbGold, (intensity-0.66)/0.34)
	default:
		return RgbGold
	}
}
