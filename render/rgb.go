package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit color value. Scenes hand these to the frame buffer;
// the buffer converts to tcell styles only at flush time.
type RGB struct {
	R, G, B uint8
}

// Scale dims the color toward black by alpha. This is the crossfade
// primitive: every channel is pre-multiplied before it reaches the buffer.
func (c RGB) Scale(alpha float64) RGB {
	if alpha >= 1.0 {
		return c
	}
	if alpha <= 0.0 {
		return RGB{}
	}
	return RGB{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
	}
}

// Lerp interpolates toward dst in Luv space, which avoids the muddy
// midpoints a per-channel lerp produces.
func (c RGB) Lerp(dst RGB, t float64) RGB {
	if t <= 0.0 {
		return c
	}
	if t >= 1.0 {
		return dst
	}
	blended := c.colorful().BlendLuv(dst.colorful(), t)
	return fromColorful(blended)
}

// Color converts to a tcell color for terminal output.
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}
