package engine

import "math"

// BeatIntensity is the synthetic beat scalar: a steady pulse derived from
// song time, biased by the current scene's mood. Deliberately deterministic,
// no audio analysis.
func BeatIntensity(songTime float64, mood string) float64 {
	base := (math.Sin(songTime*3) + 1) / 2

	mult := 1.0
	switch mood {
	case "energetic", "celebration":
		mult = 1.2
	case "dreamy", "romantic":
		mult = 0.7
	}

	return math.Min(1.0, base*mult)
}
