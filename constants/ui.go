package constants

// Lyric Overlay
const (
	// LyricPaddingDivisor gives the per-side padding as width/divisor
	LyricPaddingDivisor = 10

	// LyricMinPadding is the smallest per-side padding in cells
	LyricMinPadding = 4

	// LyricMinTextWidth is the narrowest wrap width before padding collapses
	LyricMinTextWidth = 20
)

// Spectrum Visualizer
const (
	// VisualizerBars is the number of simulated spectrum bars
	VisualizerBars = 20

	// VisualizerRows is the height of the bar strip at the screen bottom
	VisualizerRows = 3
)
