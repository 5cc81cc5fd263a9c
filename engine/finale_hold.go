package engine

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	runewidth "github.com/mattn/go-runewidth"

	"serenade/render"
)

// HoldFinale settles the display into a static closing screen and blocks
// until Enter (or a quit key) is pressed. Called after the tick loop has
// finished, so it owns event polling.
func HoldFinale(screen tcell.Screen, message string) {
	draw := func() {
		width, height := screen.Size()
		fb := render.NewBuffer(width, height)

		cy := height / 2
		hearts := "♥ ♥ ♥"
		fb.SetText((width-runewidth.StringWidth(hearts))/2, cy-3, hearts, render.RgbPink)

		for i, line := range strings.Split(message, "\n") {
			fb.SetText((width-runewidth.StringWidth(line))/2, cy-1+i, line, render.RgbPink)
		}

		prompt := "Press Enter to exit..."
		fb.SetText((width-len(prompt))/2, height-3, prompt, render.RgbDimCyan)

		fb.Flush(screen)
	}

	draw()
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEnter,
				ev.Key() == tcell.KeyEscape,
				ev.Key() == tcell.KeyCtrlC,
				ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				return
			}
		case *tcell.EventResize:
			screen.Sync()
			draw()
		case nil:
			return
		}
	}
}
