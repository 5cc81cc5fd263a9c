package render

import (
	"github.com/gdamore/tcell/v2"
	runewidth "github.com/mattn/go-runewidth"
)

// Cell is one character slot in the frame buffer
type Cell struct {
	Rune rune
	Fg   RGB
}

// Buffer is the frame sink scenes paint into. Writes outside the grid are
// silent no-ops; the whole grid is flushed to the terminal once per tick.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a cleared buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocating only when capacity is short
func (b *Buffer) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blanks using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: RgbBlack}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set places a single rune at (x, y). Out-of-bounds writes are dropped.
func (b *Buffer) Set(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg}
}

// SetText places a horizontal run starting at (x, y), advancing by display
// width so double-width runes occupy two cells. Clips per cell.
func (b *Buffer) SetText(x, y int, text string, fg RGB) {
	if y < 0 || y >= b.height {
		return
	}
	cx := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.Set(cx, y, r, fg)
		if w == 2 {
			// Shadow cell keeps the grid aligned under a wide rune
			b.Set(cx+1, y, 0, fg)
		}
		cx += w
	}
}

// At returns the cell at (x, y), or a blank cell when out of bounds
func (b *Buffer) At(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{Rune: ' ', Fg: RgbBlack}
	}
	return b.cells[y*b.width+x]
}

// Flush writes every cell to the tcell screen and shows the frame
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			r := c.Rune
			if r == 0 {
				continue // shadow cell of a wide rune
			}
			style := tcell.StyleDefault.
				Foreground(c.Fg.Color()).
				Background(tcell.ColorBlack)
			screen.SetContent(x, y, r, nil, style)
		}
	}
	screen.Show()
}
