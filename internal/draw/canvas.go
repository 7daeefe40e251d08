package draw

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Canvas is a boolean pixel grid rendered with half-block characters, so each
// terminal cell holds two vertically stacked pixels. Drawing calls take
// playfield coordinates and scale them to pixels.
type Canvas struct {
	cols, rows int    // Terminal cells
	pixels     []bool // cols × rows*2, row major

	viewW, viewH   float64 // Playfield size the scale is derived from
	scaleX, scaleY float64 // Pixels per playfield unit

	offsetCol int // 0-based cells to skip when the terminal is larger than the canvas
	offsetRow int

	out    strings.Builder
	numBuf [20]byte
}

// NewCanvas creates an unscaled canvas: one playfield unit per pixel.
func NewCanvas(cols, rows int) *Canvas {
	return NewScaledCanvas(cols, rows, float64(cols), float64(rows*2))
}

// NewScaledCanvas creates a canvas of cols × rows cells showing a viewW × viewH playfield.
func NewScaledCanvas(cols, rows int, viewW, viewH float64) *Canvas {
	c := &Canvas{viewW: viewW, viewH: viewH}
	c.Resize(cols, rows)
	return c
}

// Resize changes the cell size and rescales; the playfield size is kept.
func (c *Canvas) Resize(cols, rows int) {
	if cols != c.cols || rows != c.rows || c.pixels == nil {
		c.cols, c.rows = cols, rows
		c.pixels = make([]bool, cols*rows*2)
	}
	c.scaleX = float64(cols) / c.viewW
	c.scaleY = float64(rows*2) / c.viewH
}

// SetOffset places the canvas at 0-based cell (col, row) of the terminal.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Clear unsets every pixel.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// TerminalWidth returns the canvas width in cells.
func (c *Canvas) TerminalWidth() int { return c.cols }

// TerminalHeight returns the canvas height in cells.
func (c *Canvas) TerminalHeight() int { return c.rows }

// LogicalToTerminal converts a playfield point to the 1-based cell containing it.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px, py := c.toPixel(x, y)
	return px + 1, py/2 + 1
}

func (c *Canvas) toPixel(x, y float64) (int, int) {
	return int(math.Round(x * c.scaleX)), int(math.Round(y * c.scaleY))
}

// span sets pixels x0..x1 of pixel row y, clipped to the canvas.
func (c *Canvas) span(x0, x1, y int) {
	if y < 0 || y >= c.rows*2 {
		return
	}
	x0, x1 = max(x0, 0), min(x1, c.cols-1)
	base := y * c.cols
	for x := x0; x <= x1; x++ {
		c.pixels[base+x] = true
	}
}

// DrawRect draws the box with playfield corners (minX, minY) and (maxX, maxY).
// Both corner pixels are included. An unfilled box is a one pixel outline.
func (c *Canvas) DrawRect(minX, minY, maxX, maxY float64, filled bool) {
	x0, y0 := c.toPixel(minX, minY)
	x1, y1 := c.toPixel(maxX, maxY)
	if x1 < x0 || y1 < y0 {
		return
	}

	if filled {
		for y := y0; y <= y1; y++ {
			c.span(x0, x1, y)
		}
		return
	}

	c.span(x0, x1, y0)
	c.span(x0, x1, y1)
	for y := y0 + 1; y < y1; y++ {
		c.span(x0, x0, y)
		c.span(x1, x1, y)
	}
}

// DrawHLine draws a horizontal line at playfield height y from x0 to x1.
func (c *Canvas) DrawHLine(x0, x1, y float64) {
	c.DrawRect(min(x0, x1), y, max(x0, x1), y, true)
}

// Render writes every non-empty cell to w as a cursor move plus a half block.
func (c *Canvas) Render(w io.Writer) {
	c.out.Reset()
	for row := range c.rows {
		top := c.pixels[row*2*c.cols : (row*2+1)*c.cols]
		bottom := c.pixels[(row*2+1)*c.cols : (row*2+2)*c.cols]
		for col := range c.cols {
			var ch rune
			switch {
			case top[col] && bottom[col]:
				ch = BlockFull
			case top[col]:
				ch = BlockUpperHalf
			case bottom[col]:
				ch = BlockLowerHalf
			default:
				continue
			}
			c.moveTo(row+1+c.offsetRow, col+1+c.offsetCol)
			c.out.WriteRune(ch)
		}
	}
	io.WriteString(w, c.out.String())
}

func (c *Canvas) moveTo(row, col int) {
	c.out.WriteString("\033[")
	c.out.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.out.WriteByte(';')
	c.out.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.out.WriteByte('H')
}

// RenderBorder frames the canvas with box drawing characters on the sides
// where the terminal leaves room for them.
func (c *Canvas) RenderBorder(w io.Writer) {
	sides := c.offsetCol >= 1
	ends := c.offsetRow >= 1
	if !sides && !ends {
		return
	}

	c.out.Reset()
	left, right := c.offsetCol, c.offsetCol+c.cols+1
	top, bottom := c.offsetRow, c.offsetRow+c.rows+1
	bar := strings.Repeat("─", c.cols)

	if ends {
		if sides {
			c.moveTo(top, left)
			c.out.WriteString("┌" + bar + "┐")
			c.moveTo(bottom, left)
			c.out.WriteString("└" + bar + "┘")
		} else {
			c.moveTo(top, left+1)
			c.out.WriteString(bar)
			c.moveTo(bottom, left+1)
			c.out.WriteString(bar)
		}
	}
	if sides {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.rows; row++ {
			c.moveTo(row, left)
			c.out.WriteString("│")
			c.moveTo(row, right)
			c.out.WriteString("│")
		}
	}
	io.WriteString(w, c.out.String())
}
