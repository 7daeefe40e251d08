package hud

import "github.com/spaceblaster/spaceblaster/internal/physics"

// Menu button size and spacing in playfield units.
const (
	ButtonWidth   = 200
	ButtonHeight  = 40
	ButtonSpacing = 10
)

// Buttons stacks n buttons centred on the playfield, top to bottom.
func Buttons(b physics.Bounds, n int) []physics.Rect {
	if n <= 0 {
		return nil
	}
	field := b.Height - b.HUDHeight
	total := float64(n)*ButtonHeight + float64(n-1)*ButtonSpacing
	x := (b.Width - ButtonWidth) / 2
	y := (field - total) / 2

	rects := make([]physics.Rect, n)
	for i := range rects {
		top := y + float64(i)*(ButtonHeight+ButtonSpacing)
		rects[i] = physics.Rect{MinX: x, MinY: top, MaxX: x + ButtonWidth, MaxY: top + ButtonHeight}
	}
	return rects
}

// ButtonAt returns the index of the button under (x, y) among n stacked buttons, or -1.
func ButtonAt(b physics.Bounds, n int, x, y float64) int {
	for i, r := range Buttons(b, n) {
		if x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY {
			return i
		}
	}
	return -1
}
