// Package physics provides axis-aligned collision and playfield bounds utilities.
package physics

// Rect is an axis-aligned bounding box in playfield coordinates.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// RectFromCenter builds the box of a w×h sprite centred at (x, y).
func RectFromCenter(x, y, w, h float64) Rect {
	return Rect{
		MinX: x - w/2,
		MinY: y - h/2,
		MaxX: x + w/2,
		MaxY: y + h/2,
	}
}

// Width returns the horizontal extent of the box.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent of the box.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Intersects reports whether two boxes overlap.
// Boxes that only share an edge do not intersect, and empty boxes intersect nothing.
func (r Rect) Intersects(o Rect) bool {
	if r.Width() <= 0 || r.Height() <= 0 || o.Width() <= 0 || o.Height() <= 0 {
		return false
	}
	return r.MinX < o.MaxX && o.MinX < r.MaxX &&
		r.MinY < o.MaxY && o.MinY < r.MaxY
}

// Bounds describes the playfield. The bottom HUDHeight units are covered by the HUD
// and count as outside.
type Bounds struct {
	Width     float64
	Height    float64
	HUDHeight float64
}

// Contains reports whether an entity centred at (x, y) with width w is still on the
// playfield. Horizontally any overlap counts; vertically only the centre is tested
// against the HUD line. There is no top edge: enemies spawn at y=0 and drift down.
func (b Bounds) Contains(x, y, w float64) bool {
	return x+w/2 > 0 && x-w/2 < b.Width && y < b.Height-b.HUDHeight
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
