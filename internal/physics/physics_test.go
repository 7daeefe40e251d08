package physics

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlap", RectFromCenter(10, 10, 10, 10), RectFromCenter(14, 12, 10, 10), true},
		{"contained", RectFromCenter(10, 10, 20, 20), RectFromCenter(10, 10, 2, 2), true},
		{"touching edge", RectFromCenter(10, 10, 10, 10), RectFromCenter(20, 10, 10, 10), false},
		{"apart", RectFromCenter(0, 0, 10, 10), RectFromCenter(100, 100, 10, 10), false},
		{"empty box", RectFromCenter(10, 10, 0, 10), RectFromCenter(10, 10, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("a.Intersects(b) = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("b.Intersects(a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{Width: 800, Height: 600, HUDHeight: 50}

	tests := []struct {
		name    string
		x, y, w float64
		want    bool
	}{
		{"centre", 400, 300, 10, true},
		{"spawn row", 400, 0, 10, true},
		{"above top", 400, -500, 10, true},
		{"left overlap", -4, 100, 10, true},
		{"left gone", -5, 100, 10, false},
		{"right overlap", 804, 100, 10, true},
		{"right gone", 805, 100, 10, false},
		{"just above hud", 400, 549.9, 10, true},
		{"hud line", 400, 550, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.x, tt.y, tt.w); got != tt.want {
				t.Errorf("Contains(%v, %v, %v) = %v, want %v", tt.x, tt.y, tt.w, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-2, -1, 1); got != -1 {
		t.Errorf("Clamp below = %v, want -1", got)
	}
	if got := Clamp(2, -1, 1); got != 1 {
		t.Errorf("Clamp above = %v, want 1", got)
	}
	if got := Clamp(0.5, -1, 1); got != 0.5 {
		t.Errorf("Clamp inside = %v, want 0.5", got)
	}
}
