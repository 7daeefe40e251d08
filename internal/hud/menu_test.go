package hud

import (
	"testing"

	"github.com/spaceblaster/spaceblaster/internal/physics"
)

func TestButtonsAreCentredAndStacked(t *testing.T) {
	b := physics.Bounds{Width: 800, Height: 600, HUDHeight: 50}

	rects := Buttons(b, 3)
	if len(rects) != 3 {
		t.Fatalf("len = %d, want 3", len(rects))
	}
	// 3*40 + 2*10 = 140 tall, centred in the 550 unit field.
	if rects[0].MinX != 300 || rects[0].MinY != 205 {
		t.Errorf("first button at (%v, %v), want (300, 205)", rects[0].MinX, rects[0].MinY)
	}
	if rects[2].MaxY != 345 {
		t.Errorf("last button bottom = %v, want 345", rects[2].MaxY)
	}
	for i := 1; i < len(rects); i++ {
		if rects[i].Intersects(rects[i-1]) {
			t.Errorf("buttons %d and %d overlap", i-1, i)
		}
	}

	if Buttons(b, 0) != nil {
		t.Error("Buttons(0) should be nil")
	}
}

func TestButtonAt(t *testing.T) {
	b := physics.Bounds{Width: 800, Height: 600, HUDHeight: 50}

	tests := []struct {
		name string
		x, y float64
		want int
	}{
		{"first", 400, 210, 0},
		{"second", 310, 260, 1},
		{"gap", 400, 250, -1},
		{"left of", 299, 210, -1},
		{"below", 400, 500, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ButtonAt(b, 3, tt.x, tt.y); got != tt.want {
				t.Errorf("ButtonAt(%v, %v) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
