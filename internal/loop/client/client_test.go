package client

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spaceblaster/spaceblaster/internal/config"
	"github.com/spaceblaster/spaceblaster/internal/game"
	"github.com/spaceblaster/spaceblaster/internal/input"
	loopconfig "github.com/spaceblaster/spaceblaster/internal/loop/config"
)

func newTestClient(t *testing.T, cols, rows int) (*Client, *game.Session, *bytes.Buffer) {
	t.Helper()
	session, err := game.New(context.Background(), game.Options{Settings: config.Default(), Seed: 1})
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	t.Cleanup(session.Close)

	var out bytes.Buffer
	c := newClient(session, &out, Options{
		TermSizeFunc: func() (int, int, error) { return cols, rows, nil },
	})
	return c, session, &out
}

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		name                   string
		cols, rows             int
		wantW, wantH           int
		wantOffCol, wantOffRow int
	}{
		{"small", 80, 24, 80, 24, 0, 0},
		{"wide", loopconfig.MaxRenderCols + 40, 24, loopconfig.MaxRenderCols, 24, 20, 0},
		{"tall", 80, loopconfig.MaxRenderRows + 10, 80, loopconfig.MaxRenderRows, 0, 5},
		{"zero", 0, 0, 1, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, oc, or := clampTermSize(tt.cols, tt.rows)
			if w != tt.wantW || h != tt.wantH || oc != tt.wantOffCol || or != tt.wantOffRow {
				t.Errorf("clampTermSize(%d, %d) = %d, %d, %d, %d", tt.cols, tt.rows, w, h, oc, or)
			}
		})
	}
}

func TestDrawFrameMainMenu(t *testing.T) {
	c, _, out := newTestClient(t, 80, 24)

	if err := c.drawFrame(); err != nil {
		t.Fatalf("drawFrame: %v", err)
	}
	got := out.String()
	for _, want := range []string{title, "[1] Play", "[4] Quit", "Score: 0", "Level 1", "$0.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("frame missing %q", want)
		}
	}
}

func TestDrawFrameHealthBarColour(t *testing.T) {
	c, _, out := newTestClient(t, 80, 24)

	if err := c.drawFrame(); err != nil {
		t.Fatalf("drawFrame: %v", err)
	}
	// Full health renders in pure green.
	if !strings.Contains(out.String(), "\033[38;2;0;255;0m") {
		t.Error("health bar is not drawn in green at full health")
	}
}

func TestHandleEventsDrivesSession(t *testing.T) {
	c, session, out := newTestClient(t, 80, 24)

	c.handleEvents([]input.Event{{Key: input.KeyMenu3, Down: true}, {Key: input.KeyMenu3}})
	if got := session.State(); got != game.StateInfo {
		t.Fatalf("state after [3] = %v, want info", got)
	}
	if err := c.drawFrame(); err != nil {
		t.Fatalf("drawFrame: %v", err)
	}
	if !strings.Contains(out.String(), "CONTROLS") || !strings.Contains(out.String(), "[1] Back") {
		t.Error("controls screen not drawn")
	}

	c.handleEvents([]input.Event{{Key: input.KeyBack, Down: true}})
	if got := session.State(); got != game.StateMainMenu {
		t.Errorf("state after back = %v, want main_menu", got)
	}
}

func TestDrawFramePlayingHasNoMenu(t *testing.T) {
	c, session, out := newTestClient(t, 80, 24)

	session.Click(game.ButtonPlay)
	if err := c.drawFrame(); err != nil {
		t.Fatalf("drawFrame: %v", err)
	}
	if strings.Contains(out.String(), "[1]") {
		t.Error("menu buttons drawn while playing")
	}
}

func TestUpdateScreenFollowsResize(t *testing.T) {
	cols, rows := 80, 24
	session, err := game.New(context.Background(), game.Options{Settings: config.Default(), Seed: 1})
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	defer session.Close()
	c := newClient(session, &bytes.Buffer{}, Options{
		TermSizeFunc: func() (int, int, error) { return cols, rows, nil },
	})

	cols, rows = 100, 30
	c.updateScreen()
	if c.canvas.TerminalWidth() != 100 || c.canvas.TerminalHeight() != 30 {
		t.Errorf("canvas = %dx%d, want 100x30", c.canvas.TerminalWidth(), c.canvas.TerminalHeight())
	}
}
