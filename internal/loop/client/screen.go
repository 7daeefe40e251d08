package client

import (
	"fmt"
	"strings"

	"github.com/spaceblaster/spaceblaster/internal/draw"
	"github.com/spaceblaster/spaceblaster/internal/game"
	"github.com/spaceblaster/spaceblaster/internal/hud"
	"github.com/spaceblaster/spaceblaster/internal/loop/sim"
)

const title = "S P A C E   B L A S T E R"

// drawFrame draws the latest snapshot and the overlay of the current screen.
func (c *Client) drawFrame() error {
	f := c.frame
	f.WriteString("\033[H\033[2J")
	c.canvas.Clear()

	snap := c.session.Snapshot()
	for _, d := range snap.Entities {
		r := d.Rect()
		c.canvas.DrawRect(r.MinX, r.MinY, r.MaxX, r.MaxY, d.Sprite != "")
	}
	top := snap.Bounds.Height - snap.Bounds.HUDHeight
	c.canvas.DrawHLine(0, snap.Bounds.Width, top)

	c.canvas.Render(f)
	c.canvas.RenderBorder(f)

	c.drawHUD(snap)

	if state := c.session.State(); state != game.StatePlaying {
		c.drawMenu(state)
	}

	return f.Flush()
}

// drawHUD writes the status line: money, health bar, score and level.
func (c *Client) drawHUD(snap *sim.Snapshot) {
	f := c.frame
	cellWidth := snap.Bounds.Width / float64(c.canvas.TerminalWidth())
	layout := hud.Compute(snap.Bounds, snap.HUD, func(s string) float64 {
		return float64(len(s)) * cellWidth
	})

	for _, t := range []hud.Text{layout.Money, layout.Score, layout.Level} {
		col, row := c.canvas.LogicalToTerminal(t.X, t.Y)
		f.WriteAt(max(1, col), row, t.S)
	}

	midY := (layout.HealthBar.MinY + layout.HealthBar.MaxY) / 2
	start, row := c.canvas.LogicalToTerminal(layout.HealthBar.MinX, midY)
	end, _ := c.canvas.LogicalToTerminal(layout.HealthBar.MaxX, midY)
	fill, _ := c.canvas.LogicalToTerminal(layout.HealthFill.MaxX, midY)
	if end <= start {
		return
	}

	r, g, b := layout.Health.RGB255()
	f.MoveCursor(start, row)
	f.Foreground(r, g, b)
	f.WriteString(strings.Repeat(string(draw.BlockFull), fill-start))
	f.ResetStyle()
	f.WriteString(strings.Repeat(string(draw.BlockLight), end-fill))
}

// drawMenu writes the title, body text and numbered buttons of a menu screen.
func (c *Client) drawMenu(state game.State) {
	f := c.frame
	centerX := c.canvas.TerminalWidth() / 2
	row := c.canvas.TerminalHeight()/2 - 6

	var heading string
	var body []string
	switch state {
	case game.StateMainMenu:
		heading = title
	case game.StatePaused:
		heading = "PAUSED"
	case game.StateStore:
		body = game.StoreText
	case game.StateCredits:
		body = game.CreditsText
	case game.StateInfo:
		heading = "CONTROLS"
		body = game.InfoText
	}

	if heading != "" {
		f.WriteAt(centerX-len(heading)/2, row, heading)
		row += 2
	}
	width := 0
	for _, line := range body {
		width = max(width, len(line))
	}
	for _, line := range body {
		f.WriteAt(centerX-width/2, row, line)
		row++
	}
	if len(body) > 0 {
		row++
	}

	for i, b := range game.Buttons(state) {
		label := fmt.Sprintf("[%d] %s", i+1, b.Label())
		f.WriteAt(centerX-len(label)/2, row, label)
		row++
	}
}
