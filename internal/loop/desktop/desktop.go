// Package desktop runs a game session in an ebiten window.
package desktop

import (
	"context"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/spaceblaster/spaceblaster/internal/config"
	"github.com/spaceblaster/spaceblaster/internal/game"
	"github.com/spaceblaster/spaceblaster/internal/hud"
	"github.com/spaceblaster/spaceblaster/internal/input"
	"github.com/spaceblaster/spaceblaster/internal/logging"
	"github.com/spaceblaster/spaceblaster/internal/loop/sim"
	"github.com/spaceblaster/spaceblaster/internal/object"
	"github.com/spaceblaster/spaceblaster/internal/physics"
)

// Glyph size of ebitenutil.DebugPrint.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

var keymap = map[ebiten.Key]input.Key{
	ebiten.KeyW:          input.KeyUp,
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeyS:          input.KeyDown,
	ebiten.KeyArrowDown:  input.KeyDown,
	ebiten.KeyA:          input.KeyLeft,
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyD:          input.KeyRight,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeySpace:      input.KeyFire,
	ebiten.KeyP:          input.KeyPause,
	ebiten.KeyQ:          input.KeyQuit,
	ebiten.KeyEnter:      input.KeyEnter,
	ebiten.KeyEscape:     input.KeyBack,
	ebiten.KeyBackspace:  input.KeyBack,
	ebiten.KeyDigit1:     input.KeyMenu1,
	ebiten.KeyDigit2:     input.KeyMenu2,
	ebiten.KeyDigit3:     input.KeyMenu3,
	ebiten.KeyDigit4:     input.KeyMenu4,
}

// Options configures Run.
type Options struct {
	Settings config.Settings
	Logger   *log.Logger
	Seed     int64
}

// Run opens the window and blocks until it is closed, the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	session, err := game.New(ctx, game.Options{
		Settings: opts.Settings,
		Logger:   opts.Logger,
		Seed:     opts.Seed,
	})
	if err != nil {
		return fmt.Errorf("new session: %w", err)
	}
	defer session.Close()

	g := New(ctx, session, opts.Logger)
	ebiten.SetWindowSize(int(g.bounds.Width), int(g.bounds.Height))
	ebiten.SetWindowTitle("Space Blaster")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

// Game adapts a session to ebiten.Game.
type Game struct {
	ctx     context.Context
	session *game.Session
	logger  *log.Logger
	bounds  physics.Bounds
	focused bool
	keys    []ebiten.Key
}

// New wraps session. The window stops when ctx is cancelled.
func New(ctx context.Context, session *game.Session, logger *log.Logger) *Game {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Game{
		ctx:     ctx,
		session: session,
		logger:  logger,
		bounds:  session.Snapshot().Bounds,
		focused: true,
		keys:    make([]ebiten.Key, 0, 8),
	}
}

// Update forwards keyboard and mouse input to the session.
func (g *Game) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	case <-g.session.Done():
		return ebiten.Termination
	default:
	}

	// Losing focus (minimised or switched away) pauses a running game.
	focused := ebiten.IsFocused()
	if g.focused && !focused {
		g.logger.Debug("window lost focus")
		g.session.Suspend()
	}
	g.focused = focused

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if key, ok := keymap[k]; ok {
			g.session.HandleKey(input.Event{Key: key, Down: true})
		}
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		if key, ok := keymap[k]; ok {
			g.session.HandleKey(input.Event{Key: key, Down: false})
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		buttons := g.session.Buttons()
		x, y := ebiten.CursorPosition()
		if i := hud.ButtonAt(g.bounds, len(buttons), float64(x), float64(y)); i >= 0 {
			g.session.Click(buttons[i])
		}
	}
	return nil
}

// Draw renders the latest snapshot, the HUD and any open menu.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	snap := g.session.Snapshot()
	for _, d := range snap.Entities {
		r := d.Rect()
		if d.Sprite == "" {
			strokeRect(screen, r, 1, colorOf(d))
			continue
		}
		fillRect(screen, r, colorOf(d))
	}

	g.drawHUD(screen, snap)

	if state := g.session.State(); state != game.StatePlaying {
		g.drawMenu(screen, state)
	}
}

// Layout keeps the logical playfield size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.bounds.Width), int(g.bounds.Height)
}

func (g *Game) drawHUD(screen *ebiten.Image, snap *sim.Snapshot) {
	layout := hud.Compute(snap.Bounds, snap.HUD, measure)

	fillRect(screen, layout.Bar, colornames.Dimgray)
	fillRect(screen, layout.HealthFill, layout.Health)
	strokeRect(screen, layout.HealthBar, 2, colornames.White)

	for _, t := range []hud.Text{layout.Money, layout.Score, layout.Level} {
		ebitenutil.DebugPrintAt(screen, t.S, int(t.X), int(t.Y))
	}
}

func (g *Game) drawMenu(screen *ebiten.Image, state game.State) {
	field := physics.Rect{MaxX: g.bounds.Width, MaxY: g.bounds.Height - g.bounds.HUDHeight}
	fillRect(screen, field, color.RGBA{A: 160})

	var heading string
	var body []string
	switch state {
	case game.StateMainMenu:
		heading = "SPACE BLASTER"
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

	buttons := game.Buttons(state)
	rects := hud.Buttons(g.bounds, len(buttons))

	top := field.MaxY / 4
	if len(rects) > 0 {
		top = rects[0].MinY - float64(len(body)+3)*glyphHeight
	}
	if heading != "" {
		printCentered(screen, heading, g.bounds.Width/2, top)
	}
	for i, line := range body {
		printCentered(screen, line, g.bounds.Width/2, top+float64(i+2)*glyphHeight)
	}

	for i, b := range buttons {
		r := rects[i]
		fillRect(screen, r, colornames.Darkslateblue)
		strokeRect(screen, r, 1, colornames.White)
		label := fmt.Sprintf("%d  %s", i+1, b.Label())
		printCentered(screen, label, (r.MinX+r.MaxX)/2, (r.MinY+r.MaxY-glyphHeight)/2)
	}
}

// colorOf picks a colour by variant, and by faction for lasers.
func colorOf(d sim.Drawable) color.Color {
	switch d.Kind {
	case object.KindPlayer:
		return colornames.Deepskyblue
	case object.KindBasicEnemy:
		return colornames.Orangered
	case object.KindF250Bullet:
		return colornames.Gold
	case object.KindLaser:
		if d.Faction == object.FactionPlayer {
			return colornames.Lime
		}
		return colornames.Red
	}
	return colornames.White
}

func measure(s string) float64 {
	return float64(len(s) * glyphWidth)
}

func printCentered(screen *ebiten.Image, s string, cx, y float64) {
	ebitenutil.DebugPrintAt(screen, s, int(cx-measure(s)/2), int(y))
}

func fillRect(screen *ebiten.Image, r physics.Rect, c color.Color) {
	if r.Width() <= 0 || r.Height() <= 0 {
		return
	}
	vector.DrawFilledRect(screen, float32(r.MinX), float32(r.MinY), float32(r.Width()), float32(r.Height()), c, false)
}

func strokeRect(screen *ebiten.Image, r physics.Rect, width float32, c color.Color) {
	vector.StrokeRect(screen, float32(r.MinX), float32(r.MinY), float32(r.Width()), float32(r.Height()), width, c, false)
}
