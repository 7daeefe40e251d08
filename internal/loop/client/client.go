// Package client draws a game session in an ANSI terminal and feeds it key events.
package client

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/spaceblaster/spaceblaster/internal/draw"
	"github.com/spaceblaster/spaceblaster/internal/game"
	"github.com/spaceblaster/spaceblaster/internal/input"
	"github.com/spaceblaster/spaceblaster/internal/logging"
	"github.com/spaceblaster/spaceblaster/internal/loop/config"
)

// Client handles rendering and input for one terminal.
type Client struct {
	session      *game.Session
	canvas       *draw.Canvas
	frame        *draw.Frame
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
}

// Options configures the client.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Logger       *log.Logger
}

// NewClient creates a client for session reading keys from r and drawing to w.
func NewClient(session *game.Session, r *bufio.Reader, w io.Writer, opts Options) *Client {
	c := newClient(session, w, opts)
	c.inputStream = input.StartStream(r)
	return c
}

func newClient(session *game.Session, w io.Writer, opts Options) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	bounds := session.Snapshot().Bounds
	termWidth, termHeight, err := termSizeFunc()
	if err != nil {
		logger.Warn("terminal size", "err", err)
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, bounds.Width, bounds.Height)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Client{
		session:      session,
		canvas:       canvas,
		frame:        draw.NewFrame(w, offsetCol, offsetRow),
		writer:       w,
		termSizeFunc: termSizeFunc,
		logger:       logger,
	}
}

// Run draws frames until the user quits or ctx is cancelled.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)
	defer draw.ClearScreen(c.writer)

	for {
		frameStart := time.Now()

		select {
		case <-ctx.Done():
			return nil
		case <-c.session.Done():
			return nil
		default:
		}

		c.handleEvents(c.inputStream.Poll(frameStart))
		c.updateScreen()

		if err := c.drawFrame(); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}
}

func (c *Client) handleEvents(events []input.Event) {
	for _, ev := range events {
		c.session.HandleKey(ev)
	}
}

// updateScreen follows terminal resizes, clamping to the max render resolution.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() {
		c.logger.Debug("terminal resized", "cols", renderWidth, "rows", renderHeight)
	}
	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.frame.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and
// computes the offset that centres the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = max(1, min(termWidth, config.MaxRenderCols))
	renderHeight = max(1, min(termHeight, config.MaxRenderRows))
	offsetCol = max(0, (termWidth-renderWidth)/2)
	offsetRow = max(0, (termHeight-renderHeight)/2)
	return
}
