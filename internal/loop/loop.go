// Package loop runs a game session in the terminal.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/spaceblaster/spaceblaster/internal/config"
	"github.com/spaceblaster/spaceblaster/internal/draw"
	"github.com/spaceblaster/spaceblaster/internal/game"
	"github.com/spaceblaster/spaceblaster/internal/loop/client"
)

// Options configures Run.
type Options struct {
	Settings     config.Settings
	Logger       *log.Logger
	Seed         int64             // 0 uses Settings.Loop.Seed, then the clock
	TermSizeFunc draw.TermSizeFunc // Defaults to the size of stdout
}

// Run starts a session on the main menu and blocks until the user quits or ctx
// is cancelled. r must deliver raw key bytes.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	session, err := game.New(ctx, game.Options{
		Settings: opts.Settings,
		Logger:   opts.Logger,
		Seed:     opts.Seed,
	})
	if err != nil {
		return fmt.Errorf("new session: %w", err)
	}
	defer session.Close()

	c := client.NewClient(session, r, w, client.Options{
		TermSizeFunc: opts.TermSizeFunc,
		Logger:       opts.Logger,
	})
	return c.Run(ctx)
}
