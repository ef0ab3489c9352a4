// Package loop owns the fixed-tick scheduler and drives the simulation
// against a terminal renderer.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mvesely/pongx64/internal/config"
	"github.com/mvesely/pongx64/internal/draw"
	"github.com/mvesely/pongx64/internal/game"
	"github.com/mvesely/pongx64/internal/input"
)

// DefaultTickPeriod is the classic cadence: one ball advance every 50ms.
const DefaultTickPeriod = 50 * time.Millisecond

// Maximum render area in terminal cells. 153x64 keeps the 612x512 arena at
// an exact quarter scale on both axes (rows count double via half-blocks);
// larger terminals get a centered arena with a border around it.
const (
	maxRenderCols = 153
	maxRenderRows = 64
)

// quitKey ends the session from the keyboard.
const quitKey = "q"

// Options configure a game session.
type Options struct {
	TickPeriod   time.Duration     // Defaults to DefaultTickPeriod
	Bindings     game.Bindings     // Defaults to game.DefaultBindings
	TermSizeFunc draw.TermSizeFunc // Defaults to draw.DefaultTermSizeFunc
}

func (o *Options) fill() {
	if o.TickPeriod <= 0 {
		o.TickPeriod = DefaultTickPeriod
	}
	if (o.Bindings == game.Bindings{}) {
		o.Bindings = game.DefaultBindings()
	}
	if o.TermSizeFunc == nil {
		o.TermSizeFunc = draw.DefaultTermSizeFunc
	}
}

// OptionsFromEnv builds Options from the PONG_* environment variables,
// falling back to the defaults.
func OptionsFromEnv() Options {
	def := game.DefaultBindings()
	return Options{
		TickPeriod: config.GetEnvDuration("PONG_TICK_MS", DefaultTickPeriod),
		Bindings: game.Bindings{
			P1Up:   config.GetEnv("PONG_P1_UP", def.P1Up),
			P1Down: config.GetEnv("PONG_P1_DOWN", def.P1Down),
			P2Up:   config.GetEnv("PONG_P2_UP", def.P2Up),
			P2Down: config.GetEnv("PONG_P2_DOWN", def.P2Down),
		},
	}
}

// Run drives one game session until ctx is canceled, the input reader hits
// EOF, or a player presses the quit key. All game-state mutation happens on
// this goroutine: simulation ticks and key events are serialized through a
// single select, so the State never sees two mutators.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	opts.fill()

	state := game.NewState()
	keys := input.StartStream(r)

	termW, termH, err := opts.TermSizeFunc()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	canvas := draw.NewScaledCanvas(termW, termH, game.ArenaWidth, game.ArenaHeight)
	rend := newRenderer(canvas, w, state)

	draw.HideCursor(w)
	draw.ClearScreen(w)
	defer func() {
		draw.ClearScreen(w)
		draw.ShowCursor(w)
	}()

	// First frame before the first tick so the arena appears immediately.
	if err := rend.layout(opts.TermSizeFunc); err != nil {
		return err
	}
	if err := rend.Flush(); err != nil {
		return err
	}

	ticker := time.NewTicker(opts.TickPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			if err := rend.layout(opts.TermSizeFunc); err != nil {
				return err
			}
			state.Step(rend)
			if err := rend.Flush(); err != nil {
				return err
			}

		case key, ok := <-keys.Events():
			if !ok {
				return nil
			}
			if key == quitKey || key == input.KeyCtrlC {
				return nil
			}
			state.HandleKey(opts.Bindings, key, rend)
			// Paddle moves show up immediately instead of waiting out
			// the remainder of the tick.
			if err := rend.Flush(); err != nil {
				return err
			}
		}
	}
}
