package loop

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mvesely/pongx64/internal/draw"
	"github.com/mvesely/pongx64/internal/game"
)

func newTestRenderer(t *testing.T, termW, termH int) (*renderer, *bytes.Buffer, *game.State) {
	t.Helper()
	var out bytes.Buffer
	state := game.NewState()
	canvas := draw.NewScaledCanvas(termW, termH, game.ArenaWidth, game.ArenaHeight)
	r := newRenderer(canvas, &out, state)
	if err := r.layout(fixedSize(termW, termH)); err != nil {
		t.Fatalf("layout: %v", err)
	}
	return r, &out, state
}

func TestRendererFlushDrawsScoreLabels(t *testing.T) {
	r, out, _ := newTestRenderer(t, 80, 24)

	if err := r.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "J1: 0") {
		t.Fatalf("frame missing left score label: %q", got)
	}
	if !strings.Contains(got, "J2: 0") {
		t.Fatalf("frame missing right score label: %q", got)
	}
}

func TestRendererFlushDrawsGeometry(t *testing.T) {
	r, out, _ := newTestRenderer(t, 80, 24)

	if err := r.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	// Net, paddles and ball all paint block characters.
	if !strings.ContainsAny(out.String(), "█▀▄") {
		t.Fatalf("frame contains no block characters: %q", out.String())
	}
}

func TestRendererTracksScoreChanges(t *testing.T) {
	r, out, state := newTestRenderer(t, 80, 24)

	// Drive a goal through the simulation; the renderer is the Display.
	state.Ball = game.Ball{X: 0, Y: 250, VX: -4, VY: 0}
	state.Step(r)

	if err := r.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if !strings.Contains(out.String(), "J2: 1") {
		t.Fatalf("frame missing updated score label: %q", out.String())
	}
}

func TestRendererLayoutCapsAndCenters(t *testing.T) {
	r, _, _ := newTestRenderer(t, 200, 80)

	if got := r.canvas.TerminalWidth(); got != maxRenderCols {
		t.Fatalf("render width = %d, want %d", got, maxRenderCols)
	}
	if got := r.canvas.TerminalHeight(); got != maxRenderRows {
		t.Fatalf("render height = %d, want %d", got, maxRenderRows)
	}
	if r.canvas.OffsetCol() != (200-maxRenderCols)/2 || r.canvas.OffsetRow() != (80-maxRenderRows)/2 {
		t.Fatalf("offsets = (%d,%d), want centered", r.canvas.OffsetCol(), r.canvas.OffsetRow())
	}
}

func TestRendererLayoutSmallTerminal(t *testing.T) {
	r, out, _ := newTestRenderer(t, 40, 12)

	if r.canvas.TerminalWidth() != 40 || r.canvas.TerminalHeight() != 12 {
		t.Fatalf("render area = %dx%d, want full 40x12",
			r.canvas.TerminalWidth(), r.canvas.TerminalHeight())
	}
	if err := r.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if out.Len() == 0 {
		t.Fatal("no frame output on a small terminal")
	}
}
