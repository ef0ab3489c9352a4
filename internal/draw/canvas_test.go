package draw

import (
	"strings"
	"testing"
)

func TestSetFloatScalesToTerminalPixels(t *testing.T) {
	// 10x5 terminal over a 100x100 logical space: scaleX=0.1, scaleY=0.1.
	c := NewScaledCanvas(10, 5, 100, 100)

	c.SetFloat(50, 50) // Pixel (5,5): bottom half of row 3

	var out strings.Builder
	c.Render(&out)
	got := out.String()
	if !strings.Contains(got, "\033[3;6H▄") {
		t.Fatalf("render output %q missing lower half-block at row 3, col 6", got)
	}
}

func TestRenderCombinesHalfBlocks(t *testing.T) {
	c := NewScaledCanvas(2, 1, 2, 2)

	c.SetFloat(0, 0) // Top sub-pixel of cell (1,1)
	c.SetFloat(0, 1) // Bottom sub-pixel of the same cell
	c.SetFloat(1, 0) // Top sub-pixel of cell (2,1)

	var out strings.Builder
	c.Render(&out)
	got := out.String()

	if !strings.Contains(got, "\033[1;1H█") {
		t.Fatalf("output %q missing full block in first cell", got)
	}
	if !strings.Contains(got, "\033[1;2H▀") {
		t.Fatalf("output %q missing upper half-block in second cell", got)
	}
}

func TestFillRectThinShapesStayVisible(t *testing.T) {
	// A 4-unit wide paddle on a 612-unit arena squeezed into 61 columns
	// scales to less than half a pixel. It must still paint something.
	c := NewScaledCanvas(61, 32, 612, 512)

	c.FillRect(12, 140, 16, 220)

	var out strings.Builder
	c.Render(&out)
	if out.Len() == 0 {
		t.Fatal("thin rect rendered nothing")
	}
}

func TestFillRectIgnoresOutOfBounds(t *testing.T) {
	c := NewScaledCanvas(10, 5, 100, 100)

	// Paddle overshoot band puts shapes partially above the arena.
	c.FillRect(-20, -30, 5, 10)

	var out strings.Builder
	c.Render(&out)
	// Must not panic and must clip to the render area.
	for _, line := range strings.Split(out.String(), "\033") {
		if strings.Contains(line, "0;") {
			t.Fatalf("rendered outside the area: %q", line)
		}
	}
}

func TestResizeKeepsLogicalSpace(t *testing.T) {
	c := NewScaledCanvas(10, 5, 100, 100)
	c.Resize(20, 10)

	if c.TerminalWidth() != 20 || c.TerminalHeight() != 10 {
		t.Fatalf("terminal size = %dx%d, want 20x10", c.TerminalWidth(), c.TerminalHeight())
	}

	// Logical (100,100) now maps to the bottom-right of the new area.
	c.SetFloat(50, 50)
	var out strings.Builder
	c.Render(&out)
	if !strings.Contains(out.String(), "\033[6;11H") {
		t.Fatalf("output %q missing pixel at scaled center", out.String())
	}
}

func TestRenderAppliesOffsets(t *testing.T) {
	c := NewScaledCanvas(2, 1, 2, 2)
	c.SetOffset(5, 3)

	c.SetFloat(0, 0)

	var out strings.Builder
	c.Render(&out)
	if !strings.Contains(out.String(), "\033[4;6H▀") {
		t.Fatalf("output %q missing offset half-block at row 4, col 6", out.String())
	}
}

func TestRenderBorderDrawsBoxWhenCentered(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.SetOffset(2, 1)

	var out strings.Builder
	c.RenderBorder(&out)
	got := out.String()

	if !strings.Contains(got, "┌") || !strings.Contains(got, "┘") {
		t.Fatalf("border output %q missing corners", got)
	}
	if !strings.Contains(got, "\033[1;2H┌") {
		t.Fatalf("border output %q has top-left corner misplaced", got)
	}
}

func TestRenderBorderSkippedWithoutOffsets(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	var out strings.Builder
	c.RenderBorder(&out)
	if out.Len() != 0 {
		t.Fatalf("border drawn without offsets: %q", out.String())
	}
}

func TestChunkWriterWriteAtAppliesOffset(t *testing.T) {
	var sink strings.Builder
	cw := NewChunkWriter(&sink, 4, 2)

	cw.WriteAt(2, 1, "J1: 0")
	if err := cw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	if got := sink.String(); got != "\033[3;6HJ1: 0" {
		t.Fatalf("output = %q, want offset cursor move", got)
	}
}

func TestChunkWriterFlushResets(t *testing.T) {
	var sink strings.Builder
	cw := NewChunkWriter(&sink, 0, 0)

	cw.WriteAt(1, 1, "a")
	if err := cw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if err := cw.Flush(); err != nil {
		t.Fatalf("second flush: %v", err)
	}

	if got := sink.String(); got != "\033[1;1Ha" {
		t.Fatalf("output = %q, buffer not reset between flushes", got)
	}
}
