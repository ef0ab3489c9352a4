package loop

import (
	"io"

	"github.com/mvesely/pongx64/internal/draw"
	"github.com/mvesely/pongx64/internal/game"
)

// netSegments are the dashed center-line decorations, as logical y-ranges.
var netSegments = [6][2]float64{
	{0, 65}, {85, 150}, {170, 235}, {255, 320}, {340, 405}, {426, 512},
}

const (
	netLeftX  = 305
	netRightX = 307
)

// renderer implements game.Display. Notifications only record the latest
// geometry and labels, so they never block the simulation or the input
// handler; Flush draws one complete frame from the recorded state.
type renderer struct {
	canvas *draw.Canvas
	out    *draw.ChunkWriter

	ball       [4]float64 // Bounding box x1,y1,x2,y2
	paddleTops [2]float64
	labels     [2]string
}

func newRenderer(canvas *draw.Canvas, w io.Writer, s *game.State) *renderer {
	r := &renderer{
		canvas: canvas,
		out:    draw.NewChunkWriter(w, canvas.OffsetCol(), canvas.OffsetRow()),
	}
	r.BallMoved(s.Ball.X, s.Ball.Y, s.Ball.X+game.BallSize, s.Ball.Y+game.BallSize)
	for _, p := range []game.Player{game.PlayerOne, game.PlayerTwo} {
		r.PaddleMoved(p, s.Paddles[p].TopY)
		r.ScoreChanged(p, game.ScoreLabel(p, s.Scores[p]))
	}
	return r
}

func (r *renderer) BallMoved(x1, y1, x2, y2 float64) {
	r.ball = [4]float64{x1, y1, x2, y2}
}

func (r *renderer) PaddleMoved(p game.Player, topY float64) {
	r.paddleTops[p] = topY
}

func (r *renderer) ScoreChanged(p game.Player, label string) {
	r.labels[p] = label
}

// layout fits the render area to the terminal: capped at the maximum
// resolution and centered when the terminal is larger.
func (r *renderer) layout(sizeFunc draw.TermSizeFunc) error {
	termW, termH, err := sizeFunc()
	if err != nil {
		return err
	}

	cols, rows := termW, termH
	if cols > maxRenderCols {
		cols = maxRenderCols
	}
	if rows > maxRenderRows {
		rows = maxRenderRows
	}

	r.canvas.Resize(cols, rows)
	r.canvas.SetOffset((termW-cols)/2, (termH-rows)/2)
	r.out.SetOffset(r.canvas.OffsetCol(), r.canvas.OffsetRow())
	return nil
}

// Flush draws the frame: net, paddles and ball on the canvas, then the
// border and score labels as overlays.
func (r *renderer) Flush() error {
	c := r.canvas
	c.Clear()
	draw.ClearScreen(r.out)

	for _, seg := range netSegments {
		c.FillRect(netLeftX, seg[0], netRightX, seg[1])
	}

	c.FillRect(game.LeftPaddleX, r.paddleTops[game.PlayerOne],
		game.LeftPaddleX+game.PaddleWidth, r.paddleTops[game.PlayerOne]+game.PaddleHeight)
	c.FillRect(game.RightPaddleX, r.paddleTops[game.PlayerTwo],
		game.RightPaddleX+game.PaddleWidth, r.paddleTops[game.PlayerTwo]+game.PaddleHeight)

	c.FillRect(r.ball[0], r.ball[1], r.ball[2], r.ball[3])

	c.Render(r.out)
	c.RenderBorder(r.out)

	r.out.WriteAt(2, 1, r.labels[game.PlayerOne])
	right := c.TerminalWidth() - len(r.labels[game.PlayerTwo]) - 1
	if right < 1 {
		right = 1
	}
	r.out.WriteAt(right, 1, r.labels[game.PlayerTwo])

	return r.out.Flush()
}
