// Package game implements the Pong simulation: ball motion, paddle
// deflection, wall reflection, scoring and speed escalation. It knows
// nothing about terminals; rendering goes through the Display interface.
package game

import "fmt"

// Player identifies one of the two sides.
type Player int

const (
	PlayerOne Player = iota // Left paddle
	PlayerTwo               // Right paddle
)

func (p Player) String() string {
	return fmt.Sprintf("J%d", int(p)+1)
}

// Ball is the moving ball. X,Y is the top-left corner of its bounding box;
// VX,VY are logical units per tick.
type Ball struct {
	X, Y   float64
	VX, VY float64
}

// Paddle is a vertical segment tracked by its top edge. The horizontal
// position is fixed per side.
type Paddle struct {
	TopY float64
}

// State aggregates everything the simulation mutates: the ball, both
// paddles and both scores. It lives for the process lifetime and must only
// be touched from a single goroutine.
type State struct {
	Ball    Ball
	Paddles [2]Paddle
	Scores  [2]int
}

// NewState returns a fresh arena: ball at center with launch velocity,
// paddles at their starting row, scores at zero.
func NewState() *State {
	return &State{
		Ball:    Ball{X: BallStartX, Y: BallStartY, VX: LaunchVX, VY: LaunchVY},
		Paddles: [2]Paddle{{TopY: PaddleStartY}, {TopY: PaddleStartY}},
	}
}

// ScoreLabel formats a player's score for display, e.g. "J1: 3".
func ScoreLabel(p Player, score int) string {
	return fmt.Sprintf("%s: %d", p, score)
}

// Display is the rendering collaborator. Implementations must not block:
// they are called synchronously from the simulation tick and the input
// handler, and are expected to coalesce updates into the next frame.
type Display interface {
	// BallMoved reports the ball's new bounding box.
	BallMoved(x1, y1, x2, y2 float64)
	// PaddleMoved reports a paddle's new top edge.
	PaddleMoved(p Player, topY float64)
	// ScoreChanged reports a player's new score label.
	ScoreChanged(p Player, label string)
}

// NopDisplay discards all notifications.
type NopDisplay struct{}

func (NopDisplay) BallMoved(x1, y1, x2, y2 float64)    {}
func (NopDisplay) PaddleMoved(p Player, topY float64)  {}
func (NopDisplay) ScoreChanged(p Player, label string) {}
