package game

// Step advances the simulation by one tick: integrate the ball, report the
// redraw, then resolve collisions in a fixed order (walls, baselines,
// paddles). The order matters: a goal teleports the ball to center before
// the paddle bounds are evaluated, which is what keeps a goal and a paddle
// hit mutually exclusive within one tick.
func (s *State) Step(d Display) {
	b := &s.Ball

	b.X += b.VX
	b.Y += b.VY

	d.BallMoved(b.X, b.Y, b.X+BallSize, b.Y+BallSize)

	// Top and bottom walls. Strictly outside the band reflects; landing
	// exactly on 10 or 486 does not.
	if b.Y < WallTopY {
		b.VY = -b.VY
	} else if b.Y > WallBottomY {
		b.VY = -b.VY
	}

	// Baselines. The horizontal flip precedes the restart vector: the two
	// stay distinct steps even though the restart overwrites vx.
	if b.X < LeftBaselineX {
		s.Scores[PlayerTwo]++
		b.VX = -b.VX
		b.X = BallStartX
		b.Y = BallStartY
		d.ScoreChanged(PlayerTwo, ScoreLabel(PlayerTwo, s.Scores[PlayerTwo]))
		b.VY = RestartVY
		b.VX = RestartVX
	} else if b.X > RightBaselineX {
		s.Scores[PlayerOne]++
		b.VX = -b.VX
		b.X = BallStartX
		b.Y = BallStartY
		d.ScoreChanged(PlayerOne, ScoreLabel(PlayerOne, s.Scores[PlayerOne]))
		b.VY = RestartVY
		b.VX = RestartVX
	}

	// Paddle deflection: reflect horizontally, then escalate. The ball's y
	// must lie strictly between the paddle's top and bottom edges.
	if b.X < LeftCollideX && s.Paddles[PlayerOne].TopY < b.Y && b.Y < s.Paddles[PlayerOne].TopY+PaddleHeight {
		b.VX = -b.VX
		b.VY *= SpeedUpFactor
		b.VX *= SpeedUpFactor
	} else if b.X > RightCollideX && s.Paddles[PlayerTwo].TopY < b.Y && b.Y < s.Paddles[PlayerTwo].TopY+PaddleHeight {
		b.VX = -b.VX
		b.VY *= SpeedUpFactor
		b.VX *= SpeedUpFactor
	}
}
