package game

// Arena dimensions in logical units. The renderer scales these to the
// actual terminal size.
const (
	ArenaWidth  = 612
	ArenaHeight = 512
)

// Ball geometry and motion.
const (
	BallSize = 5 // Bounding box edge, logical units

	BallStartX = 306
	BallStartY = 256

	// Velocity at process start.
	LaunchVX = 4
	LaunchVY = 6

	// Velocity after any goal, independent of pre-goal speed.
	RestartVX = 2
	RestartVY = 3
)

// Walls and baselines.
const (
	WallTopY    = 10
	WallBottomY = 486

	LeftBaselineX  = 1
	RightBaselineX = 612
)

// Paddle geometry and movement.
const (
	PaddleHeight = 80
	PaddleWidth  = 4
	PaddleStep   = 25

	PaddleStartY = 140

	// Clamp band for the paddle top edge. The band extends one movement
	// step past the arena on both ends.
	PaddleMinY = -25
	PaddleMaxY = 446

	// Where the paddles are drawn.
	LeftPaddleX  = 12
	RightPaddleX = 600

	// Where the ball deflects off them.
	LeftCollideX  = 18
	RightCollideX = 592
)

// SpeedUpFactor scales both velocity components on every paddle hit. The
// escalation compounds across a rally and is uncapped.
const SpeedUpFactor = 1.259
