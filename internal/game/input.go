package game

// Bindings maps key symbols, as delivered by the input collaborator, to
// paddle movement. Symbols are matched exactly; anything else is ignored.
type Bindings struct {
	P1Up   string
	P1Down string
	P2Up   string
	P2Down string
}

// DefaultBindings mirrors the classic layout: z/s for the left player,
// arrow keys for the right.
func DefaultBindings() Bindings {
	return Bindings{P1Up: "z", P1Down: "s", P2Up: "Up", P2Down: "Down"}
}

// HandleKey dispatches one key-press event. A recognized key moves exactly
// one paddle by PaddleStep, clamped to the arena band; unrecognized keys
// are silent no-ops.
func (s *State) HandleKey(b Bindings, key string, d Display) {
	switch key {
	case b.P1Down:
		s.movePaddle(PlayerOne, PaddleStep, d)
	case b.P1Up:
		s.movePaddle(PlayerOne, -PaddleStep, d)
	case b.P2Down:
		s.movePaddle(PlayerTwo, PaddleStep, d)
	case b.P2Up:
		s.movePaddle(PlayerTwo, -PaddleStep, d)
	}
}

// movePaddle applies one discrete step. Moves that would leave the clamp
// band are dropped entirely, not truncated.
func (s *State) movePaddle(p Player, delta float64, d Display) {
	next := s.Paddles[p].TopY + delta
	if next > PaddleMaxY || next < PaddleMinY {
		return
	}
	s.Paddles[p].TopY = next
	d.PaddleMoved(p, next)
}
