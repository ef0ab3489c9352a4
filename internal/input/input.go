// Package input decodes raw terminal bytes into discrete key-symbol
// events. Arrow keys arrive as CSI escape sequences and are translated to
// the symbols "Up", "Down", "Left" and "Right"; printable bytes become
// one-character symbols.
package input

import "bufio"

// Symbols for non-printable keys.
const (
	KeyUp    = "Up"
	KeyDown  = "Down"
	KeyLeft  = "Left"
	KeyRight = "Right"
	KeyCtrlC = "CtrlC"
	KeyEsc   = "Esc"
)

// Stream delivers decoded key symbols from a reader. The events channel is
// closed when the reader reaches EOF or fails, which is how a disconnected
// session tears the game loop down.
type Stream struct {
	events chan string
}

// StartStream spawns a goroutine that reads from r and decodes key presses.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{events: make(chan string, 64)}
	go s.read(r)
	return s
}

// Events returns the channel of decoded key symbols.
func (s *Stream) Events() <-chan string {
	return s.events
}

func (s *Stream) read(r *bufio.Reader) {
	defer close(s.events)
	for {
		b, err := r.ReadByte()
		if err != nil {
			return
		}
		sym, ok := decode(r, b)
		if !ok {
			continue
		}
		s.events <- sym
	}
}

// decode turns the next byte, plus any buffered CSI continuation, into a
// key symbol. Unrecognized control bytes are dropped.
func decode(r *bufio.Reader, b byte) (string, bool) {
	switch {
	case b == 0x03:
		return KeyCtrlC, true
	case b == 0x1b:
		return decodeEscape(r)
	case b >= ' ' && b < 0x7f:
		return string(b), true
	}
	return "", false
}

// decodeEscape handles ESC [ <code> sequences. Terminals send the whole
// sequence in one write, so a lone ESC with nothing buffered behind it is
// the Escape key itself.
func decodeEscape(r *bufio.Reader) (string, bool) {
	if r.Buffered() == 0 {
		return KeyEsc, true
	}
	next, err := r.ReadByte()
	if err != nil || next != '[' {
		return KeyEsc, true
	}
	code, err := r.ReadByte()
	if err != nil {
		return KeyEsc, true
	}
	switch code {
	case 'A':
		return KeyUp, true
	case 'B':
		return KeyDown, true
	case 'C':
		return KeyRight, true
	case 'D':
		return KeyLeft, true
	}
	return "", false
}
