// Package input turns a raw terminal byte stream into per-frame key state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report key repeats, never key releases.
const keyHoldDuration = 30 * time.Millisecond

// Input is the level-triggered control state sampled once per tick.
type Input struct {
	Left    bool // Turn counter-clockwise
	Right   bool // Turn clockwise
	Thrust  bool
	Fire    bool
	Start   bool // Start a game or continue after losing a life
	Restart bool // Restart after the wave is complete
	Quit    bool
	Pressed []byte // Raw bytes received this frame
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	left    time.Time
	right   time.Time
	thrust  time.Time
	fire    time.Time
	start   time.Time
	restart time.Time
	quit    time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The stream reports Quit once r is exhausted.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
func ReadInput(s *Stream) Input {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	now := time.Now()
	s.apply(buf, now)
	in := s.snapshot(now)
	in.Pressed = buf
	if s.closed {
		in.Quit = true
	}
	return in
}

// ResetKeyInput forgets all held keys so a key used to change screens does not
// leak into the first frame of the next one.
func ResetKeyInput(s *Stream) {
	if s == nil {
		return
	}
	s.state = keyState{}
}

// apply updates key timestamps from the bytes received this frame.
func (s *Stream) apply(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				s.state.thrust = now
				i += 2
				continue
			case 'C': // Right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				s.state.left = now
				i += 2
				continue
			case 'B': // Down arrow has no binding
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}
}

// snapshot builds the input from key state; keys are "pressed" if seen within the hold duration.
func (s *Stream) snapshot(now time.Time) Input {
	held := func(t time.Time) bool { return now.Sub(t) < keyHoldDuration }
	return Input{
		Left:    held(s.state.left),
		Right:   held(s.state.right),
		Thrust:  held(s.state.thrust),
		Fire:    held(s.state.fire),
		Start:   held(s.state.start),
		Restart: held(s.state.restart),
		Quit:    held(s.state.quit),
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.thrust = now
	case ' ':
		state.fire = now
	case 's', 'S', '\n', '\r':
		state.start = now
	case 'r', 'R':
		state.restart = now
	}
}
