// Package input turns raw key bytes into key down/up events.
package input

import (
	"bufio"
	"time"
)

// Key is a logical game key.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyFire
	KeyPause
	KeyQuit
	KeyEnter
	KeyBack
	KeyMenu1
	KeyMenu2
	KeyMenu3
	KeyMenu4
)

var keyNames = [...]string{
	KeyNone:  "none",
	KeyUp:    "up",
	KeyDown:  "down",
	KeyLeft:  "left",
	KeyRight: "right",
	KeyFire:  "fire",
	KeyPause: "pause",
	KeyQuit:  "quit",
	KeyEnter: "enter",
	KeyBack:  "back",
	KeyMenu1: "menu1",
	KeyMenu2: "menu2",
	KeyMenu3: "menu3",
	KeyMenu4: "menu4",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return "unknown"
	}
	return keyNames[k]
}

// MenuIndex returns the 0-based button index of a menu key, or -1.
func (k Key) MenuIndex() int {
	if k >= KeyMenu1 && k <= KeyMenu4 {
		return int(k - KeyMenu1)
	}
	return -1
}

// held reports whether k is a steering key that stays down until released.
func (k Key) held() bool {
	return k >= KeyUp && k <= KeyRight
}

// Event is a key going down or coming back up.
type Event struct {
	Key  Key
	Down bool
}

// Terminals report neither key releases nor a repeat rate, only repeated bytes.
// A steering key counts as held for firstHold after its first byte, which spans
// the usual auto-repeat delay, and for repeatHold after each repeat.
const (
	firstHold  = 550 * time.Millisecond
	repeatHold = 80 * time.Millisecond
)

// keyState tracks one held key.
type keyState struct {
	last    time.Time
	repeats int
}

// Stream delivers input bytes via a channel and synthesizes key releases.
type Stream struct {
	ch      chan byte
	held    map[Key]*keyState
	pending []byte // Escape sequence prefix cut off by the previous Poll
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
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

func newStream() *Stream {
	return &Stream{
		ch:   make(chan byte, 128),
		held: make(map[Key]*keyState),
	}
}

// Poll drains all available bytes (non-blocking) and returns the resulting
// events in order. Tap keys produce a down and an up event per byte. Steering
// keys produce a down event when first seen and an up event once their hold
// window has passed without a repeat. An escape sequence split across two polls
// is decoded once complete; an escape with nothing after it by the next poll is
// KeyBack.
func (s *Stream) Poll(now time.Time) []Event {
	buf := s.pending
	s.pending = nil
	fresh := false

	// Drain all available bytes
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				break drain
			}
			buf = append(buf, b)
			fresh = true
		default:
			break drain
		}
	}

	keys, rest := decode(buf, !fresh)
	s.pending = rest

	var events []Event
	for _, k := range keys {
		if !k.held() {
			events = append(events, Event{Key: k, Down: true}, Event{Key: k, Down: false})
			continue
		}
		if st, ok := s.held[k]; ok {
			st.last = now
			st.repeats++
			continue
		}
		s.held[k] = &keyState{last: now}
		events = append(events, Event{Key: k, Down: true})
	}

	for _, k := range []Key{KeyUp, KeyDown, KeyLeft, KeyRight} {
		st, ok := s.held[k]
		if !ok {
			continue
		}
		hold := firstHold
		if st.repeats > 0 {
			hold = repeatHold
		}
		if now.Sub(st.last) >= hold {
			delete(s.held, k)
			events = append(events, Event{Key: k, Down: false})
		}
	}
	return events
}

// Decode maps raw terminal bytes to keys. Arrow key escape sequences map to the
// steering keys; a lone escape is KeyBack. Unknown bytes are skipped.
func Decode(buf []byte) []Key {
	keys, _ := decode(buf, true)
	return keys
}

// decode is Decode for a buffer that may end mid-sequence. Unless final is set,
// a trailing ESC or ESC [ is returned as rest instead of being decoded.
func decode(buf []byte, final bool) (keys []Key, rest []byte) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && !final && (i+1 == len(buf) || i+2 == len(buf) && buf[i+1] == '[') {
			return keys, append([]byte(nil), buf[i:]...)
		}

		// Check for escape sequences (arrow keys, etc.)
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			// CSI sequence: ESC [ <code>
			k := KeyNone
			switch buf[i+2] {
			case 'A':
				k = KeyUp
			case 'B':
				k = KeyDown
			case 'C':
				k = KeyRight
			case 'D':
				k = KeyLeft
			}
			i += 2
			if k != KeyNone {
				keys = append(keys, k)
			}
			continue
		}

		if k := keyForByte(b); k != KeyNone {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// keyForByte maps a single byte to a key.
func keyForByte(b byte) Key {
	switch b {
	case 'w', 'W':
		return KeyUp
	case 's', 'S':
		return KeyDown
	case 'a', 'A':
		return KeyLeft
	case 'd', 'D':
		return KeyRight
	case ' ':
		return KeyFire
	case 'p', 'P':
		return KeyPause
	case 'q', 'Q', '\x03':
		return KeyQuit
	case '\n', '\r':
		return KeyEnter
	case '\x1b', '\b', '\x7f':
		return KeyBack
	case '1':
		return KeyMenu1
	case '2':
		return KeyMenu2
	case '3':
		return KeyMenu3
	case '4':
		return KeyMenu4
	}
	return KeyNone
}
