package input

import (
	"bufio"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Key
	}{
		{"wasd", "wasd", []Key{KeyUp, KeyLeft, KeyDown, KeyRight}},
		{"arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", []Key{KeyUp, KeyDown, KeyRight, KeyLeft}},
		{"lone escape", "\x1b", []Key{KeyBack}},
		{"unknown csi skipped", "\x1b[Zp", []Key{KeyPause}},
		{"fire and quit", " q\x03", []Key{KeyFire, KeyQuit, KeyQuit}},
		{"menu", "1234\r", []Key{KeyMenu1, KeyMenu2, KeyMenu3, KeyMenu4, KeyEnter}},
		{"noise", "zx!", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decode([]byte(tt.in)); !slices.Equal(got, tt.want) {
				t.Errorf("Decode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMenuIndex(t *testing.T) {
	if KeyMenu3.MenuIndex() != 2 || KeyFire.MenuIndex() != -1 {
		t.Errorf("MenuIndex: menu3=%d fire=%d", KeyMenu3.MenuIndex(), KeyFire.MenuIndex())
	}
}

func feed(s *Stream, in string) {
	for i := range len(in) {
		s.ch <- in[i]
	}
}

func TestPollHeldKeyReleasesAfterHold(t *testing.T) {
	s := newStream()
	start := time.Now()

	feed(s, "d")
	if got := s.Poll(start); !slices.Equal(got, []Event{{KeyRight, true}}) {
		t.Fatalf("first poll = %v", got)
	}

	// Still inside the first hold window: no release yet.
	if got := s.Poll(start.Add(firstHold / 2)); len(got) != 0 {
		t.Fatalf("early poll = %v", got)
	}

	// A repeat keeps the key down and shortens the window.
	feed(s, "d")
	if got := s.Poll(start.Add(firstHold / 2)); len(got) != 0 {
		t.Fatalf("repeat poll = %v", got)
	}

	got := s.Poll(start.Add(firstHold/2 + repeatHold))
	if !slices.Equal(got, []Event{{KeyRight, false}}) {
		t.Fatalf("release poll = %v", got)
	}
}

func TestPollTapKeys(t *testing.T) {
	s := newStream()
	feed(s, " p")
	got := s.Poll(time.Now())
	want := []Event{{KeyFire, true}, {KeyFire, false}, {KeyPause, true}, {KeyPause, false}}
	if !slices.Equal(got, want) {
		t.Errorf("Poll = %v, want %v", got, want)
	}
}

func TestStartStreamReadsReader(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("w")))

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if got := s.Poll(time.Now()); len(got) > 0 {
			if got[0] != (Event{KeyUp, true}) {
				t.Fatalf("Poll = %v", got)
			}
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("no event from reader")
}

func TestPollJoinsSplitArrowSequence(t *testing.T) {
	for _, split := range []string{"\x1b", "\x1b["} {
		s := newStream()
		now := time.Now()
		feed(s, split)
		if got := s.Poll(now); len(got) != 0 {
			t.Fatalf("%q: partial poll = %v", split, got)
		}
		feed(s, "\x1b[A"[len(split):])
		if got := s.Poll(now); !slices.Equal(got, []Event{{KeyUp, true}}) {
			t.Errorf("%q: completed poll = %v, want up down", split, got)
		}
	}
}

func TestPollLoneEscapeIsBack(t *testing.T) {
	s := newStream()
	now := time.Now()
	feed(s, "\x1b")
	if got := s.Poll(now); len(got) != 0 {
		t.Fatalf("first poll = %v", got)
	}
	got := s.Poll(now)
	if want := []Event{{KeyBack, true}, {KeyBack, false}}; !slices.Equal(got, want) {
		t.Errorf("second poll = %v, want %v", got, want)
	}
}
