package game

// State is the screen the user is on. It is independent of whether the
// simulation is ticking: only Playing runs the loop.
type State int

const (
	StateMainMenu State = iota
	StatePlaying
	StatePaused
	StateStore
	StateCredits
	StateInfo
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main_menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateStore:
		return "store"
	case StateCredits:
		return "credits"
	case StateInfo:
		return "info"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Button is a clickable menu entry.
type Button int

const (
	ButtonPlay Button = iota
	ButtonCredits
	ButtonInfo
	ButtonQuit
	ButtonContinue
	ButtonStore
	ButtonBackToMain
	ButtonBack
)

var buttonLabels = map[Button]string{
	ButtonPlay:       "Play",
	ButtonCredits:    "Credits",
	ButtonInfo:       "Controls",
	ButtonQuit:       "Quit",
	ButtonContinue:   "Continue",
	ButtonStore:      "Store",
	ButtonBackToMain: "Main Menu",
	ButtonBack:       "Back",
}

// Label returns the text shown on the button.
func (b Button) Label() string {
	return buttonLabels[b]
}

// Buttons lists the buttons of a screen from top to bottom.
func Buttons(s State) []Button {
	switch s {
	case StateMainMenu:
		return []Button{ButtonPlay, ButtonCredits, ButtonInfo, ButtonQuit}
	case StatePaused:
		return []Button{ButtonContinue, ButtonStore, ButtonBackToMain}
	case StateStore, StateCredits, StateInfo:
		return []Button{ButtonBack}
	default:
		return nil
	}
}

// Text screens.
var (
	CreditsText = []string{
		"SPACE BLASTER",
		"",
		"Design and programming",
		"Kasper Gammeltoft",
	}
	InfoText = []string{
		"W A S D  or arrows   steer",
		"Space                fire",
		"P                    pause / resume",
		"Q                    quit",
	}
	StoreText = []string{
		"STORE",
		"",
		"Nothing for sale yet.",
	}
)
