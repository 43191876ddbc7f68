// FILE: internal/core/core.go
package core

type State int

const (
	StateOngoing State = iota
	StateBlackWins
	StateWhiteWins
	StateDraw
)

func (s State) String() string {
	switch s {
	case StateBlackWins:
		return "black wins"
	case StateWhiteWins:
		return "white wins"
	case StateDraw:
		return "draw"
	case StateOngoing:
		return "ongoing"
	default:
		return "unknown"
	}
}

// Code returns the wire form used in API responses
func (s State) Code() string {
	switch s {
	case StateBlackWins:
		return "black_wins"
	case StateWhiteWins:
		return "white_wins"
	case StateDraw:
		return "draw"
	case StateOngoing:
		return "ongoing"
	default:
		return "unknown"
	}
}

type Color byte

const (
	ColorBlack Color = iota + 1
	ColorWhite
)

func (c Color) String() string {
	if c == ColorBlack {
		return "b"
	} else if c == ColorWhite {
		return "w"
	} else {
		return "-"
	}
}

// Name returns the human readable color name
func (c Color) Name() string {
	switch c {
	case ColorBlack:
		return "Black"
	case ColorWhite:
		return "White"
	default:
		return "Unknown"
	}
}

func (c Color) Valid() bool {
	return c == ColorBlack || c == ColorWhite
}

func (c Color) Opposite() Color {
	if c == ColorWhite {
		return ColorBlack
	}
	return ColorWhite
}

// ParseColor accepts "b"/"w" and the full names
func ParseColor(s string) (Color, bool) {
	switch s {
	case "b", "black", "B", "Black":
		return ColorBlack, true
	case "w", "white", "W", "White":
		return ColorWhite, true
	default:
		return 0, false
	}
}
