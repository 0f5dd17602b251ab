package physics

// Side identifies one end of the table
type Side uint8

const (
	SideNone Side = iota
	// SidePlayer is the left, manually driven paddle
	SidePlayer
	// SideOpponent is the right, auto-tracking paddle
	SideOpponent
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "Player"
	case SideOpponent:
		return "AI"
	default:
		return "None"
	}
}

// Other returns the opposing side, SideNone maps to itself
func (s Side) Other() Side {
	switch s {
	case SidePlayer:
		return SideOpponent
	case SideOpponent:
		return SidePlayer
	default:
		return SideNone
	}
}

// Contact is the single outcome reported by one Ball.Move or Ball.CheckCollision call
type Contact uint8

const (
	ContactNone Contact = iota
	// ContactWall is a top or bottom boundary bounce
	ContactWall
	// ContactPlayer is a bounce off the left paddle
	ContactPlayer
	// ContactOpponent is a bounce off the right paddle
	ContactOpponent
)

func (c Contact) String() string {
	switch c {
	case ContactWall:
		return "wall"
	case ContactPlayer:
		return "player"
	case ContactOpponent:
		return "ai"
	default:
		return "none"
	}
}

// Side maps a paddle contact to the side that was hit
func (c Contact) Side() Side {
	switch c {
	case ContactPlayer:
		return SidePlayer
	case ContactOpponent:
		return SideOpponent
	default:
		return SideNone
	}
}
