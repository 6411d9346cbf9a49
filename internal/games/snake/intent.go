package snake

// IntentKind classifies what a decision source wants this tick.
type IntentKind uint8

const (
	IntentNone IntentKind = iota
	IntentStart
	IntentMove
	IntentForceGameOver
)

func (k IntentKind) String() string {
	switch k {
	case IntentNone:
		return "none"
	case IntentStart:
		return "start"
	case IntentMove:
		return "move"
	case IntentForceGameOver:
		return "force_game_over"
	default:
		return "unknown"
	}
}

// Intent is the decoded input for one tick. Dir is only meaningful for IntentMove.
type Intent struct {
	Kind IntentKind
	Dir  Direction
}

// NoIntent keeps the current heading.
func NoIntent() Intent {
	return Intent{Kind: IntentNone}
}

// StartIntent begins play from the start screen.
func StartIntent() Intent {
	return Intent{Kind: IntentStart}
}

// MoveIntent asks the snake to turn towards d.
func MoveIntent(d Direction) Intent {
	return Intent{Kind: IntentMove, Dir: d}
}

// ForceGameOverIntent ends the game immediately.
func ForceGameOverIntent() Intent {
	return Intent{Kind: IntentForceGameOver}
}

func (i Intent) String() string {
	if i.Kind == IntentMove {
		return "move " + i.Dir.String()
	}
	return i.Kind.String()
}
