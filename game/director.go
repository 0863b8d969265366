package game

// ActionKind distinguishes the two moves a director can make.
type ActionKind int

const (
	ActionReveal ActionKind = iota
	ActionToggleFlag
)

func (kind ActionKind) String() string {
	switch kind {
	case ActionReveal:
		return "reveal"
	case ActionToggleFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// Action is one move proposed by a director, aimed at a single cell.
type Action struct {
	Kind     ActionKind
	Col, Row int
}

// Director is a computer player. Init is called once with the board under
// play. Act is then called between frames and returns the moves to make;
// the caller applies them in order before asking again, so a director
// always observes the result of its previous step. Act on a finished game
// returns nothing. End is called once when the board is abandoned, won, or
// lost.
type Director interface {
	Init(*Board)
	Act() []Action
	End()
}
