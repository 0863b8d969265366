package game

type BoardState int

const (
	Ongoing BoardState = iota
	Won
	Lost
)

func (state BoardState) String() string {
	switch state {
	case Ongoing:
		return "ongoing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

const (
	cellWidth = 24
)
