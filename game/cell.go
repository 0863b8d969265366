package game

import "fmt"

// Cell is a single grid square. Coordinates and mine placement are fixed at
// construction; revealed and flagged state change only through Board
// operations, keeping every Cell consistent with the board's counters.
type Cell struct {
	col, row int

	isMine     bool
	adjacent   int
	isRevealed bool
	isFlagged  bool
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.col, cell.row)
}

func (cell *Cell) Col() int {
	return cell.col
}

func (cell *Cell) Row() int {
	return cell.row
}

func (cell *Cell) IsMine() bool {
	return cell.isMine
}

// Adjacent returns the number of mine-bearing neighbors, 0 through 8.
// It is computed for every cell, mines included.
func (cell *Cell) Adjacent() int {
	return cell.adjacent
}

func (cell *Cell) IsRevealed() bool {
	return cell.isRevealed
}

func (cell *Cell) IsFlagged() bool {
	return cell.isFlagged
}

// glyph is the player-view character used by Board.String: flags and hidden
// cells mask everything beneath them.
func (cell *Cell) glyph() rune {
	switch {
	case cell.isFlagged:
		return 'F'
	case !cell.isRevealed:
		return '#'
	case cell.isMine:
		return '*'
	case cell.adjacent == 0:
		return '.'
	default:
		return rune('0' + cell.adjacent)
	}
}
