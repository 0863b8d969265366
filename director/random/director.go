package random

import (
	"math/rand"

	"github.com/dlwoals256/minesweeper/game"
)

// Director reveals hidden cells in a random order, one per step. It pays
// no attention to the numbers, so it mostly loses; it exists as a floor to
// measure smarter directors against and as the guessing fallback for the
// constraint director.
type Director struct {
	board *game.Board
	order []game.Coord
}

func (director *Director) Init(board *game.Board) {
	director.board = board

	director.order = make([]game.Coord, 0, board.NumCells())
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			director.order = append(director.order, game.Coord{Col: col, Row: row})
		}
	}
	rand.Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

func (director *Director) Act() []game.Action {
	if director.board == nil || director.board.State() != game.Ongoing {
		return nil
	}

	for _, coord := range director.order {
		cell := director.board.CellAt(coord.Col, coord.Row)
		if !cell.IsRevealed() && !cell.IsFlagged() {
			return []game.Action{{Kind: game.ActionReveal, Col: coord.Col, Row: coord.Row}}
		}
	}
	return nil
}

func (director *Director) End() {
	director.board = nil
	director.order = nil
}
