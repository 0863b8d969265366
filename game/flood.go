package game

import (
	"github.com/gammazero/deque"

	"github.com/dlwoals256/minesweeper/util/collections"
)

// floodReveal uncovers the starting cell and cascades outward. Every
// dequeued cell is revealed; only cells with no adjacent mines push their
// neighbors, so the cascade covers the connected empty region plus the
// single ring of numbered cells bordering it. Mines and flagged cells are
// never enqueued, and the visited set admits each cell once even when
// several empty cells share it as a neighbor.
func (board *Board) floodReveal(start int) {
	visited := collections.NewSet(start)
	var frontier deque.Deque[int]
	frontier.PushBack(start)

	for frontier.Len() > 0 {
		idx := frontier.PopFront()
		cell := &board.cells[idx]
		board.revealCell(cell)

		if cell.adjacent != 0 {
			continue
		}

		for _, neighborIdx := range board.neighborIndexes(cell.col, cell.row) {
			neighbor := &board.cells[neighborIdx]
			if visited.Contains(neighborIdx) || neighbor.isRevealed || neighbor.isFlagged || neighbor.isMine {
				continue
			}
			visited.Add(neighborIdx)
			frontier.PushBack(neighborIdx)
		}
	}
}
