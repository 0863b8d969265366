package game

import (
	"math/rand"
	"strings"
	"time"
)

// Coord addresses a cell on the grid by column and row, both zero-based
// with the origin at the top-left.
type Coord struct {
	Col, Row int
}

// Board holds the full state of one minesweeper game: the grid, the mine
// placement, and the outcome. All rule enforcement lives here; callers
// only ever reveal and flag. A Board is not safe for concurrent use, every
// action runs to completion before the next one starts.
type Board struct {
	cols, rows int
	numMines   int
	cells      []Cell

	state       BoardState
	numFlags    int
	numRevealed int
}

// NewBoard creates a board with numMines mines scattered randomly over a
// cols x rows grid. The placement differs from game to game.
func NewBoard(cols, rows, numMines int) (*Board, error) {
	return NewBoardSeeded(cols, rows, numMines, time.Now().UnixNano())
}

// NewBoardSeeded is NewBoard with an explicit seed, so the same seed always
// deals the same mine placement.
func NewBoardSeeded(cols, rows, numMines int, seed int64) (*Board, error) {
	board, err := newEmptyBoard(cols, rows, numMines)
	if err != nil {
		return nil, err
	}
	board.placeMines(rand.New(rand.NewSource(seed)))
	return board, nil
}

func validateConfig(cols, rows, numMines int) error {
	if cols <= 0 || rows <= 0 || numMines <= 0 || numMines >= cols*rows {
		return InvalidConfigError{cols, rows, numMines}
	}
	return nil
}

func newEmptyBoard(cols, rows, numMines int) (*Board, error) {
	if err := validateConfig(cols, rows, numMines); err != nil {
		return nil, err
	}

	board := &Board{
		cols:     cols,
		rows:     rows,
		numMines: numMines,
		cells:    make([]Cell, cols*rows),
		state:    Ongoing,
	}
	for i := range board.cells {
		board.cells[i].col = i % cols
		board.cells[i].row = i / cols
	}
	return board, nil
}

// placeMines mines the first numMines cells of a shuffled index list, so
// every placement of exactly numMines distinct mines is equally likely.
func (board *Board) placeMines(rng *rand.Rand) {
	cellIndexes := make([]int, len(board.cells))
	for i := range cellIndexes {
		cellIndexes[i] = i
	}
	rng.Shuffle(len(cellIndexes), func(i, j int) {
		cellIndexes[i], cellIndexes[j] = cellIndexes[j], cellIndexes[i]
	})

	for _, idx := range cellIndexes[:board.numMines] {
		board.addMine(idx)
	}
}

// addMine turns one cell into a mine and bumps the adjacent count of every
// cell around it, keeping the counts correct after each placement.
func (board *Board) addMine(idx int) {
	cell := &board.cells[idx]
	cell.isMine = true
	for _, neighborIdx := range board.neighborIndexes(cell.col, cell.row) {
		board.cells[neighborIdx].adjacent++
	}
}

func (board *Board) Cols() int {
	return board.cols
}

func (board *Board) Rows() int {
	return board.rows
}

func (board *Board) NumCells() int {
	return board.cols * board.rows
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) State() BoardState {
	return board.state
}

// GameOver reports whether a mine has been revealed. At most one of
// GameOver and Win is true, and whichever one fires stays true forever.
func (board *Board) GameOver() bool {
	return board.state == Lost
}

// Win reports whether every safe cell has been revealed.
func (board *Board) Win() bool {
	return board.state == Won
}

// FlaggedCount returns the number of cells currently flagged.
func (board *Board) FlaggedCount() int {
	return board.numFlags
}

// RevealedCount returns the number of cells currently revealed.
func (board *Board) RevealedCount() int {
	return board.numRevealed
}

// InBounds reports whether (col, row) is a cell on this board.
func (board *Board) InBounds(col, row int) bool {
	return col >= 0 && col < board.cols && row >= 0 && row < board.rows
}

// Index maps (col, row) to the cell's position in row-major order,
// row*cols + col.
func (board *Board) Index(col, row int) (int, error) {
	if !board.InBounds(col, row) {
		return 0, OutOfBoundsError{col, row, board.cols, board.rows}
	}
	return board.index(col, row), nil
}

func (board *Board) index(col, row int) int {
	return row*board.cols + col
}

// CellAt returns the cell at (col, row), or nil if the coordinates fall
// outside the board.
func (board *Board) CellAt(col, row int) *Cell {
	if !board.InBounds(col, row) {
		return nil
	}
	return &board.cells[board.index(col, row)]
}

// Neighbors returns the coordinates of the in-bounds cells touching
// (col, row): 8 in the interior, 5 along an edge, 3 in a corner. The cell
// itself is never included.
func (board *Board) Neighbors(col, row int) ([]Coord, error) {
	if !board.InBounds(col, row) {
		return nil, OutOfBoundsError{col, row, board.cols, board.rows}
	}

	neighbors := make([]Coord, 0, 8)
	for _, idx := range board.neighborIndexes(col, row) {
		neighbors = append(neighbors, Coord{board.cells[idx].col, board.cells[idx].row})
	}
	return neighbors, nil
}

func (board *Board) neighborIndexes(col, row int) []int {
	indexes := make([]int, 0, 8)
	for dRow := -1; dRow <= 1; dRow++ {
		for dCol := -1; dCol <= 1; dCol++ {
			if dCol == 0 && dRow == 0 {
				continue
			}
			if board.InBounds(col+dCol, row+dRow) {
				indexes = append(indexes, board.index(col+dCol, row+dRow))
			}
		}
	}
	return indexes
}

// Reveal uncovers the cell at (col, row). Revealing a mine ends the game
// immediately and uncovers nothing else. Revealing a cell with no adjacent
// mines cascades outward through the whole connected empty region and one
// ring of numbered cells around it. Revealing a flagged cell, an already
// revealed cell, or any cell after the game has ended does nothing.
func (board *Board) Reveal(col, row int) error {
	if !board.InBounds(col, row) {
		return OutOfBoundsError{col, row, board.cols, board.rows}
	}
	if board.state != Ongoing {
		return nil
	}

	idx := board.index(col, row)
	cell := &board.cells[idx]
	if cell.isRevealed || cell.isFlagged {
		return nil
	}

	if cell.isMine {
		board.revealCell(cell)
		board.state = Lost
		return nil
	}

	board.floodReveal(idx)
	if board.numRevealed == board.NumCells()-board.numMines {
		board.state = Won
	}
	return nil
}

// revealCell is the one place a cell flips to revealed. A flag never
// survives on a revealed cell.
func (board *Board) revealCell(cell *Cell) {
	if cell.isRevealed {
		return
	}
	if cell.isFlagged {
		cell.isFlagged = false
		board.numFlags--
	}
	cell.isRevealed = true
	board.numRevealed++
}

// ToggleFlag flips the flag on a hidden cell. Flagging a revealed cell or
// any cell after the game has ended does nothing. Flags never decide the
// outcome, they only block Reveal on the flagged cell.
func (board *Board) ToggleFlag(col, row int) error {
	if !board.InBounds(col, row) {
		return OutOfBoundsError{col, row, board.cols, board.rows}
	}
	if board.state != Ongoing {
		return nil
	}

	cell := &board.cells[board.index(col, row)]
	if cell.isRevealed {
		return nil
	}

	cell.isFlagged = !cell.isFlagged
	if cell.isFlagged {
		board.numFlags++
	} else {
		board.numFlags--
	}
	return nil
}

// String renders the player's view of the grid, one line per row: '#' for
// hidden, 'F' for flagged, '*' for a revealed mine, '.' for a revealed
// empty cell, and '1'..'8' for revealed numbers.
func (board *Board) String() string {
	var rendered strings.Builder
	for row := 0; row < board.rows; row++ {
		if row > 0 {
			rendered.WriteRune('\n')
		}
		for col := 0; col < board.cols; col++ {
			rendered.WriteRune(board.cells[board.index(col, row)].glyph())
		}
	}
	return rendered.String()
}
