package game

import (
	"fmt"
	"strings"
)

// ParseBoard builds a board from an ASCII layout with one line per row:
// '*' marks a mine, '.' a safe cell. Leading and trailing whitespace on
// each line and blank lines are dropped, so layouts read naturally as
// indented raw string literals. The result starts fully hidden, with
// adjacent counts computed from the placement, and must satisfy the same
// configuration rules as NewBoard.
func ParseBoard(layout string) (*Board, error) {
	var lines []string
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("parse board: empty layout")
	}

	cols := len(lines[0])
	rows := len(lines)

	numMines := 0
	for row, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("parse board: row %d has %d cells, want %d", row, len(line), cols)
		}
		numMines += strings.Count(line, "*")
	}

	board, err := newEmptyBoard(cols, rows, numMines)
	if err != nil {
		return nil, err
	}

	for row, line := range lines {
		for col, char := range line {
			switch char {
			case '*':
				board.addMine(board.index(col, row))
			case '.':
			default:
				return nil, fmt.Errorf("parse board: unexpected %q at (%d, %d)", char, col, row)
			}
		}
	}
	return board, nil
}
