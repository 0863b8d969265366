package game

import "fmt"

// InvalidConfigError reports board parameters that cannot produce a playable
// grid. Construction fails outright rather than clamping the values.
type InvalidConfigError struct {
	Cols, Rows int
	NumMines   int
}

func (e InvalidConfigError) Error() string {
	switch {
	case e.Cols <= 0:
		return fmt.Sprintf("cannot create a board with %d columns", e.Cols)
	case e.Rows <= 0:
		return fmt.Sprintf("cannot create a board with %d rows", e.Rows)
	case e.NumMines <= 0:
		return fmt.Sprintf("cannot create a board with %d mines", e.NumMines)
	default:
		return fmt.Sprintf("no room for %d mines on a %dx%d board",
			e.NumMines, e.Cols, e.Rows)
	}
}

// OutOfBoundsError reports coordinates outside the board. Callers are
// expected to bounds-check before issuing moves; this is a contract
// violation, not a normal play outcome.
type OutOfBoundsError struct {
	Col, Row   int
	Cols, Rows int
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell (%d, %d) is outside the %dx%d board",
		e.Col, e.Row, e.Cols, e.Rows)
}
