package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlwoals256/minesweeper/game"
)

const fixtureLayout = `
	*...
	....
	...*
`

func TestActRevealsOneHiddenCell(t *testing.T) {
	board, err := game.ParseBoard(fixtureLayout)
	require.NoError(t, err)

	director := &Director{}
	director.Init(board)

	actions := director.Act()
	require.Len(t, actions, 1)

	action := actions[0]
	assert.Equal(t, game.ActionReveal, action.Kind)
	require.True(t, board.InBounds(action.Col, action.Row))
	assert.False(t, board.CellAt(action.Col, action.Row).IsRevealed())
}

func TestActSkipsFlaggedCells(t *testing.T) {
	board, err := game.ParseBoard(`
		*.
		..
	`)
	require.NoError(t, err)

	require.NoError(t, board.ToggleFlag(0, 0))
	require.NoError(t, board.ToggleFlag(1, 0))
	require.NoError(t, board.ToggleFlag(0, 1))

	director := &Director{}
	director.Init(board)

	actions := director.Act()
	require.Len(t, actions, 1)
	assert.Equal(t, game.Action{Kind: game.ActionReveal, Col: 1, Row: 1}, actions[0])
}

func TestActOnFinishedBoardReturnsNothing(t *testing.T) {
	board, err := game.ParseBoard(fixtureLayout)
	require.NoError(t, err)
	require.NoError(t, board.Reveal(0, 0))
	require.True(t, board.GameOver())

	director := &Director{}
	director.Init(board)

	assert.Empty(t, director.Act())
}

func TestActAfterEndReturnsNothing(t *testing.T) {
	board, err := game.ParseBoard(fixtureLayout)
	require.NoError(t, err)

	director := &Director{}
	director.Init(board)
	director.End()

	assert.Empty(t, director.Act())
}

func TestDirectorAlwaysFinishesTheGame(t *testing.T) {
	board, err := game.ParseBoard(fixtureLayout)
	require.NoError(t, err)

	director := &Director{}
	director.Init(board)

	// One reveal per step, so the game must end within NumCells steps
	for i := 0; i < board.NumCells() && board.State() == game.Ongoing; i++ {
		actions := director.Act()
		require.NotEmpty(t, actions)
		for _, action := range actions {
			require.NoError(t, board.Reveal(action.Col, action.Row))
		}
	}

	assert.NotEqual(t, game.Ongoing, board.State())
}
