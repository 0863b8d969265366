package game

import (
	"fmt"
	"math/rand"
	"time"
)

// SessionConfig carries everything needed to start play. A zero Seed picks
// a time-based one so that unseeded sessions differ from each other.
type SessionConfig struct {
	Difficulty Difficulty
	Seed       int64
}

// Session owns one game at a time: the live board plus the bookkeeping the
// board itself must not carry. The clock, the once-per-game hint, restarts
// and difficulty changes all live here. A restart replaces the board
// wholesale; nothing is reset in place.
type Session struct {
	board      *Board
	difficulty Difficulty

	started   bool
	startedAt time.Time
	endedAt   time.Time
	hintUsed  bool

	rng *rand.Rand
	now func() time.Time
}

// NewSession deals the first board for the configured difficulty. Board
// seeds chain off the session RNG, so a seeded session replays the same
// sequence of boards, restarts included.
func NewSession(config SessionConfig) (*Session, error) {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session := &Session{
		difficulty: config.Difficulty,
		rng:        rand.New(rand.NewSource(seed)),
		now:        time.Now,
	}
	if err := session.rebuild(); err != nil {
		return nil, err
	}
	return session, nil
}

// rebuild replaces the board with a fresh deal for the current difficulty
// and clears the per-game bookkeeping.
func (session *Session) rebuild() error {
	board, err := NewBoardSeeded(
		session.difficulty.Cols, session.difficulty.Rows, session.difficulty.NumMines,
		session.rng.Int63())
	if err != nil {
		return err
	}

	session.board = board
	session.started = false
	session.startedAt = time.Time{}
	session.endedAt = time.Time{}
	session.hintUsed = false
	return nil
}

func (session *Session) Board() *Board {
	return session.board
}

func (session *Session) Difficulty() Difficulty {
	return session.difficulty
}

// Started reports whether the clock is running, i.e. the player has tried
// at least one reveal this game.
func (session *Session) Started() bool {
	return session.started
}

// Finished reports whether the current game has been won or lost.
func (session *Session) Finished() bool {
	return session.board.state != Ongoing
}

// Reveal uncovers a cell on behalf of the player. The first reveal attempt
// of a game starts the clock, even when the cell is flagged and nothing
// uncovers.
func (session *Session) Reveal(col, row int) error {
	if !session.board.InBounds(col, row) {
		return OutOfBoundsError{col, row, session.board.cols, session.board.rows}
	}

	session.start()
	if err := session.board.Reveal(col, row); err != nil {
		return err
	}
	session.noteFinish()
	return nil
}

// ToggleFlag flips a flag on behalf of the player. Flagging never starts
// the clock.
func (session *Session) ToggleFlag(col, row int) error {
	return session.board.ToggleFlag(col, row)
}

// Apply performs a director action through the same path as player input.
func (session *Session) Apply(action Action) error {
	switch action.Kind {
	case ActionReveal:
		return session.Reveal(action.Col, action.Row)
	case ActionToggleFlag:
		return session.ToggleFlag(action.Col, action.Row)
	default:
		return fmt.Errorf("unknown action kind %d", int(action.Kind))
	}
}

// UseHint uncovers one random safe hidden cell and returns its
// coordinates. The hint is spent once per game, even when no safe cell
// remains to show.
func (session *Session) UseHint() (Coord, bool) {
	if session.hintUsed || session.Finished() {
		return Coord{}, false
	}
	session.hintUsed = true

	var safe []Coord
	for i := range session.board.cells {
		cell := &session.board.cells[i]
		if !cell.isMine && !cell.isRevealed && !cell.isFlagged {
			safe = append(safe, Coord{cell.col, cell.row})
		}
	}
	if len(safe) == 0 {
		return Coord{}, false
	}

	session.start()
	target := safe[session.rng.Intn(len(safe))]
	session.board.Reveal(target.Col, target.Row)
	session.noteFinish()
	return target, true
}

// HintAvailable reports whether UseHint would still show a cell.
func (session *Session) HintAvailable() bool {
	return !session.hintUsed && !session.Finished()
}

// Restart abandons the current board and deals a fresh one at the same
// difficulty.
func (session *Session) Restart() error {
	return session.rebuild()
}

// SetDifficulty switches to the given difficulty and deals a fresh board.
// Picking the difficulty already in play simply restarts it.
func (session *Session) SetDifficulty(difficulty Difficulty) error {
	if err := difficulty.Validate(); err != nil {
		return err
	}
	session.difficulty = difficulty
	return session.rebuild()
}

// RemainingMines is the header counter: mines minus flags, floored at zero
// when the player overflags.
func (session *Session) RemainingMines() int {
	return max(0, session.board.numMines-session.board.numFlags)
}

// Elapsed reports play time: zero before the first reveal, live while the
// game runs, frozen at the moment it ends.
func (session *Session) Elapsed() time.Duration {
	if !session.started {
		return 0
	}
	if !session.endedAt.IsZero() {
		return session.endedAt.Sub(session.startedAt)
	}
	return session.now().Sub(session.startedAt)
}

// Result is the banner text for a finished game, empty while play
// continues.
func (session *Session) Result() string {
	switch session.board.state {
	case Lost:
		return "GAME OVER"
	case Won:
		return "GAME CLEAR"
	default:
		return ""
	}
}

func (session *Session) start() {
	if session.started || session.Finished() {
		return
	}
	session.started = true
	session.startedAt = session.now()
}

func (session *Session) noteFinish() {
	if session.Finished() && session.endedAt.IsZero() {
		session.endedAt = session.now()
	}
}

// FormatElapsed renders a duration as mm:ss for the header clock.
func FormatElapsed(elapsed time.Duration) string {
	totalSeconds := int(elapsed / time.Second)
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}
