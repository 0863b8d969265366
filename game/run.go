package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	headerHeight   = 50
	minWindowWidth = 200
)

type annotationKind int

const (
	annotateReveal annotationKind = iota
	annotateFlag
	annotateProbe
	annotateHint
)

// annotation is a short-lived colored square over one cell, marking a move
// just made so the eye can follow fast director play and hints.
type annotation struct {
	kind     annotationKind
	col, row int
	fade     *gween.Tween
}

type GameConfig struct {
	Difficulty Difficulty
	Seed       int64

	Director Director
	// Pause between director steps
	DirectorInterval time.Duration

	// Transparency of annotations when first displayed
	AnnotationBaseAlpha float64
	// Total time an annotation will be displayed
	AnnotationDuration time.Duration
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Difficulty:          Beginner,
		Director:            nil,
		DirectorInterval:    150 * time.Millisecond,
		AnnotationBaseAlpha: 0.5,
		AnnotationDuration:  400 * time.Millisecond,
	}
}

// Run opens the window and plays games until it is closed. Left click
// reveals, right click flags, middle click marks the hidden neighbors of
// the hovered cell. R restarts, Enter restarts once the game has ended,
// H shows the hint, and 1/2/3 switch between the preset difficulties.
func Run(config GameConfig) {
	session, err := NewSession(SessionConfig{Difficulty: config.Difficulty, Seed: config.Seed})
	if err != nil {
		logrus.WithError(err).Fatal("cannot deal the first board")
	}

	cfg := pixelgl.WindowConfig{
		Title:  "minesweeper",
		Bounds: windowBounds(session.Board()),
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		panic(err)
	}

	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	headerText := text.New(pixel.ZV, basicAtlas)
	cellText := text.New(pixel.ZV, basicAtlas)
	resultText := text.New(pixel.ZV, basicAtlas)

	var annotations deque.Deque[annotation]
	pushAnnotation := func(kind annotationKind, col, row int) {
		annotations.PushBack(annotation{
			kind: kind,
			col:  col,
			row:  row,
			fade: gween.New(
				float32(config.AnnotationBaseAlpha), 0,
				float32(config.AnnotationDuration.Seconds()), ease.InOutCubic),
		})
	}

	finishHandled := false
	handleFinish := func() {
		if !session.Finished() || finishHandled {
			return
		}
		finishHandled = true

		if config.Director != nil {
			config.Director.End()
		}
		logrus.WithFields(logrus.Fields{
			"result":  session.Board().State(),
			"elapsed": FormatElapsed(session.Elapsed()),
		}).Info("game finished")
	}

	// Restarting at the current difficulty and switching difficulty share
	// everything but the session call: fresh board, fresh annotations,
	// window resized to fit, director told to start over.
	applyDifficulty := func(difficulty Difficulty) {
		if config.Director != nil && !finishHandled {
			config.Director.End()
		}

		var err error
		if difficulty == session.Difficulty() {
			err = session.Restart()
		} else {
			err = session.SetDifficulty(difficulty)
		}
		if err != nil {
			logrus.WithError(err).Error("cannot deal a new board")
			return
		}

		win.SetBounds(windowBounds(session.Board()))
		annotations.Clear()
		finishHandled = false
		if config.Director != nil {
			config.Director.Init(session.Board())
		}
	}

	if config.Director != nil {
		config.Director.Init(session.Board())
	}

	var directorTick <-chan time.Time
	if config.Director != nil {
		directorTick = time.Tick(config.DirectorInterval)
	}

	var (
		frames = 0
		second = time.Tick(time.Second)
		last   = time.Now()
	)

	for !win.Closed() {
		win.Update()
		win.Clear(colornames.Gainsboro)

		dt := float32(time.Since(last).Seconds())
		last = time.Now()

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}

		board := session.Board()
		boardTop := float64(board.Rows() * cellWidth)
		headerTop := win.Bounds().Max.Y

		var hovered *Cell
		if win.MouseInsideWindow() {
			hovered = cellUnder(board, win.MousePosition())
		}

		imd := imdraw.New(nil)
		imd.Color = colornames.Darkgray
		imd.Push(pixel.V(0, 0), pixel.V(float64(board.Cols()*cellWidth), boardTop))
		imd.Rectangle(0)
		drawBoard(imd, board)
		imd.Draw(win)

		for row := 0; row < board.Rows(); row++ {
			for col := 0; col < board.Cols(); col++ {
				cell := board.CellAt(col, row)
				if !cell.IsRevealed() || cell.IsMine() || cell.Adjacent() == 0 {
					continue
				}

				cellText.Clear()
				cellText.Color = numberColor(cell.Adjacent())
				fmt.Fprintf(cellText, "%d", cell.Adjacent())

				center := cellRect(board, col, row).Center()
				cellText.Draw(win, pixel.IM.
					Moved(center.Sub(cellText.Bounds().Center())).
					Scaled(center, 1.5))
			}
		}

		if annotations.Len() > 0 {
			annotationImd := imdraw.New(nil)

			finishedPrefix := 0
			countingPrefix := true
			for i := 0; i < annotations.Len(); i++ {
				mark := annotations.At(i)
				alpha, done := mark.fade.Update(dt)
				if done && countingPrefix {
					finishedPrefix++
				} else {
					countingPrefix = false
				}
				if done {
					continue
				}

				rect := cellRect(board, mark.col, mark.row)
				annotationImd.Color = annotationColor(mark.kind).Mul(pixel.Alpha(float64(alpha)))
				annotationImd.Push(rect.Min, rect.Max)
				annotationImd.Rectangle(0) // 0 = filled
			}
			for i := 0; i < finishedPrefix; i++ {
				annotations.PopFront()
			}

			annotationImd.Draw(win)
		}

		headerText.Clear()
		headerText.Color = colornames.Black
		fmt.Fprintf(headerText, "%03d", session.RemainingMines())
		headerText.Draw(win, pixel.IM.Moved(pixel.V(20, headerTop-30)))

		headerText.Clear()
		headerText.Color = colornames.Black
		fmt.Fprint(headerText, FormatElapsed(session.Elapsed()))
		headerText.Draw(win, pixel.IM.Moved(pixel.V(win.Bounds().W()-60, headerTop-30)))

		if session.HintAvailable() {
			headerText.Clear()
			headerText.Color = colornames.Darkcyan
			fmt.Fprint(headerText, "hint: H")
			headerText.Draw(win, pixel.IM.Moved(pixel.V(win.Bounds().W()/2-25, headerTop-30)))
		}

		if hovered != nil {
			headerText.Clear()
			headerText.Color = colornames.Darkcyan
			fmt.Fprintf(headerText, "(%d, %d)", hovered.Col(), hovered.Row())
			headerText.Draw(win, pixel.IM.Moved(pixel.V(win.Bounds().W()-60, headerTop-45)))
		}

		if session.Finished() {
			overlay := imdraw.New(nil)
			overlay.Color = pixel.RGB(1, 1, 1).Mul(pixel.Alpha(0.45))
			overlay.Push(pixel.V(0, 0), pixel.V(win.Bounds().W(), boardTop))
			overlay.Rectangle(0)
			overlay.Draw(win)

			resultText.Clear()
			if board.Win() {
				resultText.Color = colornames.Green
			} else {
				resultText.Color = colornames.Red
			}
			fmt.Fprint(resultText, session.Result())

			center := pixel.V(win.Bounds().W()/2, boardTop/2)
			resultText.Draw(win, pixel.IM.
				Moved(center.Sub(resultText.Bounds().Center())).
				Scaled(center, 3))
		}

		if config.Director != nil && !session.Finished() {
			select {
			case <-directorTick:
				for _, action := range config.Director.Act() {
					kind := annotateReveal
					if action.Kind == ActionToggleFlag {
						kind = annotateFlag
					}
					pushAnnotation(kind, action.Col, action.Row)

					logrus.WithFields(logrus.Fields{
						"action": action.Kind,
						"col":    action.Col,
						"row":    action.Row,
					}).Debug("director move")

					if err := session.Apply(action); err != nil {
						logrus.WithError(err).Warn("director move rejected")
					}
				}
			default:
			}
		}

		handleFinish()

		if win.JustPressed(pixelgl.KeyR) {
			applyDifficulty(session.Difficulty())
			continue
		}
		if session.Finished() && win.JustPressed(pixelgl.KeyEnter) {
			applyDifficulty(session.Difficulty())
			continue
		}
		if win.JustPressed(pixelgl.Key1) {
			applyDifficulty(Beginner)
			continue
		}
		if win.JustPressed(pixelgl.Key2) {
			applyDifficulty(Intermediate)
			continue
		}
		if win.JustPressed(pixelgl.Key3) {
			applyDifficulty(Expert)
			continue
		}

		if session.Finished() {
			continue
		}

		if win.JustPressed(pixelgl.KeyH) {
			if coord, ok := session.UseHint(); ok {
				pushAnnotation(annotateHint, coord.Col, coord.Row)
			}
		}

		if hovered != nil {
			if win.JustPressed(pixelgl.MouseButtonLeft) {
				pushAnnotation(annotateReveal, hovered.Col(), hovered.Row())
				if err := session.Reveal(hovered.Col(), hovered.Row()); err != nil {
					logrus.WithError(err).Warn("reveal rejected")
				}
			}
			if win.JustPressed(pixelgl.MouseButtonRight) {
				pushAnnotation(annotateFlag, hovered.Col(), hovered.Row())
				if err := session.ToggleFlag(hovered.Col(), hovered.Row()); err != nil {
					logrus.WithError(err).Warn("flag rejected")
				}
			}
			if win.JustPressed(pixelgl.MouseButtonMiddle) {
				neighbors, err := board.Neighbors(hovered.Col(), hovered.Row())
				if err == nil {
					for _, coord := range neighbors {
						neighbor := board.CellAt(coord.Col, coord.Row)
						if !neighbor.IsRevealed() && !neighbor.IsFlagged() {
							pushAnnotation(annotateProbe, coord.Col, coord.Row)
						}
					}
				}
			}
		}

		handleFinish()
	}
}

func windowBounds(board *Board) pixel.Rect {
	return pixel.R(
		0, 0,
		math.Max(float64(board.Cols()*cellWidth), minWindowWidth),
		float64(board.Rows()*cellWidth+headerHeight),
	)
}

// cellRect is the screen-space square of a cell. The window's y axis
// points up, so row 0 sits at the top of the board area.
func cellRect(board *Board, col, row int) pixel.Rect {
	x := float64(col * cellWidth)
	y := float64((board.Rows() - 1 - row) * cellWidth)
	return pixel.R(x, y, x+cellWidth, y+cellWidth)
}

// cellUnder maps a window position to the cell beneath it, nil when the
// position is over the header or outside the board.
func cellUnder(board *Board, pos pixel.Vec) *Cell {
	col := int(math.Floor(pos.X / cellWidth))
	rowFromBottom := int(math.Floor(pos.Y / cellWidth))
	return board.CellAt(col, board.Rows()-1-rowFromBottom)
}

func drawBoard(imd *imdraw.IMDraw, board *Board) {
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			cell := board.CellAt(col, row)
			rect := cellRect(board, col, row)
			inset := pixel.R(rect.Min.X+1, rect.Min.Y+1, rect.Max.X-1, rect.Max.Y-1)

			switch {
			case cell.IsRevealed() && cell.IsMine():
				imd.Color = colornames.Red
			case cell.IsRevealed():
				imd.Color = colornames.Gainsboro
			default:
				imd.Color = colornames.Silver
			}
			imd.Push(inset.Min, inset.Max)
			imd.Rectangle(0)

			// Once the game is lost, every mine still hiding comes out.
			showMine := cell.IsMine() &&
				(cell.IsRevealed() || (board.GameOver() && !cell.IsFlagged()))
			switch {
			case showMine:
				drawMine(imd, rect)
			case cell.IsFlagged():
				drawFlag(imd, rect)
			}
		}
	}
}

func drawMine(imd *imdraw.IMDraw, rect pixel.Rect) {
	imd.Color = colornames.Black
	imd.Push(rect.Center())
	imd.Circle(cellWidth*0.28, 0)
}

func drawFlag(imd *imdraw.IMDraw, rect pixel.Rect) {
	poleX := rect.Min.X + cellWidth*0.4
	base := pixel.V(poleX, rect.Min.Y+cellWidth*0.2)
	top := pixel.V(poleX, rect.Min.Y+cellWidth*0.8)

	imd.Color = colornames.Black
	imd.Push(base, top)
	imd.Line(2)

	imd.Color = colornames.Red
	imd.Push(
		top,
		pixel.V(poleX+cellWidth*0.4, top.Y-cellWidth*0.15),
		pixel.V(poleX, top.Y-cellWidth*0.3),
	)
	imd.Polygon(0)
}

func annotationColor(kind annotationKind) pixel.RGBA {
	switch kind {
	case annotateReveal:
		return pixel.RGB(1, 0, 0)
	case annotateFlag:
		return pixel.RGB(0, 0, 1)
	case annotateProbe:
		return pixel.RGB(0, 1, 0)
	default:
		return pixel.RGB(1, 1, 0)
	}
}

// numberColor follows the classic palette, one color per adjacent count.
func numberColor(adjacent int) color.RGBA {
	switch adjacent {
	case 1:
		return colornames.Blue
	case 2:
		return colornames.Green
	case 3:
		return colornames.Red
	case 4:
		return colornames.Navy
	case 5:
		return colornames.Maroon
	case 6:
		return colornames.Teal
	case 7:
		return colornames.Black
	default:
		return colornames.Gray
	}
}
