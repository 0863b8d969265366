package constraint

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dlwoals256/minesweeper/director/random"
	"github.com/dlwoals256/minesweeper/game"
	"github.com/dlwoals256/minesweeper/util/collections"
)

// Observation records what one revealed number says about its hidden
// neighborhood: exactly numMines of the listed cells are mines. Derived
// observations, built by subtracting one observation from another, carry
// no origin.
type Observation struct {
	origin    game.Coord
	hasOrigin bool
	numMines  int
	cells     collections.Set[game.Coord]
}

func (observation *Observation) String() string {
	originRepr := "?"
	if observation.hasOrigin {
		originRepr = fmt.Sprintf("(%d, %d)", observation.origin.Col, observation.origin.Row)
	}
	return fmt.Sprintf("Obs[%8s, %d ε %s]", originRepr, observation.numMines, observation.cellsRepr())
}

func (observation *Observation) cellsRepr() string {
	coords := make([]game.Coord, 0, len(observation.cells))
	for coord := range observation.cells {
		coords = append(coords, coord)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Row != coords[j].Row {
			return coords[i].Row < coords[j].Row
		}
		return coords[i].Col < coords[j].Col
	})

	var repr strings.Builder
	for i, coord := range coords {
		if i > 0 {
			repr.WriteString(", ")
		}
		repr.WriteString(fmt.Sprintf("(%d, %d)", coord.Col, coord.Row))
	}
	return repr.String()
}

func (observation *Observation) MineProbability() float32 {
	return float32(observation.numMines) / float32(len(observation.cells))
}

// Director plays by constraint propagation. Each step it reads the board's
// numbers into observations, derives tighter ones by subtracting
// overlapping sets, then acts from the strongest tier that has anything to
// say: certain moves first, then the least likely mine, then a blind
// guess.
type Director struct {
	board *game.Board

	observations       collections.Set[*Observation]
	observationsByCell map[game.Coord]collections.Set[*Observation]
	observationKeys    map[string]struct{}
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.observations = collections.NewSet[*Observation]()
	director.observationsByCell = make(map[game.Coord]collections.Set[*Observation])
	director.observationKeys = make(map[string]struct{})
}

func (director *Director) Act() []game.Action {
	if director.board == nil || director.board.State() != game.Ongoing {
		return nil
	}

	director.rebuildObservations()

	actors := []struct {
		tier string
		act  func() []game.Action
	}{
		{"deliberate", director.actDeliberate},
		{"lowest-probability", director.actLowestProbability},
		{"random", director.actRandom},
	}

	for _, actor := range actors {
		if actions := actor.act(); len(actions) > 0 {
			logrus.WithFields(logrus.Fields{
				"tier":    actor.tier,
				"actions": len(actions),
			}).Debug("constraint director acting")
			return actions
		}
	}
	return nil
}

func (director *Director) End() {
	director.board = nil
	director.observations = nil
	director.observationsByCell = nil
	director.observationKeys = nil
}

// rebuildObservations rereads the whole board. Flags are trusted: a
// flagged neighbor counts against the number, and observations that flags
// have made inconsistent are dropped.
func (director *Director) rebuildObservations() {
	director.observations = collections.NewSet[*Observation]()
	director.observationsByCell = make(map[game.Coord]collections.Set[*Observation])
	director.observationKeys = make(map[string]struct{})

	board := director.board
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			cell := board.CellAt(col, row)
			if !cell.IsRevealed() || cell.Adjacent() == 0 {
				continue
			}

			observation := Observation{
				origin:    game.Coord{Col: col, Row: row},
				hasOrigin: true,
				numMines:  cell.Adjacent(),
				cells:     collections.NewSet[game.Coord](),
			}

			neighbors, _ := board.Neighbors(col, row)
			for _, coord := range neighbors {
				neighbor := board.CellAt(coord.Col, coord.Row)
				if neighbor.IsRevealed() {
					continue
				}
				if neighbor.IsFlagged() {
					observation.numMines--
				} else {
					observation.cells.Add(coord)
				}
			}

			director.addObservation(&observation)
		}
	}

	// Derived observations can unlock further splits
	for i := 0; i < 2; i++ {
		director.splitObservations()
	}
}

// splitObservations derives new observations from overlapping ones. When
// one observation's cells are a subset of another's, the difference holds
// the difference of their mine counts. When a single mine is shared
// between two observations and the remainder of the larger one is exactly
// full, the remainder is pinned down too.
func (director *Director) splitObservations() {
	for observation := range director.observations {
		visited := collections.NewSet[*Observation]()

		for coord := range observation.cells {
			for intersecting := range director.observationsByCell[coord] {
				if intersecting == observation || visited.Contains(intersecting) {
					continue
				}
				visited.Add(intersecting)

				shared, isSubset := observation.cells.IntersectionEx(intersecting.cells)
				if isSubset {
					director.addObservation(&Observation{
						numMines: intersecting.numMines - observation.numMines,
						cells:    intersecting.cells.Difference(observation.cells),
					})
				} else if observation.numMines == 1 && len(shared) > 1 {
					leftOnly := intersecting.cells.Difference(shared)
					occludedMines := intersecting.numMines - observation.numMines

					if occludedMines == len(leftOnly) {
						director.addObservation(&Observation{
							numMines: occludedMines,
							cells:    leftOnly,
						})
					}
				}
			}
		}
	}
}

func (director *Director) addObservation(observation *Observation) {
	// Vacuous or inconsistent observations carry no information
	if len(observation.cells) == 0 ||
		observation.numMines < 0 || observation.numMines > len(observation.cells) {
		return
	}

	// Don't add duplicates
	key := observation.cellsRepr()
	if _, exists := director.observationKeys[key]; exists {
		return
	}
	director.observationKeys[key] = struct{}{}

	director.observations.Add(observation)
	for coord := range observation.cells {
		cellObservations, exists := director.observationsByCell[coord]
		if !exists {
			cellObservations = collections.NewSet[*Observation]()
			director.observationsByCell[coord] = cellObservations
		}
		cellObservations.Add(observation)
	}
}

// actDeliberate plays every certain move: observations whose cells are all
// mines get flagged, observations with no mines left get revealed.
func (director *Director) actDeliberate() []game.Action {
	var actions []game.Action
	acted := collections.NewSet[game.Coord]()

	for observation := range director.observations {
		var kind game.ActionKind
		switch {
		case observation.numMines == len(observation.cells):
			kind = game.ActionToggleFlag
		case observation.numMines == 0:
			kind = game.ActionReveal
		default:
			continue
		}

		logrus.WithField("observation", observation).Debug("certain move")
		for coord := range observation.cells {
			if acted.Contains(coord) {
				continue
			}
			acted.Add(coord)
			actions = append(actions, game.Action{Kind: kind, Col: coord.Col, Row: coord.Row})
		}
	}
	return actions
}

// actLowestProbability guesses the cell least likely to be a mine, going
// by the most favorable observation covering each cell.
func (director *Director) actLowestProbability() []game.Action {
	lowest := float32(math.Inf(1))
	probabilities := make(map[game.Coord]float32)

	for observation := range director.observations {
		probability := observation.MineProbability()
		for coord := range observation.cells {
			past, seen := probabilities[coord]
			if !seen || probability < past {
				probabilities[coord] = probability
			}
			if probability < lowest {
				lowest = probability
			}
		}
	}
	if len(probabilities) == 0 {
		return nil
	}

	var candidates []game.Coord
	for coord, probability := range probabilities {
		if probability <= lowest {
			candidates = append(candidates, coord)
		}
	}

	choice := candidates[rand.Intn(len(candidates))]
	logrus.WithFields(logrus.Fields{
		"probability": lowest,
		"candidates":  len(candidates),
	}).Debug("guessing least likely mine")
	return []game.Action{{Kind: game.ActionReveal, Col: choice.Col, Row: choice.Row}}
}

// actRandom falls back to a blind guess when no observation covers any
// hidden cell, e.g. on the very first move.
func (director *Director) actRandom() []game.Action {
	fallback := &random.Director{}
	fallback.Init(director.board)
	defer fallback.End()
	return fallback.Act()
}
