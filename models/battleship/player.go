package battleship

import (
	"log"
	"math/rand"
)

type Player interface {
	ChooseTarget() (Dot, error)
	ReportShotError(err error)
	OwnBoard() *Board
	TargetBoard() *Board
}

// CoordinateReader supplies a syntactically valid target. It does not
// know whether the cell was shot before; the board decides that.
type CoordinateReader interface {
	ReadCoordinates() (Dot, error)
}

type ShotErrorReporter interface {
	ReportShotError(err error)
}

// seat holds the boards a player acts on. Neither is owned by the player.
type seat struct {
	ownBoard    *Board
	targetBoard *Board
}

func (s seat) OwnBoard() *Board {
	return s.ownBoard
}

func (s seat) TargetBoard() *Board {
	return s.targetBoard
}

type AIPlayer struct {
	seat
	rng *rand.Rand
}

var _ Player = (*AIPlayer)(nil)

func NewAIPlayer(ownBoard, targetBoard *Board, rng *rand.Rand) *AIPlayer {
	return &AIPlayer{
		seat: seat{ownBoard: ownBoard, targetBoard: targetBoard},
		rng:  rng,
	}
}

// The AI keeps no memory of earlier shots and may pick a busy cell,
// in which case TakeTurn simply asks again.
func (ai *AIPlayer) ChooseTarget() (Dot, error) {
	size := ai.targetBoard.Size()
	return Dot{X: ai.rng.Intn(size), Y: ai.rng.Intn(size)}, nil
}

func (ai *AIPlayer) ReportShotError(error) {}

type HumanPlayer struct {
	seat
	input    CoordinateReader
	reporter ShotErrorReporter
}

var _ Player = (*HumanPlayer)(nil)

func NewHumanPlayer(ownBoard, targetBoard *Board, input CoordinateReader, reporter ShotErrorReporter) *HumanPlayer {
	return &HumanPlayer{
		seat:     seat{ownBoard: ownBoard, targetBoard: targetBoard},
		input:    input,
		reporter: reporter,
	}
}

func (h *HumanPlayer) ChooseTarget() (Dot, error) {
	return h.input.ReadCoordinates()
}

func (h *HumanPlayer) ReportShotError(err error) {
	if h.reporter != nil {
		h.reporter.ReportShotError(err)
	}
}

type Shot struct {
	Target  Dot
	Outcome ShotOutcome
}

// Repeat reports whether the shooter acts again.
func (s Shot) Repeat() bool {
	return s.Outcome == ShotHit || s.Outcome == ShotDestroyed
}

// TakeTurn asks the player for targets until one resolves on the target
// board. Out of bounds and already targeted cells are reported back to the
// player and retried. Any other error (e.g. closed input) ends the turn.
func TakeTurn(p Player) (Shot, error) {
	for {
		target, err := p.ChooseTarget()
		if err != nil {
			return Shot{}, err
		}

		outcome, err := p.TargetBoard().Shoot(target)
		if err != nil {
			if isShotErr(err) {
				p.ReportShotError(err)
				continue
			}
			log.Println("unexpected shot error:", err)
			return Shot{}, err
		}

		return Shot{Target: target, Outcome: outcome}, nil
	}
}
