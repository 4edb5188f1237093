package battleship_test

import (
	"io"
	"testing"

	mb "github.com/saeidalz13/seabattle/models/battleship"
)

// scriptedPlayer fires at a fixed list of targets and then reports closed input.
type scriptedPlayer struct {
	own      *mb.Board
	target   *mb.Board
	targets  []mb.Dot
	reported []error
}

var _ mb.Player = (*scriptedPlayer)(nil)

func newScriptedPlayer(own, target *mb.Board, targets ...mb.Dot) *scriptedPlayer {
	return &scriptedPlayer{own: own, target: target, targets: targets}
}

func (s *scriptedPlayer) ChooseTarget() (mb.Dot, error) {
	if len(s.targets) == 0 {
		return mb.Dot{}, io.EOF
	}
	next := s.targets[0]
	s.targets = s.targets[1:]
	return next, nil
}

func (s *scriptedPlayer) ReportShotError(err error) {
	s.reported = append(s.reported, err)
}

func (s *scriptedPlayer) OwnBoard() *mb.Board {
	return s.own
}

func (s *scriptedPlayer) TargetBoard() *mb.Board {
	return s.target
}

// boardWithShips places the ships and starts play on the board.
func boardWithShips(t *testing.T, size int, ships ...*mb.Ship) *mb.Board {
	t.Helper()

	board := mb.NewBoard(size)
	for _, ship := range ships {
		if err := board.AddShip(ship); err != nil {
			t.Fatalf("failed to place ship at %s: %v", ship.Bow(), err)
		}
	}
	board.Begin()
	return board
}
