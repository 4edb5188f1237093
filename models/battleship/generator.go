package battleship

import (
	"fmt"
	"log"
	"math/rand"
)

// FleetSize is the number of destroyed ships that ends the game.
const FleetSize int = 7

var fleet = [FleetSize]int{3, 2, 2, 1, 1, 1, 1}

// Fleet returns the ship lengths of a complete board, longest first.
func Fleet() []int {
	lengths := make([]int, FleetSize)
	copy(lengths, fleet[:])
	return lengths
}

// Attempts are counted across the whole board, not per ship
const DefaultMaxAttempts int = 2000

type Generator struct {
	rng         *rand.Rand
	fleet       []int
	maxAttempts int
}

type GeneratorOption func(*Generator)

func NewGenerator(rng *rand.Rand, opts ...GeneratorOption) *Generator {
	g := &Generator{
		rng:         rng,
		fleet:       Fleet(),
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func WithMaxAttempts(maxAttempts int) GeneratorOption {
	return func(g *Generator) {
		g.maxAttempts = maxAttempts
	}
}

func WithFleet(lengths ...int) GeneratorOption {
	return func(g *Generator) {
		g.fleet = lengths
	}
}

// AttemptBoard places the whole fleet at random. When the attempt
// budget runs out the partial board is thrown away and a
// BoardErrAttemptsExhausted is returned so the caller starts over.
func (g *Generator) AttemptBoard(size int) (*Board, error) {
	board := NewBoard(size)
	attempts := 0

	for _, length := range g.fleet {
		for {
			attempts++
			if attempts > g.maxAttempts {
				return nil, NewBoardErr(BoardErrAttemptsExhausted).AddDesc(fmt.Sprintf("placed %d of %d ships", len(board.ships), len(g.fleet)))
			}

			ship := NewShip(g.randomDot(size), length, Orientation(g.rng.Intn(2)))
			if err := board.AddShip(ship); err != nil {
				if IsBoardErr(err, BoardErrWrongPlacement) {
					continue
				}
				return nil, err
			}
			break
		}
	}

	board.Begin()
	return board, nil
}

// GenerateBoard keeps attempting until a full board comes out.
func (g *Generator) GenerateBoard(size int) *Board {
	for restarts := 0; ; restarts++ {
		board, err := g.AttemptBoard(size)
		if err == nil {
			return board
		}
		log.Printf("board attempt %d discarded: %v\n", restarts+1, err)
	}
}

// Bow coordinates are drawn from [0, size) on both axes.
func (g *Generator) randomDot(size int) Dot {
	return Dot{X: g.rng.Intn(size), Y: g.rng.Intn(size)}
}
