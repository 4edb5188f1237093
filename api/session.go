package api

import (
	"log"
	"math/rand"

	mb "github.com/saeidalz13/seabattle/models/battleship"
)

// StartGame generates both boards and seats the human on the terminal
// against the automated player. The AI board is hidden from the user.
func StartGame(t *Terminal, rng *rand.Rand, boardSize int) *mb.Game {
	gen := mb.NewGenerator(rng)

	userBoard := gen.GenerateBoard(boardSize)
	aiBoard := gen.GenerateBoard(boardSize)
	aiBoard.SetHidden(true)

	user := mb.NewHumanPlayer(userBoard, aiBoard, t, t)
	ai := mb.NewAIPlayer(aiBoard, userBoard, rng)

	game := mb.NewGame(user, ai, mb.WithObserver(t))
	log.Printf("game %s created: board size %d\n", game.Uuid(), boardSize)
	return game
}
