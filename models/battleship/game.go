package battleship

import (
	"log"

	"github.com/google/uuid"
)

type GameState uint8

const (
	AwaitingUserShot GameState = iota
	AwaitingAIShot
	UserWon
	AIWon
)

func (s GameState) String() string {
	switch s {
	case AwaitingUserShot:
		return "AwaitingUserShot"
	case AwaitingAIShot:
		return "AwaitingAIShot"
	case UserWon:
		return "UserWon"
	case AIWon:
		return "AIWon"
	default:
		return "Unknown"
	}
}

func (s GameState) IsOver() bool {
	return s == UserWon || s == AIWon
}

type Side uint8

const (
	SideUser Side = iota
	SideAI
)

func (s Side) String() string {
	if s == SideAI {
		return "AI"
	}
	return "User"
}

// Observer is notified as the game progresses. The console uses it to
// render boards and feedback; the engine itself prints nothing.
type Observer interface {
	TurnStarted(g *Game, side Side)
	ShotFired(side Side, shot Shot)
	GameOver(g *Game)
}

type NopObserver struct{}

func (NopObserver) TurnStarted(*Game, Side) {}
func (NopObserver) ShotFired(Side, Shot)    {}
func (NopObserver) GameOver(*Game)          {}

type Game struct {
	uuid      string
	state     GameState
	turn      int
	shots     int
	fleetSize int
	players   [2]Player
	observer  Observer
}

type GameOption func(*Game)

func WithFleetSize(fleetSize int) GameOption {
	return func(g *Game) {
		g.fleetSize = fleetSize
	}
}

func WithObserver(observer Observer) GameOption {
	return func(g *Game) {
		g.observer = observer
	}
}

func WithGameUuid(gameUuid string) GameOption {
	return func(g *Game) {
		g.uuid = gameUuid
	}
}

// NewGame starts with the user to move. The user's target board is
// expected to be the AI's own board and vice versa.
func NewGame(user, ai Player, opts ...GameOption) *Game {
	g := &Game{
		uuid:      uuid.NewString()[:6],
		state:     AwaitingUserShot,
		fleetSize: FleetSize,
		players:   [2]Player{user, ai},
		observer:  NopObserver{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Step plays one turn of the side to move. A hit or a destroyed ship
// keeps the turn; a miss passes it to the other side.
func (g *Game) Step() (GameState, error) {
	if g.state.IsOver() {
		return g.state, nil
	}

	side := g.SideToMove()
	g.observer.TurnStarted(g, side)

	shot, err := TakeTurn(g.players[side])
	if err != nil {
		return g.state, err
	}
	g.shots++
	g.observer.ShotFired(side, shot)

	if shot.Repeat() {
		g.turn--
	}
	g.turn++

	switch {
	case g.AIBoard().DestroyedCount() >= g.fleetSize:
		g.state = UserWon
	case g.UserBoard().DestroyedCount() >= g.fleetSize:
		g.state = AIWon
	case g.turn%2 == 0:
		g.state = AwaitingUserShot
	default:
		g.state = AwaitingAIShot
	}

	if g.state.IsOver() {
		log.Printf("game %s finished: %s after %d shots\n", g.uuid, g.state, g.shots)
		g.observer.GameOver(g)
	}
	return g.state, nil
}

// Run steps until one fleet is destroyed.
func (g *Game) Run() (GameState, error) {
	log.Printf("game %s started\n", g.uuid)
	for !g.state.IsOver() {
		if _, err := g.Step(); err != nil {
			return g.state, err
		}
	}
	return g.state, nil
}

func (g *Game) SideToMove() Side {
	if g.turn%2 == 0 {
		return SideUser
	}
	return SideAI
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) State() GameState {
	return g.state
}

func (g *Game) Shots() int {
	return g.shots
}

func (g *Game) FleetSize() int {
	return g.fleetSize
}

func (g *Game) Player(side Side) Player {
	return g.players[side]
}

func (g *Game) UserBoard() *Board {
	return g.players[SideUser].OwnBoard()
}

func (g *Game) AIBoard() *Board {
	return g.players[SideAI].OwnBoard()
}
