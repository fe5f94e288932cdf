package battleship

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-autoplay/internal/error"
)

const (
	GameStatusInProgress = "In Progress"
	GameStatusComplete   = "Complete"

	DefaultPlayerOneName = "Player 1"
	DefaultPlayerTwoName = "Player 2"
)

type Game struct {
	uuid         string
	round        int
	isOver       bool
	status       string
	playerOne    *Player
	playerTwo    *Player
	shootsFirst  *Player
	shootsSecond *Player
	winner       *Player
	loser        *Player
	rng          *rand.Rand
}

type GameOption func(*Game)

// WithRand makes every random draw of the game come from rng.
func WithRand(rng *rand.Rand) GameOption {
	return func(g *Game) {
		g.rng = rng
	}
}

func WithSeed(seed uint64) GameOption {
	return WithRand(NewRand(seed))
}

func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewGame creates both players (and so both grids and ships) and
// decides once who shoots first. Empty names fall back to defaults.
func NewGame(playerOneName, playerTwoName string, opts ...GameOption) *Game {
	game := &Game{
		uuid:   uuid.NewString()[:6],
		status: GameStatusInProgress,
	}
	for _, opt := range opts {
		opt(game)
	}
	if game.rng == nil {
		game.rng = NewRand(uint64(time.Now().UnixNano()))
	}

	if playerOneName == "" {
		playerOneName = DefaultPlayerOneName
	}
	if playerTwoName == "" {
		playerTwoName = DefaultPlayerTwoName
	}
	game.playerOne = NewPlayer(playerOneName, game.rng)
	game.playerTwo = NewPlayer(playerTwoName, game.rng)

	if game.rng.IntN(2) == 0 {
		game.shootsFirst, game.shootsSecond = game.playerOne, game.playerTwo
	} else {
		game.shootsFirst, game.shootsSecond = game.playerTwo, game.playerOne
	}

	return game
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) Round() int {
	return g.round
}

func (g *Game) IsOver() bool {
	return g.isOver
}

func (g *Game) Status() string {
	return g.status
}

func (g *Game) PlayerOne() *Player {
	return g.playerOne
}

func (g *Game) PlayerTwo() *Player {
	return g.playerTwo
}

// returns a slice of players in the order of player one then two.
func (g *Game) GetPlayers() []*Player {
	return []*Player{g.playerOne, g.playerTwo}
}

func (g *Game) ShootsFirst() *Player {
	return g.shootsFirst
}

func (g *Game) ShootsSecond() *Player {
	return g.shootsSecond
}

// Winner is nil until the game is over.
func (g *Game) Winner() *Player {
	return g.winner
}

// Loser is nil until the game is over.
func (g *Game) Loser() *Player {
	return g.loser
}

// AdvanceRound plays one round. Round 0 places both ships; every
// later round shoots the second shooter's grid, then the first's.
// Player one is checked for a sunk ship before player two.
func (g *Game) AdvanceRound() error {
	if g.isOver {
		return cerr.ErrGameIsOver(g.winner.name)
	}

	if g.round == 0 {
		g.shootsFirst.grid.PlaceShip()
		g.shootsSecond.grid.PlaceShip()
	} else {
		g.shoot(g.shootsSecond)
		g.shoot(g.shootsFirst)
	}

	if g.playerOne.IsShipSunk() {
		g.finish(g.playerTwo, g.playerOne)
	} else if g.playerTwo.IsShipSunk() {
		g.finish(g.playerOne, g.playerTwo)
	}

	g.round++
	return nil
}

// shoot hits a random cell of the opponent's grid. Cells already
// hit can be drawn again.
func (g *Game) shoot(opponent *Player) {
	position := opponent.grid.GetRandomCell()
	position.MarkHit()
	opponent.lastHitPosition = position
	opponent.grid.ship.Sink()
}

func (g *Game) finish(winner, loser *Player) {
	g.isOver = true
	g.winner = winner
	g.loser = loser
	g.status = GameStatusComplete
}

func (g *Game) String() string {
	winner := "None"
	if g.winner != nil {
		winner = g.winner.name
	}
	return fmt.Sprintf("%s vs %s: Round %d, %s, Winner: %s", g.shootsFirst, g.shootsSecond, g.round, g.status, winner)
}
