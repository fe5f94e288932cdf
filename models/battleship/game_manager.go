package battleship

import (
	"log"
	"sync"
	"time"

	cerr "github.com/saeidalz13/battleship-autoplay/internal/error"
)

const (
	defaultGameCleanupInterval   = time.Minute * 5
	defaultFinishedGameRetention = time.Minute * 10
	defaultIdleGameTimeout       = time.Hour
)

type GameManager interface {
	CreateGame(playerOneName, playerTwoName string, opts ...GameOption) *Game
	GetGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string)

	// AdvanceRound plays one round of the game while holding
	// the manager lock, so concurrent callers never interleave.
	AdvanceRound(gameUuid string) (GameSnapshot, error)
	Snapshot(gameUuid string) (GameSnapshot, error)

	CleanupPeriodically(stop <-chan struct{})
}

// managedGame remembers when the game was created or last advanced.
type managedGame struct {
	game         *Game
	lastActivity time.Time
}

type BattleshipGameManager struct {
	games map[string]*managedGame

	cleanupInterval   time.Duration
	finishedRetention time.Duration
	idleTimeout       time.Duration
	onEvict           func(gameUuid string)

	mu sync.RWMutex
}

type GameManagerOption func(*BattleshipGameManager)

func WithGameCleanupInterval(d time.Duration) GameManagerOption {
	return func(bgm *BattleshipGameManager) {
		bgm.cleanupInterval = d
	}
}

// WithFinishedGameRetention is how long a finished game stays
// readable after its last round.
func WithFinishedGameRetention(d time.Duration) GameManagerOption {
	return func(bgm *BattleshipGameManager) {
		bgm.finishedRetention = d
	}
}

// WithIdleGameTimeout evicts games in progress that nobody
// advanced for d.
func WithIdleGameTimeout(d time.Duration) GameManagerOption {
	return func(bgm *BattleshipGameManager) {
		bgm.idleTimeout = d
	}
}

// WithOnEvict is called with the uuid of every evicted game,
// outside the manager lock.
func WithOnEvict(fn func(gameUuid string)) GameManagerOption {
	return func(bgm *BattleshipGameManager) {
		bgm.onEvict = fn
	}
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager(opts ...GameManagerOption) *BattleshipGameManager {
	bgm := &BattleshipGameManager{
		games:             make(map[string]*managedGame, 10),
		cleanupInterval:   defaultGameCleanupInterval,
		finishedRetention: defaultFinishedGameRetention,
		idleTimeout:       defaultIdleGameTimeout,
	}
	for _, opt := range opts {
		opt(bgm)
	}
	return bgm
}

func (bgm *BattleshipGameManager) CreateGame(playerOneName, playerTwoName string, opts ...GameOption) *Game {
	game := NewGame(playerOneName, playerTwoName, opts...)

	bgm.mu.Lock()
	bgm.games[game.uuid] = &managedGame{game: game, lastActivity: time.Now()}
	bgm.mu.Unlock()

	return game
}

// lookup expects the caller to hold the lock.
func (bgm *BattleshipGameManager) lookup(gameUuid string) (*managedGame, error) {
	mg, prs := bgm.games[gameUuid]
	if !prs {
		return nil, cerr.ErrGameNotExists(gameUuid)
	}
	if mg == nil || mg.game == nil {
		return nil, cerr.ErrGameIsNil(gameUuid)
	}
	return mg, nil
}

func (bgm *BattleshipGameManager) GetGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()

	mg, err := bgm.lookup(gameUuid)
	if err != nil {
		return nil, err
	}
	return mg.game, nil
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	bgm.mu.Lock()
	delete(bgm.games, gameUuid)
	bgm.mu.Unlock()
}

// A failed advance, e.g. on a finished game, does not count as
// activity.
func (bgm *BattleshipGameManager) AdvanceRound(gameUuid string) (GameSnapshot, error) {
	bgm.mu.Lock()
	defer bgm.mu.Unlock()

	mg, err := bgm.lookup(gameUuid)
	if err != nil {
		return GameSnapshot{}, err
	}
	if err := mg.game.AdvanceRound(); err != nil {
		return GameSnapshot{}, err
	}
	mg.lastActivity = time.Now()
	return mg.game.Snapshot(), nil
}

func (bgm *BattleshipGameManager) Snapshot(gameUuid string) (GameSnapshot, error) {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()

	mg, err := bgm.lookup(gameUuid)
	if err != nil {
		return GameSnapshot{}, err
	}
	return mg.game.Snapshot(), nil
}

func (bgm *BattleshipGameManager) GamesCount() int {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()
	return len(bgm.games)
}

// EvictStale removes finished games older than the retention and
// games in progress idle for longer than the idle timeout, both
// measured at now. It returns the evicted uuids.
func (bgm *BattleshipGameManager) EvictStale(now time.Time) []string {
	bgm.mu.Lock()
	evicted := make([]string, 0)
	for gameUuid, mg := range bgm.games {
		limit := bgm.idleTimeout
		if mg == nil || mg.game == nil || mg.game.isOver {
			limit = bgm.finishedRetention
		}
		if mg == nil || now.Sub(mg.lastActivity) > limit {
			evicted = append(evicted, gameUuid)
			delete(bgm.games, gameUuid)
		}
	}
	bgm.mu.Unlock()

	for _, gameUuid := range evicted {
		log.Printf("game evicted: %s\n", gameUuid)
		if bgm.onEvict != nil {
			bgm.onEvict(gameUuid)
		}
	}
	return evicted
}

func (bgm *BattleshipGameManager) CleanupPeriodically(stop <-chan struct{}) {
	ticker := time.NewTicker(bgm.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			bgm.EvictStale(now)
		}
	}
}
