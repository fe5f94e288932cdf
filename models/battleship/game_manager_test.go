package battleship

import (
	"errors"
	"sync"
	"testing"
	"time"

	cerr "github.com/saeidalz13/battleship-autoplay/internal/error"
)

func TestGameManager(t *testing.T) {
	bgm := NewBattleshipGameManager()
	game := bgm.CreateGame("John", "", WithSeed(3))

	got, err := bgm.GetGame(game.Uuid())
	if err != nil {
		t.Fatal(err)
	}
	if got != game {
		t.Fatal("expected the created game")
	}

	snapshot, err := bgm.AdvanceRound(game.Uuid())
	if err != nil {
		t.Fatal(err)
	}
	if snapshot.Round != 1 {
		t.Fatalf("expected round 1\tgot: %d", snapshot.Round)
	}
	if snapshot.Players[1].Name != DefaultPlayerTwoName {
		t.Fatalf("expected %s\tgot: %s", DefaultPlayerTwoName, snapshot.Players[1].Name)
	}

	bgm.TerminateGame(game.Uuid())
	if _, err := bgm.GetGame(game.Uuid()); !errors.Is(err, cerr.ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound\tgot: %v", err)
	}
	if _, err := bgm.Snapshot(game.Uuid()); !errors.Is(err, cerr.ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound\tgot: %v", err)
	}
}

func TestGameManagerConcurrentAdvance(t *testing.T) {
	bgm := NewBattleshipGameManager()
	game := bgm.CreateGame("", "", WithSeed(21))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				if _, err := bgm.AdvanceRound(game.Uuid()); err != nil {
					if !errors.Is(err, cerr.ErrGameAlreadyOver) {
						t.Errorf("unexpected error: %v", err)
					}
					return
				}
			}
		}()
	}
	wg.Wait()

	snapshot, err := bgm.Snapshot(game.Uuid())
	if err != nil {
		t.Fatal(err)
	}
	if !snapshot.IsOver || snapshot.Status != GameStatusComplete {
		t.Fatalf("expected a finished game\tgot: %+v", snapshot.Status)
	}
}

func playToEnd(t *testing.T, bgm *BattleshipGameManager, gameUuid string) {
	t.Helper()
	for {
		snapshot, err := bgm.AdvanceRound(gameUuid)
		if err != nil {
			t.Fatal(err)
		}
		if snapshot.IsOver {
			return
		}
	}
}

func TestGameManagerEvictStale(t *testing.T) {
	var evicted []string
	bgm := NewBattleshipGameManager(
		WithFinishedGameRetention(time.Minute),
		WithIdleGameTimeout(time.Hour),
		WithOnEvict(func(gameUuid string) { evicted = append(evicted, gameUuid) }),
	)

	finished := bgm.CreateGame("John", "Jack", WithSeed(11))
	playToEnd(t, bgm, finished.Uuid())
	inProgress := bgm.CreateGame("John", "Jack", WithSeed(12))

	// Still within the retention window
	if got := bgm.EvictStale(time.Now()); len(got) != 0 {
		t.Fatalf("expected nothing evicted\tgot: %v", got)
	}
	if _, err := bgm.Snapshot(finished.Uuid()); err != nil {
		t.Fatalf("finished game must stay readable within the window: %v", err)
	}

	// A rejected advance on a finished game does not extend its life
	if _, err := bgm.AdvanceRound(finished.Uuid()); !errors.Is(err, cerr.ErrGameAlreadyOver) {
		t.Fatalf("expected ErrGameAlreadyOver\tgot: %v", err)
	}

	got := bgm.EvictStale(time.Now().Add(time.Minute * 2))
	if len(got) != 1 || got[0] != finished.Uuid() {
		t.Fatalf("expected only %s evicted\tgot: %v", finished.Uuid(), got)
	}
	if len(evicted) != 1 || evicted[0] != finished.Uuid() {
		t.Fatalf("expected on evict for %s\tgot: %v", finished.Uuid(), evicted)
	}
	if _, err := bgm.GetGame(finished.Uuid()); !errors.Is(err, cerr.ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound\tgot: %v", err)
	}
	if _, err := bgm.GetGame(inProgress.Uuid()); err != nil {
		t.Fatalf("game in progress must survive the retention window: %v", err)
	}

	got = bgm.EvictStale(time.Now().Add(time.Hour * 2))
	if len(got) != 1 || got[0] != inProgress.Uuid() {
		t.Fatalf("expected idle %s evicted\tgot: %v", inProgress.Uuid(), got)
	}
	if bgm.GamesCount() != 0 {
		t.Fatalf("expected no games left\tgot: %d", bgm.GamesCount())
	}
}

func TestGameManagerCleanupPeriodically(t *testing.T) {
	bgm := NewBattleshipGameManager(
		WithGameCleanupInterval(time.Millisecond*10),
		WithFinishedGameRetention(time.Millisecond),
	)
	game := bgm.CreateGame("", "", WithSeed(5))
	playToEnd(t, bgm, game.Uuid())

	stop := make(chan struct{})
	defer close(stop)
	go bgm.CleanupPeriodically(stop)

	deadline := time.Now().Add(time.Second * 5)
	for bgm.GamesCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("finished game was not cleaned up")
		}
		time.Sleep(time.Millisecond * 10)
	}
}
