package battleship

import (
	"errors"
	"reflect"
	"testing"

	cerr "github.com/saeidalz13/battleship-autoplay/internal/error"
)

func TestNewGame(t *testing.T) {
	g := NewGame("John", "Jack", WithSeed(11))

	if g.IsOver() {
		t.Fatal("new game must not be over")
	}
	if g.Status() != GameStatusInProgress {
		t.Fatalf("expected status %s\tgot: %s", GameStatusInProgress, g.Status())
	}
	if g.Round() != 0 {
		t.Fatalf("expected round 0\tgot: %d", g.Round())
	}
	if g.PlayerOne().Name() != "John" || g.PlayerTwo().Name() != "Jack" {
		t.Fatalf("unexpected names: %s, %s", g.PlayerOne(), g.PlayerTwo())
	}
	if g.PlayerOne().Grid() == g.PlayerTwo().Grid() {
		t.Fatal("players must not share a grid")
	}
	if g.PlayerOne().IsShipSunk() || g.PlayerTwo().IsShipSunk() {
		t.Fatal("ships must not be sunk at the start")
	}
	if g.Winner() != nil || g.Loser() != nil {
		t.Fatal("winner and loser must be nil at the start")
	}
	if g.ShootsFirst() == g.ShootsSecond() {
		t.Fatal("shooters must be different players")
	}
}

func TestNewGameDefaultNames(t *testing.T) {
	g := NewGame("", "")
	if g.PlayerOne().Name() != DefaultPlayerOneName {
		t.Fatalf("expected %s\tgot: %s", DefaultPlayerOneName, g.PlayerOne().Name())
	}
	if g.PlayerTwo().Name() != DefaultPlayerTwoName {
		t.Fatalf("expected %s\tgot: %s", DefaultPlayerTwoName, g.PlayerTwo().Name())
	}
}

func TestAdvanceRound(t *testing.T) {
	g := NewGame("John", "Jack", WithSeed(42))
	shootsFirst := g.ShootsFirst()

	// Round 0 places the ships
	if err := g.AdvanceRound(); err != nil {
		t.Fatal(err)
	}
	if g.PlayerOne().LastHitPosition() != nil || g.PlayerTwo().LastHitPosition() != nil {
		t.Fatal("no shot must be fired in round 0")
	}
	if g.Round() != 1 {
		t.Fatalf("expected round 1\tgot: %d", g.Round())
	}
	for _, p := range g.GetPlayers() {
		for _, sp := range p.Grid().Ship().Positions() {
			cell, _ := p.Grid().GetCell(sp.Col(), sp.Row())
			if cell != sp {
				t.Fatalf("ship of %s not placed at %s", p, sp.Coordinates)
			}
		}
	}

	// Players hit each other's grids
	if err := g.AdvanceRound(); err != nil {
		t.Fatal(err)
	}
	for _, p := range g.GetPlayers() {
		if p.LastHitPosition() == nil {
			t.Fatalf("last hit position of %s must be set after round 1", p)
		}
		if !p.LastHitPosition().IsHit() {
			t.Fatalf("last hit position of %s must be hit", p)
		}
	}

	for !g.IsOver() {
		if err := g.AdvanceRound(); err != nil {
			t.Fatal(err)
		}
		if g.Round() > 100000 {
			t.Fatal("game did not end")
		}
	}

	if g.ShootsFirst() != shootsFirst {
		t.Fatal("turn order must never change")
	}
	if g.Status() != GameStatusComplete {
		t.Fatalf("expected status %s\tgot: %s", GameStatusComplete, g.Status())
	}
	if g.Winner() == nil || g.Loser() == nil || g.Winner() == g.Loser() {
		t.Fatal("winner and loser must be set and different")
	}
	if !g.Loser().IsShipSunk() {
		t.Fatal("loser ship must be sunk")
	}

	round := g.Round()
	err := g.AdvanceRound()
	if !errors.Is(err, cerr.ErrGameAlreadyOver) {
		t.Fatalf("expected ErrGameAlreadyOver\tgot: %v", err)
	}
	if g.Round() != round {
		t.Fatal("failed advance must not change the round")
	}
}

func TestGameRoundsFloor(t *testing.T) {
	longerThanFour := false

	for seed := uint64(0); seed < 20; seed++ {
		g := NewGame("", "", WithSeed(seed))
		for !g.IsOver() {
			if err := g.AdvanceRound(); err != nil {
				t.Fatal(err)
			}
		}
		// setup round plus at least three shots on one ship
		if g.Round() < 4 {
			t.Fatalf("seed %d: game cannot end before round 4, ended at %d", seed, g.Round())
		}
		if g.Round() > 4 {
			longerThanFour = true
		}
	}

	if !longerThanFour {
		t.Fatal("expected at least one game to last more than 4 rounds")
	}
}

func TestGameDeterministicWithSeed(t *testing.T) {
	a := NewGame("John", "Jack", WithSeed(99))
	b := NewGame("John", "Jack", WithSeed(99))

	for !a.IsOver() {
		if err := a.AdvanceRound(); err != nil {
			t.Fatal(err)
		}
		if err := b.AdvanceRound(); err != nil {
			t.Fatal(err)
		}

		sa, sb := a.Snapshot(), b.Snapshot()
		sa.GameUuid, sb.GameUuid = "", ""
		for i := range sa.Players {
			sa.Players[i].Uuid, sb.Players[i].Uuid = "", ""
		}
		if !reflect.DeepEqual(sa, sb) {
			t.Fatalf("games with the same seed diverged at round %d", a.Round())
		}
	}
	if !b.IsOver() {
		t.Fatal("second game must end in the same round")
	}
}

func TestAdvanceRoundBothSunkPlayerOneLoses(t *testing.T) {
	g := NewGame("John", "Jack", WithSeed(5))
	if err := g.AdvanceRound(); err != nil {
		t.Fatal(err)
	}

	for _, p := range g.GetPlayers() {
		for _, sp := range p.Grid().Ship().Positions() {
			sp.MarkHit()
		}
		p.Grid().Ship().Sink()
	}

	if err := g.AdvanceRound(); err != nil {
		t.Fatal(err)
	}
	if g.Loser() != g.PlayerOne() || g.Winner() != g.PlayerTwo() {
		t.Fatalf("expected player one to lose the tie\tgot loser: %s", g.Loser())
	}
}

func TestSnapshot(t *testing.T) {
	g := NewGame("John", "Jack", WithSeed(8))
	if err := g.AdvanceRound(); err != nil {
		t.Fatal(err)
	}

	s := g.Snapshot()
	if s.Round != 1 || s.Status != GameStatusInProgress || s.IsOver {
		t.Fatalf("unexpected snapshot header: %+v", s)
	}
	if s.Winner != "" || s.Loser != "" {
		t.Fatal("winner and loser must be empty while in progress")
	}

	for i, ps := range s.Players {
		if ps.LastHitPosition != nil {
			t.Fatal("no last hit after round 0")
		}
		if len(ps.Grid) != GridSize {
			t.Fatalf("expected %d rows\tgot: %d", GridSize, len(ps.Grid))
		}
		parts := 0
		for r, row := range ps.Grid {
			if len(row) != GridSize {
				t.Fatalf("expected %d cols\tgot: %d", GridSize, len(row))
			}
			for c, cell := range row {
				if cell.Row != r+1 || cell.Col != string(Columns[c]) {
					t.Fatalf("cell out of order: %+v", cell)
				}
				if cell.Part != "" {
					parts++
				}
			}
		}
		if parts != 3 {
			t.Fatalf("player %d: expected 3 ship parts\tgot: %d", i, parts)
		}
	}
}

func TestSnapshotShootsFirstIndexWithEqualNames(t *testing.T) {
	seen := [2]bool{}
	for seed := uint64(0); seed < 50; seed++ {
		g := NewGame("Bob", "Bob", WithSeed(seed))
		s := g.Snapshot()

		if s.ShootsFirstIndex < 0 || s.ShootsFirstIndex > 1 {
			t.Fatalf("seed %d: expected index 0 or 1\tgot: %d", seed, s.ShootsFirstIndex)
		}
		if s.Players[s.ShootsFirstIndex].Uuid != g.ShootsFirst().Uuid() {
			t.Fatalf("seed %d: index %d does not point at the first shooter", seed, s.ShootsFirstIndex)
		}
		seen[s.ShootsFirstIndex] = true
	}

	if !seen[0] || !seen[1] {
		t.Fatalf("expected both players to shoot first across seeds\tgot: %v", seen)
	}
}
