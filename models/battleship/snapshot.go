package battleship

type CellSnapshot struct {
	Col  string `json:"col"`
	Row  int    `json:"row"`
	Hit  bool   `json:"hit"`
	Part string `json:"part,omitempty"`
}

type PlayerSnapshot struct {
	Uuid            string           `json:"uuid"`
	Name            string           `json:"name"`
	ShipSunk        bool             `json:"ship_sunk"`
	LastHitPosition *CellSnapshot    `json:"last_hit_position,omitempty"`
	Grid            [][]CellSnapshot `json:"grid"`
}

type GameSnapshot struct {
	GameUuid     string `json:"game_uuid"`
	Round        int    `json:"round"`
	Status       string `json:"status"`
	IsOver       bool   `json:"is_over"`
	ShootsFirst  string `json:"shoots_first"`
	ShootsSecond string `json:"shoots_second"`
	Winner       string `json:"winner,omitempty"`
	Loser        string `json:"loser,omitempty"`

	// Index into Players of the player who shoots first; names
	// may be equal so they cannot tell the players apart.
	ShootsFirstIndex int               `json:"shoots_first_index"`
	Players          [2]PlayerSnapshot `json:"players"`
}

func NewCellSnapshot(p *Position) CellSnapshot {
	return CellSnapshot{
		Col:  string(p.col),
		Row:  p.row,
		Hit:  p.hit,
		Part: p.part.String(),
	}
}

func (g *Grid) Snapshot() [][]CellSnapshot {
	rows := make([][]CellSnapshot, GridSize)
	for i, row := range g.cells {
		rows[i] = make([]CellSnapshot, GridSize)
		for j, p := range row {
			rows[i][j] = NewCellSnapshot(p)
		}
	}
	return rows
}

func (p *Player) Snapshot() PlayerSnapshot {
	ps := PlayerSnapshot{
		Uuid:     p.uuid,
		Name:     p.name,
		ShipSunk: p.IsShipSunk(),
		Grid:     p.grid.Snapshot(),
	}
	if p.lastHitPosition != nil {
		cell := NewCellSnapshot(p.lastHitPosition)
		ps.LastHitPosition = &cell
	}
	return ps
}

// Snapshot copies the whole state of the game. Nothing in it
// references the live game.
func (g *Game) Snapshot() GameSnapshot {
	gs := GameSnapshot{
		GameUuid:     g.uuid,
		Round:        g.round,
		Status:       g.status,
		IsOver:       g.isOver,
		ShootsFirst:  g.shootsFirst.name,
		ShootsSecond: g.shootsSecond.name,
		Players:      [2]PlayerSnapshot{g.playerOne.Snapshot(), g.playerTwo.Snapshot()},
	}
	if g.shootsFirst == g.playerTwo {
		gs.ShootsFirstIndex = 1
	}
	if g.winner != nil {
		gs.Winner = g.winner.name
		gs.Loser = g.loser.name
	}
	return gs
}
