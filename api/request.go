package api

import (
	"encoding/json"

	cerr "github.com/saeidalz13/battleship-autoplay/internal/error"
	mb "github.com/saeidalz13/battleship-autoplay/models/battleship"
	mc "github.com/saeidalz13/battleship-autoplay/models/connection"
)

// Request carries the raw payload of one incoming websocket
// message. Each handler builds the response for its code.
type Request struct {
	payload []byte
}

func NewRequest(payload ...[]byte) Request {
	if len(payload) == 0 {
		return Request{}
	}
	return Request{payload: payload[0]}
}

func (r Request) HandleCreateGame(gm mb.GameManager) (*mb.Game, mc.Message[mc.RespCreateGame]) {
	resp := mc.NewMessage[mc.RespCreateGame](mc.CodeCreateGame)

	var req mc.Message[mc.ReqCreateGame]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), cerr.ConstErrCreateGameFailed)
		return nil, resp
	}

	game := gm.CreateGame(req.Payload.PlayerOneName, req.Payload.PlayerTwoName, gameOptions(req.Payload.Seed)...)
	resp.AddPayload(mc.RespCreateGame{
		GameUuid:     game.Uuid(),
		ShootsFirst:  game.ShootsFirst().Name(),
		ShootsSecond: game.ShootsSecond().Name(),
	})
	return game, resp
}

func (r Request) HandleAdvanceRound(gm mb.GameManager, session *mc.Session) mc.Message[mc.RespRound] {
	resp := mc.NewMessage[mc.RespRound](mc.CodeAdvanceRound)

	gameUuid := session.GameUuid()
	if gameUuid == "" {
		resp.AddError(cerr.ErrNoGameInSession(session.Id()).Error(), cerr.ConstErrAdvanceRoundFailed)
		return resp
	}

	snapshot, err := gm.AdvanceRound(gameUuid)
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrAdvanceRoundFailed)
		return resp
	}

	resp.AddPayload(mc.RespRound{Snapshot: snapshot})
	return resp
}

func (r Request) HandleGameSnapshot(gm mb.GameManager, session *mc.Session) mc.Message[mc.RespRound] {
	resp := mc.NewMessage[mc.RespRound](mc.CodeGameSnapshot)

	gameUuid := session.GameUuid()
	if gameUuid == "" {
		resp.AddError(cerr.ErrNoGameInSession(session.Id()).Error(), "failed to fetch game snapshot")
		return resp
	}

	snapshot, err := gm.Snapshot(gameUuid)
	if err != nil {
		resp.AddError(err.Error(), "failed to fetch game snapshot")
		return resp
	}

	resp.AddPayload(mc.RespRound{Snapshot: snapshot})
	return resp
}

// HandleWatchGame returns the game uuid to watch and the current
// snapshot of that game.
func (r Request) HandleWatchGame(gm mb.GameManager) (string, mc.Message[mc.RespRound]) {
	resp := mc.NewMessage[mc.RespRound](mc.CodeWatchGame)

	var req mc.Message[mc.ReqWatchGame]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "failed to watch game")
		return "", resp
	}

	snapshot, err := gm.Snapshot(req.Payload.GameUuid)
	if err != nil {
		resp.AddError(err.Error(), "failed to watch game")
		return "", resp
	}

	resp.AddPayload(mc.RespRound{Snapshot: snapshot})
	return req.Payload.GameUuid, resp
}

func gameOptions(seed *uint64) []mb.GameOption {
	if seed == nil {
		return nil
	}
	return []mb.GameOption{mb.WithSeed(*seed)}
}
