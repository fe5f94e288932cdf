package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saeidalz13/battleship-autoplay/db/sqlc"
	cerr "github.com/saeidalz13/battleship-autoplay/internal/error"
	mc "github.com/saeidalz13/battleship-autoplay/models/connection"
)

// NewRouter serves the websocket endpoint and a REST view over
// the same games.
func NewRouter(rp RequestProcessor) http.Handler {
	r := chi.NewRouter()
	r.Get("/battleship", rp.ServeHTTP)
	r.Get("/analytics", rp.getAnalytics)
	r.Post("/games", rp.createGame)
	r.Route("/games/{id}", func(r chi.Router) {
		r.Get("/", rp.getGame)
		r.Post("/rounds", rp.advanceRound)
	})
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("failed to write json response:", err)
	}
}

func writeErr(w http.ResponseWriter, err error, message string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, cerr.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, cerr.ErrGameAlreadyOver):
		status = http.StatusConflict
	}
	writeJSON(w, status, mc.NewRespErr(err.Error(), message))
}

func (rp RequestProcessor) createGame(w http.ResponseWriter, r *http.Request) {
	var req mc.ReqCreateGame
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, mc.NewRespErr(err.Error(), cerr.ConstErrCreateGameFailed))
			return
		}
	}

	game := rp.gameManager.CreateGame(req.PlayerOneName, req.PlayerTwoName, gameOptions(req.Seed)...)
	rp.dbManager.Analytics.RecordGameCreated(rp.inet())
	log.Printf("game created: %s\n", game.Uuid())

	writeJSON(w, http.StatusCreated, mc.RespCreateGame{
		GameUuid:     game.Uuid(),
		ShootsFirst:  game.ShootsFirst().Name(),
		ShootsSecond: game.ShootsSecond().Name(),
	})
}

func (rp RequestProcessor) getGame(w http.ResponseWriter, r *http.Request) {
	snapshot, err := rp.gameManager.Snapshot(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, err, "failed to fetch game snapshot")
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (rp RequestProcessor) advanceRound(w http.ResponseWriter, r *http.Request) {
	snapshot, err := rp.gameManager.AdvanceRound(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, err, cerr.ConstErrAdvanceRoundFailed)
		return
	}

	resp := mc.NewMessage[mc.RespRound](mc.CodeAdvanceRound)
	resp.AddPayload(mc.RespRound{Snapshot: snapshot})
	_ = rp.onRoundPlayed(nil, resp)

	writeJSON(w, http.StatusOK, snapshot)
}

func (rp RequestProcessor) getAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics := rp.dbManager.Analytics
	ipnet := rp.GetIpNet()
	resp := mc.RespAnalytics{
		ServerIp: ipnet.String(),
		Enabled:  analytics.Enabled(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), sqlc.QuerierCtxTimeout)
	defer cancel()

	var err error
	if resp.GamesCreated, err = analytics.GetGamesCreatedCount(ctx, rp.inet()); err != nil {
		writeErr(w, err, "failed to fetch analytics")
		return
	}
	if resp.GamesCompleted, err = analytics.GetGamesCompletedCount(ctx, rp.inet()); err != nil {
		writeErr(w, err, "failed to fetch analytics")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
