package connection

import (
	mb "github.com/saeidalz13/battleship-autoplay/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespCreateGame struct {
	GameUuid     string `json:"game_uuid"`
	ShootsFirst  string `json:"shoots_first"`
	ShootsSecond string `json:"shoots_second"`
}

type RespRound struct {
	Snapshot mb.GameSnapshot `json:"snapshot"`
}

type RespEndGame struct {
	GameUuid string `json:"game_uuid"`
	Winner   string `json:"winner"`
	Loser    string `json:"loser"`
	Rounds   int    `json:"rounds"`
}

func NewRespEndGame(s mb.GameSnapshot) RespEndGame {
	return RespEndGame{
		GameUuid: s.GameUuid,
		Winner:   s.Winner,
		Loser:    s.Loser,
		Rounds:   s.Round,
	}
}

type RespAnalytics struct {
	ServerIp       string `json:"server_ip"`
	Enabled        bool   `json:"enabled"`
	GamesCreated   int64  `json:"games_created"`
	GamesCompleted int64  `json:"games_completed"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
