package connection

const (
	CodeSessionID uint8 = iota
	CodeReceivedInvalidSessionID
	CodeCreateGame
	CodeAdvanceRound

	// Server plays rounds until the game is over and
	// sends every round to the client
	CodePlayToEnd
	CodeGameSnapshot
	CodeEndGame

	// Subscribe to the rounds of a game played by another session
	CodeWatchGame
	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
