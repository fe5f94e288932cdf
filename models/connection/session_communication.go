package connection

// SessionMessage is a payload addressed to another session,
// e.g. a round broadcast to a watcher of the game.
type SessionMessage struct {
	PayloadType uint8
	ReceiverID  string
	GameUuid    string
	Payload     interface{}
}

// NewSessionMessageBytes carries an already encoded payload, so a
// message sent to many sessions is encoded once.
func NewSessionMessageBytes(receiverId string, gameUuid string, p []byte) SessionMessage {
	return SessionMessage{
		PayloadType: MessageTypeBytes,
		ReceiverID:  receiverId,
		GameUuid:    gameUuid,
		Payload:     p,
	}
}
