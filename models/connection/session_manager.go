package connection

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	cerr "github.com/saeidalz13/battleship-autoplay/internal/error"
)

const (
	defaultCleanupInterval = time.Minute * 20
	defaultGracePeriod     = time.Minute * 2
)

type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn) *Session
	FindSession(sessionId string) (*Session, error)
	TerminateSession(sessionId string)
	ReconnectSession(sessionId string, conn *websocket.Conn) error
	HandleAbnormalClosureSession(session *Session) error

	WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error
	ReadFromSessionConn(session *Session) (int, []byte, error)

	Communicate(msg SessionMessage) error
	WatchGame(gameUuid, sessionId string)
	UnwatchGame(gameUuid string)
	Broadcast(gameUuid string, msg interface{})

	CleanupPeriodically(stop <-chan struct{})
}

type BattleshipSessionManager struct {
	cleanupInterval time.Duration
	gracePeriod     time.Duration
	sessions        map[string]*Session

	// game uuid -> ids of sessions watching that game
	watchers map[string]map[string]struct{}
	mu       sync.RWMutex
}

type SessionManagerOption func(*BattleshipSessionManager)

func WithCleanupInterval(d time.Duration) SessionManagerOption {
	return func(bsm *BattleshipSessionManager) {
		bsm.cleanupInterval = d
	}
}

func WithGracePeriod(d time.Duration) SessionManagerOption {
	return func(bsm *BattleshipSessionManager) {
		bsm.gracePeriod = d
	}
}

func NewBattleshipSessionManager(opts ...SessionManagerOption) *BattleshipSessionManager {
	initMapSize := 10

	bsm := &BattleshipSessionManager{
		sessions:        make(map[string]*Session, initMapSize),
		watchers:        make(map[string]map[string]struct{}, initMapSize),
		cleanupInterval: defaultCleanupInterval,
		gracePeriod:     defaultGracePeriod,
	}
	for _, opt := range opts {
		opt(bsm)
	}
	return bsm
}

var _ SessionManager = (*BattleshipSessionManager)(nil)

func (bsm *BattleshipSessionManager) GenerateNewSession(conn *websocket.Conn) *Session {
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))
	session := NewSession(sessionId, conn)

	bsm.mu.Lock()
	bsm.sessions[sessionId] = session
	bsm.mu.Unlock()

	return session
}

func (bsm *BattleshipSessionManager) FindSession(sessionId string) (*Session, error) {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()

	session, prs := bsm.sessions[sessionId]
	if !prs || session == nil {
		return nil, cerr.ErrSessionNotExists(sessionId)
	}

	return session, nil
}

func (bsm *BattleshipSessionManager) TerminateSession(sessionId string) {
	bsm.mu.Lock()
	delete(bsm.sessions, sessionId)
	for gameUuid, ids := range bsm.watchers {
		delete(ids, sessionId)
		if len(ids) == 0 {
			delete(bsm.watchers, gameUuid)
		}
	}
	bsm.mu.Unlock()

	log.Printf("session terminated: %s\n", sessionId)
}

func (bsm *BattleshipSessionManager) ReconnectSession(sessionId string, conn *websocket.Conn) error {
	session, err := bsm.FindSession(sessionId)
	if err != nil {
		return err
	}
	session.reconnectionAfterAbnormalClosure(conn)
	return nil
}

// Keeps the session alive for the grace period after an abnormal
// closure. A reconnection with the same session id resumes it.
func (bsm *BattleshipSessionManager) HandleAbnormalClosureSession(s *Session) error {
	s.mu.Lock()
	reconnected := s.reconnectionSignalChan
	s.mu.Unlock()

	timer := time.NewTimer(bsm.gracePeriod)
	defer timer.Stop()

	select {
	case <-timer.C:
		return NewConnErr(ConnLoopBreak).AddDesc("grace period is over for session: " + s.id)

	case <-reconnected:
		log.Printf("player reconnected, session: %s\n", s.id)
		return nil
	}
}

func (bsm *BattleshipSessionManager) WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error {
	err := session.writeToConnWithRetry(msg, msgType)
	if err == nil {
		return nil
	}

	connErr, ok := err.(ConnErr)
	if !ok {
		return err
	}

	if connErr.Code() == ConnLoopAbnormalClosureRetry {
		if err := bsm.HandleAbnormalClosureSession(session); err != nil {
			return err
		}
		return session.writeToConnWithRetry(msg, msgType)
	}
	return connErr
}

func (bsm *BattleshipSessionManager) ReadFromSessionConn(session *Session) (int, []byte, error) {
	var retries uint8

	for {
		messageType, payload, err := session.Conn().ReadMessage()
		if err == nil {
			return messageType, payload, nil
		}

		switch session.handleReadFromConnErr(err, retries) {
		case ConnLoopContinue:
			retries++
			continue

		case ConnLoopAbnormalClosureRetry:
			if err := bsm.HandleAbnormalClosureSession(session); err != nil {
				return -1, []byte{}, err
			}

		default:
			return -1, []byte{}, err
		}
	}
}

// This method sends the msg from one session to another
func (bsm *BattleshipSessionManager) Communicate(msg SessionMessage) error {
	receiverSession, err := bsm.FindSession(msg.ReceiverID)
	if err != nil {
		return err
	}
	return receiverSession.writeToConnWithRetry(msg.Payload, msg.PayloadType)
}

func (bsm *BattleshipSessionManager) WatchGame(gameUuid, sessionId string) {
	bsm.mu.Lock()
	defer bsm.mu.Unlock()

	ids, prs := bsm.watchers[gameUuid]
	if !prs {
		ids = make(map[string]struct{})
		bsm.watchers[gameUuid] = ids
	}
	ids[sessionId] = struct{}{}
}

// UnwatchGame drops every watcher of a game that no longer exists.
func (bsm *BattleshipSessionManager) UnwatchGame(gameUuid string) {
	bsm.mu.Lock()
	delete(bsm.watchers, gameUuid)
	bsm.mu.Unlock()
}

func (bsm *BattleshipSessionManager) WatchersCount(gameUuid string) int {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()
	return len(bsm.watchers[gameUuid])
}

func (bsm *BattleshipSessionManager) watcherIds(gameUuid string) []string {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()

	ids := make([]string, 0, len(bsm.watchers[gameUuid]))
	for id := range bsm.watchers[gameUuid] {
		ids = append(ids, id)
	}
	return ids
}

// Broadcast encodes msg once and sends it to every watcher of the
// game. A watcher that cannot be written to is dropped from the game.
func (bsm *BattleshipSessionManager) Broadcast(gameUuid string, msg interface{}) {
	ids := bsm.watcherIds(gameUuid)
	if len(ids) == 0 {
		return
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("failed to encode broadcast for game %s: %v\n", gameUuid, err)
		return
	}

	for _, id := range ids {
		if err := bsm.Communicate(NewSessionMessageBytes(id, gameUuid, payload)); err != nil {
			log.Printf("failed to broadcast to watcher %s: %v\n", id, err)
			bsm.mu.Lock()
			delete(bsm.watchers[gameUuid], id)
			bsm.mu.Unlock()
		}
	}
}

// To ensure that there are no dangling connections, sessions
// older than the cleanup interval are removed.
func (bsm *BattleshipSessionManager) CleanupPeriodically(stop <-chan struct{}) {
	assumedClosedConns := 10
	ticker := time.NewTicker(bsm.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}

		bsm.mu.RLock()
		toDelete := make([]string, 0, assumedClosedConns)
		for ID, session := range bsm.sessions {
			if time.Since(session.createdAt) > bsm.cleanupInterval {
				toDelete = append(toDelete, ID)
			}
		}
		bsm.mu.RUnlock()

		if len(toDelete) > 0 {
			log.Println("Clean up sessions:")
		}
		for _, ID := range toDelete {
			bsm.TerminateSession(ID)
		}
	}
}

func (bsm *BattleshipSessionManager) SessionsCount() int {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()
	return len(bsm.sessions)
}

func FetchCodeFromMsg(payload []byte) (uint8, error) {
	var signal Signal
	const randomInvalidCode uint8 = 255

	if err := json.Unmarshal(payload, &signal); err != nil {
		return randomInvalidCode, err
	}

	return signal.Code, nil
}
