package api

import (
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/saeidalz13/battleship-autoplay/db/sqlc"
	mb "github.com/saeidalz13/battleship-autoplay/models/battleship"
	mc "github.com/saeidalz13/battleship-autoplay/models/connection"
	"github.com/sqlc-dev/pqtype"
)

const (
	URLQuerySessionIDKeyword string = "sessionID"
)

var upgrader = websocket.Upgrader{

	// good average time since this is not a high-latency operation such as video streaming
	HandshakeTimeout: time.Second * 5,

	// a full game snapshot is a few KB
	ReadBufferSize:  2048,
	WriteBufferSize: 8192,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type RequestProcessor struct {
	sessionManager mc.SessionManager
	gameManager    mb.GameManager
	dbManager      sqlc.DbManager
	ipnet          net.IPNet
}

// NewRequestProcessor accepts a DbManager built from a nil
// Querier, in which case no analytics are recorded.
func NewRequestProcessor(
	sessionManager mc.SessionManager,
	gameManager mb.GameManager,
	dbManager sqlc.DbManager,
) RequestProcessor {
	return RequestProcessor{
		sessionManager: sessionManager,
		gameManager:    gameManager,
		dbManager:      dbManager,
		ipnet:          getServerIpNet(),
	}
}

// The first non-loopback IPv4 address of an interface that is up.
// Falls back to 127.0.0.1/32.
func getServerIpNet() net.IPNet {
	loopback := net.IPNet{IP: net.IPv4(127, 0, 0, 1), Mask: net.CIDRMask(32, 32)}

	ifaces, err := net.Interfaces()
	if err != nil {
		log.Println("failed to list interfaces:", err)
		return loopback
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			if ip4 := ipnet.IP.To4(); ip4 != nil && !ip4.IsLoopback() {
				return net.IPNet{IP: ip4, Mask: net.CIDRMask(32, 32)}
			}
		}
	}

	return loopback
}

// GetIpNet is the address analytics are recorded under.
func (rp RequestProcessor) GetIpNet() net.IPNet {
	return rp.ipnet
}

func (rp RequestProcessor) inet() pqtype.Inet {
	return pqtype.Inet{IPNet: rp.ipnet, Valid: true}
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// use Upgrade method to make a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}

	sessionIdQuery := r.URL.Query().Get(URLQuerySessionIDKeyword)
	switch sessionIdQuery {
	case "":
		log.Println("a new connection established\tRemote Addr: ", conn.RemoteAddr().String())
		rp.processSessionRequests(rp.sessionManager.GenerateNewSession(conn))

	default:
		if err := rp.sessionManager.ReconnectSession(sessionIdQuery, conn); err != nil {
			// This either means an expired session or invalid session ID
			_ = conn.WriteJSON(mc.NewMessage[mc.NoPayload](mc.CodeReceivedInvalidSessionID))
			conn.Close()
		}
	}
}

// onRoundPlayed broadcasts the round to the watchers of the game
// and, once it is over, sends the end of game to everyone.
func (rp RequestProcessor) onRoundPlayed(session *mc.Session, resp mc.Message[mc.RespRound]) error {
	snapshot := resp.Payload.Snapshot
	rp.sessionManager.Broadcast(snapshot.GameUuid, resp)

	if !snapshot.IsOver {
		return nil
	}

	rp.dbManager.Analytics.RecordGameCompleted(rp.inet(), snapshot.Round)
	log.Printf("game %s over after %d rounds, winner: %s\n", snapshot.GameUuid, snapshot.Round, snapshot.Winner)

	respEnd := mc.NewMessage[mc.RespEndGame](mc.CodeEndGame)
	respEnd.AddPayload(mc.NewRespEndGame(snapshot))
	rp.sessionManager.Broadcast(snapshot.GameUuid, respEnd)

	if session == nil {
		return nil
	}
	return rp.sessionManager.WriteToSessionConn(session, respEnd, mc.MessageTypeJSON)
}

// terminateGame removes the game and everyone watching it.
func (rp RequestProcessor) terminateGame(gameUuid string) {
	rp.gameManager.TerminateGame(gameUuid)
	rp.sessionManager.UnwatchGame(gameUuid)
}

func (rp RequestProcessor) processSessionRequests(session *mc.Session) {
	sessionId := session.Id()

	defer func() {
		if gameUuid := session.GameUuid(); gameUuid != "" {
			rp.terminateGame(gameUuid)
		}
		if conn := session.Conn(); conn != nil {
			conn.Close()
		}
		rp.sessionManager.TerminateSession(sessionId)
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: sessionId})
	if err := rp.sessionManager.WriteToSessionConn(session, resp, mc.MessageTypeJSON); err != nil {
		return
	}

sessionLoop:
	for {
		_, payload, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			// This error happens after retries. The session
			// connection could not be recovered
			break sessionLoop
		}

		code, err := mc.FetchCodeFromMsg(payload)
		if err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err = rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		switch code {

		// A session drives one game at a time; creating a new
		// one drops the previous game
		case mc.CodeCreateGame:
			game, respMsg := NewRequest(payload).HandleCreateGame(rp.gameManager)
			if game != nil {
				if previous := session.GameUuid(); previous != "" {
					rp.terminateGame(previous)
				}
				session.SetGameUuid(game.Uuid())
				rp.dbManager.Analytics.RecordGameCreated(rp.inet())
				log.Printf("game created: %s\tsession: %s\n", game.Uuid(), sessionId)
			}

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeAdvanceRound:
			respMsg := NewRequest(payload).HandleAdvanceRound(rp.gameManager, session)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			if respMsg.Error != nil {
				continue sessionLoop
			}
			if err := rp.onRoundPlayed(session, respMsg); err != nil {
				break sessionLoop
			}

		// Rounds are played back to back until the game is over,
		// each one sent to the client as it is played
		case mc.CodePlayToEnd:
			for {
				respMsg := NewRequest(payload).HandleAdvanceRound(rp.gameManager, session)
				respMsg.Code = mc.CodePlayToEnd
				if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
					break sessionLoop
				}
				if respMsg.Error != nil {
					continue sessionLoop
				}
				if err := rp.onRoundPlayed(session, respMsg); err != nil {
					break sessionLoop
				}
				if respMsg.Payload.Snapshot.IsOver {
					continue sessionLoop
				}
			}

		case mc.CodeGameSnapshot:
			respMsg := NewRequest(payload).HandleGameSnapshot(rp.gameManager, session)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeWatchGame:
			gameUuid, respMsg := NewRequest(payload).HandleWatchGame(rp.gameManager)
			if respMsg.Error == nil {
				rp.sessionManager.WatchGame(gameUuid, sessionId)
			}
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("", "invalid code in the incoming payload")
			if err := rp.sessionManager.WriteToSessionConn(session, respInvalidSignal, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
		}
	}
}
