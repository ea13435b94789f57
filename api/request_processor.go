package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/saeidalz13/battleship-setup/db/sqlc"
	mb "github.com/saeidalz13/battleship-setup/models/battleship"
	mc "github.com/saeidalz13/battleship-setup/models/connection"
)

// A setup request is a code, a size, a seed and at most
// maxFleetSize lengths; anything bigger is dropped by the socket.
const maxMessageSize int64 = 1024

var upgrader = websocket.Upgrader{
	// good average time since this is not a high-latency operation such as video streaming
	HandshakeTimeout: time.Second * 5,

	// a full placement step of the largest board fits comfortably
	ReadBufferSize:  2048,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// RequestProcessor serves the setup stream. A client sends
// CodeGenerateBoard and watches the pieces land one by one.
type RequestProcessor struct {
	boardManager mb.BoardManager
	analytics    *sqlc.AnalyticsManager
}

func NewRequestProcessor(boardManager mb.BoardManager, analytics *sqlc.AnalyticsManager) RequestProcessor {
	return RequestProcessor{
		boardManager: boardManager,
		analytics:    analytics,
	}
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client
		log.Println(err)
		return
	}

	conn.SetReadLimit(maxMessageSize)
	log.Println("a new connection established\tRemote Addr: ", conn.RemoteAddr().String())
	rp.processSessionRequests(mc.NewSession(conn))
}

func (rp RequestProcessor) processSessionRequests(session *mc.Session) {
	defer func() {
		if err := session.Close(); err != nil {
			log.Println(err)
		}
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: session.Id()})
	if err := session.WriteToConn(resp, mc.MessageTypeJSON); err != nil {
		return
	}

sessionLoop:
	for {
		payload, err := session.ReadFromConn()
		if err != nil {
			// Retries already happened; the connection is gone
			break sessionLoop
		}

		var signal mc.Signal
		if err := json.Unmarshal(payload, &signal); err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err = session.WriteToConn(msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		switch signal.Code {
		case mc.CodeGenerateBoard:
			if err := NewRequest(payload).HandleGenerateBoard(session, rp.boardManager, rp); err != nil {
				break sessionLoop
			}

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("", "invalid code in the incoming payload")
			if err := session.WriteToConn(respInvalidSignal, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
		}
	}
}

// Analytics failures never stop a setup; they are only logged.
func (rp RequestProcessor) recordBoardGenerated() {
	if rp.analytics == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()
	if err := rp.analytics.IncrementBoardsGeneratedCount(ctx); err != nil {
		log.Println(err)
	}
}

func (rp RequestProcessor) recordPlacementFailure() {
	if rp.analytics == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()
	if err := rp.analytics.IncrementPlacementFailuresCount(ctx); err != nil {
		log.Println(err)
	}
}
