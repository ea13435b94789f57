package connection

import (
	"encoding/base64"
	"log"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	maxWriteWsRetries uint8 = 2
	backOffFactor     uint8 = 2
)

const (
	MessageTypeBytes uint8 = iota
	MessageTypeJSON
)

type ConnectionHandler interface {
	ReadFromConn() ([]byte, error)
	WriteToConn(msg interface{}, msgType uint8) error
	Close() error
}

// Session wraps one setup stream connection.
type Session struct {
	id        string
	conn      *websocket.Conn
	createdAt time.Time
}

func NewSession(conn *websocket.Conn) *Session {
	return &Session{
		id:        base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String())),
		conn:      conn,
		createdAt: time.Now(),
	}
}

var _ ConnectionHandler = (*Session)(nil)

func (s *Session) Id() string {
	return s.id
}

func (s *Session) Close() error {
	return s.conn.Close()
}

func (s *Session) onConnErr(err error) uint8 {
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		log.Println("timeout error:", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseTryAgainLater) {
		log.Println("high server load/traffic error:", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
		log.Println("close error:", err)
		return ConnLoopBreak
	}

	// Binary frames, bad utf-8 and the like most likely do not
	// come from a setup client; no point in keeping the loop alive
	if websocket.IsCloseError(err, websocket.CloseInvalidFramePayloadData, websocket.CloseUnsupportedData, websocket.CloseMessageTooBig, websocket.ClosePolicyViolation, websocket.CloseNoStatusReceived) {
		log.Println("non-critical error:", err)
		return ConnLoopBreak
	}

	log.Println("unexpected error:", err)
	return ConnLoopBreak
}

// Writes to the connection of that session, retrying with
// a linear back off when the error is transient.
func (s *Session) WriteToConn(msg interface{}, msgType uint8) error {
	var retries uint8

writeLoop:
	for {
		var err error

		switch msgType {
		case MessageTypeJSON:
			err = s.conn.WriteJSON(msg)

		case MessageTypeBytes:
			respBytes, ok := msg.([]byte)
			if !ok {
				return NewConnErr(ConnInvalidMsgType).AddDesc("msg type expected: []byte got invalid")
			}
			err = s.conn.WriteMessage(websocket.TextMessage, respBytes)

		default:
			return NewConnErr(ConnInvalidMsgType).AddDesc("invalid message type to write with retry")
		}

		if err == nil {
			return nil
		}

		if s.onConnErr(err) == ConnLoopRetry && retries < maxWriteWsRetries {
			retries++
			log.Printf("writing to ws failed [%s]; retrying... (retry no. %d)\n", s.conn.RemoteAddr().String(), retries)
			time.Sleep(time.Duration(retries*backOffFactor) * time.Second)
			continue writeLoop
		}
		return NewConnErr(ConnLoopBreak).AddDesc("breaking writeLoop due to: " + err.Error())
	}
}

// Reads the next frame. Transient errors are retried a few times
// before giving up on the connection.
func (s *Session) ReadFromConn() ([]byte, error) {
	var retries uint8

	for {
		_, payload, err := s.conn.ReadMessage()
		if err == nil {
			return payload, nil
		}

		if s.onConnErr(err) == ConnLoopRetry && retries < maxWriteWsRetries {
			retries++
			log.Printf("failed to read from ws conn [%s]; retrying... (retry no. %d)\n", s.conn.RemoteAddr().String(), retries)
			time.Sleep(time.Duration(retries*backOffFactor) * time.Second)
			continue
		}
		return nil, NewConnErr(ConnLoopBreak).AddDesc(err.Error())
	}
}
