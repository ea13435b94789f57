package api

import (
	"encoding/json"
	"math/rand"

	cerr "github.com/saeidalz13/battleship-setup/internal/error"
	mb "github.com/saeidalz13/battleship-setup/models/battleship"
	mc "github.com/saeidalz13/battleship-setup/models/connection"
)

type analyticsRecorder interface {
	recordBoardGenerated()
	recordPlacementFailure()
}

var _ analyticsRecorder = RequestProcessor{}

type RequestHandler interface {
	HandleGenerateBoard(session mc.ConnectionHandler, boardManager mb.BoardManager, recorder analyticsRecorder) error
}

// Every incoming valid request will have this structure
type Request struct {
	payload []byte
}

var _ RequestHandler = (*Request)(nil)

func NewRequest(payload []byte) *Request {
	return &Request{payload: payload}
}

// HandleGenerateBoard places the requested lengths one at a time on a
// fresh board seeded from the request, writing every step to the
// session. A length that does not fit ends the setup with
// CodePieceDoesNotFit and nothing is registered. The returned error
// is only about writing to the connection.
func (r *Request) HandleGenerateBoard(session mc.ConnectionHandler, boardManager mb.BoardManager, recorder analyticsRecorder) error {
	var req mc.Message[mc.ReqGenerateBoard]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		return writeInvalidPayload(session, cerr.ErrNilPayload())
	}

	size, lengths := normalizeSetup(req.Payload.Size, req.Payload.Lengths)
	if err := validateSetup(size, lengths); err != nil {
		return writeInvalidPayload(session, err)
	}

	board, err := mb.NewBoard(size)
	if err != nil {
		return writeInvalidPayload(session, err)
	}
	rng := rand.New(rand.NewSource(req.Payload.Seed))

	for step, length := range lengths {
		piece, err := board.RandomPlace(rng, length)
		if err != nil {
			recorder.recordPlacementFailure()

			msg := mc.NewMessage[mc.NoPayload](mc.CodePieceDoesNotFit)
			msg.AddError(err.Error(), cerr.ConstErrSetupFailed)
			return session.WriteToConn(msg, mc.MessageTypeJSON)
		}

		msg := mc.NewMessage[mc.RespPlacement](mc.CodePlacement)
		msg.AddPayload(mc.RespPlacement{
			Step:  step,
			Piece: piece.Snapshot(),
			Rows:  board.Rows(),
		})
		if err := session.WriteToConn(msg, mc.MessageTypeJSON); err != nil {
			return err
		}
	}

	managed := boardManager.AddBoard(board, req.Payload.Seed)
	recorder.recordBoardGenerated()

	msg := mc.NewMessage[mc.RespSetupComplete](mc.CodeSetupComplete)
	msg.AddPayload(mc.RespSetupComplete{BoardId: managed.Id(), Board: managed.Snapshot()})
	return session.WriteToConn(msg, mc.MessageTypeJSON)
}

func writeInvalidPayload(session mc.ConnectionHandler, err error) error {
	msg := mc.NewMessage[mc.NoPayload](mc.CodeInvalidPayload)
	msg.AddError(err.Error(), "invalid generate board request")
	return session.WriteToConn(msg, mc.MessageTypeJSON)
}
