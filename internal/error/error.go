package error

import (
	"errors"
	"fmt"
)

const (
	ConstErrSetupFailed = "board setup failed"
)

// ErrNoFit is wrapped by every error that reports a piece
// length with no valid location left on the board.
var ErrNoFit = errors.New("piece of this length can't fit anywhere")

var (
	ErrInvalidBoardSize       = errors.New("board size must be a positive integer")
	ErrSetupAttemptsExhausted = errors.New("board setup attempts exhausted")
)

func ErrPieceDoesNotFit(length, boardSize int) error {
	return fmt.Errorf("%w\tlength: %d\tboard size: %d", ErrNoFit, length, boardSize)
}

func ErrBoardSize(size int) error {
	return fmt.Errorf("%w\tgot: %d", ErrInvalidBoardSize, size)
}

func ErrBoardTooLarge(size, maxSize int) error {
	return fmt.Errorf("board size exceeds the maximum of %d, got: %d", maxSize, size)
}

func ErrFleetTooLarge(pieces, maxPieces int) error {
	return fmt.Errorf("fleet exceeds the maximum of %d pieces, got: %d", maxPieces, pieces)
}

func ErrSetupExhausted(attempts int, last error) error {
	return fmt.Errorf("%w after %d attempts: %w", ErrSetupAttemptsExhausted, attempts, last)
}

func ErrBoardNotExists(boardId string) error {
	return fmt.Errorf("board with this id does not exist, id: %s", boardId)
}

func ErrPieceNotExists(pieceId int) error {
	return fmt.Errorf("piece with this id does not exist, id: %d", pieceId)
}

func ErrInvalidDirection(direction string) error {
	return fmt.Errorf("direction must be either x or y, got: %q", direction)
}

func ErrInvalidLength(length int) error {
	return fmt.Errorf("piece length must not be negative, got: %d", length)
}

func ErrInvalidFleet(fleet string) error {
	return fmt.Errorf("unknown fleet: %q", fleet)
}

func ErrNilPayload() error {
	return fmt.Errorf("the payload is nil or could not be decoded")
}
