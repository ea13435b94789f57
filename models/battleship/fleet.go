package battleship

import (
	"errors"
	"math/rand"

	cerr "github.com/saeidalz13/battleship-setup/internal/error"
)

const (
	DefaultBoardSize     int = 10
	DefaultSetupAttempts int = 100
)

// Carrier, battleship, two cruisers and a destroyer
var StandardFleet = []int{2, 3, 3, 4, 5}

// Lengths 0 through 9, as placed by the demo
var DemoFleet = []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

// PlaceFleet random-places the lengths in order and stops at the
// first piece that does not fit. Pieces placed before that stay on
// the board.
func PlaceFleet(board *Board, rng *rand.Rand, lengths []int) ([]*Piece, error) {
	placed := make([]*Piece, 0, len(lengths))
	for _, length := range lengths {
		piece, err := board.RandomPlace(rng, length)
		if err != nil {
			return placed, err
		}
		placed = append(placed, piece)
	}
	return placed, nil
}

// GenerateBoard runs the whole setup on a fresh board, starting
// over from empty whenever a piece does not fit.
func GenerateBoard(size int, lengths []int, rng *rand.Rand, maxAttempts int) (*Board, error) {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		board, err := NewBoard(size)
		if err != nil {
			return nil, err
		}

		_, err = PlaceFleet(board, rng, lengths)
		if err == nil {
			return board, nil
		}
		if !errors.Is(err, cerr.ErrNoFit) {
			return nil, err
		}
		lastErr = err
	}

	return nil, cerr.ErrSetupExhausted(maxAttempts, lastErr)
}
