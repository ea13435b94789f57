package battleship

import (
	"errors"
	"math/rand"
	"testing"

	cerr "github.com/saeidalz13/battleship-setup/internal/error"
)

func TestPlaceFleetStopsAtFirstNoFit(t *testing.T) {
	board := mustNewBoard(t, 2)

	// Two length 2 pieces always fill a 2x2 board
	placed, err := PlaceFleet(board, rand.New(rand.NewSource(5)), []int{2, 2, 2})
	if !errors.Is(err, cerr.ErrNoFit) {
		t.Fatalf("expected no fit error, got: %v", err)
	}
	if len(placed) != 2 {
		t.Fatalf("expected 2 placed pieces, got: %d", len(placed))
	}
	if len(board.Pieces()) != 2 {
		t.Fatalf("expected the board to keep 2 pieces, got: %d", len(board.Pieces()))
	}
}

func TestGenerateBoard(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		lengths []int
	}{
		{name: "standard fleet", size: DefaultBoardSize, lengths: StandardFleet},
		{name: "demo fleet", size: DefaultBoardSize, lengths: DemoFleet},
		{name: "tight board", size: 3, lengths: []int{3, 3, 3}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board, err := GenerateBoard(test.size, test.lengths, rand.New(rand.NewSource(11)), DefaultSetupAttempts)
			if err != nil {
				t.Fatal(err)
			}

			pieces := board.Pieces()
			if len(pieces) != len(test.lengths) {
				t.Fatalf("expected pieces: %d\tgot: %d", len(test.lengths), len(pieces))
			}
			for i, piece := range pieces {
				if piece.Length() != test.lengths[i] || len(piece.Cells()) != test.lengths[i] {
					t.Fatalf("piece %d: expected length %d, got: %d with %d cells", i, test.lengths[i], piece.Length(), len(piece.Cells()))
				}
			}
		})
	}
}

func TestGenerateBoardExhaustsAttempts(t *testing.T) {
	_, err := GenerateBoard(2, []int{2, 2, 2}, rand.New(rand.NewSource(1)), 3)
	if !errors.Is(err, cerr.ErrSetupAttemptsExhausted) {
		t.Fatalf("expected exhausted attempts error, got: %v", err)
	}
	if !errors.Is(err, cerr.ErrNoFit) {
		t.Fatalf("expected the last no fit error to be wrapped, got: %v", err)
	}
}

func TestGenerateBoardInvalidSize(t *testing.T) {
	_, err := GenerateBoard(0, StandardFleet, rand.New(rand.NewSource(1)), 3)
	if !errors.Is(err, cerr.ErrInvalidBoardSize) {
		t.Fatalf("expected invalid board size error, got: %v", err)
	}
	if errors.Is(err, cerr.ErrSetupAttemptsExhausted) {
		t.Fatal("invalid size must not be retried")
	}
}

func TestSnapshot(t *testing.T) {
	board := mustNewBoard(t, 3)
	mustPlace(t, board, 2, NewPoint(0, 2), DirectionX)
	board.Guess(NewPoint(1, 2))

	snapshot := board.Snapshot()
	if snapshot.Size != 3 || len(snapshot.Rows) != 3 || snapshot.Rows[2] != "0 0 ." {
		t.Fatalf("unexpected snapshot: %+v", snapshot)
	}
	if len(snapshot.Pieces) != 1 {
		t.Fatalf("expected one piece, got: %d", len(snapshot.Pieces))
	}

	piece := snapshot.Pieces[0]
	if piece.State != "active" || len(piece.Cells) != 2 || len(piece.HitCoordinates) != 1 {
		t.Fatalf("unexpected piece snapshot: %+v", piece)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Direction
		wantErr  bool
	}{
		{name: "x", raw: "x", expected: DirectionX},
		{name: "upper y", raw: "Y", expected: DirectionY},
		{name: "unknown", raw: "z", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParseDirection(test.raw)
			if test.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != test.expected || got.Other() == got {
				t.Fatalf("expected: %s\tgot: %s", test.expected, got)
			}
		})
	}
}
