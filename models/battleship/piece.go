package battleship

import "fmt"

type PieceState uint8

const (
	PieceStateActive PieceState = iota
	PieceStateSunk
)

func (s PieceState) String() string {
	if s == PieceStateSunk {
		return "sunk"
	}
	return "active"
}

type Piece struct {
	id             int
	length         int
	cells          []Point
	hitCoordinates []Point
	// set once the piece is committed to a board; zero length
	// pieces have no cells to tell
	placed bool
}

// NewPiece builds a piece that is not on any board yet. Use
// Board.NextPiece to get one whose id fits the board's arena.
func NewPiece(id, length int) *Piece {
	capacity := length
	if capacity < 0 {
		capacity = 0
	}

	return &Piece{
		id:             id,
		length:         length,
		cells:          make([]Point, 0, capacity),
		hitCoordinates: make([]Point, 0, capacity),
	}
}

func (pc *Piece) ID() int {
	return pc.id
}

func (pc *Piece) Length() int {
	return pc.length
}

func (pc *Piece) IsSunk() bool {
	return len(pc.hitCoordinates) == pc.length
}

func (pc *Piece) State() PieceState {
	if pc.IsSunk() {
		return PieceStateSunk
	}
	return PieceStateActive
}

func (pc *Piece) Cells() []Point {
	return append([]Point(nil), pc.cells...)
}

func (pc *Piece) HitCoordinates() []Point {
	return append([]Point(nil), pc.hitCoordinates...)
}

func (pc *Piece) String() string {
	return fmt.Sprintf("Piece(id=%d, length=%d, hits=%v)", pc.id, pc.length, pc.hitCoordinates)
}

// gotHit records p once. The board only calls it for cells it
// holds a reference to this piece in, and only on the first guess.
func (pc *Piece) gotHit(p Point) {
	for _, hit := range pc.hitCoordinates {
		if hit == p {
			return
		}
	}
	pc.hitCoordinates = append(pc.hitCoordinates, p)
}
