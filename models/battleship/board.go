package battleship

import (
	"math/rand"
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-setup/internal/error"
)

const emptyCellSymbol = "."

type GuessResult uint8

const (
	GuessResultMiss GuessResult = iota
	GuessResultHit
	GuessResultSunk
	GuessResultAlreadyGuessed
	GuessResultOutOfBounds
)

func (r GuessResult) String() string {
	switch r {
	case GuessResultMiss:
		return "miss"
	case GuessResultHit:
		return "hit"
	case GuessResultSunk:
		return "sunk"
	case GuessResultAlreadyGuessed:
		return "already guessed"
	default:
		return "out of bounds"
	}
}

// Board is a square grid plus the append-only arena of the pieces
// placed on it. It is not safe for concurrent use; see ManagedBoard.
type Board struct {
	size   int
	grid   Grid
	pieces []*Piece
}

func NewBoard(size int) (*Board, error) {
	if size <= 0 {
		return nil, cerr.ErrBoardSize(size)
	}

	return &Board{
		size:   size,
		grid:   NewGrid(size),
		pieces: make([]*Piece, 0, len(StandardFleet)),
	}, nil
}

func (b *Board) Size() int {
	return b.size
}

// Pieces returns the pieces in placement order; the index of
// each piece is its id.
func (b *Board) Pieces() []*Piece {
	return append([]*Piece(nil), b.pieces...)
}

func (b *Board) Piece(id int) (*Piece, error) {
	if id < 0 || id >= len(b.pieces) {
		return nil, cerr.ErrPieceNotExists(id)
	}
	return b.pieces[id], nil
}

func (b *Board) PieceAt(p Point) (*Piece, bool) {
	if !b.grid.inBounds(p) {
		return nil, false
	}

	id, occupied := b.grid.at(p).PieceID()
	if !occupied {
		return nil, false
	}
	return b.pieces[id], true
}

func (b *Board) IsGuessed(p Point) bool {
	return b.grid.inBounds(p) && b.grid.at(p).IsGuessed()
}

// AllSunk is false for a board with no pieces.
func (b *Board) AllSunk() bool {
	if len(b.pieces) == 0 {
		return false
	}

	for _, piece := range b.pieces {
		if !piece.IsSunk() {
			return false
		}
	}
	return true
}

// NextPiece returns an unplaced piece carrying the next free id
// of the arena, ready to be passed to Place.
func (b *Board) NextPiece(length int) *Piece {
	return NewPiece(len(b.pieces), length)
}

// CanPlace reports whether a piece of the given length fits at start
// along direction: start inside the grid, start+length <= size on that
// axis, and every covered cell empty.
func (b *Board) CanPlace(length int, start Point, direction Direction) bool {
	if length < 0 || !b.grid.inBounds(start) {
		return false
	}
	if start.Along(direction)+length > b.size {
		return false
	}

	for i := 0; i < length; i++ {
		if !b.grid.at(start.Step(direction, i)).IsEmpty() {
			return false
		}
	}
	return true
}

// ValidPieceLocations lists every horizontal run, row by row, followed
// by every vertical run, column by column, where a piece of the given
// length can go right now.
func (b *Board) ValidPieceLocations(length int) ([][]Point, error) {
	locations := make([][]Point, 0)

	for _, direction := range []Direction{DirectionX, DirectionY} {
		for line := 0; line < b.size; line++ {
			for offset := 0; offset <= b.size-length; offset++ {
				start := NewPoint(offset, line)
				if direction == DirectionY {
					start = NewPoint(line, offset)
				}

				if b.CanPlace(length, start, direction) {
					locations = append(locations, run(start, direction, length))
				}
			}
		}
	}

	if len(locations) == 0 {
		return nil, cerr.ErrPieceDoesNotFit(length, b.size)
	}
	return locations, nil
}

// RandomPlace puts a new piece on one of the valid locations, chosen
// uniformly with rng.
func (b *Board) RandomPlace(rng *rand.Rand, length int) (*Piece, error) {
	locations, err := b.ValidPieceLocations(length)
	if err != nil {
		return nil, err
	}

	piece := b.NextPiece(length)
	b.commit(piece, locations[rng.Intn(len(locations))])
	return piece, nil
}

// Place commits piece at start along direction. The piece must be
// fresh, carry the next arena id (see NextPiece) and the cells must
// pass CanPlace. A piece already committed to any board is rejected.
func (b *Board) Place(piece *Piece, start Point, direction Direction) bool {
	if piece == nil || piece.id != len(b.pieces) {
		return false
	}
	if piece.placed || len(piece.cells) != 0 || len(piece.hitCoordinates) != 0 {
		return false
	}
	if !b.CanPlace(piece.length, start, direction) {
		return false
	}

	b.commit(piece, run(start, direction, piece.length))
	return true
}

func (b *Board) commit(piece *Piece, cells []Point) {
	for _, p := range cells {
		cell := b.grid.at(p)
		cell.occupied = true
		cell.pieceId = piece.id
	}
	piece.cells = append(piece.cells, cells...)
	piece.placed = true
	b.pieces = append(b.pieces, piece)
}

// Shoot registers a guess at p and tells exactly what happened.
// Only the first guess on a cell has any effect.
func (b *Board) Shoot(p Point) GuessResult {
	if !b.grid.inBounds(p) {
		return GuessResultOutOfBounds
	}

	cell := b.grid.at(p)
	if cell.guessed {
		return GuessResultAlreadyGuessed
	}
	cell.guessed = true

	id, occupied := cell.PieceID()
	if !occupied {
		return GuessResultMiss
	}

	piece := b.pieces[id]
	piece.gotHit(p)
	if piece.IsSunk() {
		return GuessResultSunk
	}
	return GuessResultHit
}

// Guess is true only for the first guess that lands on a piece.
// Misses, repeats and out of grid points are all false; use Shoot
// to tell them apart.
func (b *Board) Guess(p Point) bool {
	switch b.Shoot(p) {
	case GuessResultHit, GuessResultSunk:
		return true
	default:
		return false
	}
}

// Rows renders each grid row as space separated piece ids, with
// "." for empty cells.
func (b *Board) Rows() []string {
	rows := make([]string, b.size)
	symbols := make([]string, b.size)

	for y, row := range b.grid {
		for x, cell := range row {
			if id, occupied := cell.PieceID(); occupied {
				symbols[x] = strconv.Itoa(id)
			} else {
				symbols[x] = emptyCellSymbol
			}
		}
		rows[y] = strings.Join(symbols, " ")
	}
	return rows
}

func (b *Board) String() string {
	var sb strings.Builder
	for _, row := range b.Rows() {
		sb.WriteString(row)
		sb.WriteString("\n")
	}
	return sb.String()
}

func run(start Point, direction Direction, length int) []Point {
	cells := make([]Point, length)
	for i := range cells {
		cells[i] = start.Step(direction, i)
	}
	return cells
}
