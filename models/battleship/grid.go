package battleship

// Cell is either empty or occupied by the piece whose id is
// pieceId. The id indexes the board's piece arena.
type Cell struct {
	pieceId  int
	occupied bool
	guessed  bool
}

func (c Cell) IsEmpty() bool {
	return !c.occupied
}

// PieceID reports the occupying piece, if any.
func (c Cell) PieceID() (int, bool) {
	return c.pieceId, c.occupied
}

func (c Cell) IsGuessed() bool {
	return c.guessed
}

// Grid is indexed as grid[y][x].
type Grid [][]Cell

// Creates a new default grid
// All cells are empty and unguessed
func NewGrid(gridSize int) Grid {
	grid := make(Grid, gridSize)

	for i := 0; i < gridSize; i++ {
		grid[i] = make([]Cell, gridSize)
	}
	return grid
}

func (g Grid) at(p Point) *Cell {
	return &g[p.Y][p.X]
}

func (g Grid) inBounds(p Point) bool {
	size := len(g)
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}
