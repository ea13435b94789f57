package battleship

type PieceSnapshot struct {
	ID             int     `json:"id"`
	Length         int     `json:"length"`
	State          string  `json:"state"`
	Cells          []Point `json:"cells"`
	HitCoordinates []Point `json:"hit_coordinates"`
}

type BoardSnapshot struct {
	Size   int             `json:"size"`
	Rows   []string        `json:"rows"`
	Pieces []PieceSnapshot `json:"pieces"`
}

func (pc *Piece) Snapshot() PieceSnapshot {
	return PieceSnapshot{
		ID:             pc.id,
		Length:         pc.length,
		State:          pc.State().String(),
		Cells:          pc.Cells(),
		HitCoordinates: pc.HitCoordinates(),
	}
}

func (b *Board) Snapshot() BoardSnapshot {
	pieces := make([]PieceSnapshot, len(b.pieces))
	for i, piece := range b.pieces {
		pieces[i] = piece.Snapshot()
	}

	return BoardSnapshot{
		Size:   b.size,
		Rows:   b.Rows(),
		Pieces: pieces,
	}
}
