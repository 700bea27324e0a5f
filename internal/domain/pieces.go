package domain

const (
	// PieceCount is the size of the fixed piece roster.
	PieceCount = 8
	// DateCellCount is the number of grid cells blocked by today's date.
	DateCellCount = 2
)

var definitions = [PieceCount]PieceDefinition{
	{ID: 0, Name: "Block", Image: "assets/Block.png", Shape: mustShape("##", "##", "##")},
	{ID: 1, Name: "Cane", Image: "assets/Cane.png", Shape: mustShape("##", "#.", "#.", "#.")},
	{ID: 2, Name: "U", Image: "assets/U.png", Shape: mustShape("##", "#.", "##")},
	{ID: 3, Name: "LLL", Image: "assets/LLL.png", Shape: mustShape("#..", "#..", "###")},
	{ID: 4, Name: "Z", Image: "assets/Z.png", Shape: mustShape("##.", ".#.", ".##")},
	{ID: 5, Name: "S", Image: "assets/S.png", Shape: mustShape(".#", "##", "#.", "#.")},
	{ID: 6, Name: "Thumb", Image: "assets/Thumb.png", Shape: mustShape("#.", "##", "##")},
	{ID: 7, Name: "T", Image: "assets/T.png", Shape: mustShape("#.", "##", "#.", "#.")},
}

func mustShape(rows ...string) Shape {
	s, err := ShapeFromRows(rows...)
	if err != nil {
		// Definitions are hard-coded; a failure here is a bug.
		panic("piece definition: " + err.Error())
	}
	return s
}

// Definitions returns copies of the fixed piece definitions ordered by ID.
func Definitions() []PieceDefinition {
	out := make([]PieceDefinition, PieceCount)
	for i, d := range definitions {
		d.Shape = d.Shape.Clone()
		out[i] = d
	}
	return out
}

// Definition returns the definition with the given ID.
func Definition(id int) (PieceDefinition, bool) {
	if id < 0 || id >= PieceCount {
		return PieceDefinition{}, false
	}
	d := definitions[id]
	d.Shape = d.Shape.Clone()
	return d, true
}

// NewPiece instantiates an unplaced piece in canonical orientation.
func NewPiece(d PieceDefinition) *Piece {
	return &Piece{ID: d.ID, Name: d.Name, Shape: d.Shape.Clone()}
}
