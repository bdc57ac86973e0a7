package board

import "fmt"

// Grid geometry
const (
	GridSize  = 9
	BoxSize   = 3
	CellCount = GridSize * GridSize
)

// Position is a validated coordinate on the 9×9 grid. x runs left to right,
// y top to bottom, both always in [0, 8]. Positions are immutable values and
// are copied freely; the zero value is the top-left corner.
type Position struct {
	x, y int
}

// NewPosition creates a Position from x and y coordinates.
// Returns ErrInvalidCoordinate if either coordinate is outside [0, 8].
func NewPosition(x, y int) (Position, error) {
	if x < 0 || x >= GridSize || y < 0 || y >= GridSize {
		return Position{}, fmt.Errorf("%w: (%d,%d) must be within [0, %d)", ErrInvalidCoordinate, x, y, GridSize)
	}
	return Position{x: x, y: y}, nil
}

// PositionFromIndex creates a Position from a linear cell index.
// Returns ErrInvalidIndex if the index is outside [0, 80].
func PositionFromIndex(index int) (Position, error) {
	if index < 0 || index >= CellCount {
		return Position{}, fmt.Errorf("%w: index %d must be in range [0, %d)", ErrInvalidIndex, index, CellCount)
	}
	return positionAt(index), nil
}

// positionAt converts a linear index to a Position without bounds checks.
// Callers must guarantee index is in [0, CellCount).
func positionAt(index int) Position {
	return Position{x: index % GridSize, y: index / GridSize}
}

// X returns the column coordinate, 0–8 left to right.
func (p Position) X() int {
	return p.x
}

// Y returns the row coordinate, 0–8 top to bottom.
func (p Position) Y() int {
	return p.y
}

// Index returns the linear cell index, y*9 + x. It is the inverse of
// PositionFromIndex for every valid position.
func (p Position) Index() int {
	return p.y*GridSize + p.x
}

// String renders the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.x, p.y)
}
