package board

import "fmt"

// Empty is the value of a cell with no digit assigned.
const Empty = 0

// Cell is one slot of the grid: an optional digit 1–9 plus the Position it
// occupies. The position is fixed for the cell's lifetime; the value may be
// reassigned in place.
type Cell struct {
	value int
	pos   Position
}

// NewCell creates a filled cell holding the given digit.
// Returns ErrInvalidValue unless value is between 1 and 9; empty cells are
// created with NewEmptyCell instead.
func NewCell(value int, pos Position) (Cell, error) {
	if !isValidDigit(value) {
		return Cell{}, fmt.Errorf("%w: got %d", ErrInvalidValue, value)
	}
	return Cell{value: value, pos: pos}, nil
}

// NewEmptyCell creates a cell with no digit assigned.
func NewEmptyCell(pos Position) Cell {
	return Cell{value: Empty, pos: pos}
}

// Value returns the cell's digit, or Empty when none is assigned.
func (c Cell) Value() int {
	return c.value
}

// IsEmpty reports whether the cell has no digit assigned.
func (c Cell) IsEmpty() bool {
	return c.value == Empty
}

// Position returns the coordinate the cell occupies.
func (c Cell) Position() Position {
	return c.pos
}

// Set assigns a digit to the cell, replacing any previous digit.
// Returns ErrInvalidValue unless value is between 1 and 9. Whether the digit
// is legal under Sudoku rules is not checked here; callers that care query
// Constraints before assigning.
func (c *Cell) Set(value int) error {
	if !isValidDigit(value) {
		return fmt.Errorf("%w: got %d", ErrInvalidValue, value)
	}
	c.value = value
	return nil
}

// Clear removes the cell's digit.
// No harm is done clearing an already empty cell.
func (c *Cell) Clear() {
	c.value = Empty
}
