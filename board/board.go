// Package board models a 9×9 Sudoku grid. It parses the flat 81-character
// puzzle text and answers the row, column, and box constraint queries a
// solver needs to decide which digits a cell may still take.
package board

import (
	"fmt"
	"iter"
	"strings"
)

// Board is the ordered collection of the 81 cells of a Sudoku grid, stored
// row-major: the cell at (x,y) lives at index y*9 + x. The board owns its
// cells; lookups and iteration hand out pointers into the same backing
// array, so writes through them are writes to the board.
//
// A Board supports unrestricted concurrent reads while no mutation is in
// flight. Mutation requires exclusive access, which the caller enforces.
type Board struct {
	cells [CellCount]Cell
}

// New creates an empty Board: 81 cells, none holding a digit.
func New() *Board {
	b := &Board{}
	for i := range b.cells {
		b.cells[i] = NewEmptyCell(positionAt(i))
	}
	return b
}

// NewFromString creates a Board from an 81-character puzzle string,
// ignoring surrounding whitespace. Use '.' for empty cells and '1'-'9' for
// filled cells; the character at offset i fills the cell at index i
// (row-major). Anything else fails: ErrPuzzleLength when the trimmed text
// is not exactly 81 characters, ErrPuzzleCharacter naming the first
// offending character otherwise. No board is produced on failure.
func NewFromString(s string) (*Board, error) {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) != CellCount {
		return nil, fmt.Errorf("%w: got %d", ErrPuzzleLength, len(runes))
	}

	b := New()
	for i, r := range runes {
		switch r {
		case '.':
			// Empty cell, already initialized
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			b.cells[i].value = int(r - '0')
		default:
			return nil, fmt.Errorf("%w: %q at index %d", ErrPuzzleCharacter, r, i)
		}
	}
	return b, nil
}

// Clone creates an independent copy of the Board.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

// At returns the cell at the given position. The pointer refers to the
// board's own cell: assigning through it mutates the board. Lookup cannot
// fail, since every Position built through the validated API addresses
// exactly one of the 81 cells.
func (b *Board) At(p Position) *Cell {
	return &b.cells[p.Index()]
}

// Cells returns an iterator over all 81 cells in index order. The sequence
// is restartable and yields the same cells on every pass over an unchanged
// board. Elements are pointers into the board, serving read-only scans and
// solver mutation alike.
func (b *Board) Cells() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for i := range b.cells {
			if !yield(&b.cells[i]) {
				return
			}
		}
	}
}

// Get returns the value at the given position, Empty when unfilled.
func (b *Board) Get(p Position) int {
	return b.cells[p.Index()].value
}

// Set assigns a digit at the given position.
// Returns ErrInvalidValue unless value is between 1 and 9. The move's
// Sudoku legality is not checked: overwriting and conflicting assignments
// are the solver's business.
func (b *Board) Set(p Position, value int) error {
	return b.cells[p.Index()].Set(value)
}

// Clear removes the value at the given position.
func (b *Board) Clear(p Position) {
	b.cells[p.Index()].Clear()
}

// EmptyCount returns the number of unfilled cells on the board.
func (b *Board) EmptyCount() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].IsEmpty() {
			n++
		}
	}
	return n
}

// ClueCount returns the number of filled cells on the board.
func (b *Board) ClueCount() int {
	return CellCount - b.EmptyCount()
}

// String returns the board as an 81-character string.
// Empty cells are represented as '.', filled cells as '1'-'9'.
// It is the inverse of NewFromString up to surrounding whitespace.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)

	for i := range b.cells {
		if b.cells[i].IsEmpty() {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('0' + byte(b.cells[i].value))
		}
	}

	return sb.String()
}

// Format returns a human-readable board representation with grid lines.
func (b *Board) Format() string {
	var sb strings.Builder
	line := "+-------+-------+-------+\n"
	sb.WriteString(line)

	for y := range GridSize {
		sb.WriteString("| ")
		for x := range GridSize {
			c := b.cells[y*GridSize+x]
			if c.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(c.value))
			}
			sb.WriteByte(' ')

			if (x+1)%BoxSize == 0 {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("\n")

		if (y+1)%BoxSize == 0 {
			sb.WriteString(line)
		}
	}

	return sb.String()
}
