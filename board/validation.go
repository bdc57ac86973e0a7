package board

import (
	"errors"
)

var (
	ErrInvalidCoordinate = errors.New("coordinate out of bounds")
	ErrInvalidIndex      = errors.New("cell index out of bounds")
	ErrInvalidValue      = errors.New("value must be between 1-9")
	ErrPuzzleLength      = errors.New("puzzle must be exactly 81 characters")
	ErrPuzzleCharacter   = errors.New("puzzle contains an invalid character")
)

// IsValid reports whether the board satisfies Sudoku constraints: no digit
// occurs twice within a row, column, or box. Empty cells are ignored, so an
// unsolved but consistent board is valid.
func (b *Board) IsValid() bool {
	return len(b.Conflicts()) == 0
}

// Conflicts returns the positions of cells whose digit repeats an earlier
// occurrence in the same row, column, or box, in ascending index order.
// A conflicting cell still counts as an occurrence for the cells after it.
// An empty result means the board is consistent.
func (b *Board) Conflicts() []Position {
	var rowCheck, colCheck, boxCheck [GridSize]uint
	var conflicts []Position

	for i := range b.cells {
		v := b.cells[i].value
		if v == Empty {
			continue
		}

		p := b.cells[i].pos
		box := p.y/BoxSize*BoxSize + p.x/BoxSize
		mask := uint(1) << (v - 1)

		if rowCheck[p.y]&mask != 0 ||
			colCheck[p.x]&mask != 0 ||
			boxCheck[box]&mask != 0 {
			conflicts = append(conflicts, p)
		}

		rowCheck[p.y] |= mask
		colCheck[p.x] |= mask
		boxCheck[box] |= mask
	}

	return conflicts
}

// isValidDigit reports whether a given number may fill a cell.
func isValidDigit(v int) bool {
	return v >= 1 && v <= GridSize
}
