package board

// Bitmask values. Bit i represents digit i+1 (bit 0 = digit 1, bit 8 = digit 9).
const (
	allNine = 511
)

// RowPeers returns the values of the other filled cells in p's row, in
// ascending x order. The cell at p itself is never included, even when it
// holds a digit.
func (b *Board) RowPeers(p Position) []int {
	peers := make([]int, 0, GridSize-1)
	for x := range GridSize {
		if x == p.x {
			continue
		}
		if v := b.cells[p.y*GridSize+x].value; v != Empty {
			peers = append(peers, v)
		}
	}
	return peers
}

// ColumnPeers returns the values of the other filled cells in p's column,
// in ascending y order. The cell at p itself is never included.
func (b *Board) ColumnPeers(p Position) []int {
	peers := make([]int, 0, GridSize-1)
	for y := range GridSize {
		if y == p.y {
			continue
		}
		if v := b.cells[y*GridSize+p.x].value; v != Empty {
			peers = append(peers, v)
		}
	}
	return peers
}

// BoxPeers returns the values of the other filled cells in p's 3×3 box, in
// ascending index order. Box origins sit at 0, 3, and 6 on each axis,
// computed independently per axis: coordinates 0–2 map to 0, 3–5 to 3,
// and 6–8 to 6.
func (b *Board) BoxPeers(p Position) []int {
	x0 := p.x / BoxSize * BoxSize
	y0 := p.y / BoxSize * BoxSize

	peers := make([]int, 0, GridSize-1)
	for y := y0; y < y0+BoxSize; y++ {
		for x := x0; x < x0+BoxSize; x++ {
			if x == p.x && y == p.y {
				continue
			}
			if v := b.cells[y*GridSize+x].value; v != Empty {
				peers = append(peers, v)
			}
		}
	}
	return peers
}

// ConstraintMask returns the digits already taken among p's row, column,
// and box peers as a bitmask.
func (b *Board) ConstraintMask(p Position) uint {
	var mask uint
	for _, v := range b.RowPeers(p) {
		mask |= 1 << (v - 1)
	}
	for _, v := range b.ColumnPeers(p) {
		mask |= 1 << (v - 1)
	}
	for _, v := range b.BoxPeers(p) {
		mask |= 1 << (v - 1)
	}
	return mask
}

// Constraints returns the digits forbidden at p under Sudoku rules: the
// union of the row, column, and box peer values with duplicates collapsed,
// in ascending order.
func (b *Board) Constraints(p Position) []int {
	return digits(b.ConstraintMask(p))
}

// CandidateMask returns the bitmask of digits still assignable at p.
// A returned 0 means no legal digit remains.
func (b *Board) CandidateMask(p Position) uint {
	return allNine &^ b.ConstraintMask(p)
}

// Candidates returns a slice of candidates 1-9 for the cell at p: the
// digits none of its peers has taken, in ascending order.
func (b *Board) Candidates(p Position) []int {
	return digits(b.CandidateMask(p))
}

// digits expands a bitmask into its digits in ascending order.
func digits(mask uint) []int {
	out := make([]int, 0, GridSize)
	for num := 1; num <= GridSize; num++ {
		if mask&uint(1<<(num-1)) != 0 {
			out = append(out, num)
		}
	}
	return out
}
