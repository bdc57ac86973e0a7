package board

import (
	"slices"
	"testing"
)

func TestRowPeers(t *testing.T) {
	b := mustParse(t, samplePuzzle)

	// Row 4 reads . 9 . 8 2 4 5 . . and the probed cell holds the 4.
	got := b.RowPeers(mustPosition(t, 5, 4))
	want := []int{9, 8, 2, 5}
	if !slices.Equal(got, want) {
		t.Fatalf("RowPeers(5,4) = %v, want %v", got, want)
	}
}

func TestColumnPeers(t *testing.T) {
	b := mustParse(t, samplePuzzle)

	got := b.ColumnPeers(mustPosition(t, 5, 2))
	want := []int{3, 4, 7}
	if !slices.Equal(got, want) {
		t.Fatalf("ColumnPeers(5,2) = %v, want %v", got, want)
	}
}

func TestBoxPeers(t *testing.T) {
	b := mustParse(t, samplePuzzle)

	got := b.BoxPeers(mustPosition(t, 7, 1))
	want := []int{1, 7, 4, 6, 8}
	if !slices.Equal(got, want) {
		t.Fatalf("BoxPeers(7,1) = %v, want %v", got, want)
	}
}

func TestPeersExcludeOwnCell(t *testing.T) {
	b := New()
	p := mustPosition(t, 4, 4)
	if err := b.Set(p, 6); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	for name, peers := range map[string][]int{
		"row":    b.RowPeers(p),
		"column": b.ColumnPeers(p),
		"box":    b.BoxPeers(p),
	} {
		if len(peers) != 0 {
			t.Errorf("%s peers of the only filled cell = %v, want none", name, peers)
		}
	}
}

func TestConstraints(t *testing.T) {
	b := mustParse(t, samplePuzzle)

	got := b.Constraints(mustPosition(t, 7, 1))
	want := []int{1, 4, 5, 6, 7, 8}
	if !slices.Equal(got, want) {
		t.Fatalf("Constraints(7,1) = %v, want %v", got, want)
	}
}

func TestConstraintsDeduplicate(t *testing.T) {
	b := New()

	// A 5 at (0,0) is both a row peer and a box peer of (1,0); another 5
	// at (8,0) repeats it in the row. The union must still list it once.
	for _, x := range []int{0, 8} {
		if err := b.Set(mustPosition(t, x, 0), 5); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	got := b.Constraints(mustPosition(t, 1, 0))
	want := []int{5}
	if !slices.Equal(got, want) {
		t.Fatalf("Constraints(1,0) = %v, want %v", got, want)
	}
}

func TestCandidates(t *testing.T) {
	b := mustParse(t, samplePuzzle)

	got := b.Candidates(mustPosition(t, 7, 1))
	want := []int{2, 3, 9}
	if !slices.Equal(got, want) {
		t.Fatalf("Candidates(7,1) = %v, want %v", got, want)
	}
}

func TestConstraintsOnEmptyBoard(t *testing.T) {
	b := New()
	p := mustPosition(t, 4, 4)

	if got := b.Constraints(p); len(got) != 0 {
		t.Fatalf("Constraints on empty board = %v, want none", got)
	}
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if got := b.Candidates(p); !slices.Equal(got, want) {
		t.Fatalf("Candidates on empty board = %v, want %v", got, want)
	}
	if got := b.CandidateMask(p); got != allNine {
		t.Fatalf("CandidateMask on empty board = %b, want %b", got, allNine)
	}
}

func TestConstraintsOnSolvedBoard(t *testing.T) {
	b := mustParse(t, solvedPuzzle)

	for c := range b.Cells() {
		p := c.Position()
		for name, peers := range map[string][]int{
			"row":    b.RowPeers(p),
			"column": b.ColumnPeers(p),
			"box":    b.BoxPeers(p),
		} {
			if len(peers) != GridSize-1 {
				t.Fatalf("%s peers of %v on a solved board = %v", name, p, peers)
			}
			if slices.Contains(peers, c.Value()) {
				t.Fatalf("%s peers of %v contain the cell's own %d", name, p, c.Value())
			}
		}
		if got := b.Candidates(p); !slices.Equal(got, []int{c.Value()}) {
			t.Fatalf("Candidates(%v) = %v, want only %d", p, got, c.Value())
		}
	}
}

func TestBoxPeersRespectBoxBoundaries(t *testing.T) {
	b := New()
	if err := b.Set(mustPosition(t, 3, 3), 7); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// (4,4) shares the center box, (2,2) sits across the boundary.
	if got := b.BoxPeers(mustPosition(t, 4, 4)); !slices.Equal(got, []int{7}) {
		t.Fatalf("BoxPeers(4,4) = %v, want [7]", got)
	}
	if got := b.BoxPeers(mustPosition(t, 2, 2)); len(got) != 0 {
		t.Fatalf("BoxPeers(2,2) = %v, want none", got)
	}
	if got := b.Constraints(mustPosition(t, 2, 2)); len(got) != 0 {
		t.Fatalf("Constraints(2,2) = %v, want none", got)
	}
}

func TestBoxPeersRowMajorOrder(t *testing.T) {
	b := New()

	// Fill the top-left box with digits 1 through 9 in index order.
	v := 1
	for y := range BoxSize {
		for x := range BoxSize {
			if err := b.Set(mustPosition(t, x, y), v); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			v++
		}
	}

	got := b.BoxPeers(mustPosition(t, 1, 1))
	want := []int{1, 2, 3, 4, 6, 7, 8, 9}
	if !slices.Equal(got, want) {
		t.Fatalf("BoxPeers(1,1) = %v, want %v", got, want)
	}
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		name   string
		puzzle string
		want   bool
	}{
		{"partial grid", samplePuzzle, true},
		{"solved grid", solvedPuzzle, true},
		{"empty grid", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var b *Board
			if tc.puzzle == "" {
				b = New()
			} else {
				b = mustParse(t, tc.puzzle)
			}
			if got := b.IsValid(); got != tc.want {
				t.Fatalf("IsValid() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestConflicts(t *testing.T) {
	b := mustParse(t, samplePuzzle)
	if got := b.Conflicts(); len(got) != 0 {
		t.Fatalf("expected no conflicts, got %v", got)
	}

	// (1,0) already holds 5; a 5 at (0,0) collides in row 0 and in the
	// top-left box. The later slot in index order is reported.
	if err := b.Set(mustPosition(t, 0, 0), 5); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got := b.Conflicts()
	want := []Position{mustPosition(t, 1, 0)}
	if !slices.Equal(got, want) {
		t.Fatalf("Conflicts() = %v, want %v", got, want)
	}
	if b.IsValid() {
		t.Fatalf("a board with conflicts must not be valid")
	}
}

func TestConflictsColumn(t *testing.T) {
	b := New()
	if err := b.Set(mustPosition(t, 0, 1), 3); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := b.Set(mustPosition(t, 0, 7), 3); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got := b.Conflicts()
	want := []Position{mustPosition(t, 0, 7)}
	if !slices.Equal(got, want) {
		t.Fatalf("Conflicts() = %v, want %v", got, want)
	}
}

func TestConflictsReportsChainedDuplicates(t *testing.T) {
	b := New()

	// Three 5s: (1,0) duplicates (0,0) in row 0, and (1,5) duplicates
	// (1,0) in column 1. The middle cell is itself a conflict yet still
	// counts as an occurrence for the cell below it.
	for _, xy := range [][2]int{{0, 0}, {1, 0}, {1, 5}} {
		if err := b.Set(mustPosition(t, xy[0], xy[1]), 5); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	got := b.Conflicts()
	want := []Position{mustPosition(t, 1, 0), mustPosition(t, 1, 5)}
	if !slices.Equal(got, want) {
		t.Fatalf("Conflicts() = %v, want %v", got, want)
	}
}
