package cmd

import (
	"fmt"

	"github.com/sergiodrd/sudoku/board"
	"github.com/spf13/cobra"
)

var (
	checkFile  string
	checkQuiet bool
)

func init() {
	checkCmd := &cobra.Command{
		Use:   "check [puzzle]",
		Short: "Validate a Sudoku board",
		Long: `Parse a board and report duplicate digits in rows, columns, and boxes.

Exits non-zero when the board is malformed or contains conflicts.

Examples:
  sudoku check '.5..83.17...1..4..3.4..56.8....3...9.9.8245....6....7...9....5...729..861.36.72.4'
  sudoku check --file puzzle.txt
  sudoku check --quiet --file -`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}

	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "Read the puzzle from a file ('-' for stdin)")
	checkCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "Suppress the board rendering")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	text, err := readPuzzle(args, checkFile)
	if err != nil {
		return err
	}
	b, err := board.NewFromString(text)
	if err != nil {
		return err
	}

	if !checkQuiet {
		fmt.Println(b.Format())
	}
	fmt.Printf("Clues: %d, Empty: %d\n", b.ClueCount(), b.EmptyCount())

	if conflicts := b.Conflicts(); len(conflicts) > 0 {
		return fmt.Errorf("board has %d conflicting cell(s): %v", len(conflicts), conflicts)
	}
	fmt.Println("OK")
	return nil
}
