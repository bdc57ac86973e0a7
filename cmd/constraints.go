package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sergiodrd/sudoku/board"
	"github.com/spf13/cobra"
)

var (
	constraintsFile string
	constraintsCell string
	constraintsAll  bool
)

func init() {
	constraintsCmd := &cobra.Command{
		Use:   "constraints [puzzle]",
		Short: "Show the constraints and candidates of board cells",
		Long: `Show which digits are ruled out for a cell by its row, column, and box,
and which digits remain available.

The puzzle is 81 characters, '1'-'9' for clues and '.' for empty cells,
given as an argument, with --file, or on stdin with --file -.

Examples:
  sudoku constraints --cell 7,1 '.5..83.17...1..4..3.4..56.8....3...9.9.8245....6....7...9....5...729..861.36.72.4'
  sudoku constraints --file puzzle.txt --all
  cat puzzle.txt | sudoku constraints --file - --cell 0,0`,
		Args: cobra.MaximumNArgs(1),
		RunE: runConstraints,
	}

	constraintsCmd.Flags().StringVarP(&constraintsFile, "file", "f", "", "Read the puzzle from a file ('-' for stdin)")
	constraintsCmd.Flags().StringVarP(&constraintsCell, "cell", "c", "", "Cell to inspect, as 'x,y'")
	constraintsCmd.Flags().BoolVarP(&constraintsAll, "all", "a", false, "Report every empty cell")

	rootCmd.AddCommand(constraintsCmd)
}

// parseCell parses a cell reference of the form "x,y".
func parseCell(s string) (board.Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return board.Position{}, fmt.Errorf("invalid cell %q (use format like '5,4')", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return board.Position{}, fmt.Errorf("invalid cell x: %w", err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return board.Position{}, fmt.Errorf("invalid cell y: %w", err)
	}
	return board.NewPosition(x, y)
}

// readPuzzle resolves the puzzle text from the positional argument, a file,
// or stdin.
func readPuzzle(args []string, file string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	switch file {
	case "":
		return "", fmt.Errorf("no puzzle given (pass it as an argument or with --file)")
	case "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read puzzle file: %w", err)
		}
		return string(data), nil
	}
}

func runConstraints(cmd *cobra.Command, args []string) error {
	if constraintsCell == "" && !constraintsAll {
		return fmt.Errorf("nothing to report (use --cell or --all)")
	}

	text, err := readPuzzle(args, constraintsFile)
	if err != nil {
		return err
	}
	b, err := board.NewFromString(text)
	if err != nil {
		return err
	}

	if constraintsCell != "" {
		p, err := parseCell(constraintsCell)
		if err != nil {
			return err
		}
		printCellReport(b, p)
	}

	if constraintsAll {
		for c := range b.Cells() {
			if !c.IsEmpty() {
				continue
			}
			printCellReport(b, c.Position())
		}
	}
	return nil
}

func printCellReport(b *board.Board, p board.Position) {
	fmt.Printf("Cell %s", p)
	if v := b.Get(p); v != board.Empty {
		fmt.Printf(" = %d", v)
	}
	fmt.Println()
	fmt.Printf("  row peers:    %v\n", b.RowPeers(p))
	fmt.Printf("  column peers: %v\n", b.ColumnPeers(p))
	fmt.Printf("  box peers:    %v\n", b.BoxPeers(p))
	fmt.Printf("  constraints:  %v\n", b.Constraints(p))
	fmt.Printf("  candidates:   %v\n", b.Candidates(p))
}
