package main

import "github.com/sergiodrd/sudoku/cmd"

func main() {
	cmd.Execute()
}
