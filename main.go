package main

import "github.com/dlwoals256/minesweeper/cmd"

func main() {
	cmd.Execute()
}
