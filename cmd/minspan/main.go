package main

import "github.com/katalvlaran/minspan/cmd/minspan/commands"

func main() {
	commands.Execute()
}
