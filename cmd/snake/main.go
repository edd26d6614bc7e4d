package main

import "github.com/neonsnake/engine/cmd/snake/commands"

func main() {
	commands.Execute()
}
