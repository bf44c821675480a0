package main

import (
	"os"

	"photofolio/cli/commands"
)

func main() {
	commands.Entrypoint(os.Args)
}
