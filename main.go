package main

import (
	"os"

	"github.com/schoolyear/schematools/commands"
)

func main() {
	commands.Main(commands.NewApp(), os.Args)
}
