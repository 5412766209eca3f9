package main

import (
	"os"

	"github.com/sonemaro/minigrep/cmd/minigrep/commands"
)

func main() {
	os.Exit(commands.Execute(os.Args[1:], os.Stdout, os.Stderr, nil))
}
