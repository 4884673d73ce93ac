package main

import (
	"os"

	"github.com/cbout22/makegen/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
