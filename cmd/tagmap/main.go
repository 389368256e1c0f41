package main

import (
	"os"

	"github.com/dkeech/tagmap/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
