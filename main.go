package main

import (
	"os"

	"fuzz/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
