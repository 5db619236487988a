package main

import (
	"os"

	"github.com/atomicstack/tower-picker/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
