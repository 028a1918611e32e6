package main

import (
	"os"

	"github.com/staffhive/benchctl/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
