package main

import (
	"os"

	"github.com/Admuad/concero-quiz/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
