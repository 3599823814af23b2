package main

import (
	"os"

	"github.com/mepassa/mepassa-bindgen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
