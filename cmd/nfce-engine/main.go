package main

import (
	"os"

	"github.com/rezonia/nfce-engine/cmd/nfce-engine/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
