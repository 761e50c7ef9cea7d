package main

import (
	"os"

	"github.com/ProTechPh/GeoPulse/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
