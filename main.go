package main

import (
	"github.com/travelmap/pinmap/cmd"
)

func main() {
	cmd.Execute()
}
