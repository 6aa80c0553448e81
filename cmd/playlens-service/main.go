package main

import (
	"os"

	"github.com/playlens/playlens/analyticsservice"
)

func main() {
	if err := analyticsservice.Run(); err != nil {
		os.Exit(1)
	}
}
