package main

import (
	"os"

	"github.com/danpilch/inotify-instances/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
