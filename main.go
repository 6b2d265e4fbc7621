// main.go
//
// Minimal entry point that delegates CLI handling to the Cobra root command in cmd/root.go

package main

import (
	"github.com/sheikhrachel/conway/cmd"
	"github.com/sheikhrachel/conway/window"
)

func main() {
	cmd.Execute(window.Run)
}
