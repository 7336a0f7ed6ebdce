package main

import (
	"github.com/mouse-blink/propcheck/cmd"
)

func main() {
	cmd.Execute()
}
