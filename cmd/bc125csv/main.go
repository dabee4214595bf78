package main

import (
	"github.com/brocaar/bc125csv/cmd/bc125csv/cmd"
)

var version string // set by the compiler

func main() {
	cmd.Execute(version)
}
