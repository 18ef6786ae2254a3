// Package main is the entry point for the qbsview CLI application.
// It decodes qbs build session transcripts and renders project trees.
package main

import (
	"qbsview/cli/cmd"
)

// main is the entry point for the qbsview CLI application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
