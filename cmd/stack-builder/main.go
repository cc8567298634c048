// Package main is the entry point for the stack-builder CLI.
package main

import "github.com/morrisclay/stack-builder/internal/cli"

func main() {
	cli.Execute()
}
