// Package main is the entry point for the stylefit CLI.
package main

import "stylefit.dev/pkg/stylefit/cmd"

func main() {
	cmd.Execute()
}
