// Package main is the entry point for the fieldstats CLI tool, which tallies
// win/loss statistics for recurring field days from a tabular day log.
package main

import "github.com/pable/go-fieldday-stats/cmd"

func main() {
	cmd.Execute()
}
