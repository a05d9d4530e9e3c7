// Package main is the entry point for the rangemerge CLI.
package main

import (
	"github.com/huangsam/rangemerge/cmd"
	"github.com/huangsam/rangemerge/internal/contract"
)

func main() {
	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Cannot stop profiling", stopErr)
	}
	if err != nil {
		contract.LogFatal("Cannot run command", err)
	}
}
