// main is the entry point for the fullback CLI.
package main

import (
	"github.com/lmarsden/fullback/cmd"
	"github.com/lmarsden/fullback/internal/contract"
	"github.com/lmarsden/fullback/internal/iocache"
)

func main() {
	defer iocache.CloseRunStore()

	cmd.SetStoreManager(iocache.Manager)

	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}

	if err := cmd.StopProfiling(); err != nil {
		contract.LogFatal("Failed to stop profiling", err)
	}
}
