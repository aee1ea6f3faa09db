package main

import (
	"errors"
	"fmt"
	"os"

	"docindex/internal/cli"
	"docindex/internal/indexer"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cli.SetBuildInfo(version, commit, date)
	if err := cli.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "docindex: %v\n", err)
		if errors.Is(err, indexer.ErrExcluded) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
