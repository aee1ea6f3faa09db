package commands

import (
	"flag"
	"fmt"
	"path/filepath"

	"docindex/internal/config"
	"docindex/internal/indexer"
)

func init() {
	Register(&Command{
		Name:        "update",
		Description: "Insert staged docs that are missing from the index",
		Run:         RunUpdate,
	})
}

// UpdateOptions contains the configuration for the update command.
type UpdateOptions struct {
	Root string
}

// RunUpdate executes the update command with parsed arguments.
func RunUpdate(args []string) error {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	root := fs.String("root", ".", "repository root")
	verbose := fs.Bool("verbose", false, "verbose progress output")
	debug := fs.Bool("debug", false, "detailed debugging output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	applyLogLevel(*verbose, *debug)

	return ExecuteUpdate(UpdateOptions{Root: *root})
}

// ExecuteUpdate performs the update with the given options.
// This is separated for easier testing.
func ExecuteUpdate(opts UpdateOptions) error {
	rootPath, err := filepath.Abs(opts.Root)
	if err != nil {
		return err
	}
	cfg := config.Load(rootPath)

	res, err := indexer.Update(rootPath, cfg, "")
	if err != nil {
		return err
	}
	if !res.Updated {
		fmt.Println("index up to date")
		return nil
	}
	fmt.Printf("added %d row(s) to %s:\n", len(res.Added), cfg.IndexFile)
	for _, r := range res.Added {
		fmt.Printf("- %s\n", r.Path)
	}
	return nil
}
