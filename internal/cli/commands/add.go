package commands

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"

	"docindex/internal/config"
	"docindex/internal/indexer"
)

func init() {
	Register(&Command{
		Name:        "add",
		Description: "Insert a single doc into the index",
		Run:         RunAdd,
	})
}

// AddOptions contains the configuration for the add command.
type AddOptions struct {
	Root string
	Path string
}

// RunAdd executes the add command with parsed arguments.
func RunAdd(args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	root := fs.String("root", ".", "repository root")
	verbose := fs.Bool("verbose", false, "verbose progress output")
	debug := fs.Bool("debug", false, "detailed debugging output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	applyLogLevel(*verbose, *debug)

	if fs.NArg() != 1 {
		return errors.New("usage: docindex add <path>")
	}
	return ExecuteAdd(AddOptions{Root: *root, Path: fs.Arg(0)})
}

// ExecuteAdd performs the add with the given options.
func ExecuteAdd(opts AddOptions) error {
	rootPath, err := filepath.Abs(opts.Root)
	if err != nil {
		return err
	}
	cfg := config.Load(rootPath)

	res, err := indexer.Add(rootPath, cfg, opts.Path)
	if err != nil {
		return err
	}
	if !res.Updated {
		fmt.Printf("%s already indexed\n", opts.Path)
		return nil
	}
	fmt.Printf("added %s to %s\n", res.Added[0].Path, cfg.IndexFile)
	return nil
}
