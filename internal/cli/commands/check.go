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
		Name:        "check",
		Description: "Verify the index lists every staged doc (CI gate)",
		Run:         RunCheck,
	})
}

// CheckOptions contains the configuration for the check command.
type CheckOptions struct {
	Root string
}

// RunCheck executes the check command with parsed arguments.
func RunCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	root := fs.String("root", ".", "repository root")
	verbose := fs.Bool("verbose", false, "verbose progress output")
	debug := fs.Bool("debug", false, "detailed debugging output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	applyLogLevel(*verbose, *debug)

	return ExecuteCheck(CheckOptions{Root: *root})
}

// ExecuteCheck performs the check with the given options. A stale index is
// an error so the process exits non-zero under CI.
func ExecuteCheck(opts CheckOptions) error {
	rootPath, err := filepath.Abs(opts.Root)
	if err != nil {
		return err
	}
	cfg := config.Load(rootPath)

	ok, err := indexer.Check(rootPath, cfg, "")
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("documentation index %s is out of date; run 'docindex update' and commit the result", cfg.IndexFile)
	}
	fmt.Println("index up to date")
	return nil
}
