package commands

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"docindex/internal/config"
	"docindex/internal/gitutil"
	"docindex/internal/indexer"
)

func init() {
	Register(&Command{
		Name:        "init",
		Aliases:     []string{"install"},
		Description: "Install the pre-commit hook and write a starter config",
		Run:         RunInit,
	})
}

// InitOptions contains the configuration for the init command.
type InitOptions struct {
	Root  string
	Force bool
	Seed  bool
}

// RunInit executes the init command with parsed arguments.
func RunInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	root := fs.String("root", ".", "repository root")
	force := fs.Bool("force", false, "replace a foreign pre-commit hook and overwrite the rc file")
	seed := fs.Bool("seed", false, "backfill the index from docs already on disk")
	verbose := fs.Bool("verbose", false, "verbose progress output")
	debug := fs.Bool("debug", false, "detailed debugging output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	applyLogLevel(*verbose, *debug)

	return ExecuteInit(InitOptions{Root: *root, Force: *force, Seed: *seed})
}

// ExecuteInit performs the initialization with the given options.
// This is separated for easier testing.
func ExecuteInit(opts InitOptions) error {
	rootPath, err := filepath.Abs(opts.Root)
	if err != nil {
		return err
	}
	if !gitutil.IsGitRepo(rootPath) {
		return fmt.Errorf("%s is not a git repository", rootPath)
	}

	backup, err := gitutil.InstallHook(rootPath, opts.Force)
	if err != nil {
		return err
	}
	if backup != "" {
		fmt.Printf("existing pre-commit hook backed up to %s\n", backup)
	}
	fmt.Println("pre-commit hook installed")

	if err := writeStarterRC(rootPath, opts.Force); err != nil {
		return err
	}

	if opts.Seed {
		cfg := config.Load(rootPath)
		res, err := indexer.Seed(rootPath, cfg)
		if err != nil {
			return err
		}
		if res.Updated {
			fmt.Printf("seeded %d row(s) into %s\n", len(res.Added), cfg.IndexFile)
		} else {
			fmt.Println("index already lists every doc")
		}
	}
	return nil
}

// starterRC mirrors the built-in defaults so users have a file to edit.
const starterRC = `{
  // docindex configuration; delete keys to fall back to the defaults.
  "indexFile": "docs/README.md",
  "docsDir": "docs",
  "exclude": ["archive/", "README.md"],
  "warnRootMd": true
}
`

func writeStarterRC(root string, force bool) error {
	path := filepath.Join(root, config.RCFile)
	if _, err := os.Stat(path); err == nil && !force {
		return nil
	}
	if err := os.WriteFile(path, []byte(starterRC), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("wrote %s\n", config.RCFile)
	return nil
}
