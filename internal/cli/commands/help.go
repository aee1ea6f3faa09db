package commands

import (
	"fmt"
	"sort"
	"strings"
)

func init() {
	Register(&Command{
		Name:        "help",
		Description: "Show help for a command",
		Run:         RunHelp,
	})
}

// RunHelp executes the help command with parsed arguments.
func RunHelp(args []string) error {
	if len(args) == 0 {
		return ShowUsage()
	}

	topic := strings.ToLower(strings.TrimSpace(args[0]))
	cmd, ok := Get(topic)
	if !ok {
		var names []string
		for _, c := range List() {
			names = append(names, c.Name)
		}
		sort.Strings(names)
		return fmt.Errorf("unknown help topic: %s (commands: %s)", topic, strings.Join(names, ", "))
	}
	fmt.Printf("%s - %s\n", cmd.Name, cmd.Description)
	return nil
}

// ShowUsage displays the main usage message.
func ShowUsage() error {
	fmt.Print(`docindex - keep the documentation index in sync with the repo

USAGE
  docindex <command> [flags]

COMMANDS
  init      Install the pre-commit hook and write a starter config
  update    Insert staged docs that are missing from the index
  check     Verify the index lists every staged doc (CI gate)
  add       Insert a single doc into the index
  help      Show help for a command
  version   Show version information

COMMON FLAGS
  -root     Repository root (default ".")
  -verbose  Progress output on stderr
  -debug    Detailed debugging output

EXAMPLES
  docindex init -seed          # install the hook, backfill the index
  docindex update              # pre-commit: index newly staged docs
  docindex check               # CI: fail when the index is stale
  docindex add docs/adr-12.md  # index one file by hand

Configuration comes from the "docindex" object of package.json, then
.docindexrc.json, then built-in defaults. For testing, the staged-file
list can be overridden by setting DOCINDEX_STAGED_FILES to
newline-separated paths.
`)
	return nil
}
