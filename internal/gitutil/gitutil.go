// Package gitutil wraps the git operations docindex needs: staged-file
// queries and pre-commit hook installation.
package gitutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// IsGitRepo checks if the given path is inside a git repository.
func IsGitRepo(root string) bool {
	cmd := exec.Command("git", "-C", root, "rev-parse", "--git-dir")
	err := cmd.Run()
	return err == nil
}

// StagedFiles returns the newline-separated paths staged for the next
// commit, relative to the repository root. Deletions are omitted. The
// query is read-only; failures (such as running outside a repository)
// are returned to the caller, not swallowed.
func StagedFiles(root string) (string, error) {
	cmd := exec.Command("git", "-C", root, "diff", "--cached", "--name-only", "--diff-filter=ACMR")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("list staged files: %w", err)
	}
	return string(out), nil
}

// hookMarker identifies pre-commit hooks written by docindex.
const hookMarker = "# installed by docindex"

const hookScript = `#!/bin/sh
` + hookMarker + `
docindex update
`

// HookInstalled reports whether the current pre-commit hook is ours.
func HookInstalled(root string) bool {
	dir, err := hooksDir(root)
	if err != nil {
		return false
	}
	data, err := os.ReadFile(filepath.Join(dir, "pre-commit"))
	if err != nil {
		return false
	}
	return strings.Contains(string(data), hookMarker)
}

// InstallHook writes the pre-commit hook. A hook docindex already owns is
// rewritten in place. A foreign hook is an error unless force is set, in
// which case it is moved aside first; the backup name carries a short
// unique suffix so repeated installs never clobber an earlier backup.
// Returns the backup path when one was created.
func InstallHook(root string, force bool) (string, error) {
	dir, err := hooksDir(root)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	hookPath := filepath.Join(dir, "pre-commit")

	backup := ""
	existing, err := os.ReadFile(hookPath)
	switch {
	case os.IsNotExist(err):
		// fresh install
	case err != nil:
		return "", fmt.Errorf("read %s: %w", hookPath, err)
	case strings.Contains(string(existing), hookMarker):
		// already ours; refresh in place
	case !force:
		return "", fmt.Errorf("%s exists and was not installed by docindex; re-run init with -force to replace it", hookPath)
	default:
		backup = hookPath + ".bak-" + uuid.NewString()[:8]
		if err := os.WriteFile(backup, existing, 0o755); err != nil {
			return "", fmt.Errorf("back up %s: %w", hookPath, err)
		}
	}

	if err := os.WriteFile(hookPath, []byte(hookScript), 0o755); err != nil {
		return "", fmt.Errorf("write %s: %w", hookPath, err)
	}
	return backup, nil
}

// hooksDir resolves the hooks directory via git so worktrees and
// core.hooksPath setups are handled.
func hooksDir(root string) (string, error) {
	cmd := exec.Command("git", "-C", root, "rev-parse", "--git-path", "hooks")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("locate hooks dir: %w", err)
	}
	dir := strings.TrimSpace(string(out))
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	return dir, nil
}
