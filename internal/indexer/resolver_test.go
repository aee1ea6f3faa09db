package indexer

import (
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"testing"
)

func TestStagedOverride(t *testing.T) {
	got, err := Staged(t.TempDir(), "  docs/a.md  \n\nnotes.txt\ndocs/b.md\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"docs/a.md", "docs/b.md"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Staged = %v, want %v", got, want)
	}
}

func TestStagedOverrideKeepsDuplicates(t *testing.T) {
	got, err := Staged(t.TempDir(), "docs/a.md\ndocs/a.md\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected duplicates to survive, got %v", got)
	}
}

func TestStagedEnvFallback(t *testing.T) {
	t.Setenv(StagedEnvVar, "docs/env.md\n")
	got, err := Staged(t.TempDir(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != "docs/env.md" {
		t.Errorf("Staged = %v", got)
	}
}

func TestStagedOverrideBeatsEnv(t *testing.T) {
	t.Setenv(StagedEnvVar, "docs/env.md\n")
	got, err := Staged(t.TempDir(), "docs/override.md\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != "docs/override.md" {
		t.Errorf("Staged = %v", got)
	}
}

func TestStagedQueriesGit(t *testing.T) {
	dir := t.TempDir()
	if err := exec.Command("git", "-C", dir, "init").Run(); err != nil {
		t.Skip("git not available")
	}
	exec.Command("git", "-C", dir, "config", "user.email", "test@test.com").Run()
	exec.Command("git", "-C", dir, "config", "user.name", "Test").Run()

	if err := os.MkdirAll(filepath.Join(dir, "docs"), 0o755); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join(dir, "docs", "new.md"), []byte("# New\n"), 0o644)
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644)
	exec.Command("git", "-C", dir, "add", ".").Run()

	got, err := Staged(dir, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != "docs/new.md" {
		t.Errorf("Staged = %v", got)
	}
}

func TestStagedOutsideRepoFails(t *testing.T) {
	if err := exec.Command("git", "--version").Run(); err != nil {
		t.Skip("git not available")
	}
	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))
	if _, err := Staged(dir, ""); err == nil {
		t.Error("expected error outside a git repository")
	}
}
