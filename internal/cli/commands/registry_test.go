package commands

import "testing"

func TestRegistryHasCoreCommands(t *testing.T) {
	for _, name := range []string{"init", "update", "check", "add", "help"} {
		if _, ok := Get(name); !ok {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestRegistryAliases(t *testing.T) {
	cmd, ok := Get("install")
	if !ok || cmd.Name != "init" {
		t.Errorf("Get(install) = %+v, %v", cmd, ok)
	}
}

func TestListHasNoAliasDuplicates(t *testing.T) {
	seen := make(map[string]bool)
	for _, cmd := range List() {
		if seen[cmd.Name] {
			t.Errorf("duplicate command %q in List", cmd.Name)
		}
		seen[cmd.Name] = true
	}
}
