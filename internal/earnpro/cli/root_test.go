package cli

import "testing"

func TestRootHasSubcommands(t *testing.T) {
	root := NewRoot()
	want := map[string]bool{
		"login":        false,
		"logout":       false,
		"whoami":       false,
		"tasks":        false,
		"transactions": false,
		"version":      false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}
