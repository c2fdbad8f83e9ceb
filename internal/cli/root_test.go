package cli

import (
	"testing"
)

func TestNewCacheCmd(t *testing.T) {
	cmd := newCacheCmd()

	if cmd.Use != "cache" {
		t.Errorf("Use = %q, want %q", cmd.Use, "cache")
	}

	subcommands := map[string]bool{}
	for _, sub := range cmd.Commands() {
		subcommands[sub.Use] = true
	}
	for _, want := range []string{"clear", "path"} {
		if !subcommands[want] {
			t.Errorf("cache command should have a %q subcommand", want)
		}
	}
}
