package cargo

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"

	"github.com/matzehuels/noticegen/pkg/errors"
)

const metadataFixture = `{
	"packages": [
		{
			"name": "chip8-emulator",
			"version": "0.3.1",
			"manifest_path": "/work/chip8/Cargo.toml",
			"authors": ["Alice <alice@example.com>"],
			"license": "MIT",
			"repository": null,
			"description": "A CHIP-8 emulator"
		},
		{
			"name": "rand",
			"version": "0.8.5",
			"manifest_path": "/registry/rand-0.8.5/Cargo.toml",
			"authors": ["The Rand Project Developers"],
			"license": "MIT OR Apache-2.0",
			"repository": "https://github.com/rust-random/rand",
			"description": "Random number generators"
		},
		{
			"name": "libc",
			"version": "0.2.150",
			"manifest_path": "/registry/libc-0.2.150/Cargo.toml",
			"authors": [],
			"license": null,
			"repository": "https://github.com/rust-lang/libc"
		}
	],
	"workspace_members": ["chip8-emulator 0.3.1"],
	"version": 1
}`

func TestDecodeMetadata(t *testing.T) {
	pkgs, err := decodeMetadata([]byte(metadataFixture))
	if err != nil {
		t.Fatalf("decodeMetadata() error: %v", err)
	}
	if len(pkgs) != 3 {
		t.Fatalf("len(pkgs) = %d, want 3", len(pkgs))
	}

	rand := pkgs[1]
	if rand.Name != "rand" || rand.Version != "0.8.5" {
		t.Errorf("pkgs[1] = %s %s, want rand 0.8.5", rand.Name, rand.Version)
	}
	if rand.ManifestPath != "/registry/rand-0.8.5/Cargo.toml" {
		t.Errorf("ManifestPath = %q", rand.ManifestPath)
	}
	if rand.License != "MIT OR Apache-2.0" {
		t.Errorf("License = %q", rand.License)
	}
	if rand.Repository != "https://github.com/rust-random/rand" {
		t.Errorf("Repository = %q", rand.Repository)
	}
}

func TestDecodeMetadataNullFields(t *testing.T) {
	pkgs, err := decodeMetadata([]byte(metadataFixture))
	if err != nil {
		t.Fatalf("decodeMetadata() error: %v", err)
	}

	libc := pkgs[2]
	if libc.License != "" {
		t.Errorf("null license should decode to empty string, got %q", libc.License)
	}
	if len(libc.Authors) != 0 {
		t.Errorf("empty authors should stay empty, got %v", libc.Authors)
	}

	root := pkgs[0]
	if root.Repository != "" {
		t.Errorf("null repository should decode to empty string, got %q", root.Repository)
	}
}

func TestDecodeMetadataPreservesOrder(t *testing.T) {
	pkgs, _ := decodeMetadata([]byte(metadataFixture))

	want := []string{"chip8-emulator", "rand", "libc"}
	for i, name := range want {
		if pkgs[i].Name != name {
			t.Errorf("pkgs[%d].Name = %q, want %q", i, pkgs[i].Name, name)
		}
	}
}

func TestDecodeMetadataGarbage(t *testing.T) {
	_, err := decodeMetadata([]byte("error: could not find Cargo.toml"))
	if err == nil {
		t.Fatal("decodeMetadata() should fail on non-JSON output")
	}
	if !errors.Is(err, errors.ErrCodeMetadataCommand) {
		t.Errorf("error code = %q, want METADATA_COMMAND", errors.GetCode(err))
	}
}

// fakeCargo installs a shell script named "cargo" on PATH that emits the
// given stdout and exits with the given code.
func fakeCargo(t *testing.T, stdout string, exitCode int) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell-script fake not supported on windows")
	}
	dir := t.TempDir()
	script := "#!/bin/sh\ncat <<'STDOUT'\n" + stdout + "\nSTDOUT\nexit " + strconv.Itoa(exitCode) + "\n"
	path := filepath.Join(dir, "cargo")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake cargo: %v", err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestMetadata(t *testing.T) {
	fakeCargo(t, metadataFixture, 0)

	pkgs, err := Metadata(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("Metadata() error: %v", err)
	}
	if len(pkgs) != 3 {
		t.Errorf("len(pkgs) = %d, want 3", len(pkgs))
	}
}

func TestMetadataCommandFails(t *testing.T) {
	fakeCargo(t, "", 101)

	_, err := Metadata(context.Background(), t.TempDir())
	if err == nil {
		t.Fatal("Metadata() should fail when cargo exits non-zero")
	}
	if !errors.Is(err, errors.ErrCodeMetadataCommand) {
		t.Errorf("error code = %q, want METADATA_COMMAND", errors.GetCode(err))
	}
}
