// Package cargo invokes `cargo metadata` and decodes its output.
//
// The metadata command is treated as an opaque collaborator: it owns
// dependency resolution, this package only consumes its machine-readable
// output contract (--format-version 1). Package order in the result follows
// command output order, which is not guaranteed stable across cargo
// versions.
package cargo

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strings"

	"github.com/matzehuels/noticegen/pkg/errors"
)

// Package is one resolved dependency record from `cargo metadata`.
// Fields are immutable after decoding.
type Package struct {
	Name         string   `json:"name"`          // Crate name
	Version      string   `json:"version"`       // Resolved version
	ManifestPath string   `json:"manifest_path"` // Absolute path to the crate's Cargo.toml
	Authors      []string `json:"authors"`       // Declared authors, in manifest order
	License      string   `json:"license"`       // SPDX-like identifier or free text
	Repository   string   `json:"repository"`    // Source repository URL (optional)
	Description  string   `json:"description"`   // Crate summary (optional)
}

type metadataOutput struct {
	Packages []Package `json:"packages"`
}

// Metadata runs `cargo metadata --format-version 1` in dir and returns the
// resolved package list, including the workspace's own package. A non-zero
// exit or undecodable output yields ErrCodeMetadataCommand.
func Metadata(ctx context.Context, dir string) ([]Package, error) {
	cmd := exec.CommandContext(ctx, "cargo", "metadata", "--format-version", "1")
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = "cargo metadata failed"
		}
		return nil, errors.Wrap(errors.ErrCodeMetadataCommand, err, "%s", msg)
	}

	return decodeMetadata(stdout.Bytes())
}

func decodeMetadata(data []byte) ([]Package, error) {
	var out metadataOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMetadataCommand, err, "decode cargo metadata output")
	}
	return out.Packages, nil
}
