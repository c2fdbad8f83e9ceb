// Package manifest reads the project's Cargo.toml.
//
// Only the [package] table matters here: the declared name identifies the
// root package so it can be excluded from notice generation, and the version
// is carried along for logging. Dependency tables are deliberately ignored;
// the resolved graph comes from `cargo metadata` instead.
package manifest

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/noticegen/pkg/errors"
)

// FileName is the manifest file probed in the project directory.
const FileName = "Cargo.toml"

// Manifest holds the package declaration from Cargo.toml.
type Manifest struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
}

// Load reads and parses the Cargo.toml in dir.
//
// A missing file yields ErrCodeManifestNotFound; unparsable TOML or a
// missing package name yields ErrCodeInvalidManifest. Both are fatal for
// the caller: without a root package name there is nothing to exclude from
// the notice document.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeManifestNotFound, "%s not found in %s", FileName, dir)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeManifestNotFound, err, "read %s", path)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s", path)
	}
	if strings.TrimSpace(m.Package.Name) == "" {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "%s has no package.name", path)
	}
	return &m, nil
}
