// Package config resolves where the Cargo manifest is read from and where
// the generated PKGBUILD is written.
package config

import (
	"os"
	"path/filepath"
)

const (
	// ManifestName is the file name of the Cargo manifest.
	ManifestName = "Cargo.toml"

	// RecipeName is the file name of the generated build recipe.
	RecipeName = "PKGBUILD"

	// manifestDirEnv names the manifest directory when no explicit
	// directory is given. Cargo sets it for build scripts.
	manifestDirEnv = "CARGO_MANIFEST_DIR"
)

// Config holds the resolved locations for a single run.
type Config struct {
	// ManifestDir is the directory containing the Cargo manifest.
	ManifestDir string
}

// Load resolves the manifest directory: an explicit dir wins, then
// $CARGO_MANIFEST_DIR, then the current directory.
func Load(dir string) *Config {
	if dir == "" {
		dir = os.Getenv(manifestDirEnv)
	}
	if dir == "" {
		dir = "."
	}
	return &Config{ManifestDir: dir}
}

// ManifestPath returns the path to the Cargo manifest.
func (c *Config) ManifestPath() string {
	return filepath.Join(c.ManifestDir, ManifestName)
}

// RecipePath returns the path the recipe is written to. The recipe always
// lands in the current working directory, regardless of where the manifest
// was read from.
func (c *Config) RecipePath() string {
	return RecipeName
}
