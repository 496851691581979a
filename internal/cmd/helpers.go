package cmd

import (
	"fmt"

	"github.com/arch-tools/pkgsmith/internal/config"
	"github.com/arch-tools/pkgsmith/internal/manifest"
	"github.com/arch-tools/pkgsmith/internal/pkgbuild"
)

// loadRecipe reads the manifest named by cfg and resolves it into a
// recipe.
func loadRecipe(cfg *config.Config) (*pkgbuild.Recipe, error) {
	m, err := manifest.Load(cfg.ManifestPath())
	if err != nil {
		return nil, err
	}

	recipe, err := pkgbuild.Resolve(m)
	if err != nil {
		return nil, fmt.Errorf("resolve recipe: %w", err)
	}

	return recipe, nil
}
