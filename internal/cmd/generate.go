package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arch-tools/pkgsmith/internal/config"
	"github.com/arch-tools/pkgsmith/internal/pkgbuild"
	"github.com/arch-tools/pkgsmith/internal/ui"
)

var (
	generateManifestDir string
	generateDryRun      bool
)

// generateCmd renders the Cargo manifest into a PKGBUILD.
var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate a PKGBUILD from a Cargo manifest",
	Long: `Generate an Arch Linux PKGBUILD from the Cargo.toml of a Rust crate.

The manifest directory is taken from --manifest-dir, then from
$CARGO_MANIFEST_DIR, then the current directory. The PKGBUILD is written
to the current directory, replacing any existing file.

Examples:
  pkgsmith generate                # Use ./Cargo.toml
  pkgsmith generate -m ../mycrate  # Use ../mycrate/Cargo.toml
  pkgsmith generate -n             # Print instead of writing`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateManifestDir, "manifest-dir", "m", "", "Directory containing Cargo.toml")
	generateCmd.Flags().BoolVarP(&generateDryRun, "dry-run", "n", false, "Print the PKGBUILD without writing it")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := config.Load(generateManifestDir)

	recipe, err := loadRecipe(cfg)
	if err != nil {
		return err
	}

	if generateDryRun {
		fmt.Print(pkgbuild.Render(recipe))
		return nil
	}

	if err := pkgbuild.WriteFile(cfg.RecipePath(), recipe); err != nil {
		return err
	}

	ui.Success("Wrote %s for %s %s", cfg.RecipePath(), recipe.Pkgname, recipe.Pkgver)
	return nil
}
