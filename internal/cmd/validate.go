package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arch-tools/pkgsmith/internal/config"
	"github.com/arch-tools/pkgsmith/internal/manifest"
	"github.com/arch-tools/pkgsmith/internal/pkgbuild"
	"github.com/arch-tools/pkgsmith/internal/ui"
)

var validateManifestDir string

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the Cargo manifest without writing a PKGBUILD",
	Long: `Validate that the Cargo manifest resolves into a complete PKGBUILD.

This runs the same resolution as 'pkgsmith generate' but writes nothing.
Use it in CI to catch missing required fields early.

Examples:
  pkgsmith validate                # Validate ./Cargo.toml
  pkgsmith validate -m ../mycrate  # Validate ../mycrate/Cargo.toml`,
	Args: cobra.NoArgs,
	Run:  runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateManifestDir, "manifest-dir", "m", "", "Directory containing Cargo.toml")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) {
	ui.Header("=== Manifest Validation ===")
	fmt.Println()

	var errors, warnings int

	cfg := config.Load(validateManifestDir)

	// 1. Load the manifest
	ui.Blue.Println("--- Manifest ---")
	m, err := manifest.Load(cfg.ManifestPath())
	if err != nil {
		ui.Red.Printf("  x %v\n", err)
		errors++
	} else {
		ui.Green.Printf("  * Loaded %s\n", cfg.ManifestPath())
	}
	fmt.Println()

	// 2. Resolve it into a recipe
	if m != nil {
		ui.Blue.Println("--- Resolution ---")
		recipe, err := pkgbuild.Resolve(m)
		if err != nil {
			ui.Red.Printf("  x %v\n", err)
			errors++
		} else {
			ui.Green.Printf("  * Resolved %s %s\n", recipe.Pkgname, recipe.Pkgver)
			warnings += checkRecipe(recipe)
		}
		fmt.Println()
	}

	// Summary
	ui.Blue.Println("--- Summary ---")
	if errors > 0 {
		ui.Red.Printf("  Errors: %d\n", errors)
	}
	if warnings > 0 {
		ui.Yellow.Printf("  Warnings: %d\n", warnings)
	}

	if errors == 0 && warnings == 0 {
		ui.Green.Println("  * All validations passed")
	}

	fmt.Println()

	if errors > 0 {
		ui.Red.Println("Validation failed. Fix errors before generating.")
		os.Exit(1)
	} else if warnings > 0 {
		ui.Yellow.Println("Validation passed with warnings.")
	} else {
		ui.Green.Println("Manifest is valid!")
	}
}

// checkRecipe reports non-fatal gaps a maintainer usually wants filled
// before running makepkg.
func checkRecipe(r *pkgbuild.Recipe) int {
	warnings := 0

	if r.URL == "" {
		ui.Yellow.Println("  ! url is empty (set url, homepage, or repository)")
		warnings++
	}
	if len(r.Arch) == 0 {
		ui.Yellow.Println("  ! arch is empty (makepkg requires at least one architecture)")
		warnings++
	}
	if len(r.Source) == 0 {
		ui.Yellow.Println("  ! source is empty")
		warnings++
	}

	return warnings
}
