// Package cmd provides the CLI commands for pkgsmith.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pkgsmith",
	Short: "Cargo.toml in, PKGBUILD out",
	Long: `pkgsmith - Cargo.toml in, PKGBUILD out

Reads a Rust crate manifest, applies its [package.metadata.arch] overrides,
and writes an Arch Linux PKGBUILD to the current directory.

GENERATION
  generate              Resolve the manifest and write ./PKGBUILD
    --manifest-dir, -m  Directory containing Cargo.toml
    --dry-run, -n       Print the PKGBUILD without writing it
  validate              Run the same resolution, write nothing
    --manifest-dir, -m  Directory containing Cargo.toml

MAINTENANCE
  update                Update pkgsmith to the latest release
    --check             Only check for updates
  completion            Generate shell completion scripts`,
	Version:      version,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Version template
	rootCmd.SetVersionTemplate("pkgsmith version {{.Version}}\n")
}
