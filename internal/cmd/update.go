package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arch-tools/pkgsmith/internal/ui"
	"github.com/arch-tools/pkgsmith/internal/update"
)

var updateCmd = &cobra.Command{
	Use:     "update",
	Aliases: []string{"upgrade", "selfupdate"},
	Short:   "Update pkgsmith to the latest version",
	Long: `Update pkgsmith to the latest version from GitHub releases.

This command will:
1. Check for a newer version on GitHub
2. Download the appropriate binary for your platform
3. Replace the current binary with the new version

Examples:
  pkgsmith update           # Update to latest version
  pkgsmith update --check   # Check for updates without installing`,
	Run: runUpdate,
}

var (
	checkOnly bool
)

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().BoolVar(&checkOnly, "check", false, "Only check for updates, don't install")
}

func runUpdate(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	currentVersion := version
	platform := update.GetPlatformInfo()

	ui.Blue.Printf("Current version: %s (%s)\n", currentVersion, platform)

	if checkOnly {
		checkForUpdate(ctx, currentVersion)
		return
	}

	performUpdate(ctx, currentVersion)
}

func checkForUpdate(ctx context.Context, currentVersion string) {
	ui.Blue.Println("Checking for updates...")

	release, available, err := update.CheckForUpdate(ctx, currentVersion)
	if err != nil {
		ui.Error("Failed to check for updates: %v", err)
		return
	}

	if !available {
		ui.Success("You're running the latest version!")
		return
	}

	ui.Success("New version available: %s (released %s)", release.Version, release.PublishedAt)
	fmt.Println()
	ui.Blue.Println("To update, run: pkgsmith update")
	fmt.Println()

	printChangelog(release.Changelog)
}

func performUpdate(ctx context.Context, currentVersion string) {
	ui.Blue.Println("Checking for updates...")

	release, err := update.Update(ctx, currentVersion)
	if err != nil {
		ui.Error("Update failed: %v", err)
		return
	}

	if release == nil {
		ui.Success("You're already running the latest version!")
		return
	}

	fmt.Println()
	ui.Success("Successfully updated to version %s!", release.Version)
	fmt.Println()

	printChangelog(release.Changelog)
}

// printChangelog shows the first few lines of the release notes.
func printChangelog(changelog string) {
	if changelog == "" {
		return
	}

	ui.Yellow.Println("What's new:")
	lines := strings.Split(changelog, "\n")
	maxLines := 10
	if len(lines) < maxLines {
		maxLines = len(lines)
	}
	for i := 0; i < maxLines; i++ {
		fmt.Printf("  %s\n", lines[i])
	}
	if len(lines) > maxLines {
		fmt.Printf("  ... (%d more lines)\n", len(lines)-maxLines)
	}
}
