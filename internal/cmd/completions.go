package cmd

import (
	"github.com/spf13/cobra"
)

// completeManifestDir completes --manifest-dir with directories only.
func completeManifestDir(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return nil, cobra.ShellCompDirectiveFilterDirs
}

// registerCompletions registers all dynamic completions for commands.
// This is called from init() to set up completions after all commands are defined.
func registerCompletions() {
	for _, cmd := range []*cobra.Command{generateCmd, validateCmd} {
		if err := cmd.RegisterFlagCompletionFunc("manifest-dir", completeManifestDir); err != nil {
			// Silently ignore - completions are optional
			_ = err
		}
	}
}

// init registers completions after all commands are set up.
func init() {
	// Use a deferred registration via cobra.OnInitialize to ensure
	// all commands are registered before we add completions
	cobra.OnInitialize(registerCompletions)
}
